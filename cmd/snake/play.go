package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	playFlags gameplayFlags
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Steer
  Enter        - Play (restarts after game over)
  P/Space      - Pause/resume
  R            - Restart
  +/-          - Faster/slower
  ]/[          - Bigger/smaller map (restarts)
  L            - Static level on/off
  H            - Reset high score
  ?            - Help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at speed 6
  normal - Start at speed 10
  hard   - Start at speed 15
  fixed  - Static level: no level or speed progression

Examples:
  snake play
  snake play --difficulty easy
  snake play --speed 20 --area 40
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playFlags.register(playCmd)
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := resolveConfig(flagConfig, playFlags, cmd.Flags().Changed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to Bubble Tea, so logs only go to a file.
	logger, logCloser, err := newLogger(flagLogFile, io.Discard, "snake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
		Seed:      flagSeed,
	}

	// Open score storage
	var scores snake.ScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without persistence - game still works
		scores = storage.NewMemory()
	} else {
		scores = store
	}

	session := snake.New(snake.OptionsFromConfig(cfg, rcfg.Seed, scores))

	if cfg.Audio.Enabled && !flagMute {
		player := audio.NewPlayer(cfg.Audio.Volume)
		if audioErr := player.Initialize(); audioErr != nil {
			logger.Warn("audio unavailable", "error", audioErr)
		} else {
			session.Subscribe(player.Listen)
			defer player.Close()
		}
	}

	logger.Info("starting game",
		"speed", cfg.Gameplay.Speed,
		"area", cfg.Gameplay.Area,
		"static", cfg.Gameplay.StaticLevel,
	)

	runErr := tui.Run(session, rcfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
