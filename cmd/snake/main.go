// snake is a terminal snake game.
//
// Usage:
//
//	snake play             - Play in this terminal
//	snake serve            - Start SSH server for remote play
//	snake scores           - Show or reset the high score
//	snake config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible apple placement
//	--db <path>         - Set database path (default: ~/.snake/scores.db)
//	--config <path>     - Use a custom YAML config
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic grid game: steer the snake to the apples, grow,
and avoid the walls and your own tail. Every 100 points the level and the
speed go up.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - Show or reset the high score
  config   - Print the effective configuration

Examples:
  snake play
  snake play --difficulty hard --area 40
  snake serve --ssh :2222
  snake scores --reset`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns a logger writing to path, or to fallback when path is
// empty. The returned closer is never nil.
func newLogger(path string, fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	w := fallback
	var closer io.Closer = io.NopCloser(nil)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if path != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
