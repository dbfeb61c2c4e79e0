package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// helpHeight is the number of lines reserved below the board.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a snake session.
type Model struct {
	session    *snake.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	hud        *HUD
	logger     *log.Logger
	inputFrame core.InputFrame
	quitting   bool
}

// NewModel creates a new Bubble Tea model around the session. A nil logger
// discards log output.
func NewModel(session *snake.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = core.DefaultConfig().FrameRate
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		hud:        NewHUD(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}

	session.Subscribe(m.hud.Listen)
	session.Subscribe(eventLogger(logger))

	if err := session.LoadErr(); err != nil {
		logger.Warn("could not load high score", "error", err)
		m.hud.Warn("High score unavailable")
	}

	return m
}

func boardHeight(screenH int) int {
	return max(screenH-hudHeight-helpHeight, 1)
}

// eventLogger returns a listener that logs notable session events.
func eventLogger(logger *log.Logger) snake.Listener {
	return func(e snake.Event) {
		switch e.Kind {
		case snake.EventPhase:
			logger.Debug("phase changed", "phase", e.Phase)
		case snake.EventRestart:
			logger.Debug("restarted")
		case snake.EventLevelUp:
			logger.Info("level up", "level", e.Level, "speed", e.Speed)
		case snake.EventGameOver:
			logger.Info("game over", "score", e.Score, "length", e.Length, "collision", e.Collision)
		case snake.EventHighScore:
			logger.Info("new high score", "score", e.HighScore)
		case snake.EventHighScoreReset:
			logger.Info("high score reset")
		case snake.EventStoreError:
			logger.Warn("score store error", "error", e.Err)
		}
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey applies the key's action to the session immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	m.session.Apply(m.inputFrame)
	m.inputFrame.Clear()
	return m, nil
}

// handleResize processes window resize events. The session is not reset;
// the board is re-centered and a hint is shown if it no longer fits.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs the frame callback and schedules the next frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.session.Frame(now)
	return m, tickCmd(m.config.FrameRate)
}

// saveScreenshot writes the current board to ~/.snake/screenshots.
func (m Model) saveScreenshot() (string, error) {
	snake.Render(m.session.Snapshot(), m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the HUD, the board and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	snake.Render(snap, m.screen)

	return m.hud.View(snap, m.config.ScreenW) + "\n" +
		RenderScreen(m.screen) + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}

// Status returns the HUD status message.
func (m Model) Status() string {
	return m.hud.Status()
}

// Run starts the Bubble Tea program for the session.
func Run(session *snake.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(session, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
