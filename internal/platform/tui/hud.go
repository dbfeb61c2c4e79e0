package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// hudHeight is the number of lines the HUD takes above the board.
const hudHeight = 2

var (
	hudLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudValue  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	hudSep    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hudStatus = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	hudWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// HUD tracks the status message from session events and draws the stats
// line above the board.
type HUD struct {
	status string
	warn   bool
}

// NewHUD creates a HUD showing the initial Ready message.
func NewHUD() *HUD {
	return &HUD{status: "Ready — press Enter to play"}
}

// Listen is a snake.Listener that updates the status message.
func (h *HUD) Listen(e snake.Event) {
	switch e.Kind {
	case snake.EventPhase:
		switch e.Phase {
		case snake.PhasePlaying:
			h.set("Playing")
		case snake.PhasePaused:
			h.set("Paused")
		}
	case snake.EventRestart:
		h.set("Restarted")
	case snake.EventLevelUp:
		h.set(fmt.Sprintf("Level up! %d", e.Level))
	case snake.EventGameOver:
		h.set(fmt.Sprintf("Game over — Score: %d", e.Score))
	case snake.EventHighScore:
		if !h.warn {
			h.status += " — New High Score!"
		}
	case snake.EventHighScoreReset:
		h.set("High score reset")
	case snake.EventSettings:
		h.set(fmt.Sprintf("Speed %d, static level %s", e.Speed, onOff(e.Static)))
	case snake.EventStoreError:
		h.status = "Could not save high score"
		h.warn = true
	}
}

// Warn replaces the status with a warning.
func (h *HUD) Warn(msg string) {
	h.status = msg
	h.warn = true
}

func (h *HUD) set(msg string) {
	h.status = msg
	h.warn = false
}

// Status returns the current status message.
func (h *HUD) Status() string {
	return h.status
}

// View renders the stats line and the status line.
func (h *HUD) View(snap snake.Snapshot, width int) string {
	fields := []struct {
		label string
		value string
	}{
		{"Score", fmt.Sprint(snap.Score)},
		{"Length", fmt.Sprint(snap.Length)},
		{"Level", fmt.Sprint(snap.Level)},
		{"High", fmt.Sprint(snap.HighScore)},
		{"Speed", fmt.Sprint(snap.Speed)},
		{"Map", fmt.Sprintf("%d×%d", snap.Grid.Cols, snap.Grid.Rows)},
		{"Static", onOff(snap.StaticLevel)},
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = hudLabel.Render(f.label+" ") + hudValue.Render(f.value)
	}
	stats := strings.Join(parts, hudSep.Render(" │ "))

	style := hudStatus
	if h.warn {
		style = hudWarn
	}
	status := style.Render(h.status)

	if width > 0 {
		stats = lipgloss.PlaceHorizontal(width, lipgloss.Center, stats)
		status = lipgloss.PlaceHorizontal(width, lipgloss.Center, status)
	}
	return stats + "\n" + status
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
