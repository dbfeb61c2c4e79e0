package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newTestModel(t *testing.T) (Model, *snake.Session) {
	t.Helper()
	s := snake.New(snake.Options{Area: 10, Speed: 10, Seed: 11, Store: storage.NewMemory()})
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 20, FrameRate: 60}
	return NewModel(s, cfg, nil), s
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestModelInitialStatus(t *testing.T) {
	m, s := newTestModel(t)

	if s.Phase() != snake.PhaseReady {
		t.Fatalf("phase = %v, want ready", s.Phase())
	}
	if !strings.HasPrefix(m.Status(), "Ready") {
		t.Errorf("status = %q", m.Status())
	}
	if m.Init() == nil {
		t.Error("Init should start the frame loop")
	}
}

func TestModelKeysDriveSession(t *testing.T) {
	m, s := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if s.Phase() != snake.PhasePlaying {
		t.Fatalf("phase = %v after enter, want playing", s.Phase())
	}
	if m.Status() != "Playing" {
		t.Errorf("status = %q, want Playing", m.Status())
	}

	m, _ = update(t, m, runeKey("p"))
	if s.Phase() != snake.PhasePaused {
		t.Errorf("phase = %v after p, want paused", s.Phase())
	}
	if m.Status() != "Paused" {
		t.Errorf("status = %q, want Paused", m.Status())
	}

	m, _ = update(t, m, runeKey("r"))
	if s.Phase() != snake.PhaseReady {
		t.Errorf("phase = %v after r, want ready", s.Phase())
	}
	if m.Status() != "Restarted" {
		t.Errorf("status = %q, want Restarted", m.Status())
	}

	m, _ = update(t, m, runeKey("+"))
	if s.Speed() != 11 {
		t.Errorf("speed = %d after +, want 11", s.Speed())
	}

	_, _ = update(t, m, runeKey("l"))
	if !s.StaticLevel() {
		t.Error("static level should be on after l")
	}
}

func TestModelTickRunsFrames(t *testing.T) {
	m, s := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	head := s.Snapshot().Head()

	t0 := time.Unix(5000, 0)
	m, cmd := update(t, m, TickMsg(t0))
	if cmd == nil {
		t.Fatal("tick should schedule the next frame")
	}
	m, _ = update(t, m, TickMsg(t0.Add(10*time.Millisecond)))
	if s.Snapshot().Head() != head {
		t.Error("snake moved before a tick interval elapsed")
	}

	_, _ = update(t, m, TickMsg(t0.Add(100*time.Millisecond)))
	if got := s.Snapshot().Head(); got.X != head.X+1 || got.Y != head.Y {
		t.Errorf("head = %v, want one step right of %v", got, head)
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, s := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 40-hudHeight-helpHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if s.Phase() != snake.PhasePlaying {
		t.Errorf("resize changed phase to %v", s.Phase())
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	for _, want := range []string{"Score", "Level", "High", "Speed", "10×6", "Static", "Ready"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelViewTooSmall(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 8})

	if !strings.Contains(m.View(), "Window") {
		t.Error("expected a resize hint")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, runeKey("?"))
	if !m.help.ShowAll {
		t.Error("? should expand help")
	}
	m, _ = update(t, m, runeKey("?"))
	if m.help.ShowAll {
		t.Error("? should collapse help")
	}
}
