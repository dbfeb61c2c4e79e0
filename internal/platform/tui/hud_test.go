package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestHUDStatusMessages(t *testing.T) {
	tests := []struct {
		name   string
		events []snake.Event
		want   string
	}{
		{"playing", []snake.Event{{Kind: snake.EventPhase, Phase: snake.PhasePlaying}}, "Playing"},
		{"paused", []snake.Event{{Kind: snake.EventPhase, Phase: snake.PhasePaused}}, "Paused"},
		{"restart", []snake.Event{{Kind: snake.EventRestart}}, "Restarted"},
		{"level up", []snake.Event{{Kind: snake.EventLevelUp, Level: 3}}, "Level up! 3"},
		{"game over", []snake.Event{{Kind: snake.EventGameOver, Score: 40}}, "Game over — Score: 40"},
		{
			"new high score",
			[]snake.Event{
				{Kind: snake.EventGameOver, Score: 90},
				{Kind: snake.EventHighScore, Score: 90, HighScore: 90},
			},
			"Game over — Score: 90 — New High Score!",
		},
		{"reset", []snake.Event{{Kind: snake.EventHighScoreReset}}, "High score reset"},
		{"settings", []snake.Event{{Kind: snake.EventSettings, Speed: 12, Static: true}}, "Speed 12, static level On"},
		{"updated keeps status", []snake.Event{{Kind: snake.EventRestart}, {Kind: snake.EventUpdated}}, "Restarted"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHUD()
			for _, e := range tc.events {
				h.Listen(e)
			}
			if h.Status() != tc.want {
				t.Errorf("status = %q, want %q", h.Status(), tc.want)
			}
		})
	}
}

func TestHUDStoreErrorWins(t *testing.T) {
	h := NewHUD()
	h.Listen(snake.Event{Kind: snake.EventGameOver, Score: 50})
	h.Listen(snake.Event{Kind: snake.EventStoreError, Err: errors.New("disk full")})
	h.Listen(snake.Event{Kind: snake.EventHighScore, HighScore: 50})

	if h.Status() != "Could not save high score" {
		t.Errorf("status = %q", h.Status())
	}

	h.Listen(snake.Event{Kind: snake.EventRestart})
	if h.Status() != "Restarted" {
		t.Errorf("status = %q after restart", h.Status())
	}
}

func TestHUDView(t *testing.T) {
	h := NewHUD()
	snap := snake.Snapshot{
		Grid:        snake.Grid{Cols: 30, Rows: 20},
		Score:       120,
		Length:      13,
		Level:       2,
		Speed:       11,
		HighScore:   300,
		StaticLevel: true,
	}

	view := h.View(snap, 0)
	for _, want := range []string{"120", "13", "300", "11", "30×20", "On", "Ready"} {
		if !strings.Contains(view, want) {
			t.Errorf("HUD view missing %q:\n%s", want, view)
		}
	}
	if n := strings.Count(view, "\n") + 1; n != hudHeight {
		t.Errorf("HUD has %d lines, want %d", n, hudHeight)
	}
}
