package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestApplyDispatch(t *testing.T) {
	s, _, _ := newTestSession(t)

	s.Apply(core.FrameOf(core.ActionConfirm))
	assert.Equal(t, PhasePlaying, s.Phase())

	s.Apply(core.FrameOf(core.ActionMoveUp))
	if assert.NotNil(t, s.pending) {
		assert.Equal(t, DirUp, *s.pending)
	}

	s.Apply(core.FrameOf(core.ActionPause))
	assert.Equal(t, PhasePaused, s.Phase())

	s.Apply(core.FrameOf(core.ActionSpeedUp))
	assert.Equal(t, 11, s.Speed())
	s.Apply(core.FrameOf(core.ActionSpeedDown, core.ActionSpeedDown))
	assert.Equal(t, 10, s.Speed(), "a frame holds each action once")

	s.Apply(core.FrameOf(core.ActionToggleStatic))
	assert.True(t, s.StaticLevel())

	s.Apply(core.FrameOf(core.ActionAreaUp))
	assert.Equal(t, 11, s.Area())
	assert.Equal(t, PhaseReady, s.Phase())
	s.Apply(core.FrameOf(core.ActionAreaDown))
	assert.Equal(t, 10, s.Area())

	s.highScore = 40
	s.Apply(core.FrameOf(core.ActionResetHighScore))
	assert.Equal(t, 0, s.HighScore())
}

func TestApplyReverseMoveIgnored(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Play()

	s.Apply(core.FrameOf(core.ActionMoveLeft))
	assert.Nil(t, s.pending)
}

func TestApplyRestart(t *testing.T) {
	s, _, rec := newTestSession(t)
	s.Play()
	s.score = 30

	s.Apply(core.FrameOf(core.ActionRestart))

	assert.Equal(t, PhaseReady, s.Phase())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, rec.count(EventRestart))
}

func TestApplyIgnoresQuit(t *testing.T) {
	s, _, rec := newTestSession(t)
	before := s.Snapshot()

	s.Apply(core.FrameOf(core.ActionQuit))

	assert.Equal(t, before, s.Snapshot())
	assert.Empty(t, rec.events)
}
