package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Apply dispatches every action in the frame to the matching session
// command. Actions the game does not handle (Quit) are ignored.
func (s *Session) Apply(in core.InputFrame) {
	for _, a := range in.List() {
		s.handle(a)
	}
}

func (s *Session) handle(a core.Action) {
	switch a {
	case core.ActionMoveUp:
		s.SetDirection(DirUp.DX, DirUp.DY)
	case core.ActionMoveDown:
		s.SetDirection(DirDown.DX, DirDown.DY)
	case core.ActionMoveLeft:
		s.SetDirection(DirLeft.DX, DirLeft.DY)
	case core.ActionMoveRight:
		s.SetDirection(DirRight.DX, DirRight.DY)
	case core.ActionPause:
		s.TogglePause()
	case core.ActionRestart:
		s.Restart()
	case core.ActionConfirm:
		s.Play()
	case core.ActionSpeedUp:
		s.SetSpeed(s.speed + 1)
	case core.ActionSpeedDown:
		s.SetSpeed(s.speed - 1)
	case core.ActionAreaUp:
		s.SetArea(s.area + 1)
	case core.ActionAreaDown:
		s.SetArea(s.area - 1)
	case core.ActionToggleStatic:
		s.ToggleStaticLevel()
	case core.ActionResetHighScore:
		s.ResetHighScore()
	}
}
