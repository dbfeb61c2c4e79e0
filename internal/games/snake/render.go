package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used to draw the board.
const (
	runeBody  = '█'
	runeHead  = '█'
	runeEye   = '•'
	runeApple = '●'
	runeStem  = '╵'
)

// BoardSize returns the screen size needed to draw the board, border included.
func BoardSize(snap Snapshot) (w, h int) {
	return snap.Grid.Cols*max(snap.CellWidth, 1) + 2, snap.Grid.Rows + 2
}

// Render draws the board centered on dst. If dst cannot hold the board a
// resize hint is drawn instead.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	w, h := BoardSize(snap)
	bounds := dst.Bounds()
	if w > dst.Width() || h > dst.Height() {
		renderOverlay(dst, bounds, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	board := bounds.CenteredIn(w, h)
	dst.DrawBox(board, core.ColorGray)

	cw := max(snap.CellWidth, 1)
	origin := func(p Position) (int, int) {
		return board.X + 1 + p.X*cw, board.Y + 1 + p.Y
	}

	if snap.Apple.Present {
		x, y := origin(snap.Apple.Pos)
		dst.SetColor(x, y, runeApple, core.ColorBrightRed)
		if cw > 1 {
			dst.SetColor(x+1, y, runeStem, core.ColorBrown)
		}
	}

	// Tail first so the head is drawn on top.
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		x, y := origin(snap.Segments[i])
		if i == 0 {
			for c := range cw {
				dst.SetColor(x+c, y, runeHead, core.ColorBrightGreen)
			}
			dst.SetColor(x+eyeOffset(snap.Direction, cw), y, runeEye, core.ColorGreen)
			continue
		}
		for c := range cw {
			dst.SetColor(x+c, y, runeBody, core.ColorGreen)
		}
	}

	switch snap.Phase {
	case PhaseReady:
		renderOverlay(dst, board, "Ready", "Press Enter to play")
	case PhasePaused:
		renderOverlay(dst, board, "Paused", "Press P to continue")
	case PhaseGameOver:
		renderOverlay(dst, board, "Game Over", fmt.Sprintf("Score: %d  -  Enter to play again", snap.Score))
	}
}

// eyeOffset puts the eye on the leading side of the head.
func eyeOffset(d Direction, cw int) int {
	if d == DirLeft || cw == 1 {
		return 0
	}
	return cw - 1
}

// renderOverlay draws a centered box with two lines of text.
func renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := area.CenteredIn(maxLen+4, 5)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box, box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box, box.Y+3, line2, core.ColorWhite)
}
