package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout constants. Each board cell is drawn two characters wide so the
// board looks square in a terminal.
const (
	hudHeight = 2
	cellWidth = 2
)

// View carries presentation-only details the renderer needs besides the state.
type View struct {
	Title        string // Preset title shown in the HUD
	WinningScore int
	Best         int  // Best score of the session, 0 hides it
	Paused       bool // Driver is paused
}

// RequiredSize returns the smallest screen that fits a board of the given size.
func RequiredSize(boardSize int) (w, h int) {
	return boardSize*cellWidth + 2, boardSize + 2 + hudHeight
}

// Render draws the state into dst. dst is cleared first.
func Render(s GameState, v View, dst *core.Screen) {
	dst.Clear()
	renderHUD(s, v, dst)

	reqW, reqH := RequiredSize(s.BoardSize)
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	if !area.Fits(reqW, reqH-hudHeight) {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", reqW, reqH))
		return
	}

	frame := area.Centered(reqW, reqH-hudHeight)
	frame.Y = hudHeight
	dst.DrawBox(frame, core.ColorGray)

	origin := func(p Position) (int, int) {
		return frame.X + 1 + p.X*cellWidth, frame.Y + 1 + p.Y
	}

	for y := 0; y < s.BoardSize; y++ {
		for x := 0; x < s.BoardSize; x++ {
			sx, sy := origin(Position{X: x, Y: y})
			dst.SetColored(sx, sy, '·', core.ColorGray)
		}
	}

	if s.Status != StatusWon && !s.Occupies(s.Food) {
		fx, fy := origin(s.Food)
		dst.SetColored(fx, fy, '*', core.ColorBrightRed)
	}

	// Draw tail first so the head wins if segments ever overlap.
	for i := len(s.Snake) - 1; i >= 0; i-- {
		sx, sy := origin(s.Snake[i])
		switch {
		case i > 0:
			dst.SetColored(sx, sy, 'o', core.ColorGreen)
		case s.Status == StatusGameOver:
			dst.SetColored(sx, sy, 'X', core.ColorRed)
		default:
			dst.SetColored(sx, sy, '@', core.ColorBrightGreen)
		}
	}

	switch {
	case s.Status == StatusNotStarted:
		renderOverlay(dst, "S N A K E", "Press Enter to start")
	case s.Status == StatusWon:
		renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d  Enter to play again", s.Score))
	case s.Status == StatusGameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  Enter to restart", s.Score))
	case v.Paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func renderHUD(s GameState, v View, dst *core.Screen) {
	title := v.Title
	if title == "" {
		title = "Snake"
	}

	hud := fmt.Sprintf(" %s — Score: %d", title, s.Score)
	if v.WinningScore > 0 {
		hud += fmt.Sprintf("/%d", v.WinningScore)
	}
	hud += fmt.Sprintf("  Length: %d", s.Len())
	if v.Best > 0 {
		hud += fmt.Sprintf("  Best: %d", v.Best)
	}

	dst.DrawTextColored(0, 0, hud, core.ColorBrightYellow)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := dst.Bounds().Centered(maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
