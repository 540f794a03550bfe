package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdChar     = '●'
	BirdBeakChar = '▶'
	PipeChar     = '█'
	PipeCapChar  = '▓'
)

// Render draws the current game state to the screen, projecting canvas pixels onto
// the screen's cells.
func (g *Game) Render(dst *core.Screen) {
	RenderState(dst, g.state, g.physics)
}

// RenderState draws a simulation state. Separate from Game so that playback and
// tests can render arbitrary states.
func RenderState(dst *core.Screen, s State, p Physics) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	proj := projector{p: p, cols: dst.Width(), rows: dst.Height()}

	// Obstacle segments
	top := proj.rect(core.NewRect(s.ObstacleX, 0, p.ObstacleW, s.GapTop))
	bottom := proj.rect(core.NewRect(s.ObstacleX, s.GapTop+p.Gap, p.ObstacleW, s.BottomHeight(p)))
	dst.DrawRect(top, PipeChar, core.ColorPipe)
	dst.DrawRect(bottom, PipeChar, core.ColorPipe)
	if s.GapTop > 0 {
		dst.DrawHLine(top.X, top.Bottom()-1, top.W, PipeCapChar, core.ColorPipeCap)
	}
	if s.BottomHeight(p) > 0 {
		dst.DrawHLine(bottom.X, bottom.Y, bottom.W, PipeCapChar, core.ColorPipeCap)
	}

	// Bird
	bird := proj.rect(core.NewRect(p.BirdX, s.BirdY, p.BirdW, p.BirdH))
	dst.DrawRect(bird, BirdChar, core.ColorBird)
	dst.SetColored(bird.Right()-1, bird.Y, BirdBeakChar, core.ColorBeak)

	// HUD
	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", s.Score), core.ColorScore)

	switch s.Phase() {
	case core.PhaseIdle:
		drawCenteredMessage(dst, "FLAPPY", "Space / Enter to start  |  Q to quit")
	case core.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Space to restart", s.Score))
	}
}

// projector maps canvas pixels onto screen cells.
type projector struct {
	p          Physics
	cols, rows int
}

// rect projects a canvas rectangle, keeping non-empty rectangles at least one cell
// in each direction so thin shapes stay visible.
func (pr projector) rect(r core.Rect) core.Rect {
	if r.Empty() {
		return core.Rect{}
	}
	x0 := core.Scale(r.X, pr.p.CanvasW, pr.cols)
	x1 := core.Scale(r.Right(), pr.p.CanvasW, pr.cols)
	y0 := core.Scale(r.Y, pr.p.CanvasH, pr.rows)
	y1 := core.Scale(r.Bottom(), pr.p.CanvasH, pr.rows)
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorFrame)

	dst.DrawTextColored(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorTitle)
	dst.DrawTextColored(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle, core.ColorText)
}
