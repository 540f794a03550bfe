// Package gui is the Ebitengine window frontend. It draws the simulation at canvas
// resolution, one pixel per canvas pixel, and maps keyboard and mouse to actions.
package gui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/settings"
	"github.com/vovakirdan/tui-flappy/internal/sim"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const pipeCapHeight = 12

// Muter is implemented by audio collaborators that can be silenced.
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// Options carries the optional collaborators of the window. Every field may be
// left zero.
type Options struct {
	Store    *storage.Store
	Settings *settings.Manager
	Audio    sim.Audio
	Logger   *log.Logger
}

// Window implements ebiten.Game around a simulation.
type Window struct {
	game   *sim.Game
	opts   Options
	muted  bool
	status string
}

// New creates a window frontend and resets the game with seed.
func New(game *sim.Game, seed int64, opts Options) *Window {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Audio != nil {
		game.SetAudio(opts.Audio)
	}

	w := &Window{game: game, opts: opts}
	if muter, ok := opts.Audio.(Muter); ok {
		w.muted = muter.Muted()
	}

	p := game.Physics()
	game.Reset(core.RuntimeConfig{
		ScreenW: p.CanvasW,
		ScreenH: p.CanvasH,
		Seed:    seed,
	})
	return w
}

// Update runs one simulation tick. Ebitengine calls it at the configured TPS.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	in := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.Set(core.ActionStart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		w.toggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		w.toggleFullscreen()
	}

	res := w.game.Step(in)
	if res.Events.Has(core.EventStart) || res.Events.Has(core.EventRestart) {
		w.status = ""
	}
	if res.Events.Has(core.EventCollision) {
		w.saveRun()
	}
	return nil
}

// saveRun journals the run that just ended.
func (w *Window) saveRun() {
	r, ok := w.game.LastRun()
	if !ok {
		return
	}
	w.opts.Logger.Info("run finished", "score", r.Score, "ticks", r.Ticks, "seed", r.Seed)

	if w.opts.Store == nil {
		return
	}
	id, err := w.opts.Store.SaveRun("window", r)
	if err != nil {
		w.opts.Logger.Warn("could not journal run", "error", err)
		return
	}
	w.status = fmt.Sprintf("run #%d saved", id)
}

func (w *Window) toggleMute() {
	muter, ok := w.opts.Audio.(Muter)
	if !ok {
		return
	}
	w.muted = muter.ToggleMute()
	if w.opts.Settings != nil {
		if err := w.opts.Settings.SetMuted(w.muted); err != nil {
			w.opts.Logger.Warn("could not save settings", "error", err)
		}
	}
}

func (w *Window) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if w.opts.Settings != nil {
		if err := w.opts.Settings.SetFullscreen(fullscreen); err != nil {
			w.opts.Logger.Warn("could not save settings", "error", err)
		}
	}
}

// Draw renders the current state.
func (w *Window) Draw(screen *ebiten.Image) {
	s := w.game.Snapshot()
	p := w.game.Physics()

	screen.Fill(core.ColorSky.RGBA())

	// Obstacle
	x := float32(s.ObstacleX)
	ow := float32(p.ObstacleW)
	if s.GapTop > 0 {
		fillRect(screen, x, 0, ow, float32(s.GapTop), core.ColorPipe)
		fillRect(screen, x-2, float32(s.GapTop-pipeCapHeight), ow+4, float32(pipeCapHeight), core.ColorPipeCap)
	}
	if bh := s.BottomHeight(p); bh > 0 {
		top := float32(p.CanvasH - bh)
		fillRect(screen, x, top, ow, float32(bh), core.ColorPipe)
		fillRect(screen, x-2, top, ow+4, float32(pipeCapHeight), core.ColorPipeCap)
	}

	// Bird
	bx, by := float32(p.BirdX), float32(s.BirdY)
	bw, bh := float32(p.BirdW), float32(p.BirdH)
	fillRect(screen, bx, by, bw, bh, core.ColorBird)
	fillRect(screen, bx+bw*0.75, by+bh*0.4, bw*0.25, bh*0.2, core.ColorBeak)

	// HUD
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", s.Score), p.CanvasW/2-28, 8)
	if w.muted {
		ebitenutil.DebugPrintAt(screen, "muted", p.CanvasW-48, p.CanvasH-20)
	}
	if w.status != "" {
		ebitenutil.DebugPrintAt(screen, w.status, 8, p.CanvasH-20)
	}

	switch s.Phase() {
	case core.PhaseIdle:
		w.drawMessage(screen, "FLAPPY", "Space / click to start   Q to quit")
	case core.PhaseGameOver:
		w.drawMessage(screen, "GAME OVER", fmt.Sprintf("Score: %d   Space / click to restart", s.Score))
	}
}

// drawMessage draws a dimmed box with two lines of text in the center.
func (w *Window) drawMessage(screen *ebiten.Image, title, subtitle string) {
	p := w.game.Physics()
	const boxW, boxH = 320, 72
	bx := (p.CanvasW - boxW) / 2
	by := (p.CanvasH - boxH) / 2

	fillRect(screen, float32(bx), float32(by), boxW, boxH, core.ColorFrame)
	// The debug font is 6px per glyph
	ebitenutil.DebugPrintAt(screen, title, bx+(boxW-6*len(title))/2, by+16)
	ebitenutil.DebugPrintAt(screen, subtitle, bx+(boxW-6*len(subtitle))/2, by+44)
}

func fillRect(dst *ebiten.Image, x, y, w, h float32, role core.Color) {
	vector.DrawFilledRect(dst, x, y, w, h, role.RGBA(), false)
}

// Layout keeps the logical screen at canvas size; Ebitengine scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	p := w.game.Physics()
	return p.CanvasW, p.CanvasH
}

// Run opens the window and blocks until it is closed.
func Run(game *sim.Game, seed int64, tick time.Duration, opts Options) error {
	w := New(game, seed, opts)
	p := game.Physics()

	if tick <= 0 {
		tick = core.DefaultTickInterval
	}

	ebiten.SetWindowSize(p.CanvasW, p.CanvasH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(int(time.Second / tick))
	if opts.Settings != nil && opts.Settings.Get().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
