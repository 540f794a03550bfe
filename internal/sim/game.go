// Package sim implements the flappy simulation: a bird falling under a constant
// per-tick displacement, one gapped obstacle scrolling from right to left, and the
// score/collision state machine (Idle -> Running -> GameOver -> Running).
//
// The pure operations (Fall, Advance, Impulse, Check) work on an explicit State.
// Game wraps them into the fixed-tick object the platform drives.
package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game implements the flappy game logic on top of State.
type Game struct {
	physics Physics
	state   State
	config  core.RuntimeConfig
	audio   Audio

	seeds *rand.Rand // Session RNG: per-run seeds and restart recycling
	rng   *rand.Rand // Run RNG: recycling while running

	run     *Run // Recording of the current run, nil while idle
	lastRun *Run // Last finished run
	runTick int  // Physics ticks since the current run started
}

// New creates a game from a validated configuration.
func New(cfg config.FlappyConfig) *Game {
	return NewWithPhysics(PhysicsFromConfig(cfg))
}

// NewWithPhysics creates a game from raw simulation constants.
func NewWithPhysics(p Physics) *Game {
	return &Game{
		physics: p,
		audio:   NopAudio{},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy"
}

// SetAudio installs the audio collaborator. A nil value silences the game.
func (g *Game) SetAudio(a Audio) {
	if a == nil {
		a = NopAudio{}
	}
	g.audio = a
}

// Physics returns the simulation constants in use.
func (g *Game) Physics() Physics {
	return g.physics
}

// Reset initializes the session: all state back to session start, RNG reseeded.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.state = NewState(g.physics)
	g.seeds = rand.New(rand.NewSource(cfg.Seed))
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.run = nil
	g.lastRun = nil
	g.runTick = 0
	g.audio.PauseAmbient()
}

// Load puts the game at the start of a recorded run so it can be played back.
func (g *Game) Load(r Run) {
	g.physics = r.Physics
	g.state = r.Start
	g.rng = rand.New(rand.NewSource(r.Seed))
	if g.seeds == nil {
		g.seeds = rand.New(rand.NewSource(r.Seed))
	}
	g.runTick = 0
	g.lastRun = nil
	g.run = &Run{Seed: r.Seed, Start: r.Start, Physics: r.Physics}
}

// Step advances the game by one tick.
//
// While idle or after a game over, a jump or start action performs the start
// transition and nothing else happens that tick. While running, an impulse is
// applied first, then gravity, the obstacle advance and the collision check.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.state.Running {
		if !in.Has(core.ActionJump) && !in.Has(core.ActionStart) {
			return core.StepResult{State: g.State()}
		}
		ev := Start(&g.state, g.physics, g.seeds)
		g.beginRun()
		return core.StepResult{State: g.State(), Events: ev}
	}

	g.runTick++
	var ev core.Event

	if in.Has(core.ActionJump) {
		ev |= Impulse(&g.state, g.physics, g.rng)
		g.run.Impulses = append(g.run.Impulses, g.runTick)
	}

	Fall(&g.state, g.physics)

	if Advance(&g.state, g.physics, g.rng) {
		ev |= core.EventScore
	}

	if Check(&g.state, g.physics) {
		ev |= core.EventCollision
		g.audio.PauseAmbient()
		g.audio.PlayHit()
		g.finishRun()
	}

	return core.StepResult{State: g.State(), Events: ev}
}

// beginRun reseeds the run RNG and starts a new recording.
func (g *Game) beginRun() {
	seed := g.seeds.Int63()
	g.rng = rand.New(rand.NewSource(seed))
	g.runTick = 0
	g.run = &Run{
		Seed:    seed,
		Start:   g.state,
		Physics: g.physics,
	}
	g.audio.PlayAmbient()
}

// finishRun closes the current recording.
func (g *Game) finishRun() {
	if g.run == nil {
		return
	}
	g.run.Ticks = g.runTick
	g.run.Score = g.state.Score
	g.lastRun = g.run
	g.run = nil
}

// LastRun returns the most recently finished run.
func (g *Game) LastRun() (Run, bool) {
	if g.lastRun == nil {
		return Run{}, false
	}
	return g.lastRun.Clone(), true
}

// RunTick returns the number of physics ticks in the current or last run.
func (g *Game) RunTick() int {
	return g.runTick
}

// Snapshot returns a copy of the full simulation state for renderers.
func (g *Game) Snapshot() State {
	return g.state
}

// State returns the coarse game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Running:  g.state.Running,
		GameOver: g.state.Ended,
	}
}
