package sim

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

type recordingAudio struct {
	calls []string
}

func (a *recordingAudio) PlayAmbient()  { a.calls = append(a.calls, "ambient") }
func (a *recordingAudio) PauseAmbient() { a.calls = append(a.calls, "pause") }
func (a *recordingAudio) PlayHit()      { a.calls = append(a.calls, "hit") }

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: core.DefaultTickInterval,
		Seed:         seed,
	}
}

func jump() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Jump every 9 ticks to stay airborne for a while
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%9 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	play := func() State {
		g := New(config.DefaultFlappyConfig())
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1, s2 := play(), play()
	if s1 != s2 {
		t.Errorf("Determinism failed:\nrun1 %+v\nrun2 %+v", s1, s2)
	}
}

func TestGameIdleUntilInput(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	g.Reset(testRuntime(1))
	before := g.Snapshot()

	for i := 0; i < 10; i++ {
		res := g.Step(core.NewInputFrame())
		if res.State.Running || res.Events != 0 {
			t.Fatalf("idle game should not run without input: %+v", res)
		}
	}
	if g.Snapshot() != before {
		t.Error("idle ticks must not change state")
	}
}

func TestGameStartTickDoesNotMove(t *testing.T) {
	for _, action := range []core.Action{core.ActionJump, core.ActionStart} {
		g := New(config.DefaultFlappyConfig())
		g.Reset(testRuntime(1))
		before := g.Snapshot()

		in := core.NewInputFrame()
		in.Set(action)
		res := g.Step(in)

		if !res.Events.Has(core.EventStart) {
			t.Errorf("%v: expected EventStart, got %v", action, res.Events)
		}
		after := g.Snapshot()
		if after.BirdY != before.BirdY || after.ObstacleX != before.ObstacleX {
			t.Errorf("%v: start tick moved the scene: %+v -> %+v", action, before, after)
		}
		if !after.Running {
			t.Errorf("%v: game should be running", action)
		}
	}
}

func TestGameEndToEnd(t *testing.T) {
	audio := &recordingAudio{}
	g := New(config.DefaultFlappyConfig())
	g.SetAudio(audio)
	g.Reset(testRuntime(7))
	audio.calls = nil

	res := g.Step(jump())
	if res.State.Score != 0 || !res.State.Running {
		t.Fatalf("after start: %+v", res.State)
	}
	startY := g.Snapshot().BirdY

	for i := 0; i < 50; i++ {
		res = g.Step(core.NewInputFrame())
		if res.State.GameOver {
			t.Fatalf("collided too early at tick %d", i+1)
		}
	}

	p := g.Physics()
	if want := core.Min(startY+300, p.Floor()); g.Snapshot().BirdY != want {
		t.Errorf("after 50 ticks BirdY = %d, expected %d", g.Snapshot().BirdY, want)
	}

	// The obstacle reaches the bird's band on the next tick; the bird sits on the
	// floor, inside the bottom segment of the initial gap.
	res = g.Step(core.NewInputFrame())
	if !res.Events.Has(core.EventCollision) {
		t.Fatalf("expected collision, got events %v state %+v", res.Events, g.Snapshot())
	}
	if !res.State.GameOver || res.State.Running {
		t.Errorf("after collision GameOver=%v Running=%v", res.State.GameOver, res.State.Running)
	}

	want := []string{"ambient", "pause", "hit"}
	if !reflect.DeepEqual(audio.calls, want) {
		t.Errorf("audio calls = %v, expected %v", audio.calls, want)
	}

	// Ended state is frozen until restart
	frozen := g.Snapshot()
	g.Step(core.NewInputFrame())
	if g.Snapshot() != frozen {
		t.Error("state changed after game over without input")
	}
}

func TestGameRestartResetsScore(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	g.Reset(testRuntime(3))
	g.state.Ended = true
	g.state.Score = 5
	g.state.ObstacleX = 10

	res := g.Step(jump())
	if !res.Events.Has(core.EventRestart) {
		t.Fatalf("expected EventRestart, got %v", res.Events)
	}
	if res.State.Score != 0 || !res.State.Running || res.State.GameOver {
		t.Errorf("after restart: %+v", res.State)
	}
	if g.Snapshot().ObstacleX != g.Physics().CanvasW {
		t.Errorf("restart should move the obstacle back to the right edge")
	}
}

func TestGameScoreEvent(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	g.Reset(testRuntime(3))
	g.Step(jump())
	g.state.ObstacleX = -30
	g.state.BirdY = 200

	res := g.Step(core.NewInputFrame())
	if !res.Events.Has(core.EventScore) {
		t.Fatalf("expected EventScore, got %v", res.Events)
	}
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
}

func TestGameImpulseWhileRunning(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	g.Reset(testRuntime(3))
	g.Step(jump())
	y := g.Snapshot().BirdY

	res := g.Step(jump())
	if !res.Events.Has(core.EventImpulse) {
		t.Fatalf("expected EventImpulse, got %v", res.Events)
	}
	// Impulse then one gravity tick in the same step
	p := g.Physics()
	if want := y - p.JumpHeight + p.Gravity; g.Snapshot().BirdY != want {
		t.Errorf("BirdY = %d, expected %d", g.Snapshot().BirdY, want)
	}
}

func TestGameReset(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	g.Reset(testRuntime(42))

	for i := 0; i < 80; i++ {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
	}

	g.Reset(testRuntime(42))

	if got, want := g.Snapshot(), NewState(g.Physics()); got != want {
		t.Errorf("Reset state = %+v, expected %+v", got, want)
	}
	if _, ok := g.LastRun(); ok {
		t.Error("Reset should forget the last run")
	}
	if g.RunTick() != 0 {
		t.Errorf("RunTick() = %d after reset", g.RunTick())
	}
}

func TestGameNilAudio(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	g.SetAudio(nil)
	g.Reset(testRuntime(1))
	g.Step(jump()) // must not panic
}
