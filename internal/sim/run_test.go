package sim

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// recordRun plays one run with a fixed jump pattern until the collision.
func recordRun(t *testing.T, seed int64) (*Game, Run) {
	t.Helper()

	g := New(config.DefaultFlappyConfig())
	g.Reset(testRuntime(seed))
	g.Step(jump())

	for tick := 1; tick <= 100000; tick++ {
		in := core.NewInputFrame()
		// Flap for a while, then let the bird drop to the floor
		if tick <= 400 && tick%8 == 0 {
			in.Set(core.ActionJump)
		}
		if res := g.Step(in); res.Events.Has(core.EventCollision) {
			r, ok := g.LastRun()
			if !ok {
				t.Fatal("collision did not record a run")
			}
			return g, r
		}
	}
	t.Fatal("run never ended")
	return nil, Run{}
}

func TestRunRecording(t *testing.T) {
	g, r := recordRun(t, 99)

	if r.Ticks != g.RunTick() {
		t.Errorf("Ticks = %d, expected %d", r.Ticks, g.RunTick())
	}
	if r.Score != g.Snapshot().Score {
		t.Errorf("Score = %d, expected %d", r.Score, g.Snapshot().Score)
	}
	if !r.Start.Running || r.Start.Ended {
		t.Errorf("recorded start state should be running: %+v", r.Start)
	}
	if len(r.Impulses) == 0 {
		t.Error("expected recorded impulses")
	}
	for i := 1; i < len(r.Impulses); i++ {
		if r.Impulses[i] <= r.Impulses[i-1] {
			t.Fatalf("impulse ticks not increasing: %v", r.Impulses)
		}
	}
	if r.Physics != g.Physics() {
		t.Errorf("recorded physics %+v, expected %+v", r.Physics, g.Physics())
	}
}

func TestReplayReproducesRun(t *testing.T) {
	for _, seed := range []int64{1, 99, 2024} {
		g, r := recordRun(t, seed)

		final, err := Replay(r)
		if err != nil {
			t.Fatalf("seed %d: Replay() error: %v", seed, err)
		}
		if final != g.Snapshot() {
			t.Errorf("seed %d: replayed state %+v, expected %+v", seed, final, g.Snapshot())
		}
	}
}

func TestReplayDetectsDivergence(t *testing.T) {
	_, r := recordRun(t, 5)

	tests := []struct {
		name   string
		mutate func(*Run)
	}{
		{"longer run", func(r *Run) { r.Ticks += 5 }},
		{"different score", func(r *Run) { r.Score++ }},
		{"shorter run", func(r *Run) { r.Ticks-- }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bad := r.Clone()
			tc.mutate(&bad)
			if _, err := Replay(bad); !errors.Is(err, ErrReplayDiverged) {
				t.Errorf("Replay() error = %v, expected ErrReplayDiverged", err)
			}
		})
	}
}

func TestGamePlayback(t *testing.T) {
	_, r := recordRun(t, 17)

	g := New(config.DefaultFlappyConfig())
	g.Reset(testRuntime(0))
	g.Load(r)

	pb := NewPlayback(r)
	for !pb.Done() {
		g.Step(pb.Next())
	}

	got, ok := g.LastRun()
	if !ok {
		t.Fatal("playback did not finish the run")
	}
	if got.Ticks != r.Ticks || got.Score != r.Score {
		t.Errorf("playback ended at tick %d score %d, expected %d/%d", got.Ticks, got.Score, r.Ticks, r.Score)
	}
	if pb.Tick() != r.Ticks {
		t.Errorf("Tick() = %d, expected %d", pb.Tick(), r.Ticks)
	}
}

func TestRunClone(t *testing.T) {
	r := Run{Impulses: []int{1, 2, 3}}
	c := r.Clone()
	c.Impulses[0] = 42
	if r.Impulses[0] != 1 {
		t.Error("Clone shares the impulse slice")
	}
}
