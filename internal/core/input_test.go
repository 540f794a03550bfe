package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionJump) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) || f.Has(ActionStart) {
		t.Error("Set/Has mismatch")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should be independent of the original")
	}
}

func TestEventHas(t *testing.T) {
	e := EventStart | EventScore
	if !e.Has(EventStart) || !e.Has(EventScore) {
		t.Error("expected start and score bits")
	}
	if e.Has(EventCollision) || e.Has(0) {
		t.Error("unexpected bits reported")
	}
}

func TestGameStatePhase(t *testing.T) {
	tests := []struct {
		state GameState
		want  Phase
	}{
		{GameState{}, PhaseIdle},
		{GameState{Running: true}, PhaseRunning},
		{GameState{GameOver: true}, PhaseGameOver},
	}
	for _, tc := range tests {
		if got := tc.state.Phase(); got != tc.want {
			t.Errorf("%+v.Phase() = %v, expected %v", tc.state, got, tc.want)
		}
	}
}
