package sim

// Audio is the collaborator that plays the game's two cues.
type Audio interface {
	PlayAmbient()  // Start or resume the background loop
	PauseAmbient() // Pause the background loop
	PlayHit()      // One-shot collision cue
}

// NopAudio discards all cues.
type NopAudio struct{}

func (NopAudio) PlayAmbient()  {}
func (NopAudio) PauseAmbient() {}
func (NopAudio) PlayHit()      {}
