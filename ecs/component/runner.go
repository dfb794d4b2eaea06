package component

// Runner is the player-controlled dog. Airborne stays set from the jump
// impulse until the floor clamp lands it again.
type Runner struct {
	Airborne   bool
	FrameTimer float64
	FrameIndex int
}

var RunnerComponent = NewComponent[Runner]()
