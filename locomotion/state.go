package locomotion

// MovementState is the single label summarising what the body is doing in a frame.
type MovementState uint8

const (
	StateWalking MovementState = iota
	StateSprinting
	StateCrouching
	StateSliding
	StateWallRunning
	StateAir
)

func (s MovementState) String() string {
	switch s {
	case StateWalking:
		return "walking"
	case StateSprinting:
		return "sprinting"
	case StateCrouching:
		return "crouching"
	case StateSliding:
		return "sliding"
	case StateWallRunning:
		return "wallrunning"
	case StateAir:
		return "air"
	}
	return "unknown"
}

// MarshalText encodes the state by name.
func (s MovementState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// WallRunPhase is the phase of the wall running sub machine.
type WallRunPhase uint8

const (
	// WallRunIdle means no wall run is active and a new one may start.
	WallRunIdle WallRunPhase = iota
	// WallRunRunning means the body is attached to a wall.
	WallRunRunning
	// WallRunExiting is the short window after a wall run ends or a wall jump, during which re-attaching is
	// suppressed.
	WallRunExiting
)

func (p WallRunPhase) String() string {
	switch p {
	case WallRunIdle:
		return "idle"
	case WallRunRunning:
		return "running"
	case WallRunExiting:
		return "exiting"
	}
	return "unknown"
}

func (p WallRunPhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// LocomotionState is the only place the mode flags live. Every mode reads and writes this record through
// the controller; none of them keeps its own copy.
type LocomotionState struct {
	State MovementState

	Sliding     bool
	WallRunning bool
	// Crouching is true between a crouch key press and its release.
	Crouching bool
	// ExitingSlope suppresses slope adhesion from a jump until the jump cooldown elapses.
	ExitingSlope bool
	ReadyToJump  bool
	// JumpCooldown is the time left before ReadyToJump is restored.
	JumpCooldown float32

	SlideTimer float32

	WallRun       WallRunPhase
	WallRunTimer  float32
	ExitWallTimer float32

	Speed SpeedState
}

// newLocomotionState returns the state of a freshly spawned body.
func newLocomotionState() LocomotionState {
	return LocomotionState{State: StateAir, ReadyToJump: true}
}

// timerEpsilon absorbs float32 drift when counting a timer down in fixed steps.
const timerEpsilon = 1e-5

// countdown subtracts dt from t, clamping at zero, and returns true once the timer has run out.
func countdown(t *float32, dt float32) bool {
	*t = max(*t-dt, 0)
	if *t <= timerEpsilon {
		*t = 0
		return true
	}
	return false
}

// expired returns true if a timer has run out.
func expired(t float32) bool {
	return t <= timerEpsilon
}
