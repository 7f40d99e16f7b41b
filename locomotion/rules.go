package locomotion

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/freerun/freerun/game"
	"github.com/freerun/freerun/input"
)

// rule is one row of a precedence table. match decides whether the row applies; desired returns the speed it
// asks for, or false to leave the desired speed as it was.
type rule struct {
	match   func(st *LocomotionState, in input.Frame, f Facts) bool
	desired func(conf *Config, f Facts) (float32, bool)
}

// table is an ordered set of rules keyed by the state they produce. Earlier rows win.
type table = *orderedmap.OrderedMap[MovementState, rule]

// flagRules derive the state from the mode flags owned by the slide and wall running modes.
func flagRules() table {
	t := orderedmap.NewOrderedMap[MovementState, rule]()
	t.Set(StateWallRunning, rule{
		match: func(st *LocomotionState, _ input.Frame, _ Facts) bool { return st.WallRunning },
		desired: func(conf *Config, _ Facts) (float32, bool) {
			return conf.WallRunSpeed, true
		},
	})
	t.Set(StateSliding, rule{
		match: func(st *LocomotionState, _ input.Frame, _ Facts) bool { return st.Sliding },
		desired: func(conf *Config, f Facts) (float32, bool) {
			// Only a descent earns the slide speed. Anywhere else the slide eases back to a sprint.
			if f.OnSlope && f.Velocity.Y() < game.SlideSlopeVelocity {
				return conf.SlideSpeed, true
			}
			return conf.SprintSpeed, true
		},
	})
	return t
}

// postureRules derive the state from held keys and ground contact.
func postureRules() table {
	t := orderedmap.NewOrderedMap[MovementState, rule]()
	t.Set(StateCrouching, rule{
		match: func(_ *LocomotionState, in input.Frame, _ Facts) bool { return in.Crouch.Held },
		desired: func(conf *Config, _ Facts) (float32, bool) {
			return conf.CrouchSpeed, true
		},
	})
	t.Set(StateSprinting, rule{
		match: func(_ *LocomotionState, in input.Frame, f Facts) bool { return f.Grounded && in.Sprint.Held },
		desired: func(conf *Config, _ Facts) (float32, bool) {
			return conf.SprintSpeed, true
		},
	})
	t.Set(StateWalking, rule{
		match: func(_ *LocomotionState, _ input.Frame, f Facts) bool { return f.Grounded },
		desired: func(conf *Config, _ Facts) (float32, bool) {
			return conf.WalkSpeed, true
		},
	})
	t.Set(StateAir, rule{
		match: func(*LocomotionState, input.Frame, Facts) bool { return true },
		// Airborne momentum is kept: whatever was desired last stays desired.
		desired: func(*Config, Facts) (float32, bool) { return 0, false },
	})
	return t
}
