package locomotion

import (
	"github.com/freerun/freerun/game"
	"github.com/freerun/freerun/input"
	"github.com/freerun/freerun/physics"
)

// Slider is the sliding mode. A slide lasts until its key is released or its timer runs out; the timer only
// drains while the slide is not accelerating down a slope.
type Slider struct {
	env *env
}

// HandleInput starts a slide on a slide key press while moving and stops it on release.
func (s Slider) HandleInput(st *LocomotionState, in input.Frame) {
	if in.Slide.Down && in.Moving() {
		s.Start(st)
	}
	if in.Slide.Up && st.Sliding {
		s.Stop(st)
	}
}

// Start begins a slide, shrinking the body and pushing it down. Starting while already sliding restarts the
// timer. A slide is refused while wall running.
func (s Slider) Start(st *LocomotionState) bool {
	if st.WallRunning {
		s.env.log.Debug("slide refused while wall running")
		return false
	}
	st.Sliding = true
	st.SlideTimer = s.env.conf.MaxSlideTime
	s.env.applyScale(st)
	s.env.impulse(game.Down.Mul(game.PostureImpulse))
	s.env.log.Debug("slide started")
	return true
}

// Stop ends the slide and restores the body's scale. It does nothing if no slide is active.
func (s Slider) Stop(st *LocomotionState) {
	s.env.endSlide(st)
}

// FixedUpdate pushes the body along the slide for one physics step.
func (s Slider) FixedUpdate(st *LocomotionState, in input.Frame, f Facts, o game.Orientation, dt float32) {
	if !st.Sliding {
		return
	}
	dir := o.Direction(in.Horizontal, in.Vertical)
	force := s.env.conf.SlideForce

	if !f.OnSlope || s.env.body.Velocity().Y() > game.SlideFreeVelocity {
		s.env.body.AddForce(game.Normalize(dir).Mul(force), physics.ForceModeForce)
		countdown(&st.SlideTimer, dt)
	} else {
		s.env.body.AddForce(f.Slope.Direction(dir).Mul(force), physics.ForceModeForce)
	}

	if expired(st.SlideTimer) {
		s.Stop(st)
	}
}
