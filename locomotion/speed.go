package locomotion

import (
	"github.com/chewxy/math32"
	"github.com/freerun/freerun/game"
)

// SpeedState is the governed speed. MoveSpeed is the cap enforced on the body; DesiredMoveSpeed is what the
// mode machine asked for this frame.
type SpeedState struct {
	MoveSpeed            float32
	DesiredMoveSpeed     float32
	LastDesiredMoveSpeed float32

	ease easing
}

// easing is an interpolation of MoveSpeed from start towards the live desired speed. It completes once
// elapsed reaches gap, the absolute difference measured when it began.
type easing struct {
	active  bool
	elapsed float32
	gap     float32
	start   float32
}

// Easing returns true while MoveSpeed is being interpolated.
func (s SpeedState) Easing() bool {
	return s.ease.active
}

// Governor eases MoveSpeed towards the desired speed. Large jumps in the desired speed are interpolated so
// momentum from a slide or wall run carries over; small ones are applied at once.
type Governor struct {
	Threshold               float32
	SpeedIncreaseMultiplier float32
	SlopeIncreaseMultiplier float32
}

// newGovernor builds a Governor from the speed multipliers in conf.
func newGovernor(conf *Config) Governor {
	return Governor{
		Threshold:               game.SpeedChangeThreshold,
		SpeedIncreaseMultiplier: conf.SpeedIncreaseMultiplier,
		SlopeIncreaseMultiplier: conf.SlopeIncreaseMultiplier,
	}
}

// Resolve reacts to the desired speed written for this frame. It must be called exactly once per frame,
// after the mode machine has run.
func (g Governor) Resolve(s *SpeedState) {
	desired := s.DesiredMoveSpeed
	if math32.Abs(desired-s.LastDesiredMoveSpeed) > g.Threshold && s.MoveSpeed != 0 {
		s.ease = easing{active: true, gap: math32.Abs(desired - s.MoveSpeed), start: s.MoveSpeed}
	} else if !s.ease.active {
		s.MoveSpeed = desired
	}
	s.LastDesiredMoveSpeed = desired
}

// Step advances an easing in progress by dt seconds. slope is nil when the body is not on a slope; on one
// the easing runs faster the steeper the incline.
func (g Governor) Step(s *SpeedState, dt float32, slope *SlopeContact) {
	if !s.ease.active {
		return
	}
	if s.ease.elapsed >= s.ease.gap {
		s.MoveSpeed = s.DesiredMoveSpeed
		s.ease = easing{}
		return
	}
	s.MoveSpeed = game.Lerp(s.ease.start, s.DesiredMoveSpeed, s.ease.elapsed/s.ease.gap)

	rate := dt * g.SpeedIncreaseMultiplier
	if slope != nil {
		rate *= g.SlopeIncreaseMultiplier * (1 + slope.Angle/game.SlopeAngleNormalizer)
	}
	s.ease.elapsed += rate
}

// Cancel drops any easing in progress, leaving MoveSpeed where it is.
func (g Governor) Cancel(s *SpeedState) {
	s.ease = easing{}
}
