package game

const (
	// GroundProbeMargin extends the grounded ray past the bottom of the collider.
	GroundProbeMargin = float32(0.2)
	// SlopeProbeMargin is slightly longer than GroundProbeMargin so slopes stay detected just past the grounded threshold.
	SlopeProbeMargin = float32(0.3)

	// PostureImpulse is the downward impulse applied when shrinking into a crouch or slide.
	PostureImpulse = float32(5)

	// GroundForceMultiplier scales moveSpeed into the continuous ground/air force.
	GroundForceMultiplier = float32(10)
	// SlopeForceMultiplier scales moveSpeed into the slope-aligned force.
	SlopeForceMultiplier = float32(20)
	// SlopeStickForce pushes the body down while it moves upward on a slope.
	SlopeStickForce = float32(80)
	// WallStickForce pushes the body into the wall it is running on.
	WallStickForce = float32(100)

	// SlideSlopeVelocity is the vertical velocity under which a slope slide counts as accelerating downhill.
	SlideSlopeVelocity = float32(0.1)
	// SlideFreeVelocity is the vertical velocity a downhill slide must stay under to not consume its timer.
	SlideFreeVelocity = float32(-0.1)

	// SpeedChangeThreshold is the desired speed jump above which the governor eases instead of snapping.
	SpeedChangeThreshold = float32(4)
	// SlopeAngleNormalizer converts a slope angle into the easing rate bonus (1 + angle/90).
	SlopeAngleNormalizer = float32(90)
)
