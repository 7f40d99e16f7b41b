package locomotion

import (
	"github.com/freerun/freerun/camera"
	"github.com/freerun/freerun/input"
	"github.com/freerun/freerun/oerror"
	"github.com/freerun/freerun/physics"
)

// Config is the flat set of tunables the controller is built with. It is read once at construction; changing
// a Config after passing it to New has no effect on the controller.
type Config struct {
	// WalkSpeed is the desired speed on the ground without sprinting.
	WalkSpeed float32 `toml:"walk_speed" yaml:"walk_speed"`
	// SprintSpeed is the desired speed on the ground while sprinting, and the pace a flat slide decays towards.
	SprintSpeed float32 `toml:"sprint_speed" yaml:"sprint_speed"`
	// SlideSpeed is the desired speed while sliding down a slope.
	SlideSpeed float32 `toml:"slide_speed" yaml:"slide_speed"`
	// WallRunSpeed is the desired speed while wall running.
	WallRunSpeed float32 `toml:"wall_run_speed" yaml:"wall_run_speed"`
	// CrouchSpeed is the desired speed while the crouch key is held.
	CrouchSpeed float32 `toml:"crouch_speed" yaml:"crouch_speed"`

	// SpeedIncreaseMultiplier scales how fast the governor eases between desired speeds.
	SpeedIncreaseMultiplier float32 `toml:"speed_increase_multiplier" yaml:"speed_increase_multiplier"`
	// SlopeIncreaseMultiplier further scales easing while on a slope.
	SlopeIncreaseMultiplier float32 `toml:"slope_increase_multiplier" yaml:"slope_increase_multiplier"`

	GroundDrag    float32 `toml:"ground_drag" yaml:"ground_drag"`
	AirMultiplier float32 `toml:"air_multiplier" yaml:"air_multiplier"`
	JumpForce     float32 `toml:"jump_force" yaml:"jump_force"`
	// JumpCooldown is the time in seconds before another jump is allowed and slope adhesion resumes.
	JumpCooldown float32 `toml:"jump_cooldown" yaml:"jump_cooldown"`

	// CrouchYScale is the vertical body scale while crouched.
	CrouchYScale float32 `toml:"crouch_y_scale" yaml:"crouch_y_scale"`

	// PlayerHeight is the standing height used to size the ground and slope probes.
	PlayerHeight float32 `toml:"player_height" yaml:"player_height"`
	// MaxSlopeAngle is the steepest incline in degrees that still counts as a walkable slope.
	MaxSlopeAngle float32           `toml:"max_slope_angle" yaml:"max_slope_angle"`
	GroundMask    physics.LayerMask `toml:"ground_mask" yaml:"ground_mask"`
	WallMask      physics.LayerMask `toml:"wall_mask" yaml:"wall_mask"`

	MaxSlideTime float32 `toml:"max_slide_time" yaml:"max_slide_time"`
	SlideForce   float32 `toml:"slide_force" yaml:"slide_force"`
	// SlideYScale is the vertical scale factor applied on top of the posture scale while sliding.
	SlideYScale float32 `toml:"slide_y_scale" yaml:"slide_y_scale"`

	WallRunForce      float32 `toml:"wall_run_force" yaml:"wall_run_force"`
	WallJumpUpForce   float32 `toml:"wall_jump_up_force" yaml:"wall_jump_up_force"`
	WallJumpSideForce float32 `toml:"wall_jump_side_force" yaml:"wall_jump_side_force"`
	WallClimbSpeed    float32 `toml:"wall_climb_speed" yaml:"wall_climb_speed"`
	MaxWallRunTime    float32 `toml:"max_wall_run_time" yaml:"max_wall_run_time"`
	WallCheckDistance float32 `toml:"wall_check_distance" yaml:"wall_check_distance"`
	// MinJumpHeight is how far above the ground the body must be before a wall run can start.
	MinJumpHeight float32 `toml:"min_jump_height" yaml:"min_jump_height"`
	ExitWallTime  float32 `toml:"exit_wall_time" yaml:"exit_wall_time"`
	// UseGravity keeps gravity on while wall running, partially countered by GravityCounterForce.
	UseGravity          bool    `toml:"use_gravity" yaml:"use_gravity"`
	GravityCounterForce float32 `toml:"gravity_counter_force" yaml:"gravity_counter_force"`

	// CrouchOverridesFlags lets a held crouch key replace the desired speed of an active slide or wall run.
	CrouchOverridesFlags bool `toml:"crouch_overrides_flags" yaml:"crouch_overrides_flags"`

	Bindings input.Bindings `toml:"bindings" yaml:"bindings"`
	Camera   camera.Config  `toml:"camera" yaml:"camera"`
}

// DefaultConfig returns a Config tuned for a two metre tall body of unit mass.
func DefaultConfig() Config {
	return Config{
		WalkSpeed:    7,
		SprintSpeed:  10,
		SlideSpeed:   30,
		WallRunSpeed: 8.5,
		CrouchSpeed:  3.5,

		SpeedIncreaseMultiplier: 1.5,
		SlopeIncreaseMultiplier: 2.5,

		GroundDrag:    4,
		AirMultiplier: 0.4,
		JumpForce:     12,
		JumpCooldown:  0.25,

		CrouchYScale: 0.5,

		PlayerHeight:  2,
		MaxSlopeAngle: 40,
		GroundMask:    physics.LayerGround,
		WallMask:      physics.LayerWall,

		MaxSlideTime: 0.75,
		SlideForce:   200,
		SlideYScale:  0.5,

		WallRunForce:        200,
		WallJumpUpForce:     7,
		WallJumpSideForce:   12,
		WallClimbSpeed:      3,
		MaxWallRunTime:      0.7,
		WallCheckDistance:   0.7,
		MinJumpHeight:       2,
		ExitWallTime:        0.2,
		UseGravity:          true,
		GravityCounterForce: 8,

		CrouchOverridesFlags: true,

		Bindings: input.DefaultBindings(),
		Camera:   camera.DefaultConfig(),
	}
}

// Validate returns an error describing the first value of the Config that the controller cannot run with.
func (c Config) Validate() error {
	nonNegative := []struct {
		name string
		v    float32
	}{
		{"walk_speed", c.WalkSpeed},
		{"sprint_speed", c.SprintSpeed},
		{"slide_speed", c.SlideSpeed},
		{"wall_run_speed", c.WallRunSpeed},
		{"crouch_speed", c.CrouchSpeed},
		{"ground_drag", c.GroundDrag},
		{"air_multiplier", c.AirMultiplier},
		{"jump_force", c.JumpForce},
		{"jump_cooldown", c.JumpCooldown},
		{"max_slide_time", c.MaxSlideTime},
		{"slide_force", c.SlideForce},
		{"wall_run_force", c.WallRunForce},
		{"wall_jump_up_force", c.WallJumpUpForce},
		{"wall_jump_side_force", c.WallJumpSideForce},
		{"wall_climb_speed", c.WallClimbSpeed},
		{"max_wall_run_time", c.MaxWallRunTime},
		{"wall_check_distance", c.WallCheckDistance},
		{"min_jump_height", c.MinJumpHeight},
		{"exit_wall_time", c.ExitWallTime},
		{"gravity_counter_force", c.GravityCounterForce},
	}
	for _, f := range nonNegative {
		if f.v < 0 || f.v != f.v {
			return oerror.New("%s must not be negative (got %v)", f.name, f.v)
		}
	}

	positive := []struct {
		name string
		v    float32
	}{
		{"speed_increase_multiplier", c.SpeedIncreaseMultiplier},
		{"slope_increase_multiplier", c.SlopeIncreaseMultiplier},
		{"player_height", c.PlayerHeight},
		{"crouch_y_scale", c.CrouchYScale},
		{"slide_y_scale", c.SlideYScale},
	}
	for _, f := range positive {
		if !(f.v > 0) {
			return oerror.New("%s must be positive (got %v)", f.name, f.v)
		}
	}

	if !(c.MaxSlopeAngle > 0 && c.MaxSlopeAngle <= 90) {
		return oerror.New("max_slope_angle must be in (0, 90] (got %v)", c.MaxSlopeAngle)
	}
	if c.GroundMask == 0 {
		return oerror.New("ground_mask selects no layers")
	}
	if c.WallMask == 0 {
		return oerror.New("wall_mask selects no layers")
	}
	return nil
}
