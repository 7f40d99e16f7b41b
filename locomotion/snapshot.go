package locomotion

import "github.com/go-gl/mathgl/mgl32"

// Snapshot is a read-only view of the controller after a tick, for HUDs, replays and tests.
type Snapshot struct {
	State MovementState `yaml:"state"`

	Sliding      bool         `yaml:"sliding"`
	WallRunning  bool         `yaml:"wall_running"`
	Crouching    bool         `yaml:"crouching"`
	ExitingSlope bool         `yaml:"exiting_slope"`
	ReadyToJump  bool         `yaml:"ready_to_jump"`
	WallRun      WallRunPhase `yaml:"wall_run"`

	MoveSpeed        float32 `yaml:"move_speed"`
	DesiredMoveSpeed float32 `yaml:"desired_move_speed"`
	Easing           bool    `yaml:"easing"`

	SlideTimer    float32 `yaml:"slide_timer"`
	WallRunTimer  float32 `yaml:"wall_run_timer"`
	ExitWallTimer float32 `yaml:"exit_wall_timer"`

	Grounded   bool    `yaml:"grounded"`
	OnSlope    bool    `yaml:"on_slope"`
	SlopeAngle float32 `yaml:"slope_angle"`
	WallLeft   bool    `yaml:"wall_left"`
	WallRight  bool    `yaml:"wall_right"`

	Position mgl32.Vec3 `yaml:"position"`
	Velocity mgl32.Vec3 `yaml:"velocity"`
	Scale    mgl32.Vec3 `yaml:"scale"`
	Yaw      float32    `yaml:"yaw"`
}

// Snapshot captures the controller's state together with the body's kinematics.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		State:        c.st.State,
		Sliding:      c.st.Sliding,
		WallRunning:  c.st.WallRunning,
		Crouching:    c.st.Crouching,
		ExitingSlope: c.st.ExitingSlope,
		ReadyToJump:  c.st.ReadyToJump,
		WallRun:      c.st.WallRun,

		MoveSpeed:        c.st.Speed.MoveSpeed,
		DesiredMoveSpeed: c.st.Speed.DesiredMoveSpeed,
		Easing:           c.st.Speed.Easing(),

		SlideTimer:    c.st.SlideTimer,
		WallRunTimer:  c.st.WallRunTimer,
		ExitWallTimer: c.st.ExitWallTimer,

		Grounded:  c.facts.Grounded,
		OnSlope:   c.facts.OnSlope,
		WallLeft:  c.facts.WallLeft.Exists,
		WallRight: c.facts.WallRight.Exists,

		Position: c.body.Position(),
		Velocity: c.body.Velocity(),
		Scale:    c.body.Scale(),
		Yaw:      c.orientation.Yaw,
	}
	if c.facts.OnSlope {
		s.SlopeAngle = c.facts.Slope.Angle
	}
	return s
}

// LocomotionState returns a copy of the mode flags and timers.
func (c *Controller) LocomotionState() LocomotionState {
	return c.st
}
