package locomotion

import (
	"fmt"
	"io"

	"github.com/freerun/freerun/camera"
	"github.com/freerun/freerun/game"
	"github.com/freerun/freerun/input"
	"github.com/freerun/freerun/oerror"
	"github.com/freerun/freerun/physics"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// env bundles the collaborators the modes act on.
type env struct {
	conf *Config
	body physics.Body
	cam  camera.Effects
	log  logrus.FieldLogger

	// startY is the vertical scale of the body when the controller was created.
	startY float32
}

// applyScale recomputes the body's vertical scale from the posture layers. The crouch layer sets an absolute
// scale and the slide layer multiplies it, so releasing one never undoes the other.
func (e *env) applyScale(st *LocomotionState) {
	y := e.startY
	if st.Crouching {
		y = e.conf.CrouchYScale
	}
	if st.Sliding {
		y *= e.conf.SlideYScale
	}
	s := e.body.Scale()
	s[1] = y
	e.body.SetScale(s)
}

// endSlide clears the slide flag and its posture layer.
func (e *env) endSlide(st *LocomotionState) {
	if !st.Sliding {
		return
	}
	st.Sliding = false
	st.SlideTimer = 0
	e.applyScale(st)
	e.log.Debug("slide ended")
}

// Controller drives a rigid body from player input. Update is called once per rendered frame and
// FixedUpdate once per physics step, both from the same goroutine.
type Controller struct {
	env
	world physics.World
	src   input.Source

	probes   Probes
	machine  *ModeMachine
	governor Governor
	slider   Slider
	wallRun  WallRunner

	orientation game.Orientation
	st          LocomotionState
	facts       Facts
	frame       input.Frame
}

// New creates a Controller for the body given. The world, source and camera may be nil: probes then report no
// contact, input is idle and camera requests are dropped. A nil logger discards all output.
func New(body physics.Body, world physics.World, src input.Source, cam camera.Effects, conf Config, log logrus.FieldLogger) (*Controller, error) {
	if body == nil {
		return nil, oerror.New("locomotion: a body is required")
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid locomotion config: %w", err)
	}
	if cam == nil {
		cam = camera.Nop{}
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	c := &Controller{
		world: world,
		src:   src,
		st:    newLocomotionState(),
	}
	c.env = env{
		conf:   &conf,
		body:   body,
		cam:    cam,
		log:    log,
		startY: body.Scale().Y(),
	}
	c.probes = Probes{World: world, Conf: c.conf}
	c.machine = NewModeMachine(c.conf, log)
	c.governor = newGovernor(c.conf)
	c.slider = Slider{env: &c.env}
	c.wallRun = WallRunner{env: &c.env}
	return c, nil
}

// Config returns a copy of the config the controller runs with.
func (c *Controller) Config() Config {
	return *c.conf
}

// SetYaw sets the facing of the orientation frame in degrees.
func (c *Controller) SetYaw(yaw float32) {
	if game.Finite(yaw) {
		c.orientation.Yaw = yaw
	}
}

// Orientation returns the current orientation frame.
func (c *Controller) Orientation() game.Orientation {
	return c.orientation
}

// State returns the movement state resolved by the last frame.
func (c *Controller) State() MovementState {
	return c.st.State
}

// Update samples input from the controller's source and runs one frame.
func (c *Controller) Update(dt float32) {
	c.UpdateFrame(input.Sample(c.src, c.conf.Bindings), dt)
}

// UpdateFrame runs one frame with the input given.
func (c *Controller) UpdateFrame(in input.Frame, dt float32) {
	dt = sanitiseDelta(dt)
	c.frame = in
	c.facts = c.probes.Sense(c.body, c.orientation)

	c.tickJumpCooldown(dt)
	c.handleInput(in)
	c.slider.HandleInput(&c.st, in)
	c.wallRun.Update(&c.st, in, c.facts, dt)
	c.speedControl()

	prev := c.st.State
	c.facts.Velocity = c.body.Velocity()
	c.machine.Advance(&c.st, in, c.facts)
	c.governor.Resolve(&c.st.Speed)
	c.governor.Step(&c.st.Speed, dt, c.slope())
	if prev != c.st.State {
		c.log.WithFields(logrus.Fields{"from": prev, "to": c.st.State}).Debug("movement state changed")
	}

	if c.facts.Grounded {
		c.body.SetDrag(c.conf.GroundDrag)
	} else {
		c.body.SetDrag(0)
	}
}

// FixedUpdate runs one physics step, applying the forces of every active mode.
func (c *Controller) FixedUpdate(dt float32) {
	dt = sanitiseDelta(dt)
	c.facts = c.probes.Sense(c.body, c.orientation)

	c.movePlayer()
	c.slider.FixedUpdate(&c.st, c.frame, c.facts, c.orientation, dt)
	c.wallRun.FixedUpdate(&c.st, c.frame, c.facts, c.orientation)
}

// StartSlide begins a slide regardless of input. It returns false if the slide was refused.
func (c *Controller) StartSlide() bool {
	return c.slider.Start(&c.st)
}

// StopSlide ends the slide in progress, if any.
func (c *Controller) StopSlide() {
	c.slider.Stop(&c.st)
}

// WallJump launches the body off the wall it is touching. It returns false if no wall is in reach.
func (c *Controller) WallJump() bool {
	c.facts = c.probes.Sense(c.body, c.orientation)
	return c.wallRun.WallJump(&c.st, c.facts)
}

// Reset returns the controller to the state of a freshly spawned body. The body's position and velocity are
// left untouched.
func (c *Controller) Reset() {
	wasWallRunning := c.st.WallRunning
	c.st = newLocomotionState()
	c.facts = Facts{}
	c.frame = input.Frame{}
	c.applyScale(&c.st)
	if wasWallRunning {
		c.cam.SetFieldOfView(c.conf.Camera.BaseFOV, c.conf.Camera.Duration)
		c.cam.SetTilt(0, c.conf.Camera.Duration)
	}
	c.body.SetUseGravity(true)
	c.log.Debug("controller reset")
}

// slope returns the slope contact of the latest probe, or nil when not on a slope.
func (c *Controller) slope() *SlopeContact {
	if !c.facts.OnSlope {
		return nil
	}
	s := c.facts.Slope
	return &s
}

// sanitiseDelta turns negative and non-finite time steps into zero.
func sanitiseDelta(dt float32) float32 {
	if !game.Finite(dt) || dt < 0 {
		return 0
	}
	return dt
}

// impulse is shorthand for an instantaneous push on the body.
func (e *env) impulse(f mgl32.Vec3) {
	e.body.AddForce(f, physics.ForceModeImpulse)
}
