package sim

import (
	"fmt"
	"io"

	"github.com/freerun/freerun/camera"
	"github.com/freerun/freerun/input"
	"github.com/freerun/freerun/locomotion"
	"github.com/freerun/freerun/oerror"
	"github.com/freerun/freerun/physics"
	"github.com/freerun/freerun/physics/arena"
	"github.com/freerun/freerun/replay"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// Config holds the rates of the two simulation clocks.
type Config struct {
	// FrameRate is the rate in Hz of the variable frame clock when frames are generated by the runner.
	FrameRate float32 `toml:"frame_rate" yaml:"frame_rate"`
	// FixedRate is the rate in Hz of the physics clock.
	FixedRate float32 `toml:"fixed_rate" yaml:"fixed_rate"`
	// MaxFixedSteps caps the physics steps run in one frame. Time beyond the cap is dropped.
	MaxFixedSteps int `toml:"max_fixed_steps" yaml:"max_fixed_steps"`
}

// DefaultConfig returns 60 frames and 50 physics steps per second, the usual engine defaults.
func DefaultConfig() Config {
	return Config{FrameRate: 60, FixedRate: 50, MaxFixedSteps: 8}
}

// Validate returns an error if either rate is not positive or no physics step is allowed per frame.
func (c Config) Validate() error {
	if !(c.FrameRate > 0) || !(c.FixedRate > 0) {
		return oerror.New("frame_rate and fixed_rate must be positive (got %v and %v)", c.FrameRate, c.FixedRate)
	}
	if c.MaxFixedSteps < 1 {
		return oerror.New("max_fixed_steps must be at least 1 (got %d)", c.MaxFixedSteps)
	}
	return nil
}

// FrameDelta returns the duration of one frame.
func (c Config) FrameDelta() float32 {
	return 1 / c.FrameRate
}

// FixedDelta returns the duration of one physics step.
func (c Config) FixedDelta() float32 {
	return 1 / c.FixedRate
}

// Runner drives one controller over an arena with the two clocks: each frame runs however many physics
// steps have accumulated, then the frame update, then camera easing.
type Runner struct {
	conf Config
	log  logrus.FieldLogger

	world      *arena.World
	body       *physics.RigidBody
	camera     *camera.Rig
	controller *locomotion.Controller
	src        input.Source

	acc      float64
	frames   int
	recorder *replay.Recorder
}

// NewRunner spawns a body at pos in the world and attaches a controller to it. src may be nil for a runner
// driven only through Step.
func NewRunner(world *arena.World, pos mgl32.Vec3, src input.Source, conf Config, lc locomotion.Config, bc physics.BodyConfig, log logrus.FieldLogger) (*Runner, error) {
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	body := physics.NewRigidBody(pos, bc)
	rig := camera.NewRig(lc.Camera)
	c, err := locomotion.New(body, world, src, rig, lc, log)
	if err != nil {
		return nil, err
	}
	return &Runner{
		conf:       conf,
		log:        log,
		world:      world,
		body:       body,
		camera:     rig,
		controller: c,
		src:        src,
	}, nil
}

// Record makes the runner append every frame to rec. A nil recorder stops recording.
func (r *Runner) Record(rec *replay.Recorder) {
	r.recorder = rec
}

// Controller returns the controller being driven.
func (r *Runner) Controller() *locomotion.Controller {
	return r.controller
}

// Body returns the simulated body.
func (r *Runner) Body() *physics.RigidBody {
	return r.body
}

// Camera returns the camera rig the controller requests effects on.
func (r *Runner) Camera() *camera.Rig {
	return r.camera
}

// Frames returns the number of frames run so far.
func (r *Runner) Frames() int {
	return r.frames
}

// Frame samples the runner's input source and runs one frame of dt seconds.
func (r *Runner) Frame(dt float32) locomotion.Snapshot {
	return r.Step(input.Sample(r.src, r.controller.Config().Bindings), dt)
}

// Step runs one frame of dt seconds with the input given and returns the resulting snapshot.
func (r *Runner) Step(in input.Frame, dt float32) locomotion.Snapshot {
	if dt < 0 || dt != dt {
		dt = 0
	}
	fixed := r.conf.FixedDelta()
	r.acc += float64(dt)

	steps := 0
	for r.acc+1e-9 >= float64(fixed) && steps < r.conf.MaxFixedSteps {
		r.controller.FixedUpdate(fixed)
		r.world.Step(r.body, fixed)
		r.acc -= float64(fixed)
		steps++
	}
	if steps == r.conf.MaxFixedSteps && r.acc >= float64(fixed) {
		r.log.WithField("dropped", r.acc).Warn("simulation fell behind, dropping accumulated time")
		r.acc = 0
	}

	r.controller.UpdateFrame(in, dt)
	r.camera.Update(dt)
	r.frames++

	snap := r.controller.Snapshot()
	if r.recorder != nil {
		r.recorder.Record(in, dt, steps, snap)
	}
	return snap
}

// Run advances the timeline one frame at a time at the configured frame rate until it is exhausted, calling
// observe after every frame if it is non-nil.
func (r *Runner) Run(tl *input.Timeline, observe func(locomotion.Snapshot)) {
	dt := r.conf.FrameDelta()
	bindings := r.controller.Config().Bindings
	for tl.Advance() {
		snap := r.Step(input.Sample(tl, bindings), dt)
		if observe != nil {
			observe(snap)
		}
	}
}
