package sim

import (
	"fmt"
	"slices"

	"github.com/freerun/freerun/input"
	"github.com/freerun/freerun/locomotion"
	"github.com/freerun/freerun/physics"
	"github.com/freerun/freerun/replay"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// Scenario is a scripted run on the demo course.
type Scenario struct {
	Name  string
	Spawn mgl32.Vec3
	// Yaw in degrees the body faces for the whole run.
	Yaw   float32
	Steps []input.Step
	// Configure adjusts the locomotion config before the run, e.g. to rebind keys.
	Configure func(c *locomotion.Config)
	// Expect lists states that must each be reached at least once.
	Expect []locomotion.MovementState
}

// Result is the outcome of running a Scenario.
type Result struct {
	Name string
	// States are the movement states in the order they were entered, without repeats of consecutive states.
	States    []locomotion.MovementState
	Final     locomotion.Snapshot
	Recording replay.Recording
}

// Missing returns the expected states the run never reached.
func (r Result) Missing(expect []locomotion.MovementState) []locomotion.MovementState {
	var missing []locomotion.MovementState
	for _, s := range expect {
		if !slices.Contains(r.States, s) {
			missing = append(missing, s)
		}
	}
	return missing
}

// Options are shared by every scenario run.
type Options struct {
	Locomotion locomotion.Config
	Sim        Config
	Body       physics.BodyConfig
	Log        logrus.FieldLogger
}

// DefaultOptions returns the default locomotion, simulation and body configs with no logger.
func DefaultOptions() Options {
	return Options{Locomotion: locomotion.DefaultConfig(), Sim: DefaultConfig(), Body: physics.DefaultBodyConfig()}
}

// Run plays the scenario on a fresh demo course. It returns an error if the runner cannot be built or an
// expected state is never reached.
func (s Scenario) Run(opts Options) (Result, error) {
	lc := opts.Locomotion
	if s.Configure != nil {
		s.Configure(&lc)
	}
	log := opts.Log
	if log != nil {
		log = log.WithField("scenario", s.Name)
	}

	tl := input.NewTimeline(s.Steps...)
	r, err := NewRunner(DemoCourse(), s.Spawn, tl, opts.Sim, lc, opts.Body, log)
	if err != nil {
		return Result{Name: s.Name}, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	r.Controller().SetYaw(s.Yaw)
	rec := replay.NewRecorder(s.Name, 32)
	r.Record(rec)

	res := Result{Name: s.Name}
	r.Run(tl, func(snap locomotion.Snapshot) {
		if n := len(res.States); n == 0 || res.States[n-1] != snap.State {
			res.States = append(res.States, snap.State)
		}
		res.Final = snap
	})
	res.Recording = rec.Recording()

	if missing := res.Missing(s.Expect); len(missing) > 0 {
		return res, fmt.Errorf("scenario %s never reached %v (saw %v)", s.Name, missing, res.States)
	}
	return res, nil
}

// Replay runs the scenario's recording on a fresh course and checks every tick reproduces.
func (s Scenario) Replay(opts Options, rec replay.Recording) error {
	lc := opts.Locomotion
	if s.Configure != nil {
		s.Configure(&lc)
	}
	r, err := NewRunner(DemoCourse(), s.Spawn, nil, opts.Sim, lc, opts.Body, opts.Log)
	if err != nil {
		return fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	r.Controller().SetYaw(s.Yaw)
	return replay.Verify(rec, r.Step)
}

// slideOnC moves sliding to its own key so a slide is not masked by the crouch it shares a key with.
func slideOnC(c *locomotion.Config) {
	c.Bindings.Slide = input.KeyC
}

// Scenarios returns the demo scenarios, one per movement mode.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:   "walk",
			Spawn:  OpenFloor,
			Steps:  []input.Step{input.Move(90, 0, 1)},
			Expect: []locomotion.MovementState{locomotion.StateWalking},
		},
		{
			Name:   "sprint",
			Spawn:  OpenFloor,
			Steps:  []input.Step{input.Move(30, 0, 1), input.Move(90, 0, 1, input.KeyLeftShift)},
			Expect: []locomotion.MovementState{locomotion.StateWalking, locomotion.StateSprinting},
		},
		{
			Name:   "crouch",
			Spawn:  OpenFloor,
			Steps:  []input.Step{input.Hold(10), input.Move(60, 0, 1, input.KeyLeftControl), input.Move(20, 0, 1)},
			Expect: []locomotion.MovementState{locomotion.StateCrouching, locomotion.StateWalking},
		},
		{
			Name:      "slide",
			Spawn:     OpenFloor,
			Steps:     []input.Step{input.Move(30, 0, 1, input.KeyLeftShift), input.Move(60, 0, 1, input.KeyC)},
			Configure: slideOnC,
			Expect:    []locomotion.MovementState{locomotion.StateSprinting, locomotion.StateSliding},
		},
		{
			Name:      "ramp slide",
			Spawn:     RampTop,
			Steps:     []input.Step{input.Hold(30), input.Move(120, 0, 1, input.KeyC)},
			Configure: slideOnC,
			Expect:    []locomotion.MovementState{locomotion.StateSliding},
		},
		{
			Name:   "wall run",
			Spawn:  CorridorLeft,
			Steps:  []input.Step{input.Move(90, 0, 1)},
			Expect: []locomotion.MovementState{locomotion.StateWallRunning},
		},
		{
			Name:  "wall jump",
			Spawn: CorridorLeft,
			Steps: []input.Step{
				input.Move(15, 0, 1),
				input.Move(1, 0, 1, input.KeySpace),
				input.Move(30, 0, 1),
			},
			Expect: []locomotion.MovementState{locomotion.StateWallRunning, locomotion.StateAir},
		},
	}
}
