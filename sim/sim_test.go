package sim

import (
	"testing"

	"github.com/freerun/freerun/input"
	"github.com/freerun/freerun/locomotion"
	"github.com/freerun/freerun/physics"
	"github.com/freerun/freerun/replay"
)

func newTestRunner(t *testing.T, conf Config) *Runner {
	t.Helper()
	r, err := NewRunner(DemoCourse(), OpenFloor, nil, conf, locomotion.DefaultConfig(), physics.DefaultBodyConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func TestRunnerAccumulatesFixedSteps(t *testing.T) {
	r := newTestRunner(t, DefaultConfig())
	rec := replay.NewRecorder("steps", 0)
	r.Record(rec)

	// 60 frames at 60 Hz hold exactly 50 physics steps at 50 Hz.
	for i := 0; i < 60; i++ {
		r.Step(input.Frame{}, 1.0/60)
	}
	total := 0
	for _, tick := range rec.Recording().Ticks {
		if tick.FixedSteps > 1 {
			t.Fatalf("expected at most one physics step per frame at these rates, got %d", tick.FixedSteps)
		}
		total += tick.FixedSteps
	}
	if total < 49 || total > 50 {
		t.Fatalf("expected 50 physics steps in one second, got %d", total)
	}
	if r.Frames() != 60 {
		t.Fatalf("expected 60 frames, got %d", r.Frames())
	}
}

func TestRunnerCapsFixedSteps(t *testing.T) {
	conf := DefaultConfig()
	conf.MaxFixedSteps = 3
	r := newTestRunner(t, conf)
	rec := replay.NewRecorder("cap", 0)
	r.Record(rec)

	r.Step(input.Frame{}, 1)
	if steps := rec.Recording().Ticks[0].FixedSteps; steps != 3 {
		t.Fatalf("expected a long frame to be capped at 3 physics steps, got %d", steps)
	}
	r.Step(input.Frame{}, 0)
	if steps := rec.Recording().Ticks[1].FixedSteps; steps != 0 {
		t.Fatalf("expected dropped time not to carry over, got %d steps", steps)
	}
}

func TestRunnerRestsOnFloor(t *testing.T) {
	r := newTestRunner(t, DefaultConfig())
	for i := 0; i < 120; i++ {
		r.Step(input.Frame{}, 1.0/60)
	}
	snap := r.Controller().Snapshot()
	if !snap.Grounded || snap.State != locomotion.StateWalking {
		t.Fatalf("expected an idle body to stand on the floor, got %+v", snap)
	}
	if y := r.Body().Position().Y(); y < 0.99 || y > 1.01 {
		t.Fatalf("expected the body to rest with its centre at 1, got %v", y)
	}
}

func TestConfigValidate(t *testing.T) {
	for _, c := range []Config{{FrameRate: 0, FixedRate: 50, MaxFixedSteps: 1}, {FrameRate: 60, FixedRate: -1, MaxFixedSteps: 1}, {FrameRate: 60, FixedRate: 50}} {
		if c.Validate() == nil {
			t.Fatalf("expected %+v to be rejected", c)
		}
	}
	if _, err := NewRunner(DemoCourse(), OpenFloor, nil, Config{}, locomotion.DefaultConfig(), physics.DefaultBodyConfig(), nil); err == nil {
		t.Fatalf("expected an invalid simulation config to be rejected")
	}
}

func TestScenarios(t *testing.T) {
	opts := DefaultOptions()
	for _, s := range Scenarios() {
		t.Run(s.Name, func(t *testing.T) {
			res, err := s.Run(opts)
			if err != nil {
				t.Fatalf("%v", err)
			}
			if res.Recording.Len() == 0 {
				t.Fatalf("expected the run to be recorded")
			}
			if err := s.Replay(opts, res.Recording); err != nil {
				t.Fatalf("expected the recording to replay identically: %v", err)
			}
		})
	}
}

func TestWallRunScenarioTiltsCamera(t *testing.T) {
	s := Scenarios()[5]
	tl := input.NewTimeline(input.Move(20, 0, 1))
	r, err := NewRunner(DemoCourse(), s.Spawn, tl, DefaultConfig(), locomotion.DefaultConfig(), physics.DefaultBodyConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.Run(tl, nil)
	if r.Camera().Tilt() != -5 || r.Camera().FieldOfView() != 90 {
		t.Fatalf("expected the camera to settle at a -5 tilt and 90 fov, got %v and %v", r.Camera().Tilt(), r.Camera().FieldOfView())
	}
}
