package replay

import (
	"testing"

	"github.com/freerun/freerun/input"
	"github.com/freerun/freerun/locomotion"
	"github.com/freerun/freerun/physics"
	"github.com/freerun/freerun/physics/arena"
	"github.com/go-gl/mathgl/mgl32"
)

// stepper builds a controller on a flat floor and returns a function running one frame followed by one
// physics step.
func stepper(t *testing.T) func(in input.Frame, dt float32) locomotion.Snapshot {
	t.Helper()
	w := arena.New()
	w.AddBox(arena.Floor(0, 100), physics.LayerGround)
	body := physics.NewRigidBody(mgl32.Vec3{0, 1, 0}, physics.DefaultBodyConfig())
	c, err := locomotion.New(body, w, nil, nil, locomotion.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return func(in input.Frame, dt float32) locomotion.Snapshot {
		c.FixedUpdate(dt)
		w.Step(body, dt)
		c.UpdateFrame(in, dt)
		return c.Snapshot()
	}
}

func script() []input.Frame {
	frames := make([]input.Frame, 0, 90)
	for i := 0; i < 90; i++ {
		f := input.Frame{Vertical: 1}
		if i >= 30 {
			f.Sprint.Held = true
			f.Sprint.Down = i == 30
		}
		if i == 60 {
			f.Jump = input.Button{Down: true, Held: true}
		}
		frames = append(frames, f)
	}
	return frames
}

func TestReplayIsDeterministic(t *testing.T) {
	step := stepper(t)
	rec := NewRecorder("sprint jump", 16)
	for _, f := range script() {
		rec.Record(f, 1.0/60, 1, step(f, 1.0/60))
	}
	recording := rec.Recording()
	if recording.Len() != 90 {
		t.Fatalf("expected 90 ticks, got %d", recording.Len())
	}
	if err := Verify(recording, stepper(t)); err != nil {
		t.Fatalf("expected the replay to match: %v", err)
	}
}

func TestReplayDetectsDivergence(t *testing.T) {
	step := stepper(t)
	rec := NewRecorder("walk", 0)
	for _, f := range script() {
		rec.Record(f, 1.0/60, 1, step(f, 1.0/60))
	}
	recording := rec.Recording()
	recording.Ticks[45].Frame.Vertical = -1
	if err := Verify(recording, stepper(t)); err == nil {
		t.Fatalf("expected a tampered recording to diverge")
	}
}

func TestRecorderHistory(t *testing.T) {
	step := stepper(t)
	rec := NewRecorder("history", 4)
	for _, f := range script()[:10] {
		rec.Record(f, 1.0/60, 1, step(f, 1.0/60))
	}
	h := rec.History()
	if len(h) != 4 {
		t.Fatalf("expected 4 retained snapshots, got %d", len(h))
	}
	if Fingerprint(h[3]) != rec.Recording().Ticks[9].Fingerprint {
		t.Fatalf("expected the newest snapshot to match the last tick")
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	a := locomotion.Snapshot{MoveSpeed: 7, Position: mgl32.Vec3{1, 2, 3}}
	b := a
	if Fingerprint(a) != Fingerprint(b) {
		t.Fatalf("expected equal snapshots to hash equally")
	}
	b.Position[2] = 3.0001
	if Fingerprint(a) == Fingerprint(b) {
		t.Fatalf("expected a moved body to change the fingerprint")
	}
	b = a
	b.WallRunning = true
	if Fingerprint(a) == Fingerprint(b) {
		t.Fatalf("expected a flag change to change the fingerprint")
	}
}
