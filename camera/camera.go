package camera

import "github.com/freerun/freerun/game"

// Effects is the camera collaborator. Both calls start an eased transition towards the target over the
// duration given and return immediately; a new call replaces any transition in progress.
type Effects interface {
	SetFieldOfView(target, duration float32)
	SetTilt(angle, duration float32)
}

// Config holds the camera values the locomotion controller requests.
type Config struct {
	// BaseFOV is the field of view outside of a wall run.
	BaseFOV float32 `toml:"base_fov" yaml:"base_fov"`
	// WallRunFOV is the widened field of view while wall running.
	WallRunFOV float32 `toml:"wall_run_fov" yaml:"wall_run_fov"`
	// WallRunTilt is the roll in degrees away from the wall while wall running.
	WallRunTilt float32 `toml:"wall_run_tilt" yaml:"wall_run_tilt"`
	// Duration of every transition in seconds.
	Duration float32 `toml:"duration" yaml:"duration"`
}

// DefaultConfig returns an 80 degree view widened to 90 and tilted 5 degrees while wall running.
func DefaultConfig() Config {
	return Config{BaseFOV: 80, WallRunFOV: 90, WallRunTilt: 5, Duration: 0.25}
}

// Nop is an Effects that discards every request.
type Nop struct{}

func (Nop) SetFieldOfView(float32, float32) {}
func (Nop) SetTilt(float32, float32)        {}

// tween eases a value linearly from a start to a target over a duration.
type tween struct {
	value    float32
	from     float32
	target   float32
	elapsed  float32
	duration float32
}

func (t *tween) start(target, duration float32) {
	t.from, t.target, t.elapsed, t.duration = t.value, target, 0, duration
	if duration <= 0 {
		t.value = target
	}
}

func (t *tween) update(dt float32) {
	if t.value == t.target {
		return
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.value = t.target
		return
	}
	t.value = game.Lerp(t.from, t.target, t.elapsed/t.duration)
}

// Rig is an Effects that keeps the eased field of view and tilt. Update must be called once per frame.
type Rig struct {
	fov  tween
	tilt tween
}

// NewRig returns a Rig resting at the base field of view with no tilt.
func NewRig(conf Config) *Rig {
	r := &Rig{}
	r.fov.value, r.fov.target = conf.BaseFOV, conf.BaseFOV
	return r
}

func (r *Rig) SetFieldOfView(target, duration float32) { r.fov.start(target, duration) }
func (r *Rig) SetTilt(angle, duration float32)         { r.tilt.start(angle, duration) }

// Update advances both transitions by dt seconds.
func (r *Rig) Update(dt float32) {
	r.fov.update(dt)
	r.tilt.update(dt)
}

// FieldOfView returns the current field of view.
func (r *Rig) FieldOfView() float32 { return r.fov.value }

// Tilt returns the current roll in degrees.
func (r *Rig) Tilt() float32 { return r.tilt.value }
