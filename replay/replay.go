package replay

import (
	"encoding/binary"

	"github.com/chewxy/math32"
	"github.com/freerun/freerun/input"
	"github.com/freerun/freerun/locomotion"
	"github.com/freerun/freerun/oerror"
	"github.com/freerun/freerun/utils"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

// Tick is one recorded frame: the input the controller saw, the frame delta and the fingerprint of the
// snapshot taken after the frame.
type Tick struct {
	Frame       input.Frame `yaml:"frame"`
	Delta       float32     `yaml:"delta"`
	FixedSteps  int         `yaml:"fixed_steps"`
	Fingerprint uint64      `yaml:"fingerprint"`
}

// Recording is an ordered list of ticks.
type Recording struct {
	Name  string `yaml:"name"`
	Ticks []Tick `yaml:"ticks"`
}

// Len returns the number of recorded ticks.
func (r Recording) Len() int {
	return len(r.Ticks)
}

// Recorder collects ticks into a Recording and keeps the most recent snapshots for inspection.
type Recorder struct {
	rec     Recording
	history *utils.CircularQueue[locomotion.Snapshot]
}

// NewRecorder returns a Recorder keeping the last historySize snapshots.
func NewRecorder(name string, historySize int) *Recorder {
	return &Recorder{
		rec:     Recording{Name: name},
		history: utils.NewCircularQueue[locomotion.Snapshot](historySize, nil),
	}
}

// Record appends a tick for the frame given and the snapshot it produced.
func (r *Recorder) Record(in input.Frame, dt float32, fixedSteps int, snap locomotion.Snapshot) {
	r.rec.Ticks = append(r.rec.Ticks, Tick{
		Frame:       in,
		Delta:       dt,
		FixedSteps:  fixedSteps,
		Fingerprint: Fingerprint(snap),
	})
	if r.history.Cap() > 0 {
		_ = r.history.Append(snap)
	}
}

// Recording returns a copy of everything recorded so far.
func (r *Recorder) Recording() Recording {
	return Recording{Name: r.rec.Name, Ticks: append([]Tick(nil), r.rec.Ticks...)}
}

// History returns the retained snapshots from oldest to newest.
func (r *Recorder) History() []locomotion.Snapshot {
	out := make([]locomotion.Snapshot, 0, r.history.Len())
	for s := range r.history.Iter() {
		out = append(out, s)
	}
	return out
}

// Fingerprint hashes every field of a snapshot that the simulation determines. Two runs that diverge in any
// flag, timer, speed or kinematic value produce different fingerprints.
func Fingerprint(s locomotion.Snapshot) uint64 {
	buf := make([]byte, 0, 128)
	flags := []bool{s.Sliding, s.WallRunning, s.Crouching, s.ExitingSlope, s.ReadyToJump, s.Easing, s.Grounded, s.OnSlope, s.WallLeft, s.WallRight}
	var packed uint16
	for i, f := range flags {
		if f {
			packed |= 1 << i
		}
	}
	buf = append(buf, byte(s.State), byte(s.WallRun))
	buf = binary.LittleEndian.AppendUint16(buf, packed)

	for _, v := range []float32{s.MoveSpeed, s.DesiredMoveSpeed, s.SlideTimer, s.WallRunTimer, s.ExitWallTimer, s.SlopeAngle, s.Yaw} {
		buf = appendFloat(buf, v)
	}
	for _, v := range []mgl32.Vec3{s.Position, s.Velocity, s.Scale} {
		buf = appendFloat(appendFloat(appendFloat(buf, v[0]), v[1]), v[2])
	}
	return xxh3.Hash(buf)
}

func appendFloat(buf []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math32.Float32bits(v))
}

// Verify feeds every recorded frame to step and compares the fingerprint of the snapshot it returns with the
// recorded one. It returns an error naming the first tick that diverges.
func Verify(rec Recording, step func(in input.Frame, dt float32) locomotion.Snapshot) error {
	for i, tick := range rec.Ticks {
		snap := step(tick.Frame, tick.Delta)
		if got := Fingerprint(snap); got != tick.Fingerprint {
			return oerror.New("replay %q diverged at tick %d: fingerprint %016x, recorded %016x (state %v)", rec.Name, i, got, tick.Fingerprint, snap.State)
		}
	}
	return nil
}
