package locomotion

import (
	"testing"

	"github.com/freerun/freerun/game"
	"github.com/freerun/freerun/physics"
	"github.com/go-gl/mathgl/mgl32"
)

// mockWorld is a ground plane at height zero with optional walls half a metre either side of the origin
// along the X axis.
type mockWorld struct {
	noGround  bool
	normal    mgl32.Vec3
	wallLeft  bool
	wallRight bool
	panics    bool
}

func (w mockWorld) Raycast(origin, dir mgl32.Vec3, maxDistance float32, mask physics.LayerMask) (physics.Hit, bool) {
	if w.panics {
		panic("world cannot answer")
	}
	switch {
	case dir.Y() < 0 && mask.Contains(physics.LayerGround) && !w.noGround:
		d := origin.Y()
		if d < 0 || d > maxDistance {
			return physics.Hit{}, false
		}
		n := w.normal
		if n == (mgl32.Vec3{}) {
			n = game.Up
		}
		return physics.Hit{Point: game.WithY(origin, 0), Normal: n, Distance: d}, true
	case dir.X() > 0 && mask.Contains(physics.LayerWall) && w.wallRight && maxDistance >= 0.5:
		return physics.Hit{Point: origin.Add(mgl32.Vec3{0.5, 0, 0}), Normal: mgl32.Vec3{-1, 0, 0}, Distance: 0.5}, true
	case dir.X() < 0 && mask.Contains(physics.LayerWall) && w.wallLeft && maxDistance >= 0.5:
		return physics.Hit{Point: origin.Add(mgl32.Vec3{-0.5, 0, 0}), Normal: mgl32.Vec3{1, 0, 0}, Distance: 0.5}, true
	}
	return physics.Hit{}, false
}

type appliedForce struct {
	f    mgl32.Vec3
	mode physics.ForceMode
}

// mockBody records every force. Impulses change velocity at once as if the body had unit mass; nothing is
// integrated.
type mockBody struct {
	pos     mgl32.Vec3
	vel     mgl32.Vec3
	scale   mgl32.Vec3
	drag    float32
	gravity bool
	forces  []appliedForce
}

func newMockBody(pos mgl32.Vec3) *mockBody {
	return &mockBody{pos: pos, scale: mgl32.Vec3{1, 1, 1}, gravity: true}
}

func (b *mockBody) Position() mgl32.Vec3     { return b.pos }
func (b *mockBody) Velocity() mgl32.Vec3     { return b.vel }
func (b *mockBody) SetVelocity(v mgl32.Vec3) { b.vel = v }
func (b *mockBody) SetDrag(drag float32)     { b.drag = drag }
func (b *mockBody) SetUseGravity(use bool)   { b.gravity = use }
func (b *mockBody) UseGravity() bool         { return b.gravity }
func (b *mockBody) Scale() mgl32.Vec3        { return b.scale }
func (b *mockBody) SetScale(s mgl32.Vec3)    { b.scale = s }

func (b *mockBody) AddForce(f mgl32.Vec3, mode physics.ForceMode) {
	b.forces = append(b.forces, appliedForce{f: f, mode: mode})
	if mode == physics.ForceModeImpulse {
		b.vel = b.vel.Add(f)
	}
}

func (b *mockBody) hasForce(f mgl32.Vec3, mode physics.ForceMode) bool {
	for _, a := range b.forces {
		if a.mode == mode && game.Vec3ApproxEq(a.f, f) {
			return true
		}
	}
	return false
}

type mockCamera struct {
	fov, tilt float32
	calls     int
}

func (c *mockCamera) SetFieldOfView(target, _ float32) { c.fov = target; c.calls++ }
func (c *mockCamera) SetTilt(angle, _ float32)         { c.tilt = angle; c.calls++ }

// standing is a body position resting on the mock ground for the default player height.
var standing = mgl32.Vec3{0, 1, 0}

// airborne is a body position far enough above the mock ground to wall run.
var airborne = mgl32.Vec3{0, 5, 0}

func newTestController(t *testing.T, conf Config, w physics.World, pos mgl32.Vec3) (*Controller, *mockBody, *mockCamera) {
	t.Helper()
	b := newMockBody(pos)
	cam := &mockCamera{fov: conf.Camera.BaseFOV}
	c, err := New(b, w, nil, cam, conf, nil)
	if err != nil {
		t.Fatalf("unexpected error creating controller: %v", err)
	}
	return c, b, cam
}
