package arena

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/freerun/freerun/game"
	"github.com/freerun/freerun/physics"
	"github.com/go-gl/mathgl/mgl32"
)

func testWorld() *World {
	w := New()
	w.AddBox(Floor(0, 50), physics.LayerGround)
	w.AddBox(Wall(3, 0, 10, 1, -20, 20), physics.LayerWall)
	w.AddRamp(Ramp{MinX: -2, MaxX: 2, FromZ: 10, ToZ: 20, FromY: 0, ToY: 5, Layer: physics.LayerGround})
	return w
}

func TestWorldContents(t *testing.T) {
	w := testWorld()
	if n := len(w.Colliders()); n != 2 {
		t.Fatalf("expected the floor and the wall, got %d colliders", n)
	}
	if c := w.Colliders()[1]; c.Layer != physics.LayerWall {
		t.Fatalf("expected the second collider on the wall layer, got %v", c.Layer)
	}

	w.AddRamp(Ramp{MinX: 0, MaxX: 1, FromZ: 5, ToZ: 5, FromY: 0, ToY: 1, Layer: physics.LayerGround})
	w.AddRamp(Ramp{MinX: 1, MaxX: 0, FromZ: 0, ToZ: 5, FromY: 0, ToY: 1, Layer: physics.LayerGround})
	if n := len(w.Ramps()); n != 1 {
		t.Fatalf("expected degenerate ramps to be ignored, got %d ramps", n)
	}
}

func TestRaycastFloor(t *testing.T) {
	w := testWorld()
	hit, ok := w.Raycast(mgl32.Vec3{0, 1, 0}, game.Down, 1.2, physics.LayerGround)
	if !ok {
		t.Fatalf("expected to hit the floor")
	}
	if !game.Float32ApproxEq(hit.Distance, 1) || !game.Vec3ApproxEq(hit.Normal, game.Up) {
		t.Fatalf("unexpected floor hit %+v", hit)
	}
	if _, ok := w.Raycast(mgl32.Vec3{0, 1, 0}, game.Down, 0.9, physics.LayerGround); ok {
		t.Fatalf("ray shorter than the gap must not hit")
	}
}

func TestRaycastLayerFilter(t *testing.T) {
	w := testWorld()
	if _, ok := w.Raycast(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, 5, physics.LayerGround); ok {
		t.Fatalf("wall must be filtered out of a ground-only ray")
	}
	hit, ok := w.Raycast(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, 5, physics.LayerWall)
	if !ok {
		t.Fatalf("expected to hit the wall")
	}
	if !game.Float32ApproxEq(hit.Distance, 2.5) || !game.Vec3ApproxEq(hit.Normal, mgl32.Vec3{-1, 0, 0}) {
		t.Fatalf("unexpected wall hit %+v", hit)
	}
}

func TestRaycastRamp(t *testing.T) {
	w := testWorld()
	hit, ok := w.Raycast(mgl32.Vec3{0, 5, 15}, game.Down, 10, physics.LayerGround)
	if !ok {
		t.Fatalf("expected to hit the ramp")
	}
	if !game.Float32ApproxEq(hit.Point.Y(), 2.5) {
		t.Fatalf("expected ramp surface at y=2.5, got %v", hit.Point)
	}
	want := mgl32.RadToDeg(math32.Atan2(5, 10))
	if got := game.Angle(game.Up, hit.Normal); math32.Abs(got-want) > 1e-3 {
		t.Fatalf("expected ramp angle %v, got %v", want, got)
	}
}

func TestRaycastDegenerate(t *testing.T) {
	w := testWorld()
	nan := math32.NaN()
	cases := []struct {
		name      string
		origin    mgl32.Vec3
		direction mgl32.Vec3
		dist      float32
	}{
		{"zero direction", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}, 5},
		{"nan origin", mgl32.Vec3{nan, 1, 0}, game.Down, 5},
		{"nan direction", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, nan, 0}, 5},
		{"infinite distance", mgl32.Vec3{0, 1, 0}, game.Down, math32.Inf(1)},
		{"negative distance", mgl32.Vec3{0, 1, 0}, game.Down, -1},
	}
	for _, c := range cases {
		if _, ok := w.Raycast(c.origin, c.direction, c.dist, physics.LayerAll); ok {
			t.Errorf("%s: expected no contact", c.name)
		}
	}

	var nilWorld *World
	if _, ok := nilWorld.Raycast(mgl32.Vec3{}, game.Down, 1, physics.LayerAll); ok {
		t.Fatalf("nil world must report no contact")
	}
}

func TestStepRestsOnFloor(t *testing.T) {
	w := testWorld()
	b := physics.NewRigidBody(mgl32.Vec3{0, 1.5, 0}, physics.DefaultBodyConfig())
	for range 120 {
		w.Step(b, 1.0/50)
	}
	if y := b.Position().Y(); math32.Abs(y-1) > 0.05 {
		t.Fatalf("expected body centre to rest at y=1, got %v", y)
	}
	if vy := b.Velocity().Y(); vy < -1e-3 {
		t.Fatalf("resting body still falling: %v", vy)
	}
}

func TestStepStopsAtWall(t *testing.T) {
	w := testWorld()
	b := physics.NewRigidBody(mgl32.Vec3{0, 1, 0}, physics.DefaultBodyConfig())
	b.SetVelocity(mgl32.Vec3{10, 0, 0})
	for range 50 {
		w.Step(b, 1.0/50)
	}
	if x := b.Position().X(); x > 2.5-0.5+1e-3 {
		t.Fatalf("body passed into the wall: x=%v", x)
	}
}
