package game

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNormalizeZero(t *testing.T) {
	if n := Normalize(mgl32.Vec3{}); n != (mgl32.Vec3{}) {
		t.Fatalf("expected zero vector, got %v", n)
	}
	n := Normalize(mgl32.Vec3{3, 0, 4})
	if !Vec3ApproxEq(n, mgl32.Vec3{0.6, 0, 0.8}) {
		t.Fatalf("unexpected normalized vector %v", n)
	}
}

func TestAngle(t *testing.T) {
	cases := []struct {
		a, b mgl32.Vec3
		want float32
	}{
		{Up, Up, 0},
		{Up, mgl32.Vec3{1, 0, 0}, 90},
		{Up, Down, 180},
		{Up, mgl32.Vec3{0, 1, 1}, 45},
		{Up, mgl32.Vec3{}, 0},
	}
	for _, c := range cases {
		if got := Angle(c.a, c.b); math32.Abs(got-c.want) > 1e-3 {
			t.Errorf("Angle(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestProjectOnPlane(t *testing.T) {
	n := Normalize(mgl32.Vec3{0, 1, 1})
	p := ProjectOnPlane(mgl32.Vec3{0, 0, 1}, n)
	if math32.Abs(p.Dot(n)) > 1e-5 {
		t.Fatalf("projection %v is not on plane %v", p, n)
	}
}

func TestOrientationBasis(t *testing.T) {
	o := Orientation{}
	if !Vec3ApproxEq(o.Forward(), mgl32.Vec3{0, 0, 1}) || !Vec3ApproxEq(o.Right(), mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("unexpected basis at yaw 0: %v %v", o.Forward(), o.Right())
	}
	o.Yaw = 90
	if !Vec3ApproxEq(o.Forward(), mgl32.Vec3{1, 0, 0}) || !Vec3ApproxEq(o.Right(), mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("unexpected basis at yaw 90: %v %v", o.Forward(), o.Right())
	}
	if d := o.Forward().Dot(o.Right()); math32.Abs(d) > 1e-5 {
		t.Fatalf("basis not orthogonal: %v", d)
	}
}
