package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// Up is the world up axis. Bodies driven by the controller never rotate, so it doubles as the body's up axis.
	Up = mgl32.Vec3{0, 1, 0}
	// Down is the world down axis.
	Down = mgl32.Vec3{0, -1, 0}
)

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3ApproxEq determines whether every component of the two vectors is within 1e-5 of each other.
func Vec3ApproxEq(a, b mgl32.Vec3) bool {
	return Float32ApproxEq(a[0], b[0]) && Float32ApproxEq(a[1], b[1]) && Float32ApproxEq(a[2], b[2])
}

// Finite returns true if the value is neither NaN nor infinite.
func Finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// FiniteVec3 returns true if every component of the vector is finite.
func FiniteVec3(v mgl32.Vec3) bool {
	return Finite(v[0]) && Finite(v[1]) && Finite(v[2])
}

// Normalize returns the unit vector of v, or the zero vector if v is too short to have a direction.
// mgl32.Vec3.Normalize divides by the length unconditionally, which turns a zero input into NaNs.
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l <= 1e-5 || !Finite(l) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// ProjectOnPlane removes the component of v that lies along the plane normal n.
func ProjectOnPlane(v, n mgl32.Vec3) mgl32.Vec3 {
	sqr := n.LenSqr()
	if sqr <= 1e-12 {
		return v
	}
	return v.Sub(n.Mul(v.Dot(n) / sqr))
}

// Angle returns the unsigned angle in degrees between a and b. Degenerate vectors have an angle of 0.
func Angle(a, b mgl32.Vec3) float32 {
	denom := math32.Sqrt(a.LenSqr() * b.LenSqr())
	if denom < 1e-15 {
		return 0
	}
	dot := mgl32.Clamp(a.Dot(b)/denom, -1, 1)
	return mgl32.RadToDeg(math32.Acos(dot))
}

// Lerp interpolates between a and b by t, clamping t to [0, 1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*mgl32.Clamp(t, 0, 1)
}

// Horizontal returns the vector with its vertical component dropped.
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], 0, v[2]}
}

// WithY returns v with its vertical component replaced.
func WithY(v mgl32.Vec3, y float32) mgl32.Vec3 {
	v[1] = y
	return v
}

// Orientation is the yaw-only rotation that movement input is expressed in. Pitch belongs to the camera
// and never tilts the movement plane.
type Orientation struct {
	Yaw float32
}

// Forward returns the horizontal unit vector the orientation faces. A yaw of 0 faces +Z.
func (o Orientation) Forward() mgl32.Vec3 {
	r := mgl32.DegToRad(o.Yaw)
	return mgl32.Vec3{math32.Sin(r), 0, math32.Cos(r)}
}

// Right returns the horizontal unit vector to the right of Forward. A yaw of 0 has its right at +X.
func (o Orientation) Right() mgl32.Vec3 {
	r := mgl32.DegToRad(o.Yaw)
	return mgl32.Vec3{math32.Cos(r), 0, -math32.Sin(r)}
}

// Direction combines the two movement axes into a world direction. The result is not normalized.
func (o Orientation) Direction(horizontal, vertical float32) mgl32.Vec3 {
	return o.Forward().Mul(vertical).Add(o.Right().Mul(horizontal))
}
