package physics

import "github.com/go-gl/mathgl/mgl32"

// LayerMask selects which collider layers a ray cast considers. Layer n is bit 1<<n.
type LayerMask uint32

const (
	LayerDefault LayerMask = 1 << iota
	LayerGround
	LayerWall

	LayerAll LayerMask = ^LayerMask(0)
)

// Contains returns true if the mask includes every bit of other.
func (m LayerMask) Contains(other LayerMask) bool {
	return m&other == other && other != 0
}

// Hit is the closest contact reported by a ray cast.
type Hit struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// World bridges the host physics scene for geometry queries. Implementations must be total: a query the
// world cannot answer returns false rather than panicking.
type World interface {
	Raycast(origin, direction mgl32.Vec3, maxDistance float32, mask LayerMask) (Hit, bool)
}

// ForceMode selects how AddForce interprets its argument.
type ForceMode uint8

const (
	// ForceModeForce is a continuous force, scaled by mass and the fixed step when integrated.
	ForceModeForce ForceMode = iota
	// ForceModeImpulse is an instantaneous change in momentum, scaled by mass only.
	ForceModeImpulse
)

func (m ForceMode) String() string {
	switch m {
	case ForceModeForce:
		return "force"
	case ForceModeImpulse:
		return "impulse"
	}
	return "unknown"
}

// Body is the rigid body the locomotion controller drives. The controller owns it for its whole lifetime;
// rotation is frozen so the body's up axis is always world up.
type Body interface {
	Position() mgl32.Vec3
	Velocity() mgl32.Vec3
	SetVelocity(v mgl32.Vec3)
	AddForce(f mgl32.Vec3, mode ForceMode)

	SetDrag(drag float32)
	SetUseGravity(use bool)
	UseGravity() bool

	Scale() mgl32.Vec3
	SetScale(s mgl32.Vec3)
}
