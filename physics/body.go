package physics

import "github.com/go-gl/mathgl/mgl32"

// DefaultGravity is the gravitational acceleration applied to bodies with gravity enabled.
var DefaultGravity = mgl32.Vec3{0, -9.81, 0}

// BodyConfig describes the shape and mass of a RigidBody.
type BodyConfig struct {
	// Mass of the body. Forces and impulses are divided by it.
	Mass float32 `toml:"mass" yaml:"mass"`
	// Height of the collider at a vertical scale of 1. The body's position is the collider centre.
	Height float32 `toml:"height" yaml:"height"`
	// Radius of the collider.
	Radius float32 `toml:"radius" yaml:"radius"`
}

// DefaultBodyConfig returns a two metre tall capsule-sized body of unit mass.
func DefaultBodyConfig() BodyConfig {
	return BodyConfig{Mass: 1, Height: 2, Radius: 0.5}
}

// RigidBody is a reference Body that integrates forces with a semi-implicit Euler step. Continuous forces
// accumulate until the next Integrate call; impulses change the velocity immediately.
type RigidBody struct {
	conf BodyConfig

	pos   mgl32.Vec3
	vel   mgl32.Vec3
	scale mgl32.Vec3

	force      mgl32.Vec3
	drag       float32
	useGravity bool
	gravity    mgl32.Vec3
}

// NewRigidBody returns a body at pos with unit scale and gravity enabled.
func NewRigidBody(pos mgl32.Vec3, conf BodyConfig) *RigidBody {
	if conf.Mass <= 0 {
		conf.Mass = 1
	}
	return &RigidBody{
		conf:       conf,
		pos:        pos,
		scale:      mgl32.Vec3{1, 1, 1},
		useGravity: true,
		gravity:    DefaultGravity,
	}
}

func (b *RigidBody) Position() mgl32.Vec3       { return b.pos }
func (b *RigidBody) SetPosition(pos mgl32.Vec3) { b.pos = pos }
func (b *RigidBody) Velocity() mgl32.Vec3       { return b.vel }
func (b *RigidBody) SetVelocity(v mgl32.Vec3)   { b.vel = v }
func (b *RigidBody) Drag() float32              { return b.drag }
func (b *RigidBody) SetDrag(drag float32)       { b.drag = max(drag, 0) }
func (b *RigidBody) UseGravity() bool           { return b.useGravity }
func (b *RigidBody) SetUseGravity(use bool)     { b.useGravity = use }
func (b *RigidBody) Scale() mgl32.Vec3          { return b.scale }
func (b *RigidBody) SetScale(s mgl32.Vec3)      { b.scale = s }

// SetGravity overrides the gravitational acceleration of the body.
func (b *RigidBody) SetGravity(g mgl32.Vec3) { b.gravity = g }

// PendingForce returns the continuous force accumulated since the last Integrate call.
func (b *RigidBody) PendingForce() mgl32.Vec3 { return b.force }

// HalfHeight returns half of the collider height at the current vertical scale.
func (b *RigidBody) HalfHeight() float32 {
	return b.conf.Height * b.scale.Y() * 0.5
}

// Radius returns the collider radius.
func (b *RigidBody) Radius() float32 {
	return b.conf.Radius
}

func (b *RigidBody) AddForce(f mgl32.Vec3, mode ForceMode) {
	switch mode {
	case ForceModeImpulse:
		b.vel = b.vel.Add(f.Mul(1 / b.conf.Mass))
	default:
		b.force = b.force.Add(f)
	}
}

// Integrate advances the body by dt: accumulated forces and gravity change the velocity, linear drag damps
// it and the position moves along the result. Collision response is left to the world.
func (b *RigidBody) Integrate(dt float32) {
	if dt <= 0 {
		return
	}
	acc := b.force.Mul(1 / b.conf.Mass)
	if b.useGravity {
		acc = acc.Add(b.gravity)
	}
	b.vel = b.vel.Add(acc.Mul(dt))
	b.vel = b.vel.Mul(max(0, 1-b.drag*dt))
	b.pos = b.pos.Add(b.vel.Mul(dt))
	b.force = mgl32.Vec3{}
}
