package arena

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/freerun/freerun/game"
	"github.com/freerun/freerun/physics"
	"github.com/go-gl/mathgl/mgl32"
)

// Collider is an axis aligned box on a single layer.
type Collider struct {
	Box   cube.BBox
	Layer physics.LayerMask
}

// Ramp is a one-sided inclined surface spanning [MinX, MaxX] that rises along +Z from FromY at FromZ to
// ToY at ToZ. Ray casts only hit it from above.
type Ramp struct {
	MinX, MaxX float32
	FromZ, ToZ float32
	FromY, ToY float32
	Layer      physics.LayerMask
}

// Normal returns the upward facing unit normal of the ramp surface.
func (r Ramp) Normal() mgl32.Vec3 {
	return game.Normalize(mgl32.Vec3{0, r.ToZ - r.FromZ, -(r.ToY - r.FromY)})
}

// Angle returns the inclination of the ramp in degrees.
func (r Ramp) Angle() float32 {
	return game.Angle(game.Up, r.Normal())
}

// World is a static scene of boxes and ramps. It implements physics.World and resolves RigidBody
// collisions in Step. The zero value is an empty world.
type World struct {
	colliders []Collider
	ramps     []Ramp
}

// New returns an empty World.
func New() *World {
	return &World{}
}

// AddBox adds a box collider on the given layer.
func (w *World) AddBox(bb cube.BBox, layer physics.LayerMask) {
	w.colliders = append(w.colliders, Collider{Box: bb, Layer: layer})
}

// AddRamp adds a ramp. Ramps whose ends are not strictly ordered along Z are ignored.
func (w *World) AddRamp(r Ramp) {
	if r.ToZ <= r.FromZ || r.MaxX <= r.MinX {
		return
	}
	w.ramps = append(w.ramps, r)
}

// Colliders returns the boxes in the world.
func (w *World) Colliders() []Collider {
	return w.colliders
}

// Ramps returns the ramps in the world.
func (w *World) Ramps() []Ramp {
	return w.ramps
}

// Raycast returns the closest surface hit along direction within maxDistance whose layer is selected by
// mask. Boxes that contain the origin are ignored. Degenerate rays never hit.
func (w *World) Raycast(origin, direction mgl32.Vec3, maxDistance float32, mask physics.LayerMask) (physics.Hit, bool) {
	if w == nil || !game.FiniteVec3(origin) || !game.FiniteVec3(direction) || !game.Finite(maxDistance) || maxDistance <= 0 {
		return physics.Hit{}, false
	}
	dir := game.Normalize(direction)
	if dir == (mgl32.Vec3{}) {
		return physics.Hit{}, false
	}
	end := origin.Add(dir.Mul(maxDistance))

	var (
		closest physics.Hit
		found   bool
	)
	for _, c := range w.colliders {
		if c.Layer&mask == 0 || c.Box.Vec3Within(origin) {
			continue
		}
		res, ok := trace.BBoxIntercept(c.Box, origin, end)
		if !ok {
			continue
		}
		dist := res.Position().Sub(origin).Len()
		if dist > maxDistance || (found && dist >= closest.Distance) {
			continue
		}
		closest = physics.Hit{Point: res.Position(), Normal: faceNormal(res.Face()), Distance: dist}
		found = true
	}
	for _, r := range w.ramps {
		if r.Layer&mask == 0 {
			continue
		}
		hit, ok := r.intercept(origin, dir, maxDistance)
		if !ok || (found && hit.Distance >= closest.Distance) {
			continue
		}
		closest, found = hit, true
	}
	return closest, found
}

func (r Ramp) intercept(origin, dir mgl32.Vec3, maxDistance float32) (physics.Hit, bool) {
	n := r.Normal()
	denom := dir.Dot(n)
	if denom > -1e-6 {
		// Parallel to, or coming from below, the surface.
		return physics.Hit{}, false
	}
	p0 := mgl32.Vec3{r.MinX, r.FromY, r.FromZ}
	t := p0.Sub(origin).Dot(n) / denom
	if t < 0 || t > maxDistance {
		return physics.Hit{}, false
	}
	p := origin.Add(dir.Mul(t))
	if p.X() < r.MinX || p.X() > r.MaxX || p.Z() < r.FromZ || p.Z() > r.ToZ {
		return physics.Hit{}, false
	}
	return physics.Hit{Point: p, Normal: n, Distance: t}, true
}

func faceNormal(f cube.Face) mgl32.Vec3 {
	switch f {
	case cube.FaceDown:
		return mgl32.Vec3{0, -1, 0}
	case cube.FaceUp:
		return mgl32.Vec3{0, 1, 0}
	case cube.FaceNorth:
		return mgl32.Vec3{0, 0, -1}
	case cube.FaceSouth:
		return mgl32.Vec3{0, 0, 1}
	case cube.FaceWest:
		return mgl32.Vec3{-1, 0, 0}
	case cube.FaceEast:
		return mgl32.Vec3{1, 0, 0}
	}
	return game.Up
}

// lateralAxes are the directions probed when pushing a body out of walls.
var lateralAxes = [4]mgl32.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 0, 1}, {0, 0, -1}}

// Step integrates the body by dt and then resolves its collisions against the world: the collider is kept
// above the surface below it, under the surface above it and at least its radius away from walls. Velocity
// into a resolved surface is removed.
func (w *World) Step(b *physics.RigidBody, dt float32) {
	b.Integrate(dt)
	if w == nil {
		return
	}

	half := b.HalfHeight()
	if hit, ok := w.Raycast(b.Position(), game.Down, half, physics.LayerAll); ok {
		pos := b.Position()
		pos[1] += half - hit.Distance
		b.SetPosition(pos)
		b.SetVelocity(removeInto(b.Velocity(), hit.Normal))
	}
	if hit, ok := w.Raycast(b.Position(), game.Up, half, physics.LayerAll); ok {
		pos := b.Position()
		pos[1] -= half - hit.Distance
		b.SetPosition(pos)
		b.SetVelocity(removeInto(b.Velocity(), hit.Normal))
	}

	radius := b.Radius()
	for _, axis := range lateralAxes {
		hit, ok := w.Raycast(b.Position(), axis, radius, physics.LayerAll)
		if !ok || hit.Normal.Y() > 0.5 {
			continue
		}
		pen := radius - hit.Distance
		b.SetPosition(b.Position().Add(hit.Normal.Mul(pen)))
		b.SetVelocity(removeInto(b.Velocity(), hit.Normal))
	}
}

// removeInto strips the component of v that points into a surface with normal n.
func removeInto(v, n mgl32.Vec3) mgl32.Vec3 {
	if d := v.Dot(n); d < 0 {
		return v.Sub(n.Mul(d))
	}
	return v
}

// Floor returns a box whose top face is at height y, spanning [-extent, extent] horizontally.
func Floor(y, extent float32) cube.BBox {
	return cube.Box(-extent, y-1, -extent, extent, y, extent)
}

// Wall returns a box of the given thickness standing on y, centred on x and spanning [minZ, maxZ].
func Wall(x, y, height, thickness, minZ, maxZ float32) cube.BBox {
	half := thickness * 0.5
	return cube.Box(x-half, y, minZ, x+half, y+height, maxZ)
}
