package locomotion

import (
	"github.com/freerun/freerun/game"
	"github.com/freerun/freerun/physics"
	"github.com/go-gl/mathgl/mgl32"
)

// SlopeContact describes the surface under the body when it is standing on an incline.
type SlopeContact struct {
	Point  mgl32.Vec3
	Normal mgl32.Vec3
	// Angle between the surface normal and world up, in degrees.
	Angle float32
}

// Direction projects dir onto the slope plane and normalises it. A zero input stays zero.
func (s SlopeContact) Direction(dir mgl32.Vec3) mgl32.Vec3 {
	return game.Normalize(game.ProjectOnPlane(dir, s.Normal))
}

// WallContact is the result of one sideways wall probe.
type WallContact struct {
	Exists bool
	Point  mgl32.Vec3
	Normal mgl32.Vec3
}

// Facts is what the probes found at one instant.
type Facts struct {
	Grounded    bool
	OnSlope     bool
	Slope       SlopeContact
	WallLeft    WallContact
	WallRight   WallContact
	AboveGround bool

	Velocity mgl32.Vec3
}

// Wall returns the wall being run on. The right wall wins when both sides report contact.
func (f Facts) Wall() (WallContact, bool) {
	if f.WallRight.Exists {
		return f.WallRight, true
	}
	if f.WallLeft.Exists {
		return f.WallLeft, true
	}
	return WallContact{}, false
}

// Probes answers the geometry questions the controller asks of the world each tick.
type Probes struct {
	World physics.World
	Conf  *Config
}

// cast performs a single ray cast. A missing world, a non-finite origin, a malformed hit or a world that
// panics all count as no contact.
func (p Probes) cast(origin, dir mgl32.Vec3, dist float32, mask physics.LayerMask) (hit physics.Hit, ok bool) {
	if p.World == nil || !game.FiniteVec3(origin) {
		return physics.Hit{}, false
	}
	defer func() {
		if recover() != nil {
			hit, ok = physics.Hit{}, false
		}
	}()
	hit, ok = p.World.Raycast(origin, dir, dist, mask)
	if ok && !game.FiniteVec3(hit.Normal) {
		return physics.Hit{}, false
	}
	return hit, ok
}

// Grounded returns true if the ground layer is within half the player height plus a small margin below pos.
func (p Probes) Grounded(pos mgl32.Vec3) bool {
	_, ok := p.cast(pos, game.Down, p.Conf.PlayerHeight*0.5+game.GroundProbeMargin, p.Conf.GroundMask)
	return ok
}

// Slope returns the contact below pos if its incline is strictly between flat and the maximum slope angle.
func (p Probes) Slope(pos mgl32.Vec3) (SlopeContact, bool) {
	hit, ok := p.cast(pos, game.Down, p.Conf.PlayerHeight*0.5+game.SlopeProbeMargin, p.Conf.GroundMask)
	if !ok {
		return SlopeContact{}, false
	}
	angle := game.Angle(game.Up, hit.Normal)
	if angle <= 0 || angle >= p.Conf.MaxSlopeAngle {
		return SlopeContact{}, false
	}
	return SlopeContact{Point: hit.Point, Normal: hit.Normal, Angle: angle}, true
}

// Walls casts along the orientation's right and left axes for the wall layer.
func (p Probes) Walls(pos mgl32.Vec3, o game.Orientation) (left, right WallContact) {
	r := o.Right()
	if hit, ok := p.cast(pos, r, p.Conf.WallCheckDistance, p.Conf.WallMask); ok {
		right = WallContact{Exists: true, Point: hit.Point, Normal: hit.Normal}
	}
	if hit, ok := p.cast(pos, r.Mul(-1), p.Conf.WallCheckDistance, p.Conf.WallMask); ok {
		left = WallContact{Exists: true, Point: hit.Point, Normal: hit.Normal}
	}
	return left, right
}

// AboveGround returns true if no ground lies within the minimum jump height below pos.
func (p Probes) AboveGround(pos mgl32.Vec3) bool {
	_, ok := p.cast(pos, game.Down, p.Conf.MinJumpHeight, p.Conf.GroundMask)
	return !ok
}

// Sense runs every probe from the body's current position.
func (p Probes) Sense(body physics.Body, o game.Orientation) Facts {
	pos := body.Position()
	f := Facts{
		Grounded:    p.Grounded(pos),
		AboveGround: p.AboveGround(pos),
		Velocity:    body.Velocity(),
	}
	f.Slope, f.OnSlope = p.Slope(pos)
	f.WallLeft, f.WallRight = p.Walls(pos, o)
	return f
}
