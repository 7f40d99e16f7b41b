package locomotion

import (
	"github.com/freerun/freerun/game"
	"github.com/freerun/freerun/input"
	"github.com/freerun/freerun/physics"
	"github.com/go-gl/mathgl/mgl32"
)

// handleInput processes the jump and crouch keys for this frame.
func (c *Controller) handleInput(in input.Frame) {
	if in.Jump.Held && c.st.ReadyToJump && c.facts.Grounded {
		c.st.ReadyToJump = false
		c.st.JumpCooldown = c.conf.JumpCooldown
		c.jump()
	}

	if in.Crouch.Down {
		c.st.Crouching = true
		c.applyScale(&c.st)
		c.impulse(game.Down.Mul(game.PostureImpulse))
	}
	if in.Crouch.Up && c.st.Crouching {
		c.st.Crouching = false
		c.applyScale(&c.st)
	}
}

func (c *Controller) jump() {
	c.st.ExitingSlope = true
	c.body.SetVelocity(game.WithY(c.body.Velocity(), 0))
	c.impulse(game.Up.Mul(c.conf.JumpForce))
	c.log.Debug("jumped")
}

// tickJumpCooldown counts the jump cooldown down. Once it elapses another jump is allowed and slope adhesion
// resumes.
func (c *Controller) tickJumpCooldown(dt float32) {
	if c.st.ReadyToJump {
		return
	}
	if countdown(&c.st.JumpCooldown, dt) {
		c.st.ReadyToJump = true
		c.st.ExitingSlope = false
	}
}

// speedControl caps the body's velocity at MoveSpeed. On a slope the whole velocity is capped; elsewhere
// only the horizontal part is, leaving falls and jumps alone.
func (c *Controller) speedControl() {
	v := c.body.Velocity()
	limit := c.st.Speed.MoveSpeed
	if c.facts.OnSlope && !c.st.ExitingSlope {
		if v.Len() > limit {
			c.body.SetVelocity(game.Normalize(v).Mul(limit))
		}
		return
	}
	flat := game.Horizontal(v)
	if flat.Len() > limit {
		capped := game.Normalize(flat).Mul(limit)
		c.body.SetVelocity(mgl32.Vec3{capped.X(), v.Y(), capped.Z()})
	}
}

// movePlayer applies the walking forces for one physics step.
func (c *Controller) movePlayer() {
	dir := c.orientation.Direction(c.frame.Horizontal, c.frame.Vertical)
	speed := c.st.Speed.MoveSpeed

	if c.facts.OnSlope && !c.st.ExitingSlope {
		c.body.AddForce(c.facts.Slope.Direction(dir).Mul(speed*game.SlopeForceMultiplier), physics.ForceModeForce)
		if c.body.Velocity().Y() > 0 {
			c.body.AddForce(game.Down.Mul(game.SlopeStickForce), physics.ForceModeForce)
		}
	}

	force := game.Normalize(dir).Mul(speed * game.GroundForceMultiplier)
	if !c.facts.Grounded {
		force = force.Mul(c.conf.AirMultiplier)
	}
	c.body.AddForce(force, physics.ForceModeForce)

	if !c.st.WallRunning {
		c.body.SetUseGravity(!c.facts.OnSlope)
	}
}
