package locomotion

import (
	"github.com/freerun/freerun/game"
	"github.com/freerun/freerun/input"
	"github.com/freerun/freerun/physics"
	"github.com/sirupsen/logrus"
)

// WallRunner is the wall running mode. Its phase moves idle -> running -> exiting -> idle: a run starts
// when a wall is beside an airborne body moving forward, ends when the run timer drains or a wall jump is
// made, and can only restart once the exit timer has elapsed.
type WallRunner struct {
	env *env
}

// Update runs the wall running state machine for one frame.
func (w WallRunner) Update(st *LocomotionState, in input.Frame, f Facts, dt float32) {
	wall := f.WallLeft.Exists || f.WallRight.Exists

	switch {
	case wall && in.Vertical > 0 && f.AboveGround && st.WallRun != WallRunExiting:
		if !st.WallRunning {
			w.start(st, f)
		}
		if st.WallRunTimer > 0 {
			countdown(&st.WallRunTimer, dt)
		}
		if expired(st.WallRunTimer) && st.WallRunning {
			w.exit(st)
		}
		if in.Jump.Down {
			w.WallJump(st, f)
		}
	case st.WallRun == WallRunExiting:
		if st.WallRunning {
			w.stop(st)
		}
		if st.ExitWallTimer > 0 {
			countdown(&st.ExitWallTimer, dt)
		}
		if expired(st.ExitWallTimer) {
			st.WallRun = WallRunIdle
		}
	default:
		if st.WallRunning {
			w.stop(st)
		}
		st.WallRun = WallRunIdle
	}
}

func (w WallRunner) start(st *LocomotionState, f Facts) {
	w.env.endSlide(st)

	st.WallRunning = true
	st.WallRun = WallRunRunning
	st.WallRunTimer = w.env.conf.MaxWallRunTime
	w.env.body.SetVelocity(game.WithY(w.env.body.Velocity(), 0))

	cam := w.env.conf.Camera
	w.env.cam.SetFieldOfView(cam.WallRunFOV, cam.Duration)
	side := "right"
	if f.WallLeft.Exists {
		side = "left"
		w.env.cam.SetTilt(-cam.WallRunTilt, cam.Duration)
	}
	if f.WallRight.Exists {
		side = "right"
		w.env.cam.SetTilt(cam.WallRunTilt, cam.Duration)
	}
	w.env.log.WithFields(logrus.Fields{"side": side}).Debug("wall run started")
}

func (w WallRunner) stop(st *LocomotionState) {
	st.WallRunning = false
	cam := w.env.conf.Camera
	w.env.cam.SetFieldOfView(cam.BaseFOV, cam.Duration)
	w.env.cam.SetTilt(0, cam.Duration)
	w.env.log.Debug("wall run ended")
}

// exit enters the exiting phase with a fresh exit timer.
func (w WallRunner) exit(st *LocomotionState) {
	st.WallRun = WallRunExiting
	st.ExitWallTimer = w.env.conf.ExitWallTime
}

// WallJump launches the body up and away from the wall in contact and enters the exiting phase. It returns
// false and does nothing if no wall is in reach.
func (w WallRunner) WallJump(st *LocomotionState, f Facts) bool {
	wall, ok := f.Wall()
	if !ok {
		return false
	}
	w.exit(st)

	force := game.Up.Mul(w.env.conf.WallJumpUpForce).Add(wall.Normal.Mul(w.env.conf.WallJumpSideForce))
	w.env.body.SetVelocity(game.WithY(w.env.body.Velocity(), 0))
	w.env.impulse(force)
	w.env.log.Debug("wall jump")
	return true
}

// FixedUpdate applies the wall running forces for one physics step.
func (w WallRunner) FixedUpdate(st *LocomotionState, in input.Frame, f Facts, o game.Orientation) {
	if !st.WallRunning {
		return
	}
	conf := w.env.conf
	body := w.env.body
	body.SetUseGravity(conf.UseGravity)

	wall, ok := f.Wall()
	if !ok {
		return
	}

	// The wall tangent has two senses; run along the one closer to where the body faces.
	along := wall.Normal.Cross(game.Up)
	fwd := o.Forward()
	if fwd.Sub(along).Len() > fwd.Add(along).Len() {
		along = along.Mul(-1)
	}
	body.AddForce(along.Mul(conf.WallRunForce), physics.ForceModeForce)

	if in.ClimbUp.Held {
		body.SetVelocity(game.WithY(body.Velocity(), conf.WallClimbSpeed))
	}
	if in.ClimbDown.Held {
		body.SetVelocity(game.WithY(body.Velocity(), -conf.WallClimbSpeed))
	}

	// Strafing away from the wall releases the push towards it.
	if !(f.WallLeft.Exists && in.Horizontal > 0) && !(f.WallRight.Exists && in.Horizontal < 0) {
		body.AddForce(wall.Normal.Mul(-game.WallStickForce), physics.ForceModeForce)
	}

	if conf.UseGravity {
		body.AddForce(game.Up.Mul(conf.GravityCounterForce), physics.ForceModeForce)
	}
}
