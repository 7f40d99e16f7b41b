package locomotion

import (
	"testing"

	"github.com/freerun/freerun/game"
	"github.com/freerun/freerun/input"
	"github.com/freerun/freerun/physics"
	"github.com/go-gl/mathgl/mgl32"
)

func TestSlideTimer(t *testing.T) {
	conf := DefaultConfig()
	conf.MaxSlideTime = 1
	c, _, _ := newTestController(t, conf, mockWorld{}, standing)

	const dt = float32(1.0 / 60)
	held := input.Frame{Vertical: 1, Slide: input.Button{Held: true}}
	c.UpdateFrame(input.Frame{Vertical: 1, Slide: input.Button{Down: true, Held: true}}, dt)
	if !c.LocomotionState().Sliding {
		t.Fatalf("expected a slide to start")
	}

	ticks := 0
	for c.LocomotionState().Sliding && ticks < 120 {
		c.FixedUpdate(dt)
		c.UpdateFrame(held, dt)
		ticks++
	}
	if ticks < 59 || ticks > 61 {
		t.Fatalf("expected the slide to stop after 60 ticks, stopped after %d", ticks)
	}
}

func TestSlideNeedsMovement(t *testing.T) {
	c, _, _ := newTestController(t, DefaultConfig(), mockWorld{}, standing)
	c.UpdateFrame(input.Frame{Slide: input.Button{Down: true, Held: true}}, 1.0/60)
	if c.LocomotionState().Sliding {
		t.Fatalf("expected no slide without movement input")
	}
}

func TestSlideKeyRelease(t *testing.T) {
	c, b, _ := newTestController(t, DefaultConfig(), mockWorld{}, standing)
	c.UpdateFrame(input.Frame{Vertical: 1, Slide: input.Button{Down: true, Held: true}}, 1.0/60)
	if b.scale.Y() != 0.5 {
		t.Fatalf("expected slide scale 0.5, got %v", b.scale.Y())
	}
	if !b.hasForce(game.Down.Mul(5), physics.ForceModeImpulse) {
		t.Fatalf("expected a downward impulse when sliding")
	}
	c.UpdateFrame(input.Frame{Vertical: 1, Slide: input.Button{Up: true}}, 1.0/60)
	if c.LocomotionState().Sliding || b.scale.Y() != 1 {
		t.Fatalf("expected releasing the key to end the slide and restore scale, got %v", b.scale.Y())
	}
}

func TestSlideDownhillKeepsTimer(t *testing.T) {
	slope := mockWorld{normal: mgl32.Vec3{0, 0.9396926, 0.34202015}}
	c, b, _ := newTestController(t, DefaultConfig(), slope, standing)
	c.StartSlide()
	b.vel = mgl32.Vec3{0, -2, 5}
	b.forces = nil

	c.frame = input.Frame{Vertical: 1}
	c.FixedUpdate(1.0 / 50)
	st := c.LocomotionState()
	if st.SlideTimer != c.conf.MaxSlideTime {
		t.Fatalf("expected the timer to hold while sliding downhill, got %v", st.SlideTimer)
	}
	along := c.facts.Slope.Direction(mgl32.Vec3{0, 0, 1})
	if !b.hasForce(along.Mul(200), physics.ForceModeForce) {
		t.Fatalf("expected the slide force along the slope, got %+v", b.forces)
	}

	// Moving up the slope drains it.
	b.vel = mgl32.Vec3{0, 1, 5}
	c.FixedUpdate(1.0 / 50)
	if c.LocomotionState().SlideTimer >= c.conf.MaxSlideTime {
		t.Fatalf("expected the timer to drain when not descending")
	}
}

func TestSlideDesiredSpeed(t *testing.T) {
	slope := mockWorld{normal: mgl32.Vec3{0, 0.9396926, 0.34202015}}
	c, b, _ := newTestController(t, DefaultConfig(), slope, standing)
	c.StartSlide()
	b.vel = mgl32.Vec3{0, -2, 5}
	c.UpdateFrame(input.Frame{Vertical: 1, Slide: input.Button{Held: true}}, 1.0/60)
	if c.State() != StateSliding || c.st.Speed.DesiredMoveSpeed != c.conf.SlideSpeed {
		t.Fatalf("expected a downhill slide to want the slide speed, got %v at %v", c.State(), c.st.Speed.DesiredMoveSpeed)
	}
}

func TestSlideRefusedWhileWallRunning(t *testing.T) {
	c, _, _ := newTestController(t, DefaultConfig(), mockWorld{wallRight: true}, airborne)
	c.UpdateFrame(input.Frame{Vertical: 1}, 1.0/60)
	if !c.LocomotionState().WallRunning {
		t.Fatalf("expected a wall run to start")
	}
	if c.StartSlide() {
		t.Fatalf("expected the slide to be refused while wall running")
	}
	if c.LocomotionState().Sliding {
		t.Fatalf("expected sliding to stay false")
	}
}
