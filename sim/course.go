package sim

import (
	"github.com/freerun/freerun/physics"
	"github.com/freerun/freerun/physics/arena"
	"github.com/go-gl/mathgl/mgl32"
)

// Landmarks of the demo course. The corridor walls face each other across x = 0, the ramp descends along +Z
// east of the corridor and the open floor lies west of it.
var (
	CorridorWallX  = float32(4)
	CorridorMinZ   = float32(-5)
	CorridorMaxZ   = float32(60)
	CorridorHeight = float32(10)

	RampMinX = float32(12)
	RampMaxX = float32(20)
	RampTopZ = float32(0)
	RampEndZ = float32(30)
	RampTopY = float32(8)

	// OpenFloor is a spawn point on flat ground clear of every wall.
	OpenFloor = mgl32.Vec3{-20, 1, 0}
	// CorridorLeft is a spawn point in the air beside the left corridor wall.
	CorridorLeft = mgl32.Vec3{-CorridorWallX + 0.7, 4, 0}
	// RampTop is a spawn point just above the top of the ramp.
	RampTop = mgl32.Vec3{(RampMinX + RampMaxX) / 2, RampTopY + 1.5, RampTopZ + 1}
)

// DemoCourse builds the arena the scenarios run on: a large floor, a walled corridor to run along and a
// ramp to slide down.
func DemoCourse() *arena.World {
	w := arena.New()
	w.AddBox(arena.Floor(0, 100), physics.LayerGround)

	const thickness = 0.5
	w.AddBox(arena.Wall(-CorridorWallX, 0, CorridorHeight, thickness, CorridorMinZ, CorridorMaxZ), physics.LayerWall)
	w.AddBox(arena.Wall(CorridorWallX, 0, CorridorHeight, thickness, CorridorMinZ, CorridorMaxZ), physics.LayerWall)

	w.AddRamp(arena.Ramp{
		MinX:  RampMinX,
		MaxX:  RampMaxX,
		FromZ: RampTopZ,
		ToZ:   RampEndZ,
		FromY: RampTopY,
		ToY:   0,
		Layer: physics.LayerGround,
	})
	return w
}
