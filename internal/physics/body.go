package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Body is a free-falling metaball. Collision is point-based against the
// segment the center travels each frame; Radius is used for spawn margins
// and rendering only, there is no sphere-vs-mesh volumetric test.
type Body struct {
	ID           int
	Position     rl.Vector3
	LastPosition rl.Vector3
	Velocity     rl.Vector3
	Radius       float32
}
