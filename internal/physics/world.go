package physics

import (
	"log"
	"math/rand"

	"metafall/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// contactOffset lifts the contact point off the surface after a bounce so
// floating-point error can't leave the body just below the triangle.
const contactOffset = 0.001

// World owns the body collection and the collision index, and advances the
// simulation one frame at a time. Bodies are processed in array order; one
// Update runs to completion before the next frame begins.
type World struct {
	Gravity float32 // downward acceleration, units/sec²
	Damping float32 // fraction of speed removed on each bounce

	verts  []rl.Vector3
	tris   []int32
	bounds AABB
	index  *Index
	bodies []Body
	cfg    config.Sim
	rng    *rand.Rand
}

// NewWorld validates the config, builds the collision index over the terrain
// buffers and spawns the body population. The world holds a non-owning
// reference to the terrain buffers; they must stay untouched for the
// session's lifetime.
func NewWorld(vertices []rl.Vector3, indices []int32, bounds AABB, cfg config.Sim) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	index, err := BuildIndex(vertices, indices, bounds, cfg.LeafTriangleThreshold)
	if err != nil {
		return nil, err
	}

	w := &World{
		Gravity: cfg.GravityAcceleration,
		Damping: cfg.GroundDamping,
		verts:   vertices,
		tris:    indices,
		bounds:  bounds,
		index:   index,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}

	w.bodies = make([]Body, cfg.NumBodies)
	for i := range w.bodies {
		w.bodies[i] = Body{
			ID:       i,
			Radius:   cfg.MeanRadius * (0.75 + w.rng.Float32()*0.5),
			Position: w.spawnPoint(cfg.SpawnHeightFraction),
		}
		w.bodies[i].LastPosition = w.bodies[i].Position
	}

	log.Printf("Physics: index built, %d triangles, depth %d, %d bodies",
		index.TriangleCount(), index.Depth(), len(w.bodies))
	return w, nil
}

// Bodies returns the live body slice. Read-only for callers; only the world
// mutates body state.
func (w *World) Bodies() []Body {
	return w.bodies
}

// Index returns the collision index, for debug drawing.
func (w *World) Index() *Index {
	return w.index
}

// Update advances every body by one frame.
func (w *World) Update(deltaTime float32) {
	for i := range w.bodies {
		w.step(&w.bodies[i], deltaTime)
	}
}

// step runs the per-frame state machine for one body: recycle check,
// integration, broad phase, two-pass narrow phase, reflection.
func (w *World) step(b *Body, deltaTime float32) {
	// Fell out of the world: recycle above the terrain. Not a collision.
	if b.Position.Y < w.bounds.Min.Y {
		w.recycle(b, deltaTime)
		return
	}

	// Semi-implicit Euler, single substep. Fast bodies can tunnel through
	// thin geometry; accepted limitation.
	b.Velocity.Y -= w.Gravity * deltaTime
	b.LastPosition = b.Position
	b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, deltaTime))

	candidates, found := w.index.Candidates(b.Position)
	if !found {
		return
	}

	// Pass 1: leaf candidates only. Pass 2: the halved split is not a
	// spatial median, so the leaf can miss the true triangle; an exhaustive
	// scan bounds that failure mode. A miss in both passes is ordinary
	// free fall, not a fault.
	if w.collideAgainst(b, candidates, deltaTime) {
		return
	}
	w.collideAgainst(b, w.tris, deltaTime)
}

// collideAgainst tests the motion segment against each triple in index
// order and resolves the first hit. Reports whether a hit was resolved.
func (w *World) collideAgainst(b *Body, tris []int32, deltaTime float32) bool {
	travel := rl.Vector3Subtract(b.Position, b.LastPosition)
	dist := rl.Vector3Length(travel)
	if dist < rayEpsilon {
		return false
	}
	dir := rl.Vector3Scale(travel, 1/dist)

	for i := 0; i+2 < len(tris); i += 3 {
		v0 := w.verts[tris[i]]
		v1 := w.verts[tris[i+1]]
		v2 := w.verts[tris[i+2]]

		point, hit := SegmentTriangle(b.LastPosition, dir, dist, v0, v1, v2)
		if !hit {
			continue
		}
		normal, ok := TriangleNormal(v0, v1, v2)
		if !ok {
			// Zero-area triangle, no usable normal.
			continue
		}
		w.reflect(b, dir, normal, point, deltaTime)
		return true
	}
	return false
}

// reflect rewrites the body's velocity and position after a surface hit:
// damped mirror reflection about the face normal, and a small lift off the
// contact point toward the side the body came from.
func (w *World) reflect(b *Body, dir, normal, point rl.Vector3, deltaTime float32) {
	newDir := rl.Vector3Add(
		rl.Vector3Scale(normal, 2*rl.Vector3DotProduct(rl.Vector3Scale(dir, -1), normal)),
		dir,
	)
	newDir = rl.Vector3Normalize(newDir)

	speed := rl.Vector3Length(b.Velocity)
	b.Velocity = rl.Vector3Scale(newDir, (1-w.Damping)*speed)

	lift := normal
	if rl.Vector3DotProduct(lift, dir) > 0 {
		lift = rl.Vector3Scale(lift, -1)
	}
	contact := rl.Vector3Add(point, rl.Vector3Scale(lift, contactOffset))
	b.LastPosition = contact
	b.Position = rl.Vector3Add(contact, rl.Vector3Scale(b.Velocity, deltaTime))
}

// recycle repositions a fallen body at a fresh random horizontal location
// above the terrain and resets its velocity to this frame's gravity step.
func (w *World) recycle(b *Body, deltaTime float32) {
	b.Position = w.spawnPoint(w.cfg.RespawnHeightFraction)
	b.LastPosition = b.Position
	b.Velocity = rl.Vector3{Y: -w.Gravity * deltaTime}
}

// spawnPoint picks a random horizontal position inside the terrain bounds
// (shrunk by the mean radius) at heightFraction of the terrain's vertical
// extent above its center.
func (w *World) spawnPoint(heightFraction float32) rl.Vector3 {
	size := w.bounds.Size()
	margin := w.cfg.MeanRadius
	return rl.Vector3{
		X: w.bounds.Min.X + margin + w.rng.Float32()*(size.X-2*margin),
		Y: w.bounds.Center().Y + heightFraction*size.Y,
		Z: w.bounds.Min.Z + margin + w.rng.Float32()*(size.Z-2*margin),
	}
}
