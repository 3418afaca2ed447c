package terrain

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// River tracing is an independent gradient-descent sampler over the same
// terrain. It shares the heightmap with the mesh but is not coupled to the
// collision engine.

// FindSource picks a random high cell to start a river from: the highest of
// a handful of random samples.
func FindSource(hm *Heightmap, rng *rand.Rand) (ix, iz int) {
	const samples = 32
	best := float32(-1)
	for i := 0; i < samples; i++ {
		sx := rng.Intn(hm.Size)
		sz := rng.Intn(hm.Size)
		if h := hm.At(sx, sz); h > best {
			best = h
			ix, iz = sx, sz
		}
	}
	return ix, iz
}

// TraceRiver descends the height gradient from a grid cell, stepping to the
// lowest of the eight neighbors each iteration. The trace ends at a local
// minimum, at the terrain edge, or after maxSteps. Returns the world-space
// polyline along the surface.
func TraceRiver(t *Terrain, startIX, startIZ, maxSteps int) []rl.Vector3 {
	hm := t.hm
	path := make([]rl.Vector3, 0, maxSteps)

	ix, iz := startIX, startIZ
	for step := 0; step < maxSteps; step++ {
		path = append(path, t.VertexAt(ix, iz))

		if ix == 0 || iz == 0 || ix == hm.Size-1 || iz == hm.Size-1 {
			break
		}

		// Steepest-descent neighbor.
		bestH := hm.At(ix, iz)
		bestDX, bestDZ := 0, 0
		for dz := -1; dz <= 1; dz++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dz == 0 {
					continue
				}
				if h := hm.At(ix+dx, iz+dz); h < bestH {
					bestH = h
					bestDX, bestDZ = dx, dz
				}
			}
		}
		if bestDX == 0 && bestDZ == 0 {
			// Local minimum, river ends in a basin.
			break
		}
		ix += bestDX
		iz += bestDZ
	}
	return path
}
