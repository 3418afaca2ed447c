// Stress test comparing the two-pass BVH collision search against an
// exhaustive triangle scan on generated terrains.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"metafall/internal/config"
	"metafall/internal/physics"
	"metafall/internal/terrain"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	queriesPerTerrain = 10000
	segmentLength     = 2.0
)

func main() {
	cfg := config.Default()

	fmt.Printf("leaf threshold: %d, %d queries per terrain\n\n", cfg.LeafTriangleThreshold, queriesPerTerrain)
	fmt.Printf("%8s %10s %8s %12s %12s %8s\n", "grid", "triangles", "depth", "bvh/query", "scan/query", "speedup")

	for _, size := range []int{64, 128, 192, 256} {
		runTerrain(size, cfg)
	}
}

func runTerrain(size int, cfg config.Sim) {
	hm := terrain.NewHeightmap(size, 42)
	t := terrain.Build(hm, cfg.TerrainScale, cfg.TerrainHeight)

	index, err := physics.BuildIndex(t.Vertices, t.Indices, t.Bounds, cfg.LeafTriangleThreshold)
	if err != nil {
		fmt.Printf("%8d build error: %v\n", size, err)
		return
	}

	// Random steep descent segments crossing the surface, consistent
	// between the two timed runs.
	rng := rand.New(rand.NewSource(42))
	origins := make([]rl.Vector3, queriesPerTerrain)
	bounds := t.Bounds
	boundsSize := bounds.Size()
	for i := range origins {
		origins[i] = rl.Vector3{
			X: bounds.Min.X + rng.Float32()*boundsSize.X,
			Y: bounds.Min.Y + rng.Float32()*boundsSize.Y + segmentLength/2,
			Z: bounds.Min.Z + rng.Float32()*boundsSize.Z,
		}
	}
	down := rl.Vector3{Y: -1}

	// Two-pass BVH path: leaf candidates first, full scan only on a miss.
	bvhStart := time.Now()
	bvhHits := 0
	for _, origin := range origins {
		candidates, found := index.Candidates(origin)
		if found && scanTriangles(t, candidates, origin, down) {
			bvhHits++
			continue
		}
		if scanTriangles(t, t.Indices, origin, down) {
			bvhHits++
		}
	}
	bvhTime := time.Since(bvhStart) / queriesPerTerrain

	// Exhaustive-only baseline.
	scanStart := time.Now()
	scanHits := 0
	for _, origin := range origins {
		if scanTriangles(t, t.Indices, origin, down) {
			scanHits++
		}
	}
	scanTime := time.Since(scanStart) / queriesPerTerrain

	if bvhHits != scanHits {
		fmt.Printf("%8d MISMATCH: bvh %d hits, scan %d hits\n", size, bvhHits, scanHits)
		return
	}

	speedup := float64(scanTime) / float64(bvhTime)
	fmt.Printf("%8d %10d %8d %12v %12v %7.1fx\n",
		size, index.TriangleCount(), index.Depth(), bvhTime, scanTime, speedup)
}

func scanTriangles(t *terrain.Terrain, tris []int32, origin, dir rl.Vector3) bool {
	for i := 0; i+2 < len(tris); i += 3 {
		_, hit := physics.SegmentTriangle(origin, dir, segmentLength,
			t.Vertices[tris[i]], t.Vertices[tris[i+1]], t.Vertices[tris[i+2]])
		if hit {
			return true
		}
	}
	return false
}
