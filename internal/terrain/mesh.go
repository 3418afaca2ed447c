package terrain

import (
	"metafall/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Terrain is the static triangle mesh the collision index and the renderer
// share. Immutable after Build; both hold non-owning references for the
// session's lifetime.
type Terrain struct {
	Vertices []rl.Vector3
	Indices  []int32 // triples, CCW seen from above
	Bounds   physics.AABB
	Size     int // grid resolution
	CellSize float32

	hm *Heightmap
}

// Build creates the terrain mesh from a heightmap. The grid is centered on
// the origin; cellSize is the horizontal spacing and heightScale maps the
// heightmap's [0,1] range into world units. Vertex and index buffers are
// sized up front from the known grid resolution.
func Build(hm *Heightmap, cellSize, heightScale float32) *Terrain {
	size := hm.Size
	half := float32(size-1) * cellSize / 2

	t := &Terrain{
		Vertices: make([]rl.Vector3, 0, size*size),
		Indices:  make([]int32, 0, (size-1)*(size-1)*6),
		Size:     size,
		CellSize: cellSize,
		hm:       hm,
	}

	for iz := 0; iz < size; iz++ {
		for ix := 0; ix < size; ix++ {
			t.Vertices = append(t.Vertices, rl.Vector3{
				X: float32(ix)*cellSize - half,
				Y: hm.At(ix, iz) * heightScale,
				Z: float32(iz)*cellSize - half,
			})
		}
	}

	for iz := 0; iz < size-1; iz++ {
		for ix := 0; ix < size-1; ix++ {
			i0 := int32(iz*size + ix)
			i1 := i0 + 1
			i2 := i0 + int32(size)
			i3 := i2 + 1
			t.Indices = append(t.Indices, i0, i2, i1, i1, i2, i3)
		}
	}

	t.Bounds = physics.AABBFromPoints(t.Vertices)
	return t
}

// VertexAt returns the world-space vertex at a grid cell.
func (t *Terrain) VertexAt(ix, iz int) rl.Vector3 {
	return t.Vertices[iz*t.Size+ix]
}

// Heightmap returns the heightmap the terrain was built from.
func (t *Terrain) Heightmap() *Heightmap {
	return t.hm
}
