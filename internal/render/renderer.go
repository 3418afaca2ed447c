package render

import (
	"metafall/internal/physics"
	"metafall/internal/terrain"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// riverLift raises the river polyline off the surface so it doesn't z-fight
// with the terrain triangles.
const riverLift = 0.08

// bodyColors is the palette metaballs cycle through.
var bodyColors = []rl.Color{
	rl.SkyBlue, rl.Blue, rl.DarkBlue, rl.Purple, rl.Violet,
}

// Renderer uploads the terrain mesh to the GPU once and draws the scene each
// frame. The flattened buffers are kept on the struct so they stay alive for
// as long as the GPU references them.
type Renderer struct {
	model    rl.Model
	vertices []float32
	normals  []float32
	colors   []uint8
	indices  []uint16
	built    bool
}

// NewRenderer builds and uploads the terrain model. Must be called after the
// window (and with it the GL context) exists.
func NewRenderer(t *terrain.Terrain) *Renderer {
	r := &Renderer{}
	r.buildTerrainModel(t)
	return r
}

// buildTerrainModel flattens the terrain buffers into raylib's mesh layout,
// computes smooth per-vertex normals and a height tint, and uploads.
func (r *Renderer) buildTerrainModel(t *terrain.Terrain) {
	vertexCount := len(t.Vertices)
	r.vertices = make([]float32, vertexCount*3)
	r.normals = make([]float32, vertexCount*3)
	r.colors = make([]uint8, vertexCount*4)
	r.indices = make([]uint16, len(t.Indices))

	minY := t.Bounds.Min.Y
	heightRange := t.Bounds.Max.Y - minY
	if heightRange <= 0 {
		heightRange = 1
	}

	for i, v := range t.Vertices {
		r.vertices[i*3+0] = v.X
		r.vertices[i*3+1] = v.Y
		r.vertices[i*3+2] = v.Z

		c := heightTint((v.Y - minY) / heightRange)
		r.colors[i*4+0] = c.R
		r.colors[i*4+1] = c.G
		r.colors[i*4+2] = c.B
		r.colors[i*4+3] = 255
	}

	for i, idx := range t.Indices {
		r.indices[i] = uint16(idx)
	}

	// Smooth normals: accumulate face normals per vertex, then normalize.
	for i := 0; i+2 < len(t.Indices); i += 3 {
		i0, i1, i2 := t.Indices[i], t.Indices[i+1], t.Indices[i+2]
		n, ok := physics.TriangleNormal(t.Vertices[i0], t.Vertices[i1], t.Vertices[i2])
		if !ok {
			continue
		}
		for _, vi := range []int32{i0, i1, i2} {
			r.normals[vi*3+0] += n.X
			r.normals[vi*3+1] += n.Y
			r.normals[vi*3+2] += n.Z
		}
	}
	for i := 0; i < vertexCount; i++ {
		n := rl.Vector3Normalize(rl.Vector3{
			X: r.normals[i*3+0],
			Y: r.normals[i*3+1],
			Z: r.normals[i*3+2],
		})
		r.normals[i*3+0] = n.X
		r.normals[i*3+1] = n.Y
		r.normals[i*3+2] = n.Z
	}

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(len(t.Indices) / 3),
		Vertices:      &r.vertices[0],
		Normals:       &r.normals[0],
		Colors:        &r.colors[0],
		Indices:       &r.indices[0],
	}
	rl.UploadMesh(&mesh, false)
	r.model = rl.LoadModelFromMesh(mesh)
	r.built = true
}

// heightTint maps normalized height to a valley-to-peak color ramp.
func heightTint(h float32) rl.Color {
	switch {
	case h < 0.35:
		return rl.NewColor(80, 120, 60, 255) // valley green
	case h < 0.7:
		return rl.NewColor(130, 110, 80, 255) // slope brown
	default:
		return rl.NewColor(200, 200, 205, 255) // peak gray
	}
}

// DrawTerrain draws the uploaded terrain model, optionally with wireframe.
func (r *Renderer) DrawTerrain(wires bool) {
	if !r.built {
		return
	}
	rl.DrawModel(r.model, rl.Vector3Zero(), 1.0, rl.White)
	if wires {
		rl.DrawModelWires(r.model, rl.Vector3Zero(), 1.0, rl.NewColor(30, 30, 40, 100))
	}
}

// DrawBodies draws each metaball as a sphere at its collision radius.
func DrawBodies(bodies []physics.Body) {
	for i := range bodies {
		b := &bodies[i]
		rl.DrawSphere(b.Position, b.Radius, bodyColors[b.ID%len(bodyColors)])
	}
}

// DrawRiver draws the traced river polyline slightly above the surface.
func DrawRiver(points []rl.Vector3) {
	lift := rl.Vector3{Y: riverLift}
	for i := 1; i < len(points); i++ {
		rl.DrawLine3D(
			rl.Vector3Add(points[i-1], lift),
			rl.Vector3Add(points[i], lift),
			rl.SkyBlue,
		)
	}
}

// DrawIndexBounds draws the BVH node boxes down to maxDepth.
func DrawIndexBounds(ix *physics.Index, maxDepth int) {
	ix.WalkBounds(maxDepth, func(b physics.AABB, depth int) {
		g := 80 + depth*25
		if g > 255 {
			g = 255
		}
		rl.DrawBoundingBox(rl.BoundingBox{Min: b.Min, Max: b.Max}, rl.NewColor(255, uint8(g), 0, 160))
	})
}

// Unload releases the GPU-side terrain model.
func (r *Renderer) Unload() {
	if r.built {
		rl.UnloadModel(r.model)
		r.built = false
	}
}
