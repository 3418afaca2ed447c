package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// rayEpsilon rejects determinants too close to zero for a stable inverse.
const rayEpsilon = 1e-6

// SegmentTriangle intersects the segment [origin, origin + direction*maxDistance]
// with one triangle using Möller–Trumbore. Back-facing triangles count as
// hits: a body descending steeply has to collide with the underside of a
// slope's triangles. direction must be normalized.
func SegmentTriangle(origin, direction rl.Vector3, maxDistance float32, v0, v1, v2 rl.Vector3) (rl.Vector3, bool) {
	edge1 := rl.Vector3Subtract(v1, v0)
	edge2 := rl.Vector3Subtract(v2, v0)

	h := rl.Vector3CrossProduct(direction, edge2)
	det := rl.Vector3DotProduct(edge1, h)
	if det > -rayEpsilon && det < rayEpsilon {
		// Parallel to the triangle's plane (or degenerate triangle).
		return rl.Vector3{}, false
	}
	invDet := 1 / det

	s := rl.Vector3Subtract(origin, v0)
	u := invDet * rl.Vector3DotProduct(s, h)
	if u < 0 || u > 1 {
		return rl.Vector3{}, false
	}

	q := rl.Vector3CrossProduct(s, edge1)
	v := invDet * rl.Vector3DotProduct(direction, q)
	if v < 0 || u+v > 1 {
		return rl.Vector3{}, false
	}

	t := invDet * rl.Vector3DotProduct(edge2, q)
	if t < 0 || t > maxDistance {
		return rl.Vector3{}, false
	}

	return rl.Vector3Add(origin, rl.Vector3Scale(direction, t)), true
}

// TriangleNormal returns the unit face normal of the triangle, with winding
// taken from the vertex order. ok is false for zero-area triangles, whose
// normal is undefined and must be treated as a no-hit by callers.
func TriangleNormal(v0, v1, v2 rl.Vector3) (normal rl.Vector3, ok bool) {
	n := rl.Vector3CrossProduct(rl.Vector3Subtract(v1, v0), rl.Vector3Subtract(v2, v0))
	length := rl.Vector3Length(n)
	if length < rayEpsilon {
		return rl.Vector3{}, false
	}
	return rl.Vector3Scale(n, 1/length), true
}
