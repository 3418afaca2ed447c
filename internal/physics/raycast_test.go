package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestSegmentTriangleStraightDown(t *testing.T) {
	v0 := rl.Vector3{X: 0, Y: 0, Z: 0}
	v1 := rl.Vector3{X: 1, Y: 0, Z: 0}
	v2 := rl.Vector3{X: 0, Y: 0, Z: 1}

	origin := rl.Vector3{X: 0.2, Y: 1, Z: 0.2}
	down := rl.Vector3{Y: -1}

	point, hit := SegmentTriangle(origin, down, 2, v0, v1, v2)
	if !hit {
		t.Fatal("expected hit")
	}
	if !nearVec(point, rl.Vector3{X: 0.2, Y: 0, Z: 0.2}, 1e-5) {
		t.Errorf("hit point %+v, want (0.2, 0, 0.2)", point)
	}
}

func TestSegmentTriangleBackFace(t *testing.T) {
	// Reversed winding: same plane, opposite facing. Steep descents hit the
	// underside of slope triangles, so this must still count.
	v0 := rl.Vector3{X: 0, Y: 0, Z: 0}
	v1 := rl.Vector3{X: 0, Y: 0, Z: 1}
	v2 := rl.Vector3{X: 1, Y: 0, Z: 0}

	origin := rl.Vector3{X: 0.2, Y: 1, Z: 0.2}
	if _, hit := SegmentTriangle(origin, rl.Vector3{Y: -1}, 2, v0, v1, v2); !hit {
		t.Error("expected back-face hit")
	}
}

func TestSegmentTriangleParallelMiss(t *testing.T) {
	v0 := rl.Vector3{X: 0, Y: 0, Z: 0}
	v1 := rl.Vector3{X: 1, Y: 0, Z: 0}
	v2 := rl.Vector3{X: 0, Y: 0, Z: 1}

	origin := rl.Vector3{X: 0, Y: 1, Z: 0}
	sideways := rl.Vector3{X: 1}
	if _, hit := SegmentTriangle(origin, sideways, 10, v0, v1, v2); hit {
		t.Error("expected miss for ray parallel to the triangle plane")
	}
}

func TestSegmentTriangleOutsideEdgesMiss(t *testing.T) {
	v0 := rl.Vector3{X: 0, Y: 0, Z: 0}
	v1 := rl.Vector3{X: 1, Y: 0, Z: 0}
	v2 := rl.Vector3{X: 0, Y: 0, Z: 1}

	origin := rl.Vector3{X: 0.9, Y: 1, Z: 0.9} // crosses the plane past the hypotenuse
	if _, hit := SegmentTriangle(origin, rl.Vector3{Y: -1}, 2, v0, v1, v2); hit {
		t.Error("expected miss for crossing outside the triangle edges")
	}
}

func TestSegmentTriangleTooShort(t *testing.T) {
	v0 := rl.Vector3{X: 0, Y: 0, Z: 0}
	v1 := rl.Vector3{X: 1, Y: 0, Z: 0}
	v2 := rl.Vector3{X: 0, Y: 0, Z: 1}

	origin := rl.Vector3{X: 0.2, Y: 1, Z: 0.2}
	if _, hit := SegmentTriangle(origin, rl.Vector3{Y: -1}, 0.5, v0, v1, v2); hit {
		t.Error("expected miss when the segment ends above the plane")
	}
}

func TestTriangleNormalDegenerate(t *testing.T) {
	p := rl.Vector3{X: 1, Y: 2, Z: 3}
	if _, ok := TriangleNormal(p, p, p); ok {
		t.Error("zero-area triangle must have no usable normal")
	}

	n, ok := TriangleNormal(
		rl.Vector3{},
		rl.Vector3{X: 0, Y: 0, Z: 1},
		rl.Vector3{X: 1, Y: 0, Z: 0},
	)
	if !ok {
		t.Fatal("expected a normal for a proper triangle")
	}
	if !nearVec(n, rl.Vector3{Y: 1}, 1e-5) {
		t.Errorf("normal %+v, want (0, 1, 0)", n)
	}
}

func nearVec(a, b rl.Vector3, eps float32) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps) && near(a.Z, b.Z, eps)
}

func near(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
