package physics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// bvhNode is a node in the bounding volume hierarchy. Every node keeps the
// sub-slice of index triples it covers; a node without children is a leaf.
type bvhNode struct {
	bounds AABB
	left   *bvhNode
	right  *bvhNode
	tris   []int32 // index triples into the terrain's vertex array
}

// Index is a static BVH over the terrain's triangles. It is built once from
// the terrain buffers and never mutated afterwards, so any number of readers
// may query it without locking.
type Index struct {
	verts         []rl.Vector3
	tris          []int32
	bounds        AABB
	leafThreshold int
	root          *bvhNode
}

// BuildIndex constructs the collision index from the terrain's vertex and
// triangle-index buffers. The terrain is static by design; rebuilding means
// discarding the index and calling BuildIndex again.
func BuildIndex(vertices []rl.Vector3, indices []int32, bounds AABB, leafThreshold int) (*Index, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("physics: empty triangle list")
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("physics: index count %d is not a multiple of 3", len(indices))
	}
	if leafThreshold < 1 {
		return nil, fmt.Errorf("physics: leaf threshold %d, want >= 1", leafThreshold)
	}
	for i, idx := range indices {
		if idx < 0 || int(idx) >= len(vertices) {
			return nil, fmt.Errorf("physics: triangle index %d out of range [0,%d) at position %d", idx, len(vertices), i)
		}
	}

	tris := make([]int32, len(indices))
	copy(tris, indices)

	ix := &Index{
		verts:         vertices,
		tris:          tris,
		bounds:        bounds,
		leafThreshold: leafThreshold,
	}
	// The root covers every triangle and the terrain's full bounds.
	ix.root = ix.buildNode(tris, bounds)
	return ix, nil
}

// buildNode splits the triple sub-slice into contiguous halves until a node
// holds at most leafThreshold triangles. Left gets triples [0, n/2), right
// gets [n/2, n) — floor division, so every triple lands in exactly one leaf.
func (ix *Index) buildNode(tris []int32, bounds AABB) *bvhNode {
	node := &bvhNode{bounds: bounds, tris: tris}
	if len(tris)/3 <= ix.leafThreshold {
		return node
	}
	mid := (len(tris) / 3 / 2) * 3
	node.left = ix.buildNode(tris[:mid], ix.subsetBounds(tris[:mid]))
	node.right = ix.buildNode(tris[mid:], ix.subsetBounds(tris[mid:]))
	return node
}

// subsetBounds computes the horizontal bounding box of every vertex the
// subset references, extended vertically to the terrain's full height range.
// The vertical extension keeps leaves valid for steeply falling queries even
// though the subset's own triangles span less height.
func (ix *Index) subsetBounds(tris []int32) AABB {
	v := ix.verts[tris[0]]
	b := AABB{Min: v, Max: v}
	for _, idx := range tris[1:] {
		b = b.ExpandTo(ix.verts[idx])
	}
	b.Min.Y = ix.bounds.Min.Y
	b.Max.Y = ix.bounds.Max.Y
	return b
}

// Candidates descends the tree and returns the triangle triples of the leaf
// whose bounds contain point horizontally. Returns false when neither child
// of some internal node contains the point; the caller falls back to the
// full triangle array.
func (ix *Index) Candidates(point rl.Vector3) ([]int32, bool) {
	node := ix.root
	for node.left != nil {
		switch {
		case node.left.bounds.ContainsXZ(point):
			node = node.left
		case node.right.bounds.ContainsXZ(point):
			node = node.right
		default:
			return nil, false
		}
	}
	return node.tris, true
}

// Bounds returns the terrain bounds the index was built with.
func (ix *Index) Bounds() AABB {
	return ix.bounds
}

// TriangleCount returns the number of indexed triangles.
func (ix *Index) TriangleCount() int {
	return len(ix.tris) / 3
}

// Depth returns the height of the tree (a lone leaf has depth 1).
func (ix *Index) Depth() int {
	return nodeDepth(ix.root)
}

func nodeDepth(n *bvhNode) int {
	if n == nil {
		return 0
	}
	l, r := nodeDepth(n.left), nodeDepth(n.right)
	if r > l {
		l = r
	}
	return l + 1
}

// WalkBounds visits every node's bounding box down to maxDepth (the root is
// depth 0). Used by the debug renderer.
func (ix *Index) WalkBounds(maxDepth int, fn func(bounds AABB, depth int)) {
	walkBounds(ix.root, 0, maxDepth, fn)
}

func walkBounds(n *bvhNode, depth, maxDepth int, fn func(AABB, int)) {
	if n == nil || depth > maxDepth {
		return
	}
	fn(n.bounds, depth)
	walkBounds(n.left, depth+1, maxDepth, fn)
	walkBounds(n.right, depth+1, maxDepth, fn)
}
