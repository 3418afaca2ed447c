package terrain

import (
	"math/rand"
	"testing"
)

func TestHeightmapDeterministic(t *testing.T) {
	a := NewHeightmap(32, 7)
	b := NewHeightmap(32, 7)
	for iz := 0; iz < 32; iz++ {
		for ix := 0; ix < 32; ix++ {
			if a.At(ix, iz) != b.At(ix, iz) {
				t.Fatalf("same seed diverged at (%d,%d)", ix, iz)
			}
		}
	}

	c := NewHeightmap(32, 8)
	same := true
	for i := 0; i < 32*32 && same; i++ {
		if a.data[i] != c.data[i] {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical heightmaps")
	}
}

func TestHeightmapRange(t *testing.T) {
	hm := NewHeightmap(64, 3)
	for iz := 0; iz < 64; iz++ {
		for ix := 0; ix < 64; ix++ {
			h := hm.At(ix, iz)
			if h < 0 || h > 1 {
				t.Fatalf("height %v at (%d,%d) outside [0,1]", h, ix, iz)
			}
		}
	}
	if s := hm.Sample(10.5, 20.25); s < 0 || s > 1 {
		t.Errorf("bilinear sample %v outside [0,1]", s)
	}
}

func TestBuildMeshInvariants(t *testing.T) {
	hm := NewHeightmap(16, 7)
	tr := Build(hm, 0.5, 12)

	if len(tr.Vertices) != 16*16 {
		t.Errorf("vertex count %d, want %d", len(tr.Vertices), 16*16)
	}
	if len(tr.Indices)%3 != 0 {
		t.Fatalf("index count %d not a multiple of 3", len(tr.Indices))
	}
	if got, want := len(tr.Indices)/3, 15*15*2; got != want {
		t.Errorf("triangle count %d, want %d", got, want)
	}
	for i, idx := range tr.Indices {
		if idx < 0 || int(idx) >= len(tr.Vertices) {
			t.Fatalf("index %d out of range at position %d", idx, i)
		}
	}
	for _, v := range tr.Vertices {
		if !tr.Bounds.Contains(v) {
			t.Fatalf("bounds do not contain vertex %+v", v)
		}
	}
}

func TestRiverDescends(t *testing.T) {
	hm := NewHeightmap(64, 11)
	tr := Build(hm, 0.5, 12)

	rng := rand.New(rand.NewSource(11))
	srcX, srcZ := FindSource(hm, rng)
	path := TraceRiver(tr, srcX, srcZ, 512)

	if len(path) == 0 {
		t.Fatal("empty river path")
	}
	if len(path) > 512 {
		t.Fatalf("path has %d points, max 512", len(path))
	}
	if path[0] != tr.VertexAt(srcX, srcZ) {
		t.Error("river does not start at the source vertex")
	}
	for i := 1; i < len(path); i++ {
		if path[i].Y > path[i-1].Y {
			t.Fatalf("river climbs at step %d: %v -> %v", i, path[i-1].Y, path[i].Y)
		}
		if !tr.Bounds.Contains(path[i]) {
			t.Fatalf("river point %+v left the terrain bounds", path[i])
		}
	}
}
