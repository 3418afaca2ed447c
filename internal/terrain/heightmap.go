package terrain

// Heightmap is a square grid of heights in [0,1], generated from seeded
// fractal value noise. Generation is deterministic per seed.
type Heightmap struct {
	Size int
	data []float32
}

// Noise shape. Four octaves of value noise, each doubling frequency and
// halving amplitude.
const (
	noiseOctaves     = 4
	noiseBaseFreq    = 4.0
	noiseLacunarity  = 2.0
	noisePersistence = 0.5
)

// NewHeightmap generates a size×size heightmap from the given seed.
func NewHeightmap(size int, seed int64) *Heightmap {
	hm := &Heightmap{
		Size: size,
		data: make([]float32, size*size),
	}

	var maxAmp float32
	amp := float32(1.0)
	for o := 0; o < noiseOctaves; o++ {
		maxAmp += amp
		amp *= noisePersistence
	}

	for iz := 0; iz < size; iz++ {
		for ix := 0; ix < size; ix++ {
			var h float32
			freq := float32(noiseBaseFreq)
			amp = 1.0
			for o := 0; o < noiseOctaves; o++ {
				nx := float32(ix) / float32(size-1) * freq
				nz := float32(iz) / float32(size-1) * freq
				h += valueNoise(seed+int64(o)*7919, nx, nz) * amp
				freq *= noiseLacunarity
				amp *= noisePersistence
			}
			hm.data[iz*size+ix] = h / maxAmp
		}
	}
	return hm
}

// At returns the height at a grid cell. Coordinates are clamped to the grid.
func (hm *Heightmap) At(ix, iz int) float32 {
	if ix < 0 {
		ix = 0
	}
	if iz < 0 {
		iz = 0
	}
	if ix >= hm.Size {
		ix = hm.Size - 1
	}
	if iz >= hm.Size {
		iz = hm.Size - 1
	}
	return hm.data[iz*hm.Size+ix]
}

// Sample bilinearly interpolates the height at fractional grid coordinates.
func (hm *Heightmap) Sample(x, z float32) float32 {
	ix, iz := int(x), int(z)
	fx, fz := x-float32(ix), z-float32(iz)
	h00 := hm.At(ix, iz)
	h10 := hm.At(ix+1, iz)
	h01 := hm.At(ix, iz+1)
	h11 := hm.At(ix+1, iz+1)
	top := h00 + (h10-h00)*fx
	bottom := h01 + (h11-h01)*fx
	return top + (bottom-top)*fz
}

// valueNoise interpolates hashed lattice values with smoothstep weights.
func valueNoise(seed int64, x, z float32) float32 {
	x0, z0 := int32(x), int32(z)
	fx, fz := x-float32(x0), z-float32(z0)
	fx = fx * fx * (3 - 2*fx)
	fz = fz * fz * (3 - 2*fz)

	v00 := latticeHash(seed, x0, z0)
	v10 := latticeHash(seed, x0+1, z0)
	v01 := latticeHash(seed, x0, z0+1)
	v11 := latticeHash(seed, x0+1, z0+1)

	top := v00 + (v10-v00)*fx
	bottom := v01 + (v11-v01)*fx
	return top + (bottom-top)*fz
}

// latticeHash maps an integer lattice point to a repeatable value in [0,1).
func latticeHash(seed int64, x, z int32) float32 {
	h := uint64(seed)
	h ^= uint64(uint32(x)) * 0x9E3779B97F4A7C15
	h ^= uint64(uint32(z)) * 0xBF58476D1CE4E5B9
	h ^= h >> 31
	h *= 0x94D049BB133111EB
	h ^= h >> 29
	return float32(h&0xFFFFFF) / float32(0x1000000)
}
