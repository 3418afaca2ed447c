package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath is the path to the sim config file, relative to the process working directory.
const DefaultPath = "config/sim.json"

// Sim holds the tunable simulation parameters. Persisted across runs;
// validated once at startup before the collision index is built.
type Sim struct {
	GravityAcceleration   float32 `json:"gravity_acceleration"`
	GroundDamping         float32 `json:"ground_damping"`
	NumBodies             int     `json:"num_bodies"`
	MeanRadius            float32 `json:"mean_radius"`
	LeafTriangleThreshold int     `json:"leaf_triangle_threshold"`
	RespawnHeightFraction float32 `json:"respawn_height_fraction"`
	SpawnHeightFraction   float32 `json:"spawn_height_fraction"`

	// Terrain generation knobs
	TerrainSize   int     `json:"terrain_size"`   // grid resolution (vertices per side)
	TerrainScale  float32 `json:"terrain_scale"`  // world units per grid cell
	TerrainHeight float32 `json:"terrain_height"` // vertical scale applied to the heightmap
	Seed          int64   `json:"seed"`           // 0 = pick a random seed at startup
}

// Default returns the stock simulation parameters.
func Default() Sim {
	return Sim{
		GravityAcceleration:   9.82,
		GroundDamping:         0.35,
		NumBodies:             64,
		MeanRadius:            0.6,
		LeafTriangleThreshold: 8,
		RespawnHeightFraction: 0.75,
		SpawnHeightFraction:   0.9,
		TerrainSize:           128,
		TerrainScale:          0.5,
		TerrainHeight:         12.0,
		Seed:                  0,
	}
}

// Load reads the sim config from path. If the file is missing or invalid,
// returns Default() and does not create a file.
func Load(path string) (Sim, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	var s Sim
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), nil
	}
	return s, nil
}

// Save writes the sim config to path, creating the directory if needed.
func Save(path string, s Sim) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first out-of-range parameter. A session must not
// start with an invalid config.
func (s Sim) Validate() error {
	if s.GravityAcceleration < 0 {
		return fmt.Errorf("config: gravity_acceleration %v, want >= 0", s.GravityAcceleration)
	}
	if s.GroundDamping < 0 || s.GroundDamping > 1 {
		return fmt.Errorf("config: ground_damping %v, want in [0,1]", s.GroundDamping)
	}
	if s.NumBodies < 1 {
		return fmt.Errorf("config: num_bodies %d, want >= 1", s.NumBodies)
	}
	if s.MeanRadius <= 0 {
		return fmt.Errorf("config: mean_radius %v, want > 0", s.MeanRadius)
	}
	if s.LeafTriangleThreshold < 1 {
		return fmt.Errorf("config: leaf_triangle_threshold %d, want >= 1", s.LeafTriangleThreshold)
	}
	if s.TerrainSize < 2 {
		return fmt.Errorf("config: terrain_size %d, want >= 2", s.TerrainSize)
	}
	// The renderer uploads a 16-bit index buffer.
	if s.TerrainSize > 255 {
		return fmt.Errorf("config: terrain_size %d, want <= 255", s.TerrainSize)
	}
	if s.TerrainScale <= 0 {
		return fmt.Errorf("config: terrain_scale %v, want > 0", s.TerrainScale)
	}
	return nil
}
