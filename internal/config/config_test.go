package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileGivesDefault(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if s != Default() {
		t.Error("missing file did not yield defaults")
	}
}

func TestLoadInvalidFileGivesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("invalid file should not error: %v", err)
	}
	if s != Default() {
		t.Error("invalid file did not yield defaults")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "sim.json")

	s := Default()
	s.NumBodies = 128
	s.GroundDamping = 0.5
	s.Seed = 99

	if err := Save(path, s); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != s {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", got, s)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Sim)
	}{
		{"negative gravity", func(s *Sim) { s.GravityAcceleration = -1 }},
		{"damping above one", func(s *Sim) { s.GroundDamping = 1.5 }},
		{"zero bodies", func(s *Sim) { s.NumBodies = 0 }},
		{"zero radius", func(s *Sim) { s.MeanRadius = 0 }},
		{"zero leaf threshold", func(s *Sim) { s.LeafTriangleThreshold = 0 }},
		{"tiny terrain", func(s *Sim) { s.TerrainSize = 1 }},
		{"oversized terrain", func(s *Sim) { s.TerrainSize = 512 }},
		{"zero terrain scale", func(s *Sim) { s.TerrainScale = 0 }},
	}
	for _, tc := range cases {
		s := Default()
		tc.mutate(&s)
		if err := s.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}
