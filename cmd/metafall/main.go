package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"metafall/internal/config"
	"metafall/internal/game"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	g := game.New(cfg)
	if err := g.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
