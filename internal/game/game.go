package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"metafall/internal/config"
	"metafall/internal/physics"
	"metafall/internal/render"
	"metafall/internal/terrain"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const riverMaxSteps = 512

type Game struct {
	cfg      config.Sim
	terrain  *terrain.Terrain
	world    *physics.World
	renderer *render.Renderer
	river    []rl.Vector3
	camera   rl.Camera3D
	seed     int64

	paused    bool
	showBVH   bool
	showWires bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg config.Sim) *Game {
	return &Game{cfg: cfg}
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "metafall")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := g.rebuild(seed); err != nil {
		return err
	}
	defer g.renderer.Unload()

	size := g.terrain.Bounds.Size()
	g.camera = rl.Camera3D{
		Position:   rl.Vector3{X: size.X * 0.7, Y: size.Y * 2.5, Z: size.Z * 0.7},
		Target:     g.terrain.Bounds.Center(),
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

// rebuild regenerates the terrain, the collision index and the body
// population from a seed. The index is immutable, so a new terrain means
// discarding the old index and constructing a fresh one.
func (g *Game) rebuild(seed int64) error {
	g.seed = seed
	cfg := g.cfg
	cfg.Seed = seed
	if g.world != nil {
		// Carry live-tuned values across regeneration.
		cfg.GravityAcceleration = g.world.Gravity
		cfg.GroundDamping = g.world.Damping
	}

	hm := terrain.NewHeightmap(cfg.TerrainSize, seed)
	g.terrain = terrain.Build(hm, cfg.TerrainScale, cfg.TerrainHeight)

	world, err := physics.NewWorld(g.terrain.Vertices, g.terrain.Indices, g.terrain.Bounds, cfg)
	if err != nil {
		return err
	}
	g.world = world

	rng := rand.New(rand.NewSource(seed))
	srcX, srcZ := terrain.FindSource(hm, rng)
	g.river = terrain.TraceRiver(g.terrain, srcX, srcZ, riverMaxSteps)

	if g.renderer != nil {
		g.renderer.Unload()
	}
	g.renderer = render.NewRenderer(g.terrain)

	log.Printf("Game: scene built, seed %d, river %d points", seed, len(g.river))
	return nil
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	rl.UpdateCamera(&g.camera, rl.CameraOrbital)

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyB) {
		g.showBVH = !g.showBVH
	}
	if rl.IsKeyPressed(rl.KeyR) {
		if err := g.rebuild(g.seed + 1); err != nil {
			log.Printf("Game: rebuild failed: %v", err)
		}
	}

	if !g.paused {
		g.world.Update(deltaTime)
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(g.camera)
	g.renderer.DrawTerrain(g.showWires)
	render.DrawBodies(g.world.Bodies())
	render.DrawRiver(g.river)
	if g.showBVH {
		render.DrawIndexBounds(g.world.Index(), 5)
	}
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("Space to pause, R to regenerate, B to show BVH", 10, 10, 20, rl.DarkGray)
	rl.DrawFPS(10, 35)

	g.world.Gravity = gui.Slider(rl.NewRectangle(90, 64, 160, 20), "Gravity",
		fmt.Sprintf("%.1f", g.world.Gravity), g.world.Gravity, 0, 30)
	g.world.Damping = gui.Slider(rl.NewRectangle(90, 90, 160, 20), "Damping",
		fmt.Sprintf("%.2f", g.world.Damping), g.world.Damping, 0, 1)
	g.showWires = gui.CheckBox(rl.NewRectangle(90, 116, 20, 20), "Wireframe", g.showWires)

	rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, 146, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, 166, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Bodies: %d  Triangles: %d",
		len(g.world.Bodies()), g.world.Index().TriangleCount()), 10, 186, 16, rl.Green)

	if g.paused {
		rl.DrawText("PAUSED", 10, 210, 20, rl.Yellow)
	}
}
