package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/leterax/go-voxels-fpscam/internal/config"
	"github.com/leterax/go-voxels-fpscam/internal/logger"
	"github.com/leterax/go-voxels-fpscam/internal/openglhelper"
	"github.com/leterax/go-voxels-fpscam/internal/shell"
	"github.com/leterax/go-voxels-fpscam/pkg/fpscam"
	"github.com/leterax/go-voxels-fpscam/pkg/physical"
	"github.com/leterax/go-voxels-fpscam/pkg/render"
	"github.com/leterax/go-voxels-fpscam/pkg/voxel"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (empty for defaults)")
	physics := flag.Bool("physics", false, "Follow the physics-simulated player body")
	flight := flag.Bool("flight", true, "Allow vertical movement with jump/crouch")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// flags given explicitly win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "physics":
			cfg.Camera.EnablePhysics = *physics
		case "flight":
			cfg.Camera.EnableFlight = *flight
		}
	})

	logger.Init(cfg.Logging)
	log := logger.L()
	log.Info("starting go-voxels", "physics", cfg.Camera.EnablePhysics, "flight", cfg.Camera.EnableFlight)

	if err := run(cfg, log); err != nil {
		log.Error("exiting", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	surface, ok := voxel.ParseBlockType(cfg.World.Surface)
	if !ok {
		log.Warn("unknown surface block, using grass", "surface", cfg.World.Surface)
		surface = voxel.Grass
	}
	terrain := voxel.NewTerrain(cfg.World.ChunkSize)
	terrain.Flat(cfg.World.Radius, cfg.World.Height, surface)

	world := physical.NewWorld(terrain, cfg.World.GravityVec(), log)

	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync, log)
	if err != nil {
		return err
	}
	defer window.Close()

	sh := shell.New(window, log)
	window.OnCaptureChange(func(bool) { sh.ResetMouse() })

	controller, err := fpscam.New(fpscam.Host{Shell: sh, World: world, Logger: log}, cfg.Camera)
	if err != nil {
		return err
	}
	defer controller.Disable()
	controller.Player().SetPosition(cfg.World.SpawnVec())

	physics := cfg.Camera.EnablePhysics
	if physics {
		sh.On(fpscam.EventTick, physical.NewDriver(world, sh).Update)
	}

	renderer, err := render.NewRenderer(window, terrain, log)
	if err != nil {
		return err
	}
	defer renderer.Cleanup()

	log.Info("press C to capture the mouse, Escape to quit")

	var (
		last       = window.Time()
		frames     int
		statsStart = time.Now()
	)
	for !window.ShouldClose() {
		window.PollEvents()

		now := window.Time()
		sh.Tick(now)
		world.Step(now - last)
		last = now
		if physics {
			controller.Follow()
		}

		renderer.Render(controller)
		window.SwapBuffers()

		frames++
		if elapsed := time.Since(statsStart); elapsed >= 5*time.Second {
			pos := controller.Camera().Position()
			log.Debug("frame stats",
				"fps", float64(frames)/elapsed.Seconds(),
				logger.Elapsed(elapsed/time.Duration(frames)),
				"camera", pos,
			)
			frames = 0
			statsStart = time.Now()
		}
	}

	return nil
}
