package config

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-voxels-fpscam/internal/logger"
	"github.com/leterax/go-voxels-fpscam/pkg/fpscam"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window  WindowConfig   `yaml:"window"`
	Camera  fpscam.Options `yaml:"camera"`
	World   WorldConfig    `yaml:"world"`
	Logging logger.Config  `yaml:"logging"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type WorldConfig struct {
	ChunkSize int        `yaml:"chunkSize"`
	Radius    int        `yaml:"radius"`
	Height    int        `yaml:"height"`
	Surface   string     `yaml:"surface"`
	Gravity   [3]float32 `yaml:"gravity,flow"`
	Spawn     [3]float32 `yaml:"spawn,flow"`
}

// GravityVec returns the configured gravity as a vector
func (w WorldConfig) GravityVec() mgl32.Vec3 {
	return mgl32.Vec3(w.Gravity)
}

// SpawnVec returns the configured spawn point as a vector
func (w WorldConfig) SpawnVec() mgl32.Vec3 {
	return mgl32.Vec3(w.Spawn)
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Go-Voxels FPS Camera",
			VSync:  true,
		},
		Camera: func() fpscam.Options {
			opts := fpscam.DefaultOptions()
			opts.Position = [3]float32{0, -4, 0}
			opts.MinFrameTime = 1.0 / 1000
			return opts
		}(),
		World: WorldConfig{
			ChunkSize: 16,
			Radius:    24,
			Height:    2,
			Surface:   "grass",
			Gravity:   [3]float32{0, -32, 0},
			Spawn:     [3]float32{0.5, 6, 0.5},
		},
		Logging: logger.Config{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults; keys absent from the file keep their default value
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
