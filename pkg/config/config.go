package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"raytracer/pkg/tracer"
)

// Field of view limits in degrees; tan(fov/2) stays finite and positive
const (
	MinFOV = 10.0
	MaxFOV = 170.0
)

// Config represents the main configuration
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Light  LightConfig  `yaml:"light"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig contains window-related configuration
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	VSync     bool   `yaml:"vsync"`
	FrameRate int    `yaml:"framerate"` // 0 disables the cap
}

// CameraConfig contains the initial camera and its movement steps
type CameraConfig struct {
	Position Vec3    `yaml:"position"`
	FOV      float64 `yaml:"fov"` // degrees
	Speed    float64 `yaml:"speed"`
	FOVStep  float64 `yaml:"fov_step"`
}

// LightConfig contains the initial point light position
type LightConfig struct {
	Position Vec3    `yaml:"position"`
	Speed    float64 `yaml:"speed"`
}

// RenderConfig contains tracer configuration
type RenderConfig struct {
	MaxDepth    int     `yaml:"max_depth"`
	Scale       float64 `yaml:"scale"` // fraction of the window resolution traced per frame
	Texture     string  `yaml:"texture"`
	SnapshotDir string  `yaml:"snapshot_dir"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty logs to the console only
}

// Vec3 is a YAML friendly [x, y, z] triple
type Vec3 [3]float64

// Vector converts to the tracer's vector type
func (v Vec3) Vector() tracer.Vector3 {
	return tracer.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Basic Ray Tracer",
			VSync:     true,
			FrameRate: 60,
		},
		Camera: CameraConfig{
			Position: Vec3{0, 0, 2},
			FOV:      90,
			Speed:    0.3,
			FOVStep:  10,
		},
		Light: LightConfig{
			Position: Vec3{1, 1, -1},
			Speed:    0.3,
		},
		Render: RenderConfig{
			MaxDepth:    tracer.DefaultMaxDepth,
			Scale:       1.0,
			Texture:     "metal.png",
			SnapshotDir: "snapshots",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from a file. On error the returned
// config holds the defaults.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks values the renderer cannot work with
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FrameRate < 0 {
		return fmt.Errorf("invalid framerate %d", c.Window.FrameRate)
	}
	if c.Camera.FOV < MinFOV || c.Camera.FOV > MaxFOV {
		return fmt.Errorf("camera fov must be in [%v, %v], got %v", MinFOV, MaxFOV, c.Camera.FOV)
	}
	if c.Render.MaxDepth < 0 {
		return fmt.Errorf("render max_depth must not be negative, got %d", c.Render.MaxDepth)
	}
	if c.Render.Scale <= 0 || c.Render.Scale > 1 {
		return fmt.Errorf("render scale must be in (0, 1], got %v", c.Render.Scale)
	}
	if c.Render.Texture == "" {
		return fmt.Errorf("render texture path is empty")
	}
	return nil
}
