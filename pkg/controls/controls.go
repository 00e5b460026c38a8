package controls

import (
	"fmt"
	"sync"

	"raytracer/internal/util"
	"raytracer/pkg/config"
	"raytracer/pkg/tracer"
)

// Action is a discrete change requested by the input layer
type Action int

// Actions
const (
	None Action = iota
	CameraForward
	CameraBackward
	CameraLeft
	CameraRight
	CameraUp
	CameraDown
	LightForward
	LightBackward
	LightLeft
	LightRight
	LightUp
	LightDown
	ZoomIn
	ZoomOut
	Snapshot
	Quit
)

// FOV limits match what configuration validation accepts
const (
	MinFOV = config.MinFOV
	MaxFOV = config.MaxFOV
)

// Settings holds the starting values and step sizes
type Settings struct {
	CameraPosition tracer.Vector3
	CameraSpeed    float64
	FOV            float64
	FOVStep        float64
	LightPosition  tracer.Vector3
	LightSpeed     float64
}

// DefaultSettings returns the initial camera and light placement
func DefaultSettings() Settings {
	return Settings{
		CameraPosition: tracer.Vector3{X: 0, Y: 0, Z: 2},
		CameraSpeed:    0.3,
		FOV:            90,
		FOVStep:        10,
		LightPosition:  tracer.Vector3{X: 1, Y: 1, Z: -1},
		LightSpeed:     0.3,
	}
}

// SettingsFromConfig takes the starting values from a loaded configuration
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		CameraPosition: cfg.Camera.Position.Vector(),
		CameraSpeed:    cfg.Camera.Speed,
		FOV:            cfg.Camera.FOV,
		FOVStep:        cfg.Camera.FOVStep,
		LightPosition:  cfg.Light.Position.Vector(),
		LightSpeed:     cfg.Light.Speed,
	}
}

// Controls are the live tunables. The input layer mutates them between
// frames; the renderer reads one Snapshot per frame.
type Controls struct {
	settings Settings
	mutex    sync.Mutex
}

// New creates controls from settings
func New(settings Settings) *Controls {
	settings.FOV = clampFOV(settings.FOV)
	return &Controls{settings: settings}
}

func clampFOV(fov float64) float64 {
	return util.Clamp(fov, MinFOV, MaxFOV)
}

// Apply performs an action and returns a message describing it.
// Snapshot, Quit and None do not change any tunable.
func (c *Controls) Apply(action Action) string {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	s := &c.settings
	switch action {
	case CameraForward:
		s.CameraPosition.Z -= s.CameraSpeed
		return "W: move camera forward"
	case CameraBackward:
		s.CameraPosition.Z += s.CameraSpeed
		return "S: move camera backward"
	case CameraLeft:
		s.CameraPosition.X -= s.CameraSpeed
		return "A: move camera left"
	case CameraRight:
		s.CameraPosition.X += s.CameraSpeed
		return "D: move camera right"
	case CameraUp:
		s.CameraPosition.Y += s.CameraSpeed
		return "Q: move camera up"
	case CameraDown:
		s.CameraPosition.Y -= s.CameraSpeed
		return "E: move camera down"
	case LightForward:
		s.LightPosition.Z -= s.LightSpeed
		return fmt.Sprintf("I: move light to %s", formatVector(s.LightPosition))
	case LightBackward:
		s.LightPosition.Z += s.LightSpeed
		return fmt.Sprintf("K: move light to %s", formatVector(s.LightPosition))
	case LightLeft:
		s.LightPosition.X -= s.LightSpeed
		return fmt.Sprintf("J: move light to %s", formatVector(s.LightPosition))
	case LightRight:
		s.LightPosition.X += s.LightSpeed
		return fmt.Sprintf("L: move light to %s", formatVector(s.LightPosition))
	case LightDown:
		s.LightPosition.Y -= s.LightSpeed
		return fmt.Sprintf("U: move light to %s", formatVector(s.LightPosition))
	case LightUp:
		s.LightPosition.Y += s.LightSpeed
		return fmt.Sprintf("O: move light to %s", formatVector(s.LightPosition))
	case ZoomIn:
		s.FOV = clampFOV(s.FOV - s.FOVStep)
		return fmt.Sprintf("Up: zoom in (FOV %.0f)", s.FOV)
	case ZoomOut:
		s.FOV = clampFOV(s.FOV + s.FOVStep)
		return fmt.Sprintf("Down: zoom out (FOV %.0f)", s.FOV)
	case Snapshot:
		return "P: save snapshot"
	case Quit:
		return "Escape: exit"
	}
	return ""
}

// Snapshot copies the current tunables into frame parameters
func (c *Controls) Snapshot(width, height, maxDepth int) tracer.FrameParams {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return tracer.FrameParams{
		Width:          width,
		Height:         height,
		CameraPosition: c.settings.CameraPosition,
		FOV:            c.settings.FOV,
		LightPosition:  c.settings.LightPosition,
		MaxDepth:       maxDepth,
	}
}

// Settings returns a copy of the current values
func (c *Controls) Settings() Settings {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.settings
}

func formatVector(v tracer.Vector3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}
