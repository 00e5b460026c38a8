package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"raytracer/internal/logger"
	"raytracer/internal/util"
	"raytracer/pkg/config"
	"raytracer/pkg/controls"
	"raytracer/pkg/engine"
	"raytracer/pkg/tracer"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	logLevel := flag.String("log-level", "", "Override the configured log level (debug, info, warn, error)")
	snapshotPath := flag.String("snapshot", "", "Render a single frame to this PNG file without opening a window")
	saveConfigPath := flag.String("save-config", "", "Write the effective configuration to this file and exit")
	flag.Parse()

	cfg, cfgErr := loadConfig(*configPath)
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if cfgErr != nil {
		log.Fatalf("Failed to load configuration: %v", cfgErr)
	}
	if !util.FileExists(*configPath) {
		log.Warnf("Config file %s not found, using defaults", *configPath)
	}

	if *saveConfigPath != "" {
		if err := config.SaveConfig(cfg, *saveConfigPath); err != nil {
			log.Fatalf("Failed to save configuration: %v", err)
		}
		log.Infof("Configuration written to %s", *saveConfigPath)
		return
	}

	log.Info("Starting ray tracer...")
	if host, err := util.GetHostInfo(); err != nil {
		log.Warnf("Could not read host info: %v", err)
	} else {
		log.Infof("Host: %s", host)
	}

	tex, err := tracer.LoadTexture(cfg.Render.Texture)
	if err != nil {
		log.Fatalf("Failed to load texture: %v", err)
	}
	log.Infof("Loaded texture %s (%dx%d, %d channels)", cfg.Render.Texture, tex.Width, tex.Height, tex.Channels)

	if *snapshotPath != "" {
		renderSnapshot(cfg, log, tex, *snapshotPath)
		return
	}

	raytracer, err := engine.NewEngine(cfg, log, tex)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	log.Info("Engine initialized, starting render loop...")
	raytracer.Run()
}

// loadConfig treats a missing file as "use defaults"
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil && !util.FileExists(path) {
		return cfg, nil
	}
	return cfg, err
}

func newLogger(cfg config.LogConfig) (*logger.Logger, error) {
	if cfg.File == "" {
		return logger.NewLogger(cfg.Level), nil
	}
	return logger.NewMultiLogger(cfg.Level, cfg.File)
}

// renderSnapshot traces one frame at the configured window size and writes it as PNG
func renderSnapshot(cfg *config.Config, log *logger.Logger, tex tracer.Texture, path string) {
	defer util.TimeTrack(time.Now(), "snapshot", log.Infof)

	ctl := controls.New(controls.SettingsFromConfig(cfg))
	width, height := util.ScaleSize(cfg.Window.Width, cfg.Window.Height, cfg.Render.Scale)
	params := ctl.Snapshot(width, height, cfg.Render.MaxDepth)

	fb := tracer.NewFramebuffer(width, height)
	stats := tracer.RenderFrame(tracer.NewDefaultScene(), tex, params, fb)
	log.Infof("Traced %d pixels: %d rays, %d hits, %d misses", stats.Pixels, stats.Rays, stats.Hits, stats.Misses)

	if err := tracer.SavePNG(fb, path); err != nil {
		log.Fatalf("Failed to save snapshot: %v", err)
	}
	log.Infof("Snapshot saved to %s", path)
}
