package engine

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"raytracer/internal/logger"
	"raytracer/internal/util"
	"raytracer/pkg/config"
	"raytracer/pkg/controls"
	"raytracer/pkg/tracer"
)

// statsWindow is the number of frames averaged for the FPS report
const statsWindow = 60

// Engine owns the window and runs the render loop
type Engine struct {
	window      *glfw.Window
	config      *config.Config
	logger      *logger.Logger
	controls    *controls.Controls
	input       *InputHandler
	presenter   Presenter
	texture     tracer.Texture
	framebuffer *tracer.Framebuffer
	frameRate   int
	frameTimes  []float64
}

// NewEngine opens the window, creates the GL context and wires input
func NewEngine(cfg *config.Config, log *logger.Logger, tex tracer.Texture) (*Engine, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Set window hints
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	// Create window
	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Infof("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	presenter, err := NewGLPresenter()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize presenter: %w", err)
	}

	ctl := controls.New(controls.SettingsFromConfig(cfg))

	engine := &Engine{
		window:      window,
		config:      cfg,
		logger:      log,
		controls:    ctl,
		input:       NewInputHandler(window, ctl, log),
		presenter:   presenter,
		texture:     tex,
		framebuffer: tracer.NewFramebuffer(0, 0),
		frameRate:   cfg.Window.FrameRate,
	}

	return engine, nil
}

// Run starts the main loop and returns once the window closes
func (e *Engine) Run() {
	e.logger.Info("Controls: WASD/QE camera, IJKL/UO light, Up/Down zoom, P snapshot, Escape exit")

	for !e.window.ShouldClose() {
		frameStart := time.Now()

		e.render()

		if e.input.TakeSnapshotRequest() {
			e.saveSnapshot()
		}

		// Swap buffers and poll events
		e.window.SwapBuffers()
		glfw.PollEvents()

		// Cap the frame rate
		if e.frameRate > 0 {
			frameTime := time.Since(frameStart)
			targetFrameTime := time.Second / time.Duration(e.frameRate)
			if frameTime < targetFrameTime {
				time.Sleep(targetFrameTime - frameTime)
			}
		}

		e.recordFrame(time.Since(frameStart))
	}

	e.cleanup()
}

// render traces one frame at the scaled window resolution and presents it
func (e *Engine) render() {
	viewportWidth, viewportHeight := e.window.GetFramebufferSize()
	width, height := util.ScaleSize(viewportWidth, viewportHeight, e.config.Render.Scale)

	params := e.controls.Snapshot(width, height, e.config.Render.MaxDepth)
	scene := tracer.NewDefaultScene()

	stats := tracer.RenderFrame(scene, e.texture, params, e.framebuffer)
	e.logger.Debugf("frame %dx%d: %d rays, %d hits, %d misses in %s",
		width, height, stats.Rays, stats.Hits, stats.Misses, stats.Duration)

	e.presenter.Present(e.framebuffer, viewportWidth, viewportHeight)
}

func (e *Engine) saveSnapshot() {
	path := util.SnapshotPath(e.config.Render.SnapshotDir, time.Now())
	if err := tracer.SavePNG(e.framebuffer, path); err != nil {
		e.logger.Errorf("Failed to save snapshot: %v", err)
		return
	}
	e.logger.Infof("Snapshot saved to %s", path)
}

// recordFrame keeps the recent frame times and reports the average FPS
func (e *Engine) recordFrame(d time.Duration) {
	e.frameTimes = append(e.frameTimes, d.Seconds())
	if len(e.frameTimes) < statsWindow {
		return
	}

	if avg := util.Average(e.frameTimes); avg > 0 {
		e.logger.Debugf("%.1f FPS", 1/avg)
	}
	e.frameTimes = e.frameTimes[:0]
}

// cleanup performs necessary cleanup before exiting
func (e *Engine) cleanup() {
	e.logger.Info("Shutting down engine...")
	e.presenter.Close()
	e.window.Destroy()
	glfw.Terminate()
}
