package engine

import (
	"sync/atomic"

	"github.com/go-gl/glfw/v3.3/glfw"

	"raytracer/internal/logger"
	"raytracer/pkg/controls"
)

// keyBindings maps keys to control actions
var keyBindings = map[glfw.Key]controls.Action{
	glfw.KeyW:      controls.CameraForward,
	glfw.KeyS:      controls.CameraBackward,
	glfw.KeyA:      controls.CameraLeft,
	glfw.KeyD:      controls.CameraRight,
	glfw.KeyQ:      controls.CameraUp,
	glfw.KeyE:      controls.CameraDown,
	glfw.KeyI:      controls.LightForward,
	glfw.KeyK:      controls.LightBackward,
	glfw.KeyJ:      controls.LightLeft,
	glfw.KeyL:      controls.LightRight,
	glfw.KeyU:      controls.LightDown,
	glfw.KeyO:      controls.LightUp,
	glfw.KeyUp:     controls.ZoomIn,
	glfw.KeyDown:   controls.ZoomOut,
	glfw.KeyP:      controls.Snapshot,
	glfw.KeyEscape: controls.Quit,
}

// InputHandler turns key events into control actions
type InputHandler struct {
	window   *glfw.Window
	controls *controls.Controls
	logger   *logger.Logger

	snapshotRequested atomic.Bool
}

// NewInputHandler installs a key callback on window
func NewInputHandler(window *glfw.Window, ctl *controls.Controls, log *logger.Logger) *InputHandler {
	handler := &InputHandler{
		window:   window,
		controls: ctl,
		logger:   log,
	}

	window.SetKeyCallback(handler.onKey)

	return handler
}

func (ih *InputHandler) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	// Held keys repeat
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	act, ok := keyBindings[key]
	if !ok {
		return
	}

	// Snapshot and quit fire once per press
	if action == glfw.Repeat && (act == controls.Snapshot || act == controls.Quit) {
		return
	}

	if msg := ih.controls.Apply(act); msg != "" {
		ih.logger.Info(msg)
	}

	switch act {
	case controls.Quit:
		w.SetShouldClose(true)
	case controls.Snapshot:
		ih.snapshotRequested.Store(true)
	}
}

// TakeSnapshotRequest reports and clears a pending snapshot request
func (ih *InputHandler) TakeSnapshotRequest() bool {
	return ih.snapshotRequested.Swap(false)
}
