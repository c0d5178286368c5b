//go:build !ebiten

package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const backendName = "glfw"

var glfwKeys = map[glfw.Key]Key{
	glfw.KeyEscape: KeyEscape,
	glfw.KeyA:      KeyA,
	glfw.KeyD:      KeyD,
	glfw.KeyE:      KeyE,
	glfw.KeyQ:      KeyQ,
	glfw.KeyS:      KeyS,
	glfw.KeyW:      KeyW,
}

func init() {
	// GLFW calls must come from the main thread.
	runtime.LockOSThread()
}

type glfwWindow struct {
	window  *glfw.Window
	surface *glSurface
	events  []Event
}

func runBackend(app *App) error {
	cfg := app.Config()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.WindowWidth, cfg.WindowHeight, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize gl: %w", err)
	}
	fmt.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	// The frame clock paces the loop.
	glfw.SwapInterval(0)

	fbWidth, fbHeight := window.GetFramebufferSize()
	surface, err := newGLSurface(cfg.WindowWidth, cfg.WindowHeight, fbWidth, fbHeight)
	if err != nil {
		return err
	}
	defer surface.Delete()

	w := &glfwWindow{window: window, surface: surface}
	window.SetKeyCallback(w.onKey)
	window.SetCloseCallback(w.onClose)

	app.Run(w, newFrameClock(glfw.GetTime, time.Sleep))
	return nil
}

func (w *glfwWindow) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	k, ok := glfwKeys[key]
	if !ok {
		k = KeyUnknown
	}
	w.events = append(w.events, Event{Kind: EventKeyDown, Key: k})
}

func (w *glfwWindow) onClose(_ *glfw.Window) {
	w.events = append(w.events, Event{Kind: EventQuit})
}

func (w *glfwWindow) PollEvents() []Event {
	glfw.PollEvents()
	events := w.events
	w.events = nil
	return events
}

func (w *glfwWindow) Surface() Surface { return w.surface }

func (w *glfwWindow) Present() { w.window.SwapBuffers() }

func (w *glfwWindow) SetTitle(title string) { w.window.SetTitle(title) }
