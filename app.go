package main

import "fmt"

// Window is the platform side of the frame loop.
type Window interface {
	// PollEvents returns every event received since the previous call, in
	// arrival order.
	PollEvents() []Event
	Surface() Surface
	Present()
	SetTitle(title string)
}

// Clock paces the frame loop.
type Clock interface {
	// Tick blocks until the next frame boundary and returns the measured
	// frames per second.
	Tick(targetFPS int) float64
}

// App owns the scene and the run flag. It is driven from a single goroutine.
type App struct {
	cfg     Config
	scene   *Scene
	running bool
}

func NewApp(scene *Scene, cfg Config) *App {
	return &App{cfg: cfg, scene: scene, running: true}
}

func (a *App) Scene() *Scene  { return a.scene }
func (a *App) Running() bool  { return a.running }
func (a *App) Config() Config { return a.cfg }

// HandleEvents applies events to the scene rotation in order and reports
// whether the app should keep running.
func (a *App) HandleEvents(events []Event) bool {
	for _, ev := range events {
		if !a.scene.Rotation.Apply(ev, a.cfg.RotationStep) {
			a.running = false
		}
	}
	return a.running
}

// Draw clears dst to the background color and renders the scene onto it.
func (a *App) Draw(dst Surface) {
	dst.Fill(a.cfg.Background)
	a.scene.Render(dst)
}

// Run drives frames until a quit event arrives. The frame that receives the
// quit is still drawn and presented.
func (a *App) Run(w Window, c Clock) {
	for a.running {
		fps := c.Tick(a.cfg.TargetFPS)
		a.HandleEvents(w.PollEvents())
		a.Draw(w.Surface())
		w.Present()
		w.SetTitle(fmt.Sprintf("%s | FPS: %.0f", a.cfg.Title, fps))
	}
}
