package main

import (
	"testing"
)

// scriptedWindow hands out one batch of events per poll.
type scriptedWindow struct {
	batches  [][]Event
	surface  recordingSurface
	presents int
	titles   []string
}

func (w *scriptedWindow) PollEvents() []Event {
	if len(w.batches) == 0 {
		return nil
	}
	ev := w.batches[0]
	w.batches = w.batches[1:]
	return ev
}

func (w *scriptedWindow) Surface() Surface      { return &w.surface }
func (w *scriptedWindow) Present()              { w.presents++ }
func (w *scriptedWindow) SetTitle(title string) { w.titles = append(w.titles, title) }

type fakeClock struct {
	ticks   int
	targets []int
}

func (c *fakeClock) Tick(targetFPS int) float64 {
	c.ticks++
	c.targets = append(c.targets, targetFPS)
	return 60
}

func newCubeApp(t *testing.T) *App {
	t.Helper()
	cfg := DefaultConfig()
	s := newCubeScene(t)
	s.Rotation.Angles = cfg.InitialAngles
	return NewApp(s, cfg)
}

func TestAppRunUntilQuit(t *testing.T) {
	app := newCubeApp(t)
	w := &scriptedWindow{batches: [][]Event{
		{{Kind: EventKeyDown, Key: KeyW}},
		nil,
		{{Kind: EventKeyDown, Key: KeyD}, {Kind: EventQuit}},
		{{Kind: EventKeyDown, Key: KeyW}},
	}}
	clock := &fakeClock{}

	app.Run(w, clock)

	if app.Running() {
		t.Fatalf("app still running after quit")
	}
	if clock.ticks != 3 || w.presents != 3 {
		t.Fatalf("ticks = %d, presents = %d, want 3 each", clock.ticks, w.presents)
	}
	for _, target := range clock.targets {
		if target != 60 {
			t.Errorf("clock ticked at %d fps, want 60", target)
		}
	}
	// Batches after the quit are never polled.
	if got, want := app.Scene().Rotation.Angles, [3]float64{60, 45, -15}; got != want {
		t.Errorf("angles = %v, want %v", got, want)
	}
	if len(w.titles) != 3 || w.titles[2] != "Cube Grid | FPS: 60" {
		t.Errorf("titles = %q", w.titles)
	}

	perFrame := 1 + 2*len(cubeFaces)
	if len(w.surface.calls) != 3*perFrame {
		t.Fatalf("got %d draw calls, want %d", len(w.surface.calls), 3*perFrame)
	}
	for frame := 0; frame < 3; frame++ {
		first := w.surface.calls[frame*perFrame]
		if first.op != "fill" || first.color != colorWhite {
			t.Errorf("frame %d starts with %s %v, want white fill", frame, first.op, first.color)
		}
	}
}

func TestAppHandleEventsInOrder(t *testing.T) {
	app := newCubeApp(t)
	running := app.HandleEvents([]Event{
		{Kind: EventKeyDown, Key: KeyQ},
		{Kind: EventKeyDown, Key: KeyQ},
		{Kind: EventKeyDown, Key: KeyE},
		{Kind: EventKeyDown, Key: 'z'},
	})
	if !running {
		t.Fatalf("app stopped without a quit event")
	}
	if got := app.Scene().Rotation.Angles; got != [3]float64{45, 60, 0} {
		t.Errorf("angles = %v, want [45 60 0]", got)
	}

	if app.HandleEvents([]Event{{Kind: EventKeyDown, Key: KeyEscape}, {Kind: EventKeyDown, Key: KeyA}}) {
		t.Fatalf("escape did not stop the app")
	}
	if got := app.Scene().Rotation.Angles; got != [3]float64{45, 60, 15} {
		t.Errorf("events after escape in the same batch not applied: %v", got)
	}
	if app.HandleEvents(nil) {
		t.Errorf("app restarted after quit")
	}
}
