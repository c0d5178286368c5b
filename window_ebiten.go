//go:build ebiten

package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const backendName = "ebiten"

var ebitenKeys = map[ebiten.Key]Key{
	ebiten.KeyEscape: KeyEscape,
	ebiten.KeyA:      KeyA,
	ebiten.KeyD:      KeyD,
	ebiten.KeyE:      KeyE,
	ebiten.KeyQ:      KeyQ,
	ebiten.KeyS:      KeyS,
	ebiten.KeyW:      KeyW,
}

// runBackend lets ebiten drive the loop at the target tick rate. Frames are
// rasterized in software and copied to the screen.
func runBackend(app *App) error {
	cfg := app.Config()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TargetFPS)

	g := &ebitenGame{
		app:    app,
		cfg:    cfg,
		raster: NewRaster(cfg.WindowWidth, cfg.WindowHeight),
		hud:    newHUD(cfg.HUDColor),
	}
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type ebitenGame struct {
	app    *App
	cfg    Config
	raster *Raster
	hud    *hud
	frame  *ebiten.Image
	keys   []ebiten.Key
}

func (g *ebitenGame) Update() error {
	var events []Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, Event{Kind: EventQuit})
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, key := range g.keys {
		k, ok := ebitenKeys[key]
		if !ok {
			k = KeyUnknown
		}
		events = append(events, Event{Kind: EventKeyDown, Key: k})
	}

	if !g.app.HandleEvents(events) {
		return ebiten.Termination
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.cfg.WindowWidth, g.cfg.WindowHeight)
	}

	fps := ebiten.ActualFPS()
	g.app.Draw(g.raster)
	g.hud.Draw(g.raster, fmt.Sprintf("FPS: %.0f", fps))

	g.frame.WritePixels(g.raster.Image().Pix)
	screen.DrawImage(g.frame, nil)
	ebiten.SetWindowTitle(fmt.Sprintf("%s | FPS: %.0f", g.cfg.Title, fps))
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}
