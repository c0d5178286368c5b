package main

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// hud writes a single status line in the top-left corner of a display.
type hud struct {
	font  tinyfont.Fonter
	color color.RGBA
	x, y  int16 // baseline origin
}

func newHUD(c color.RGBA) *hud {
	return &hud{font: &proggy.TinySZ8pt7b, color: c, x: 8, y: 16}
}

func (h *hud) Draw(d drivers.Displayer, text string) {
	tinyfont.WriteLine(d, h.font, h.x, h.y, text, h.color)
}
