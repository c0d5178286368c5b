package main

import "image/color"

const (
	width  = 1920
	height = 1080
	title  = "Cube Grid"
)

// Config collects the fixed settings of a run.
type Config struct {
	Title                     string
	WindowWidth, WindowHeight int

	Viewport Viewport
	Camera   Camera

	TargetFPS     int
	RotationStep  float64 // degrees per key press
	InitialAngles [3]float64

	CubeScale   float64
	GridSpacing float64

	Background color.RGBA
	HUDColor   color.RGBA
}

func DefaultConfig() Config {
	return Config{
		Title:        title,
		WindowWidth:  width,
		WindowHeight: height,
		Viewport: Viewport{
			Width:   1000,
			Height:  1000,
			OffsetX: 450,
			OffsetY: 50,
		},
		Camera: Camera{
			FOV:      90,
			Distance: 5,
		},
		TargetFPS:     60,
		RotationStep:  15,
		InitialAngles: [3]float64{45, 45, 0},
		CubeScale:     0.3,
		GridSpacing:   1,
		Background:    colorWhite,
		HUDColor:      colorBlack,
	}
}
