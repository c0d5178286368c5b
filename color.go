package main

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	colorWhite = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorBlack = color.RGBA{A: 0xff}
)

// Centroid is the unweighted mean of points. A closed polygon's repeated
// first point is counted twice.
func Centroid(points []mgl64.Vec2) mgl64.Vec2 {
	if len(points) == 0 {
		return mgl64.Vec2{}
	}
	var sum mgl64.Vec2
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

// faceColor shades a face from where it lands on screen and how deep it is.
func faceColor(centroid mgl64.Vec2, depth float64) color.RGBA {
	return color.RGBA{
		R: channel(255 * centroid.X() / 1500),
		G: channel(255 * centroid.Y() / 1000),
		B: channel(130 + 30*depth),
		A: 0xff,
	}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
