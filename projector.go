package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// minDenominator keeps the perspective divide finite when a vertex reaches
// the viewer plane (z == -Distance).
const minDenominator = 1e-6

// Camera holds the fixed viewing parameters.
type Camera struct {
	FOV      float64 // degrees
	Distance float64
}

// Viewport is the square working area the projection maps into, placed at
// (OffsetX, OffsetY) inside the window.
type Viewport struct {
	Width, Height    float64
	OffsetX, OffsetY float64
}

// Project maps v to screen space. The returned Z is v.Z unchanged and is
// only meant as a depth key.
func Project(v mgl64.Vec3, vp Viewport, cam Camera) mgl64.Vec3 {
	denom := cam.Distance + v.Z()
	if math.Abs(denom) < minDenominator {
		if denom < 0 {
			denom = -minDenominator
		} else {
			denom = minDenominator
		}
	}
	factor := math.Tan(mgl64.DegToRad(cam.FOV)/2) / denom
	return mgl64.Vec3{
		v.X()*factor*vp.Width + vp.Width/2 + vp.OffsetX,
		-v.Y()*factor*vp.Width + vp.Height/2 + vp.OffsetY,
		v.Z(),
	}
}

func projectVertices(vertices []mgl64.Vec3, vp Viewport, cam Camera) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(vertices))
	for i, v := range vertices {
		out[i] = Project(v, vp, cam)
	}
	return out
}
