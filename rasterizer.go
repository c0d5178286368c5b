package main

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Raster)(nil)

// Raster is a software Surface drawing into an RGBA image. It is also a
// drivers.Displayer, so tinyfont can write text into the same frame.
type Raster struct {
	img *image.RGBA
}

func NewRaster(width, height int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Fill(c color.RGBA) {
	pix := r.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// FillPolygon fills a convex polygon in either winding. A pixel is painted
// when its center is inside the polygon or on its boundary.
func (r *Raster) FillPolygon(points []mgl64.Vec2, c color.RGBA) {
	points = openPolygon(points)
	if len(points) < 3 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X()), math.Max(maxX, p.X())
		minY, maxY = math.Min(minY, p.Y()), math.Max(maxY, p.Y())
	}

	b := r.img.Bounds()
	x0 := max(int(math.Floor(minX)), b.Min.X)
	y0 := max(int(math.Floor(minY)), b.Min.Y)
	x1 := min(int(math.Ceil(maxX)), b.Max.X-1)
	y1 := min(int(math.Ceil(maxY)), b.Max.Y-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if insideConvex(points, float64(x)+0.5, float64(y)+0.5) {
				r.set(x, y, c)
			}
		}
	}
}

// StrokePolygon draws the segments between consecutive points. Closed
// polygons are expected to repeat their first point.
func (r *Raster) StrokePolygon(points []mgl64.Vec2, c color.RGBA, width float64) {
	n := max(1, int(math.Round(width)))
	lo := -(n - 1) / 2
	for i := 0; i+1 < len(points); i++ {
		x1, y1 := roundPoint(points[i])
		x2, y2 := roundPoint(points[i+1])
		for dy := lo; dy < lo+n; dy++ {
			for dx := lo; dx < lo+n; dx++ {
				DrawLine(r.img, x1+dx, y1+dy, x2+dx, y2+dy, c)
			}
		}
	}
}

func (r *Raster) Size() (x, y int16) {
	b := r.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (r *Raster) SetPixel(x, y int16, c color.RGBA) {
	r.set(int(x), int(y), c)
}

func (r *Raster) Display() error { return nil }

func (r *Raster) set(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(r.img.Bounds())) {
		return
	}
	offset := r.img.PixOffset(x, y)
	r.img.Pix[offset] = c.R
	r.img.Pix[offset+1] = c.G
	r.img.Pix[offset+2] = c.B
	r.img.Pix[offset+3] = c.A
}

// DrawLine draws a line on the image from (x1, y1) to (x2, y2) by stepping
// along the longer axis. Pixels outside the image are skipped.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))

	var xInc, yInc float64
	if steps > 0 {
		xInc = dx / steps
		yInc = dy / steps
	}

	x := float64(x1)
	y := float64(y1)

	for i := 0; i <= int(steps); i++ {
		p := image.Point{X: int(math.Round(x)), Y: int(math.Round(y))}
		if p.In(img.Bounds()) {
			offset := img.PixOffset(p.X, p.Y)
			img.Pix[offset] = col.R
			img.Pix[offset+1] = col.G
			img.Pix[offset+2] = col.B
			img.Pix[offset+3] = col.A
		}
		x += xInc
		y += yInc
	}
}

// openPolygon drops a trailing point that repeats the first one.
func openPolygon(points []mgl64.Vec2) []mgl64.Vec2 {
	if n := len(points); n > 1 && points[0] == points[n-1] {
		return points[:n-1]
	}
	return points
}

func insideConvex(points []mgl64.Vec2, px, py float64) bool {
	var pos, neg bool
	for i, a := range points {
		b := points[(i+1)%len(points)]
		e := (px-a.X())*(b.Y()-a.Y()) - (py-a.Y())*(b.X()-a.X())
		switch {
		case e > 0:
			pos = true
		case e < 0:
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

func roundPoint(p mgl64.Vec2) (x, y int) {
	return int(math.Round(p.X())), int(math.Round(p.Y()))
}
