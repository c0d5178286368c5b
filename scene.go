package main

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

const outlineWidth = 1

// Surface receives the draw calls of one frame.
type Surface interface {
	Fill(c color.RGBA)
	FillPolygon(points []mgl64.Vec2, c color.RGBA)
	StrokePolygon(points []mgl64.Vec2, c color.RGBA, width float64)
}

// Polygon is a closed screen-space outline with the depth it is sorted by.
type Polygon struct {
	Points []mgl64.Vec2
	Depth  float64
}

// Rotation is the scene-wide Euler rotation in degrees, indexed X, Y, Z.
type Rotation struct {
	Angles [3]float64
}

// Scene draws a fixed set of meshes under a shared rotation. Meshes are
// shared with the caller and never modified by the scene.
type Scene struct {
	Rotation Rotation

	meshes   []*Mesh
	camera   Camera
	viewport Viewport
}

func NewScene(meshes []*Mesh, cam Camera, vp Viewport) *Scene {
	return &Scene{
		meshes:   meshes,
		camera:   cam,
		viewport: vp,
	}
}

func (s *Scene) Meshes() []*Mesh { return s.meshes }

// Transform rotates vertices by the scene angles and projects them. The
// angles are applied last axis first: Z, then Y, then X.
func (s *Scene) Transform(vertices []mgl64.Vec3) []mgl64.Vec3 {
	axes := [3]mgl64.Vec3{axisX, axisY, axisZ}
	out := vertices
	for i := len(axes) - 1; i >= 0; i-- {
		out = rotateVertices(out, s.Rotation.Angles[i], axes[i])
	}
	return projectVertices(out, s.viewport, s.camera)
}

// Polygons returns the faces of every mesh, farthest first.
func (s *Scene) Polygons() []Polygon {
	var polys []Polygon
	for _, m := range s.meshes {
		projected := s.Transform(m.Vertices())
		for _, fd := range m.AverageDepths(projected) {
			polys = append(polys, Polygon{
				Points: m.ClosedPolygon(m.Face(fd.Face), projected),
				Depth:  fd.Depth,
			})
		}
	}
	sortBackToFront(polys)
	return polys
}

// Render paints the scene with the painter's algorithm: each face is filled
// and outlined before the next nearer one.
func (s *Scene) Render(dst Surface) {
	for _, p := range s.Polygons() {
		dst.FillPolygon(p.Points, faceColor(Centroid(p.Points), p.Depth))
		dst.StrokePolygon(p.Points, colorBlack, outlineWidth)
	}
}

func sortBackToFront(polys []Polygon) {
	sort.SliceStable(polys, func(i, j int) bool {
		return polys[i].Depth > polys[j].Depth
	})
}
