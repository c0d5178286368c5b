package main

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidFace reports a face that does not describe a polygon over the
// mesh's vertex list.
var ErrInvalidFace = errors.New("invalid face")

// Face is a polygon given as indices into a mesh's vertex list, in winding
// order.
type Face []int

// FaceDepth pairs a face index with the mean depth of its vertices.
type FaceDepth struct {
	Face  int
	Depth float64
}

// Mesh is a vertex list plus faces over it. Transforms replace the vertex
// list; faces are fixed once the mesh is built.
type Mesh struct {
	vertices []mgl64.Vec3
	faces    []Face
}

// NewMesh validates faces against vertices and returns a mesh owning copies
// of both.
func NewMesh(vertices []mgl64.Vec3, faces []Face) (*Mesh, error) {
	for i, f := range faces {
		if len(f) < 3 {
			return nil, fmt.Errorf("%w: face %d has %d indices", ErrInvalidFace, i, len(f))
		}
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidFace, i, idx, len(vertices))
			}
		}
	}

	m := &Mesh{
		vertices: append([]mgl64.Vec3(nil), vertices...),
		faces:    make([]Face, len(faces)),
	}
	for i, f := range faces {
		m.faces[i] = append(Face(nil), f...)
	}
	return m, nil
}

func (m *Mesh) Rotate(angle float64, axis mgl64.Vec3) {
	m.vertices = rotateVertices(m.vertices, angle, axis)
}

func (m *Mesh) Scale(s mgl64.Vec3) {
	m.vertices = scaleVertices(m.vertices, s)
}

func (m *Mesh) Translate(t mgl64.Vec3) {
	m.vertices = translateVertices(m.vertices, t)
}

// Vertices returns the current vertex list. Callers must not modify it.
func (m *Mesh) Vertices() []mgl64.Vec3 { return m.vertices }

func (m *Mesh) Faces() []Face { return m.faces }

func (m *Mesh) Face(i int) Face { return m.faces[i] }

// AverageDepths returns, for every face, the arithmetic mean of the z
// coordinate of its vertices in projected.
func (m *Mesh) AverageDepths(projected []mgl64.Vec3) []FaceDepth {
	depths := make([]FaceDepth, len(m.faces))
	for i, f := range m.faces {
		var sum float64
		for _, idx := range f {
			sum += projected[idx].Z()
		}
		depths[i] = FaceDepth{Face: i, Depth: sum / float64(len(f))}
	}
	return depths
}

// ClosedPolygon returns the screen points of face in projected, with the
// first point repeated at the end.
func (m *Mesh) ClosedPolygon(face Face, projected []mgl64.Vec3) []mgl64.Vec2 {
	points := make([]mgl64.Vec2, 0, len(face)+1)
	for _, idx := range face {
		p := projected[idx]
		points = append(points, mgl64.Vec2{p[0], p[1]})
	}
	return append(points, points[0])
}
