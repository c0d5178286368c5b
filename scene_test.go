package main

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type drawCall struct {
	op     string
	points []mgl64.Vec2
	color  color.RGBA
	width  float64
}

// recordingSurface keeps every draw call in order.
type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) Fill(c color.RGBA) {
	s.calls = append(s.calls, drawCall{op: "fill", color: c})
}

func (s *recordingSurface) FillPolygon(points []mgl64.Vec2, c color.RGBA) {
	s.calls = append(s.calls, drawCall{op: "polygon", points: points, color: c})
}

func (s *recordingSurface) StrokePolygon(points []mgl64.Vec2, c color.RGBA, width float64) {
	s.calls = append(s.calls, drawCall{op: "outline", points: points, color: c, width: width})
}

func newCubeScene(t *testing.T) *Scene {
	t.Helper()
	cube, err := NewCube()
	if err != nil {
		t.Fatal(err)
	}
	return NewScene([]*Mesh{cube}, testCamera, testViewport)
}

func TestSceneTransformCenter(t *testing.T) {
	s := newCubeScene(t)
	got := s.Transform([]mgl64.Vec3{{0, 0, 1}})
	want := mgl64.Vec3{1000/2 + 450, 1000/2 + 50, 1}
	if !got[0].ApproxEqualThreshold(want, 1e-6) {
		t.Fatalf("Transform(0, 0, 1) = %v, want %v", got[0], want)
	}
}

func TestSceneTransformAppliesZYXOrder(t *testing.T) {
	s := newCubeScene(t)
	s.Rotation.Angles = [3]float64{90, 90, 30}
	in := []mgl64.Vec3{{1, 2, 3}, {-0.5, 0.25, 1}}

	got := s.Transform(in)

	rotated := rotateVertices(in, 30, axisZ)
	rotated = rotateVertices(rotated, 90, axisY)
	rotated = rotateVertices(rotated, 90, axisX)
	want := projectVertices(rotated, testViewport, testCamera)
	if !vertsNear(got, want) {
		t.Errorf("Transform = %v, want Z-Y-X composition %v", got, want)
	}

	wrong := rotateVertices(in, 90, axisX)
	wrong = rotateVertices(wrong, 90, axisY)
	wrong = rotateVertices(wrong, 30, axisZ)
	if vertsNear(got, projectVertices(wrong, testViewport, testCamera)) {
		t.Errorf("Transform matches X-Y-Z composition")
	}
}

func TestSceneTransformLeavesMeshUntouched(t *testing.T) {
	s := newCubeScene(t)
	s.Rotation.Angles = [3]float64{45, 45, 0}
	before := append([]mgl64.Vec3(nil), s.Meshes()[0].Vertices()...)
	s.Polygons()
	if !vertsNear(before, s.Meshes()[0].Vertices()) {
		t.Fatalf("mesh vertices changed by rendering")
	}
}

func TestPolygonsFarthestFirst(t *testing.T) {
	verts := []mgl64.Vec3{
		{0, 0, 5}, {1, 0, 5}, {0, 1, 5},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1},
		{0, 0, 3}, {1, 0, 3}, {0, 1, 3},
	}
	m, err := NewMesh(verts, []Face{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}})
	if err != nil {
		t.Fatal(err)
	}
	s := NewScene([]*Mesh{m}, testCamera, testViewport)

	polys := s.Polygons()
	want := []float64{5, 3, 1}
	if len(polys) != len(want) {
		t.Fatalf("got %d polygons, want %d", len(polys), len(want))
	}
	for i, d := range want {
		if !mgl64.FloatEqualThreshold(polys[i].Depth, d, eps) {
			t.Errorf("polygon %d depth = %v, want %v", i, polys[i].Depth, d)
		}
		if len(polys[i].Points) != 4 {
			t.Errorf("polygon %d has %d points, want 4", i, len(polys[i].Points))
		}
	}
}

func TestPolygonsMergeAllMeshes(t *testing.T) {
	meshes, err := BuildGrid(0.3, 1)
	if err != nil {
		t.Fatal(err)
	}
	s := NewScene(meshes, testCamera, testViewport)
	s.Rotation.Angles = [3]float64{45, 45, 0}

	polys := s.Polygons()
	if len(polys) != 27*6 {
		t.Fatalf("got %d polygons, want %d", len(polys), 27*6)
	}
	for i := 1; i < len(polys); i++ {
		if polys[i].Depth > polys[i-1].Depth {
			t.Fatalf("polygon %d (depth %v) after shallower polygon (depth %v)", i, polys[i].Depth, polys[i-1].Depth)
		}
	}
}

func TestSortBackToFrontIsStable(t *testing.T) {
	polys := []Polygon{
		{Depth: 1, Points: []mgl64.Vec2{{1, 0}}},
		{Depth: 2},
		{Depth: 1, Points: []mgl64.Vec2{{2, 0}}},
	}
	sortBackToFront(polys)
	if polys[0].Depth != 2 {
		t.Fatalf("first depth = %v, want 2", polys[0].Depth)
	}
	if polys[1].Points[0].X() != 1 || polys[2].Points[0].X() != 2 {
		t.Fatalf("equal depths reordered: %v", polys)
	}
}

func TestRenderFillsThenOutlinesEachFace(t *testing.T) {
	s := newCubeScene(t)
	s.Rotation.Angles = [3]float64{45, 45, 0}

	var dst recordingSurface
	s.Render(&dst)

	if len(dst.calls) != 2*len(cubeFaces) {
		t.Fatalf("got %d draw calls, want %d", len(dst.calls), 2*len(cubeFaces))
	}
	prevBlue := 256
	for i := 0; i < len(dst.calls); i += 2 {
		fill, outline := dst.calls[i], dst.calls[i+1]
		if fill.op != "polygon" || outline.op != "outline" {
			t.Fatalf("calls %d,%d = %s,%s, want polygon,outline", i, i+1, fill.op, outline.op)
		}
		if outline.color != colorBlack || outline.width != 1 {
			t.Errorf("outline %d drawn with %v width %v", i/2, outline.color, outline.width)
		}
		if len(fill.points) != 5 || fill.points[0] != fill.points[4] {
			t.Errorf("face %d polygon not closed: %v", i/2, fill.points)
		}
		// Blue tracks depth, so it must not increase back to front.
		if int(fill.color.B) > prevBlue {
			t.Errorf("face %d blue %d after %d", i/2, fill.color.B, prevBlue)
		}
		prevBlue = int(fill.color.B)
	}
}
