package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	cubeVertices = []mgl64.Vec3{
		{-1, -1, 1},
		{1, -1, 1},
		{1, 1, 1},
		{-1, 1, 1},
		{-1, -1, -1},
		{1, -1, -1},
		{1, 1, -1},
		{-1, 1, -1},
	}

	cubeFaces = []Face{
		{0, 1, 2, 3}, // front
		{1, 5, 6, 2}, // right
		{5, 4, 7, 6}, // back
		{4, 0, 3, 7}, // left
		{3, 2, 6, 7}, // top
		{1, 0, 4, 5}, // bottom
	}

	// Layer order is z = 0, 1, -1.
	gridLayers = []float64{0, 1, -1}
)

// NewCube returns the cube spanning -1..1 on every axis.
func NewCube() (*Mesh, error) {
	return NewMesh(cubeVertices, cubeFaces)
}

// BuildGrid returns 27 cubes, each scaled by scale and then moved to a point
// of the 3x3x3 lattice with the given spacing.
func BuildGrid(scale, spacing float64) ([]*Mesh, error) {
	meshes := make([]*Mesh, 0, 27)
	for _, z := range gridLayers {
		for y := -1.0; y <= 1; y++ {
			for x := -1.0; x <= 1; x++ {
				cube, err := NewCube()
				if err != nil {
					return nil, fmt.Errorf("cube at (%v, %v, %v): %w", x, y, z, err)
				}
				cube.Scale(mgl64.Vec3{scale, scale, scale})
				cube.Translate(mgl64.Vec3{x, y, z}.Mul(spacing))
				meshes = append(meshes, cube)
			}
		}
	}
	return meshes, nil
}
