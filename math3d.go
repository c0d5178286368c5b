package main

import "github.com/go-gl/mathgl/mgl64"

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)

// Rotate rotates v by angle degrees around axis. A positive angle turns
// counterclockwise when looking from the positive end of axis toward the origin.
func Rotate(v mgl64.Vec3, angle float64, axis mgl64.Vec3) mgl64.Vec3 {
	l := axis.Len()
	if l == 0 {
		return v
	}
	return mgl64.QuatRotate(mgl64.DegToRad(angle), axis.Mul(1/l)).Rotate(v)
}

func rotateVertices(vertices []mgl64.Vec3, angle float64, axis mgl64.Vec3) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(vertices))
	for i, v := range vertices {
		out[i] = Rotate(v, angle, axis)
	}
	return out
}

func scaleVertices(vertices []mgl64.Vec3, s mgl64.Vec3) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(vertices))
	for i, v := range vertices {
		out[i] = mgl64.Vec3{v[0] * s[0], v[1] * s[1], v[2] * s[2]}
	}
	return out
}

func translateVertices(vertices []mgl64.Vec3, t mgl64.Vec3) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(vertices))
	for i, v := range vertices {
		out[i] = v.Add(t)
	}
	return out
}
