//go:build !ebiten

package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	vertexShaderSource = `
		#version 410
		in vec2 vp;
		uniform mat4 projection;
		void main() {
			gl_Position = projection * vec4(vp, 0.0, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		uniform vec4 colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = colour;
		}
	` + "\x00"
)

// glSurface draws polygons given in window pixels (origin top-left) with a
// streaming vertex buffer.
type glSurface struct {
	program       uint32
	vao           uint32
	vbo           uint32
	colourUniform int32

	scratch []float32
}

func newGLSurface(width, height, fbWidth, fbHeight int) (*glSurface, error) {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	gl.UseProgram(program)

	s := &glSurface{
		program:       program,
		colourUniform: gl.GetUniformLocation(program, gl.Str("colour\x00")),
	}

	projection := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	projectionUniform := gl.GetUniformLocation(program, gl.Str("projection\x00"))
	gl.UniformMatrix4fv(projectionUniform, 1, false, &projection[0])

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)

	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	// Faces arrive sorted back to front; no depth test.
	gl.Disable(gl.DEPTH_TEST)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	return s, nil
}

func (s *glSurface) Fill(c color.RGBA) {
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (s *glSurface) FillPolygon(points []mgl64.Vec2, c color.RGBA) {
	points = openPolygon(points)
	if len(points) < 3 {
		return
	}
	s.draw(gl.TRIANGLE_FAN, points, c)
}

func (s *glSurface) StrokePolygon(points []mgl64.Vec2, c color.RGBA, width float64) {
	if len(points) < 2 {
		return
	}
	// Forward-compatible core contexts reject line widths above 1.
	gl.LineWidth(float32(min(width, 1)))
	s.draw(gl.LINE_STRIP, points, c)
}

func (s *glSurface) draw(mode uint32, points []mgl64.Vec2, c color.RGBA) {
	s.scratch = s.scratch[:0]
	for _, p := range points {
		s.scratch = append(s.scratch, float32(p.X()), float32(p.Y()))
	}

	gl.UseProgram(s.program)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(s.scratch)*4, gl.Ptr(s.scratch), gl.STREAM_DRAW)
	gl.Uniform4f(s.colourUniform, float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.DrawArrays(mode, 0, int32(len(points)))
}

func (s *glSurface) Delete() {
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteProgram(s.program)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}

	return shader, nil
}
