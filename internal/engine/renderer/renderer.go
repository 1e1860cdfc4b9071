// Package renderer provides batched OpenGL line and triangle rendering.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/azel-sphere/internal/engine/shader"
	"github.com/Faultbox/azel-sphere/internal/logger"
	"github.com/Faultbox/azel-sphere/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	MSAA   int
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// floats per vertex: position (3) + color (4)
const vertexStride = 7

// Renderer accumulates colored line and triangle vertices each frame and
// flushes them in two draw calls. Everything shares one shader.
type Renderer struct {
	config Config

	program     uint32
	uniViewProj int32

	lineVAO uint32
	lineVBO uint32
	triVAO  uint32
	triVBO  uint32

	lineVerts []float32
	triVerts  []float32

	viewProj math.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:    cfg,
		lineVerts: make([]float32, 0, 4096),
		triVerts:  make([]float32, 0, 4096),
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	if cfg.MSAA > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}
	gl.ClearColor(0.08, 0.08, 0.10, 1.0) // Near-black background

	var err error
	r.program, err = shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.uniViewProj = shader.MustGetUniform(r.program, "uViewProj")

	r.lineVAO, r.lineVBO = createBatchBuffers()
	r.triVAO, r.triVBO = createBatchBuffers()

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	if r.triVAO != 0 {
		gl.DeleteVertexArrays(1, &r.triVAO)
		gl.DeleteBuffers(1, &r.triVBO)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame with the given view-projection matrix.
func (r *Renderer) Begin(viewProj math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.viewProj = viewProj
	r.lineVerts = r.lineVerts[:0]
	r.triVerts = r.triVerts[:0]
}

// AddLine queues a single line segment.
func (r *Renderer) AddLine(a, b math.Vec3, c Color) {
	r.lineVerts = appendVertex(r.lineVerts, a, c)
	r.lineVerts = appendVertex(r.lineVerts, b, c)
}

// AddPolyline queues consecutive segments through the given points.
func (r *Renderer) AddPolyline(points []math.Vec3, c Color) {
	for i := 0; i+1 < len(points); i++ {
		r.AddLine(points[i], points[i+1], c)
	}
}

// AddTriangles queues filled triangles. len(verts) must be a multiple of 3.
func (r *Renderer) AddTriangles(verts []math.Vec3, c Color) {
	for _, v := range verts {
		r.triVerts = appendVertex(r.triVerts, v, c)
	}
}

// End flushes the queued geometry: triangles first, then lines on top.
func (r *Renderer) End() {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uniViewProj, 1, false, r.viewProj.Ptr())

	if len(r.triVerts) > 0 {
		gl.BindVertexArray(r.triVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.triVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.triVerts)*4, unsafe.Pointer(&r.triVerts[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.triVerts)/vertexStride))
	}

	if len(r.lineVerts) > 0 {
		gl.BindVertexArray(r.lineVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.lineVerts)*4, unsafe.Pointer(&r.lineVerts[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.LINES, 0, int32(len(r.lineVerts)/vertexStride))
	}

	gl.BindVertexArray(0)
}

func appendVertex(buf []float32, p math.Vec3, c Color) []float32 {
	return append(buf, p.X, p.Y, p.Z, c.R, c.G, c.B, c.A)
}

// createBatchBuffers creates a VAO/VBO pair with the position+color layout.
func createBatchBuffers() (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride*4, nil)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, vertexStride*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return vao, vbo
}

const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uViewProj;

out vec4 vertexColor;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
	vertexColor = aColor;
}
`

const fragmentShaderSource = `
#version 410 core

in vec4 vertexColor;
out vec4 FragColor;

void main() {
	FragColor = vertexColor;
}
`
