// Package debugrender draws debugdraw primitives with OpenGL.
package debugrender

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/debugdraw/internal/debugdraw"
	"github.com/Faultbox/debugdraw/internal/engine/shader"
	"github.com/Faultbox/debugdraw/internal/logger"
	"github.com/Faultbox/debugdraw/pkg/math"
)

var (
	//go:embed shaders/lines.vert
	linesVertSrc string
	//go:embed shaders/lines.frag
	linesFragSrc string
	//go:embed shaders/icon.vert
	iconVertSrc string
	//go:embed shaders/icon.frag
	iconFragSrc string
)

// quadVertices is a unit quad centered on the origin in the XY plane,
// drawn as a triangle strip. Layout: x, y, z, u, v.
var quadVertices = []float32{
	-0.5, -0.5, 0, 0, 0,
	0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0, 1, 1,
}

// Backend implements debugdraw.Backend. Call SetCamera before each flush.
type Backend struct {
	lines *shader.Program
	icons *shader.Program

	lineVAO, lineVBO uint32
	quadVAO, quadVBO uint32
	lineCapacity     int // floats allocated in lineVBO

	scratch  []float32
	viewProj math.Mat4
	view     debugdraw.View
	hasView  bool

	log *zap.Logger
}

var _ debugdraw.Backend = (*Backend)(nil)

// New creates the backend. Must be called after the OpenGL context exists.
func New() (*Backend, error) {
	b := &Backend{
		log:      logger.Named("debugrender"),
		viewProj: math.Identity(),
	}

	var err error
	if b.lines, err = shader.Compile(linesVertSrc, linesFragSrc); err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}
	if b.icons, err = shader.Compile(iconVertSrc, iconFragSrc); err != nil {
		b.lines.Delete()
		return nil, fmt.Errorf("icon shader: %w", err)
	}

	gl.GenVertexArrays(1, &b.lineVAO)
	gl.GenBuffers(1, &b.lineVBO)
	gl.BindVertexArray(b.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.lineVBO)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenVertexArrays(1, &b.quadVAO)
	gl.GenBuffers(1, &b.quadVBO)
	gl.BindVertexArray(b.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 5*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 5*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	b.log.Debug("debug render backend ready")
	return b, nil
}

// SetCamera sets the matrices and billboard view for the next flush.
func (b *Backend) SetCamera(viewMatrix, projection math.Mat4, view debugdraw.View) {
	b.viewProj = projection.Mul(viewMatrix)
	b.view = view
	b.hasView = true
}

// ClearCamera makes View report no camera, which suppresses icons.
func (b *Backend) ClearCamera() {
	b.hasView = false
}

// View implements debugdraw.Backend.
func (b *Backend) View() (debugdraw.View, bool) {
	return b.view, b.hasView
}

// Begin sets the blend state used by debug primitives.
func (b *Backend) Begin() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.DEPTH_TEST)
}

// DrawLines implements debugdraw.Backend.
func (b *Backend) DrawLines(color debugdraw.Color, segments []debugdraw.Segment) {
	if len(segments) == 0 {
		return
	}
	b.scratch = packSegments(b.scratch[:0], segments)

	gl.BindVertexArray(b.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.lineVBO)
	if len(b.scratch) > b.lineCapacity {
		b.lineCapacity = growCapacity(len(b.scratch))
		gl.BufferData(gl.ARRAY_BUFFER, b.lineCapacity*4, nil, gl.STREAM_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(b.scratch)*4, gl.Ptr(b.scratch))

	b.lines.Use()
	b.lines.SetMat4("uViewProj", b.viewProj)
	b.lines.SetVec4("uColor", color.R, color.G, color.B, color.A)
	gl.DrawArrays(gl.LINES, 0, int32(len(segments)*2))
	gl.BindVertexArray(0)
}

// DrawIcon implements debugdraw.Backend. Handles without a texture, such as
// ones released by a hot reload, are skipped.
func (b *Backend) DrawIcon(icon *debugdraw.IconHandle, transform math.Mat4) {
	tex, ok := icon.Resource.(uint32)
	if !ok || tex == 0 {
		return
	}

	gl.Disable(gl.CULL_FACE)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	b.icons.Use()
	b.icons.SetMat4("uViewProj", b.viewProj)
	b.icons.SetMat4("uModel", transform)
	b.icons.SetInt("uTexture", 0)

	gl.BindVertexArray(b.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

// Close releases GPU resources.
func (b *Backend) Close() {
	gl.DeleteVertexArrays(1, &b.lineVAO)
	gl.DeleteBuffers(1, &b.lineVBO)
	gl.DeleteVertexArrays(1, &b.quadVAO)
	gl.DeleteBuffers(1, &b.quadVBO)
	b.lines.Delete()
	b.icons.Delete()
}

// packSegments appends the endpoints of segments as x, y, z triples.
func packSegments(dst []float32, segments []debugdraw.Segment) []float32 {
	for _, s := range segments {
		dst = append(dst, s.From.X, s.From.Y, s.From.Z, s.To.X, s.To.Y, s.To.Z)
	}
	return dst
}

// growCapacity rounds n up to the next power of two, at least 1024.
func growCapacity(n int) int {
	c := 1024
	for c < n {
		c *= 2
	}
	return c
}
