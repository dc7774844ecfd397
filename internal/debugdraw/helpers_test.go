package debugdraw

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/debugdraw/pkg/math"
)

const tol = float32(1e-5)

func assertVec(t *testing.T, want, got math.Vec3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, float64(tol), msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, float64(tol), msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, float64(tol), msgAndArgs...)
}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(ms int) { c.now = c.now.Add(time.Duration(ms) * time.Millisecond) }

type linesCall struct {
	color    Color
	segments []Segment
}

type iconCall struct {
	icon      *IconHandle
	transform math.Mat4
}

// recordingBackend records every draw call.
type recordingBackend struct {
	lines   []linesCall
	icons   []iconCall
	view    View
	hasView bool

	panicOnLines int // panic on the n-th DrawLines call, 1-based; 0 disables
	lineCalls    int
}

func (b *recordingBackend) DrawLines(color Color, segments []Segment) {
	b.lineCalls++
	if b.panicOnLines == b.lineCalls {
		panic("backend failure")
	}
	b.lines = append(b.lines, linesCall{color: color, segments: segments})
}

func (b *recordingBackend) DrawIcon(icon *IconHandle, transform math.Mat4) {
	b.icons = append(b.icons, iconCall{icon: icon, transform: transform})
}

func (b *recordingBackend) View() (View, bool) { return b.view, b.hasView }

func (b *recordingBackend) reset() {
	b.lines = nil
	b.icons = nil
}
