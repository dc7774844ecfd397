package debugdraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/debugdraw/pkg/math"
)

func TestDrawRaycast(t *testing.T) {
	v, backend, _ := newTestVisualizer()
	v.DrawRaycast(math.V3(1, 0, 0), math.V3(0, 0, 5), 3, Red, 0)
	v.Flush()

	require.Len(t, backend.lines, 3)
	shaft := backend.lines[0].segments[0]
	assert.Equal(t, math.V3(1, 0, 0), shaft.From)
	assertVec(t, math.V3(1, 0, 3), shaft.To)
}

func TestDrawSphereCast(t *testing.T) {
	v, backend, _ := newTestVisualizer()
	origin := math.V3(0, 1, 0)
	dir := math.V3(0, 0, 2)
	color := Color{1, 0.5, 0, 1}

	v.DrawSphereCast(origin, 0.5, dir, 4, color, 0)
	// Sphere, the far hemisphere and four side lines.
	assert.Equal(t, 6, v.Stats().OneShot)

	v.Flush()
	require.Len(t, backend.lines, 6)

	sphere := backend.lines[0]
	assert.Equal(t, color, sphere.color)
	assert.Len(t, sphere.segments, 120)

	faded := color.ScaleAlpha(castAlpha)
	end := math.V3(0, 1, 4)
	for i, call := range backend.lines[1:] {
		assert.Equal(t, faded, call.color, "part %d", i)
		assert.InDelta(t, 0.33, call.color.A, 1e-6)
		for _, s := range call.segments {
			// Nothing of the capsule lies behind the start of the sweep.
			assert.GreaterOrEqual(t, s.From.Sub(origin).Dot(math.Vec3Forward), float32(-1e-4))
			assert.GreaterOrEqual(t, s.To.Sub(origin).Dot(math.Vec3Forward), float32(-1e-4))
		}
	}

	hemisphere := backend.lines[1]
	assert.Less(t, len(hemisphere.segments), 120)
	for _, s := range hemisphere.segments {
		assert.GreaterOrEqual(t, s.From.Sub(end).Dot(math.Vec3Forward), float32(-1e-4))
	}
}

func TestDrawCapsuleCast(t *testing.T) {
	v, backend, _ := newTestVisualizer()
	p1, p2 := math.V3(0, 0, 0), math.V3(0, 2, 0)

	v.DrawCapsuleCast(p1, p2, 0.5, math.V3(3, 0, 0), 2, Green, 0)
	// Two capsules of six parts, two joining edges, a three-segment arrow.
	assert.Equal(t, 6+6+2+3, v.Stats().OneShot)

	v.Flush()
	require.Len(t, backend.lines, 17)
	faded := Green.ScaleAlpha(castAlpha)
	for _, call := range backend.lines[:6] {
		assert.Equal(t, Green, call.color)
	}
	for _, call := range backend.lines[6:14] {
		assert.Equal(t, faded, call.color)
	}
	assert.Equal(t, Segment{From: p1, To: math.V3(2, 0, 0)}, backend.lines[12].segments[0])
	assert.Equal(t, Segment{From: p2, To: math.V3(2, 2, 0)}, backend.lines[13].segments[0])

	arrow := backend.lines[14]
	assert.Equal(t, Green, arrow.color)
	assert.Equal(t, math.V3(0, 1, 0), arrow.segments[0].From)
	assertVec(t, math.V3(2, 1, 0), arrow.segments[0].To)
}

func TestDrawBoxCast(t *testing.T) {
	v, backend, _ := newTestVisualizer()
	v.DrawBoxCast(math.Vec3Zero, math.Vec3One, math.V3(0, 10, 0), math.QuatIdentity(), 5, Cyan, 250)
	assert.Equal(t, 10, v.Stats().Durable)

	v.Flush()
	require.Len(t, backend.lines, 10)
	assert.Equal(t, Cyan, backend.lines[0].color)
	assert.Len(t, backend.lines[0].segments, 12)

	faded := Cyan.ScaleAlpha(castAlpha)
	for _, call := range backend.lines[1:] {
		assert.Equal(t, faded, call.color)
	}
	for _, call := range backend.lines[2:] {
		s := call.segments[0]
		assertVec(t, math.V3(0, 5, 0), s.To.Sub(s.From))
	}
}

func TestDrawCastZeroDirection(t *testing.T) {
	v, backend, _ := newTestVisualizer()
	v.DrawBoxCast(math.Vec3Zero, math.Vec3One, math.Vec3Zero, math.QuatIdentity(), 5, Cyan, 0)
	v.Flush()
	for _, call := range backend.lines[2:] {
		s := call.segments[0]
		assert.Equal(t, s.From, s.To)
	}
}

func TestDrawRaycastHit(t *testing.T) {
	v, backend, _ := newTestVisualizer(WithHitScale(1))
	hit := Hit{Point: math.V3(0, 0, 5), Normal: math.V3(0, 0, -1), Distance: 5}

	v.DrawRaycastHits([]Hit{hit, hit}, Yellow, 0)
	assert.Equal(t, 8, v.Stats().OneShot)

	v.Flush()
	marker := backend.lines[0]
	for _, s := range marker.segments {
		assert.InDelta(t, 0.1, s.From.Distance(hit.Point), 1e-5)
	}
	normal := backend.lines[1].segments[0]
	assert.Equal(t, hit.Point, normal.From)
	assertVec(t, math.V3(0, 0, 4), normal.To)
}
