package debugdraw

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/debugdraw/pkg/math"
)

func TestCircleSegmentsClosedLoop(t *testing.T) {
	center := math.V3(1, 2, 3)
	orientation := math.QuatFromEuler(0, 90, 0)

	tests := []struct {
		name     string
		sweep    float32
		vertices int
		want     int
	}{
		{"full", 360, 12, 12},
		{"zero sweep is full", 0, 8, 8},
		{"over full", 720, 6, 6},
		{"default vertices", 360, 0, DefaultCircleVertices},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := CircleSegments(center, 2, orientation, tt.sweep, tt.vertices)
			require.Len(t, segs, tt.want)

			assert.Equal(t, segs[0].From, segs[len(segs)-1].To)
			for i := 1; i < len(segs); i++ {
				assert.Equal(t, segs[i-1].To, segs[i].From, "segment %d", i)
			}
			for _, s := range segs {
				assert.InDelta(t, 2, s.From.Distance(center), 1e-4)
			}
		})
	}
}

func TestCircleSegmentsPartialSweep(t *testing.T) {
	segs := CircleSegments(math.Vec3Zero, 1, math.QuatIdentity(), 180, 12)
	require.Len(t, segs, 13)

	assertVec(t, math.V3(1, 0, 0), segs[0].From)
	assertVec(t, math.V3(-1, 0, 0), segs[11].To)

	// The last chord closes the arc.
	cap := segs[12]
	assert.Equal(t, segs[11].To, cap.From)
	assert.Equal(t, segs[0].From, cap.To)

	for _, s := range segs[:12] {
		assert.GreaterOrEqual(t, s.To.Y, -tol)
	}
}

func TestCircleSegmentsOrientation(t *testing.T) {
	// Rotating 90 degrees about X moves the circle into the XZ plane.
	segs := CircleSegments(math.Vec3Zero, 1, math.QuatFromEuler(90, 0, 0), 360, 12)
	for _, s := range segs {
		assert.InDelta(t, 0, s.From.Y, 1e-5)
	}
}

func TestArrowSegments(t *testing.T) {
	from, to := math.V3(0, 0, 0), math.V3(0, 0, 2)

	single := ArrowSegments(from, to, false)
	require.Len(t, single, 3)
	assert.Equal(t, Segment{From: from, To: to}, single[0])
	assert.Equal(t, to, single[1].From)
	assert.Equal(t, to, single[2].From)

	both := ArrowSegments(from, to, true)
	require.Len(t, both, 5)
	assert.Equal(t, from, both[3].From)
	assert.Equal(t, from, both[4].From)

	// Barbs at the tail point forward along the shaft.
	for _, s := range both[3:] {
		assert.Greater(t, s.To.Z, from.Z)
	}
}

func TestArrowSize(t *testing.T) {
	assert.InDelta(t, 0.25, ArrowSize(0.55), 1e-6)
	assert.InDelta(t, 0.25, ArrowSize(10), 1e-6)
	assert.InDelta(t, 0.05, ArrowSize(0.11), 1e-6)
	assert.Equal(t, float32(0), ArrowSize(0))
}

func TestArrowheadSegments(t *testing.T) {
	dir := math.V3(1, 1, 0).Normalize()
	pos := math.V3(2, 0, 1)
	segs := ArrowheadSegments(pos, dir, 0.5)
	require.Len(t, segs, 2)

	cos160 := math32.Cos(math.DegToRad(160))
	for _, s := range segs {
		assert.Equal(t, pos, s.From)
		barb := s.To.Sub(s.From)
		assert.InDelta(t, 0.5, barb.Length(), 1e-5)
		assert.InDelta(t, cos160, barb.Normalize().Dot(dir), 1e-4)
	}
	// The two barbs are mirrored, not coincident.
	assert.False(t, segs[0].To.ApproxEqual(segs[1].To, 1e-3))
}

func TestArrowheadZeroDirection(t *testing.T) {
	segs := ArrowheadSegments(math.Vec3Zero, math.Vec3Zero, 1)
	require.Len(t, segs, 2)
	for _, s := range segs {
		assert.False(t, math32.IsNaN(s.To.X) || math32.IsNaN(s.To.Y) || math32.IsNaN(s.To.Z))
	}
}

func TestCapsuleParts(t *testing.T) {
	p1, p2 := math.V3(0, 0, 0), math.V3(0, 3, 0)

	parts := CapsuleParts(p1, p2, 0.5, Green, true)
	require.Len(t, parts, 6)

	cap1 := parts[0].(Sphere)
	cap2 := parts[1].(Sphere)
	assert.True(t, cap1.Hemisphere)
	assert.Equal(t, p1, cap1.Origin)
	assert.Equal(t, math.V3(0, -3, 0), cap1.Up)
	assert.Equal(t, p2, cap2.Origin)
	assert.Equal(t, math.V3(0, 3, 0), cap2.Up)

	for _, p := range parts[2:] {
		l := p.(Line)
		assert.Equal(t, Green, l.Color)
		assert.InDelta(t, 3, l.From.Distance(l.To), 1e-5)
		assert.InDelta(t, 0.5, l.From.Distance(p1), 1e-5)
		assert.InDelta(t, 0, l.From.Y, 1e-5)
	}

	withoutCap := CapsuleParts(p1, p2, 0.5, Green, false)
	require.Len(t, withoutCap, 5)
	assert.Equal(t, p2, withoutCap[0].(Sphere).Origin)
}
