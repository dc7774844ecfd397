package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/debugdraw/internal/query"
	"github.com/Faultbox/debugdraw/pkg/math"
)

func TestIntersectAABB(t *testing.T) {
	box := NewAABB(math.V3(1, 1, 1), math.V3(-1, -1, -1))

	tests := []struct {
		name   string
		ray    Ray
		hit    bool
		t      float32
		normal math.Vec3
	}{
		{"front", Ray{Origin: math.V3(0, 0, -5), Direction: math.V3(0, 0, 1)}, true, 4, math.V3(0, 0, -1)},
		{"side", Ray{Origin: math.V3(5, 0.5, 0), Direction: math.V3(-1, 0, 0)}, true, 4, math.V3(1, 0, 0)},
		{"inside", Ray{Origin: math.V3(0, 0, 0), Direction: math.V3(0, 1, 0)}, true, 1, math.V3(0, -1, 0)},
		{"miss", Ray{Origin: math.V3(0, 5, -5), Direction: math.V3(0, 0, 1)}, false, 0, math.Vec3{}},
		{"behind", Ray{Origin: math.V3(0, 0, 5), Direction: math.V3(0, 0, 1)}, false, 0, math.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, normal, hit := tt.ray.IntersectAABB(box)
			require.Equal(t, tt.hit, hit)
			assert.InDelta(t, tt.t, got, 1e-5)
			assert.Equal(t, tt.normal, normal)
		})
	}
}

func TestIntersectPlaneY(t *testing.T) {
	r := Ray{Origin: math.V3(0, 10, 0), Direction: math.V3(0, -1, 1).Normalize()}
	p, ok := r.IntersectPlaneY(0)
	require.True(t, ok)
	assert.InDelta(t, 10, p.Z, 1e-4)

	_, ok = Ray{Origin: math.V3(0, 10, 0), Direction: math.V3(1, 0, 0)}.IntersectPlaneY(0)
	assert.False(t, ok)
}

func TestScreenToRayCenter(t *testing.T) {
	view := math.LookAt(math.V3(0, 0, 10), math.Vec3Zero, math.Vec3Up)
	proj := math.Perspective(math.DegToRad(60), 1, 0.1, 100)
	inv := proj.Mul(view).Inverse()

	r := ScreenToRay(400, 300, 800, 600, inv)
	assert.InDelta(t, 0, r.Direction.X, 1e-4)
	assert.InDelta(t, 0, r.Direction.Y, 1e-4)
	assert.InDelta(t, -1, r.Direction.Z, 1e-4)
	assert.InDelta(t, 9.9, r.Origin.Z, 1e-3)
}

func newTestWorld() *World {
	return NewWorld(
		Collider{Name: "near", Box: AABBFromCenter(math.V3(0, 0, 5), math.V3(1, 1, 1)), Layer: 0},
		Collider{Name: "far", Box: AABBFromCenter(math.V3(0, 0, 10), math.V3(1, 1, 1)), Layer: 1},
		Collider{Name: "aside", Box: AABBFromCenter(math.V3(3, 0, 5), math.V3(0.5, 0.5, 0.5)), Layer: 0},
	)
}

func TestWorldRaycast(t *testing.T) {
	w := newTestWorld()

	hit, ok := w.Raycast(math.Vec3Zero, math.V3(0, 0, 2), 100, query.AllLayers)
	require.True(t, ok)
	assert.InDelta(t, 4, hit.Distance, 1e-5)
	assert.Equal(t, math.V3(0, 0, -1), hit.Normal)
	assert.InDelta(t, 4, hit.Point.Z, 1e-5)

	hits := w.RaycastAll(math.Vec3Zero, math.Vec3Forward, 100, query.AllLayers)
	require.Len(t, hits, 2)
	assert.Less(t, hits[0].Distance, hits[1].Distance)

	hit, ok = w.Raycast(math.Vec3Zero, math.Vec3Forward, 100, query.LayerMask(1<<1))
	require.True(t, ok)
	assert.InDelta(t, 9, hit.Distance, 1e-5)

	_, ok = w.Raycast(math.Vec3Zero, math.Vec3Forward, 3, query.AllLayers)
	assert.False(t, ok, "beyond max distance")

	_, ok = w.Raycast(math.Vec3Zero, math.Vec3Zero, 100, query.AllLayers)
	assert.False(t, ok, "zero direction")
}

func TestWorldSphereCast(t *testing.T) {
	w := newTestWorld()

	// A ray at x=1.8 misses everything but a sphere of radius 1 clips all three boxes.
	_, ok := w.Raycast(math.V3(1.8, 0, 0), math.Vec3Forward, 100, query.AllLayers)
	require.False(t, ok)

	hits := w.SphereCastAll(math.V3(1.8, 0, 0), 1, math.Vec3Forward, 100, query.AllLayers)
	require.Len(t, hits, 3)
	assert.InDelta(t, 3, hits[0].Distance, 1e-5)
	assert.InDelta(t, 4, hits[0].Point.Z, 1e-5)

	hit, ok := w.SphereCast(math.V3(-1.3, 0, 0), 0.5, math.Vec3Forward, 100, query.AllLayers)
	require.True(t, ok)
	assert.InDelta(t, 3.5, hit.Distance, 1e-5)
}

func TestWorldCapsuleAndBoxCast(t *testing.T) {
	w := newTestWorld()

	hit, ok := w.CapsuleCast(math.V3(-0.9, 0, 0), math.V3(-3, 0, 0), 0.25, math.Vec3Forward, 100, query.AllLayers)
	require.True(t, ok)
	assert.InDelta(t, 3.75, hit.Distance, 1e-5)

	_, ok = w.BoxCast(math.V3(-2.2, 0, 0), math.V3(0.5, 0.5, 0.5), math.Vec3Forward, math.QuatIdentity(), 100, query.AllLayers)
	assert.False(t, ok)

	// Rotated 45 degrees the box reaches sqrt(0.5) on X and clips "near".
	hit, ok = w.BoxCast(math.V3(-1.6, 0, 0), math.V3(0.5, 0.5, 0.5), math.Vec3Forward, math.QuatFromEuler(0, 45, 0), 100, query.AllLayers)
	require.True(t, ok)
	assert.InDelta(t, 4-0.70710677, hit.Distance, 1e-4)
}

func TestAABBHelpers(t *testing.T) {
	b := AABBFromCenter(math.V3(1, 2, 3), math.V3(1, 1, 2))
	assert.Equal(t, math.V3(1, 2, 3), b.Center())
	assert.Equal(t, math.V3(1, 1, 2), b.HalfExtents())
	assert.True(t, b.Contains(math.V3(1.5, 2.5, 4.9)))
	assert.False(t, b.Contains(math.V3(1.5, 2.5, 5.1)))
}
