package picking

import (
	"slices"

	"github.com/chewxy/math32"

	"github.com/Faultbox/debugdraw/internal/debugdraw"
	"github.com/Faultbox/debugdraw/internal/query"
	"github.com/Faultbox/debugdraw/pkg/math"
)

// Collider is a named box on a layer.
type Collider struct {
	Name  string
	Box   AABB
	Layer int
}

// World answers queries against a set of colliders. Swept shapes are reduced
// to their axis-aligned bounds and tested by inflating every collider by the
// shape's half extents.
type World struct {
	colliders []Collider
}

var _ query.Provider = (*World)(nil)

// NewWorld creates a world holding colliders.
func NewWorld(colliders ...Collider) *World {
	return &World{colliders: slices.Clone(colliders)}
}

// Add adds a collider.
func (w *World) Add(c Collider) { w.colliders = append(w.colliders, c) }

// Colliders returns the colliders in insertion order.
func (w *World) Colliders() []Collider { return w.colliders }

// sweep casts a box with the given half extents from center along direction
// and returns every hit within maxDistance, nearest first.
func (w *World) sweep(center, halfExtents, direction math.Vec3, maxDistance float32, mask query.LayerMask) []debugdraw.Hit {
	dir := direction.Normalize()
	if dir == (math.Vec3{}) {
		return nil
	}
	ray := Ray{Origin: center, Direction: dir}

	var hits []debugdraw.Hit
	for _, c := range w.colliders {
		if !mask.Has(c.Layer) {
			continue
		}
		t, normal, ok := ray.IntersectAABB(c.Box.Expand(halfExtents))
		if !ok || t > maxDistance {
			continue
		}
		// Move from the swept center to the collider surface.
		contact := ray.At(t).Sub(mul(normal, halfExtents))
		hits = append(hits, debugdraw.Hit{Point: contact, Normal: normal, Distance: t})
	}

	slices.SortStableFunc(hits, func(a, b debugdraw.Hit) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return hits
}

func mul(a, b math.Vec3) math.Vec3 {
	return math.Vec3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

func nearest(hits []debugdraw.Hit) (debugdraw.Hit, bool) {
	if len(hits) == 0 {
		return debugdraw.Hit{}, false
	}
	return hits[0], true
}

// Raycast returns the nearest hit along the ray.
func (w *World) Raycast(origin, direction math.Vec3, maxDistance float32, mask query.LayerMask) (debugdraw.Hit, bool) {
	return nearest(w.sweep(origin, math.Vec3{}, direction, maxDistance, mask))
}

// RaycastAll returns every hit along the ray, nearest first.
func (w *World) RaycastAll(origin, direction math.Vec3, maxDistance float32, mask query.LayerMask) []debugdraw.Hit {
	return w.sweep(origin, math.Vec3{}, direction, maxDistance, mask)
}

// SphereCast returns the nearest hit of a swept sphere.
func (w *World) SphereCast(origin math.Vec3, radius float32, direction math.Vec3, maxDistance float32, mask query.LayerMask) (debugdraw.Hit, bool) {
	return nearest(w.SphereCastAll(origin, radius, direction, maxDistance, mask))
}

// SphereCastAll returns every hit of a swept sphere, nearest first.
func (w *World) SphereCastAll(origin math.Vec3, radius float32, direction math.Vec3, maxDistance float32, mask query.LayerMask) []debugdraw.Hit {
	return w.sweep(origin, math.Vec3{X: radius, Y: radius, Z: radius}, direction, maxDistance, mask)
}

// CapsuleCast returns the nearest hit of a swept capsule.
func (w *World) CapsuleCast(p1, p2 math.Vec3, radius float32, direction math.Vec3, maxDistance float32, mask query.LayerMask) (debugdraw.Hit, bool) {
	bounds := NewAABB(p1, p2).Expand(math.Vec3{X: radius, Y: radius, Z: radius})
	return nearest(w.sweep(bounds.Center(), bounds.HalfExtents(), direction, maxDistance, mask))
}

// BoxCast returns the nearest hit of a swept oriented box.
func (w *World) BoxCast(center, halfExtents, direction math.Vec3, orientation math.Quat, maxDistance float32, mask query.LayerMask) (debugdraw.Hit, bool) {
	return nearest(w.sweep(center, orientedExtents(halfExtents, orientation), direction, maxDistance, mask))
}

// orientedExtents returns the half extents of the axis-aligned bounds of a rotated box.
func orientedExtents(h math.Vec3, q math.Quat) math.Vec3 {
	x := q.Rotate(math.Vec3{X: h.X})
	y := q.Rotate(math.Vec3{Y: h.Y})
	z := q.Rotate(math.Vec3{Z: h.Z})
	return math.Vec3{
		X: math32.Abs(x.X) + math32.Abs(y.X) + math32.Abs(z.X),
		Y: math32.Abs(x.Y) + math32.Abs(y.Y) + math32.Abs(z.Y),
		Z: math32.Abs(x.Z) + math32.Abs(y.Z) + math32.Abs(z.Z),
	}
}
