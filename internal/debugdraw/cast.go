package debugdraw

import (
	"github.com/Faultbox/debugdraw/pkg/math"
)

// castAlpha scales the alpha of everything drawn at the far end of a sweep.
const castAlpha float32 = 0.33

// Hit is a single query result.
type Hit struct {
	Point    math.Vec3
	Normal   math.Vec3
	Distance float32
}

// DrawRaycast queues an arrow from origin along direction for maxDistance.
func (v *Visualizer) DrawRaycast(origin, direction math.Vec3, maxDistance float32, color Color, durationMs float32) {
	end := origin.Add(direction.Normalize().Scale(maxDistance))
	v.DrawArrow(origin, end, color, durationMs, false)
}

// DrawSphereCast queues the starting sphere of a sphere sweep and a faded capsule
// covering the swept volume.
func (v *Visualizer) DrawSphereCast(origin math.Vec3, radius float32, direction math.Vec3, maxDistance float32, color Color, durationMs float32) {
	end := origin.Add(direction.Normalize().Scale(maxDistance))

	v.DrawSphere(origin, radius, color, durationMs)
	v.DrawCapsule(origin, end, radius, color.ScaleAlpha(castAlpha), durationMs, false)
}

// DrawCapsuleCast queues the starting capsule, a faded capsule at the end of the
// sweep, faded edges joining the two and an arrow from the capsule midpoint.
func (v *Visualizer) DrawCapsuleCast(p1, p2 math.Vec3, radius float32, direction math.Vec3, maxDistance float32, color Color, durationMs float32) {
	offset := direction.Normalize().Scale(maxDistance)
	faded := color.ScaleAlpha(castAlpha)
	end1, end2 := p1.Add(offset), p2.Add(offset)

	v.DrawCapsule(p1, p2, radius, color, durationMs, true)
	v.DrawCapsule(end1, end2, radius, faded, durationMs, true)
	v.DrawLine(p1, end1, faded, durationMs)
	v.DrawLine(p2, end2, faded, durationMs)

	mid := p1.Lerp(p2, 0.5)
	v.DrawArrow(mid, mid.Add(offset), color, durationMs, false)
}

// DrawBoxCast queues the starting box, a faded box at the end of the sweep and
// faded edges joining their corners.
func (v *Visualizer) DrawBoxCast(center, halfExtents, direction math.Vec3, orientation math.Quat, maxDistance float32, color Color, durationMs float32) {
	offset := direction.Normalize().Scale(maxDistance)
	faded := color.ScaleAlpha(castAlpha)

	from := v.DrawBox(center, halfExtents, orientation, color, durationMs)
	to := v.DrawBox(center.Add(offset), halfExtents, orientation, faded, durationMs)

	a, b := from.Corners(), to.Corners()
	for i := range a {
		v.DrawLine(a[i], b[i], faded, durationMs)
	}
}

// DrawRaycastHit queues a small sphere at the hit point and an arrow along its normal.
func (v *Visualizer) DrawRaycastHit(hit Hit, color Color, durationMs float32) {
	v.DrawSphere(hit.Point, v.hitScale*0.1, color, durationMs)
	v.DrawArrow(hit.Point, hit.Point.Add(hit.Normal.Scale(v.hitScale)), color, durationMs, false)
}

// DrawRaycastHits queues a marker for every hit.
func (v *Visualizer) DrawRaycastHits(hits []Hit, color Color, durationMs float32) {
	for _, h := range hits {
		v.DrawRaycastHit(h, color, durationMs)
	}
}
