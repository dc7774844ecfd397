package query

import (
	"github.com/Faultbox/debugdraw/internal/debugdraw"
	"github.com/Faultbox/debugdraw/pkg/math"
)

// Settings controls how traced queries are drawn. Durations are in milliseconds.
type Settings struct {
	RayColor     debugdraw.Color
	SphereColor  debugdraw.Color
	CapsuleColor debugdraw.Color
	BoxColor     debugdraw.Color
	HitColor     debugdraw.Color

	CastDuration float32
	HitDuration  float32
}

// DefaultSettings draws casts in green and hits in red for a single frame.
func DefaultSettings() Settings {
	return Settings{
		RayColor:     debugdraw.Green,
		SphereColor:  debugdraw.Green,
		CapsuleColor: debugdraw.Green,
		BoxColor:     debugdraw.Green,
		HitColor:     debugdraw.Red,
	}
}

// Tracer forwards queries to a Provider and draws each cast and its hits.
// Results are returned unchanged.
type Tracer struct {
	Provider   Provider
	Visualizer *debugdraw.Visualizer
	Settings   Settings
}

// NewTracer creates a Tracer with DefaultSettings.
func NewTracer(p Provider, v *debugdraw.Visualizer) *Tracer {
	return &Tracer{Provider: p, Visualizer: v, Settings: DefaultSettings()}
}

func (t *Tracer) drawHit(hit debugdraw.Hit, ok bool) {
	if ok {
		t.Visualizer.DrawRaycastHit(hit, t.Settings.HitColor, t.Settings.HitDuration)
	}
}

// Raycast casts a ray and draws it along with the hit.
func (t *Tracer) Raycast(origin, direction math.Vec3, maxDistance float32, mask LayerMask) (debugdraw.Hit, bool) {
	hit, ok := t.Provider.Raycast(origin, direction, maxDistance, mask)
	t.Visualizer.DrawRaycast(origin, direction, maxDistance, t.Settings.RayColor, t.Settings.CastDuration)
	t.drawHit(hit, ok)
	return hit, ok
}

// RaycastAll casts a ray and draws it along with every hit.
func (t *Tracer) RaycastAll(origin, direction math.Vec3, maxDistance float32, mask LayerMask) []debugdraw.Hit {
	hits := t.Provider.RaycastAll(origin, direction, maxDistance, mask)
	t.Visualizer.DrawRaycast(origin, direction, maxDistance, t.Settings.RayColor, t.Settings.CastDuration)
	t.Visualizer.DrawRaycastHits(hits, t.Settings.HitColor, t.Settings.HitDuration)
	return hits
}

// SphereCast sweeps a sphere and draws the swept volume along with the hit.
func (t *Tracer) SphereCast(origin math.Vec3, radius float32, direction math.Vec3, maxDistance float32, mask LayerMask) (debugdraw.Hit, bool) {
	hit, ok := t.Provider.SphereCast(origin, radius, direction, maxDistance, mask)
	t.Visualizer.DrawSphereCast(origin, radius, direction, maxDistance, t.Settings.SphereColor, t.Settings.CastDuration)
	t.drawHit(hit, ok)
	return hit, ok
}

// SphereCastAll sweeps a sphere and draws the swept volume along with every hit.
func (t *Tracer) SphereCastAll(origin math.Vec3, radius float32, direction math.Vec3, maxDistance float32, mask LayerMask) []debugdraw.Hit {
	hits := t.Provider.SphereCastAll(origin, radius, direction, maxDistance, mask)
	t.Visualizer.DrawSphereCast(origin, radius, direction, maxDistance, t.Settings.SphereColor, t.Settings.CastDuration)
	t.Visualizer.DrawRaycastHits(hits, t.Settings.HitColor, t.Settings.HitDuration)
	return hits
}

// CapsuleCast sweeps a capsule and draws the swept volume along with the hit.
func (t *Tracer) CapsuleCast(p1, p2 math.Vec3, radius float32, direction math.Vec3, maxDistance float32, mask LayerMask) (debugdraw.Hit, bool) {
	hit, ok := t.Provider.CapsuleCast(p1, p2, radius, direction, maxDistance, mask)
	t.Visualizer.DrawCapsuleCast(p1, p2, radius, direction, maxDistance, t.Settings.CapsuleColor, t.Settings.CastDuration)
	t.drawHit(hit, ok)
	return hit, ok
}

// BoxCast sweeps a box and draws the swept volume along with the hit.
func (t *Tracer) BoxCast(center, halfExtents, direction math.Vec3, orientation math.Quat, maxDistance float32, mask LayerMask) (debugdraw.Hit, bool) {
	hit, ok := t.Provider.BoxCast(center, halfExtents, direction, orientation, maxDistance, mask)
	t.Visualizer.DrawBoxCast(center, halfExtents, direction, orientation, maxDistance, t.Settings.BoxColor, t.Settings.CastDuration)
	t.drawHit(hit, ok)
	return hit, ok
}
