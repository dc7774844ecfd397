// Package query wraps spatial queries so every call also visualizes the cast
// volume and its hits.
package query

import (
	"github.com/Faultbox/debugdraw/internal/debugdraw"
	"github.com/Faultbox/debugdraw/pkg/math"
)

// LayerMask selects collider layers by bit.
type LayerMask int32

// AllLayers matches every layer.
const AllLayers LayerMask = -1

// Has reports whether layer is selected.
func (m LayerMask) Has(layer int) bool {
	if layer < 0 || layer > 31 {
		return false
	}
	return m&(1<<layer) != 0
}

// Provider answers ray and sweep queries against a world.
type Provider interface {
	Raycast(origin, direction math.Vec3, maxDistance float32, mask LayerMask) (debugdraw.Hit, bool)
	RaycastAll(origin, direction math.Vec3, maxDistance float32, mask LayerMask) []debugdraw.Hit
	SphereCast(origin math.Vec3, radius float32, direction math.Vec3, maxDistance float32, mask LayerMask) (debugdraw.Hit, bool)
	SphereCastAll(origin math.Vec3, radius float32, direction math.Vec3, maxDistance float32, mask LayerMask) []debugdraw.Hit
	CapsuleCast(p1, p2 math.Vec3, radius float32, direction math.Vec3, maxDistance float32, mask LayerMask) (debugdraw.Hit, bool)
	BoxCast(center, halfExtents, direction math.Vec3, orientation math.Quat, maxDistance float32, mask LayerMask) (debugdraw.Hit, bool)
}
