package debugdraw

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/debugdraw/pkg/math"
)

// DefaultIconPixelSize is the on-screen height of an icon in pixels.
const DefaultIconPixelSize float32 = 80

// View describes the camera icons are billboarded towards.
type View struct {
	Eye            math.Vec3
	Forward        math.Vec3
	FovY           float32 // radians
	ViewportHeight float32 // pixels
}

// HandleSize returns the world-space size at which something centered at center
// spans pixelSize pixels of the viewport.
func HandleSize(center math.Vec3, view View, pixelSize float32) float32 {
	if view.ViewportHeight <= 0 {
		return 1
	}
	distance := center.Distance(view.Eye)
	return distance * 2 * math32.Tan(view.FovY/2) * pixelSize / view.ViewportHeight
}

// BillboardTransform places a unit quad at center facing along the view direction
// and scaled uniformly by size.
func BillboardTransform(center math.Vec3, view View, size float32) math.Mat4 {
	rot := math.QuatLookRotation(view.Forward, math.Vec3Up)
	return math.TRS(center, rot, math.Vec3{X: size, Y: size, Z: size})
}
