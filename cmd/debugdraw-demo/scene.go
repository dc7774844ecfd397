package main

import (
	"github.com/Faultbox/debugdraw/internal/debugdraw"
	"github.com/Faultbox/debugdraw/internal/engine/picking"
	"github.com/Faultbox/debugdraw/pkg/math"
)

var (
	left    = math.Vec3Right.Neg()
	back    = math.Vec3Forward.Neg()
	down    = math.Vec3Up.Neg()
	groundY = float32(-1.5)
)

// drawScene queues one frame of the showcase: one of every primitive and cast.
func drawScene(v *debugdraw.Visualizer) {
	right := math.Vec3Right
	up := math.Vec3Up
	fwd := math.Vec3Forward

	v.DrawIcon(right.Scale(5), "locator.png", 0)

	v.DrawLine(math.Vec3Zero, fwd, debugdraw.Red, 0)
	v.DrawArrow(left, left.Scale(2), debugdraw.Blue, 0, false)
	v.DrawArrow(right, right.Scale(2), debugdraw.Green, 0, true)

	// Full circle facing +Z and a half circle at the origin.
	v.DrawCircle(up, 0.25, math.QuatIdentity(), debugdraw.Red, 360, 0, 0)
	v.DrawCircle(math.Vec3Zero, 0.25, math.QuatIdentity(), debugdraw.Blue, 180, 0, 0)

	v.DrawBox(up.Scale(2), math.Vec3One.Scale(0.5), math.QuatFromEuler(45, 45, 45), debugdraw.Cyan, 0)
	v.DrawSphere(down, 0.5, debugdraw.Blue, 0)
	v.DrawHemisphereOriented(left.Scale(3), 0.5, math.QuatLookRotation(right, up), debugdraw.Yellow, 0)
	v.DrawCapsule(right.Scale(3), right.Scale(3).Add(up), 0.5, debugdraw.Magenta, 0, true)

	v.DrawSphereCast(back.Scale(2), 0.5, back.Add(left), 2, debugdraw.Cyan, 0)
	v.DrawCapsuleCast(fwd.Scale(3), fwd.Scale(3).Add(right), 0.5, right, 3, debugdraw.Red, 0)
	v.DrawBoxCast(back.Add(right).Scale(2), math.Vec3One.Scale(0.25), back.Add(right),
		math.QuatFromEuler(0, 45, 45), 2, debugdraw.Yellow, 0)
}

// newPickWorld returns the colliders clicks are traced against: the ground
// slab and a crate under the oriented box.
func newPickWorld() *picking.World {
	return picking.NewWorld(
		picking.Collider{
			Name: "ground",
			Box:  picking.NewAABB(math.V3(-10, groundY-0.1, -10), math.V3(10, groundY, 10)),
		},
		picking.Collider{
			Name:  "crate",
			Box:   picking.AABBFromCenter(math.V3(-5, groundY+0.5, 3), math.V3(0.5, 0.5, 0.5)),
			Layer: 1,
		},
	)
}

// drawColliders outlines the pick world.
func drawColliders(v *debugdraw.Visualizer, w *picking.World) {
	for _, c := range w.Colliders() {
		v.DrawBox(c.Box.Center(), c.Box.HalfExtents(), math.QuatIdentity(), debugdraw.White.WithAlpha(0.25), 0)
	}
}
