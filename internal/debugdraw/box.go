package debugdraw

import (
	"github.com/Faultbox/debugdraw/pkg/math"
)

// Box is an oriented box stored as its origin and the four front-face corners
// relative to it. An axis-aligned box centered on its local origin is point
// symmetric, so each back corner is the negation of the diagonally opposite
// front corner and is never stored or rotated on its own.
type Box struct {
	Origin math.Vec3
	Color  Color

	LocalFrontTopLeft     math.Vec3
	LocalFrontTopRight    math.Vec3
	LocalFrontBottomLeft  math.Vec3
	LocalFrontBottomRight math.Vec3
}

// NewBox builds a box around origin with the given half extents, rotated by orientation.
func NewBox(origin, halfExtents math.Vec3, orientation math.Quat) Box {
	hx, hy, hz := halfExtents.X, halfExtents.Y, halfExtents.Z
	b := Box{
		Origin:                origin,
		LocalFrontTopLeft:     math.Vec3{X: -hx, Y: hy, Z: -hz},
		LocalFrontTopRight:    math.Vec3{X: hx, Y: hy, Z: -hz},
		LocalFrontBottomLeft:  math.Vec3{X: -hx, Y: -hy, Z: -hz},
		LocalFrontBottomRight: math.Vec3{X: hx, Y: -hy, Z: -hz},
	}
	return b.Rotate(orientation)
}

// Kind implements Primitive.
func (Box) Kind() Kind { return KindBox }

// Rotate rotates the front corners about the local origin.
func (b Box) Rotate(q math.Quat) Box {
	b.LocalFrontTopLeft = q.Rotate(b.LocalFrontTopLeft)
	b.LocalFrontTopRight = q.Rotate(b.LocalFrontTopRight)
	b.LocalFrontBottomLeft = q.Rotate(b.LocalFrontBottomLeft)
	b.LocalFrontBottomRight = q.Rotate(b.LocalFrontBottomRight)
	return b
}

// Translate returns the box moved by offset.
func (b Box) Translate(offset math.Vec3) Box {
	b.Origin = b.Origin.Add(offset)
	return b
}

// LocalBackTopLeft is the back top-left corner relative to Origin, the mirror of LocalFrontBottomRight.
func (b Box) LocalBackTopLeft() math.Vec3 { return b.LocalFrontBottomRight.Neg() }

// LocalBackTopRight is the back top-right corner relative to Origin, the mirror of LocalFrontBottomLeft.
func (b Box) LocalBackTopRight() math.Vec3 { return b.LocalFrontBottomLeft.Neg() }

// LocalBackBottomLeft is the back bottom-left corner relative to Origin, the mirror of LocalFrontTopRight.
func (b Box) LocalBackBottomLeft() math.Vec3 { return b.LocalFrontTopRight.Neg() }

// LocalBackBottomRight is the back bottom-right corner relative to Origin, the mirror of LocalFrontTopLeft.
func (b Box) LocalBackBottomRight() math.Vec3 { return b.LocalFrontTopLeft.Neg() }

// FrontTopLeft returns the front top-left corner in world space.
func (b Box) FrontTopLeft() math.Vec3 { return b.Origin.Add(b.LocalFrontTopLeft) }

// FrontTopRight returns the front top-right corner in world space.
func (b Box) FrontTopRight() math.Vec3 { return b.Origin.Add(b.LocalFrontTopRight) }

// FrontBottomLeft returns the front bottom-left corner in world space.
func (b Box) FrontBottomLeft() math.Vec3 { return b.Origin.Add(b.LocalFrontBottomLeft) }

// FrontBottomRight returns the front bottom-right corner in world space.
func (b Box) FrontBottomRight() math.Vec3 { return b.Origin.Add(b.LocalFrontBottomRight) }

// BackTopLeft returns the back top-left corner in world space.
func (b Box) BackTopLeft() math.Vec3 { return b.Origin.Add(b.LocalBackTopLeft()) }

// BackTopRight returns the back top-right corner in world space.
func (b Box) BackTopRight() math.Vec3 { return b.Origin.Add(b.LocalBackTopRight()) }

// BackBottomLeft returns the back bottom-left corner in world space.
func (b Box) BackBottomLeft() math.Vec3 { return b.Origin.Add(b.LocalBackBottomLeft()) }

// BackBottomRight returns the back bottom-right corner in world space.
func (b Box) BackBottomRight() math.Vec3 { return b.Origin.Add(b.LocalBackBottomRight()) }

// Corners returns the eight world-space corners: front TL, TR, BR, BL then back TL, TR, BR, BL.
func (b Box) Corners() [8]math.Vec3 {
	return [8]math.Vec3{
		b.FrontTopLeft(), b.FrontTopRight(), b.FrontBottomRight(), b.FrontBottomLeft(),
		b.BackTopLeft(), b.BackTopRight(), b.BackBottomRight(), b.BackBottomLeft(),
	}
}

// Edges returns the 12 box edges: front ring, back ring, then front-to-back.
func (b Box) Edges() []Segment {
	c := b.Corners()
	edges := make([]Segment, 0, 12)
	for i := 0; i < 4; i++ {
		edges = append(edges, Segment{From: c[i], To: c[(i+1)%4]})
	}
	for i := 0; i < 4; i++ {
		edges = append(edges, Segment{From: c[4+i], To: c[4+(i+1)%4]})
	}
	for i := 0; i < 4; i++ {
		edges = append(edges, Segment{From: c[i], To: c[4+i]})
	}
	return edges
}
