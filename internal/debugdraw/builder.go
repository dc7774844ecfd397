package debugdraw

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/debugdraw/pkg/math"
)

const (
	// DefaultCircleVertices is used when a circle is requested with no vertex count.
	DefaultCircleVertices = 12

	// DefaultArrowheadSize is the arrowhead length of DrawArrowhead.
	DefaultArrowheadSize float32 = 0.25

	arrowheadAngle      float32 = 20
	arrowFullSizeLength float32 = 0.55
)

// CircleSegments tessellates a circle of radius around center in the local XY plane,
// rotated by orientation. A sweep of at most 0 or at least 360 degrees gives a closed
// loop of vertices segments. A partial sweep gives vertices arc chords followed by one
// chord closing the arc back to its start.
func CircleSegments(center math.Vec3, radius float32, orientation math.Quat, sweepDeg float32, vertices int) []Segment {
	if vertices <= 0 {
		vertices = DefaultCircleVertices
	}
	full := sweepDeg <= 0 || sweepDeg >= 360
	if full {
		sweepDeg = 360
	}

	step := math.DegToRad(sweepDeg) / float32(vertices)
	point := func(i int) math.Vec3 {
		if full && i == vertices {
			i = 0
		}
		sin, cos := math32.Sincos(step * float32(i))
		p := center.Add(math.Vec3{X: cos * radius, Y: sin * radius})
		return p.RotateAroundPivot(center, orientation)
	}

	segments := make([]Segment, 0, vertices+1)
	first := point(0)
	prev := first
	for i := 1; i <= vertices; i++ {
		next := point(i)
		segments = append(segments, Segment{From: prev, To: next})
		prev = next
	}
	if !full {
		segments = append(segments, Segment{From: prev, To: first})
	}
	return segments
}

// ArrowheadSegments returns the two barbs of an arrowhead at position pointing along
// direction. The barbs point back at 20 degrees either side of the reversed direction.
func ArrowheadSegments(position, direction math.Vec3, size float32) []Segment {
	look := math.QuatLookRotation(direction, math.Vec3Up)
	right := look.Mul(math.QuatFromEuler(0, 180-arrowheadAngle, 0)).Rotate(math.Vec3Forward)
	left := look.Mul(math.QuatFromEuler(0, 180+arrowheadAngle, 0)).Rotate(math.Vec3Forward)

	return []Segment{
		{From: position, To: position.Add(right.Scale(size))},
		{From: position, To: position.Add(left.Scale(size))},
	}
}

// ArrowSize is the arrowhead length for an arrow spanning distance. Short arrows
// get proportionally smaller heads.
func ArrowSize(distance float32) float32 {
	return DefaultArrowheadSize * math32.Min(1, distance/arrowFullSizeLength)
}

// ArrowSegments returns the shaft from from to to and a head at to, plus a head at
// from when bothEnds is set.
func ArrowSegments(from, to math.Vec3, bothEnds bool) []Segment {
	size := ArrowSize(to.Sub(from).Length())

	segments := make([]Segment, 0, 5)
	segments = append(segments, Segment{From: from, To: to})
	segments = append(segments, ArrowheadSegments(to, to.Sub(from), size)...)
	if bothEnds {
		segments = append(segments, ArrowheadSegments(from, from.Sub(to), size)...)
	}
	return segments
}

// CapsuleParts returns the primitives of a capsule between p1 and p2: a hemisphere
// capping each end and four lines along its sides. The cap at p1 is omitted when
// capPoint1 is false.
func CapsuleParts(p1, p2 math.Vec3, radius float32, color Color, capPoint1 bool) []Primitive {
	axis := p2.Sub(p1)
	orientation := math.QuatLookRotation(axis, math.Vec3Up)

	parts := make([]Primitive, 0, 6)
	if capPoint1 {
		parts = append(parts, Sphere{Origin: p1, Radius: radius, Color: color, Up: axis.Neg(), Hemisphere: true})
	}
	parts = append(parts, Sphere{Origin: p2, Radius: radius, Color: color, Up: axis, Hemisphere: true})

	for deg := 0; deg < 360; deg += 90 {
		sin, cos := math32.Sincos(math.DegToRad(float32(deg)))
		offset := orientation.Rotate(math.Vec3{X: cos * radius, Y: sin * radius})
		parts = append(parts, Line{From: p1.Add(offset), To: p2.Add(offset), Color: color})
	}
	return parts
}
