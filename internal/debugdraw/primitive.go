// Package debugdraw builds transient wireframe geometry and icons for visualizing
// spatial queries, and keeps each queued primitive alive for a bounded time.
package debugdraw

import (
	"github.com/Faultbox/debugdraw/pkg/math"
)

// Kind tags the concrete type of a Primitive.
type Kind uint8

const (
	KindLine Kind = iota
	KindBox
	KindSphere
	KindIcon
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	case KindIcon:
		return "icon"
	default:
		return "unknown"
	}
}

// Primitive is one of Line, Box, Sphere or Icon.
type Primitive interface {
	Kind() Kind
}

// Segment is a single line segment in world space.
type Segment struct {
	From, To math.Vec3
}

// Line is a colored segment.
type Line struct {
	From, To math.Vec3
	Color    Color
}

// Kind implements Primitive.
func (Line) Kind() Kind { return KindLine }

// Segments returns the line as a single segment.
func (l Line) Segments() []Segment {
	return []Segment{{From: l.From, To: l.To}}
}

// Icon is a camera-facing billboard anchored at Center.
type Icon struct {
	Center math.Vec3
	Handle *IconHandle
}

// Kind implements Primitive.
func (Icon) Kind() Kind { return KindIcon }
