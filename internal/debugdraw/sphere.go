package debugdraw

import (
	"github.com/Faultbox/debugdraw/pkg/math"
)

// hemisphereEpsilon is how far below the cut plane a vertex may sit and still count as on it.
const hemisphereEpsilon = 1e-6

// Sphere is a wireframe sphere, or the half of one facing Up when Hemisphere is set.
type Sphere struct {
	Origin     math.Vec3
	Radius     float32
	Color      Color
	Up         math.Vec3
	Hemisphere bool
}

// Kind implements Primitive.
func (Sphere) Kind() Kind { return KindSphere }

// Segments tessellates the sphere into world-space segments.
func (s Sphere) Segments() []Segment {
	return SphereSegments(s.Origin, s.Radius, s.Up, s.Hemisphere)
}

// SphereSegments returns the unit icosphere edges scaled by radius, with local +Z
// turned towards up and moved to origin. For a hemisphere, edges entirely below the
// local XY plane are dropped and edges crossing it are clamped onto it.
func SphereSegments(origin math.Vec3, radius float32, up math.Vec3, hemisphere bool) []Segment {
	rot := math.QuatLookRotation(up, math.Vec3Up)

	edges := UnitSphereEdges()
	out := make([]Segment, 0, len(edges))
	for _, e := range edges {
		from, to := e.From, e.To
		if hemisphere {
			var keep bool
			from, to, keep = clipToUpperHalf(from, to)
			if !keep {
				continue
			}
		}
		out = append(out, Segment{
			From: origin.Add(rot.Rotate(from.Scale(radius))),
			To:   origin.Add(rot.Rotate(to.Scale(radius))),
		})
	}
	return out
}

func clipToUpperHalf(a, b math.Vec3) (math.Vec3, math.Vec3, bool) {
	aBelow := a.Z < -hemisphereEpsilon
	bBelow := b.Z < -hemisphereEpsilon
	switch {
	case aBelow && bBelow:
		return a, b, false
	case aBelow:
		a.Z = 0
	case bBelow:
		b.Z = 0
	}
	return a, b, true
}
