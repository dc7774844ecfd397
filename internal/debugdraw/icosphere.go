package debugdraw

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/debugdraw/pkg/math"
)

//go:generate go run ../../cmd/icogen -o icosphere_table.go

// Triangle indexes three vertices of a mesh.
type Triangle [3]int

// Icosahedron returns the 12 unit-length vertices and 20 faces of a regular icosahedron.
func Icosahedron() ([]math.Vec3, []Triangle) {
	t := (1 + math32.Sqrt(5)) / 2

	vertices := []math.Vec3{
		{X: -1, Y: t, Z: 0}, {X: 1, Y: t, Z: 0}, {X: -1, Y: -t, Z: 0}, {X: 1, Y: -t, Z: 0},
		{X: 0, Y: -1, Z: t}, {X: 0, Y: 1, Z: t}, {X: 0, Y: -1, Z: -t}, {X: 0, Y: 1, Z: -t},
		{X: t, Y: 0, Z: -1}, {X: t, Y: 0, Z: 1}, {X: -t, Y: 0, Z: -1}, {X: -t, Y: 0, Z: 1},
	}
	for i := range vertices {
		vertices[i] = vertices[i].Normalize()
	}

	faces := []Triangle{
		// around vertex 0
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		// around vertex 3
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return vertices, faces
}

// edgeKey identifies an undirected vertex pair.
type edgeKey struct{ lo, hi int }

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// SubdivideIcosphere splits every face into four, levels times. Edge midpoints
// are projected onto the unit sphere and shared between neighbouring faces.
// The input slices are not modified.
func SubdivideIcosphere(vertices []math.Vec3, faces []Triangle, levels int) ([]math.Vec3, []Triangle) {
	verts := append([]math.Vec3(nil), vertices...)
	midpoints := make(map[edgeKey]int)

	midpoint := func(a, b int) int {
		key := makeEdgeKey(a, b)
		if i, ok := midpoints[key]; ok {
			return i
		}
		verts = append(verts, verts[a].Add(verts[b]).Scale(0.5).Normalize())
		midpoints[key] = len(verts) - 1
		return len(verts) - 1
	}

	for l := 0; l < levels; l++ {
		next := make([]Triangle, 0, len(faces)*4)
		for _, f := range faces {
			a := midpoint(f[0], f[1])
			b := midpoint(f[1], f[2])
			c := midpoint(f[2], f[0])
			next = append(next,
				Triangle{f[0], a, c},
				Triangle{f[1], b, a},
				Triangle{f[2], c, b},
				Triangle{a, b, c},
			)
		}
		faces = next
	}
	return verts, faces
}

// IcosphereEdges collects every triangle edge once, in first-seen order.
func IcosphereEdges(vertices []math.Vec3, faces []Triangle) []Segment {
	seen := make(map[edgeKey]struct{}, len(faces)*3/2)
	edges := make([]Segment, 0, len(faces)*3/2)

	for _, f := range faces {
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			key := makeEdgeKey(a, b)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, Segment{From: vertices[a], To: vertices[b]})
		}
	}
	return edges
}

// GenerateIcosphereEdges builds the deduplicated edge list of a unit icosphere
// subdivided the given number of times.
func GenerateIcosphereEdges(levels int) []Segment {
	v, f := Icosahedron()
	v, f = SubdivideIcosphere(v, f, levels)
	return IcosphereEdges(v, f)
}

// UnitSphereEdges returns the precomputed one-level icosphere. Callers must not modify it.
func UnitSphereEdges() []Segment {
	return unitSphereEdges[:]
}
