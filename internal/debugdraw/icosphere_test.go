package debugdraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/debugdraw/pkg/math"
)

func TestIcosahedron(t *testing.T) {
	vertices, faces := Icosahedron()
	require.Len(t, vertices, 12)
	require.Len(t, faces, 20)
	for _, v := range vertices {
		assert.InDelta(t, 1, v.Length(), 1e-6)
	}
	assert.Len(t, IcosphereEdges(vertices, faces), 30)
}

func TestSubdivideIcosphere(t *testing.T) {
	vertices, faces := Icosahedron()
	v1, f1 := SubdivideIcosphere(vertices, faces, 1)
	assert.Len(t, v1, 42)
	assert.Len(t, f1, 80)
	assert.Len(t, vertices, 12, "input must not be modified")

	v2, f2 := SubdivideIcosphere(vertices, faces, 2)
	assert.Len(t, v2, 162)
	assert.Len(t, f2, 320)

	for _, v := range v2 {
		assert.InDelta(t, 1, v.Length(), 1e-6)
	}
}

func TestIcosphereEdgesDeduplicated(t *testing.T) {
	vertices := []math.Vec3{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	faces := []Triangle{{0, 1, 2}, {2, 1, 3}}

	edges := IcosphereEdges(vertices, faces)
	require.Len(t, edges, 5)
	assert.Equal(t, Segment{From: vertices[0], To: vertices[1]}, edges[0])
	assert.Equal(t, Segment{From: vertices[1], To: vertices[2]}, edges[1])
	assert.Equal(t, Segment{From: vertices[2], To: vertices[0]}, edges[2])
	assert.Equal(t, Segment{From: vertices[1], To: vertices[3]}, edges[3])
	assert.Equal(t, Segment{From: vertices[3], To: vertices[2]}, edges[4])
}

func TestUnitSphereTableMatchesGeneration(t *testing.T) {
	generated := GenerateIcosphereEdges(1)
	table := UnitSphereEdges()
	require.Len(t, table, 120)
	require.Len(t, generated, len(table))

	for i := range table {
		assert.InDelta(t, generated[i].From.X, table[i].From.X, 1e-6, "edge %d", i)
		assert.InDelta(t, generated[i].From.Y, table[i].From.Y, 1e-6, "edge %d", i)
		assert.InDelta(t, generated[i].From.Z, table[i].From.Z, 1e-6, "edge %d", i)
		assert.InDelta(t, generated[i].To.X, table[i].To.X, 1e-6, "edge %d", i)
		assert.InDelta(t, generated[i].To.Y, table[i].To.Y, 1e-6, "edge %d", i)
		assert.InDelta(t, generated[i].To.Z, table[i].To.Z, 1e-6, "edge %d", i)
	}
}
