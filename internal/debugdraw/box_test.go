package debugdraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/debugdraw/pkg/math"
)

func TestNewBoxUnitCorners(t *testing.T) {
	b := NewBox(math.Vec3Zero, math.Vec3One, math.QuatIdentity())

	assert.Equal(t, math.V3(-1, 1, -1), b.FrontTopLeft())
	assert.Equal(t, math.V3(1, 1, -1), b.FrontTopRight())
	assert.Equal(t, math.V3(-1, -1, -1), b.FrontBottomLeft())
	assert.Equal(t, math.V3(1, -1, -1), b.FrontBottomRight())
	assert.Equal(t, math.V3(-1, 1, 1), b.BackTopLeft())
	assert.Equal(t, math.V3(1, 1, 1), b.BackTopRight())
	assert.Equal(t, math.V3(-1, -1, 1), b.BackBottomLeft())
	assert.Equal(t, math.V3(1, -1, 1), b.BackBottomRight())
}

func TestBoxBackCornersAreNegatedFront(t *testing.T) {
	q := math.QuatFromEuler(30, 45, 10)
	b := NewBox(math.V3(3, -2, 5), math.V3(0.5, 2, 1), q)

	assert.Equal(t, b.LocalFrontBottomRight.Neg(), b.LocalBackTopLeft())
	assert.Equal(t, b.LocalFrontBottomLeft.Neg(), b.LocalBackTopRight())
	assert.Equal(t, b.LocalFrontTopRight.Neg(), b.LocalBackBottomLeft())
	assert.Equal(t, b.LocalFrontTopLeft.Neg(), b.LocalBackBottomRight())

	// Every corner is mirrored through the origin by its opposite.
	c := b.Corners()
	opposite := [8]int{6, 7, 4, 5, 2, 3, 0, 1}
	for i, j := range opposite {
		mid := c[i].Add(c[j]).Scale(0.5)
		assertVec(t, b.Origin, mid, "corners %d and %d", i, j)
	}
}

func TestBoxEdges(t *testing.T) {
	half := math.V3(1, 2, 3)
	b := NewBox(math.V3(1, 1, 1), half, math.QuatFromEuler(0, 90, 0))

	edges := b.Edges()
	require.Len(t, edges, 12)

	want := []float32{2, 4, 2, 4, 2, 4, 2, 4, 6, 6, 6, 6}
	for i, e := range edges {
		assert.InDelta(t, want[i], e.From.Distance(e.To), 1e-4, "edge %d", i)
	}
}

func TestBoxTranslateAndRotate(t *testing.T) {
	b := NewBox(math.Vec3Zero, math.V3(1, 0, 0), math.QuatIdentity())
	b = b.Translate(math.V3(0, 5, 0))
	assert.Equal(t, math.V3(0, 5, 0), b.Origin)

	b = b.Rotate(math.QuatFromEuler(0, 0, 90))
	assertVec(t, math.V3(0, 4, 0), b.FrontTopLeft())
}
