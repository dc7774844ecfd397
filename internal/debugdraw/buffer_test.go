package debugdraw

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/debugdraw/pkg/math"
)

func line(x float32) Line {
	return Line{From: math.V3(x, 0, 0), To: math.V3(x, 1, 0), Color: White}
}

func collect(b *DrawBuffer) []Primitive {
	var out []Primitive
	b.Flush(func(p Primitive) { out = append(out, p) })
	return out
}

func TestDrawBufferOneShotDrawnOnce(t *testing.T) {
	clock := newFakeClock()
	b := NewDrawBuffer(clock.Now)

	b.Enqueue(line(1), 0)
	assert.Equal(t, 1, b.OneShotLen())
	assert.Equal(t, 0, b.DurableLen())

	assert.Equal(t, []Primitive{line(1)}, collect(b))
	assert.Empty(t, collect(b), "second flush in the same frame")
	assert.Equal(t, 0, b.Len())
}

func TestDrawBufferApproximateZeroIsOneShot(t *testing.T) {
	b := NewDrawBuffer(newFakeClock().Now)
	b.Enqueue(line(1), 1e-7)
	b.Enqueue(line(2), -1e-7)
	assert.Equal(t, 2, b.OneShotLen())
}

func TestDrawBufferDurableLifetime(t *testing.T) {
	clock := newFakeClock()
	b := NewDrawBuffer(clock.Now)

	b.Enqueue(line(1), 100)
	require.Equal(t, 1, b.DurableLen())

	assert.Len(t, collect(b), 1)
	assert.Len(t, collect(b), 1, "durable entries survive repeated flushes")

	clock.Advance(99)
	assert.Len(t, collect(b), 1)

	clock.Advance(1)
	assert.Empty(t, collect(b), "expired exactly at its TTL")
	assert.Equal(t, 0, b.DurableLen())
}

func TestDrawBufferNegativeDurationNeverDrawn(t *testing.T) {
	b := NewDrawBuffer(newFakeClock().Now)
	b.Enqueue(line(1), -50)
	assert.Equal(t, 1, b.DurableLen())
	assert.Empty(t, collect(b))
	assert.Equal(t, 0, b.Len())
}

func TestDrawBufferHugeDurationsSaturate(t *testing.T) {
	for _, d := range []float32{1e13, math32.MaxFloat32, math32.Inf(1)} {
		clock := newFakeClock()
		b := NewDrawBuffer(clock.Now)
		b.Enqueue(line(1), d)

		require.Equal(t, 1, b.DurableLen(), "duration %g", d)
		assert.Len(t, collect(b), 1, "duration %g", d)

		clock.Advance(1_000_000_000)
		assert.Len(t, collect(b), 1, "duration %g still alive after ~11 days", d)
		assert.Equal(t, 1, b.DurableLen())
	}
}

func TestDrawBufferHugeNegativeDurationExpired(t *testing.T) {
	b := NewDrawBuffer(newFakeClock().Now)
	b.Enqueue(line(1), math32.Inf(-1))
	assert.Empty(t, collect(b))
	assert.Equal(t, 0, b.Len())
}

func TestDrawBufferNaNDurationIsOneShot(t *testing.T) {
	b := NewDrawBuffer(newFakeClock().Now)
	b.Enqueue(line(1), math32.NaN())
	assert.Equal(t, 1, b.OneShotLen())
	assert.Len(t, collect(b), 1)
	assert.Equal(t, 0, b.Len())
}

func TestDrawBufferOrder(t *testing.T) {
	clock := newFakeClock()
	b := NewDrawBuffer(clock.Now)

	b.Enqueue(line(1), 500)
	b.Enqueue(line(2), 0)
	b.Enqueue(line(3), 200)
	b.Enqueue(line(4), 0)

	assert.Equal(t, []Primitive{line(2), line(4), line(1), line(3)}, collect(b))

	clock.Advance(300)
	assert.Equal(t, []Primitive{line(1)}, collect(b))
}

func TestDrawBufferEnqueueDuringFlushIsDeferred(t *testing.T) {
	clock := newFakeClock()
	b := NewDrawBuffer(clock.Now)
	b.Enqueue(line(1), 0)
	b.Enqueue(line(2), 1000)

	var drawn int
	b.Flush(func(p Primitive) {
		drawn++
		b.Enqueue(line(10), 0)
		b.Enqueue(line(20), 1000)
	})
	assert.Equal(t, 2, drawn)
	assert.Equal(t, 2, b.OneShotLen())
	assert.Equal(t, 3, b.DurableLen())

	assert.Equal(t, []Primitive{line(10), line(10), line(2), line(20), line(20)}, collect(b))
}

func TestDrawBufferClear(t *testing.T) {
	b := NewDrawBuffer(nil)
	b.Enqueue(line(1), 0)
	b.Enqueue(line(2), 1000)
	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, collect(b))
}

func TestDrawBufferRoutesEveryKindByDuration(t *testing.T) {
	b := NewDrawBuffer(newFakeClock().Now)
	box := NewBox(math.Vec3Zero, math.Vec3One, math.QuatIdentity())

	b.Enqueue(box, 0)
	b.Enqueue(box, 500)
	b.Enqueue(Sphere{Radius: 1}, 0)
	b.Enqueue(Icon{}, 500)

	assert.Equal(t, 2, b.OneShotLen())
	assert.Equal(t, 2, b.DurableLen())
}
