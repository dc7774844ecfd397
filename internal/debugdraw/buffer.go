package debugdraw

import (
	"time"

	"github.com/chewxy/math32"
)

// durationEpsilon is the largest duration, in milliseconds, treated as zero.
const durationEpsilon = 1e-6

// maxDuration is the longest representable time.Duration.
const maxDuration = time.Duration(1<<63 - 1)

// Entry is a queued primitive and the instant after which it is no longer drawn.
// One-shot entries carry a zero TTL.
type Entry struct {
	Primitive Primitive
	TTL       time.Time
}

// DrawBuffer holds queued primitives in two buckets. One-shot primitives are
// drawn by exactly one flush. Durable primitives are drawn by every flush until
// their TTL passes.
//
// DrawBuffer is not safe for concurrent use.
type DrawBuffer struct {
	clock   func() time.Time
	oneShot []Entry
	durable []Entry

	// spare backs the next one-shot bucket so steady-state flushing does not allocate.
	spare []Entry
}

// NewDrawBuffer creates an empty buffer. A nil clock uses time.Now.
func NewDrawBuffer(clock func() time.Time) *DrawBuffer {
	if clock == nil {
		clock = time.Now
	}
	return &DrawBuffer{clock: clock}
}

// Enqueue queues p for durationMs milliseconds. A duration of zero (or NaN)
// makes p one-shot. A negative duration yields an entry that has already
// expired. Durations too long for time.Duration, +Inf included, saturate.
func (b *DrawBuffer) Enqueue(p Primitive, durationMs float32) {
	if p == nil {
		return
	}
	if math32.Abs(durationMs) <= durationEpsilon || math32.IsNaN(durationMs) {
		b.oneShot = append(b.oneShot, Entry{Primitive: p})
		return
	}
	ttl := b.clock().Add(toDuration(durationMs))
	b.durable = append(b.durable, Entry{Primitive: p, TTL: ttl})
}

// toDuration converts milliseconds to a time.Duration, clamping to its range.
func toDuration(ms float32) time.Duration {
	ns := float64(ms) * float64(time.Millisecond)
	switch {
	case ns >= float64(maxDuration):
		return maxDuration
	case ns <= -float64(maxDuration):
		return -maxDuration
	}
	return time.Duration(ns)
}

// Flush renders every one-shot entry and every durable entry whose TTL is after
// now, then drops the one-shot bucket and the expired durable entries. Entries
// enqueued by render are kept for the next flush.
func (b *DrawBuffer) Flush(render func(Primitive)) {
	now := b.clock()

	oneShot := b.oneShot
	b.oneShot = b.spare[:0]

	durable := b.durable
	b.durable = nil

	for _, e := range oneShot {
		render(e.Primitive)
	}

	alive := durable[:0]
	for _, e := range durable {
		if !e.TTL.After(now) {
			continue
		}
		render(e.Primitive)
		alive = append(alive, e)
	}
	clear(durable[len(alive):])

	// Durable entries queued during render go after the survivors.
	b.durable = append(alive, b.durable...)

	clear(oneShot)
	b.spare = oneShot[:0]
}

// Clear drops every queued entry.
func (b *DrawBuffer) Clear() {
	clear(b.oneShot)
	clear(b.durable)
	b.oneShot = b.oneShot[:0]
	b.durable = b.durable[:0]
}

// Len returns the number of queued entries.
func (b *DrawBuffer) Len() int { return len(b.oneShot) + len(b.durable) }

// OneShotLen returns the number of queued one-shot entries.
func (b *DrawBuffer) OneShotLen() int { return len(b.oneShot) }

// DurableLen returns the number of queued durable entries, expired ones included.
func (b *DrawBuffer) DurableLen() int { return len(b.durable) }
