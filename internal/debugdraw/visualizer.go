package debugdraw

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/debugdraw/pkg/math"
)

// DefaultHitScale is the length of the normal arrow drawn at a query hit.
const DefaultHitScale float32 = 0.1

// Backend draws tessellated primitives. Implementations run on the render thread.
type Backend interface {
	// DrawLines draws independent segments in one color.
	DrawLines(color Color, segments []Segment)
	// DrawIcon draws the icon on a unit quad placed by transform.
	DrawIcon(icon *IconHandle, transform math.Mat4)
	// View reports the current camera, or false when there is none.
	View() (View, bool)
}

// Stats is a snapshot of queued and cached work.
type Stats struct {
	OneShot     int
	Durable     int
	CachedIcons int
	Flushes     uint64
	Recovered   uint64
}

// Option configures a Visualizer.
type Option func(*Visualizer)

// WithClock sets the time source for durations.
func WithClock(clock func() time.Time) Option {
	return func(v *Visualizer) { v.clock = clock }
}

// WithIconLoader sets the loader used to resolve icon names.
func WithIconLoader(loader IconLoader) Option {
	return func(v *Visualizer) { v.loader = loader }
}

// WithFallbackIcon sets the handle drawn for icons that cannot be loaded.
func WithFallbackIcon(h *IconHandle) Option {
	return func(v *Visualizer) { v.fallback = h }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(v *Visualizer) {
		if log != nil {
			v.log = log
		}
	}
}

// WithHitScale sets the normal arrow length drawn at hits. The hit marker sphere
// gets a tenth of it as radius.
func WithHitScale(scale float32) Option {
	return func(v *Visualizer) {
		if scale > 0 {
			v.hitScale = scale
		}
	}
}

// WithCircleVertices sets the vertex count used when a circle asks for the default.
func WithCircleVertices(n int) Option {
	return func(v *Visualizer) {
		if n > 0 {
			v.circleVertices = n
		}
	}
}

// WithIconPixelSize sets the on-screen icon height.
func WithIconPixelSize(px float32) Option {
	return func(v *Visualizer) {
		if px > 0 {
			v.iconPixelSize = px
		}
	}
}

// Visualizer queues debug primitives and draws them through a Backend on Flush.
// Durations are in milliseconds; zero draws for exactly one flush.
//
// A Visualizer is not safe for concurrent use.
type Visualizer struct {
	backend Backend
	buffer  *DrawBuffer
	icons   *IconCache
	log     *zap.Logger
	clock   func() time.Time

	loader   IconLoader
	fallback *IconHandle

	hitScale       float32
	circleVertices int
	iconPixelSize  float32

	closed    bool
	flushes   uint64
	recovered uint64
}

// New creates a Visualizer drawing through backend.
func New(backend Backend, opts ...Option) *Visualizer {
	v := &Visualizer{
		backend:        backend,
		log:            zap.NewNop(),
		clock:          time.Now,
		hitScale:       DefaultHitScale,
		circleVertices: DefaultCircleVertices,
		iconPixelSize:  DefaultIconPixelSize,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.buffer = NewDrawBuffer(v.clock)
	v.icons = NewIconCache(v.loader, v.fallback)
	v.icons.SetLogger(v.log)
	return v
}

// Icons returns the icon cache.
func (v *Visualizer) Icons() *IconCache { return v.icons }

// HitScale returns the configured hit marker scale.
func (v *Visualizer) HitScale() float32 { return v.hitScale }

// Enqueue queues a primitive for durationMs milliseconds.
func (v *Visualizer) Enqueue(p Primitive, durationMs float32) {
	if v.closed {
		return
	}
	v.buffer.Enqueue(p, durationMs)
}

func (v *Visualizer) enqueueSegments(segments []Segment, color Color, durationMs float32) {
	for _, s := range segments {
		v.Enqueue(Line{From: s.From, To: s.To, Color: color}, durationMs)
	}
}

// DrawLine queues a single segment.
func (v *Visualizer) DrawLine(from, to math.Vec3, color Color, durationMs float32) {
	v.Enqueue(Line{From: from, To: to, Color: color}, durationMs)
}

// DrawArrow queues a line from from to to with an arrowhead at to, and at from too
// when bothEnds is set.
func (v *Visualizer) DrawArrow(from, to math.Vec3, color Color, durationMs float32, bothEnds bool) {
	v.enqueueSegments(ArrowSegments(from, to, bothEnds), color, durationMs)
}

// DrawArrowhead queues an arrowhead at position pointing along direction.
func (v *Visualizer) DrawArrowhead(position, direction math.Vec3, color Color, durationMs, size float32) {
	v.enqueueSegments(ArrowheadSegments(position, direction, size), color, durationMs)
}

// DrawCircle queues a circle or arc of sweepDeg degrees in the XY plane of orientation.
// A vertex count of zero uses the configured default.
func (v *Visualizer) DrawCircle(center math.Vec3, radius float32, orientation math.Quat, color Color, sweepDeg, durationMs float32, vertices int) {
	if vertices <= 0 {
		vertices = v.circleVertices
	}
	v.enqueueSegments(CircleSegments(center, radius, orientation, sweepDeg, vertices), color, durationMs)
}

// DrawBox queues an oriented box and returns it.
func (v *Visualizer) DrawBox(origin, halfExtents math.Vec3, orientation math.Quat, color Color, durationMs float32) Box {
	box := NewBox(origin, halfExtents, orientation)
	box.Color = color
	v.Enqueue(box, durationMs)
	return box
}

// DrawBoxValue queues an existing box in color.
func (v *Visualizer) DrawBoxValue(box Box, color Color, durationMs float32) {
	box.Color = color
	v.Enqueue(box, durationMs)
}

// DrawSphere queues a wireframe sphere and returns it.
func (v *Visualizer) DrawSphere(origin math.Vec3, radius float32, color Color, durationMs float32) Sphere {
	s := Sphere{Origin: origin, Radius: radius, Color: color, Up: math.Vec3Up}
	v.Enqueue(s, durationMs)
	return s
}

// DrawHemisphere queues the half of a sphere facing up.
func (v *Visualizer) DrawHemisphere(origin math.Vec3, radius float32, up math.Vec3, color Color, durationMs float32) {
	v.Enqueue(Sphere{Origin: origin, Radius: radius, Color: color, Up: up, Hemisphere: true}, durationMs)
}

// DrawHemisphereOriented queues a hemisphere facing along orientation's forward axis.
func (v *Visualizer) DrawHemisphereOriented(origin math.Vec3, radius float32, orientation math.Quat, color Color, durationMs float32) {
	v.DrawHemisphere(origin, radius, orientation.Rotate(math.Vec3Forward), color, durationMs)
}

// DrawCapsule queues a capsule between p1 and p2. The cap at p1 is skipped when
// capPoint1 is false.
func (v *Visualizer) DrawCapsule(p1, p2 math.Vec3, radius float32, color Color, durationMs float32, capPoint1 bool) {
	for _, p := range CapsuleParts(p1, p2, radius, color, capPoint1) {
		v.Enqueue(p, durationMs)
	}
}

// DrawIcon queues the named icon as a camera-facing billboard at center.
func (v *Visualizer) DrawIcon(center math.Vec3, id string, durationMs float32) {
	if v.closed {
		return
	}
	v.Enqueue(Icon{Center: center, Handle: v.icons.GetOrLoad(id)}, durationMs)
}

// Flush draws every live primitive through the backend and drops expired ones.
// It may be called more than once per frame; later calls only redraw durable
// primitives. A panic in the backend is logged and skips that primitive.
// Without a backend the buffer is still drained and pruned.
func (v *Visualizer) Flush() {
	if v.closed {
		return
	}
	v.flushes++

	if v.backend == nil {
		v.buffer.Flush(func(Primitive) {})
		return
	}

	view, hasView := v.backend.View()
	v.buffer.Flush(func(p Primitive) {
		v.render(p, view, hasView)
	})
}

func (v *Visualizer) render(p Primitive, view View, hasView bool) {
	defer func() {
		if r := recover(); r != nil {
			v.recovered++
			v.log.Error("debug draw backend panic", zap.Stringer("kind", p.Kind()), zap.Any("panic", r))
		}
	}()

	switch p := p.(type) {
	case Line:
		v.backend.DrawLines(p.Color, p.Segments())
	case Box:
		v.backend.DrawLines(p.Color, p.Edges())
	case Sphere:
		v.backend.DrawLines(p.Color, p.Segments())
	case Icon:
		if !hasView {
			return
		}
		size := HandleSize(p.Center, view, v.iconPixelSize)
		v.backend.DrawIcon(p.Handle, BillboardTransform(p.Center, view, size))
	default:
		v.log.Warn("unknown debug primitive", zap.Stringer("kind", p.Kind()))
	}
}

// Reset clears everything queued and re-enables drawing after Close.
func (v *Visualizer) Reset() {
	v.buffer.Clear()
	v.closed = false
}

// Close clears everything queued, releases cached icons and disables drawing
// until Reset.
func (v *Visualizer) Close() {
	v.buffer.Clear()
	v.icons.Clear()
	v.closed = true
}

// Stats returns current queue sizes and counters.
func (v *Visualizer) Stats() Stats {
	return Stats{
		OneShot:     v.buffer.OneShotLen(),
		Durable:     v.buffer.DurableLen(),
		CachedIcons: v.icons.Len(),
		Flushes:     v.flushes,
		Recovered:   v.recovered,
	}
}
