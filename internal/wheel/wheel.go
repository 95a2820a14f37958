package wheel

import (
	"math"
	"slices"
	"time"

	"github.com/rs/zerolog"
)

// offsetEpsilon is the distance below which a snap is applied instantly.
const offsetEpsilon = 1e-6

// Phase is the interaction state of a Wheel.
type Phase int

const (
	// PhaseIdle means the wheel is at rest on a row boundary.
	PhaseIdle Phase = iota
	// PhaseDragging means a pointer is down and moving the offset 1:1.
	PhaseDragging
	// PhaseReleasing means momentum is decaying after a fling.
	PhaseReleasing
	// PhaseSnapping means an eased tween is aligning the offset to a row.
	PhaseSnapping
	// PhaseScrollSettling means native scroll is active and awaiting idle.
	PhaseScrollSettling
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseReleasing:
		return "releasing"
	case PhaseSnapping:
		return "snapping"
	case PhaseScrollSettling:
		return "scroll-settling"
	default:
		return "unknown"
	}
}

// animation is the single in-flight animation of a wheel.
type animation struct {
	phase     Phase
	tween     Tween
	velocity  float64
	lastFrame time.Time
	deadline  time.Time
}

type dragState struct {
	startPos    float64
	startOffset float64
	lastPos     float64
	lastAt      time.Time
	travel      float64
}

// Wheel is a single-column inertial selector. It is not safe for concurrent
// use; the host serializes input events and frames on one goroutine.
type Wheel struct {
	items       []string
	index       map[string]int
	loop        bool
	rowHeight   float64
	visibleRows int
	physics     Physics
	onChange    func(Change)
	log         zerolog.Logger

	viewport    Viewport
	unsubscribe func()

	phase    Phase
	selected int
	anim     *animation
	gen      uint64
	drag     dragState
	tracker  *VelocityTracker

	// tick advances once per event or frame; lastJump bounds loop jumps to one per tick.
	tick          uint64
	lastJump      uint64
	repositioning bool
	writing       bool
	closed        bool
}

// New creates a wheel centered on cfg.Value and subscribes to the viewport's
// scroll events. Call Close to release the subscription.
func New(cfg Config) *Wheel {
	w := &Wheel{
		items:       slices.Clone(cfg.Items),
		index:       make(map[string]int, len(cfg.Items)),
		loop:        cfg.Loop,
		rowHeight:   cfg.RowHeight,
		visibleRows: cfg.VisibleRows,
		physics:     cfg.Physics.withDefaults(),
		onChange:    cfg.OnChange,
		log:         zerolog.Nop(),
		viewport:    cfg.Viewport,
		tick:        1,
	}
	if cfg.Logger != nil {
		w.log = cfg.Logger.With().Str("component", "wheel").Logger()
	}
	if w.rowHeight <= 0 {
		w.rowHeight = DefaultRowHeight
	}
	if w.visibleRows <= 0 {
		w.visibleRows = DefaultVisibleRows
	}
	if w.visibleRows%2 == 0 {
		w.visibleRows++
	}
	if w.viewport == nil {
		w.viewport = NewMemoryViewport()
	}
	w.tracker = NewVelocityTracker(w.physics.VelocityWindow)

	for i, item := range w.items {
		if _, dup := w.index[item]; !dup {
			w.index[item] = i
		}
	}

	if len(w.items) > 0 {
		idx, ok := w.index[cfg.Value]
		if !ok {
			w.log.Debug().Str("value", cfg.Value).Msg("initial value not in items, using index 0")
		}
		w.selected = idx
		w.setOffset(w.restOffset(idx))
	}

	w.unsubscribe = w.viewport.OnScroll(w.handleScroll)
	return w
}

// Items returns a copy of the item list.
func (w *Wheel) Items() []string {
	return slices.Clone(w.items)
}

// Value returns the selected label, or "" for an empty wheel.
func (w *Wheel) Value() string {
	if len(w.items) == 0 {
		return ""
	}
	return w.items[w.selected]
}

// Index returns the selected item index.
func (w *Wheel) Index() int {
	return w.selected
}

// Offset returns the viewport offset.
func (w *Wheel) Offset() float64 {
	return w.viewport.Offset()
}

// Phase returns the interaction state.
func (w *Wheel) Phase() Phase {
	return w.phase
}

// Loop reports whether infinite wrap is enabled.
func (w *Wheel) Loop() bool {
	return w.loop
}

// RowHeight returns the row height in viewport units.
func (w *Wheel) RowHeight() float64 {
	return w.rowHeight
}

// VisibleRows returns the number of rendered rows.
func (w *Wheel) VisibleRows() int {
	return w.visibleRows
}

// Velocity returns the current momentum velocity in px per frame.
func (w *Wheel) Velocity() float64 {
	if w.anim == nil || w.anim.phase != PhaseReleasing {
		return 0
	}
	return w.anim.velocity
}

// NeedsFrame reports whether an animation or debounce is pending.
func (w *Wheel) NeedsFrame() bool {
	return !w.closed && w.anim != nil
}

// Generation identifies the current animation handle. It changes every time
// an animation is cancelled or replaced, so frame requests stamped with an
// older generation can be dropped by the host.
func (w *Wheel) Generation() uint64 {
	return w.gen
}

// Closed reports whether Close has been called.
func (w *Wheel) Closed() bool {
	return w.closed
}

// PointerDown starts a drag at pointer position pos (viewport coordinates).
// Any running momentum, snap or scroll debounce is cancelled first.
func (w *Wheel) PointerDown(pos float64, at time.Time) {
	if w.inert() {
		return
	}
	w.tick++
	w.cancel()
	w.tracker.Reset()
	w.drag = dragState{startPos: pos, startOffset: w.Offset(), lastPos: pos, lastAt: at}
	w.setPhase(PhaseDragging)
}

// PointerMove moves the offset 1:1 with the drag and samples velocity.
func (w *Wheel) PointerMove(pos float64, at time.Time) {
	if w.inert() || w.phase != PhaseDragging {
		return
	}
	w.tick++
	w.moveTo(pos, at)
}

// PointerUp ends the drag: a tap tweens to the tapped row, a slow release
// snaps, and a fling hands over to momentum.
func (w *Wheel) PointerUp(pos float64, at time.Time) {
	if w.inert() || w.phase != PhaseDragging {
		return
	}
	w.tick++
	if pos != w.drag.lastPos {
		w.moveTo(pos, at)
	}

	if w.drag.travel < w.physics.TapThreshold {
		w.tap(pos, at)
		return
	}

	v := w.tracker.Release(at)
	w.tracker.Reset()
	if math.Abs(v) < w.physics.MinReleaseVelocity {
		w.snap(at)
		return
	}

	a := w.start(PhaseReleasing)
	a.velocity = v
	a.lastFrame = at
	w.log.Debug().Float64("velocity", v).Msg("momentum started")
}

// Step tweens the wheel by rows, accumulating onto an in-flight snap.
func (w *Wheel) Step(rows int, now time.Time) {
	if w.inert() || w.phase == PhaseDragging {
		return
	}
	w.tick++
	base := w.renderedAt(w.Offset())
	if w.anim != nil && w.anim.phase == PhaseSnapping {
		base = w.renderedAt(w.anim.tween.To)
	}
	w.tweenTo(float64(base+rows)*w.rowHeight, now)
}

// SetValue jumps to value without animation and without reporting a change.
// Unknown values select index 0. It returns whether value was found.
func (w *Wheel) SetValue(value string) bool {
	if w.inert() {
		return false
	}
	w.tick++
	idx, ok := w.index[value]
	if !ok {
		w.log.Debug().Str("value", value).Msg("value not in items, using index 0")
	}
	w.cancel()
	w.setPhase(PhaseIdle)
	w.selected = idx
	w.setOffset(w.restOffset(idx))
	w.reposition()
	return ok
}

// Frame advances the current animation to now and reports whether another
// frame is needed.
func (w *Wheel) Frame(now time.Time) bool {
	if w.closed || w.anim == nil {
		return false
	}
	w.tick++

	a := w.anim
	switch a.phase {
	case PhaseReleasing:
		w.stepMomentum(a, now)
	case PhaseSnapping:
		w.stepSnap(a, now)
	case PhaseScrollSettling:
		if !now.Before(a.deadline) {
			w.snap(now)
		}
	case PhaseIdle, PhaseDragging:
	}
	return w.NeedsFrame()
}

// Close cancels any pending animation or debounce and removes the viewport
// subscription. Further input is ignored.
func (w *Wheel) Close() {
	if w.closed {
		return
	}
	w.cancel()
	w.setPhase(PhaseIdle)
	w.closed = true
	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
}

func (w *Wheel) handleScroll(delta float64, at time.Time) {
	if w.writing || w.inert() || w.phase == PhaseDragging {
		return
	}
	w.tick++
	w.setOffset(w.clamp(w.Offset() + delta))
	a := w.start(PhaseScrollSettling)
	a.deadline = at.Add(w.physics.ScrollIdle)
	w.reposition()
	w.report(false)
}

func (w *Wheel) moveTo(pos float64, at time.Time) {
	if dt := at.Sub(w.drag.lastAt); dt > 0 {
		frames := float64(dt) / float64(Frame)
		w.tracker.Add(-(pos-w.drag.lastPos)/frames, at)
	}
	w.drag.lastPos = pos
	w.drag.lastAt = at
	w.drag.travel = math.Max(w.drag.travel, math.Abs(pos-w.drag.startPos))

	w.setOffset(w.clamp(w.drag.startOffset - (pos - w.drag.startPos)))
	w.reposition()
	w.report(false)
}

func (w *Wheel) tap(pos float64, at time.Time) {
	row := w.rowAt(pos)
	if row == w.renderedAt(w.Offset()) {
		w.snap(at)
		return
	}
	w.log.Debug().Int("row", row).Msg("tap to select")
	w.tweenTo(float64(row)*w.rowHeight, at)
}

func (w *Wheel) stepMomentum(a *animation, now time.Time) {
	frames := float64(now.Sub(a.lastFrame)) / float64(Frame)
	if frames <= 0 {
		return
	}
	a.lastFrame = now

	next := w.Offset() + a.velocity*frames
	a.velocity *= math.Pow(w.physics.Friction, frames)
	if clamped := w.clamp(next); clamped != next {
		next = clamped
		a.velocity = 0
	}

	w.setOffset(next)
	w.reposition()
	w.report(false)
	if w.anim != a {
		return
	}
	if math.Abs(a.velocity) < w.physics.MinVelocity {
		w.snap(now)
	}
}

func (w *Wheel) stepSnap(a *animation, now time.Time) {
	v, done := a.tween.At(now)
	w.setOffset(v)
	if done {
		w.settle()
		return
	}
	w.reposition()
	w.report(false)
}

// snap tweens to the nearest row boundary.
func (w *Wheel) snap(now time.Time) {
	w.tweenTo(float64(w.renderedAt(w.Offset()))*w.rowHeight, now)
}

func (w *Wheel) tweenTo(target float64, now time.Time) {
	target = w.clamp(target)
	from := w.Offset()
	if math.Abs(target-from) < offsetEpsilon {
		w.setOffset(target)
		w.settle()
		return
	}
	a := w.start(PhaseSnapping)
	a.tween = Tween{
		From:     from,
		To:       target,
		Start:    now,
		Duration: snapDuration(target-from, w.rowHeight, w.physics),
	}
}

// settle ends any animation on a row boundary and reports the final value.
func (w *Wheel) settle() {
	w.cancel()
	w.setPhase(PhaseIdle)
	w.reposition()
	w.report(true)
}

// start replaces the current animation handle with a fresh one.
func (w *Wheel) start(phase Phase) *animation {
	w.cancel()
	w.anim = &animation{phase: phase}
	w.setPhase(phase)
	return w.anim
}

// cancel invalidates the current animation handle.
func (w *Wheel) cancel() {
	w.anim = nil
	w.gen++
}

func (w *Wheel) setPhase(p Phase) {
	if p == w.phase {
		return
	}
	w.log.Trace().Stringer("from", w.phase).Stringer("to", p).Msg("phase")
	w.phase = p
}

// report fires OnChange when the centered item changed, or unconditionally
// when settled.
func (w *Wheel) report(settled bool) {
	if len(w.items) == 0 {
		return
	}
	idx := w.itemOf(w.renderedAt(w.Offset()))
	if idx == w.selected && !settled {
		return
	}
	w.selected = idx
	if w.onChange != nil {
		w.onChange(Change{Index: idx, Value: w.items[idx], Settled: settled})
	}
}

func (w *Wheel) setOffset(offset float64) {
	w.writing = true
	defer func() { w.writing = false }()
	w.viewport.SetOffset(offset)
}

func (w *Wheel) inert() bool {
	return w.closed || len(w.items) == 0
}
