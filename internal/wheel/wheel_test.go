package wheel

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Unix(1_700_000_000, 0)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

// spyViewport records every offset write.
type spyViewport struct {
	*MemoryViewport
	writes []float64
}

func newSpyViewport() *spyViewport {
	return &spyViewport{MemoryViewport: NewMemoryViewport()}
}

func (s *spyViewport) SetOffset(offset float64) {
	s.writes = append(s.writes, offset)
	s.MemoryViewport.SetOffset(offset)
}

type recorder struct {
	changes []Change
}

func (r *recorder) record(c Change) { r.changes = append(r.changes, c) }

func (r *recorder) last() Change { return r.changes[len(r.changes)-1] }

// runFrames drives 60fps frames until the wheel is idle and returns the last frame time.
func runFrames(t *testing.T, w *Wheel, from time.Time) time.Time {
	t.Helper()
	now := from
	for i := 0; w.NeedsFrame(); i++ {
		require.Less(t, i, 10_000, "animation never settled")
		now = now.Add(Frame)
		w.Frame(now)
	}
	return now
}

func fling(w *Wheel, start float64, step float64, moves int) time.Time {
	w.PointerDown(start, t0)
	pos := start
	at := t0
	for i := 1; i <= moves; i++ {
		pos += step
		at = t0.Add(ms(16 * i))
		w.PointerMove(pos, at)
	}
	w.PointerUp(pos, at)
	return at
}

func TestNew_InitialState(t *testing.T) {
	w := New(Config{Items: numbered(10), Value: "4", RowHeight: 10})

	assert.Equal(t, "4", w.Value())
	assert.Equal(t, 4, w.Index())
	assert.Equal(t, 40.0, w.Offset())
	assert.Equal(t, PhaseIdle, w.Phase())
	assert.Equal(t, DefaultVisibleRows, w.VisibleRows())
	assert.False(t, w.NeedsFrame())

	looped := New(Config{Items: numbered(10), Value: "4", RowHeight: 10, Loop: true})
	assert.Equal(t, 140.0, looped.Offset(), "loop mode starts in the middle copy")
	assert.True(t, looped.Loop())
}

func TestNew_UnknownValueFallsBackToFirst(t *testing.T) {
	w := New(Config{Items: []string{"a", "b"}, Value: "zzz"})

	assert.Equal(t, "a", w.Value())
	assert.Equal(t, 0, w.Index())
	assert.False(t, w.SetValue("nope"))
	assert.Equal(t, "a", w.Value())
}

func TestNew_EvenVisibleRowsForcedOdd(t *testing.T) {
	w := New(Config{Items: numbered(3), VisibleRows: 4})
	assert.Equal(t, 5, w.VisibleRows())
	assert.Equal(t, DefaultRowHeight, w.RowHeight())
}

func TestEmptyWheel_IgnoresInput(t *testing.T) {
	rec := &recorder{}
	vp := NewMemoryViewport()
	w := New(Config{OnChange: rec.record, Viewport: vp})

	w.PointerDown(10, t0)
	w.PointerMove(50, t0.Add(ms(16)))
	w.PointerUp(50, t0.Add(ms(32)))
	vp.EmitScroll(30, t0)
	w.Step(2, t0)
	assert.False(t, w.SetValue("x"))
	assert.False(t, w.Frame(t0.Add(time.Second)))

	assert.Empty(t, rec.changes)
	assert.Equal(t, "", w.Value())
	assert.Nil(t, w.Rows())
	assert.Equal(t, PhaseIdle, w.Phase())
	assert.Zero(t, w.Offset())
}

func TestDrag_FollowsPointerAndPreviewsCrossings(t *testing.T) {
	rec := &recorder{}
	w := New(Config{Items: numbered(10), Value: "0", RowHeight: 10, OnChange: rec.record})

	w.PointerDown(50, t0)
	assert.Equal(t, PhaseDragging, w.Phase())

	w.PointerMove(46, t0.Add(ms(16)))
	assert.Equal(t, 4.0, w.Offset(), "offset moves 1:1")
	assert.Empty(t, rec.changes, "no boundary crossed yet")

	w.PointerMove(40, t0.Add(ms(32)))
	assert.Equal(t, 10.0, w.Offset())
	require.Len(t, rec.changes, 1)
	assert.Equal(t, Change{Index: 1, Value: "1"}, rec.changes[0])

	w.PointerMove(28, t0.Add(ms(48)))
	require.Len(t, rec.changes, 2)
	assert.Equal(t, "2", rec.last().Value)
	assert.False(t, rec.last().Settled)

	w.PointerMove(60, t0.Add(ms(64)))
	assert.Zero(t, w.Offset(), "non-looping wheel clamps at the first row")
	assert.Equal(t, "0", w.Value())
}

func TestRelease_SlowReleaseSnaps(t *testing.T) {
	rec := &recorder{}
	w := New(Config{Items: numbered(10), Value: "0", RowHeight: 10, OnChange: rec.record})

	w.PointerDown(100, t0)
	w.PointerMove(88, t0.Add(ms(16)))
	w.PointerUp(88, t0.Add(ms(200)))

	assert.Equal(t, PhaseSnapping, w.Phase(), "stale samples give zero release velocity")
	assert.True(t, w.NeedsFrame())

	w.Frame(t0.Add(ms(250)))
	assert.Equal(t, PhaseSnapping, w.Phase())
	assert.InDelta(t, 10, w.Offset(), 2)

	assert.False(t, w.Frame(t0.Add(ms(300))))
	assert.Equal(t, PhaseIdle, w.Phase())
	assert.Equal(t, 10.0, w.Offset())
	assert.Equal(t, Change{Index: 1, Value: "1", Settled: true}, rec.last())
}

func TestFling_MomentumDecaysMonotonicallyThenSnaps(t *testing.T) {
	rec := &recorder{}
	items := numbered(12)
	w := New(Config{Items: items, Value: "0", RowHeight: 32, Loop: true, OnChange: rec.record})

	at := fling(w, 300, -20, 5)
	require.Equal(t, PhaseReleasing, w.Phase())
	require.Greater(t, w.Velocity(), DefaultMinReleaseVelocity)

	prev := math.Abs(w.Velocity())
	now := at
	for w.Phase() == PhaseReleasing {
		now = now.Add(Frame)
		w.Frame(now)
		if w.Phase() != PhaseReleasing {
			break
		}
		speed := math.Abs(w.Velocity())
		assert.LessOrEqual(t, speed, prev, "speed must not increase")
		prev = speed
	}
	assert.Equal(t, PhaseSnapping, w.Phase(), "momentum hands over to snapping")
	assert.Less(t, prev, DefaultMinVelocity/DefaultFriction+1e-9)

	runFrames(t, w, now)
	assert.Equal(t, PhaseIdle, w.Phase())
	assert.InDelta(t, 0, math.Mod(w.Offset(), 32), 1e-9, "settles on a row boundary")
	assert.Contains(t, items, w.Value())
	assert.True(t, rec.last().Settled)
	assert.Equal(t, w.Value(), rec.last().Value)
}

func TestFling_AnyDragSettlesOnAMember(t *testing.T) {
	items := numbered(7)
	for _, loop := range []bool{false, true} {
		for step := -40.0; step <= 40; step += 7 {
			w := New(Config{Items: items, Value: "3", RowHeight: 24, Loop: loop})
			at := fling(w, 200, step, 6)
			runFrames(t, w, at)

			assert.Equal(t, PhaseIdle, w.Phase())
			assert.Contains(t, items, w.Value(), "loop=%v step=%v", loop, step)
			assert.InDelta(t, 0, math.Mod(w.Offset(), 24), 1e-9)
			assert.Equal(t, w.Value(), items[int(math.Round(w.Offset()/24))%len(items)])
		}
	}
}

func TestFling_NonLoopStopsAtEdge(t *testing.T) {
	w := New(Config{Items: numbered(5), Value: "1", RowHeight: 20})

	at := fling(w, 0, 30, 4)
	runFrames(t, w, at)

	assert.Equal(t, "0", w.Value())
	assert.Zero(t, w.Offset())
}

func TestTap_TweensToTappedRow(t *testing.T) {
	rec := &recorder{}
	w := New(Config{Items: numbered(10), Value: "5", RowHeight: 10, VisibleRows: 5, OnChange: rec.record})

	// first visible row, two above the center
	w.PointerDown(5, t0)
	w.PointerMove(6, t0.Add(ms(20)))
	w.PointerUp(6, t0.Add(ms(40)))

	require.Equal(t, PhaseSnapping, w.Phase())
	runFrames(t, w, t0.Add(ms(40)))

	assert.Equal(t, "3", w.Value())
	assert.Equal(t, 30.0, w.Offset())
	assert.True(t, rec.last().Settled)
}

func TestTap_CenteredRowSettlesInPlace(t *testing.T) {
	rec := &recorder{}
	w := New(Config{Items: numbered(10), Value: "5", RowHeight: 10, VisibleRows: 5, OnChange: rec.record})

	w.PointerDown(25, t0)
	w.PointerUp(25, t0.Add(ms(60)))

	assert.Equal(t, PhaseIdle, w.Phase())
	assert.False(t, w.NeedsFrame())
	assert.Equal(t, []Change{{Index: 5, Value: "5", Settled: true}}, rec.changes)
}

func TestNativeScroll_SnapsAfterIdle(t *testing.T) {
	vp := NewMemoryViewport()
	rec := &recorder{}
	w := New(Config{Items: numbered(10), Value: "2", RowHeight: 10, Viewport: vp, OnChange: rec.record})

	vp.EmitScroll(7, t0)
	assert.Equal(t, PhaseScrollSettling, w.Phase())
	assert.Equal(t, 27.0, w.Offset())
	assert.Equal(t, "3", w.Value(), "native scroll previews crossings")

	vp.EmitScroll(7, t0.Add(ms(50)))
	assert.Equal(t, 34.0, w.Offset())

	w.Frame(t0.Add(ms(150)))
	assert.Equal(t, PhaseScrollSettling, w.Phase(), "debounce restarted by the second event")

	w.Frame(t0.Add(ms(170)))
	assert.Equal(t, PhaseSnapping, w.Phase())

	runFrames(t, w, t0.Add(ms(170)))
	assert.Equal(t, 30.0, w.Offset())
	assert.Equal(t, "3", w.Value())
	assert.True(t, rec.last().Settled)
}

func TestLoop_JumpsAreInvisible(t *testing.T) {
	vp := newSpyViewport()
	items := numbered(12)
	const h = 32.0
	w := New(Config{Items: items, Value: "0", RowHeight: h, Loop: true, Viewport: vp})

	at := fling(w, 400, -25, 6)
	runFrames(t, w, at)

	label := func(offset float64) string {
		n := len(items)
		r := int(math.Round(offset / h))
		return items[((r%n)+n)%n]
	}

	span := float64(len(items)) * h
	jumps := 0
	for i := 1; i < len(vp.writes); i++ {
		if math.Abs(math.Abs(vp.writes[i]-vp.writes[i-1])-span) < 1e-9 {
			jumps++
			assert.Equal(t, label(vp.writes[i-1]), label(vp.writes[i]), "jump %d changed the label", i)
		}
	}
	require.Positive(t, jumps, "fling should cross the copy boundary")

	assert.GreaterOrEqual(t, w.Offset(), float64(len(items)-1)*h)
	assert.LessOrEqual(t, w.Offset(), float64(2*len(items))*h)
}

func TestLoop_DragContinuesAcrossJump(t *testing.T) {
	w := New(Config{Items: numbered(5), Value: "0", RowHeight: 10, Loop: true})
	require.Equal(t, 50.0, w.Offset())

	w.PointerDown(0, t0)
	w.PointerMove(25, t0.Add(ms(16)))
	assert.Equal(t, 75.0, w.Offset(), "25 < 40 jumps forward one list length")
	assert.Equal(t, "3", w.Value())

	w.PointerMove(20, t0.Add(ms(32)))
	assert.Equal(t, 80.0, w.Offset(), "drag stays 1:1 after the jump")
	assert.Equal(t, "3", w.Value())
}

func TestLoop_ShortListFlingCoastsThenSnaps(t *testing.T) {
	items := []string{"AM", "PM"}
	const h = 32.0
	w := New(Config{Items: items, Value: "AM", RowHeight: h, Loop: true})

	at := fling(w, 300, -40, 6)
	require.Equal(t, PhaseReleasing, w.Phase())

	prev := math.Abs(w.Velocity())
	now := at
	for w.Phase() == PhaseReleasing {
		now = now.Add(Frame)
		w.Frame(now)
		if w.Phase() != PhaseReleasing {
			break
		}
		speed := math.Abs(w.Velocity())
		require.Positive(t, speed, "a looping wheel has no edge to stop at")
		assert.InDelta(t, prev*DefaultFriction, speed, 1e-6, "speed decays by friction only")
		prev = speed
	}
	assert.Equal(t, PhaseSnapping, w.Phase(), "momentum hands over to snapping")

	runFrames(t, w, now)
	assert.Equal(t, PhaseIdle, w.Phase())
	assert.Contains(t, items, w.Value())
	assert.InDelta(t, 0, math.Mod(w.Offset(), h), 1e-9)
	assert.GreaterOrEqual(t, w.Offset(), h)
	assert.LessOrEqual(t, w.Offset(), 4*h)
}

func TestLoop_LargeDragFoldsIntoMiddleCopy(t *testing.T) {
	w := New(Config{Items: []string{"AM", "PM"}, Value: "AM", RowHeight: 32, Loop: true})
	require.Equal(t, 64.0, w.Offset())

	w.PointerDown(0, t0)
	w.PointerMove(-200, t0.Add(ms(16)))
	assert.Equal(t, 72.0, w.Offset(), "264 folds back by three list lengths")
	assert.Equal(t, "AM", w.Value())

	w.PointerMove(-210, t0.Add(ms(32)))
	assert.Equal(t, 82.0, w.Offset(), "drag stays 1:1 after the jump")
	assert.Equal(t, "PM", w.Value())
}

func TestLoop_EchoingViewportDoesNotFeedBack(t *testing.T) {
	vp := NewMemoryViewport()
	vp.EchoWrites = true
	w := New(Config{Items: numbered(5), Value: "0", RowHeight: 10, Loop: true, Viewport: vp})

	w.PointerDown(0, t0)
	w.PointerMove(25, t0.Add(ms(16)))

	assert.Equal(t, PhaseDragging, w.Phase(), "echoed writes are not native scrolls")
	assert.Equal(t, 75.0, w.Offset())

	w.PointerUp(25, t0.Add(ms(300)))
	runFrames(t, w, t0.Add(ms(300)))
	assert.Equal(t, PhaseIdle, w.Phase())
	assert.InDelta(t, 0, math.Mod(w.Offset(), 10), 1e-9)
}

func TestCancellation_NewDragStopsMomentum(t *testing.T) {
	w := New(Config{Items: numbered(60), Value: "30", RowHeight: 20, Loop: true})

	at := fling(w, 300, -30, 5)
	require.Equal(t, PhaseReleasing, w.Phase())
	w.Frame(at.Add(Frame))
	staleGen := w.Generation()

	w.PointerDown(150, at.Add(2*Frame))
	assert.Equal(t, PhaseDragging, w.Phase())
	assert.False(t, w.NeedsFrame(), "no animation while dragging")
	assert.NotEqual(t, staleGen, w.Generation())
	assert.Zero(t, w.Velocity())

	before := w.Offset()
	assert.False(t, w.Frame(at.Add(3*Frame)))
	assert.Equal(t, before, w.Offset(), "stale momentum never touches the offset")

	w.PointerMove(140, at.Add(4*Frame))
	assert.Equal(t, before+10, w.Offset())
}

func TestCancellation_SnapReplacedByNewSnap(t *testing.T) {
	w := New(Config{Items: numbered(10), Value: "0", RowHeight: 10})

	w.Step(1, t0)
	g1 := w.Generation()
	w.Step(1, t0.Add(ms(10)))

	assert.NotEqual(t, g1, w.Generation())
	runFrames(t, w, t0.Add(ms(10)))
	assert.Equal(t, "2", w.Value(), "steps accumulate on the pending target")

	w.Step(-5, t0.Add(time.Second))
	runFrames(t, w, t0.Add(time.Second))
	assert.Equal(t, "0", w.Value(), "step clamps at the first row")
}

func TestClose_CancelsAndUnsubscribes(t *testing.T) {
	vp := NewMemoryViewport()
	rec := &recorder{}
	w := New(Config{Items: numbered(10), Value: "5", RowHeight: 10, Viewport: vp, OnChange: rec.record})
	require.Equal(t, 1, vp.Listeners())

	vp.EmitScroll(12, t0)
	require.True(t, w.NeedsFrame())
	changes := len(rec.changes)

	w.Close()
	assert.True(t, w.Closed())
	assert.Zero(t, vp.Listeners(), "scroll listener removed")
	assert.False(t, w.NeedsFrame(), "pending debounce cancelled")
	assert.False(t, w.Frame(t0.Add(time.Second)))

	vp.EmitScroll(40, t0.Add(time.Second))
	w.PointerDown(0, t0)
	w.PointerMove(30, t0.Add(ms(16)))
	assert.Len(t, rec.changes, changes, "closed wheel reports nothing")

	w.Close()
	assert.Zero(t, vp.Listeners())
}

func TestSetValue_JumpsSilently(t *testing.T) {
	rec := &recorder{}
	w := New(Config{Items: numbered(10), Value: "0", RowHeight: 10, Loop: true, OnChange: rec.record})

	w.Step(3, t0)
	require.True(t, w.NeedsFrame())

	assert.True(t, w.SetValue("7"))
	assert.Equal(t, "7", w.Value())
	assert.Equal(t, 170.0, w.Offset())
	assert.Equal(t, PhaseIdle, w.Phase())
	assert.False(t, w.NeedsFrame(), "programmatic jump cancels the tween")
	assert.Empty(t, rec.changes)
}

func TestRows_EmphasizesCenter(t *testing.T) {
	w := New(Config{Items: numbered(10), Value: "1", RowHeight: 10, VisibleRows: 5})

	rows := w.Rows()
	require.Len(t, rows, 5)
	assert.Equal(t, Row{Label: "", Index: -1, Distance: -2}, rows[0])
	assert.Equal(t, Row{Label: "0", Index: 0, Distance: -1}, rows[1])
	assert.Equal(t, Row{Label: "1", Index: 1, Distance: 0, Centered: true}, rows[2])
	assert.Equal(t, "3", rows[4].Label)

	looped := New(Config{Items: numbered(10), Value: "0", RowHeight: 10, VisibleRows: 5, Loop: true})
	labels := make([]string, 0, 5)
	for _, r := range looped.Rows() {
		labels = append(labels, r.Label)
	}
	assert.Equal(t, []string{"8", "9", "0", "1", "2"}, labels)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "dragging", PhaseDragging.String())
	assert.Equal(t, "releasing", PhaseReleasing.String())
	assert.Equal(t, "snapping", PhaseSnapping.String())
	assert.Equal(t, "scroll-settling", PhaseScrollSettling.String())
	assert.Equal(t, "unknown", Phase(99).String())
}
