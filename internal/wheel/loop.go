package wheel

import "math"

// loopCopies is the number of list copies rendered in loop mode.
const loopCopies = 3

// total returns the number of rendered rows.
func (w *Wheel) total() int {
	if w.loop {
		return len(w.items) * loopCopies
	}
	return len(w.items)
}

// restOffset is the offset centering item idx; loop mode uses the middle copy.
func (w *Wheel) restOffset(idx int) float64 {
	if w.loop {
		idx += len(w.items)
	}
	return float64(idx) * w.rowHeight
}

// clamp bounds offset to the list ends. Looping wheels have no ends.
func (w *Wheel) clamp(offset float64) float64 {
	if w.loop {
		return offset
	}
	maxOffset := float64(max(0, w.total()-1)) * w.rowHeight
	return math.Max(0, math.Min(maxOffset, offset))
}

// renderedAt returns the rendered row nearest to offset.
func (w *Wheel) renderedAt(offset float64) int {
	r := int(math.Round(offset / w.rowHeight))
	if w.loop {
		return r
	}
	return max(0, min(w.total()-1, r))
}

// rowAt returns the rendered row under pointer position pos.
func (w *Wheel) rowAt(pos float64) int {
	top := float64(w.visibleRows/2) * w.rowHeight
	r := int(math.Floor((w.Offset() + pos - top) / w.rowHeight))
	if w.loop {
		return r
	}
	return max(0, min(w.total()-1, r))
}

// itemOf maps a rendered row to its item index. Looping rows wrap.
func (w *Wheel) itemOf(r int) int {
	if w.loop && len(w.items) > 0 {
		n := len(w.items)
		return ((r % n) + n) % n
	}
	if !w.invariant(r >= 0 && r < w.total(), "rendered row %d outside [0,%d)", r, w.total()) {
		return 0
	}
	return r % len(w.items)
}

// reposition keeps a looping wheel inside its middle copy. When the offset
// has drifted more than one row outside the middle copy it jumps by the
// smallest whole number of list lengths that brings it back, which renders
// identically. At most one jump happens per tick and a jump cannot re-enter
// itself.
func (w *Wheel) reposition() bool {
	if !w.loop || len(w.items) == 0 || w.repositioning || w.lastJump == w.tick {
		return false
	}

	n := len(w.items)
	span := float64(n) * w.rowHeight
	offset := w.Offset()

	low := float64(n-1) * w.rowHeight
	high := float64(2*n) * w.rowHeight

	var shift float64
	switch {
	case offset < low:
		shift = math.Ceil((low-offset)/span) * span
	case offset > high:
		shift = -math.Ceil((offset-high)/span) * span
	default:
		return false
	}

	w.repositioning = true
	defer func() { w.repositioning = false }()
	w.lastJump = w.tick

	w.setOffset(offset + shift)
	w.drag.startOffset += shift
	if w.anim != nil && w.anim.phase == PhaseSnapping {
		w.anim.tween.shift(shift)
	}
	w.log.Trace().Float64("shift", shift).Msg("loop reposition")
	return true
}
