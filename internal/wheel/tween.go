package wheel

import (
	"math"
	"time"
)

// EaseOutCubic maps linear progress p in [0, 1] to 1-(1-p)^3.
func EaseOutCubic(p float64) float64 {
	p = math.Max(0, math.Min(1, p))
	inv := 1 - p
	return 1 - inv*inv*inv
}

// Tween animates a value from From to To over Duration starting at Start.
type Tween struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
}

// At returns the eased value at now and whether the tween has finished.
// A finished tween returns To exactly.
func (t Tween) At(now time.Time) (float64, bool) {
	if t.Duration <= 0 {
		return t.To, true
	}
	elapsed := now.Sub(t.Start)
	if elapsed >= t.Duration {
		return t.To, true
	}
	p := float64(elapsed) / float64(t.Duration)
	return t.From + (t.To-t.From)*EaseOutCubic(p), false
}

// shift moves both endpoints, used when the loop jumps the offset.
func (t *Tween) shift(delta float64) {
	t.From += delta
	t.To += delta
}

// snapDuration scales with distance in rows and is clamped to [min, max].
func snapDuration(distance, rowHeight float64, p Physics) time.Duration {
	d := time.Duration(math.Abs(distance) / rowHeight * float64(p.SnapPerRow))
	return max(p.SnapMin, min(p.SnapMax, d))
}
