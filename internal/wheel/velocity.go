package wheel

import "time"

// velocitySample is one instantaneous drag velocity, in px per frame.
type velocitySample struct {
	velocity float64
	at       time.Time
}

// VelocityTracker keeps drag velocity samples inside a rolling window and
// derives the release velocity from them.
type VelocityTracker struct {
	window  time.Duration
	samples []velocitySample
}

// NewVelocityTracker creates a tracker retaining samples for window.
func NewVelocityTracker(window time.Duration) *VelocityTracker {
	return &VelocityTracker{
		window:  window,
		samples: make([]velocitySample, 0, 16),
	}
}

// Add records a sample and discards samples older than the window.
func (t *VelocityTracker) Add(velocity float64, at time.Time) {
	t.samples = append(t.samples, velocitySample{velocity: velocity, at: at})
	t.prune(at)
}

// Reset clears all samples.
func (t *VelocityTracker) Reset() {
	t.samples = t.samples[:0]
}

// Len returns the number of retained samples.
func (t *VelocityTracker) Len() int {
	return len(t.samples)
}

// Release returns the weighted average of the samples as seen at now.
// A sample's weight falls linearly from 1 (age 0) to 0 (age == window).
func (t *VelocityTracker) Release(now time.Time) float64 {
	var sum, weights float64
	for _, s := range t.samples {
		age := now.Sub(s.at)
		if age < 0 {
			age = 0
		}
		w := 1 - float64(age)/float64(t.window)
		if w <= 0 {
			continue
		}
		sum += s.velocity * w
		weights += w
	}
	if weights == 0 {
		return 0
	}
	return sum / weights
}

func (t *VelocityTracker) prune(now time.Time) {
	cutoff := now.Add(-t.window)
	kept := t.samples[:0]
	for _, s := range t.samples {
		if s.at.After(cutoff) {
			kept = append(kept, s)
		}
	}
	t.samples = kept
}
