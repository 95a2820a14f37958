package wheel

import (
	"time"

	"github.com/rs/zerolog"
)

// Frame is the 60fps frame duration that velocities and friction are normalized to.
const Frame = time.Second / 60

// Default geometry.
const (
	DefaultRowHeight   = 32.0
	DefaultVisibleRows = 5
)

// Default physics constants.
const (
	DefaultFriction           = 0.95
	DefaultMinReleaseVelocity = 1.0 // px per frame
	DefaultMinVelocity        = 0.5 // px per frame
	DefaultVelocityWindow     = 100 * time.Millisecond
	DefaultSnapPerRow         = 150 * time.Millisecond
	DefaultSnapMin            = 100 * time.Millisecond
	DefaultSnapMax            = 250 * time.Millisecond
	DefaultTapThreshold       = 3.0 // px
	DefaultScrollIdle         = 120 * time.Millisecond
)

// Physics holds the tunable constants of the momentum engine.
// Zero fields are replaced by their defaults.
type Physics struct {
	// Friction is the velocity multiplier per 60fps frame, in (0, 1).
	Friction float64
	// MinReleaseVelocity below which a release skips momentum and snaps.
	MinReleaseVelocity float64
	// MinVelocity below which momentum hands over to snapping.
	MinVelocity float64
	// VelocityWindow is how long drag velocity samples are retained.
	VelocityWindow time.Duration
	// SnapPerRow scales the snap tween duration by distance in rows.
	SnapPerRow time.Duration
	// SnapMin and SnapMax clamp the snap tween duration.
	SnapMin time.Duration
	SnapMax time.Duration
	// TapThreshold is the maximum pointer travel, in px, of a tap.
	TapThreshold float64
	// ScrollIdle is the native-scroll inactivity that triggers snapping.
	ScrollIdle time.Duration
}

// DefaultPhysics returns the standard momentum constants.
func DefaultPhysics() Physics {
	return Physics{
		Friction:           DefaultFriction,
		MinReleaseVelocity: DefaultMinReleaseVelocity,
		MinVelocity:        DefaultMinVelocity,
		VelocityWindow:     DefaultVelocityWindow,
		SnapPerRow:         DefaultSnapPerRow,
		SnapMin:            DefaultSnapMin,
		SnapMax:            DefaultSnapMax,
		TapThreshold:       DefaultTapThreshold,
		ScrollIdle:         DefaultScrollIdle,
	}
}

// withDefaults fills zero or invalid fields.
func (p Physics) withDefaults() Physics {
	d := DefaultPhysics()
	if p.Friction <= 0 || p.Friction >= 1 {
		p.Friction = d.Friction
	}
	if p.MinReleaseVelocity <= 0 {
		p.MinReleaseVelocity = d.MinReleaseVelocity
	}
	if p.MinVelocity <= 0 {
		p.MinVelocity = d.MinVelocity
	}
	if p.VelocityWindow <= 0 {
		p.VelocityWindow = d.VelocityWindow
	}
	if p.SnapPerRow <= 0 {
		p.SnapPerRow = d.SnapPerRow
	}
	if p.SnapMin <= 0 {
		p.SnapMin = d.SnapMin
	}
	if p.SnapMax < p.SnapMin {
		p.SnapMax = max(d.SnapMax, p.SnapMin)
	}
	if p.TapThreshold <= 0 {
		p.TapThreshold = d.TapThreshold
	}
	if p.ScrollIdle <= 0 {
		p.ScrollIdle = d.ScrollIdle
	}
	return p
}

// Change is reported to OnChange whenever the centered item changes and
// once more when a snap settles.
type Change struct {
	Index   int
	Value   string
	Settled bool
}

// Config describes one wheel column.
type Config struct {
	// Items are the ordered, unique labels. They are copied on New.
	Items []string
	// Value is the initially centered label; unknown values select index 0.
	Value string
	// Loop enables infinite wrap.
	Loop bool
	// RowHeight is the height of one row in viewport units.
	RowHeight float64
	// VisibleRows is the number of rows in the viewport; forced odd.
	VisibleRows int
	Physics     Physics
	// OnChange receives boundary crossings and settled values.
	OnChange func(Change)
	// Viewport stores the offset; a MemoryViewport is used when nil.
	Viewport Viewport
	// Logger receives debug traces; nil disables them.
	Logger *zerolog.Logger
}
