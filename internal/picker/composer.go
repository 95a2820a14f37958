package picker

import (
	"github.com/rs/zerolog"

	"github.com/rshade/tickwheel/internal/wheel"
)

// WheelOptions configures the wheels a composer creates.
type WheelOptions struct {
	Loop        bool
	RowHeight   float64
	VisibleRows int
	Physics     wheel.Physics
	// Viewports optionally supplies host viewports per column.
	Viewports map[Column]wheel.Viewport
}

// Composer binds a set of wheels to one canonical value. It is the only
// writer of that value: wheels propose labels through Reduce and the
// composer decides what the owner is told.
type Composer[V comparable] struct {
	codec  Codec[V]
	state  State[V]
	wheels map[Column]*wheel.Wheel
	notify func(V)
	log    zerolog.Logger
	closed bool
}

// NewComposer creates the wheels for codec centered on initial. When initial
// needs repair the repaired value is reported through notify immediately.
func NewComposer[V comparable](
	codec Codec[V],
	initial V,
	opts WheelOptions,
	notify func(V),
	log zerolog.Logger,
) *Composer[V] {
	value := codec.Normalize(initial)
	c := &Composer[V]{
		codec:  codec,
		state:  State[V]{Wheels: codec.Decompose(value), Canonical: value, Notified: value},
		wheels: make(map[Column]*wheel.Wheel, len(codec.Columns())),
		notify: notify,
		log:    log,
	}

	for _, col := range codec.Columns() {
		logger := log.With().Stringer("column", col).Logger()
		c.wheels[col] = wheel.New(wheel.Config{
			Items:       codec.Items(col),
			Value:       c.state.Wheels[col],
			Loop:        opts.Loop,
			RowHeight:   opts.RowHeight,
			VisibleRows: opts.VisibleRows,
			Physics:     opts.Physics,
			Viewport:    opts.Viewports[col],
			Logger:      &logger,
			OnChange: func(ch wheel.Change) {
				c.Dispatch(WheelChanged{Column: col, Value: ch.Value, Settled: ch.Settled})
			},
		})
	}

	if value != initial {
		c.log.Debug().Interface("input", initial).Interface("value", value).Msg("initial value repaired")
		if notify != nil {
			notify(value)
		}
	}
	return c
}

// Dispatch applies one event and carries out the resulting transition.
func (c *Composer[V]) Dispatch(ev Event) {
	if c.closed {
		return
	}
	t := Reduce(c.codec, c.state, ev)
	c.state = t.State

	for _, p := range t.Push {
		if w, ok := c.wheels[p.Column]; ok {
			w.SetValue(p.Value)
		}
	}

	if t.Notify {
		c.log.Debug().Interface("value", t.State.Notified).Msg("value changed")
		if c.notify != nil {
			c.notify(t.State.Notified)
		}
	}
}

// SetExternal pushes a value from the owner. Equal values are ignored.
func (c *Composer[V]) SetExternal(v V) {
	c.Dispatch(ExternalChanged[V]{Value: v})
}

// Value returns the canonical value the wheels represent.
func (c *Composer[V]) Value() V {
	return c.state.Canonical
}

// State returns a snapshot of the composer state.
func (c *Composer[V]) State() State[V] {
	s := c.state
	s.Wheels = make(Tuple, len(c.state.Wheels))
	for k, v := range c.state.Wheels {
		s.Wheels[k] = v
	}
	return s
}

// Columns lists the wheel columns left to right.
func (c *Composer[V]) Columns() []Column {
	return c.codec.Columns()
}

// Wheel returns the wheel for col, or nil.
func (c *Composer[V]) Wheel(col Column) *wheel.Wheel {
	return c.wheels[col]
}

// Wheels returns the wheels left to right.
func (c *Composer[V]) Wheels() []*wheel.Wheel {
	out := make([]*wheel.Wheel, 0, len(c.wheels))
	for _, col := range c.codec.Columns() {
		out = append(out, c.wheels[col])
	}
	return out
}

// Close tears down every wheel. Further events are ignored.
func (c *Composer[V]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for _, w := range c.wheels {
		w.Close()
	}
}
