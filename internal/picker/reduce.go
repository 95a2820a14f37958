package picker

import "maps"

// Event is an input to Reduce: ExternalChanged or WheelChanged.
type Event interface {
	isEvent()
}

// ExternalChanged reports a new canonical value from the owner of the value.
type ExternalChanged[V comparable] struct {
	Value V
}

// WheelChanged reports a wheel's centered label.
type WheelChanged struct {
	Column  Column
	Value   string
	Settled bool
}

func (ExternalChanged[V]) isEvent() {}
func (WheelChanged) isEvent()       {}

// State is the composer's view of the wheels and the canonical value.
type State[V comparable] struct {
	// Wheels mirrors what each wheel currently shows.
	Wheels Tuple
	// Canonical is the value the wheels represent.
	Canonical V
	// Notified is the last value the owner is known to hold.
	Notified V
}

// Push is a value to write into a wheel.
type Push struct {
	Column Column
	Value  string
}

// Transition is the result of applying one event.
type Transition[V comparable] struct {
	State  State[V]
	Push   []Push
	Notify bool
}

// Reduce applies ev to s and returns the next consistent state together with
// the wheel writes and whether the owner must be told about State.Notified.
//
// An external value equal to the current canonical value is a no-op, so an
// owner echoing back a notification never disturbs the wheels. A wheel change
// recomposes the canonical value. While the wheel is still moving only the
// canonical value is clamped and the wheels keep what they show, so passing
// through a short month does not cost the day; corrections are pushed once
// the wheel settles.
func Reduce[V comparable](c Codec[V], s State[V], ev Event) Transition[V] {
	next := State[V]{Wheels: maps.Clone(s.Wheels), Canonical: s.Canonical, Notified: s.Notified}
	if next.Wheels == nil {
		next.Wheels = Tuple{}
	}
	t := Transition[V]{}

	switch e := ev.(type) {
	case ExternalChanged[V]:
		value := c.Normalize(e.Value)
		if value == s.Canonical && value == e.Value {
			next.Notified = value
			break
		}
		next.Canonical = value
		t.Push = diff(c, next.Wheels, c.Decompose(value))
		next.Notified = e.Value
		if value != e.Value {
			next.Notified = value
			t.Notify = true
		}

	case WheelChanged:
		next.Wheels[e.Column] = e.Value
		value := c.Compose(next.Wheels)
		next.Canonical = value
		if e.Settled {
			t.Push = diff(c, next.Wheels, c.Decompose(value))
		}

		if value != next.Notified {
			next.Notified = value
			t.Notify = true
		}
	}

	t.State = next
	return t
}

// diff writes want into have column by column and returns the pushes needed.
func diff[V comparable](c Codec[V], have, want Tuple) []Push {
	var pushes []Push
	for _, col := range c.Columns() {
		if have[col] != want[col] {
			have[col] = want[col]
			pushes = append(pushes, Push{Column: col, Value: want[col]})
		}
	}
	return pushes
}
