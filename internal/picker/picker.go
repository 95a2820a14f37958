package picker

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rshade/tickwheel/internal/logging"
	"github.com/rshade/tickwheel/internal/timeconv"
	"github.com/rshade/tickwheel/internal/wheel"
)

// View selects which editor a picker shows.
type View int

// Picker views.
const (
	ViewTime View = iota
	ViewDate
)

// String returns the view name.
func (v View) String() string {
	if v == ViewDate {
		return "date"
	}
	return "time"
}

// Callbacks are the upward events of a picker. Any of them may be nil.
type Callbacks struct {
	OnTimeChange      func(string)
	OnDateChange      func(timeconv.Date)
	OnClose           func()
	OnConfirm         func()
	OnRecurringChange func(bool)
}

// Options configures a picker.
type Options struct {
	Cycle       HourCycle
	Loop        bool
	RowHeight   float64
	VisibleRows int
	Physics     wheel.Physics
	// YearSpan is the number of years on the year wheel, starting at the
	// clock's current year.
	YearSpan  int
	Clock     timeconv.Clock
	Recurring bool
	Viewports map[Column]wheel.Viewport
}

func (o Options) wheels() WheelOptions {
	return WheelOptions{
		Loop:        o.Loop,
		RowHeight:   o.RowHeight,
		VisibleRows: o.VisibleRows,
		Physics:     o.Physics,
		Viewports:   o.Viewports,
	}
}

func (o Options) clock() timeconv.Clock {
	if o.Clock == nil {
		return timeconv.SystemClock{}
	}
	return o.Clock
}

// Picker edits an externally owned time and/or date through scroll wheels.
// Every change is pushed to the callbacks as it happens; closing never rolls
// back.
type Picker struct {
	time *Composer[string]
	date *Composer[timeconv.Date]

	view      View
	recurring bool
	closed    bool
	cb        Callbacks
	log       zerolog.Logger
	session   string
}

// NewTimePicker creates a picker over an "HH:MM" value.
func NewTimePicker(ctx context.Context, value string, opts Options, cb Callbacks) *Picker {
	p := newPicker(ctx, "time", opts, cb)
	p.time = p.newTime(value, opts)
	return p
}

// NewDatePicker creates a picker over a calendar date.
func NewDatePicker(ctx context.Context, value timeconv.Date, opts Options, cb Callbacks) *Picker {
	p := newPicker(ctx, "date", opts, cb)
	p.view = ViewDate
	p.date = p.newDate(value, opts)
	return p
}

// NewDateTimePicker creates a picker with both a time and a date view,
// starting on the time view.
func NewDateTimePicker(
	ctx context.Context,
	value string,
	date timeconv.Date,
	opts Options,
	cb Callbacks,
) *Picker {
	p := newPicker(ctx, "datetime", opts, cb)
	p.time = p.newTime(value, opts)
	p.date = p.newDate(date, opts)
	return p
}

func newPicker(ctx context.Context, kind string, opts Options, cb Callbacks) *Picker {
	session := logging.NewID()
	log := logging.FromContext(ctx).With().
		Str("component", "picker").
		Str("kind", kind).
		Str("session_id", session).
		Logger()
	log.Debug().Stringer("hour_cycle", opts.Cycle).Bool("loop", opts.Loop).Msg("picker opened")
	return &Picker{recurring: opts.Recurring, cb: cb, log: log, session: session}
}

func (p *Picker) newTime(value string, opts Options) *Composer[string] {
	codec := TimeCodec{Cycle: opts.Cycle, Clock: opts.clock()}
	return NewComposer[string](codec, value, opts.wheels(), func(v string) {
		if p.cb.OnTimeChange != nil {
			p.cb.OnTimeChange(v)
		}
	}, p.log)
}

func (p *Picker) newDate(value timeconv.Date, opts Options) *Composer[timeconv.Date] {
	codec := NewDateCodec(opts.clock(), opts.YearSpan)
	return NewComposer[timeconv.Date](codec, value, opts.wheels(), func(v timeconv.Date) {
		if p.cb.OnDateChange != nil {
			p.cb.OnDateChange(v)
		}
	}, p.log)
}

// Session returns the picker's session ID, used to correlate log lines.
func (p *Picker) Session() string {
	return p.session
}

// HasTime reports whether the picker edits a time of day.
func (p *Picker) HasTime() bool {
	return p.time != nil
}

// HasDate reports whether the picker edits a date.
func (p *Picker) HasDate() bool {
	return p.date != nil
}

// Time returns the canonical "HH:MM" value, or "" without a time view.
func (p *Picker) Time() string {
	if p.time == nil {
		return ""
	}
	return p.time.Value()
}

// Date returns the canonical date, or the zero Date without a date view.
func (p *Picker) Date() timeconv.Date {
	if p.date == nil {
		return timeconv.Date{}
	}
	return p.date.Value()
}

// SetTime pushes an external time value into the wheels.
func (p *Picker) SetTime(v string) {
	if p.time != nil {
		p.time.SetExternal(v)
	}
}

// SetDate pushes an external date into the wheels.
func (p *Picker) SetDate(d timeconv.Date) {
	if p.date != nil {
		p.date.SetExternal(d)
	}
}

// View returns the visible editor.
func (p *Picker) View() View {
	return p.view
}

// SetView switches the visible editor. Views the picker lacks are ignored.
func (p *Picker) SetView(v View) {
	if (v == ViewTime && p.time == nil) || (v == ViewDate && p.date == nil) {
		return
	}
	p.view = v
}

// ToggleView flips between the time and date editors.
func (p *Picker) ToggleView() {
	if p.view == ViewTime {
		p.SetView(ViewDate)
		return
	}
	p.SetView(ViewTime)
}

// Columns returns the columns of the visible editor.
func (p *Picker) Columns() []Column {
	if p.view == ViewDate {
		return p.date.Columns()
	}
	return p.time.Columns()
}

// Wheel returns the wheel for col in the visible editor.
func (p *Picker) Wheel(col Column) *wheel.Wheel {
	if p.view == ViewDate {
		return p.date.Wheel(col)
	}
	return p.time.Wheel(col)
}

// Wheels returns every wheel of the picker across views.
func (p *Picker) Wheels() []*wheel.Wheel {
	var out []*wheel.Wheel
	if p.time != nil {
		out = append(out, p.time.Wheels()...)
	}
	if p.date != nil {
		out = append(out, p.date.Wheels()...)
	}
	return out
}

// Recurring returns the recurring flag.
func (p *Picker) Recurring() bool {
	return p.recurring
}

// SetRecurring sets the recurring flag and reports a change.
func (p *Picker) SetRecurring(on bool) {
	if p.closed || on == p.recurring {
		return
	}
	p.recurring = on
	p.log.Debug().Bool("recurring", on).Msg("recurring changed")
	if p.cb.OnRecurringChange != nil {
		p.cb.OnRecurringChange(on)
	}
}

// Closed reports whether the picker has been closed.
func (p *Picker) Closed() bool {
	return p.closed
}

// Confirm fires OnConfirm and then closes the picker.
func (p *Picker) Confirm() {
	if p.closed {
		return
	}
	p.log.Debug().Str("time", p.Time()).Stringer("date", p.Date()).Msg("picker confirmed")
	if p.cb.OnConfirm != nil {
		p.cb.OnConfirm()
	}
	p.Close()
}

// Close tears down the wheels and fires OnClose once. Values already pushed
// to the owner are kept.
func (p *Picker) Close() {
	if p.closed {
		return
	}
	p.closed = true
	if p.time != nil {
		p.time.Close()
	}
	if p.date != nil {
		p.date.Close()
	}
	p.log.Debug().Msg("picker closed")
	if p.cb.OnClose != nil {
		p.cb.OnClose()
	}
}
