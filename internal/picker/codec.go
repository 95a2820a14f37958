package picker

import (
	"strconv"

	"github.com/rshade/tickwheel/internal/timeconv"
)

// Column identifies one wheel of a picker.
type Column int

// Picker columns.
const (
	ColumnHour Column = iota
	ColumnMinute
	ColumnPeriod
	ColumnMonth
	ColumnDay
	ColumnYear
)

// String returns the column name.
func (c Column) String() string {
	switch c {
	case ColumnHour:
		return "hour"
	case ColumnMinute:
		return "minute"
	case ColumnPeriod:
		return "period"
	case ColumnMonth:
		return "month"
	case ColumnDay:
		return "day"
	case ColumnYear:
		return "year"
	default:
		return "unknown"
	}
}

// HourCycle selects 12-hour or 24-hour time display.
type HourCycle int

// Hour cycles.
const (
	Hour12 HourCycle = iota
	Hour24
)

// String returns "12" or "24".
func (h HourCycle) String() string {
	if h == Hour24 {
		return "24"
	}
	return "12"
}

// Tuple holds one label per column.
type Tuple map[Column]string

// Codec converts between a canonical value and its wheel tuple.
type Codec[V comparable] interface {
	// Columns lists the wheels left to right.
	Columns() []Column
	// Items returns the labels of a column.
	Items(col Column) []string
	// Normalize repairs a canonical value; it never fails.
	Normalize(v V) V
	// Decompose projects a canonical value onto the wheels.
	Decompose(v V) Tuple
	// Compose builds a canonical value from the wheels.
	Compose(t Tuple) V
}

// TimeCodec maps "HH:MM" strings onto hour/minute[/period] wheels.
type TimeCodec struct {
	Cycle HourCycle
	Clock timeconv.Clock
}

// Columns implements Codec.
func (c TimeCodec) Columns() []Column {
	if c.Cycle == Hour24 {
		return []Column{ColumnHour, ColumnMinute}
	}
	return []Column{ColumnHour, ColumnMinute, ColumnPeriod}
}

// Items implements Codec.
func (c TimeCodec) Items(col Column) []string {
	switch col {
	case ColumnHour:
		if c.Cycle == Hour24 {
			return timeconv.Hours24()
		}
		return timeconv.Hours12()
	case ColumnMinute:
		return timeconv.Minutes()
	case ColumnPeriod:
		if c.Cycle == Hour12 {
			return timeconv.Periods()
		}
	case ColumnMonth, ColumnDay, ColumnYear:
	}
	return nil
}

// Normalize implements Codec.
func (c TimeCodec) Normalize(v string) string {
	return timeconv.Normalize(v, c.Clock)
}

// Decompose implements Codec.
func (c TimeCodec) Decompose(v string) Tuple {
	if c.Cycle == Hour24 {
		t := timeconv.ToTuple24(v, c.Clock)
		return Tuple{ColumnHour: t.Hour, ColumnMinute: t.Minute}
	}
	t := timeconv.ToTuple12(v, c.Clock)
	return Tuple{
		ColumnHour:   strconv.Itoa(t.Hour),
		ColumnMinute: t.Minute,
		ColumnPeriod: string(t.Period),
	}
}

// Compose implements Codec.
func (c TimeCodec) Compose(t Tuple) string {
	if c.Cycle == Hour24 {
		return timeconv.FromTuple24(timeconv.Tuple24{Hour: t[ColumnHour], Minute: t[ColumnMinute]}, c.Clock)
	}
	// An unreadable hour becomes 0, which FromTuple12 replaces with the clock's hour.
	hour, _ := strconv.Atoi(t[ColumnHour])
	return timeconv.FromTuple12(timeconv.Tuple12{
		Hour:   hour,
		Minute: t[ColumnMinute],
		Period: timeconv.Period(t[ColumnPeriod]),
	}, c.Clock)
}

// DateCodec maps dates onto month/day/year wheels over a fixed year range.
type DateCodec struct {
	Clock     timeconv.Clock
	FirstYear int
	YearSpan  int
}

// NewDateCodec creates a codec whose years start at the clock's current year.
func NewDateCodec(clock timeconv.Clock, span int) DateCodec {
	if clock == nil {
		clock = timeconv.SystemClock{}
	}
	if span <= 0 {
		span = timeconv.DefaultYearSpan
	}
	return DateCodec{Clock: clock, FirstYear: clock.Now().Year(), YearSpan: span}
}

// Columns implements Codec.
func (c DateCodec) Columns() []Column {
	return []Column{ColumnMonth, ColumnDay, ColumnYear}
}

// Items implements Codec.
func (c DateCodec) Items(col Column) []string {
	switch col {
	case ColumnMonth:
		return timeconv.Months()
	case ColumnDay:
		return timeconv.Days()
	case ColumnYear:
		return timeconv.Years(c.FirstYear, c.YearSpan)
	case ColumnHour, ColumnMinute, ColumnPeriod:
	}
	return nil
}

// Normalize implements Codec. Years outside the wheel range are clamped
// into it, then the day is clamped to the month length.
func (c DateCodec) Normalize(d timeconv.Date) timeconv.Date {
	d = timeconv.NormalizeDate(d, c.Clock)
	if c.YearSpan > 0 {
		d.Year = max(c.FirstYear, min(c.FirstYear+c.YearSpan-1, d.Year))
	}
	d.Day = min(d.Day, timeconv.DaysIn(d.Month, d.Year))
	return d
}

// Decompose implements Codec.
func (c DateCodec) Decompose(d timeconv.Date) Tuple {
	t := timeconv.DateToTuple(c.Normalize(d), c.Clock)
	return Tuple{ColumnMonth: t.Month, ColumnDay: t.Day, ColumnYear: t.Year}
}

// Compose implements Codec.
func (c DateCodec) Compose(t Tuple) timeconv.Date {
	d := timeconv.DateFromTuple(timeconv.DateTuple{
		Month: t[ColumnMonth],
		Day:   t[ColumnDay],
		Year:  t[ColumnYear],
	}, c.Clock)
	return c.Normalize(d)
}
