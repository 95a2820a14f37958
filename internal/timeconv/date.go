package timeconv

import (
	"strconv"
	"strings"
	"time"
)

// Date is the canonical calendar value edited by the date picker.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateTuple is the month/day/year wheel state, e.g. {"Feb", "29", "2028"}.
type DateTuple struct {
	Month string
	Day   string
	Year  string
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ZeroBasedMonth returns the month as 0-11.
func (d Date) ZeroBasedMonth() int {
	return int(d.Month) - 1
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time(time.UTC).Format(time.DateOnly)
}

// DaysIn returns the number of days in month of year.
func DaysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NormalizeDate returns d with the day clamped to the month length. A year
// below 1, a month outside 1-12 or a day below 1 is replaced by the clock's
// current date.
func NormalizeDate(d Date, clock Clock) Date {
	if d.Year < 1 || d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return DateOf(orSystem(clock).Now())
	}
	d.Day = min(d.Day, DaysIn(d.Month, d.Year))
	return d
}

// ParseDate reads a YYYY-MM-DD string, substituting the clock's date when it
// cannot be parsed.
func ParseDate(s string, clock Clock) Date {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return DateOf(orSystem(clock).Now())
	}
	return DateOf(t)
}

// DateToTuple projects a canonical date onto the month/day/year wheels.
func DateToTuple(d Date, clock Clock) DateTuple {
	d = NormalizeDate(d, clock)
	return DateTuple{
		Month: monthLabels[d.Month-1],
		Day:   strconv.Itoa(d.Day),
		Year:  strconv.Itoa(d.Year),
	}
}

// DateFromTuple composes a canonical date from the wheels. The day is clamped
// to the last valid day of the selected month and year; unreadable parts fall
// back to the clock's current date.
func DateFromTuple(t DateTuple, clock Clock) Date {
	now := DateOf(orSystem(clock).Now())

	month := now.Month
	for i, label := range monthLabels {
		if strings.EqualFold(label, strings.TrimSpace(t.Month)) {
			month = time.Month(i + 1)
			break
		}
	}

	year, err := strconv.Atoi(strings.TrimSpace(t.Year))
	if err != nil || year < 1 {
		year = now.Year
	}

	day, err := strconv.Atoi(strings.TrimSpace(t.Day))
	if err != nil || day < 1 {
		day = now.Day
	}

	return Date{Year: year, Month: month, Day: min(day, DaysIn(month, year))}
}
