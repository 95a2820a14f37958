// Package timeconv converts between the canonical picker values and the
// per-wheel tuples shown by the time and date pickers.
//
// The canonical time is a zero-padded 24-hour "HH:MM" string. The 12-hour
// tuple {hour, minute, period} and the 24-hour tuple {hour, minute} are both
// projections of that string; every function here is total and never
// returns an error. Unparseable parts are replaced by the clock's wall time.
package timeconv

import (
	"fmt"
	"strconv"
	"strings"
)

// Period is the AM/PM half of a 12-hour clock.
type Period string

// Day periods.
const (
	AM Period = "AM"
	PM Period = "PM"
)

// Tuple12 is the 12-hour wheel state. Hour is 1-12, Minute is "00".."59".
type Tuple12 struct {
	Hour   int
	Minute string
	Period Period
}

// Tuple24 is the 24-hour wheel state. Hour is "00".."23", Minute is "00".."59".
type Tuple24 struct {
	Hour   string
	Minute string
}

// Normalize parses a canonical "HH:MM" string permissively and returns it in
// canonical form. A missing, non-numeric or out-of-range hour or minute is
// replaced by the corresponding part of clock.Now().
func Normalize(s string, clock Clock) string {
	h, m := parse(s, clock)
	return format(h, m)
}

// Valid reports whether s is already a canonical "HH:MM" value.
func Valid(s string) bool {
	if len(s) != len("00:00") || s[2] != ':' {
		return false
	}
	h, hok := atoiRange(s[:2], 0, hoursPerDay-1)
	m, mok := atoiRange(s[3:], 0, minutesPerHour-1)
	return hok && mok && format(h, m) == s
}

// ToTuple12 projects a canonical time onto the 12-hour wheels.
// Hour 0 maps to 12 AM and hour 12 maps to 12 PM.
func ToTuple12(canonical string, clock Clock) Tuple12 {
	h, m := parse(canonical, clock)
	period := AM
	if h >= hoursPerPeriod {
		period = PM
	}
	h12 := h % hoursPerPeriod
	if h12 == 0 {
		h12 = hoursPerPeriod
	}
	return Tuple12{Hour: h12, Minute: fmt.Sprintf("%02d", m), Period: period}
}

// FromTuple12 composes a canonical time from the 12-hour wheels.
func FromTuple12(t Tuple12, clock Clock) string {
	now := orSystem(clock).Now()

	h := t.Hour
	if h < 1 || h > hoursPerPeriod {
		h = now.Hour() % hoursPerPeriod
		if h == 0 {
			h = hoursPerPeriod
		}
	}
	h %= hoursPerPeriod
	switch t.Period {
	case PM:
		h += hoursPerPeriod
	case AM:
	default:
		if now.Hour() >= hoursPerPeriod {
			h += hoursPerPeriod
		}
	}

	return format(h, wheelMinute(t.Minute, now.Minute()))
}

// ToTuple24 projects a canonical time onto the 24-hour wheels.
func ToTuple24(canonical string, clock Clock) Tuple24 {
	h, m := parse(canonical, clock)
	return Tuple24{Hour: fmt.Sprintf("%02d", h), Minute: fmt.Sprintf("%02d", m)}
}

// FromTuple24 composes a canonical time from the 24-hour wheels.
func FromTuple24(t Tuple24, clock Clock) string {
	now := orSystem(clock).Now()
	h, ok := atoiRange(t.Hour, 0, hoursPerDay-1)
	if !ok {
		h = now.Hour()
	}
	return format(h, wheelMinute(t.Minute, now.Minute()))
}

// parse splits s into hour and minute, substituting wall-clock parts.
func parse(s string, clock Clock) (int, int) {
	now := orSystem(clock).Now()
	hour, minute := now.Hour(), now.Minute()

	parts := strings.SplitN(strings.TrimSpace(s), ":", 3)
	if h, ok := atoiRange(parts[0], 0, hoursPerDay-1); ok {
		hour = h
	}
	if len(parts) > 1 {
		if m, ok := atoiRange(parts[1], 0, minutesPerHour-1); ok {
			minute = m
		}
	}
	return hour, minute
}

// wheelMinute reads a minute label. Numeric values are clamped into 0-59;
// anything else falls back to fallback.
func wheelMinute(s string, fallback int) int {
	m, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return max(0, min(minutesPerHour-1, m))
}

func atoiRange(s string, lo, hi int) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, false
	}
	return n, true
}

func format(h, m int) string {
	return fmt.Sprintf("%02d:%02d", h, m)
}
