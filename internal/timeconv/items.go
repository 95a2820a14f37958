package timeconv

import (
	"fmt"
	"strconv"
)

// DefaultYearSpan is the number of selectable years starting at the current year.
const DefaultYearSpan = 10

const (
	hoursPerDay    = 24
	hoursPerPeriod = 12
	minutesPerHour = 60
	maxDaysInMonth = 31
	monthsPerYear  = 12
)

// monthLabels are the short month names in calendar order.
//
//nolint:gochecknoglobals // Immutable lookup table.
var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Hours12 returns "1".."12".
func Hours12() []string {
	out := make([]string, 0, hoursPerPeriod)
	for h := 1; h <= hoursPerPeriod; h++ {
		out = append(out, strconv.Itoa(h))
	}
	return out
}

// Hours24 returns "00".."23".
func Hours24() []string {
	return padded(hoursPerDay)
}

// Minutes returns "00".."59".
func Minutes() []string {
	return padded(minutesPerHour)
}

// Periods returns the two day periods, AM first.
func Periods() []string {
	return []string{string(AM), string(PM)}
}

// Months returns "Jan".."Dec".
func Months() []string {
	out := make([]string, len(monthLabels))
	copy(out, monthLabels)
	return out
}

// Days returns "1".."31". The list never shrinks with the month; the date
// composer clamps instead.
func Days() []string {
	out := make([]string, 0, maxDaysInMonth)
	for d := 1; d <= maxDaysInMonth; d++ {
		out = append(out, strconv.Itoa(d))
	}
	return out
}

// Years returns count consecutive year labels starting at from.
func Years(from, count int) []string {
	if count <= 0 {
		return nil
	}
	out := make([]string, 0, count)
	for y := from; y < from+count; y++ {
		out = append(out, strconv.Itoa(y))
	}
	return out
}

func padded(n int) []string {
	out := make([]string, 0, n)
	for i := range n {
		out = append(out, fmt.Sprintf("%02d", i))
	}
	return out
}
