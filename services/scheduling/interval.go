// Package scheduling holds the pure availability core: interval
// predicates, the working-interval resolver, the single-window
// availability oracle and the slot generator. Nothing in this package
// performs I/O or mutates its inputs; callers fetch profiles and
// bookings up front and pass them in.
package scheduling

import (
	"errors"
	"time"
)

// ErrInvalidInput marks malformed arguments (non-positive duration,
// start >= end, cross-midnight windows). Wrap it with context via
// fmt.Errorf("...: %w", ErrInvalidInput).
var ErrInvalidInput = errors.New("invalid input")

// Overlaps reports whether the half-open timestamp intervals
// [aStart, aEnd) and [bStart, bEnd) intersect. A booking that ends
// exactly when another starts does not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// startOfDay returns midnight of t's calendar date in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// clockMinutes returns the minutes elapsed since midnight of day at t,
// rounded down. For a timestamp on the following day this exceeds
// 24*60, which the oracle uses to reject cross-midnight windows.
func clockMinutes(day, t time.Time) int {
	return int(t.Sub(day) / time.Minute)
}

// clockMinutesCeil rounds up instead, so a window end falling between
// whole minutes is not shortened by truncation when checked against a
// working interval's close.
func clockMinutesCeil(day, t time.Time) int {
	d := t.Sub(day)
	m := int(d / time.Minute)
	if d%time.Minute != 0 {
		m++
	}
	return m
}
