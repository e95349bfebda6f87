// Copyright (c) 2025 ToeiRei
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package cron

import "time"

// DefaultRunCount is the number of upcoming runs computed when the caller
// does not ask for a specific count.
const DefaultRunCount = 5

// searchCap bounds the forward scan to 1,000,000 candidate seconds
// (roughly 11.5 days). Expressions with no match inside that window yield
// a short or empty result list, never an error.
const searchCap = 1_000_000

// schedule is an Expression with all six fields resolved into value sets.
// The wildcard flags record whether the day fields were the literal `*`,
// which drives the day-of-month / day-of-week OR rule.
type schedule struct {
	seconds    fieldSet
	minutes    fieldSet
	hours      fieldSet
	dayOfMonth fieldSet
	month      fieldSet
	dayOfWeek  fieldSet

	domWildcard bool
	dowWildcard bool
}

// compile resolves every field eagerly; the first invalid field aborts.
func (e Expression) compile() (*schedule, error) {
	s := &schedule{
		domWildcard: e.DayOfMonth == "*",
		dowWildcard: e.DayOfWeek == "*",
	}
	var err error
	if s.seconds, err = resolveField(e.Seconds, "seconds", secondBounds); err != nil {
		return nil, err
	}
	if s.minutes, err = resolveField(e.Minutes, "minutes", minuteBounds); err != nil {
		return nil, err
	}
	if s.hours, err = resolveField(e.Hours, "hours", hourBounds); err != nil {
		return nil, err
	}
	if s.dayOfMonth, err = resolveField(e.DayOfMonth, "day-of-month", dayOfMonthBounds); err != nil {
		return nil, err
	}
	if s.month, err = resolveField(e.Month, "month", monthBounds); err != nil {
		return nil, err
	}
	if s.dayOfWeek, err = resolveField(e.DayOfWeek, "day-of-week", dayOfWeekBounds); err != nil {
		return nil, err
	}
	return s, nil
}

// matches reports whether the calendar components of t satisfy the
// schedule. Components are read in t's location.
//
// The day predicate follows POSIX cron: when both day fields are
// constrained, a date matches if it satisfies either one. This OR is
// intentional and must not be tightened to AND.
func (s *schedule) matches(t time.Time) bool {
	if !s.seconds.contains(t.Second()) ||
		!s.minutes.contains(t.Minute()) ||
		!s.hours.contains(t.Hour()) ||
		!s.month.contains(int(t.Month())) {
		return false
	}

	domMatch := s.dayOfMonth.contains(t.Day())
	dowMatch := s.dayOfWeek.contains(int(t.Weekday()))
	switch {
	case s.domWildcard && s.dowWildcard:
		return true
	case s.domWildcard:
		return dowMatch
	case s.dowWildcard:
		return domMatch
	default:
		return domMatch || dowMatch
	}
}

// Next computes up to count run instants strictly after from, in from's
// location, by scanning forward one second at a time. When the search cap
// is exhausted first, the partial (possibly empty) list is returned with a
// nil error. The result is deterministic for identical inputs.
func (e Expression) Next(from time.Time, count int) ([]time.Time, error) {
	sched, err := e.compile()
	if err != nil {
		return nil, err
	}

	runs := make([]time.Time, 0, max(count, 0))
	candidate := from.Truncate(time.Second)
	for i := 0; i < searchCap && len(runs) < count; i++ {
		candidate = candidate.Add(time.Second)
		if !sched.matches(candidate) {
			continue
		}
		// One-second granularity makes duplicates impossible, but guard
		// the append anyway so the output list is strictly increasing.
		if n := len(runs); n > 0 && !candidate.After(runs[n-1]) {
			continue
		}
		runs = append(runs, candidate)
	}
	return runs, nil
}
