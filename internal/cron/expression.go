// Copyright (c) 2025 ToeiRei
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cron parses cron expressions, computes upcoming run instants and
// renders localized recurrence descriptions. The package holds no state:
// every call is a pure computation over its inputs.
//
// An expression has five or six whitespace-separated fields:
//
//	[seconds] minutes hours day-of-month month day-of-week
//
// When only five fields are given, the seconds field defaults to "0".
// The `?` character (half- or full-width) is a synonym for `*`.
package cron // import "github.com/toeirei/cronlens/internal/cron"

import "strings"

// wildcardReplacer normalizes the `?` no-constraint synonyms to `*` before
// the expression is split into fields.
var wildcardReplacer = strings.NewReplacer("？", "*", "?", "*")

// Expression holds the six raw field strings of a normalized cron
// expression. It is an immutable value type; construct it with Parse.
type Expression struct {
	Seconds    string
	Minutes    string
	Hours      string
	DayOfMonth string
	Month      string
	DayOfWeek  string
}

// Parse normalizes and splits a raw cron string into an Expression.
// It accepts five fields (minutes first) or six fields (seconds first);
// any other count is a ParseError.
func Parse(raw string) (Expression, error) {
	fields := strings.Fields(wildcardReplacer.Replace(raw))
	switch len(fields) {
	case 5:
		fields = append([]string{"0"}, fields...)
	case 6:
		// Seconds were given explicitly.
	default:
		return Expression{}, parseErrorf("expected 5 or 6 fields, got %d", len(fields))
	}
	return Expression{
		Seconds:    fields[0],
		Minutes:    fields[1],
		Hours:      fields[2],
		DayOfMonth: fields[3],
		Month:      fields[4],
		DayOfWeek:  fields[5],
	}, nil
}

// String reassembles the six fields into a canonical 6-field expression.
func (e Expression) String() string {
	return strings.Join([]string{e.Seconds, e.Minutes, e.Hours, e.DayOfMonth, e.Month, e.DayOfWeek}, " ")
}
