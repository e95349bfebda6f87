// Copyright (c) 2025 ToeiRei
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// This file resolves a single cron field token into the concrete set of
// integers it denotes. Supported forms: "*", comma lists, dash ranges,
// step expressions ("*/n", "a/n", "a-b/n") and bare integers.

package cron

import (
	"sort"
	"strconv"
	"strings"
)

// Bounds is the closed interval of admissible values for one cron field.
type Bounds struct {
	Min, Max int
}

// Per-field value ranges. Day-of-week uses 0 for Sunday; a literal 7 is
// accepted as a synonym and normalized to 0 during resolution.
var (
	secondBounds     = Bounds{0, 59}
	minuteBounds     = Bounds{0, 59}
	hourBounds       = Bounds{0, 23}
	dayOfMonthBounds = Bounds{1, 31}
	monthBounds      = Bounds{1, 12}
	dayOfWeekBounds  = Bounds{0, 6}
)

// fieldSet is the resolved set of integers a field token denotes.
type fieldSet map[int]bool

func (s fieldSet) contains(v int) bool { return s[v] }

// values returns the members of the set in ascending order.
func (s fieldSet) values() []int {
	out := make([]int, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// parseValue parses a single integer and validates it against the bounds.
// For the day-of-week field a literal 7 denotes Sunday and becomes 0 before
// the range check.
func (b Bounds) parseValue(tok, field string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, parseErrorf("unparsable %s field token %q", field, tok)
	}
	if b == dayOfWeekBounds && v == 7 {
		v = 0
	}
	if v < b.Min || v > b.Max {
		return 0, parseErrorf("%s value %d out of range %d-%d", field, v, b.Min, b.Max)
	}
	return v, nil
}

// resolveField converts one field token into its field set.
func resolveField(tok, field string, b Bounds) (fieldSet, error) {
	if tok == "" {
		return nil, parseErrorf("empty %s field", field)
	}

	// Comma lists are unions of their sub-tokens, which may themselves be
	// ranges or step expressions.
	if strings.Contains(tok, ",") {
		set := fieldSet{}
		for _, part := range strings.Split(tok, ",") {
			sub, err := resolveField(part, field, b)
			if err != nil {
				return nil, err
			}
			for v := range sub {
				set[v] = true
			}
		}
		return set, nil
	}

	if strings.Contains(tok, "/") {
		return b.resolveStep(tok, field)
	}

	if tok == "*" {
		return b.span(b.Min, b.Max, 1), nil
	}

	if strings.Contains(tok, "-") {
		lo, hi, err := b.parseRange(tok, field)
		if err != nil {
			return nil, err
		}
		return b.span(lo, hi, 1), nil
	}

	v, err := b.parseValue(tok, field)
	if err != nil {
		return nil, err
	}
	return fieldSet{v: true}, nil
}

// resolveStep handles the "*/n", "a/n" and "a-b/n" forms.
func (b Bounds) resolveStep(tok, field string) (fieldSet, error) {
	parts := strings.SplitN(tok, "/", 2)
	step, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, parseErrorf("unparsable %s step value %q", field, parts[1])
	}
	if step <= 0 {
		return nil, parseErrorf("%s step value must be positive, got %d", field, step)
	}

	base := parts[0]
	switch {
	case base == "*":
		return b.span(b.Min, b.Max, step), nil
	case strings.Contains(base, "-"):
		lo, hi, err := b.parseRange(base, field)
		if err != nil {
			return nil, err
		}
		return b.span(lo, hi, step), nil
	default:
		lo, err := b.parseValue(base, field)
		if err != nil {
			return nil, err
		}
		return b.span(lo, b.Max, step), nil
	}
}

// parseRange parses an inclusive "a-b" range and validates both bounds.
func (b Bounds) parseRange(tok, field string) (int, int, error) {
	parts := strings.SplitN(tok, "-", 2)
	lo, err := b.parseValue(parts[0], field)
	if err != nil {
		return 0, 0, err
	}
	hi, err := b.parseValue(parts[1], field)
	if err != nil {
		return 0, 0, err
	}
	if lo > hi {
		return 0, 0, parseErrorf("%s range %q has lower bound greater than upper bound", field, tok)
	}
	return lo, hi, nil
}

// span builds the set {lo, lo+step, ...} capped at hi.
func (b Bounds) span(lo, hi, step int) fieldSet {
	set := fieldSet{}
	for v := lo; v <= hi; v += step {
		set[v] = true
	}
	return set
}
