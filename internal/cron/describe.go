// Copyright (c) 2025 ToeiRei
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// This file renders a cron expression as a single localized sentence.
// It works on the raw field strings rather than the resolved sets so that
// list/range/step structure survives into the wording, but it still
// compiles the expression first so malformed input fails exactly like the
// calculator does.

package cron

import (
	"strconv"
	"strings"

	"github.com/toeirei/cronlens/internal/i18n"
)

// Describe returns a human-readable, localized description of the
// recurrence pattern, e.g. "every 5 minutes" or
// "at hour 3, on day-of-month 1 or on Monday, in February".
func (e Expression) Describe() (string, error) {
	if _, err := e.compile(); err != nil {
		return "", err
	}

	var clauses []string

	// Common patterns get a compact wording.
	switch {
	case e.Hours == "*" && e.Minutes == "*":
		clauses = append(clauses, i18n.T("cron.describe.every_minute"))
	case e.Hours == "*" && isWildcardStep(e.Minutes) && (e.Seconds == "*" || e.Seconds == "0"):
		step, _ := strconv.Atoi(strings.TrimPrefix(e.Minutes, "*/"))
		clauses = append(clauses, i18n.T("cron.describe.every_n_minutes", step))
	default:
		if e.Hours != "*" {
			clauses = append(clauses, i18n.T("cron.describe.at_hour", describeToken(e.Hours, hourBounds, numericName)))
		}
		if e.Minutes != "*" {
			clauses = append(clauses, i18n.T("cron.describe.at_minute", describeToken(e.Minutes, minuteBounds, numericName)))
		}
		if e.Seconds != "*" && e.Seconds != "0" {
			clauses = append(clauses, i18n.T("cron.describe.at_second", describeToken(e.Seconds, secondBounds, numericName)))
		}
	}

	// Day clause. When both day fields are constrained the schedule fires
	// on either condition, and the sentence says so explicitly.
	domConstrained := e.DayOfMonth != "*"
	dowConstrained := e.DayOfWeek != "*"
	switch {
	case domConstrained && dowConstrained:
		clauses = append(clauses, i18n.T("cron.describe.on_dom_or_dow",
			describeToken(e.DayOfMonth, dayOfMonthBounds, numericName),
			describeToken(e.DayOfWeek, dayOfWeekBounds, weekdayName)))
	case domConstrained:
		clauses = append(clauses, i18n.T("cron.describe.on_day_of_month",
			describeToken(e.DayOfMonth, dayOfMonthBounds, numericName)))
	case dowConstrained:
		clauses = append(clauses, i18n.T("cron.describe.on_weekday",
			describeToken(e.DayOfWeek, dayOfWeekBounds, weekdayName)))
	}

	if e.Month != "*" {
		clauses = append(clauses, i18n.T("cron.describe.in_month",
			describeToken(e.Month, monthBounds, monthName)))
	}

	return strings.Join(clauses, ", "), nil
}

// isWildcardStep reports whether tok has the exact form "*/n".
func isWildcardStep(tok string) bool {
	if !strings.HasPrefix(tok, "*/") {
		return false
	}
	n, err := strconv.Atoi(tok[2:])
	return err == nil && n > 0
}

// numericName renders a field value as its decimal form.
func numericName(v int) string { return strconv.Itoa(v) }

// weekdayName renders a day-of-week value as its localized weekday name.
// A literal 7 denotes Sunday, same as in resolution.
func weekdayName(v int) string {
	if v == 7 {
		v = 0
	}
	return i18n.T("cron.weekday." + strconv.Itoa(v))
}

// monthName renders a month value as its localized calendar name.
func monthName(v int) string {
	return i18n.T("cron.month." + strconv.Itoa(v))
}

// describeToken renders one already-validated field token, preserving its
// list/range/step structure.
func describeToken(tok string, b Bounds, name func(int) string) string {
	if strings.Contains(tok, ",") {
		parts := strings.Split(tok, ",")
		for i, part := range parts {
			parts[i] = describeToken(part, b, name)
		}
		return strings.Join(parts, ", ")
	}

	if strings.Contains(tok, "/") {
		parts := strings.SplitN(tok, "/", 2)
		step, _ := strconv.Atoi(parts[1])
		base := parts[0]
		switch {
		case base == "*":
			return i18n.T("cron.describe.step_all", step)
		case strings.Contains(base, "-"):
			bounds := strings.SplitN(base, "-", 2)
			lo, _ := strconv.Atoi(bounds[0])
			hi, _ := strconv.Atoi(bounds[1])
			return i18n.T("cron.describe.step_range", step, name(lo), name(hi))
		default:
			lo, _ := strconv.Atoi(base)
			return i18n.T("cron.describe.step_from", step, name(lo))
		}
	}

	if strings.Contains(tok, "-") {
		bounds := strings.SplitN(tok, "-", 2)
		lo, _ := strconv.Atoi(bounds[0])
		hi, _ := strconv.Atoi(bounds[1])
		return i18n.T("cron.describe.range", name(lo), name(hi))
	}

	v, _ := strconv.Atoi(tok)
	return name(v)
}
