// Copyright (c) 2025 ToeiRei
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package cron

import (
	"strings"
	"testing"
)

func TestParseFiveFieldsDefaultsSeconds(t *testing.T) {
	tests := []struct {
		expr string
	}{
		{"* * * * *"},
		{"*/5 * * * *"},
		{"0 3 * * *"},
		{"30 4 1,15 * *"},
		{"0 8 * 1-6 1,3,5"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			e, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.expr, err)
			}
			if e.Seconds != "0" {
				t.Errorf("expected seconds %q, got %q", "0", e.Seconds)
			}
		})
	}
}

func TestParseSixFields(t *testing.T) {
	e, err := Parse("15 */5 8 * * 1")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if e.Seconds != "15" || e.Minutes != "*/5" || e.Hours != "8" ||
		e.DayOfMonth != "*" || e.Month != "*" || e.DayOfWeek != "1" {
		t.Errorf("unexpected field mapping: %+v", e)
	}
}

func TestParseNormalizesQuestionMarks(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"half-width", "0 0 ? * ?"},
		{"full-width", "0 0 ？ * ？"},
		{"mixed", "0 0 ? * ？"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.expr, err)
			}
			if e.DayOfMonth != "*" || e.DayOfWeek != "*" {
				t.Errorf("expected wildcards after normalization, got dom=%q dow=%q", e.DayOfMonth, e.DayOfWeek)
			}
		})
	}
}

func TestParseRejectsWrongFieldCount(t *testing.T) {
	tests := []struct {
		expr    string
		wantMsg string
	}{
		{"abc", "expected 5 or 6 fields, got 1"},
		{"", "expected 5 or 6 fields, got 0"},
		{"* * *", "expected 5 or 6 fields, got 3"},
		{"* * * * * * *", "expected 5 or 6 fields, got 7"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Parse(tt.expr)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tt.expr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestParseCollapsesWhitespace(t *testing.T) {
	e, err := Parse("  */5   *  * *    *  ")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if e.Minutes != "*/5" {
		t.Errorf("expected minutes %q, got %q", "*/5", e.Minutes)
	}
}

func TestExpressionString(t *testing.T) {
	e, err := Parse("*/5 * * * *")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := e.String(); got != "0 */5 * * * *" {
		t.Errorf("expected %q, got %q", "0 */5 * * * *", got)
	}
}
