// Copyright (c) 2025 ToeiRei
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package cron

import "fmt"

// ParseError is returned for any expression or field that does not conform
// to the supported cron grammar. All parse failures share this one type and
// are distinguished by their message.
type ParseError struct {
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string { return e.Reason }

// parseErrorf builds a ParseError from a format string.
func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}
