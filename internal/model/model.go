// Copyright (c) 2025 ToeiRei
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the core data structures shared between the
// storage layer and the user interfaces.
package model // import "github.com/toeirei/cronlens/internal/model"

import (
	"fmt"
	"time"
)

// HistoryEntry records one successful expression evaluation. It exists for
// the host application only; the cron engine itself persists nothing.
type HistoryEntry struct {
	ID          int64     // The primary key for the entry.
	Expression  string    // The raw expression as the user typed it.
	Description string    // The localized description at evaluation time.
	NextRun     string    // First computed run in RFC 3339, empty when none.
	CreatedAt   time.Time // When the evaluation happened.
}

// String renders the entry for list output.
func (h HistoryEntry) String() string {
	if h.NextRun == "" {
		return fmt.Sprintf("%s — %s", h.Expression, h.Description)
	}
	return fmt.Sprintf("%s — %s (next: %s)", h.Expression, h.Description, h.NextRun)
}
