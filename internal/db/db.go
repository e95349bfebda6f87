// Copyright (c) 2025 ToeiRei
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// package db provides the data access layer for the Cronlens evaluation
// history. It keeps a local SQLite database behind a small Store interface
// so the user interfaces never touch SQL directly.
package db // import "github.com/toeirei/cronlens/internal/db"

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/toeirei/cronlens/internal/model"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"
)

// Store is the interface the UIs use to read and write evaluation history.
type Store interface {
	// Add records one evaluation.
	Add(ctx context.Context, entry model.HistoryEntry) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]model.HistoryEntry, error)
	// All returns every entry, oldest first, for export.
	All(ctx context.Context) ([]model.HistoryEntry, error)
	// Clear deletes all entries.
	Clear(ctx context.Context) error
	// Close releases the underlying database handle.
	Close() error
}

// package-level variables
var (
	store Store
	// sqlOpenFunc allows tests to override database opening behavior.
	sqlOpenFunc = sql.Open
)

// New opens (or creates) the history database at dsn and sets the
// package-level store used by the helpers below.
func New(dsn string) (Store, error) {
	s, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	store = s
	return s, nil
}

// IsInitialized reports whether the package-level store has been set.
func IsInitialized() bool {
	return store != nil
}

// Default returns the package-level store, or nil when history is disabled.
func Default() Store {
	return store
}

// Open opens a bun-backed history store over SQLite and ensures the schema
// exists.
func Open(dsn string) (Store, error) {
	sqlDB, err := sqlOpenFunc("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// In-memory SQLite keeps one database per connection; force a single
	// connection so the schema stays visible. Tests rely on ":memory:".
	if dsn == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	bdb := bun.NewDB(sqlDB, sqlitedialect.New())

	s := &bunStore{db: bdb}
	if err := s.migrate(context.Background()); err != nil {
		_ = bdb.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}
	return s, nil
}
