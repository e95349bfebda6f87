// Copyright (c) 2025 ToeiRei
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"time"

	"github.com/toeirei/cronlens/internal/model"
	"github.com/uptrace/bun"
)

// historyModel is the Bun mapping for the history table.
type historyModel struct {
	bun.BaseModel `bun:"table:history"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Expression    string    `bun:"expression,notnull"`
	Description   string    `bun:"description"`
	NextRun       string    `bun:"next_run"`
	CreatedAt     time.Time `bun:"created_at,notnull"`
}

// bunStore implements Store on top of a bun.DB.
type bunStore struct {
	db *bun.DB
}

// migrate creates the history table when it does not exist yet.
func (s *bunStore) migrate(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*historyModel)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func (s *bunStore) Add(ctx context.Context, entry model.HistoryEntry) error {
	row := historyModel{
		Expression:  entry.Expression,
		Description: entry.Description,
		NextRun:     entry.NextRun,
		CreatedAt:   entry.CreatedAt,
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	_, err := s.db.NewInsert().Model(&row).Exec(ctx)
	return err
}

func (s *bunStore) Recent(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	var rows []historyModel
	err := s.db.NewSelect().
		Model(&rows).
		Order("created_at DESC", "id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return historyModelsToEntries(rows), nil
}

func (s *bunStore) All(ctx context.Context) ([]model.HistoryEntry, error) {
	var rows []historyModel
	err := s.db.NewSelect().
		Model(&rows).
		Order("created_at ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return historyModelsToEntries(rows), nil
}

func (s *bunStore) Clear(ctx context.Context) error {
	// Bun requires a WHERE clause for deletes to prevent accidental
	// full-table wipes; here the full wipe is the point.
	_, err := s.db.NewDelete().Model((*historyModel)(nil)).Where("1 = 1").Exec(ctx)
	return err
}

func (s *bunStore) Close() error {
	return s.db.Close()
}

func historyModelsToEntries(rows []historyModel) []model.HistoryEntry {
	entries := make([]model.HistoryEntry, len(rows))
	for i, r := range rows {
		entries[i] = model.HistoryEntry{
			ID:          r.ID,
			Expression:  r.Expression,
			Description: r.Description,
			NextRun:     r.NextRun,
			CreatedAt:   r.CreatedAt,
		}
	}
	return entries
}
