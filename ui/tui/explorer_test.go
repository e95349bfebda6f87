// Copyright (c) 2026 Cronlens Team
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/cronlens/internal/i18n"
)

func TestEvalCmdComputesRunsAndDescription(t *testing.T) {
	i18n.Init("en")

	msg := evalCmd(3, "*/5 * * * *", 5)()
	res, ok := msg.(evalResultMsg)
	if !ok {
		t.Fatalf("expected evalResultMsg, got %T", msg)
	}
	if res.seq != 3 {
		t.Errorf("expected seq 3, got %d", res.seq)
	}
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if len(res.runs) != 5 {
		t.Errorf("expected 5 runs, got %d", len(res.runs))
	}
	if res.desc != "every 5 minutes" {
		t.Errorf("expected description %q, got %q", "every 5 minutes", res.desc)
	}
}

func TestEvalCmdReportsParseError(t *testing.T) {
	msg := evalCmd(1, "not a cron line at all", 5)()
	res, ok := msg.(evalResultMsg)
	if !ok {
		t.Fatalf("expected evalResultMsg, got %T", msg)
	}
	if res.err == nil {
		t.Fatal("expected parse error")
	}
}

func TestUpdateAppliesMatchingResult(t *testing.T) {
	m := newExplorerModel(5)
	m.seq = 2

	runs := []time.Time{time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
	updated, _ := m.Update(evalResultMsg{seq: 2, runs: runs, desc: "every minute"})
	got := updated.(explorerModel)
	if got.desc != "every minute" {
		t.Errorf("expected description applied, got %q", got.desc)
	}
	if len(got.runs) != 1 {
		t.Errorf("expected runs applied, got %d", len(got.runs))
	}
}

func TestUpdateDiscardsStaleResult(t *testing.T) {
	m := newExplorerModel(5)
	m.seq = 5
	m.desc = "current"

	updated, _ := m.Update(evalResultMsg{seq: 4, desc: "stale"})
	got := updated.(explorerModel)
	if got.desc != "current" {
		t.Errorf("expected stale result discarded, got %q", got.desc)
	}
}

func TestUpdateErrorResultClearsRuns(t *testing.T) {
	m := newExplorerModel(5)
	m.seq = 1
	m.runs = []time.Time{time.Now()}
	m.desc = "old"

	updated, _ := m.Update(evalResultMsg{seq: 1, err: &strError{"boom"}})
	got := updated.(explorerModel)
	if got.errMsg != "boom" {
		t.Errorf("expected error message set, got %q", got.errMsg)
	}
	if got.runs != nil || got.desc != "" {
		t.Error("expected previous results cleared on error")
	}
}

type strError struct{ s string }

func (e *strError) Error() string { return e.s }

func TestUpdateTypingIssuesComputation(t *testing.T) {
	m := newExplorerModel(5)
	seqBefore := m.seq

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'*'}})
	got := updated.(explorerModel)
	if got.seq != seqBefore+1 {
		t.Errorf("expected seq to advance, got %d", got.seq)
	}
	if cmd == nil {
		t.Error("expected a command for the new computation")
	}
}

func TestUpdateTabCyclesExamples(t *testing.T) {
	m := newExplorerModel(5)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	got := updated.(explorerModel)
	if got.input.Value() != exampleExpressions[0] {
		t.Errorf("expected first example, got %q", got.input.Value())
	}
	if got.nextEx != 1 {
		t.Errorf("expected next example index 1, got %d", got.nextEx)
	}
	if cmd == nil {
		t.Error("expected evaluation command after tab")
	}

	updated, _ = got.Update(tea.KeyMsg{Type: tea.KeyTab})
	got = updated.(explorerModel)
	if got.input.Value() != exampleExpressions[1] {
		t.Errorf("expected second example, got %q", got.input.Value())
	}
}

func TestViewRendersDescriptionAndRuns(t *testing.T) {
	i18n.Init("en")
	m := newExplorerModel(5)
	m.desc = "every 5 minutes"
	m.runs = []time.Time{time.Date(2024, 1, 1, 10, 5, 0, 0, time.UTC)}

	out := m.View()
	if !strings.Contains(out, "every 5 minutes") {
		t.Errorf("expected description in view, got:\n%s", out)
	}
	if !strings.Contains(out, "2024-01-01 10:05:00") {
		t.Errorf("expected run timestamp in view, got:\n%s", out)
	}
}

func TestViewRendersError(t *testing.T) {
	i18n.Init("en")
	m := newExplorerModel(5)
	m.errMsg = "invalid cron expression"

	out := m.View()
	if !strings.Contains(out, "invalid cron expression") {
		t.Errorf("expected error in view, got:\n%s", out)
	}
}
