// Copyright (c) 2026 Cronlens Team
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// explorer.go implements the single-view expression explorer: an input
// field with a live next-run list and description underneath. Evaluation
// runs as a tea.Cmd off the update loop; every issued computation carries a
// sequence number so results of superseded computations are discarded.

package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/cronlens/internal/cron"
	"github.com/toeirei/cronlens/internal/i18n"
)

// exampleExpressions is the curated set cycled with the tab key.
var exampleExpressions = []string{
	"*/5 * * * *",
	"0 3 * * *",
	"0 0 1 * 1",
	"30 9 * * 1-5",
	"0 0 12 1,15 *",
	"0 30 8-17/3 * * *",
}

// evalResultMsg carries the outcome of one background evaluation.
type evalResultMsg struct {
	seq  int
	runs []time.Time
	desc string
	err  error
}

type explorerModel struct {
	input  textinput.Model
	count  int
	seq    int // sequence number of the newest issued computation
	runs   []time.Time
	desc   string
	errMsg string
	status string // transient line, e.g. clipboard confirmation
	nextEx int    // index into exampleExpressions for the tab key
}

func newExplorerModel(count int) explorerModel {
	t := textinput.New()
	t.Prompt = "> "
	t.Placeholder = i18n.T("tui.input_placeholder")
	t.CharLimit = 64
	t.Width = 48
	t.Focus()

	if count <= 0 {
		count = cron.DefaultRunCount
	}
	return explorerModel{input: t, count: count}
}

func (m explorerModel) Init() tea.Cmd {
	return textinput.Blink
}

// evalCmd parses and evaluates raw in a background command. The result is
// tagged with seq; the model ignores anything older than its current seq.
func evalCmd(seq int, raw string, count int) tea.Cmd {
	return func() tea.Msg {
		expr, err := cron.Parse(raw)
		if err != nil {
			return evalResultMsg{seq: seq, err: err}
		}
		runs, err := expr.Next(time.Now(), count)
		if err != nil {
			return evalResultMsg{seq: seq, err: err}
		}
		desc, err := expr.Describe()
		if err != nil {
			return evalResultMsg{seq: seq, err: err}
		}
		return evalResultMsg{seq: seq, runs: runs, desc: desc}
	}
}

func (m explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			// Cycle through the example picker.
			m.input.SetValue(exampleExpressions[m.nextEx])
			m.input.CursorEnd()
			m.nextEx = (m.nextEx + 1) % len(exampleExpressions)
			m.status = ""
			m.seq++
			return m, evalCmd(m.seq, m.input.Value(), m.count)

		case "ctrl+y":
			// Copy the current run list to the clipboard.
			if len(m.runs) == 0 {
				return m, nil
			}
			lines := make([]string, len(m.runs))
			for i, r := range m.runs {
				lines[i] = r.Format(time.RFC3339)
			}
			if err := clipboard.WriteAll(strings.Join(lines, "\n")); err != nil {
				m.errMsg = err.Error()
			} else {
				m.status = i18n.T("tui.copied")
			}
			return m, nil
		}
	case evalResultMsg:
		if msg.seq != m.seq {
			// A newer expression superseded this computation.
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.runs = nil
			m.desc = ""
			return m, nil
		}
		m.errMsg = ""
		m.runs = msg.runs
		m.desc = msg.desc
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if value := m.input.Value(); value != before {
		m.status = ""
		m.seq++ // supersede any in-flight computation
		if strings.TrimSpace(value) == "" {
			m.runs = nil
			m.desc = ""
			m.errMsg = ""
			return m, cmd
		}
		return m, tea.Batch(cmd, evalCmd(m.seq, value, m.count))
	}
	return m, cmd
}

func (m explorerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T("tui.title")))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	case m.desc != "":
		b.WriteString(descriptionStyle.Render(m.desc))
		b.WriteString("\n\n")
		b.WriteString(headingStyle.Render(i18n.T("tui.next_runs_heading")))
		b.WriteString("\n")
		if len(m.runs) == 0 {
			b.WriteString(i18n.T("tui.no_runs"))
			b.WriteString("\n")
		}
		for _, r := range m.runs {
			b.WriteString(r.Format("2006-01-02 15:04:05 Mon"))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusMessageStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(i18n.T("tui.help")))

	return docStyle.Render(b.String())
}
