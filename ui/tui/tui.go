// Copyright (c) 2026 Cronlens Team
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive explorer. count is the number of upcoming
// runs shown for the current expression.
func Run(count int) error {
	_, err := tea.NewProgram(
		newExplorerModel(count),
		tea.WithAltScreen(),
	).Run()
	return err
}
