// Copyright (c) 2026 Cronlens Team
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// This file defines the shared lipgloss styles used across the explorer
// to ensure a consistent look and feel.

package tui

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorError     = lipgloss.Color("196") // A bright red
	colorSuccess   = lipgloss.Color("40")  // A nice green
)

// Styles defines the reusable lipgloss styles for the explorer view.
var (
	// General
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	// Main title
	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(1, 0)

	// Section headings (next runs)
	headingStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	// Help text
	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// Error messages
	errorStyle = lipgloss.NewStyle().Foreground(colorError)

	// Status messages (clipboard confirmation)
	statusMessageStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	// The localized description line
	descriptionStyle = lipgloss.NewStyle().Italic(true)
)
