// Copyright (c) 2026 Cronlens Team
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.
// Package tui implements the terminal UI for exploring cron expressions.
// Presentation and input handling live here; all schedule computation is
// provided by internal/cron.
package tui
