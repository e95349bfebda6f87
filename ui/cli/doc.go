// Copyright (c) 2026 Cronlens Team
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Cronlens using Cobra.
// It wires configuration, i18n and the history store, and provides commands
// that delegate to the deterministic internal/cron engine. CLI code should
// remain thin and leave all schedule computation to internal/cron.
package cli
