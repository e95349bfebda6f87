// Copyright (c) 2026 Cronlens Team
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// history.go implements the 'history' command family: listing recent
// evaluations, clearing the store, and exporting it as a zstd-compressed
// JSON file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/toeirei/cronlens/internal/db"
	"github.com/toeirei/cronlens/internal/i18n"
	"github.com/toeirei/cronlens/internal/logging"
	"github.com/toeirei/cronlens/internal/model"
)

var historyLimit int

// recordHistory stores one successful evaluation. Failures are logged but
// never abort the command; history is a convenience, not a contract.
func recordHistory(cmd *cobra.Command, raw, desc string, runs []time.Time) {
	if !db.IsInitialized() {
		return
	}
	next := ""
	if len(runs) > 0 {
		next = runs[0].Format(time.RFC3339)
	}
	entry := model.HistoryEntry{
		Expression:  raw,
		Description: desc,
		NextRun:     next,
		CreatedAt:   time.Now(),
	}
	if err := db.Default().Add(cmd.Context(), entry); err != nil {
		logging.Warnf("could not record history entry: %v", err)
	}
}

// historyCmd represents the 'history' command. Without a subcommand it
// lists the most recent evaluations.
var historyCmd = &cobra.Command{
	Use:     "history",
	Short:   "List recently evaluated expressions",
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		if !db.IsInitialized() {
			fmt.Println(i18n.T("cli.history_disabled"))
			return
		}
		entries, err := db.Default().Recent(cmd.Context(), historyLimit)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if len(entries) == 0 {
			fmt.Println(i18n.T("cli.history_empty"))
			return
		}
		for _, e := range entries {
			fmt.Println(e.String())
		}
	},
}

// historyClearCmd wipes the history store.
var historyClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Delete all history entries",
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		if !db.IsInitialized() {
			fmt.Println(i18n.T("cli.history_disabled"))
			return
		}
		if err := db.Default().Clear(cmd.Context()); err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println(i18n.T("cli.history_cleared"))
	},
}

// historyExportCmd dumps the full history as zstd-compressed JSON.
var historyExportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export the history as a compressed (zstd) JSON file",
	Long: `Dumps all history entries into a Zstandard-compressed JSON file.

If an output file is specified, '.zst' will be appended to the name if it's
not already present. If no output file is specified, a default filename
'cronlens-history-YYYY-MM-DD.json.zst' is used.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		if !db.IsInitialized() {
			fmt.Println(i18n.T("cli.history_disabled"))
			return
		}

		var outputFile string
		if len(args) == 0 {
			outputFile = fmt.Sprintf("cronlens-history-%s.json.zst", time.Now().Format("2006-01-02"))
		} else {
			outputFile = args[0]
			if !strings.HasSuffix(outputFile, ".zst") {
				outputFile += ".zst"
			}
		}

		entries, err := db.Default().All(cmd.Context())
		if err != nil {
			log.Fatalf("%v", err)
		}

		outf, err := os.Create(outputFile)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer func() { _ = outf.Close() }()

		if err := writeCompressedHistory(outf, entries); err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println(i18n.T("cli.history_export_success", outputFile))
	},
}

// writeCompressedHistory streams the JSON encoding directly to the zstd
// writer for memory efficiency.
func writeCompressedHistory(w io.Writer, entries []model.HistoryEntry) error {
	zstdWriter, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}

	encoder := json.NewEncoder(zstdWriter)
	encoder.SetIndent("", "  ") // Pretty-print the JSON inside the compressed file

	if err := encoder.Encode(entries); err != nil {
		_ = zstdWriter.Close()
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}

	// Close flushes the compressed stream.
	return zstdWriter.Close()
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries to list")
	historyCmd.AddCommand(historyClearCmd, historyExportCmd)
}
