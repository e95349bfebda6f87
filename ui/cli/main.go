// Copyright (c) 2026 Cronlens Team
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for Cronlens using the
// Cobra library. It defines the root command, subcommands (next, describe,
// check, history, version), flags, and the main entry point for execution.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/toeirei/cronlens/buildvars"
	"github.com/toeirei/cronlens/internal/config"
	"github.com/toeirei/cronlens/internal/cron"
	"github.com/toeirei/cronlens/internal/db"
	"github.com/toeirei/cronlens/internal/i18n"
	"github.com/toeirei/cronlens/internal/logging"
	"github.com/toeirei/cronlens/ui/tui"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var cfgFile string
var verbose bool
var showVersionFlag bool

var runCount int    // --count flag for the next command
var fromFlag string // --from flag for the next command (RFC 3339)

var appConfig config.Config

// setupDefaultServices loads the configuration, initializes i18n and opens
// the history store. It runs before every command.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	// Load optional config file argument from cli
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := map[string]any{
		"language":        "en",
		"count":           cron.DefaultRunCount,
		"history.enabled": true,
		"history.dsn":     config.DefaultHistoryDsn(),
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	// A "file not found" error is expected on first run, so we handle it
	// specifically and write a default config for subsequent runs.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			// Log a warning but don't fail, as the app can run on defaults.
			log.Warnf("Warning: could not write default config file: %v", writeErr)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Post-process config to ensure critical values are not empty, falling
	// back to defaults. This handles config files with empty values.
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}
	if appConfig.Count <= 0 {
		appConfig.Count = cron.DefaultRunCount
	}
	if appConfig.History.Dsn == "" {
		appConfig.History.Dsn = defaults["history.dsn"].(string)
	}

	// Initialize i18n
	i18n.Init(appConfig.Language)

	// Open the history store unless disabled or already initialized by
	// tests or an earlier setup. History is auxiliary: when the database
	// cannot be opened, warn and keep going without it.
	if appConfig.History.Enabled && !db.IsInitialized() {
		if _, err := db.New(appConfig.History.Dsn); err != nil {
			logging.Warnf("%s", i18n.T("cli.error_init_history", err))
			appConfig.History.Enabled = false
		}
	}

	return nil
}

// Execute runs the CLI entrypoint. The root main package should call this
// function and handle process exit.
func Execute() error {
	rootCmd := NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		return err
	}

	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			// This is unlikely if Changed() is true, but good practice.
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		// If the flag is set but the value is empty, do nothing.
		if path == "" {
			return nil, nil
		}

		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cronlens",
		Short: "Cronlens explains cron expressions and computes their next runs.",
		Long: `Cronlens parses 5- or 6-field cron expressions, lists the upcoming
run instants and renders a plain-language description of the schedule.

Running without a subcommand launches the interactive TUI.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				v, c, d := resolveBuildVersion(nil)
				compositeVersion := v
				if c != "" && c != "dev" {
					compositeVersion = compositeVersion + " (" + c + ")"
				}
				if d != "" {
					compositeVersion = compositeVersion + " built: " + d
				}
				fmt.Printf("%s\n", compositeVersion)
				os.Exit(0)
			}
			if verbose {
				logging.SetDebug(true)
			}
			return setupDefaultServices(cmd, args)
		},
		Run: func(cmd *cobra.Command, args []string) {
			// Config and i18n are already initialized by PersistentPreRunE.
			// Launch the TUI on a terminal, otherwise print usage.
			if term.IsTerminal(int(os.Stdout.Fd())) {
				if err := tui.Run(appConfig.Count); err != nil {
					log.Fatalf("%v", err)
				}
				return
			}
			_ = cmd.Help()
		},
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	// Define flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Output language ("en", "de")`)

	if nextCmd.Flags().Lookup("count") == nil {
		nextCmd.Flags().IntVarP(&runCount, "count", "n", cron.DefaultRunCount, "Number of upcoming runs to compute")
	}
	if nextCmd.Flags().Lookup("from") == nil {
		nextCmd.Flags().StringVar(&fromFlag, "from", "", "Reference instant (RFC 3339, default: now)")
	}

	// Add a lightweight `version` subcommand so users and CI can run
	// `cronlens version`.
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			resolvedVersion, resolvedCommit, resolvedDate := resolveBuildVersion(nil)
			fmt.Printf("version: %s\n", resolvedVersion)
			fmt.Printf("commit: %s\n", resolvedCommit)
			if resolvedDate != "" {
				fmt.Printf("built: %s\n", resolvedDate)
			}
		},
	}

	// Add subcommands to the newly created root command.
	cmd.AddCommand(
		nextCmd,
		describeCmd,
		checkCmd,
		historyCmd,
		versionCmd,
	)

	return cmd
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	var ok bool
	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
			ok = true
		}
	} else {
		ok = true
	}

	if ok && info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, if no version was discovered, but a gitCommit was
	// provided via ldflags, show that to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

// parseFromFlag resolves the reference instant for the next command.
func parseFromFlag() (time.Time, error) {
	if fromFlag == "" {
		return time.Now(), nil
	}
	from, err := time.Parse(time.RFC3339, fromFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --from value %q: %w", fromFlag, err)
	}
	return from.In(time.Local), nil
}

// nextCmd represents the 'next' command. It computes the upcoming run
// instants of an expression and prints them together with the description.
var nextCmd = &cobra.Command{
	Use:     "next <expression>",
	Short:   "Compute the next run instants of a cron expression",
	Long:    `Parses the expression and prints the next runs (one RFC 3339 timestamp per line) followed by a plain-language description of the schedule.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		expr, err := cron.Parse(args[0])
		if err != nil {
			log.Fatalf("%s", i18n.T("cli.error_invalid_expression", err))
		}

		from, err := parseFromFlag()
		if err != nil {
			log.Fatalf("%v", err)
		}

		count := appConfig.Count
		if cmd.Flags().Changed("count") {
			count = runCount
		}

		runs, err := expr.Next(from, count)
		if err != nil {
			log.Fatalf("%s", i18n.T("cli.error_invalid_expression", err))
		}
		desc, err := expr.Describe()
		if err != nil {
			log.Fatalf("%s", i18n.T("cli.error_invalid_expression", err))
		}

		if len(runs) == 0 {
			fmt.Println(i18n.T("cli.next_no_runs"))
		}
		for _, r := range runs {
			fmt.Println(r.Format(time.RFC3339))
		}
		fmt.Println(i18n.T("cli.next_description", desc))

		recordHistory(cmd, args[0], desc, runs)
	},
}

// describeCmd represents the 'describe' command.
var describeCmd = &cobra.Command{
	Use:     "describe <expression>",
	Short:   "Render a plain-language description of a cron expression",
	Args:    cobra.ExactArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		expr, err := cron.Parse(args[0])
		if err != nil {
			log.Fatalf("%s", i18n.T("cli.error_invalid_expression", err))
		}
		desc, err := expr.Describe()
		if err != nil {
			log.Fatalf("%s", i18n.T("cli.error_invalid_expression", err))
		}
		fmt.Println(desc)
	},
}

// checkCmd represents the 'check' command. It validates an expression and
// exits non-zero when it does not parse.
var checkCmd = &cobra.Command{
	Use:     "check <expression>",
	Short:   "Validate a cron expression",
	Args:    cobra.ExactArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		expr, err := cron.Parse(args[0])
		if err != nil {
			log.Fatalf("%s", i18n.T("cli.error_invalid_expression", err))
		}
		if _, err := expr.Describe(); err != nil {
			log.Fatalf("%s", i18n.T("cli.error_invalid_expression", err))
		}
		fmt.Println(i18n.T("cli.check_valid"))
	},
}
