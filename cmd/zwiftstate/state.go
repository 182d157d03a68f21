package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zwiftstate/zwiftstate-go/pkg/zwiftstate"
)

var (
	// state flags
	stateConfigFile  string
	stateInstallDir  string
	stateVersionFile string
	stateLogFile     string
	statePrefsFile   string
	stateFacts       []string
	stateFormat      string
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Extract current game state from on-disk files",
	Long: `Extract the game's current state from the files it writes on disk.

Each fact is derived independently: the version from the pointer file
and manifest (falling back to the session log), the flag id from the
preferences file, and everything else from the most recent matching
line of the session log. Missing files yield absent or default values,
never errors.

Examples:
  # All facts, auto-detected paths
  zwiftstate state

  # Explicit log file, pretty output
  zwiftstate state --log-file ~/Documents/Zwift/Logs/Log.txt --format pretty

  # Only a subset of facts
  zwiftstate state --facts game_version,world_id,course_id

  # Paths and overrides from a YAML config file
  zwiftstate state --config zwiftstate.yaml

  # Pipe to jq
  zwiftstate state | jq .course_id`,
	RunE: runState,
}

func init() {
	stateCmd.Flags().StringVarP(&stateConfigFile, "config", "c", "",
		"YAML config file with paths and per-fact overrides")
	stateCmd.Flags().StringVarP(&stateInstallDir, "install-dir", "d", "",
		"Game installation directory (auto-detected if not specified)")
	stateCmd.Flags().StringVar(&stateVersionFile, "version-file", "",
		"Version pointer file (default: <install-dir>/Zwift_ver_cur_filename.txt)")
	stateCmd.Flags().StringVar(&stateLogFile, "log-file", "",
		"Session log file (default: <documents>/Zwift/Logs/Log.txt)")
	stateCmd.Flags().StringVar(&statePrefsFile, "prefs-file", "",
		"Preferences file (default: <documents>/Zwift/prefs.xml)")
	stateCmd.Flags().StringSliceVar(&stateFacts, "facts", nil,
		"Facts to output (comma-separated; default all)")
	stateCmd.Flags().StringVarP(&stateFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty")

	registerFactNameCompletion(stateCmd, "facts")
}

func runState(cmd *cobra.Command, args []string) error {
	// Validate format
	if !ValidFormats[stateFormat] {
		return fmt.Errorf("invalid format %q: must be one of: jsonl, pretty", stateFormat)
	}

	// Normalize and validate fact selection
	selected, err := NormalizeFactNames(stateFacts)
	if err != nil {
		return err
	}

	// Build monitor options: config file first, flags take precedence
	var opts []zwiftstate.Option

	if stateConfigFile != "" {
		cfg, err := LoadFileConfig(stateConfigFile)
		if err != nil {
			return err
		}
		opts = append(opts, cfg.Options()...)
	}

	if stateInstallDir != "" {
		opts = append(opts, zwiftstate.WithInstallDir(stateInstallDir))
	}
	if stateVersionFile != "" {
		opts = append(opts, zwiftstate.WithVersionFile(stateVersionFile))
	}
	if stateLogFile != "" {
		opts = append(opts, zwiftstate.WithLogFile(stateLogFile))
	}
	if statePrefsFile != "" {
		opts = append(opts, zwiftstate.WithPrefsFile(statePrefsFile))
	}

	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, zwiftstate.WithLogger(logger))
	}

	// Setup context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := zwiftstate.New(opts...)
	if err := m.Init(ctx); err != nil {
		return fmt.Errorf("resolving user-data paths: %w", err)
	}
	defer m.CloseProcess()

	snap := m.Snapshot(ctx)
	return OutputSnapshot(stateFormat, snap, selected, os.Stdout)
}
