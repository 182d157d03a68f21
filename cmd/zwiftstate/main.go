package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by ldflags)
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Global flags
	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zwiftstate",
	Short: "Zwift on-disk game state extractor",
	Long: `zwiftstate derives the runtime state of a locally installed Zwift
process from the files it writes: the version pointer and manifest in
the installation directory, the session log, and the preferences file.

No connection to the game process is made and no inspected file is
modified. Facts are output as JSON for easy processing with other tools.

This is an unofficial tool and is not affiliated with Zwift Inc.`,
	SilenceUsage: true, // Don't show usage on error
}

func init() {
	// Global flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging")

	// Add subcommands
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("zwiftstate %s (commit: %s, built: %s)\n", version, commit, date)
	},
}
