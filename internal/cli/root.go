// Package cli provides the Cobra command structure for guardfix.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/guardfix/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root guardfix command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "guardfix",
		Short: "Convert C/C++ include guards to #pragma once",
		Long: `guardfix rewrites classic #ifndef/#define/#endif include guards in
C and C++ headers to #pragma once.

It locates the guard at the top of each header, tracks nested conditional
compilation to find the matching #endif, and replaces the pair while
preserving everything else in the file. Headers without a recognizable
guard, or already using #pragma once, are left untouched.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newFixCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
