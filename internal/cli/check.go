package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/guardfix/pkg/config"
)

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report headers that still use classic include guards",
		Long: `Check C/C++ headers for classic #ifndef/#define/#endif include guards
without modifying any files.

By default, checks all header files in the current directory and
subdirectories. Specify paths to check specific files or directories.

Exits 1 when guards are found, 2 when a header has unbalanced
conditional directives, and 0 when there is nothing to rewrite.

Examples:
  guardfix check                 # Check current directory
  guardfix check include/        # Check a directory
  guardfix check foo.h           # Check a single file
  guardfix check --format diff   # Show the pending rewrites as diffs
  guardfix check --format json   # Output as JSON for CI`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuardfix(cmd, args, &cfg, flags)
		},
	}

	addRunFlags(cmd, &cfg, flags)

	return cmd
}
