package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/guardfix/pkg/config"
)

func newFixCommand() *cobra.Command {
	var cfg config.Config
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Rewrite include guards to #pragma once",
		Long: `Rewrite classic #ifndef/#define/#endif include guards to #pragma once
in place.

Each rewritten file gets a sidecar backup (<file>.guardfix.bak) unless
backups are disabled. Files that changed on disk between reading and
writing are left alone and reported as errors.

Examples:
  guardfix fix                   # Rewrite headers in the current directory
  guardfix fix include/          # Rewrite a directory
  guardfix fix --dry-run         # Show diffs without writing
  guardfix fix --no-backups      # Skip sidecar backups`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Write = true
			return runGuardfix(cmd, args, &cfg, flags)
		},
	}

	addRunFlags(cmd, &cfg, flags)
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show rewrites without applying them")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when rewriting")

	return cmd
}
