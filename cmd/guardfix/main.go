// Package main is the entry point for the guardfix CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/guardfix/internal/cli"
	"github.com/yaklabco/guardfix/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil {
		// ErrChangesNeeded and ErrMalformedHeaders are exit-code
		// signals; the run already reported the details.
		if !errors.Is(err, cli.ErrChangesNeeded) && !errors.Is(err, cli.ErrMalformedHeaders) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
	}

	return cli.ExitCode(err)
}
