// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// errChecksFailed is returned by check --strict when a scenario failed.
// The runner has already printed the details.
var errChecksFailed = errors.New("widget checks failed")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mergington",
		Short:         "Mergington High School extracurricular activities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newCheckCmd(), newStaffKeyCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errChecksFailed) {
			slog.Error("command failed", "error", err)
		}
		os.Exit(1)
	}
}
