// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/mergington-activities/harness"
)

func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the signup widget scenarios against stubbed DOM and network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}))

			report := harness.Run(cmd.Context(), cmd.OutOrStdout(), harness.Scenarios(),
				harness.WithRunLogger(logger))

			if strict && !report.OK() {
				return errChecksFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when a scenario fails")
	return cmd
}
