// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/mergington-activities/auth"
)

func newStaffKeyCmd() *cobra.Command {
	var domain, salt string

	cmd := &cobra.Command{
		Use:   "staff-key",
		Short: "Print the X-Staff-Key value for a school domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadDotEnv(".env"); err != nil {
				return err
			}
			if domain == "" {
				domain = os.Getenv("SCHOOL_DOMAIN")
			}
			if domain == "" {
				domain = "mergington.edu"
			}
			if salt == "" {
				salt = os.Getenv("STAFF_KEY_SALT")
			}
			if salt == "" {
				return errors.New("STAFF_KEY_SALT is required (env or --salt)")
			}

			fmt.Fprintln(cmd.OutOrStdout(), auth.GenerateStaffKey(domain, salt))
			return nil
		},
	}

	cmd.Flags().StringVar(&domain, "domain", "", "school email domain (default SCHOOL_DOMAIN or mergington.edu)")
	cmd.Flags().StringVar(&salt, "salt", "", "staff key salt (prefer STAFF_KEY_SALT)")
	return cmd
}
