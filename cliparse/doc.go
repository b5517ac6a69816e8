// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(args, os.Stderr)

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite (default) or postgres
  - DatabaseURL: connection string (default for sqlite: file:mergington.db)
  - SchoolDomain: email domain accepted for signups (default: mergington.edu)
  - StaffKeySalt: secret for staff keys (optional, disables staff operations when empty)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-domain       School email domain
	-staff-salt   Staff key salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SCHOOL_DOMAIN  → -domain
	STAFF_KEY_SALT → -staff-salt

CLI flags take precedence over environment variables. The serve command
loads a .env file into the environment before parsing.

# Validation

ParseFlags returns an error when:

  - DATABASE_TYPE is neither sqlite nor postgres
  - postgres is selected without a DATABASE_URL
  - PORT is not a number
*/
package cliparse
