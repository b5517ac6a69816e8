// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	// Some drivers only run the first statement of a multi-statement Exec
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

const schema = `
-- Activities
CREATE TABLE IF NOT EXISTS activity (
    name TEXT PRIMARY KEY,
    description TEXT NOT NULL DEFAULT '',
    schedule TEXT NOT NULL DEFAULT '',
    max_participants INTEGER NOT NULL CHECK (max_participants >= 0),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Participants (signups)
CREATE TABLE IF NOT EXISTS participant (
    id TEXT PRIMARY KEY,
    activity_name TEXT NOT NULL REFERENCES activity(name) ON DELETE CASCADE,
    email TEXT NOT NULL,
    position INTEGER NOT NULL,
    signed_up_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (activity_name, email)
);

CREATE INDEX IF NOT EXISTS idx_participant_activity ON participant(activity_name, position);
`
