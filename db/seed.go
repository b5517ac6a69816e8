// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/mergington-activities/auth"
)

//go:embed seed.yaml
var seedYAML []byte

// SeedActivity is one catalogue entry in seed.yaml
type SeedActivity struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// LoadSeed parses the embedded activity catalogue
func LoadSeed() ([]SeedActivity, error) {
	return parseSeed(seedYAML)
}

func parseSeed(data []byte) ([]SeedActivity, error) {
	var doc struct {
		Activities []SeedActivity `yaml:"activities"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	seen := make(map[string]bool, len(doc.Activities))
	for _, a := range doc.Activities {
		if a.Name == "" {
			return nil, fmt.Errorf("seed activity without a name")
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("duplicate seed activity %q", a.Name)
		}
		seen[a.Name] = true
		if len(a.Participants) > a.MaxParticipants {
			return nil, fmt.Errorf("seed activity %q is over capacity", a.Name)
		}
	}

	return doc.Activities, nil
}

// SeedActivities inserts catalogue activities that don't exist yet, along
// with their initial participants. Existing activities are left untouched.
func SeedActivities(db *sql.DB) error {
	activities, err := LoadSeed()
	if err != nil {
		return err
	}
	return InsertActivities(db, activities)
}

// InsertActivities stores the given activities in one transaction, skipping
// names that already exist.
func InsertActivities(db *sql.DB, activities []SeedActivity) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	inserted := 0
	for _, a := range activities {
		res, err := tx.Exec(`
			INSERT INTO activity (name, description, schedule, max_participants)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO NOTHING
		`, a.Name, a.Description, a.Schedule, a.MaxParticipants)
		if err != nil {
			return fmt.Errorf("failed to insert activity %q: %w", a.Name, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to insert activity %q: %w", a.Name, err)
		}
		if n == 0 {
			continue
		}
		inserted++

		for i, email := range a.Participants {
			_, err := tx.Exec(`
				INSERT INTO participant (id, activity_name, email, position)
				VALUES ($1, $2, $3, $4)
			`, auth.NewParticipantID(), a.Name, auth.NormalizeEmail(email), i+1)
			if err != nil {
				return fmt.Errorf("failed to insert participant for %q: %w", a.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	slog.Info("activities seeded", "inserted", inserted, "catalogue", len(activities))
	return nil
}
