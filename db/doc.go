// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema and seeds the activity
catalogue.

# Drivers

Open picks the driver from the config:

	conn, err := db.Open(cfg) // sqlite (modernc.org/sqlite) or postgres (lib/pq)

SQLite runs on a single connection with foreign keys enabled. Queries use
$N placeholders, which both drivers accept.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - activity: name, description, schedule, capacity
  - participant: one row per signup, ordered by position

# Relationships

	activity 1──* participant

participant.activity_name uses ON DELETE CASCADE and (activity_name, email)
is unique, so a student can sign up for an activity only once.

# Seeding

SeedActivities loads the embedded seed.yaml catalogue and inserts activities
that don't exist yet with their initial participants.
*/
package db
