// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Command mergington runs the Mergington High School extracurricular
activities service and the checks for its signup widget.

Students browse activities, see how many spots are left, and sign up
with their school email. Staff can add activities with a staff key.

# Commands

	mergington serve [flags]       Run the API and signup page
	mergington check [--strict]    Run the widget scenarios
	mergington staff-key [flags]   Print the X-Staff-Key for a domain

# Starting the Server

SQLite is the default database, so no setup is needed:

	go run . serve

Or with PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run . serve

Values from a .env file in the working directory are loaded first.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:mergington.db for sqlite)
  - SCHOOL_DOMAIN (-domain): Email domain students sign up with (default: mergington.edu)
  - STAFF_KEY_SALT (-staff-salt): Secret for staff key HMAC; unset disables activity creation

# Widget Checks

check drives the widget logic against a stubbed document and network:

	$ go run . check
	All tests passed.

A failing scenario prints "Test failed: <scenario>: <details>". The
command exits 0 either way unless --strict is given.

# Package Structure

  - auth: Email validation, staff keys, participant ids
  - cliparse: Configuration parsing
  - db: Database open, schema, and seed catalogue
  - handlers: HTTP request handlers and the index page
  - harness: Stub document/network and the widget scenarios
  - middleware: Logging, CORS, JSON helpers
  - models: Request/response types
  - router: Route definitions
  - testutil: Test helpers
  - widget: Signup widget logic and card rendering
*/
package main
