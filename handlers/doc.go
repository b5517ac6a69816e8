// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Mergington
activities API and its index page.

# Handler Types

Each handler is a struct with database and config dependencies:

  - ActivityHandler: listing, signup, unregister, staff activity creation
  - PageHandler: server-rendered index page

	activityHandler := handlers.NewActivityHandler(db, cfg)

# Activities API

	GET    /activities                        → ListActivities
	POST   /activities/{name}/signup?email=   → Signup
	DELETE /activities/{name}/unregister?email= → Unregister
	POST   /activities                        → CreateActivity (X-Staff-Key)

Successful signup and unregister calls return {"message": "..."}; every
failure returns {"detail": "..."}. These are the two shapes the signup
widget renders into its message element.

# Signup Rules

A signup is rejected when the activity does not exist (404), the student is
already on the roster, the activity is full, or the email is not an address
in the configured school domain (400). The activity row is locked for the
duration of the signup transaction so capacity holds under concurrent
requests; the (activity_name, email) unique constraint backs up the duplicate
check.

# Pages

	GET /                  → redirect to /static/index.html
	GET /static/index.html → Index

The index page is rendered with html/template and uses the same element ids
as the widget: activities-list, activity, signup-form, message.
*/
package handlers
