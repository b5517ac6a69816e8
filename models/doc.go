// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types shared by the
API server and the signup widget.

# Request Types

  - CreateActivityRequest: name, description, schedule, max_participants

# Response Types

  - Activities: map of activity name to Activity (GET /activities)
  - MessageResponse: message (signup / unregister success)
  - ErrorResponse: detail
  - SignupResult: message or detail, as decoded by the widget

# Domain Types

  - Activity: description, schedule, capacity and ordered participants
  - Participant: a stored signup row

Remaining capacity is derived, never stored:

	spots := activity.SpotsLeft() // max_participants - len(participants)

# Failure Details

	DetailActivityNotFound = "Activity not found"
	DetailAlreadySignedUp  = "Student is already signed up"
	DetailActivityFull     = "Activity is full"
	DetailNotSignedUp      = "Student is not signed up for this activity"
*/
package models
