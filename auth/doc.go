// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides email validation, staff keys and identifier generation.

# Staff Keys

Staff keys use HMAC-SHA256 over the school domain:

	key := auth.GenerateStaffKey("mergington.edu", salt)
	err := auth.ValidateStaffKey("mergington.edu", key, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
it can be validated without being stored. An empty salt disables staff
operations: every key is rejected.

# Student Emails

Signups are keyed by email. Addresses are normalized before storage and
checked against the configured school domain:

	email := auth.NormalizeEmail(raw)
	if err := auth.ValidateEmail(email, cfg.SchoolDomain); err != nil {
		// ErrInvalidEmail or ErrWrongDomain
	}

# Identifiers

Participant rows use random UUIDs:

	id := auth.NewParticipantID()
*/
package auth
