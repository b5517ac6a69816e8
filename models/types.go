// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Signup failure details returned in ErrorResponse.Detail
const (
	DetailActivityNotFound = "Activity not found"
	DetailAlreadySignedUp  = "Student is already signed up"
	DetailActivityFull     = "Activity is full"
	DetailNotSignedUp      = "Student is not signed up for this activity"
)

// Request types

type CreateActivityRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Schedule        string `json:"schedule"`
	MaxParticipants int    `json:"max_participants"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

// SignupResult is what the widget decodes from a signup call.
// Success responses carry Message, failures carry Detail.
type SignupResult struct {
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Domain types

type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft is the remaining capacity. It is not clamped at zero.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Activities is the GET /activities payload, keyed by activity name.
type Activities map[string]Activity

type Participant struct {
	ID           string    `json:"id"`
	ActivityName string    `json:"activity_name"`
	Email        string    `json:"email"`
	Position     int       `json:"position"`
	SignedUpAt   time.Time `json:"signed_up_at"`
}

// Error response

type ErrorResponse struct {
	Detail string `json:"detail"`
}
