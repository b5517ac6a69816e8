// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/mergington-activities/auth"
	"github.com/danielhkuo/mergington-activities/cliparse"
	"github.com/danielhkuo/mergington-activities/db"
)

// TestStaffKeySalt is the staff salt used by GetTestConfig
const TestStaffKeySalt = "test-staff-salt"

// SetupTestDB creates a fresh SQLite database with the full schema.
// The database lives in the test's temp dir and is closed on cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  "file:" + filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration. It has no
// DatabaseURL: tests get their database from SetupTestDB.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: cliparse.DatabaseSQLite,
		SchoolDomain: "mergington.edu",
		StaffKeySalt: TestStaffKeySalt,
	}
}

// StaffKey returns a valid X-Staff-Key for cfg
func StaffKey(cfg cliparse.Config) string {
	return auth.GenerateStaffKey(cfg.SchoolDomain, cfg.StaffKeySalt)
}

// CreateTestActivity inserts an activity with the given participants in order
func CreateTestActivity(t *testing.T, conn *sql.DB, name string, maxParticipants int, participants ...string) {
	t.Helper()

	err := db.InsertActivities(conn, []db.SeedActivity{{
		Name:            name,
		Description:     name + " description",
		Schedule:        "Fridays",
		MaxParticipants: maxParticipants,
		Participants:    participants,
	}})
	if err != nil {
		t.Fatalf("Failed to create test activity: %v", err)
	}
}

// Participants returns an activity's roster in signup order
func Participants(t *testing.T, conn *sql.DB, name string) []string {
	t.Helper()

	rows, err := conn.Query(`
		SELECT email FROM participant WHERE activity_name = $1 ORDER BY position
	`, name)
	if err != nil {
		t.Fatalf("Failed to query participants: %v", err)
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			t.Fatalf("Failed to scan participant: %v", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Failed to query participants: %v", err)
	}

	return emails
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
