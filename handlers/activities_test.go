// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/mergington-activities/models"
	"github.com/danielhkuo/mergington-activities/testutil"
)

func signupRequest(method, action, name, email string) *http.Request {
	path := "/activities/" + url.PathEscape(name) + "/" + action + "?email=" + url.QueryEscape(email)
	req := httptest.NewRequest(method, path, nil)
	req.SetPathValue("name", name)
	return req
}

func TestListActivities(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewActivityHandler(db, cfg)

	testutil.CreateTestActivity(t, db, "Chess", 10, "alice@mergington.edu", "bob@mergington.edu")
	testutil.CreateTestActivity(t, db, "Art Club", 5)

	req := httptest.NewRequest("GET", "/activities", nil)
	w := httptest.NewRecorder()

	handler.ListActivities(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.Activities
	testutil.AssertJSON(t, w, &resp)

	want := models.Activities{
		"Chess": {
			Description:     "Chess description",
			Schedule:        "Fridays",
			MaxParticipants: 10,
			Participants:    []string{"alice@mergington.edu", "bob@mergington.edu"},
		},
		"Art Club": {
			Description:     "Art Club description",
			Schedule:        "Fridays",
			MaxParticipants: 5,
			Participants:    []string{},
		},
	}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("ListActivities() mismatch (-want +got):\n%s", diff)
	}
}

func TestListActivities_EmptyParticipantsIsArray(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewActivityHandler(db, testutil.GetTestConfig())

	testutil.CreateTestActivity(t, db, "Art Club", 5)

	w := httptest.NewRecorder()
	handler.ListActivities(w, httptest.NewRequest("GET", "/activities", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	want := `{"Art Club":{"description":"Art Club description","schedule":"Fridays","max_participants":5,"participants":[]}}` + "\n"
	if w.Body.String() != want {
		t.Errorf("Expected body %s, got %s", want, w.Body.String())
	}
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		activity       string
		email          string
		expectedStatus int
		expectedBody   models.SignupResult
		wantRoster     []string
	}{
		{
			name:           "valid signup",
			activity:       "Chess",
			email:          "carol@mergington.edu",
			expectedStatus: http.StatusOK,
			expectedBody:   models.SignupResult{Message: "Signed up carol@mergington.edu for Chess"},
			wantRoster:     []string{"alice@mergington.edu", "carol@mergington.edu"},
		},
		{
			name:           "email is normalized",
			activity:       "Chess",
			email:          "  Carol@Mergington.EDU ",
			expectedStatus: http.StatusOK,
			expectedBody:   models.SignupResult{Message: "Signed up carol@mergington.edu for Chess"},
			wantRoster:     []string{"alice@mergington.edu", "carol@mergington.edu"},
		},
		{
			name:           "already signed up",
			activity:       "Chess",
			email:          "alice@mergington.edu",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   models.SignupResult{Detail: models.DetailAlreadySignedUp},
			wantRoster:     []string{"alice@mergington.edu"},
		},
		{
			name:           "activity not found",
			activity:       "Underwater Basket Weaving",
			email:          "carol@mergington.edu",
			expectedStatus: http.StatusNotFound,
			expectedBody:   models.SignupResult{Detail: models.DetailActivityNotFound},
			wantRoster:     []string{"alice@mergington.edu"},
		},
		{
			name:           "activity full",
			activity:       "Tiny",
			email:          "carol@mergington.edu",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   models.SignupResult{Detail: models.DetailActivityFull},
			wantRoster:     []string{"alice@mergington.edu"},
		},
		{
			name:           "missing email",
			activity:       "Chess",
			email:          "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   models.SignupResult{Detail: "email is required"},
			wantRoster:     []string{"alice@mergington.edu"},
		},
		{
			name:           "invalid email",
			activity:       "Chess",
			email:          "not-an-email",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   models.SignupResult{Detail: "Invalid email address"},
			wantRoster:     []string{"alice@mergington.edu"},
		},
		{
			name:           "outside school domain",
			activity:       "Chess",
			email:          "carol@example.com",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   models.SignupResult{Detail: "Email must be a mergington.edu address"},
			wantRoster:     []string{"alice@mergington.edu"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			handler := NewActivityHandler(db, testutil.GetTestConfig())

			testutil.CreateTestActivity(t, db, "Chess", 10, "alice@mergington.edu")
			testutil.CreateTestActivity(t, db, "Tiny", 1, "alice@mergington.edu")

			w := httptest.NewRecorder()
			handler.Signup(w, signupRequest("POST", "signup", tt.activity, tt.email))

			testutil.AssertStatus(t, w, tt.expectedStatus)

			var resp models.SignupResult
			testutil.AssertJSON(t, w, &resp)
			if diff := cmp.Diff(tt.expectedBody, resp); diff != "" {
				t.Errorf("Signup() body mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.wantRoster, testutil.Participants(t, db, "Chess")); diff != "" {
				t.Errorf("Chess roster mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSignup_KeepsSignupOrderAfterUnregister(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewActivityHandler(db, testutil.GetTestConfig())

	testutil.CreateTestActivity(t, db, "Chess", 10, "alice@mergington.edu", "bob@mergington.edu")

	w := httptest.NewRecorder()
	handler.Unregister(w, signupRequest("DELETE", "unregister", "Chess", "alice@mergington.edu"))
	testutil.AssertStatus(t, w, http.StatusOK)

	for _, email := range []string{"carol@mergington.edu", "alice@mergington.edu"} {
		w := httptest.NewRecorder()
		handler.Signup(w, signupRequest("POST", "signup", "Chess", email))
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	want := []string{"bob@mergington.edu", "carol@mergington.edu", "alice@mergington.edu"}
	if diff := cmp.Diff(want, testutil.Participants(t, db, "Chess")); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}
}

func TestUnregister(t *testing.T) {
	tests := []struct {
		name           string
		activity       string
		email          string
		expectedStatus int
		expectedBody   models.SignupResult
		wantRoster     []string
	}{
		{
			name:           "valid unregister",
			activity:       "Chess",
			email:          "alice@mergington.edu",
			expectedStatus: http.StatusOK,
			expectedBody:   models.SignupResult{Message: "Unregistered alice@mergington.edu from Chess"},
			wantRoster:     []string{"bob@mergington.edu"},
		},
		{
			name:           "not signed up",
			activity:       "Chess",
			email:          "carol@mergington.edu",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   models.SignupResult{Detail: models.DetailNotSignedUp},
			wantRoster:     []string{"alice@mergington.edu", "bob@mergington.edu"},
		},
		{
			name:           "activity not found",
			activity:       "Nope",
			email:          "alice@mergington.edu",
			expectedStatus: http.StatusNotFound,
			expectedBody:   models.SignupResult{Detail: models.DetailActivityNotFound},
			wantRoster:     []string{"alice@mergington.edu", "bob@mergington.edu"},
		},
		{
			name:           "missing email",
			activity:       "Chess",
			email:          "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   models.SignupResult{Detail: "email is required"},
			wantRoster:     []string{"alice@mergington.edu", "bob@mergington.edu"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			handler := NewActivityHandler(db, testutil.GetTestConfig())

			testutil.CreateTestActivity(t, db, "Chess", 10, "alice@mergington.edu", "bob@mergington.edu")

			w := httptest.NewRecorder()
			handler.Unregister(w, signupRequest("DELETE", "unregister", tt.activity, tt.email))

			testutil.AssertStatus(t, w, tt.expectedStatus)

			var resp models.SignupResult
			testutil.AssertJSON(t, w, &resp)
			if diff := cmp.Diff(tt.expectedBody, resp); diff != "" {
				t.Errorf("Unregister() body mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.wantRoster, testutil.Participants(t, db, "Chess")); diff != "" {
				t.Errorf("roster mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCreateActivity(t *testing.T) {
	cfg := testutil.GetTestConfig()
	validKey := testutil.StaffKey(cfg)

	tests := []struct {
		name           string
		staffKey       string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:     "valid activity",
			staffKey: validKey,
			requestBody: models.CreateActivityRequest{
				Name:            "Robotics",
				Description:     "Build robots",
				Schedule:        "Saturdays",
				MaxParticipants: 8,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing staff key",
			staffKey:       "",
			requestBody:    models.CreateActivityRequest{Name: "Robotics", MaxParticipants: 8},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong staff key",
			staffKey:       "not-the-key",
			requestBody:    models.CreateActivityRequest{Name: "Robotics", MaxParticipants: 8},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing name",
			staffKey:       validKey,
			requestBody:    models.CreateActivityRequest{Name: "  ", MaxParticipants: 8},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero capacity",
			staffKey:       validKey,
			requestBody:    models.CreateActivityRequest{Name: "Robotics"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate name",
			staffKey:       validKey,
			requestBody:    models.CreateActivityRequest{Name: "Chess", MaxParticipants: 8},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "invalid JSON",
			staffKey:       validKey,
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			handler := NewActivityHandler(db, cfg)
			testutil.CreateTestActivity(t, db, "Chess", 10)

			req := testutil.MakeRequest("POST", "/activities", tt.requestBody, map[string]string{
				"X-Staff-Key": tt.staffKey,
			})
			w := httptest.NewRecorder()

			handler.CreateActivity(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var max int
				err := db.QueryRow("SELECT max_participants FROM activity WHERE name = $1", "Robotics").Scan(&max)
				if err != nil {
					t.Fatalf("Failed to query activity: %v", err)
				}
				if max != 8 {
					t.Errorf("Expected max_participants 8, got %d", max)
				}
			}
		})
	}
}

func TestCreateActivity_DisabledWithoutSalt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	key := testutil.StaffKey(cfg)
	cfg.StaffKeySalt = ""
	handler := NewActivityHandler(db, cfg)

	req := testutil.MakeRequest("POST", "/activities",
		models.CreateActivityRequest{Name: "Robotics", MaxParticipants: 8},
		map[string]string{"X-Staff-Key": key})
	w := httptest.NewRecorder()

	handler.CreateActivity(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}
