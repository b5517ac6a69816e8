// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lib/pq"

	"github.com/danielhkuo/mergington-activities/auth"
	"github.com/danielhkuo/mergington-activities/cliparse"
	"github.com/danielhkuo/mergington-activities/middleware"
	"github.com/danielhkuo/mergington-activities/models"
)

type ActivityHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewActivityHandler(db *sql.DB, cfg cliparse.Config) *ActivityHandler {
	return &ActivityHandler{db: db, cfg: cfg}
}

// ListActivities handles GET /activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := loadActivities(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to load activities", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, activities)
}

// Signup handles POST /activities/{name}/signup?email=
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email, ok := h.studentEmail(w, r)
	if !ok {
		return
	}

	tx, err := h.db.BeginTx(r.Context(), nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// Touching the row locks it until commit, so concurrent signups for the
	// same activity see each other's capacity use
	var maxParticipants int
	err = tx.QueryRowContext(r.Context(), `
		UPDATE activity SET max_participants = max_participants
		WHERE name = $1
		RETURNING max_participants
	`, name).Scan(&maxParticipants)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, models.DetailActivityNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to query activity", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var count, lastPosition, already int
	err = tx.QueryRowContext(r.Context(), `
		SELECT COUNT(*),
		       COALESCE(MAX(position), 0),
		       COALESCE(SUM(CASE WHEN email = $2 THEN 1 ELSE 0 END), 0)
		FROM participant
		WHERE activity_name = $1
	`, name, email).Scan(&count, &lastPosition, &already)
	if err != nil {
		slog.Error("failed to query participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if already > 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.DetailAlreadySignedUp)
		return
	}
	if count >= maxParticipants {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.DetailActivityFull)
		return
	}

	_, err = tx.ExecContext(r.Context(), `
		INSERT INTO participant (id, activity_name, email, position)
		VALUES ($1, $2, $3, $4)
	`, auth.NewParticipantID(), name, email, lastPosition+1)
	if isUniqueViolation(err) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.DetailAlreadySignedUp)
		return
	}
	if err != nil {
		slog.Error("failed to insert participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign up")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit signup", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign up")
		return
	}

	slog.Info("student signed up", "activity", name, "email", email)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// Unregister handles DELETE /activities/{name}/unregister?email=
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := auth.NormalizeEmail(r.URL.Query().Get("email"))
	if email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}

	var exists int
	err := h.db.QueryRowContext(r.Context(), "SELECT 1 FROM activity WHERE name = $1", name).Scan(&exists)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, models.DetailActivityNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to query activity", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	res, err := h.db.ExecContext(r.Context(), `
		DELETE FROM participant WHERE activity_name = $1 AND email = $2
	`, name, email)
	if err != nil {
		slog.Error("failed to delete participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to unregister")
		return
	}

	n, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to delete participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to unregister")
		return
	}
	if n == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.DetailNotSignedUp)
		return
	}

	slog.Info("student unregistered", "activity", name, "email", email)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// CreateActivity handles POST /activities
// Requires the X-Staff-Key header
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	staffKey := r.Header.Get("X-Staff-Key")
	if err := auth.ValidateStaffKey(h.cfg.SchoolDomain, staffKey, h.cfg.StaffKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid staff key")
		return
	}

	var req models.CreateActivityRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.MaxParticipants < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "max_participants must be at least 1")
		return
	}

	_, err := h.db.ExecContext(r.Context(), `
		INSERT INTO activity (name, description, schedule, max_participants)
		VALUES ($1, $2, $3, $4)
	`, req.Name, req.Description, req.Schedule, req.MaxParticipants)
	if isUniqueViolation(err) {
		middleware.ErrorResponse(w, http.StatusConflict, "Activity already exists")
		return
	}
	if err != nil {
		slog.Error("failed to insert activity", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create activity")
		return
	}

	slog.Info("activity created", "activity", req.Name, "max_participants", req.MaxParticipants)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Created " + req.Name,
	})
}

// studentEmail reads and validates the email query parameter, writing the
// error response itself when the address is unusable
func (h *ActivityHandler) studentEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email := auth.NormalizeEmail(r.URL.Query().Get("email"))
	if email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return "", false
	}

	err := auth.ValidateEmail(email, h.cfg.SchoolDomain)
	switch {
	case errors.Is(err, auth.ErrWrongDomain):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email must be a "+h.cfg.SchoolDomain+" address")
		return "", false
	case err != nil:
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid email address")
		return "", false
	}

	return email, true
}

// loadActivities reads every activity with its participants in signup order
func loadActivities(ctx context.Context, db *sql.DB) (models.Activities, error) {
	activities := models.Activities{}

	rows, err := db.QueryContext(ctx, `
		SELECT name, description, schedule, max_participants
		FROM activity
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		a := models.Activity{Participants: []string{}}
		if err := rows.Scan(&name, &a.Description, &a.Schedule, &a.MaxParticipants); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities[name] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}

	prows, err := db.QueryContext(ctx, `
		SELECT activity_name, email
		FROM participant
		ORDER BY activity_name, position
	`)
	if err != nil {
		return nil, fmt.Errorf("query participants: %w", err)
	}
	defer prows.Close()

	for prows.Next() {
		var name, email string
		if err := prows.Scan(&name, &email); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		a, ok := activities[name]
		if !ok {
			continue
		}
		a.Participants = append(a.Participants, email)
		activities[name] = a
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("query participants: %w", err)
	}

	return activities, nil
}

// isUniqueViolation reports a unique constraint failure from either driver
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
