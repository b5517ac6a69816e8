// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/mergington-activities/cliparse"
	"github.com/danielhkuo/mergington-activities/handlers"
	"github.com/danielhkuo/mergington-activities/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	activityHandler := handlers.NewActivityHandler(db, cfg)
	pageHandler := handlers.NewPageHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Activities (public)
	mux.HandleFunc("GET /activities", middleware.WithLogging(activityHandler.ListActivities))
	mux.HandleFunc("POST /activities/{name}/signup", middleware.WithLogging(activityHandler.Signup))
	mux.HandleFunc("DELETE /activities/{name}/unregister", middleware.WithLogging(activityHandler.Unregister))

	// Staff operations (require X-Staff-Key)
	mux.HandleFunc("POST /activities", middleware.WithLogging(activityHandler.CreateActivity))

	// Pages
	mux.HandleFunc("GET /static/index.html", middleware.WithLogging(pageHandler.Index))
	mux.HandleFunc("GET /{$}", pageHandler.Root)

	return middleware.CORS(mux)
}
