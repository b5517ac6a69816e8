// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"sort"

	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/mergington-activities/cliparse"
	"github.com/danielhkuo/mergington-activities/models"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var indexTmpl = template.Must(template.New("index.html.tmpl").
	Funcs(template.FuncMap{
		"spots": func(n int) string {
			return english.Plural(n, "spot", "")
		},
	}).ParseFS(templateFS, "templates/index.html.tmpl"))

// ActivityView is one activity as listed on the index page
type ActivityView struct {
	Name string
	models.Activity
}

type indexPage struct {
	SchoolDomain string
	Activities   []ActivityView
}

type PageHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPageHandler(db *sql.DB, cfg cliparse.Config) *PageHandler {
	return &PageHandler{db: db, cfg: cfg}
}

// Index handles GET /static/index.html
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	activities, err := loadActivities(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to load activities", "error", err)
		http.Error(w, "Failed to load activities", http.StatusInternalServerError)
		return
	}

	page := indexPage{
		SchoolDomain: h.cfg.SchoolDomain,
		Activities:   SortedViews(activities),
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, page); err != nil {
		slog.Error("failed to render index", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write index", "error", err)
	}
}

// Root handles GET / by redirecting to the activities page
func (h *PageHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// SortedViews flattens activities into name order
func SortedViews(activities models.Activities) []ActivityView {
	views := make([]ActivityView, 0, len(activities))
	for name, a := range activities {
		views = append(views, ActivityView{Name: name, Activity: a})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views
}

