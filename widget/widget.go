// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package widget

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"

	"github.com/danielhkuo/mergington-activities/models"
)

// Message element classes
const (
	ClassSuccess = "success"
	ClassError   = "error"
	ClassHidden  = "hidden"
)

// Text shown when the API can't be reached
const (
	LoadFailedHTML   = "<p>Failed to load activities. Please try again later.</p>"
	SignupFailedText = "Failed to sign up. Please try again."
)

type Option func(*Widget)

// WithLogger sets the widget's logger (default slog.Default())
func WithLogger(l *slog.Logger) Option {
	return func(w *Widget) { w.log = l }
}

// Widget renders the activity list and signup outcomes into a Document,
// using a Fetcher to reach the API.
type Widget struct {
	doc   Document
	fetch Fetcher
	log   *slog.Logger
}

func New(doc Document, fetch Fetcher, opts ...Option) *Widget {
	w := &Widget{doc: doc, fetch: fetch, log: slog.Default()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// LoadActivities fetches the activity list and renders one card and one
// select option per activity, in name order.
func (w *Widget) LoadActivities(ctx context.Context) error {
	list := w.doc.ElementByID(ActivitiesListID)
	sel := w.doc.ElementByID(ActivitySelectID)

	list.Text = ""
	sel.Text = ""

	activities, err := w.fetchActivities(ctx)
	if err != nil {
		w.log.Error("failed to load activities", "error", err)
		list.Text = LoadFailedHTML
		return err
	}

	names := make([]string, 0, len(activities))
	for name := range activities {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		list.Text += RenderActivityCard(name, activities[name])
		sel.Text += RenderOption(name)
	}

	w.log.Debug("activities rendered", "count", len(names))
	return nil
}

func (w *Widget) fetchActivities(ctx context.Context) (models.Activities, error) {
	resp, err := w.fetch.Fetch(ctx, http.MethodGet, "/activities")
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, fmt.Errorf("load activities: status %d", resp.Status)
	}

	var activities models.Activities
	if err := resp.JSON(&activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// Signup submits a signup for email and shows the outcome in the message
// element. An unsuccessful response is shown, not returned as an error.
func (w *Widget) Signup(ctx context.Context, activity, email string) error {
	msg := w.doc.ElementByID(MessageID)

	path := "/activities/" + url.PathEscape(activity) + "/signup?email=" + url.QueryEscape(email)
	resp, err := w.fetch.Fetch(ctx, http.MethodPost, path)
	if err != nil {
		w.showFailure(msg, err)
		return fmt.Errorf("sign up: %w", err)
	}

	var result models.SignupResult
	if err := resp.JSON(&result); err != nil {
		w.showFailure(msg, err)
		return fmt.Errorf("sign up: %w", err)
	}

	ApplySignupOutcome(msg, resp.OK, result)
	if resp.OK {
		w.doc.ElementByID(SignupFormID).Reset()
	}

	w.log.Info("signup submitted", "activity", activity, "ok", resp.OK, "status", resp.Status)
	return nil
}

func (w *Widget) showFailure(msg *Element, err error) {
	w.log.Error("error signing up", "error", err)
	msg.Text = SignupFailedText
	msg.ClassName = ClassError
	msg.Classes().Remove(ClassHidden)
}

// ApplySignupOutcome writes a signup result into the message element:
// Message with class success when ok, Detail with class error otherwise.
func ApplySignupOutcome(msg *Element, ok bool, r models.SignupResult) {
	msg.Text = ""
	msg.ClassName = ""

	if ok {
		msg.Text = r.Message
		msg.ClassName = ClassSuccess
	} else {
		msg.Text = r.Detail
		msg.ClassName = ClassError
	}
	msg.Classes().Remove(ClassHidden)
}
