// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package harness

import (
	"context"
	"strings"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/mergington-activities/widget"
)

// Scenario is one self-contained check of widget behavior
type Scenario struct {
	Name string
	Run  func(ctx context.Context, t *T)
}

// Scenarios returns the widget checks in the order they run
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "activity listing", Run: activityListing},
		{Name: "signup success", Run: signupSuccess},
		{Name: "signup failure", Run: signupFailure},
	}
}

func activityListing(ctx context.Context, t *T) {
	env := NewEnv(map[string]any{
		"Chess": map[string]any{
			"description":      "Chess club",
			"schedule":         "Fridays",
			"max_participants": 10,
			"participants":     []any{"alice@mergington.edu", "bob@mergington.edu"},
		},
	}, widget.WithLogger(t.Logger()))

	require.NoError(t, env.Widget.LoadActivities(ctx))

	list := env.Doc.ElementByID(widget.ActivitiesListID)
	sel := env.Doc.ElementByID(widget.ActivitySelectID)

	require.Contains(t, list.Text, "Chess")
	require.Contains(t, list.Text, "Participants")
	require.Contains(t, sel.Text, "Chess")

	require.Contains(t, list.Text, "<h4>Chess</h4>")
	require.Contains(t, list.Text, "8 spots left")
	alice := strings.Index(list.Text, "<li>alice@mergington.edu</li>")
	bob := strings.Index(list.Text, "<li>bob@mergington.edu</li>")
	require.True(t, alice >= 0 && bob > alice, "participants listed in order")
}

func signupSuccess(ctx context.Context, t *T) {
	env := NewEnv(map[string]any{"ok": true, "message": "Signed up!"}, widget.WithLogger(t.Logger()))

	msg := env.Doc.ElementByID(widget.MessageID)
	msg.Text = ""
	msg.ClassName = ""

	require.NoError(t, env.Widget.Signup(ctx, "Chess", "alice@mergington.edu"))

	require.Equal(t, "Signed up!", msg.Text)
	require.Contains(t, msg.ClassName, widget.ClassSuccess)
}

func signupFailure(ctx context.Context, t *T) {
	env := NewEnv(map[string]any{"ok": false, "detail": "Already signed up"}, widget.WithLogger(t.Logger()))

	msg := env.Doc.ElementByID(widget.MessageID)
	msg.Text = ""
	msg.ClassName = ""

	require.NoError(t, env.Widget.Signup(ctx, "Chess", "alice@mergington.edu"))

	require.Equal(t, "Already signed up", msg.Text)
	require.Contains(t, msg.ClassName, widget.ClassError)
}
