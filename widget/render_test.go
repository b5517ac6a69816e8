// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package widget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/mergington-activities/models"
)

func chess() models.Activity {
	return models.Activity{
		Description:     "Chess club",
		Schedule:        "Fridays",
		MaxParticipants: 10,
		Participants:    []string{"alice@mergington.edu", "bob@mergington.edu"},
	}
}

func TestRenderActivityCard(t *testing.T) {
	card := RenderActivityCard("Chess", chess())

	assert.Contains(t, card, "<h4>Chess</h4>")
	assert.Contains(t, card, "<p>Chess club</p>")
	assert.Contains(t, card, "<p><strong>Schedule:</strong> Fridays</p>")
	assert.Contains(t, card, "<p><strong>Availability:</strong> 8 spots left</p>")
	assert.Contains(t, card, `<div class="participants-section">`)
	assert.Contains(t, card, "<strong>Participants:</strong>")
	assert.Contains(t, card, `<ul class="participants-list">`)
	assert.Contains(t, card, "<li>alice@mergington.edu</li><li>bob@mergington.edu</li>")
	assert.NotContains(t, card, "No participants yet")
}

func TestRenderActivityCard_Order(t *testing.T) {
	card := RenderActivityCard("Chess", chess())

	ordered := []string{
		"<h4>Chess</h4>",
		"<p>Chess club</p>",
		"Fridays",
		"8 spots left",
		"Participants:",
		"<li>alice@mergington.edu</li>",
		"<li>bob@mergington.edu</li>",
	}
	last := -1
	for _, part := range ordered {
		idx := strings.Index(card, part)
		require.NotEqual(t, -1, idx, "missing %q", part)
		assert.Greater(t, idx, last, "%q out of order", part)
		last = idx
	}
}

func TestRenderActivityCard_NoParticipants(t *testing.T) {
	a := chess()
	a.Participants = nil

	card := RenderActivityCard("Chess", a)

	assert.Contains(t, card, "No participants yet")
	assert.Contains(t, card, NoParticipantsItem)
	assert.Equal(t, 1, strings.Count(card, "<li>"), "only the placeholder item")
	assert.Contains(t, card, "10 spots left")
}

func TestRenderActivityCard_NoEscaping(t *testing.T) {
	a := models.Activity{
		Description:     "<b>bold</b> & more",
		MaxParticipants: 1,
		Participants:    []string{"<i>x</i>"},
	}

	card := RenderActivityCard("A&B", a)

	assert.Contains(t, card, "<h4>A&B</h4>")
	assert.Contains(t, card, "<p><b>bold</b> & more</p>")
	assert.Contains(t, card, "<li><i>x</i></li>")
	assert.Contains(t, card, "0 spots left")
}

func TestRenderActivityCard_SpotsLeftIsNotClamped(t *testing.T) {
	a := models.Activity{MaxParticipants: 1, Participants: []string{"a", "b"}}
	assert.Contains(t, RenderActivityCard("Over", a), "-1 spots left")
}

func TestRenderOption(t *testing.T) {
	assert.Equal(t, `<option value="Chess">Chess</option>`, RenderOption("Chess"))
	assert.Equal(t, `<option value="Chess Club">Chess Club</option>`, RenderOption("Chess Club"))
}
