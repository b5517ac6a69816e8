// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package widget

import (
	"strconv"
	"strings"

	"github.com/danielhkuo/mergington-activities/models"
)

// NoParticipantsItem is the placeholder list item for an empty roster
const NoParticipantsItem = "<li><em>No participants yet</em></li>"

// RenderActivityCard builds the listing fragment for one activity. Values
// are inserted verbatim; callers own escaping.
func RenderActivityCard(name string, a models.Activity) string {
	var items string
	if len(a.Participants) > 0 {
		var b strings.Builder
		for _, p := range a.Participants {
			b.WriteString("<li>")
			b.WriteString(p)
			b.WriteString("</li>")
		}
		items = b.String()
	} else {
		items = NoParticipantsItem
	}

	return `
    <h4>` + name + `</h4>
    <p>` + a.Description + `</p>
    <p><strong>Schedule:</strong> ` + a.Schedule + `</p>
    <p><strong>Availability:</strong> ` + strconv.Itoa(a.SpotsLeft()) + ` spots left</p>
    <div class="participants-section">
      <strong>Participants:</strong>
      <ul class="participants-list">
        ` + items + `
      </ul>
    </div>
  `
}

// RenderOption builds the select option for an activity.
func RenderOption(name string) string {
	return `<option value="` + name + `">` + name + `</option>`
}
