// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package widget is the client side of the activities page: it lists
activities and shows signup outcomes.

The widget never touches a browser directly. It writes into a Document
(element lookup by id) and calls the API through a Fetcher, so the same
code runs against HTTPFetcher and a live server, or against the stubs in
package harness.

# Rendering

RenderActivityCard and RenderOption are pure:

	card := widget.RenderActivityCard("Chess", activity)
	// <h4>Chess</h4> … 8 spots left … <li>alice@mergington.edu</li>

Values are inserted without escaping.

# Elements

	activities-list  activity cards
	activity         select options
	message          signup outcome text, class success or error
	signup-form      reset after a successful signup
*/
package widget
