// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Mergington activities API.

# Route Registration

NewRouter returns the CORS-wrapped http.ServeMux with all endpoints:

	handler := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Activities (public):

	GET    /activities                    - All activities with rosters
	POST   /activities/{name}/signup      - Sign up ?email=
	DELETE /activities/{name}/unregister  - Leave ?email=

Staff (requires X-Staff-Key):

	POST /activities - Create activity

Pages:

	GET /                  - Redirect to the index page
	GET /static/index.html - Server-rendered activity list and signup form
*/
package router
