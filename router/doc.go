// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

/*
Package router defines HTTP routes for the lunchvote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Accounts (register/login public, rest token-guarded):

	POST /auth/register        - Create account, returns auth_token
	POST /auth/login           - Rotate and return auth_token
	POST /auth/logout          - Revoke tokens
	POST /auth/password-change - 204 on success

Employees (token-guarded):

	GET    /employees
	POST   /employees
	GET    /employees/{id}
	PUT    /employees/{id}
	DELETE /employees/{id}

Restaurants, menus, voting (token-guarded):

	GET    /restaurants
	POST   /restaurants
	GET    /restaurants/{id}
	DELETE /restaurants/{id}
	POST   /restaurants/{id}/menu          - Publish a day's menu
	GET    /restaurants/{id}/menus         - All menus with items
	GET    /restaurants/{id}/menus/current - Menus for the server's weekday
	POST   /restaurants/{id}/vote          - Cast votes (X-API-Version)
	GET    /votes/current                  - Today's vote records

Guarded routes wrap handlers in WithLogging plus RequireAuth; public
routes get WithLogging only. CORS is layered on top of the mux in main
via rs/cors.
*/
package router
