// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Authentication Guard

RequireAuth validates the "Authorization: Token <value>" header against
the stored token hashes and rejects with 401 otherwise:

	mux.HandleFunc("POST /restaurants", middleware.WithLogging(
		middleware.RequireAuth(st, cfg.TokenSalt, h.Create)))

Inside a guarded handler the account is available:

	user, ok := middleware.CurrentUser(r)

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "message")

Parse JSON request bodies:

	var req models.MenuRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "Invalid JSON")
		return
	}

Cross-origin handling is not done here: the rs/cors handler wraps the
whole mux in main.
*/
package middleware
