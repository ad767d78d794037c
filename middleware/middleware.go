// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/evaldasv/lunchvote/auth"
	"github.com/evaldasv/lunchvote/models"
	"github.com/evaldasv/lunchvote/store"
)

type contextKey string

const userContextKey contextKey = "user"

// WithLogging wraps a handler with request logging
func WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Info("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		)

		next(w, r)

		duration := time.Since(start)
		slog.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", duration.Milliseconds(),
		)
	}
}

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes a JSON error body with a machine-readable key
// (models.ErrKey*) and a human-readable message.
func ErrorResponse(w http.ResponseWriter, statusCode int, key, message string) {
	JSONResponse(w, statusCode, models.ErrorResponse{
		Error:   key,
		Message: message,
	})
}

// ParseJSONBody parses the request body into the given struct
func ParseJSONBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// RequireAuth guards a handler behind bearer-token authentication.
// The resolved account is attached to the request context and is
// available to the handler via CurrentUser.
func RequireAuth(st *store.Store, tokenSalt string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.ParseTokenHeader(r.Header.Get("Authorization"))
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, models.ErrKeyUnauthorized,
				"Authentication credentials were not provided")
			return
		}

		user, err := st.UserByAuthToken(r.Context(), auth.HashToken(token, tokenSalt))
		if errors.Is(err, store.ErrNotFound) {
			ErrorResponse(w, http.StatusUnauthorized, models.ErrKeyUnauthorized, "Invalid token")
			return
		}
		if err != nil {
			slog.Error("failed to resolve auth token", "error", err)
			ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Database error")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userContextKey, user)))
	}
}

// CurrentUser returns the authenticated account placed on the context
// by RequireAuth.
func CurrentUser(r *http.Request) (models.User, bool) {
	user, ok := r.Context().Value(userContextKey).(models.User)
	return user, ok
}
