// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/evaldasv/lunchvote/auth"
	"github.com/evaldasv/lunchvote/cliparse"
	"github.com/evaldasv/lunchvote/middleware"
	"github.com/evaldasv/lunchvote/models"
	"github.com/evaldasv/lunchvote/store"
)

type AccountHandler struct {
	st  *store.Store
	cfg cliparse.Config
}

func NewAccountHandler(st *store.Store, cfg cliparse.Config) *AccountHandler {
	return &AccountHandler{st: st, cfg: cfg}
}

// Register handles POST /auth/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "username and email are required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "invalid email address")
		return
	}
	if len(req.Password) < 8 {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "password must be at least 8 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Failed to register")
		return
	}

	user, err := h.st.CreateUser(r.Context(), models.User{
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if errors.Is(err, store.ErrDuplicate) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "Email or username is already taken")
		return
	}
	if err != nil {
		slog.Error("failed to create user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Failed to register")
		return
	}

	token, err := h.issueToken(r, user.ID)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Failed to register")
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.AuthResponse{
		User:      user,
		AuthToken: token,
	})
}

// Login handles POST /auth/login. Any previously issued tokens are
// revoked: one active token per user.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "Invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "email and password are required")
		return
	}

	user, err := h.st.UserByEmail(r.Context(), strings.ToLower(req.Email))
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "Invalid email or password")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Database error")
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "Invalid email or password")
		return
	}

	if err := h.st.DeleteAuthTokens(r.Context(), user.ID); err != nil {
		slog.Error("failed to rotate tokens", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Failed to log in")
		return
	}

	token, err := h.issueToken(r, user.ID)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.AuthResponse{
		User:      user,
		AuthToken: token,
	})
}

// Logout handles POST /auth/logout
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.ErrKeyUnauthorized, "Not authenticated")
		return
	}

	if err := h.st.DeleteAuthTokens(r.Context(), user.ID); err != nil {
		slog.Error("failed to delete tokens", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Failed to log out")
		return
	}

	slog.Info("user logged out", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Successfully logged out",
	})
}

// PasswordChange handles POST /auth/password-change
func (h *AccountHandler) PasswordChange(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.ErrKeyUnauthorized, "Not authenticated")
		return
	}

	var req models.PasswordChangeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "Invalid JSON")
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.CurrentPassword); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "Current password does not match")
		return
	}
	if len(req.NewPassword) < 8 {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "password must be at least 8 characters")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Failed to change password")
		return
	}

	if err := h.st.UpdateUserPassword(r.Context(), user.ID, hash); err != nil {
		slog.Error("failed to update password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Failed to change password")
		return
	}

	slog.Info("password changed", "user_id", user.ID)

	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) issueToken(r *http.Request, userID string) (string, error) {
	token, err := auth.GenerateToken()
	if err != nil {
		return "", err
	}
	if err := h.st.SaveAuthToken(r.Context(), userID, auth.HashToken(token, h.cfg.TokenSalt)); err != nil {
		return "", err
	}
	return token, nil
}
