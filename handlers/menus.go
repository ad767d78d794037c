// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/evaldasv/lunchvote/cliparse"
	"github.com/evaldasv/lunchvote/middleware"
	"github.com/evaldasv/lunchvote/models"
	"github.com/evaldasv/lunchvote/store"
)

type MenuHandler struct {
	st  *store.Store
	cfg cliparse.Config
}

func NewMenuHandler(st *store.Store, cfg cliparse.Config) *MenuHandler {
	return &MenuHandler{st: st, cfg: cfg}
}

// Publish handles POST /restaurants/{id}/menu
//
// Republishing for the same (restaurant, day) renames the existing
// menu and replaces its item set: items dropped from the payload are
// unlinked. Repeating the same payload is idempotent.
func (h *MenuHandler) Publish(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.PathValue("id")

	var req models.MenuRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "Invalid JSON")
		return
	}
	if req.MenuName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "menuName is required")
		return
	}
	for _, item := range req.MenuItems {
		if item.Name == "" || item.Currency == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation,
				"every menu item needs a name and a currency")
			return
		}
	}

	err := h.st.PublishMenu(r.Context(), restaurantID, req)
	switch {
	case errors.Is(err, store.ErrInvalidDay):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyInvalidDay, err.Error())
		return
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, models.ErrKeyNotFound, "Restaurant not found")
		return
	case errors.Is(err, store.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, models.ErrKeyConflict, err.Error())
		return
	case err != nil:
		slog.Error("failed to publish menu", "error", err, "restaurant_id", restaurantID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Failed to publish menu")
		return
	}

	slog.Info("menu published", "restaurant_id", restaurantID, "menu", req.MenuName, "day", req.Day)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Menu published",
	})
}

// Menus handles GET /restaurants/{id}/menus
func (h *MenuHandler) Menus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.st.MenusForRestaurant(r.Context(), r.PathValue("id"))
	if err != nil {
		slog.Error("failed to resolve menus", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, menus)
}

// MenusCurrent handles GET /restaurants/{id}/menus/current
// The day is derived from the server's weekday.
func (h *MenuHandler) MenusCurrent(w http.ResponseWriter, r *http.Request) {
	menus, err := h.st.MenusForDay(r.Context(), r.PathValue("id"), currentDay(time.Now()))
	if err != nil {
		slog.Error("failed to resolve current menus", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, menus)
}

// currentDay maps Go's Sunday-based weekday onto Monday=1..Sunday=7.
func currentDay(t time.Time) int {
	return (int(t.Weekday())+6)%7 + 1
}
