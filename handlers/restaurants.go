// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/evaldasv/lunchvote/cliparse"
	"github.com/evaldasv/lunchvote/middleware"
	"github.com/evaldasv/lunchvote/models"
	"github.com/evaldasv/lunchvote/store"
)

type RestaurantHandler struct {
	st  *store.Store
	cfg cliparse.Config
}

func NewRestaurantHandler(st *store.Store, cfg cliparse.Config) *RestaurantHandler {
	return &RestaurantHandler{st: st, cfg: cfg}
}

// Create handles POST /restaurants
func (h *RestaurantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.RestaurantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "Invalid JSON")
		return
	}
	if req.Name == "" || req.Address == "" || req.City == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation,
			"restaurantName, address and city are required")
		return
	}

	restaurant, err := h.st.CreateRestaurant(r.Context(), models.Restaurant{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
	})
	if err != nil {
		slog.Error("failed to create restaurant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Failed to create restaurant")
		return
	}

	slog.Info("restaurant created", "restaurant_id", restaurant.ID, "name", restaurant.Name)

	middleware.JSONResponse(w, http.StatusCreated, restaurant)
}

// List handles GET /restaurants
func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.st.Restaurants(r.Context())
	if err != nil {
		slog.Error("failed to list restaurants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, restaurants)
}

// Get handles GET /restaurants/{id}
func (h *RestaurantHandler) Get(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.st.RestaurantByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, models.ErrKeyNotFound, "Restaurant not found")
		return
	}
	if err != nil {
		slog.Error("failed to query restaurant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, restaurant)
}

// Delete handles DELETE /restaurants/{id}. Menus, item links, and
// votes of the restaurant go with it.
func (h *RestaurantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.st.DeleteRestaurant(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, models.ErrKeyNotFound, "Restaurant not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete restaurant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Failed to delete restaurant")
		return
	}

	slog.Info("restaurant deleted", "restaurant_id", r.PathValue("id"))

	w.WriteHeader(http.StatusNoContent)
}
