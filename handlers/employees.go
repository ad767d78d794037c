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

type EmployeeHandler struct {
	st  *store.Store
	cfg cliparse.Config
}

func NewEmployeeHandler(st *store.Store, cfg cliparse.Config) *EmployeeHandler {
	return &EmployeeHandler{st: st, cfg: cfg}
}

// Create handles POST /employees
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := parseEmployeeRequest(w, r)
	if !ok {
		return
	}

	employee, err := h.st.CreateEmployee(r.Context(), models.Employee{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		slog.Error("failed to create employee", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Failed to create employee")
		return
	}

	slog.Info("employee created", "employee_id", employee.ID)

	middleware.JSONResponse(w, http.StatusCreated, employee)
}

// List handles GET /employees
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.st.Employees(r.Context())
	if err != nil {
		slog.Error("failed to list employees", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, employees)
}

// Get handles GET /employees/{id}
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	employee, err := h.st.EmployeeByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, models.ErrKeyNotFound, "Employee not found")
		return
	}
	if err != nil {
		slog.Error("failed to query employee", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, employee)
}

// Update handles PUT /employees/{id}
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := parseEmployeeRequest(w, r)
	if !ok {
		return
	}

	employee, err := h.st.UpdateEmployee(r.Context(), models.Employee{
		ID:        r.PathValue("id"),
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, models.ErrKeyNotFound, "Employee not found")
		return
	}
	if err != nil {
		slog.Error("failed to update employee", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Failed to update employee")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, employee)
}

// Delete handles DELETE /employees/{id}
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.st.DeleteEmployee(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, models.ErrKeyNotFound, "Employee not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete employee", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Failed to delete employee")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseEmployeeRequest(w http.ResponseWriter, r *http.Request) (models.EmployeeRequest, bool) {
	var req models.EmployeeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "Invalid JSON")
		return req, false
	}
	if req.Username == "" || req.Email == "" || req.FirstName == "" || req.LastName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation,
			"username, email, first_name and last_name are required")
		return req, false
	}
	return req, true
}
