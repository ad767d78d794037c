// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/evaldasv/lunchvote/models"
)

func TestEmployeeLifecycle(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	created, err := s.CreateEmployee(ctx, models.Employee{
		Username:  "ruta",
		Email:     "ruta@example.com",
		FirstName: "Ruta",
		LastName:  "Kazlauskiene",
	})
	if err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Expected generated employee ID")
	}

	got, err := s.EmployeeByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("EmployeeByID failed: %v", err)
	}
	if got.Username != "ruta" {
		t.Errorf("Expected username ruta, got %q", got.Username)
	}

	got.Email = "ruta.k@example.com"
	updated, err := s.UpdateEmployee(ctx, got)
	if err != nil {
		t.Fatalf("UpdateEmployee failed: %v", err)
	}
	if updated.Email != "ruta.k@example.com" {
		t.Errorf("Expected updated email, got %q", updated.Email)
	}

	if err := s.DeleteEmployee(ctx, created.ID); err != nil {
		t.Fatalf("DeleteEmployee failed: %v", err)
	}
	if _, err := s.EmployeeByID(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Deleted employee: expected ErrNotFound, got %v", err)
	}
}

func TestEmployeesOrdering(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	for _, username := range []string{"alpha", "charlie", "bravo"} {
		_, err := s.CreateEmployee(ctx, models.Employee{
			Username:  username,
			Email:     username + "@example.com",
			FirstName: "Test",
			LastName:  "Employee",
		})
		if err != nil {
			t.Fatalf("CreateEmployee %q failed: %v", username, err)
		}
	}

	employees, err := s.Employees(ctx)
	if err != nil {
		t.Fatalf("Employees failed: %v", err)
	}
	if len(employees) != 3 {
		t.Fatalf("Expected 3 employees, got %d", len(employees))
	}
	for i, want := range []string{"charlie", "bravo", "alpha"} {
		if employees[i].Username != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, employees[i].Username)
		}
	}
}

func TestEmployeeNotFound(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	if _, err := s.EmployeeByID(ctx, "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("EmployeeByID: expected ErrNotFound, got %v", err)
	}
	if _, err := s.UpdateEmployee(ctx, models.Employee{ID: "no-such-id", Username: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateEmployee: expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteEmployee(ctx, "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteEmployee: expected ErrNotFound, got %v", err)
	}
}
