// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/evaldasv/lunchvote/models"
)

func (s *Store) CreateEmployee(ctx context.Context, e models.Employee) (models.Employee, error) {
	e.ID = newID()
	e.CreatedAt = now()
	e.UpdatedAt = e.CreatedAt

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO employee (id, username, email, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, e.ID, e.Username, e.Email, e.FirstName, e.LastName, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}
	return e, nil
}

// Employees lists all employee records, newest username first.
func (s *Store) Employees(ctx context.Context) ([]models.Employee, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, email, first_name, last_name, created_at, updated_at
		FROM employee
		ORDER BY username DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Username, &e.Email, &e.FirstName,
			&e.LastName, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (s *Store) EmployeeByID(ctx context.Context, id string) (models.Employee, error) {
	var e models.Employee
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, email, first_name, last_name, created_at, updated_at
		FROM employee
		WHERE id = $1
	`, id).Scan(&e.ID, &e.Username, &e.Email, &e.FirstName,
		&e.LastName, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Employee{}, ErrNotFound
	}
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to query employee: %w", err)
	}
	return e, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, e models.Employee) (models.Employee, error) {
	e.UpdatedAt = now()
	res, err := s.db.ExecContext(ctx, `
		UPDATE employee
		SET username = $1, email = $2, first_name = $3, last_name = $4, updated_at = $5
		WHERE id = $6
	`, e.Username, e.Email, e.FirstName, e.LastName, e.UpdatedAt, e.ID)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Employee{}, ErrNotFound
	}
	return s.EmployeeByID(ctx, e.ID)
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM employee WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
