// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/evaldasv/lunchvote/models"
)

func (s *Store) CreateRestaurant(ctx context.Context, r models.Restaurant) (models.Restaurant, error) {
	r.ID = newID()
	r.CreatedAt = now()
	r.UpdatedAt = r.CreatedAt

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO restaurant (id, name, address, city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.ID, r.Name, r.Address, r.City, r.CreatedAt, r.UpdatedAt)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to insert restaurant: %w", err)
	}
	return r, nil
}

func (s *Store) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, address, city, created_at, updated_at
		FROM restaurant
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := []models.Restaurant{}
	for rows.Next() {
		var r models.Restaurant
		if err := rows.Scan(&r.ID, &r.Name, &r.Address, &r.City,
			&r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

func (s *Store) RestaurantByID(ctx context.Context, id string) (models.Restaurant, error) {
	var r models.Restaurant
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, address, city, created_at, updated_at
		FROM restaurant
		WHERE id = $1
	`, id).Scan(&r.ID, &r.Name, &r.Address, &r.City, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Restaurant{}, ErrNotFound
	}
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to query restaurant: %w", err)
	}
	return r, nil
}

// DeleteRestaurant removes a restaurant and everything hanging off it:
// votes, menu-item links, and menus. The schema declares ON DELETE
// CASCADE too, but deleting explicitly keeps the behavior identical on
// SQLite connections that do not enforce foreign keys.
func (s *Store) DeleteRestaurant(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists string
	err = tx.QueryRowContext(ctx, `SELECT id FROM restaurant WHERE id = $1`, id).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query restaurant: %w", err)
	}

	for _, q := range []string{
		`DELETE FROM vote WHERE menu_id IN (SELECT id FROM menu WHERE restaurant_id = $1)`,
		`DELETE FROM menu_item_ref WHERE menu_id IN (SELECT id FROM menu WHERE restaurant_id = $1)`,
		`DELETE FROM menu WHERE restaurant_id = $1`,
		`DELETE FROM restaurant WHERE id = $1`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("failed to cascade restaurant delete: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit restaurant delete: %w", err)
	}
	return nil
}
