// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/evaldasv/lunchvote/db"
	"github.com/evaldasv/lunchvote/models"
)

// The testutil package depends on store, so the store suite opens its
// test database directly instead of going through testutil.OpenTestDB.
func openTestDB(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store_test.db")
	conn, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return New(conn)
}

func seedRestaurant(t *testing.T, s *Store, name string) models.Restaurant {
	t.Helper()
	r, err := s.CreateRestaurant(context.Background(), models.Restaurant{
		Name:    name,
		Address: "1 Test Street",
		City:    "Vilnius",
	})
	if err != nil {
		t.Fatalf("Failed to seed restaurant: %v", err)
	}
	return r
}

func item(name, price, currency string) models.MenuItemPayload {
	return models.MenuItemPayload{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Currency: currency,
	}
}

func countRows(t *testing.T, s *Store, query string, args ...any) int {
	t.Helper()
	var n int
	if err := s.db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}
