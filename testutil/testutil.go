// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/evaldasv/lunchvote/auth"
	"github.com/evaldasv/lunchvote/cliparse"
	"github.com/evaldasv/lunchvote/db"
	"github.com/evaldasv/lunchvote/models"
	"github.com/evaldasv/lunchvote/store"
)

// OpenTestDB creates a fresh sqlite database in a per-test temp dir
// with the full schema. The suite needs no external services.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lunchvote_test.db")
	conn, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Single writer: sqlite locks the whole file
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// TestConfig returns a standard test configuration
func TestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseType: "sqlite",
		DatabaseURL:  "file:test.db",
		TokenSalt:    "test-token-salt",
	}
}

// CreateTestUser registers an account and returns it with a valid
// bearer token.
func CreateTestUser(t *testing.T, st *store.Store, cfg cliparse.Config, username string) (models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user, err := st.CreateUser(context.Background(), models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		FirstName:    "Test",
		LastName:     "User",
	})
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	token, err := auth.GenerateToken()
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if err := st.SaveAuthToken(context.Background(), user.ID, auth.HashToken(token, cfg.TokenSalt)); err != nil {
		t.Fatalf("Failed to save token: %v", err)
	}

	return user, token
}

// CreateTestRestaurant inserts a restaurant and returns it
func CreateTestRestaurant(t *testing.T, st *store.Store, name string) models.Restaurant {
	t.Helper()

	restaurant, err := st.CreateRestaurant(context.Background(), models.Restaurant{
		Name:    name,
		Address: "1 Test Street",
		City:    "Vilnius",
	})
	if err != nil {
		t.Fatalf("Failed to create test restaurant: %v", err)
	}
	return restaurant
}

// PublishTestMenu publishes a menu through the store
func PublishTestMenu(t *testing.T, st *store.Store, restaurantID, menuName string, day int, items ...models.MenuItemPayload) {
	t.Helper()

	err := st.PublishMenu(context.Background(), restaurantID, models.MenuRequest{
		MenuName:  menuName,
		Day:       day,
		MenuItems: items,
	})
	if err != nil {
		t.Fatalf("Failed to publish test menu: %v", err)
	}
}

// Item builds a menu item payload from a price literal like "3.50"
func Item(name, price, currency string) models.MenuItemPayload {
	return models.MenuItemPayload{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Currency: currency,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AuthHeaders returns the Authorization header map for a token
func AuthHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Token " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertErrorKey checks the machine-readable error key of a response
func AssertErrorKey(t *testing.T, w *httptest.ResponseRecorder, key string) {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != key {
		t.Errorf("Expected error key %q, got %q (message: %s)", key, resp.Error, resp.Message)
	}
}
