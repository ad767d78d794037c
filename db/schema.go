// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// The DDL is restricted to the dialect both drivers (lib/pq and
// modernc.org/sqlite) accept: TEXT keys, no server-side defaults,
// timestamps always written by the application.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Accounts
CREATE TABLE IF NOT EXISTS user_account (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS auth_token (
    token_hash TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES user_account(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_auth_token_user ON auth_token(user_id);

-- Employees
CREATE TABLE IF NOT EXISTS employee (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    email TEXT NOT NULL,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

-- Restaurants
CREATE TABLE IF NOT EXISTS restaurant (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    address TEXT NOT NULL,
    city TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

-- Menu items, deduplicated by value. Price is the canonical
-- two-fractional-digit decimal string.
CREATE TABLE IF NOT EXISTS menu_item (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    price TEXT NOT NULL,
    currency TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    UNIQUE (name, price, currency)
);

-- Menus
CREATE TABLE IF NOT EXISTS menu (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    day INTEGER NOT NULL CHECK (day >= 1 AND day <= 7),
    restaurant_id TEXT NOT NULL REFERENCES restaurant(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    UNIQUE (name, day, restaurant_id)
);

CREATE INDEX IF NOT EXISTS idx_menu_restaurant_day ON menu(restaurant_id, day);

-- Menu to menu-item links
CREATE TABLE IF NOT EXISTS menu_item_ref (
    menu_id TEXT NOT NULL REFERENCES menu(id) ON DELETE CASCADE,
    menu_item_id TEXT NOT NULL REFERENCES menu_item(id) ON DELETE CASCADE,
    PRIMARY KEY (menu_id, menu_item_id)
);

CREATE INDEX IF NOT EXISTS idx_menu_item_ref_menu ON menu_item_ref(menu_id);

-- Votes: one aggregate count per (day, menu)
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    count INTEGER NOT NULL,
    day INTEGER NOT NULL CHECK (day >= 1 AND day <= 7),
    menu_id TEXT NOT NULL REFERENCES menu(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    UNIQUE (day, menu_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_day ON vote(day);
`
