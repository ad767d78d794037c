// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The same DDL runs on PostgreSQL (lib/pq) and SQLite
(modernc.org/sqlite); to keep it portable there are no server-side
defaults - created_at and updated_at are always set by the store.

# Tables

  - user_account: registered users
  - auth_token: hashed bearer tokens per user
  - employee: employee directory records
  - restaurant: restaurant metadata
  - menu_item: menu items, unique by (name, price, currency)
  - menu: one named menu per (name, day, restaurant)
  - menu_item_ref: many-to-many menu to menu-item links
  - vote: aggregate vote count, unique by (day, menu)

# Relationships

	user_account 1──* auth_token
	restaurant 1──* menu
	menu *──* menu_item (via menu_item_ref)
	menu 1──* vote

All foreign keys use ON DELETE CASCADE. The store also deletes
dependents explicitly inside its transactions so behavior does not
depend on whether the SQLite connection enforces foreign keys.

# Uniqueness Invariants

The three unique constraints carry the core business invariants:
menu items deduplicate by value, a restaurant publishes at most one
menu with a given name per day, and votes aggregate to a single row
per (day, menu). A losing concurrent writer surfaces a constraint
violation that the store translates into a retryable conflict.
*/
package db
