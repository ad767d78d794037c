// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

/*
Package main provides the entry point for the lunchvote API server.

Lunchvote is a restaurant-menu voting service: restaurant owners
publish a menu for each weekday, employees browse the menus and vote
for their top picks (at most three per submission), and vote counts
aggregate per menu per day.

# Starting the Server

The server reads configuration from a .env file, environment
variables, or CLI flags:

	TOKEN_SALT=... go run .

Or with flags against PostgreSQL:

	go run . -p 8000 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - TOKEN_SALT (--token-salt): secret for auth token hashing

Optional settings:

  - PORT (-p): server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string (default: file:lunchvote.db)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: entity store with typed lookups and the voting/publishing core
  - handlers: HTTP request handlers (accounts, employees, restaurants,
    menus, voting)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, auth guard, JSON helpers
  - models: request/response and domain types
  - auth: token generation and password hashing
  - db: schema creation (portable across both drivers)
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
