// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

/*
Package handlers contains HTTP request handlers for the lunchvote API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - AccountHandler: register, login, logout, password change
  - EmployeeHandler: employee directory CRUD
  - RestaurantHandler: restaurant CRUD with cascading delete
  - MenuHandler: menu publishing and resolution
  - VotingHandler: vote casting (single and batch) and vote queries

Handlers are created via constructor functions that accept *store.Store
and Config:

	menuHandler := handlers.NewMenuHandler(st, cfg)

# Publish Flow

Owners publish a day's menu; republishing renames and replaces:

	POST /restaurants/{id}/menu          → Publish (201)
	GET  /restaurants/{id}/menus         → Menus
	GET  /restaurants/{id}/menus/current → MenusCurrent (server weekday)

# Voting Flow

	POST /restaurants/{id}/vote → CastVote
	GET  /votes/current         → VotesCurrent

CastVote reads the X-API-Version header to pick the payload shape
(v1.0 single entry, v2.0 batch of 1-3; default v1.0) via a decoder
table built once in NewVotingHandler. The batch applies atomically.

# Error Mapping

Store sentinel errors map to 400-class responses carrying a
machine-readable key: InvalidDay, TooManyOrTooFewSelections,
MenuNotFound, ValidationError; ErrConflict maps to 409 so callers can
retry a lost unique-key race. Days run Monday=1 through Sunday=7 and
currentDay derives today's index from the server clock.
*/
package handlers
