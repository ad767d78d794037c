// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

/*
Package testutil provides test helpers for the lunchvote test suites.

OpenTestDB opens a throwaway sqlite database with the full schema, so
handler and router tests run hermetically without a PostgreSQL server.
The remaining helpers seed accounts, restaurants and menus, build HTTP
test requests, and assert on responses.
*/
package testutil
