// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	sqlite "modernc.org/sqlite"
)

// Error taxonomy surfaced to the transport layer. Handlers translate
// these into 400-class responses with machine-readable keys; anything
// else is a 500.
var (
	ErrInvalidDay                = errors.New("days are from 1 to 7 (from Monday to Sunday)")
	ErrTooManyOrTooFewSelections = errors.New("only top three menu items are accepted for voting")
	ErrMenuNotFound              = errors.New("menu with provided name and day have not been found")
	ErrNotFound                  = errors.New("record not found")
	ErrDuplicate                 = errors.New("record already exists")
	ErrConflict                  = errors.New("lost a concurrent write, retry the request")
)

// Store exposes typed lookup and mutation operations over the entity
// tables. Compound check-then-act operations (publish, vote) run inside
// a single transaction; a losing unique-constraint race is reported as
// ErrConflict rather than left as a driver error.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func newID() string {
	return uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// isUniqueViolation reports whether err is a unique or primary key
// constraint violation from either supported driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		// SQLITE_CONSTRAINT_PRIMARYKEY and SQLITE_CONSTRAINT_UNIQUE
		return sqErr.Code() == 1555 || sqErr.Code() == 2067
	}
	return false
}
