// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/evaldasv/lunchvote/models"
)

// CreateUser inserts a new account. Returns ErrDuplicate when the
// username or email is already taken.
func (s *Store) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	u.ID = newID()
	u.CreatedAt = now()
	u.UpdatedAt = u.CreatedAt

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_account (id, username, email, password_hash, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, u.ID, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.CreatedAt, u.UpdatedAt)

	if isUniqueViolation(err) {
		return models.User{}, ErrDuplicate
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return u, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, first_name, last_name, created_at, updated_at
		FROM user_account
		WHERE email = $1
	`, email))
}

func (s *Store) UserByID(ctx context.Context, id string) (models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, first_name, last_name, created_at, updated_at
		FROM user_account
		WHERE id = $1
	`, id))
}

func (s *Store) scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

func (s *Store) UpdateUserPassword(ctx context.Context, id, passwordHash string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE user_account SET password_hash = $1, updated_at = $2 WHERE id = $3
	`, passwordHash, now(), id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveAuthToken stores the hashed form of a freshly issued token.
func (s *Store) SaveAuthToken(ctx context.Context, userID, tokenHash string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO auth_token (token_hash, user_id, created_at)
		VALUES ($1, $2, $3)
	`, tokenHash, userID, now())
	if err != nil {
		return fmt.Errorf("failed to save auth token: %w", err)
	}
	return nil
}

// DeleteAuthTokens revokes every token for a user (logout, token
// rotation on login).
func (s *Store) DeleteAuthTokens(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM auth_token WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete auth tokens: %w", err)
	}
	return nil
}

// UserByAuthToken resolves the account behind a hashed bearer token.
func (s *Store) UserByAuthToken(ctx context.Context, tokenHash string) (models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT u.id, u.username, u.email, u.password_hash, u.first_name, u.last_name, u.created_at, u.updated_at
		FROM auth_token t
		JOIN user_account u ON t.user_id = u.id
		WHERE t.token_hash = $1
	`, tokenHash))
}
