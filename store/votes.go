// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/evaldasv/lunchvote/models"
)

// CastVotes applies a vote submission of 1 to 3 entries against a
// restaurant's menus. The whole batch runs in one transaction: if any
// entry names a menu that does not exist for its day, nothing is
// applied. A repeat vote for the same (menu, day) overwrites the
// stored count - votes aggregate by last write, they do not sum.
//
// The single-entry API shape goes through here as a batch of one, so
// both shapes share the lookup and upsert logic.
func (s *Store) CastVotes(ctx context.Context, restaurantID string, entries []models.VoteEntry) error {
	if len(entries) < models.MinSelections || len(entries) > models.MaxSelections {
		return ErrTooManyOrTooFewSelections
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, entry := range entries {
		var menuID string
		err := tx.QueryRowContext(ctx, `
			SELECT id FROM menu WHERE restaurant_id = $1 AND name = $2 AND day = $3
		`, restaurantID, entry.MenuName, entry.Day).Scan(&menuID)
		if err == sql.ErrNoRows {
			return ErrMenuNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to query menu: %w", err)
		}

		if err := upsertVote(ctx, tx, menuID, entry.Day, entry.Votes); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit votes: %w", err)
	}
	return nil
}

func upsertVote(ctx context.Context, tx *sql.Tx, menuID string, day, count int) error {
	var voteID string
	err := tx.QueryRowContext(ctx, `
		SELECT id FROM vote WHERE menu_id = $1 AND day = $2
	`, menuID, day).Scan(&voteID)

	switch {
	case err == sql.ErrNoRows:
		ts := now()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO vote (id, count, day, menu_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, newID(), count, day, menuID, ts, ts)
		if isUniqueViolation(err) {
			return ErrConflict
		}
		if err != nil {
			return fmt.Errorf("failed to insert vote: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to query vote: %w", err)
	default:
		// Last write wins.
		_, err = tx.ExecContext(ctx, `
			UPDATE vote SET count = $1, updated_at = $2 WHERE id = $3
		`, count, now(), voteID)
		if err != nil {
			return fmt.Errorf("failed to update vote: %w", err)
		}
	}
	return nil
}

// FindVote looks up the aggregate vote row for a (menu, day) pair.
func (s *Store) FindVote(ctx context.Context, menuID string, day int) (models.Vote, error) {
	var v models.Vote
	err := s.db.QueryRowContext(ctx, `
		SELECT id, count, day, menu_id, created_at, updated_at
		FROM vote
		WHERE menu_id = $1 AND day = $2
	`, menuID, day).Scan(&v.ID, &v.Count, &v.Day, &v.MenuID, &v.CreatedAt, &v.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Vote{}, ErrNotFound
	}
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to query vote: %w", err)
	}
	return v, nil
}

// VotesForDay lists every vote record for a day across restaurants,
// each with its menu resolved. Empty slice when nobody voted.
func (s *Store) VotesForDay(ctx context.Context, day int) ([]models.VoteView, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.count, v.day, v.menu_id, v.created_at, v.updated_at,
		       m.id, m.name, m.day, m.restaurant_id, m.created_at, m.updated_at,
		       r.id, r.name, r.address, r.city, r.created_at, r.updated_at
		FROM vote v
		JOIN menu m ON v.menu_id = m.id
		JOIN restaurant r ON m.restaurant_id = r.id
		WHERE v.day = $1
	`, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}

	views := []models.VoteView{}
	for rows.Next() {
		var v models.VoteView
		if err := rows.Scan(
			&v.ID, &v.Count, &v.Day, &v.MenuID, &v.CreatedAt, &v.UpdatedAt,
			&v.Menu.ID, &v.Menu.Name, &v.Menu.Day, &v.Menu.RestaurantID,
			&v.Menu.CreatedAt, &v.Menu.UpdatedAt,
			&v.Menu.Restaurant.ID, &v.Menu.Restaurant.Name, &v.Menu.Restaurant.Address,
			&v.Menu.Restaurant.City, &v.Menu.Restaurant.CreatedAt, &v.Menu.Restaurant.UpdatedAt,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("failed to read votes: %w", err)
	}

	for i := range views {
		items, err := s.menuItems(ctx, views[i].Menu.ID)
		if err != nil {
			return nil, err
		}
		views[i].Menu.MenuItems = items
	}
	return views, nil
}
