// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/evaldasv/lunchvote/models"
)

// PublishMenu creates or updates the menu for (restaurantID, day) and
// links its items, all in one transaction.
//
// Contract: republish replaces. A menu already present for that day
// keeps its row but takes the new name, items are deduplicated by
// (name, price, currency) value, and links to items absent from the
// new payload are pruned. Publishing the same payload twice is a
// no-op the second time.
func (s *Store) PublishMenu(ctx context.Context, restaurantID string, req models.MenuRequest) error {
	if req.Day < models.MinDay || req.Day > models.MaxDay {
		return ErrInvalidDay
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists string
	err = tx.QueryRowContext(ctx, `SELECT id FROM restaurant WHERE id = $1`, restaurantID).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query restaurant: %w", err)
	}

	// Upsert the menu keyed by (restaurant, day). The day+restaurant
	// lookup runs before any name comparison, so a republish under a
	// new name renames the existing row instead of adding a second
	// menu for the day.
	var menuID string
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM menu WHERE restaurant_id = $1 AND day = $2 LIMIT 1
	`, restaurantID, req.Day).Scan(&menuID)

	switch {
	case err == sql.ErrNoRows:
		menuID = newID()
		ts := now()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO menu (id, name, day, restaurant_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, menuID, req.MenuName, req.Day, restaurantID, ts, ts)
		if isUniqueViolation(err) {
			return ErrConflict
		}
		if err != nil {
			return fmt.Errorf("failed to insert menu: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to query menu: %w", err)
	default:
		_, err = tx.ExecContext(ctx, `
			UPDATE menu SET name = $1, updated_at = $2 WHERE id = $3
		`, req.MenuName, now(), menuID)
		if err != nil {
			return fmt.Errorf("failed to update menu: %w", err)
		}
	}

	keep := make(map[string]bool, len(req.MenuItems))
	for _, item := range req.MenuItems {
		itemID, err := getOrCreateMenuItem(ctx, tx, item)
		if err != nil {
			return err
		}
		if err := linkMenuItem(ctx, tx, menuID, itemID); err != nil {
			return err
		}
		keep[itemID] = true
	}

	if err := pruneMenuItemRefs(ctx, tx, menuID, keep); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit menu publish: %w", err)
	}
	return nil
}

// getOrCreateMenuItem deduplicates items by (name, price, currency)
// value. The price is canonicalized to two fractional digits before
// comparison so 3.5 and 3.50 are the same item.
func getOrCreateMenuItem(ctx context.Context, tx *sql.Tx, item models.MenuItemPayload) (string, error) {
	price := item.Price.StringFixed(2)

	var id string
	err := tx.QueryRowContext(ctx, `
		SELECT id FROM menu_item WHERE name = $1 AND price = $2 AND currency = $3
	`, item.Name, price, item.Currency).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("failed to query menu item: %w", err)
	}

	id = newID()
	ts := now()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO menu_item (id, name, price, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, item.Name, price, item.Currency, ts, ts)
	if isUniqueViolation(err) {
		return "", ErrConflict
	}
	if err != nil {
		return "", fmt.Errorf("failed to insert menu item: %w", err)
	}
	return id, nil
}

func linkMenuItem(ctx context.Context, tx *sql.Tx, menuID, itemID string) error {
	var one int
	err := tx.QueryRowContext(ctx, `
		SELECT 1 FROM menu_item_ref WHERE menu_id = $1 AND menu_item_id = $2
	`, menuID, itemID).Scan(&one)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to query menu item link: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO menu_item_ref (menu_id, menu_item_id) VALUES ($1, $2)
	`, menuID, itemID)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to link menu item: %w", err)
	}
	return nil
}

// pruneMenuItemRefs drops links to items that the latest publish no
// longer carries.
func pruneMenuItemRefs(ctx context.Context, tx *sql.Tx, menuID string, keep map[string]bool) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT menu_item_id FROM menu_item_ref WHERE menu_id = $1
	`, menuID)
	if err != nil {
		return fmt.Errorf("failed to query menu item links: %w", err)
	}

	stale := []string{}
	for rows.Next() {
		var itemID string
		if err := rows.Scan(&itemID); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan menu item link: %w", err)
		}
		if !keep[itemID] {
			stale = append(stale, itemID)
		}
	}
	if err := rows.Close(); err != nil {
		return fmt.Errorf("failed to read menu item links: %w", err)
	}

	for _, itemID := range stale {
		_, err := tx.ExecContext(ctx, `
			DELETE FROM menu_item_ref WHERE menu_id = $1 AND menu_item_id = $2
		`, menuID, itemID)
		if err != nil {
			return fmt.Errorf("failed to prune menu item link: %w", err)
		}
	}
	return nil
}

// FindMenu looks up a menu by its (restaurant, name, day) identity.
func (s *Store) FindMenu(ctx context.Context, restaurantID, name string, day int) (models.Menu, error) {
	var m models.Menu
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, day, restaurant_id, created_at, updated_at
		FROM menu
		WHERE restaurant_id = $1 AND name = $2 AND day = $3
	`, restaurantID, name, day).Scan(&m.ID, &m.Name, &m.Day, &m.RestaurantID, &m.CreatedAt, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Menu{}, ErrMenuNotFound
	}
	if err != nil {
		return models.Menu{}, fmt.Errorf("failed to query menu: %w", err)
	}
	return m, nil
}

// MenusForDay resolves every menu a restaurant has for the given day,
// with its restaurant and item set attached. More than one menu per
// day is legal here even though PublishMenu keeps it to one in steady
// state. Returns an empty slice, not an error, when there is none.
func (s *Store) MenusForDay(ctx context.Context, restaurantID string, day int) ([]models.MenuView, error) {
	return s.resolveMenus(ctx, `
		SELECT m.id, m.name, m.day, m.restaurant_id, m.created_at, m.updated_at,
		       r.id, r.name, r.address, r.city, r.created_at, r.updated_at
		FROM menu m
		JOIN restaurant r ON m.restaurant_id = r.id
		WHERE m.restaurant_id = $1 AND m.day = $2
	`, restaurantID, day)
}

// MenusForRestaurant resolves all menus of a restaurant across days.
func (s *Store) MenusForRestaurant(ctx context.Context, restaurantID string) ([]models.MenuView, error) {
	return s.resolveMenus(ctx, `
		SELECT m.id, m.name, m.day, m.restaurant_id, m.created_at, m.updated_at,
		       r.id, r.name, r.address, r.city, r.created_at, r.updated_at
		FROM menu m
		JOIN restaurant r ON m.restaurant_id = r.id
		WHERE m.restaurant_id = $1
		ORDER BY m.day
	`, restaurantID)
}

func (s *Store) resolveMenus(ctx context.Context, query string, args ...any) ([]models.MenuView, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query menus: %w", err)
	}

	// Materialize the menu rows before fetching items so a single-conn
	// pool (the sqlite test setup) never nests live queries.
	views := []models.MenuView{}
	for rows.Next() {
		var v models.MenuView
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Day, &v.RestaurantID, &v.CreatedAt, &v.UpdatedAt,
			&v.Restaurant.ID, &v.Restaurant.Name, &v.Restaurant.Address,
			&v.Restaurant.City, &v.Restaurant.CreatedAt, &v.Restaurant.UpdatedAt,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("failed to read menus: %w", err)
	}

	for i := range views {
		items, err := s.menuItems(ctx, views[i].ID)
		if err != nil {
			return nil, err
		}
		views[i].MenuItems = items
	}
	return views, nil
}

func (s *Store) menuItems(ctx context.Context, menuID string) ([]models.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT i.id, i.name, i.price, i.currency, i.created_at, i.updated_at
		FROM menu_item_ref ref
		JOIN menu_item i ON ref.menu_item_id = i.id
		WHERE ref.menu_id = $1
	`, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		var price string
		if err := rows.Scan(&item.ID, &item.Name, &price, &item.Currency,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		item.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("invalid stored price %q: %w", price, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
