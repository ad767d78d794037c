// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Day-of-week bounds, Monday=1 through Sunday=7.
const (
	MinDay = 1
	MaxDay = 7
)

// Vote batch bounds: a single submission carries the voter's top picks.
const (
	MinSelections = 1
	MaxSelections = 3
)

// API version constants for the vote payload shape.
const (
	VersionSingle = "v1.0"
	VersionBatch  = "v2.0"
)

// Machine-readable error keys returned in ErrorResponse.Error.
const (
	ErrKeyInvalidDay   = "InvalidDay"
	ErrKeyTooFewOrMany = "TooManyOrTooFewSelections"
	ErrKeyMenuNotFound = "MenuNotFound"
	ErrKeyValidation   = "ValidationError"
	ErrKeyNotFound     = "NotFound"
	ErrKeyConflict     = "Conflict"
	ErrKeyUnauthorized = "Unauthorized"
	ErrKeyInternal     = "InternalError"
)

// TopThreeMessage accompanies every successful vote response.
const TopThreeMessage = "Only top three menu items are accepted for voting"

// Request types

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type EmployeeRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RestaurantRequest struct {
	Name    string `json:"restaurantName"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type MenuItemPayload struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

type MenuRequest struct {
	MenuName  string            `json:"menuName"`
	Day       int               `json:"day"`
	MenuItems []MenuItemPayload `json:"menuItems"`
}

// VoteEntry is one menu selection. The v1.0 payload is a bare entry;
// the v2.0 payload wraps up to three entries in VoteBatchRequest.
type VoteEntry struct {
	MenuName string `json:"menuName"`
	Day      int    `json:"day"`
	Votes    int    `json:"votes"`
}

type VoteBatchRequest struct {
	Data []VoteEntry `json:"data"`
}

// Response types

type AuthResponse struct {
	User      User   `json:"user"`
	AuthToken string `json:"auth_token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created"`
	UpdatedAt    time.Time `json:"updated"`
}

type Employee struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

type Restaurant struct {
	ID        string    `json:"id"`
	Name      string    `json:"restaurantName"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

type MenuItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"created"`
	UpdatedAt time.Time       `json:"updated"`
}

type Menu struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Day          int       `json:"day"`
	RestaurantID string    `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created"`
	UpdatedAt    time.Time `json:"updated"`
}

// MenuView is the composite read model: a menu with its restaurant and
// the unordered set of menu items linked to it.
type MenuView struct {
	Menu
	Restaurant Restaurant `json:"restaurant"`
	MenuItems  []MenuItem `json:"menuItems"`
}

type Vote struct {
	ID        string    `json:"id"`
	Count     int       `json:"count"`
	Day       int       `json:"day"`
	MenuID    string    `json:"menu_id"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// VoteView nests the resolved menu in a vote record for read endpoints.
type VoteView struct {
	Vote
	Menu MenuView `json:"menu"`
}
