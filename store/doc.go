// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

/*
Package store is the entity store: typed lookup and mutation functions
over database/sql, plus the three operations that carry the business
invariants.

# Typed Lookups

Instead of generic predicate filtering, every access path is a named
function: FindMenu(restaurantID, name, day), FindVote(menuID, day),
RestaurantByID, UserByAuthToken, and so on. Callers never build
queries.

# Core Operations

PublishMenu upserts the menu for a (restaurant, day), deduplicates
items by (name, price, currency) value, links them, and prunes links
dropped by the latest payload. Idempotent for identical payloads.

CastVotes validates the 1-3 entry gate, then applies every entry in a
single transaction: menu lookup by (restaurant, name, day), then a
last-write-wins count upsert per (menu, day). Any missing menu rolls
back the whole batch.

MenusForDay and MenusForRestaurant assemble MenuViews (menu +
restaurant + unordered items); VotesForDay assembles vote records
with their menus. Read paths have no side effects and return empty
slices rather than errors when nothing matches.

# Errors

Sentinel errors form the taxonomy the handlers translate to HTTP:

	ErrInvalidDay                  day outside 1..7
	ErrTooManyOrTooFewSelections   vote batch size outside 1..3
	ErrMenuNotFound                no menu for (restaurant, name, day)
	ErrNotFound                    point lookup missed
	ErrDuplicate                   unique identity already taken
	ErrConflict                    lost a concurrent unique-key race

ErrConflict comes out of check-then-act sequences when the unique
constraint fires for the losing writer; callers retry the request.
*/
package store
