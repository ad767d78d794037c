// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest, LoginRequest, PasswordChangeRequest: account flows
  - EmployeeRequest: employee create/update
  - RestaurantRequest: restaurant create
  - MenuRequest: menuName, day, menuItems (publish payload)
  - VoteEntry: menuName, day, votes (v1.0 vote payload)
  - VoteBatchRequest: data, a list of 1-3 VoteEntry (v2.0 vote payload)

# Response Types

  - AuthResponse: user plus auth_token
  - MessageResponse: informational message
  - ErrorResponse: machine-readable error key plus message

# Domain Types

  - User, Employee: identity records
  - Restaurant: owns menus
  - MenuItem: deduplicated by (name, price, currency) value
  - Menu: one per (name, day, restaurant)
  - MenuView: menu with nested restaurant and its menu items
  - Vote: aggregate count per (menu, day)
  - VoteView: vote with the resolved menu nested

Prices are shopspring decimals serialized as JSON numbers with two
fractional digits.

# Constants

Days run Monday=1 through Sunday=7 (MinDay, MaxDay). A vote submission
carries MinSelections to MaxSelections entries. VersionSingle and
VersionBatch select the vote payload shape via the X-API-Version header.
*/
package models
