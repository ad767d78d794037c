// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/evaldasv/lunchvote/models"
)

func publishMenu(t *testing.T, s *Store, restaurantID, name string, day int) {
	t.Helper()
	err := s.PublishMenu(context.Background(), restaurantID, models.MenuRequest{
		MenuName:  name,
		Day:       day,
		MenuItems: []models.MenuItemPayload{item("Dish of the day", "5.00", "EUR")},
	})
	if err != nil {
		t.Fatalf("Failed to publish menu %q: %v", name, err)
	}
}

func TestCastVotesBatchBounds(t *testing.T) {
	s := openTestDB(t)
	r := seedRestaurant(t, s, "Pho Corner")
	publishMenu(t, s, r.ID, "Monday", 1)

	entry := models.VoteEntry{MenuName: "Monday", Day: 1, Votes: 1}

	tests := []struct {
		name    string
		entries []models.VoteEntry
	}{
		{"empty batch", []models.VoteEntry{}},
		{"four entries", []models.VoteEntry{entry, entry, entry, entry}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.CastVotes(context.Background(), r.ID, tt.entries)
			if !errors.Is(err, ErrTooManyOrTooFewSelections) {
				t.Errorf("Expected ErrTooManyOrTooFewSelections, got %v", err)
			}
		})
	}

	if n := countRows(t, s, `SELECT COUNT(*) FROM vote`); n != 0 {
		t.Errorf("Expected 0 votes after rejected batches, got %d", n)
	}
}

func TestCastVotesCreatesVote(t *testing.T) {
	s := openTestDB(t)
	r := seedRestaurant(t, s, "Pho Corner")
	publishMenu(t, s, r.ID, "Monday", 1)
	ctx := context.Background()

	err := s.CastVotes(ctx, r.ID, []models.VoteEntry{
		{MenuName: "Monday", Day: 1, Votes: 10},
	})
	if err != nil {
		t.Fatalf("CastVotes failed: %v", err)
	}

	menu, err := s.FindMenu(ctx, r.ID, "Monday", 1)
	if err != nil {
		t.Fatalf("FindMenu failed: %v", err)
	}
	vote, err := s.FindVote(ctx, menu.ID, 1)
	if err != nil {
		t.Fatalf("FindVote failed: %v", err)
	}
	if vote.Count != 10 {
		t.Errorf("Expected count 10, got %d", vote.Count)
	}
}

func TestCastVotesOverwrites(t *testing.T) {
	s := openTestDB(t)
	r := seedRestaurant(t, s, "Pho Corner")
	publishMenu(t, s, r.ID, "Monday", 1)
	ctx := context.Background()

	for _, count := range []int{5, 2} {
		err := s.CastVotes(ctx, r.ID, []models.VoteEntry{
			{MenuName: "Monday", Day: 1, Votes: count},
		})
		if err != nil {
			t.Fatalf("CastVotes with count %d failed: %v", count, err)
		}
	}

	menu, err := s.FindMenu(ctx, r.ID, "Monday", 1)
	if err != nil {
		t.Fatalf("FindMenu failed: %v", err)
	}
	vote, err := s.FindVote(ctx, menu.ID, 1)
	if err != nil {
		t.Fatalf("FindVote failed: %v", err)
	}
	// Last write wins, counts do not accumulate
	if vote.Count != 2 {
		t.Errorf("Expected count 2 after overwrite, got %d", vote.Count)
	}
	if n := countRows(t, s, `SELECT COUNT(*) FROM vote`); n != 1 {
		t.Errorf("Expected a single vote row, got %d", n)
	}
}

func TestCastVotesUnknownMenuRollsBackBatch(t *testing.T) {
	s := openTestDB(t)
	r := seedRestaurant(t, s, "Pho Corner")
	publishMenu(t, s, r.ID, "Monday", 1)

	err := s.CastVotes(context.Background(), r.ID, []models.VoteEntry{
		{MenuName: "Monday", Day: 1, Votes: 3},
		{MenuName: "No such menu", Day: 1, Votes: 1},
	})
	if !errors.Is(err, ErrMenuNotFound) {
		t.Fatalf("Expected ErrMenuNotFound, got %v", err)
	}

	// The valid first entry must not have been applied
	if n := countRows(t, s, `SELECT COUNT(*) FROM vote`); n != 0 {
		t.Errorf("Expected 0 votes after rolled-back batch, got %d", n)
	}
}

func TestCastVotesBatchOfThree(t *testing.T) {
	s := openTestDB(t)
	r := seedRestaurant(t, s, "Pho Corner")
	publishMenu(t, s, r.ID, "Monday", 1)
	publishMenu(t, s, r.ID, "Tuesday", 2)
	publishMenu(t, s, r.ID, "Wednesday", 3)

	err := s.CastVotes(context.Background(), r.ID, []models.VoteEntry{
		{MenuName: "Monday", Day: 1, Votes: 3},
		{MenuName: "Tuesday", Day: 2, Votes: 2},
		{MenuName: "Wednesday", Day: 3, Votes: 1},
	})
	if err != nil {
		t.Fatalf("CastVotes failed: %v", err)
	}

	if n := countRows(t, s, `SELECT COUNT(*) FROM vote`); n != 3 {
		t.Errorf("Expected 3 vote rows, got %d", n)
	}
}

func TestFindVoteNotFound(t *testing.T) {
	s := openTestDB(t)

	if _, err := s.FindVote(context.Background(), "no-such-menu", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestVotesForDay(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	first := seedRestaurant(t, s, "Pho Corner")
	second := seedRestaurant(t, s, "Burger Barn")
	publishMenu(t, s, first.ID, "Monday", 1)
	publishMenu(t, s, second.ID, "Monday grill", 1)
	publishMenu(t, s, first.ID, "Tuesday", 2)

	votes, err := s.VotesForDay(ctx, 1)
	if err != nil {
		t.Fatalf("VotesForDay failed: %v", err)
	}
	if len(votes) != 0 {
		t.Fatalf("Expected no votes before casting, got %d", len(votes))
	}

	if err := s.CastVotes(ctx, first.ID, []models.VoteEntry{{MenuName: "Monday", Day: 1, Votes: 4}}); err != nil {
		t.Fatalf("CastVotes failed: %v", err)
	}
	if err := s.CastVotes(ctx, second.ID, []models.VoteEntry{{MenuName: "Monday grill", Day: 1, Votes: 7}}); err != nil {
		t.Fatalf("CastVotes failed: %v", err)
	}
	if err := s.CastVotes(ctx, first.ID, []models.VoteEntry{{MenuName: "Tuesday", Day: 2, Votes: 1}}); err != nil {
		t.Fatalf("CastVotes failed: %v", err)
	}

	votes, err = s.VotesForDay(ctx, 1)
	if err != nil {
		t.Fatalf("VotesForDay failed: %v", err)
	}
	if len(votes) != 2 {
		t.Fatalf("Expected 2 votes for day 1, got %d", len(votes))
	}
	for _, v := range votes {
		if v.Menu.ID != v.MenuID {
			t.Errorf("Vote %s: menu not resolved", v.ID)
		}
		if v.Menu.Restaurant.Name == "" {
			t.Errorf("Vote %s: restaurant not resolved", v.ID)
		}
		if len(v.Menu.MenuItems) != 1 {
			t.Errorf("Vote %s: expected 1 menu item, got %d", v.ID, len(v.Menu.MenuItems))
		}
	}
}
