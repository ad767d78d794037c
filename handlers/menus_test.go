// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evaldasv/lunchvote/models"
	"github.com/evaldasv/lunchvote/store"
	"github.com/evaldasv/lunchvote/testutil"
)

func TestPublishMenu(t *testing.T) {
	st := store.New(testutil.OpenTestDB(t))
	cfg := testutil.TestConfig()
	handler := NewMenuHandler(st, cfg)

	restaurant := testutil.CreateTestRestaurant(t, st, "Pho Corner")

	tests := []struct {
		name             string
		restaurantID     string
		requestBody      models.MenuRequest
		expectedStatus   int
		expectedErrorKey string
	}{
		{
			name:         "valid publish",
			restaurantID: restaurant.ID,
			requestBody: models.MenuRequest{
				MenuName: "Monday specials",
				Day:      1,
				MenuItems: []models.MenuItemPayload{
					testutil.Item("Pho Bo", "7.50", "EUR"),
					testutil.Item("Spring rolls", "3.20", "EUR"),
				},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:         "invalid day",
			restaurantID: restaurant.ID,
			requestBody: models.MenuRequest{
				MenuName:  "Specials",
				Day:       8,
				MenuItems: []models.MenuItemPayload{testutil.Item("Pho Bo", "7.50", "EUR")},
			},
			expectedStatus:   http.StatusBadRequest,
			expectedErrorKey: models.ErrKeyInvalidDay,
		},
		{
			name:         "missing menu name",
			restaurantID: restaurant.ID,
			requestBody: models.MenuRequest{
				Day:       1,
				MenuItems: []models.MenuItemPayload{testutil.Item("Pho Bo", "7.50", "EUR")},
			},
			expectedStatus:   http.StatusBadRequest,
			expectedErrorKey: models.ErrKeyValidation,
		},
		{
			name:         "item without currency",
			restaurantID: restaurant.ID,
			requestBody: models.MenuRequest{
				MenuName:  "Specials",
				Day:       1,
				MenuItems: []models.MenuItemPayload{{Name: "Pho Bo"}},
			},
			expectedStatus:   http.StatusBadRequest,
			expectedErrorKey: models.ErrKeyValidation,
		},
		{
			name:         "unknown restaurant",
			restaurantID: "no-such-id",
			requestBody: models.MenuRequest{
				MenuName:  "Specials",
				Day:       1,
				MenuItems: []models.MenuItemPayload{testutil.Item("Pho Bo", "7.50", "EUR")},
			},
			expectedStatus:   http.StatusNotFound,
			expectedErrorKey: models.ErrKeyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/restaurants/"+tt.restaurantID+"/menu", tt.requestBody, nil)
			req.SetPathValue("id", tt.restaurantID)
			w := httptest.NewRecorder()

			handler.Publish(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedErrorKey != "" {
				testutil.AssertErrorKey(t, w, tt.expectedErrorKey)
			}
		})
	}
}

func TestMenus(t *testing.T) {
	st := store.New(testutil.OpenTestDB(t))
	cfg := testutil.TestConfig()
	handler := NewMenuHandler(st, cfg)

	restaurant := testutil.CreateTestRestaurant(t, st, "Pho Corner")
	testutil.PublishTestMenu(t, st, restaurant.ID, "Monday", 1, testutil.Item("Pho Bo", "7.50", "EUR"))
	testutil.PublishTestMenu(t, st, restaurant.ID, "Tuesday", 2, testutil.Item("Bun Cha", "8.00", "EUR"))

	req := testutil.MakeRequest("GET", "/restaurants/"+restaurant.ID+"/menus", nil, nil)
	req.SetPathValue("id", restaurant.ID)
	w := httptest.NewRecorder()

	handler.Menus(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var menus []models.MenuView
	testutil.AssertJSON(t, w, &menus)
	if len(menus) != 2 {
		t.Fatalf("Expected 2 menus, got %d", len(menus))
	}
	if menus[0].Day != 1 || menus[1].Day != 2 {
		t.Errorf("Expected menus ordered by day, got %d and %d", menus[0].Day, menus[1].Day)
	}
	if len(menus[0].MenuItems) != 1 {
		t.Errorf("Expected 1 item on first menu, got %d", len(menus[0].MenuItems))
	}
	if menus[0].Restaurant.Name != "Pho Corner" {
		t.Errorf("Expected restaurant resolved, got %q", menus[0].Restaurant.Name)
	}
}

func TestMenusCurrent(t *testing.T) {
	st := store.New(testutil.OpenTestDB(t))
	cfg := testutil.TestConfig()
	handler := NewMenuHandler(st, cfg)

	restaurant := testutil.CreateTestRestaurant(t, st, "Pho Corner")

	today := currentDay(time.Now())
	otherDay := today%7 + 1
	testutil.PublishTestMenu(t, st, restaurant.ID, "Today's menu", today, testutil.Item("Pho Bo", "7.50", "EUR"))
	testutil.PublishTestMenu(t, st, restaurant.ID, "Tomorrow's menu", otherDay, testutil.Item("Bun Cha", "8.00", "EUR"))

	req := testutil.MakeRequest("GET", "/restaurants/"+restaurant.ID+"/menus/current", nil, nil)
	req.SetPathValue("id", restaurant.ID)
	w := httptest.NewRecorder()

	handler.MenusCurrent(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var menus []models.MenuView
	testutil.AssertJSON(t, w, &menus)
	if len(menus) != 1 {
		t.Fatalf("Expected only today's menu, got %d menus", len(menus))
	}
	if menus[0].Name != "Today's menu" {
		t.Errorf("Expected today's menu, got %q", menus[0].Name)
	}
}

func TestCurrentDay(t *testing.T) {
	tests := []struct {
		date     time.Time
		expected int
	}{
		{time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), 1}, // Monday
		{time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC), 3}, // Wednesday
		{time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC), 6}, // Saturday
		{time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC), 7}, // Sunday
	}

	for _, tt := range tests {
		if got := currentDay(tt.date); got != tt.expected {
			t.Errorf("%s: expected day %d, got %d", tt.date.Weekday(), tt.expected, got)
		}
	}
}
