// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evaldasv/lunchvote/models"
	"github.com/evaldasv/lunchvote/store"
	"github.com/evaldasv/lunchvote/testutil"
)

func TestRestaurantCreate(t *testing.T) {
	st := store.New(testutil.OpenTestDB(t))
	handler := NewRestaurantHandler(st, testutil.TestConfig())

	tests := []struct {
		name           string
		requestBody    models.RestaurantRequest
		expectedStatus int
	}{
		{
			name: "valid restaurant",
			requestBody: models.RestaurantRequest{
				Name:    "Pho Corner",
				Address: "1 Test Street",
				City:    "Vilnius",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing city",
			requestBody: models.RestaurantRequest{
				Name:    "Pho Corner",
				Address: "1 Test Street",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty body",
			requestBody:    models.RestaurantRequest{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/restaurants", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.Create(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusCreated {
				var restaurant models.Restaurant
				testutil.AssertJSON(t, w, &restaurant)
				if restaurant.ID == "" {
					t.Error("Expected generated restaurant ID")
				}
				if restaurant.Name != tt.requestBody.Name {
					t.Errorf("Expected name %q, got %q", tt.requestBody.Name, restaurant.Name)
				}
			}
		})
	}
}

func TestRestaurantGetAndList(t *testing.T) {
	st := store.New(testutil.OpenTestDB(t))
	handler := NewRestaurantHandler(st, testutil.TestConfig())

	restaurant := testutil.CreateTestRestaurant(t, st, "Pho Corner")

	req := testutil.MakeRequest("GET", "/restaurants/"+restaurant.ID, nil, nil)
	req.SetPathValue("id", restaurant.ID)
	w := httptest.NewRecorder()
	handler.Get(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	req = testutil.MakeRequest("GET", "/restaurants/no-such-id", nil, nil)
	req.SetPathValue("id", "no-such-id")
	w = httptest.NewRecorder()
	handler.Get(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
	testutil.AssertErrorKey(t, w, models.ErrKeyNotFound)

	req = testutil.MakeRequest("GET", "/restaurants", nil, nil)
	w = httptest.NewRecorder()
	handler.List(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var restaurants []models.Restaurant
	testutil.AssertJSON(t, w, &restaurants)
	if len(restaurants) != 1 {
		t.Errorf("Expected 1 restaurant, got %d", len(restaurants))
	}
}

func TestRestaurantDelete(t *testing.T) {
	st := store.New(testutil.OpenTestDB(t))
	handler := NewRestaurantHandler(st, testutil.TestConfig())

	restaurant := testutil.CreateTestRestaurant(t, st, "Pho Corner")
	testutil.PublishTestMenu(t, st, restaurant.ID, "Monday", 1, testutil.Item("Pho Bo", "7.50", "EUR"))

	req := testutil.MakeRequest("DELETE", "/restaurants/"+restaurant.ID, nil, nil)
	req.SetPathValue("id", restaurant.ID)
	w := httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	// Menus went with the restaurant
	req = testutil.MakeRequest("GET", "/restaurants/"+restaurant.ID, nil, nil)
	req.SetPathValue("id", restaurant.ID)
	w = httptest.NewRecorder()
	handler.Get(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)

	// Deleting again is a 404
	req = testutil.MakeRequest("DELETE", "/restaurants/"+restaurant.ID, nil, nil)
	req.SetPathValue("id", restaurant.ID)
	w = httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
