// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package router

import (
	"net/http"

	"github.com/evaldasv/lunchvote/cliparse"
	"github.com/evaldasv/lunchvote/handlers"
	"github.com/evaldasv/lunchvote/middleware"
	"github.com/evaldasv/lunchvote/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(st, cfg)
	employeeHandler := handlers.NewEmployeeHandler(st, cfg)
	restaurantHandler := handlers.NewRestaurantHandler(st, cfg)
	menuHandler := handlers.NewMenuHandler(st, cfg)
	votingHandler := handlers.NewVotingHandler(st, cfg)

	logged := middleware.WithLogging
	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(st, cfg.TokenSalt, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Account flows (register and login are the only public writes)
	mux.HandleFunc("POST /auth/register", logged(accountHandler.Register))
	mux.HandleFunc("POST /auth/login", logged(accountHandler.Login))
	mux.HandleFunc("POST /auth/logout", authed(accountHandler.Logout))
	mux.HandleFunc("POST /auth/password-change", authed(accountHandler.PasswordChange))

	// Employee directory
	mux.HandleFunc("GET /employees", authed(employeeHandler.List))
	mux.HandleFunc("POST /employees", authed(employeeHandler.Create))
	mux.HandleFunc("GET /employees/{id}", authed(employeeHandler.Get))
	mux.HandleFunc("PUT /employees/{id}", authed(employeeHandler.Update))
	mux.HandleFunc("DELETE /employees/{id}", authed(employeeHandler.Delete))

	// Restaurants
	mux.HandleFunc("GET /restaurants", authed(restaurantHandler.List))
	mux.HandleFunc("POST /restaurants", authed(restaurantHandler.Create))
	mux.HandleFunc("GET /restaurants/{id}", authed(restaurantHandler.Get))
	mux.HandleFunc("DELETE /restaurants/{id}", authed(restaurantHandler.Delete))

	// Menu publishing and resolution
	mux.HandleFunc("POST /restaurants/{id}/menu", authed(menuHandler.Publish))
	mux.HandleFunc("GET /restaurants/{id}/menus", authed(menuHandler.Menus))
	mux.HandleFunc("GET /restaurants/{id}/menus/current", authed(menuHandler.MenusCurrent))

	// Voting
	mux.HandleFunc("POST /restaurants/{id}/vote", authed(votingHandler.CastVote))
	mux.HandleFunc("GET /votes/current", authed(votingHandler.VotesCurrent))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lunchvote API v1"))
	})

	return mux
}
