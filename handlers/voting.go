// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/evaldasv/lunchvote/cliparse"
	"github.com/evaldasv/lunchvote/middleware"
	"github.com/evaldasv/lunchvote/models"
	"github.com/evaldasv/lunchvote/store"
)

// voteDecoder turns a request body into vote entries. One decoder per
// supported payload shape; the table is built once at construction and
// consulted per request by version header.
type voteDecoder func(r *http.Request) ([]models.VoteEntry, error)

type VotingHandler struct {
	st       *store.Store
	cfg      cliparse.Config
	decoders map[string]voteDecoder
}

func NewVotingHandler(st *store.Store, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{
		st:  st,
		cfg: cfg,
		decoders: map[string]voteDecoder{
			models.VersionSingle: decodeSingleVote,
			models.VersionBatch:  decodeBatchVote,
		},
	}
}

// CastVote handles POST /restaurants/{id}/vote
//
// The X-API-Version header selects the payload shape: v1.0 is a bare
// entry, v2.0 wraps up to three entries in {"data": [...]}. Absent or
// unrecognized versions fall back to v1.0. The batch is applied
// atomically - an unknown menu anywhere in it leaves every vote
// untouched.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.PathValue("id")

	entries, err := h.decoderFor(r.Header.Get("X-API-Version"))(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation, "Invalid JSON")
		return
	}
	for _, entry := range entries {
		if entry.MenuName == "" || entry.Day == 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyValidation,
				"every entry needs menuName, day and votes")
			return
		}
	}

	err = h.st.CastVotes(r.Context(), restaurantID, entries)
	switch {
	case errors.Is(err, store.ErrTooManyOrTooFewSelections):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyTooFewOrMany, err.Error())
		return
	case errors.Is(err, store.ErrMenuNotFound):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKeyMenuNotFound, err.Error())
		return
	case errors.Is(err, store.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, models.ErrKeyConflict, err.Error())
		return
	case err != nil:
		slog.Error("failed to cast votes", "error", err, "restaurant_id", restaurantID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Failed to cast votes")
		return
	}

	slog.Info("votes cast", "restaurant_id", restaurantID, "entries", len(entries))

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: models.TopThreeMessage,
	})
}

// VotesCurrent handles GET /votes/current
// Lists today's vote records across restaurants, menus resolved.
func (h *VotingHandler) VotesCurrent(w http.ResponseWriter, r *http.Request) {
	votes, err := h.st.VotesForDay(r.Context(), currentDay(time.Now()))
	if err != nil {
		slog.Error("failed to query votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKeyInternal, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, votes)
}

func (h *VotingHandler) decoderFor(version string) voteDecoder {
	if d, ok := h.decoders[version]; ok {
		return d
	}
	return h.decoders[models.VersionSingle]
}

func decodeSingleVote(r *http.Request) ([]models.VoteEntry, error) {
	var entry models.VoteEntry
	if err := middleware.ParseJSONBody(r, &entry); err != nil {
		return nil, err
	}
	return []models.VoteEntry{entry}, nil
}

func decodeBatchVote(r *http.Request) ([]models.VoteEntry, error) {
	var req models.VoteBatchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		return nil, err
	}
	return req.Data, nil
}
