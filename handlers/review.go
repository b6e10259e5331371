// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/EerajArRahman/hackathon-studytool/cliparse"
	"github.com/EerajArRahman/hackathon-studytool/middleware"
	"github.com/EerajArRahman/hackathon-studytool/models"
	"github.com/EerajArRahman/hackathon-studytool/srs"
)

type ReviewHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
}

func NewReviewHandler(conn *sqlx.DB, cfg cliparse.Config) *ReviewHandler {
	return &ReviewHandler{db: conn, cfg: cfg}
}

// NextCard handles GET /review/next?deck_id=&tag=
//
// Returns the earliest-due card that is due now or earlier, or JSON null
// when nothing in the deck is due.
func (h *ReviewHandler) NextCard(w http.ResponseWriter, r *http.Request) {
	deckID, err := strconv.ParseInt(r.URL.Query().Get("deck_id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "deck_id is required")
		return
	}

	query := "SELECT * FROM card WHERE deck_id = ? AND due_at <= ?"
	args := []any{deckID, time.Now().UTC()}
	if tag := r.URL.Query().Get("tag"); tag != "" {
		query += " AND tag = ?"
		args = append(args, tag)
	}
	query += " ORDER BY due_at LIMIT 1"

	var card models.Card
	err = h.db.Get(&card, h.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		// Nothing due: the review screen shows an empty state.
		middleware.JSONResponse(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		slog.Error("failed to query next card", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, card)
}

// SubmitReview handles POST /review/submit
//
// The outcome is validated against the closed set before anything is
// loaded or written; the scheduler's internal default is not reachable
// from here.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitReviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := models.Validate(&req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "card_id and result are required")
		return
	}

	outcome := srs.Outcome(req.Result)
	if !outcome.IsValid() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid review outcome")
		return
	}

	var card models.Card
	err := h.db.Get(&card, h.db.Rebind("SELECT * FROM card WHERE id = ?"), req.CardID)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Card not found")
		return
	}
	if err != nil {
		slog.Error("failed to query card", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := srs.Apply(&card, outcome, time.Now().UTC()); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid review outcome")
		return
	}

	_, err = h.db.Exec(h.db.Rebind(`
		UPDATE card
		SET due_at = ?, last_result = ?, wrong_count = ?, right_count = ?
		WHERE id = ?
	`), card.DueAt, card.LastResult, card.WrongCount, card.RightCount, card.ID)
	if err != nil {
		slog.Error("failed to update card", "card_id", card.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record review")
		return
	}

	slog.Info("review recorded", "card_id", card.ID, "result", req.Result)

	middleware.JSONResponse(w, http.StatusOK, card)
}
