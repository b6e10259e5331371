// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/EerajArRahman/hackathon-studytool/cliparse"
	"github.com/EerajArRahman/hackathon-studytool/middleware"
	"github.com/EerajArRahman/hackathon-studytool/models"
	"github.com/EerajArRahman/hackathon-studytool/stats"
)

type ReflectHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
}

func NewReflectHandler(conn *sqlx.DB, cfg cliparse.Config) *ReflectHandler {
	return &ReflectHandler{db: conn, cfg: cfg}
}

// Stats handles GET /reflect/stats with an optional deck_id filter;
// without one the whole card collection is classified.
func (h *ReflectHandler) Stats(w http.ResponseWriter, r *http.Request) {
	query := "SELECT * FROM card"
	var args []any

	if deckParam := r.URL.Query().Get("deck_id"); deckParam != "" {
		deckID, err := strconv.ParseInt(deckParam, 10, 64)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid deck_id")
			return
		}
		query += " WHERE deck_id = ?"
		args = append(args, deckID)
	}

	cards := []models.Card{}
	if err := h.db.Select(&cards, h.db.Rebind(query), args...); err != nil {
		slog.Error("failed to query cards for stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats.Classify(cards))
}
