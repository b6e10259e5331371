// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/EerajArRahman/hackathon-studytool/cliparse"
	"github.com/EerajArRahman/hackathon-studytool/db"
	"github.com/EerajArRahman/hackathon-studytool/middleware"
	"github.com/EerajArRahman/hackathon-studytool/models"
)

type DeckHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
}

func NewDeckHandler(conn *sqlx.DB, cfg cliparse.Config) *DeckHandler {
	return &DeckHandler{db: conn, cfg: cfg}
}

// CreateDeck handles POST /decks
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDeckRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := models.Validate(&req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := db.InsertReturningID(h.db, `
		INSERT INTO deck (name, description) VALUES (?, ?)
	`, req.Name, req.Description)
	if err != nil {
		slog.Error("failed to insert deck", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create deck")
		return
	}

	slog.Info("deck created", "deck_id", id, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.Deck{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
}

// ListDecks handles GET /decks
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks := []models.Deck{}
	if err := h.db.Select(&decks, "SELECT id, name, description FROM deck ORDER BY id"); err != nil {
		slog.Error("failed to list decks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, decks)
}
