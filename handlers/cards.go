// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/EerajArRahman/hackathon-studytool/cliparse"
	"github.com/EerajArRahman/hackathon-studytool/db"
	"github.com/EerajArRahman/hackathon-studytool/excel"
	"github.com/EerajArRahman/hackathon-studytool/middleware"
	"github.com/EerajArRahman/hackathon-studytool/models"
)

// Upload size cap for spreadsheet imports.
const maxImportBytes = 10 << 20

type CardHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
}

func NewCardHandler(conn *sqlx.DB, cfg cliparse.Config) *CardHandler {
	return &CardHandler{db: conn, cfg: cfg}
}

// CreateCard handles POST /cards
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCardRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := models.Validate(&req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "deck_id, question and answer are required")
		return
	}

	if !h.deckExists(w, req.DeckID) {
		return
	}

	tag := strings.TrimSpace(req.Tag)
	if tag == "" {
		tag = models.DefaultTag
	}

	now := time.Now().UTC()
	id, err := db.InsertReturningID(h.db, `
		INSERT INTO card (deck_id, tag, question, answer, ease, interval_min, due_at, wrong_count, right_count)
		VALUES (?, ?, ?, ?, 2.5, 0, ?, 0, 0)
	`, req.DeckID, tag, req.Question, req.Answer, now)
	if err != nil {
		slog.Error("failed to insert card", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create card")
		return
	}

	slog.Info("card created", "card_id", id, "deck_id", req.DeckID)

	middleware.JSONResponse(w, http.StatusCreated, models.Card{
		ID:          id,
		DeckID:      req.DeckID,
		Tag:         tag,
		Question:    req.Question,
		Answer:      req.Answer,
		Ease:        2.5,
		IntervalMin: 0,
		DueAt:       now,
	})
}

// ListCards handles GET /cards with optional deck_id and tag filters
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	query := "SELECT * FROM card"
	var clauses []string
	var args []any

	if deckParam := r.URL.Query().Get("deck_id"); deckParam != "" {
		deckID, err := strconv.ParseInt(deckParam, 10, 64)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid deck_id")
			return
		}
		clauses = append(clauses, "deck_id = ?")
		args = append(args, deckID)
	}
	if tag := r.URL.Query().Get("tag"); tag != "" {
		clauses = append(clauses, "tag = ?")
		args = append(args, tag)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id"

	cards := []models.Card{}
	if err := h.db.Select(&cards, h.db.Rebind(query), args...); err != nil {
		slog.Error("failed to list cards", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, cards)
}

// ImportCards handles POST /decks/{id}/import with a multipart spreadsheet
func (h *CardHandler) ImportCards(w http.ResponseWriter, r *http.Request) {
	deckID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid deck id")
		return
	}
	if !h.deckExists(w, deckID) {
		return
	}

	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid multipart upload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	name := strings.ToLower(header.Filename)
	if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".csv") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Upload an .xlsx or .csv file")
		return
	}

	result, err := excel.ImportCards(h.db, deckID, file, name)
	if err != nil {
		slog.Error("card import failed", "deck_id", deckID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Import failed: "+err.Error())
		return
	}

	slog.Info("cards imported", "deck_id", deckID, "created", result.Created, "skipped", result.Skipped)

	middleware.JSONResponse(w, http.StatusCreated, models.ImportCardsResponse{
		Created: result.Created,
		Skipped: result.Skipped,
		Errors:  result.Errors,
	})
}

// deckExists writes a 404 (or 500) and returns false when the deck is
// missing; mutations must not proceed past a failed check.
func (h *CardHandler) deckExists(w http.ResponseWriter, deckID int64) bool {
	var one int
	err := h.db.Get(&one, h.db.Rebind("SELECT 1 FROM deck WHERE id = ?"), deckID)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Deck not found")
		return false
	}
	if err != nil {
		slog.Error("failed to query deck", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return false
	}
	return true
}
