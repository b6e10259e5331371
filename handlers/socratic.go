// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/EerajArRahman/hackathon-studytool/cliparse"
	"github.com/EerajArRahman/hackathon-studytool/db"
	"github.com/EerajArRahman/hackathon-studytool/middleware"
	"github.com/EerajArRahman/hackathon-studytool/models"
	"github.com/EerajArRahman/hackathon-studytool/socratic"
)

type SocraticHandler struct {
	db       *sqlx.DB
	cfg      cliparse.Config
	sessions *socratic.Store
}

func NewSocraticHandler(conn *sqlx.DB, cfg cliparse.Config, sessions *socratic.Store) *SocraticHandler {
	return &SocraticHandler{db: conn, cfg: cfg, sessions: sessions}
}

// Start handles POST /socratic/start
func (h *SocraticHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req models.StartSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := models.Validate(&req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "topic is required")
		return
	}

	res, err := h.sessions.Start(r.Context(), req.Topic)
	if err != nil {
		slog.Error("failed to start socratic session", "topic", req.Topic, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	slog.Info("socratic session started", "session_id", res.SessionID, "topic", req.Topic)

	middleware.JSONResponse(w, http.StatusOK, models.StartSessionResponse{
		SessionID:      res.SessionID,
		Question:       res.Question,
		TotalQuestions: res.Total,
	})
}

// Reply handles POST /socratic/reply
//
// When the final answer arrives the synthesized note is persisted as a
// blog post and returned in the response body.
func (h *SocraticHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req models.ReplyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := models.Validate(&req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session_id is required")
		return
	}

	res, err := h.sessions.Reply(r.Context(), req.SessionID, req.Answer)
	if errors.Is(err, socratic.ErrSessionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if errors.Is(err, socratic.ErrSessionComplete) {
		middleware.ErrorResponse(w, http.StatusConflict, "Session already complete")
		return
	}
	if err != nil {
		slog.Error("failed to process reply", "session_id", req.SessionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to process reply")
		return
	}

	if !res.Done {
		middleware.JSONResponse(w, http.StatusOK, models.ReplyResponse{
			Done:         false,
			NextQuestion: res.NextQuestion,
		})
		return
	}

	_, err = db.InsertReturningID(h.db,
		"INSERT INTO blog_post (title, content, created_at) VALUES (?, ?, ?)",
		res.Title, res.Content, time.Now().UTC())
	if err != nil {
		slog.Error("failed to persist session notes", "session_id", req.SessionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save notes")
		return
	}

	slog.Info("socratic session completed", "session_id", req.SessionID, "title", res.Title)

	middleware.JSONResponse(w, http.StatusOK, models.ReplyResponse{
		Done:    true,
		Title:   res.Title,
		Content: res.Content,
	})
}

// Abandon handles DELETE /socratic/sessions/{id}
func (h *SocraticHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.sessions.Abandon(id); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	slog.Info("socratic session abandoned", "session_id", id)

	w.WriteHeader(http.StatusNoContent)
}
