// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/EerajArRahman/hackathon-studytool/cliparse"
	"github.com/EerajArRahman/hackathon-studytool/db"
	"github.com/EerajArRahman/hackathon-studytool/middleware"
	"github.com/EerajArRahman/hackathon-studytool/models"
)

type PostHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
}

func NewPostHandler(conn *sqlx.DB, cfg cliparse.Config) *PostHandler {
	return &PostHandler{db: conn, cfg: cfg}
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := models.Validate(&req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = models.UntitledPostTitle
	}

	post := models.BlogPost{
		Title:     title,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}

	id, err := db.InsertReturningID(h.db,
		"INSERT INTO blog_post (title, content, created_at) VALUES (?, ?, ?)",
		post.Title, post.Content, post.CreatedAt)
	if err != nil {
		slog.Error("failed to create post", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create post")
		return
	}
	post.ID = id

	slog.Info("post created", "post_id", id, "title", post.Title)

	middleware.JSONResponse(w, http.StatusCreated, post)
}

// ListPosts handles GET /posts, newest first.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts := []models.BlogPost{}
	err := h.db.Select(&posts, "SELECT id, title, content, created_at FROM blog_post ORDER BY created_at DESC, id DESC")
	if err != nil {
		slog.Error("failed to list posts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, posts)
}
