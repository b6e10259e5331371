// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/EerajArRahman/hackathon-studytool/cliparse"
	"github.com/EerajArRahman/hackathon-studytool/handlers"
	"github.com/EerajArRahman/hackathon-studytool/middleware"
	"github.com/EerajArRahman/hackathon-studytool/socratic"
)

func NewRouter(db *sqlx.DB, cfg cliparse.Config, sessions *socratic.Store, extractor handlers.TextExtractor) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	deckHandler := handlers.NewDeckHandler(db, cfg)
	cardHandler := handlers.NewCardHandler(db, cfg)
	reviewHandler := handlers.NewReviewHandler(db, cfg)
	reflectHandler := handlers.NewReflectHandler(db, cfg)
	ingestHandler := handlers.NewIngestHandler(cfg, extractor)
	socraticHandler := handlers.NewSocraticHandler(db, cfg, sessions)
	postHandler := handlers.NewPostHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Decks and cards
	mux.HandleFunc("POST /decks", middleware.WithLogging(deckHandler.CreateDeck))
	mux.HandleFunc("GET /decks", middleware.WithLogging(deckHandler.ListDecks))
	mux.HandleFunc("POST /decks/{id}/import", middleware.WithLogging(cardHandler.ImportCards))
	mux.HandleFunc("POST /cards", middleware.WithLogging(cardHandler.CreateCard))
	mux.HandleFunc("GET /cards", middleware.WithLogging(cardHandler.ListCards))

	// Review loop
	mux.HandleFunc("GET /review/next", middleware.WithLogging(reviewHandler.NextCard))
	mux.HandleFunc("POST /review/submit", middleware.WithLogging(reviewHandler.SubmitReview))

	// Reflection stats
	mux.HandleFunc("GET /reflect/stats", middleware.WithLogging(reflectHandler.Stats))

	// PDF ingestion
	mux.HandleFunc("POST /ingest/pdf", middleware.WithLogging(ingestHandler.IngestPDF))

	// Socratic sessions
	mux.HandleFunc("POST /socratic/start", middleware.WithLogging(socraticHandler.Start))
	mux.HandleFunc("POST /socratic/reply", middleware.WithLogging(socraticHandler.Reply))
	mux.HandleFunc("DELETE /socratic/sessions/{id}", middleware.WithLogging(socraticHandler.Abandon))

	// Blog posts
	mux.HandleFunc("POST /posts", middleware.WithLogging(postHandler.CreatePost))
	mux.HandleFunc("GET /posts", middleware.WithLogging(postHandler.ListPosts))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("studytool API v1"))
	})

	return mux
}
