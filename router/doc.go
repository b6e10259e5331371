// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the study tool API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, sessions, extractor)

# Endpoints

Health:

	GET /health

Decks and cards:

	POST /decks             - Create deck
	GET  /decks             - List decks
	POST /decks/{id}/import - Bulk-import cards from .xlsx/.csv
	POST /cards             - Create card
	GET  /cards             - List cards (deck_id, tag filters)

Review loop:

	GET  /review/next   - Next due card for a deck (null when none)
	POST /review/submit - Record again/good/easy and reschedule

Reflection:

	GET /reflect/stats - Per-deck difficulty buckets

Ingestion:

	POST /ingest/pdf - Extract question/answer pairs from a PDF

Socratic sessions:

	POST   /socratic/start         - Begin a guided session
	POST   /socratic/reply         - Answer the current question
	DELETE /socratic/sessions/{id} - Abandon a session

Blog posts:

	POST /posts - Create post
	GET  /posts - List posts, newest first

# Handler Initialization

The router creates handler instances with dependency injection:

	deckHandler := handlers.NewDeckHandler(db, cfg)
	reviewHandler := handlers.NewReviewHandler(db, cfg)
	socraticHandler := handlers.NewSocraticHandler(db, cfg, sessions)

The Socratic session store and the PDF text extractor are constructed in
main and passed through so tests can substitute their own.
*/
package router
