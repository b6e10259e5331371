// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the study tool API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - DeckHandler: Deck creation and listing
  - CardHandler: Card creation, listing, and spreadsheet import
  - ReviewHandler: Due-card lookup and review submission
  - ReflectHandler: Per-deck mastery statistics
  - IngestHandler: PDF upload and heuristic question extraction
  - SocraticHandler: Guided question sessions and note synthesis
  - PostHandler: Blog post creation and listing

Handlers are created via constructor functions that accept *sqlx.DB and Config:

	deckHandler := handlers.NewDeckHandler(db, cfg)

# Review Flow

The review loop alternates between fetching the next due card and
submitting an outcome:

	GET  /review/next?deck_id=1 → next due card, or JSON null when none
	POST /review/submit         → records again/good/easy and reschedules

Outcomes outside the closed set are rejected with 400 before anything is
written.

# Socratic Sessions

Sessions live in memory (see the socratic package). Start returns the
first question; each Reply advances the session, and the final reply
synthesizes a markdown note that is persisted as a blog post:

	POST   /socratic/start          → session_id + first question
	POST   /socratic/reply          → next question, or the finished note
	DELETE /socratic/sessions/{id}  → abandon without synthesis

A reply to a finished session returns 409 so clients learn they are out
of sync; a reply to an unknown or swept session returns 404.

# Error Responses

All errors return JSON with a consistent structure:

	{"error": "Not Found", "message": "Card not found"}
*/
package handlers
