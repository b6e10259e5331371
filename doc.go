// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the study tool API server.

The study tool is a flashcard backend: decks of cards reviewed on a
spaced-repetition schedule, difficulty statistics for reflection,
question extraction from uploaded PDFs, guided Socratic sessions that
synthesize study notes, and a small blog-post log for those notes.

# Starting the Server

The server runs on sqlite with no configuration at all:

	go run main.go

Or against PostgreSQL:

	go run main.go -t postgres -d "postgres://..."

A .env file in the working directory is loaded when present.

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string
  - OPENAI_API_KEY (-openai-key): Enables remote question/note generation
  - OPENAI_API_URL (-openai-url): Chat-completions endpoint override
  - OPENAI_MODEL (-openai-model): Model name (default: gpt-3.5-turbo)
  - GEN_TIMEOUT_SECONDS (-gen-timeout): Remote generation timeout
  - SOCRATIC_QUESTIONS (-socratic-questions): fixed or generated
  - SESSION_TTL_MINUTES (-session-ttl): Idle Socratic session lifetime

Without an API key all generation uses the deterministic local templates.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (decks, cards, review, reflect, ingest, socratic, posts)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - srs: Spaced-repetition scheduling
  - stats: Difficulty bucket classification
  - qgen: Heuristic question extraction
  - genai: Local and OpenAI-backed text generation
  - socratic: In-memory guided session store
  - pdftext: PDF plain-text extraction
  - excel: Spreadsheet card import
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
