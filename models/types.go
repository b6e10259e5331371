// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Tag applied to cards created without an explicit tag.
const DefaultTag = "general"

// Title applied to blog posts whose title is blank after trimming.
const UntitledPostTitle = "Untitled"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the validator struct tags on a request type.
func Validate(v any) error {
	return validate.Struct(v)
}

// Request types

type CreateDeckRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type CreateCardRequest struct {
	DeckID   int64  `json:"deck_id" validate:"required"`
	Tag      string `json:"tag"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type SubmitReviewRequest struct {
	CardID int64  `json:"card_id" validate:"required"`
	Result string `json:"result" validate:"required"`
}

type StartSessionRequest struct {
	Topic string `json:"topic" validate:"required"`
}

type ReplyRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Answer    string `json:"answer"`
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" validate:"required"`
}

// Response types

type IngestResponse struct {
	Count int  `json:"count"`
	QA    []QA `json:"qa"`
}

type StartSessionResponse struct {
	SessionID      string `json:"session_id"`
	Question       string `json:"question"`
	TotalQuestions int    `json:"total_questions"`
}

// ReplyResponse covers both the mid-session and the completed shape.
// NextQuestion is set while done=false; Title and Content only on done=true.
type ReplyResponse struct {
	Done         bool   `json:"done"`
	NextQuestion string `json:"next_question,omitempty"`
	Title        string `json:"title,omitempty"`
	Content      string `json:"content,omitempty"`
}

type ImportCardsResponse struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Deck struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
}

// Card is a single flashcard with its review history. Ease and IntervalMin
// are stored for a future richer scheduling policy; the current scheduler
// never reads them.
type Card struct {
	ID          int64     `db:"id" json:"id"`
	DeckID      int64     `db:"deck_id" json:"deck_id"`
	Tag         string    `db:"tag" json:"tag"`
	Question    string    `db:"question" json:"question"`
	Answer      string    `db:"answer" json:"answer"`
	Ease        float64   `db:"ease" json:"ease"`
	IntervalMin int       `db:"interval_min" json:"interval_min"`
	DueAt       time.Time `db:"due_at" json:"due_at"`
	LastResult  *string   `db:"last_result" json:"last_result,omitempty"`
	WrongCount  int       `db:"wrong_count" json:"wrong_count"`
	RightCount  int       `db:"right_count" json:"right_count"`
}

type BlogPost struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// QA is one question/answer pair, produced by the heuristic extractor and
// accumulated by Socratic sessions. The short JSON keys match the ingest API.
type QA struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}
