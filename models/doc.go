// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON, with validator tags checked via Validate:

  - CreateDeckRequest: name, description
  - CreateCardRequest: deck_id, tag, question, answer
  - SubmitReviewRequest: card_id, result
  - StartSessionRequest: topic
  - ReplyRequest: session_id, answer
  - CreatePostRequest: title, content

# Response Types

  - IngestResponse: count, qa
  - StartSessionResponse: session_id, question, total_questions
  - ReplyResponse: done, next_question | title, content
  - ImportCardsResponse: created, skipped, errors
  - ErrorResponse: error, message

# Domain Types

  - Deck: named collection of cards
  - Card: flashcard with review counters and a due timestamp
  - BlogPost: study-log entry with an immutable creation time
  - QA: one question/answer pair (JSON keys "q" and "a")

Cards carry two reserved scheduling fields, ease and interval_min, that the
current scheduler stores but never reads.
*/
package models
