// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package srs computes review schedules for flashcards.
//
// The current policy is a fixed-offset table keyed by the review outcome:
// "again" reschedules one minute out, "good" ten minutes, "easy" one day.
// A card's stored ease and interval fields are reserved for a future
// adaptive policy and are not consulted.
package srs

import (
	"errors"
	"fmt"
	"time"

	"github.com/EerajArRahman/hackathon-studytool/models"
)

// Outcome is the three-valued result of reviewing a card.
type Outcome string

const (
	Again Outcome = "again"
	Good  Outcome = "good"
	Easy  Outcome = "easy"
)

// ErrInvalidOutcome is returned for outcomes outside the closed set.
// Use errors.Is to check: errors.Is(err, srs.ErrInvalidOutcome)
var ErrInvalidOutcome = errors.New("srs: invalid outcome")

// IsValid reports whether o is one of the three recognized outcomes.
func (o Outcome) IsValid() bool {
	return o == Again || o == Good || o == Easy
}

// NextDue returns the next review time for a card reviewed at now with the
// given outcome. It is a pure function of (outcome, now). Callers must
// validate the outcome first; the five-minute default for unrecognized
// values is an internal safety net, not part of the contract.
func NextDue(o Outcome, now time.Time) time.Time {
	switch o {
	case Again:
		return now.Add(1 * time.Minute)
	case Good:
		return now.Add(10 * time.Minute)
	case Easy:
		return now.Add(24 * time.Hour)
	default:
		return now.Add(5 * time.Minute)
	}
}

// Apply records a review outcome on the card: due_at is overwritten with the
// next due time, exactly one of the counters is incremented, and last_result
// is set. The counters only ever increase. Returns ErrInvalidOutcome without
// touching the card if the outcome is outside the closed set.
func Apply(card *models.Card, o Outcome, now time.Time) error {
	if !o.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidOutcome, string(o))
	}

	if o == Again {
		card.WrongCount++
	} else {
		card.RightCount++
	}

	result := string(o)
	card.LastResult = &result
	card.DueAt = NextDue(o, now)
	return nil
}
