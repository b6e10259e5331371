// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package srs

import (
	"errors"
	"testing"
	"time"

	"github.com/EerajArRahman/hackathon-studytool/models"
)

func TestNextDueOffsets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		outcome Outcome
		want    time.Duration
	}{
		{Again, 1 * time.Minute},
		{Good, 10 * time.Minute},
		{Easy, 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			got := NextDue(tt.outcome, now)
			if got.Sub(now) != tt.want {
				t.Errorf("NextDue(%q) offset = %v, want %v", tt.outcome, got.Sub(now), tt.want)
			}
		})
	}
}

func TestNextDueUnknownOutcomeDefaultsToFiveMinutes(t *testing.T) {
	now := time.Now()
	got := NextDue(Outcome("banana"), now)
	if got.Sub(now) != 5*time.Minute {
		t.Errorf("unknown outcome offset = %v, want 5m", got.Sub(now))
	}
}

func TestOutcomeIsValid(t *testing.T) {
	for _, o := range []Outcome{Again, Good, Easy} {
		if !o.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", o)
		}
	}
	for _, o := range []Outcome{"", "hard", "AGAIN", "goood"} {
		if o.IsValid() {
			t.Errorf("IsValid(%q) = true, want false", o)
		}
	}
}

func TestApplyIncrementsExactlyOneCounter(t *testing.T) {
	now := time.Now()

	tests := []struct {
		outcome   Outcome
		wantWrong int
		wantRight int
	}{
		{Again, 1, 0},
		{Good, 0, 1},
		{Easy, 0, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			card := models.Card{DueAt: now.Add(-time.Hour)}
			if err := Apply(&card, tt.outcome, now); err != nil {
				t.Fatalf("Apply returned error: %v", err)
			}
			if card.WrongCount != tt.wantWrong || card.RightCount != tt.wantRight {
				t.Errorf("counters = (%d wrong, %d right), want (%d, %d)",
					card.WrongCount, card.RightCount, tt.wantWrong, tt.wantRight)
			}
			if card.LastResult == nil || *card.LastResult != string(tt.outcome) {
				t.Errorf("last_result = %v, want %q", card.LastResult, tt.outcome)
			}
			if !card.DueAt.Equal(NextDue(tt.outcome, now)) {
				t.Errorf("due_at = %v, want %v", card.DueAt, NextDue(tt.outcome, now))
			}
		})
	}
}

func TestApplyRejectsInvalidOutcomeWithoutMutating(t *testing.T) {
	card := models.Card{WrongCount: 2, RightCount: 3}
	before := card

	err := Apply(&card, Outcome("hard"), time.Now())
	if !errors.Is(err, ErrInvalidOutcome) {
		t.Fatalf("Apply error = %v, want ErrInvalidOutcome", err)
	}
	if card != before {
		t.Errorf("card mutated on invalid outcome: %+v", card)
	}
}
