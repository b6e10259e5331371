// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package stats buckets card collections into difficulty tiers for the
// reflect view.
package stats

import "github.com/EerajArRahman/hackathon-studytool/models"

// Buckets holds the four mutually exclusive difficulty counts.
type Buckets struct {
	Never  int `json:"never"`
	Hard   int `json:"hard"`
	Medium int `json:"medium"`
	Easy   int `json:"easy"`
}

// Summary is the reflect-stats payload: the total card count and its
// partition into buckets. The bucket counts always sum to Total.
type Summary struct {
	Total   int     `json:"total"`
	Buckets Buckets `json:"buckets"`
}

// Classify partitions cards into difficulty buckets by their review counters:
//
//	never:  no reviews at all (wrong+right == 0)
//	hard:   more wrong than right
//	medium: wrong == right, with at least one review
//	easy:   more right than wrong
//
// Each predicate is evaluated independently for every card rather than as a
// first-match chain; the predicates are constructed so exactly one holds.
// In particular an unreviewed card fails the strict "hard" inequality and
// the reviewed-at-least-once clause of "medium", so it counts only as never.
func Classify(cards []models.Card) Summary {
	var b Buckets
	for _, c := range cards {
		if c.WrongCount+c.RightCount == 0 {
			b.Never++
		}
		if c.WrongCount > c.RightCount {
			b.Hard++
		}
		if c.WrongCount == c.RightCount && c.WrongCount+c.RightCount > 0 {
			b.Medium++
		}
		if c.RightCount > c.WrongCount {
			b.Easy++
		}
	}
	return Summary{Total: len(cards), Buckets: b}
}
