// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package qgen turns raw document text into question/answer pairs using a
// deterministic line-scanning heuristic. No external calls, no randomness:
// the output is a pure function of the input text and the pair limit.
package qgen

import (
	"strings"

	"github.com/EerajArRahman/hackathon-studytool/models"
)

// FallbackQuestion is emitted when no line matches either extraction rule.
const FallbackQuestion = "Summarize the main idea."

// Answer length cap for the fallback pair, in characters.
const fallbackAnswerLimit = 300

// Tokens-per-line threshold above which a line becomes an "Explain:" prompt.
const longLineTokens = 7

// Extract scans the non-blank lines of text in order and produces at most
// max question/answer pairs:
//
//   - A line containing a colon is split on the first colon; the left side
//     becomes "What is {term}?" and the right side the answer.
//   - A line with more than seven whitespace-separated tokens becomes
//     "Explain: {first six tokens} ..." with the whole line as the answer.
//   - Anything else is skipped.
//
// If the whole text yields nothing, a single fallback pair is returned whose
// answer is the first 300 characters of the text, with "..." appended only
// when the text was longer than that.
func Extract(text string, max int) []models.QA {
	var pairs []models.QA

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(pairs) >= max {
			break
		}

		if i := strings.Index(line, ":"); i >= 0 {
			term := strings.TrimSpace(line[:i])
			definition := strings.TrimSpace(line[i+1:])
			pairs = append(pairs, models.QA{
				Question: "What is " + term + "?",
				Answer:   definition,
			})
			continue
		}

		if tokens := strings.Fields(line); len(tokens) > longLineTokens {
			head := strings.Join(tokens[:6], " ")
			pairs = append(pairs, models.QA{
				Question: "Explain: " + head + " ...",
				Answer:   line,
			})
		}
	}

	if len(pairs) == 0 {
		return []models.QA{{Question: FallbackQuestion, Answer: truncate(text, fallbackAnswerLimit)}}
	}
	return pairs
}

// truncate cuts s to at most limit characters (runes, not bytes) and marks
// the cut with a trailing ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
