// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package genai

import (
	"context"
	"log/slog"
	"time"

	"github.com/EerajArRahman/hackathon-studytool/models"
)

// Generator produces guiding questions and synthesized study notes.
// Two implementations exist: OpenAI (live remote calls) and Local
// (deterministic templates). Call sites receive one of them at construction
// and never need to know which.
type Generator interface {
	// Questions returns n short guiding questions tailored to topic.
	Questions(ctx context.Context, topic string, n int) ([]string, error)

	// Synthesize renders the accumulated question/answer pairs for topic
	// into a Markdown study note.
	Synthesize(ctx context.Context, topic string, pairs []models.QA) (string, error)
}

// fallback wraps a live Generator and swaps in the local implementation's
// output whenever the live call errors, times out, or returns malformed
// data. The wrapped Generator itself never returns an error.
type fallback struct {
	primary Generator
	local   *Local
	timeout time.Duration
}

// WithFallback returns a Generator that tries primary within timeout and
// silently falls back to local on any failure. An unreachable or misbehaving
// upstream must never fail a session operation, only degrade it.
func WithFallback(primary Generator, local *Local, timeout time.Duration) Generator {
	return &fallback{primary: primary, local: local, timeout: timeout}
}

func (f *fallback) Questions(ctx context.Context, topic string, n int) ([]string, error) {
	callCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	questions, err := f.primary.Questions(callCtx, topic, n)
	if err != nil {
		slog.Warn("question generation fell back to templates", "topic", topic, "error", err)
		return f.local.Questions(ctx, topic, n)
	}
	return questions, nil
}

func (f *fallback) Synthesize(ctx context.Context, topic string, pairs []models.QA) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	doc, err := f.primary.Synthesize(callCtx, topic, pairs)
	if err != nil {
		slog.Warn("note synthesis fell back to local rendering", "topic", topic, "error", err)
		return f.local.Synthesize(ctx, topic, pairs)
	}
	return doc, nil
}
