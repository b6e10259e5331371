// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package genai

import (
	"context"
	"fmt"
	"strings"

	"github.com/EerajArRahman/hackathon-studytool/models"
)

// questionTemplates is the built-in guided-question list. One template per
// required coverage aspect: scope/intent, audience/context, restated core
// idea, concrete example, common misconception.
var questionTemplates = []string{
	"What exactly about \"%s\" do you want to understand, and why now?",
	"Who would you explain \"%s\" to, and in what context would they need it?",
	"In your own words, what is the core idea of \"%s\"?",
	"Walk through one concrete example of \"%s\" in action.",
	"What do people most commonly get wrong about \"%s\"?",
}

// Local is the deterministic Generator: fixed question templates with the
// topic substituted in, and a plain Markdown rendering for synthesis.
// It never returns an error and makes no external calls.
type Local struct{}

// NewLocal returns the deterministic local generator.
func NewLocal() *Local {
	return &Local{}
}

// Questions returns the fixed template list with topic interpolated.
// The built-in list has five entries regardless of n.
func (l *Local) Questions(_ context.Context, topic string, _ int) ([]string, error) {
	questions := make([]string, len(questionTemplates))
	for i, tmpl := range questionTemplates {
		questions[i] = fmt.Sprintf(tmpl, topic)
	}
	return questions, nil
}

// Synthesize renders the session transcript as a Markdown document: a
// level-1 heading with the topic, one numbered level-2 heading per pair
// followed by the answer, and a closing TL;DR placeholder line.
func (l *Local) Synthesize(_ context.Context, topic string, pairs []models.QA) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", topic)
	for i, pair := range pairs {
		fmt.Fprintf(&b, "## %d. %s\n\n%s\n\n", i+1, pair.Question, pair.Answer)
	}
	b.WriteString("TL;DR: revisit the answers above and compress them into two sentences.\n")

	return b.String(), nil
}
