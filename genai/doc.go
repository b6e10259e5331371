// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package genai provides the generative-text capability used for Socratic
question generation and study-note synthesis.

# Generator Interface

Both operations sit behind a single interface:

	questions, err := gen.Questions(ctx, "recursion", 5)
	note, err := gen.Synthesize(ctx, "recursion", pairs)

# Implementations

  - OpenAI: live chat-completions client. Question replies must parse as a
    JSON array of at least five strings; anything else is a failure. Empty
    synthesis output becomes an explanatory placeholder.
  - Local: deterministic fallback. Five fixed question templates covering
    scope/intent, audience/context, restated core idea, concrete example,
    and common misconception; synthesis renders a plain Markdown document.

# Fallback Selection

WithFallback composes the two so business logic never sees upstream errors:

	gen := genai.WithFallback(live, genai.NewLocal(), 20*time.Second)

Live calls are bounded by the timeout; on error or timeout the local output
is substituted and the incident is logged.
*/
package genai
