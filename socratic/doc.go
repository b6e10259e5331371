// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package socratic drives fixed-length guided-question dialogues that end in a
synthesized study note.

# Session Lifecycle

A session walks a five-question list for one topic:

	start, _ := store.Start(ctx, "recursion")
	res, _ := store.Reply(ctx, start.SessionID, "my answer")
	// ... three more replies ...
	final, _ := store.Reply(ctx, start.SessionID, "last answer")
	// final.Done == true, final.Title/final.Content hold the note

Sessions live only in memory. They advance strictly forward; the question
index never decreases.

# Question Sources

The fixed variant uses the built-in template list with the topic
interpolated. The dynamic variant (Options.Dynamic) asks the configured
genai.Generator for topic-tailored questions; because the generator carries
a deterministic fallback, a dead upstream silently lands on the templates.

# Completion Policy

A reply after the final question fails with ErrSessionComplete. Completed
sessions stay resident until the TTL sweep so that late replies are
distinguishable from unknown session ids.

# Concurrency

Reply is serialized per session by a per-session mutex: two concurrent
replies to the same id can never both consume the same question index.

# Eviction

The store has no implicit expiry of its own; callers run Sweep periodically
(main wires it to the background scheduler) and may Abandon a session
explicitly.
*/
package socratic
