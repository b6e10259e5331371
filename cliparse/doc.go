// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p                  Server port
	-d                  Database URL or sqlite file path
	-t                  Database type (sqlite or postgres)
	-openai-key         OpenAI API key (prefer env)
	-openai-url         Chat-completions endpoint override
	-openai-model       Model name
	-gen-timeout        Generation call timeout (seconds)
	-socratic-questions Question source: fixed or generated
	-session-ttl        Idle session TTL (minutes)

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	OPENAI_API_KEY      → -openai-key
	OPENAI_API_URL      → -openai-url
	OPENAI_MODEL        → -openai-model
	GEN_TIMEOUT_SECONDS → -gen-timeout
	SOCRATIC_QUESTIONS  → -socratic-questions
	SESSION_TTL_MINUTES → -session-ttl

CLI flags take precedence over environment variables.

# Defaults

The server starts with zero configuration: port 8000, a local sqlite file
(studytool.db), the fixed Socratic question list, a 20-second generation
timeout, and a 30-minute session TTL. OPENAI_API_KEY is optional; without
it every generation call uses the deterministic local fallback.
*/
package cliparse
