// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"strings"
	"testing"
	"time"
)

// clearEnv blanks the config environment so defaults are observable.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "DATABASE_TYPE",
		"OPENAI_API_KEY", "OPENAI_API_URL", "OPENAI_MODEL",
		"GEN_TIMEOUT_SECONDS", "SOCRATIC_QUESTIONS", "SESSION_TTL_MINUTES",
	} {
		t.Setenv(key, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	if cfg.Port != 8000 {
		t.Errorf("Port = %d, want 8000", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("DatabaseType = %q, want sqlite", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "studytool.db" {
		t.Errorf("DatabaseURL = %q, want studytool.db", cfg.DatabaseURL)
	}
	if cfg.SocraticQuestions != QuestionsFixed {
		t.Errorf("SocraticQuestions = %q, want fixed", cfg.SocraticQuestions)
	}
	if cfg.GenTimeout != 20*time.Second {
		t.Errorf("GenTimeout = %v, want 20s", cfg.GenTimeout)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
}

func TestEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7777")
	t.Setenv("SOCRATIC_QUESTIONS", "generated")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.Port != 7777 {
		t.Errorf("Port = %d, want 7777", cfg.Port)
	}
	if cfg.SocraticQuestions != QuestionsGenerated {
		t.Errorf("SocraticQuestions = %q, want generated", cfg.SocraticQuestions)
	}
}

func TestFlagsOverrideDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := ParseFlags([]string{
		"-p", "9090",
		"-d", "cards.db",
		"-socratic-questions", "generated",
		"-gen-timeout", "5",
		"-session-ttl", "10",
	})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.DatabaseURL != "cards.db" {
		t.Errorf("DatabaseURL = %q, want cards.db", cfg.DatabaseURL)
	}
	if cfg.SocraticQuestions != QuestionsGenerated {
		t.Errorf("SocraticQuestions = %q, want generated", cfg.SocraticQuestions)
	}
	if cfg.GenTimeout != 5*time.Second {
		t.Errorf("GenTimeout = %v, want 5s", cfg.GenTimeout)
	}
	if cfg.SessionTTL != 10*time.Minute {
		t.Errorf("SessionTTL = %v, want 10m", cfg.SessionTTL)
	}
}

func TestPostgresRequiresURL(t *testing.T) {
	clearEnv(t)
	_, err := ParseFlags([]string{"-t", "postgres"})
	if err == nil || !strings.Contains(err.Error(), "database URL required") {
		t.Errorf("error = %v, want database URL required", err)
	}
}

func TestRejectsUnknownDatabaseType(t *testing.T) {
	_, err := ParseFlags([]string{"-t", "oracle"})
	if err == nil {
		t.Error("expected error for unknown database type")
	}
}

func TestRejectsUnknownQuestionSource(t *testing.T) {
	_, err := ParseFlags([]string{"-socratic-questions", "random"})
	if err == nil {
		t.Error("expected error for unknown question source")
	}
}
