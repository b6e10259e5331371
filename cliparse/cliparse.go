package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Socratic question-source variants.
const (
	QuestionsFixed     = "fixed"
	QuestionsGenerated = "generated"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	// Generative-text service. An empty key means the deterministic local
	// generator runs alone.
	OpenAIKey   string
	OpenAIURL   string
	OpenAIModel string
	GenTimeout  time.Duration

	// Socratic session behavior.
	SocraticQuestions string
	SessionTTL        time.Duration
}

// ParseFlags validates flags, with environment variables as fallback
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var genTimeoutSec, sessionTTLMin int

	fs := flag.NewFlagSet("studytool", flag.ContinueOnError)

	// Network and storage (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Generation service (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.OpenAIKey, "openai-key", "", "OpenAI API key (prefer env)")
	fs.StringVar(&cfg.OpenAIURL, "openai-url", "", "OpenAI chat-completions URL")
	fs.StringVar(&cfg.OpenAIModel, "openai-model", "", "OpenAI model name")
	fs.IntVar(&genTimeoutSec, "gen-timeout", 0, "Generation call timeout in seconds")

	// Socratic sessions
	fs.StringVar(&cfg.SocraticQuestions, "socratic-questions", "", "Question source (fixed or generated)")
	fs.IntVar(&sessionTTLMin, "session-ttl", 0, "Idle session TTL in minutes")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("invalid database type %q (want sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "studytool.db" // local sqlite file, zero-config default
	}

	if cfg.OpenAIKey == "" {
		cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.OpenAIURL == "" {
		cfg.OpenAIURL = os.Getenv("OPENAI_API_URL")
	}
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = os.Getenv("OPENAI_MODEL")
	}

	if genTimeoutSec == 0 {
		if s := os.Getenv("GEN_TIMEOUT_SECONDS"); s != "" {
			sec, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid GEN_TIMEOUT_SECONDS env variable")
			}
			genTimeoutSec = sec
		} else {
			genTimeoutSec = 20
		}
	}
	cfg.GenTimeout = time.Duration(genTimeoutSec) * time.Second

	if cfg.SocraticQuestions == "" {
		cfg.SocraticQuestions = os.Getenv("SOCRATIC_QUESTIONS")
		if cfg.SocraticQuestions == "" {
			cfg.SocraticQuestions = QuestionsFixed
		}
	}
	if cfg.SocraticQuestions != QuestionsFixed && cfg.SocraticQuestions != QuestionsGenerated {
		return Config{}, fmt.Errorf("invalid socratic question source %q (want fixed or generated)", cfg.SocraticQuestions)
	}

	if sessionTTLMin == 0 {
		if s := os.Getenv("SESSION_TTL_MINUTES"); s != "" {
			min, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid SESSION_TTL_MINUTES env variable")
			}
			sessionTTLMin = min
		} else {
			sessionTTLMin = 30
		}
	}
	cfg.SessionTTL = time.Duration(sessionTTLMin) * time.Minute

	return cfg, nil
}
