package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"

	"github.com/EerajArRahman/hackathon-studytool/cliparse"
	"github.com/EerajArRahman/hackathon-studytool/db"
	"github.com/EerajArRahman/hackathon-studytool/genai"
	"github.com/EerajArRahman/hackathon-studytool/middleware"
	"github.com/EerajArRahman/hackathon-studytool/pdftext"
	"github.com/EerajArRahman/hackathon-studytool/router"
	"github.com/EerajArRahman/hackathon-studytool/socratic"
)

func main() {
	var err error

	// Optional .env for local development; missing file is fine
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Question/note generator: remote with a deterministic fallback when a
	// key is configured, otherwise the local templates alone
	var gen genai.Generator = genai.NewLocal()
	if cfg.OpenAIKey != "" {
		remote, err := genai.NewOpenAI(genai.OpenAIConfig{
			APIKey:  cfg.OpenAIKey,
			APIURL:  cfg.OpenAIURL,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.GenTimeout,
		})
		if err != nil {
			slog.Error("generator setup failed", "error", err)
			os.Exit(1)
		}
		gen = genai.WithFallback(remote, genai.NewLocal(), cfg.GenTimeout)
		slog.Info("Remote generation enabled", "model", cfg.OpenAIModel)
	}

	sessions := socratic.NewStore(gen, socratic.Options{
		Dynamic: cfg.SocraticQuestions == cliparse.QuestionsGenerated,
		TTL:     cfg.SessionTTL,
	})

	// Background sweep of idle sessions
	scheduler := gocron.NewScheduler(time.UTC)
	_, err = scheduler.Every(1).Minute().Do(func() {
		if removed := sessions.Sweep(time.Now()); removed > 0 {
			slog.Info("Swept idle sessions", "removed", removed)
		}
	})
	if err != nil {
		slog.Error("scheduler setup failed", "error", err)
		os.Exit(1)
	}
	scheduler.StartAsync()
	defer scheduler.Stop()

	// Create router
	mux := router.NewRouter(dbConn, cfg, sessions, pdftext.New())

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
