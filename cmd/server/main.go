package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"helphood/internal/assistant"
	"helphood/internal/config"
	"helphood/internal/db"
	"helphood/internal/fallback"
	"helphood/internal/gemini"
	"helphood/internal/jobs"
	"helphood/internal/metrics"
	"helphood/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	yamlCfg.Apply(cfg)

	level := slog.LevelInfo
	if cfg.IsDev() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Database is optional and only stores answer outcome counters
	var database *db.DB
	if cfg.PersistOutcomes() {
		database, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations completed successfully")
	} else {
		log.Println("DATABASE_URL not set, answer outcomes are kept in memory only.")
	}

	metrics.Init(database)

	// The upstream client only exists when a key is configured, so a
	// missing key never leads to a network call.
	var (
		gen    assistant.Generator
		client *gemini.Client
	)
	if cfg.AIConfigured() {
		client = gemini.New(cfg.GeminiConfig(), nil)
		gen = client
		log.Printf("Gemini enabled (model: %s)", client.Model())
	} else {
		log.Println("GEMINI_API_KEY not set, serving fallback responses only.")
	}

	svc := assistant.New(gen, fallback.New(nil), assistant.Options{
		SystemPrompt: cfg.SystemPrompt(),
		Logger:       logger,
	})

	srv := server.New(cfg)
	srv.RegisterRoutes(svc, logger)

	if client != nil && cfg.UpstreamProbeInterval > 0 {
		prober := jobs.NewUpstreamProber(client, cfg.UpstreamProbeInterval)
		go prober.Start(ctx)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
