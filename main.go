package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/arenamatch/arenamatch/internal/commentary"
	"github.com/arenamatch/arenamatch/internal/config"
	"github.com/arenamatch/arenamatch/internal/database"
	server "github.com/arenamatch/arenamatch/internal/http"
	"github.com/arenamatch/arenamatch/internal/metrics"
	"github.com/arenamatch/arenamatch/internal/notifier/slack"
	"github.com/arenamatch/arenamatch/internal/pairing"
	"github.com/arenamatch/arenamatch/internal/pubsub"
	"github.com/arenamatch/arenamatch/internal/tournament"
	"github.com/arenamatch/arenamatch/internal/tracker"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	store := tournament.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	commentator := commentary.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)

	events := pubsub.NewNoop()
	if cfg.ProjectID != "" {
		events = pubsub.New(cfg.ProjectID)
	}

	trk := tracker.New(store, pairing.New(), commentator, notifier, events, metricsSvc)

	s := server.NewServer(
		trk,
		metricsSvc,
		metricsHandler,
		*cfg,
	)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
