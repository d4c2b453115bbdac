package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mcamargo/lexgym/internal/ai"
	"github.com/mcamargo/lexgym/internal/api"
	"github.com/mcamargo/lexgym/internal/config"
	"github.com/mcamargo/lexgym/internal/db"
	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/repository/sqlite"
	"github.com/mcamargo/lexgym/internal/scheduler"
	"github.com/mcamargo/lexgym/internal/services"
	"github.com/mcamargo/lexgym/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("LexGym Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("ai_base_url=%s", cfg.AIBaseURL)
	log.Debug("ai_timeout_seconds=%d", cfg.AITimeoutSeconds)
	log.Debug("enrich_worker_count=%d", cfg.EnrichWorkerCount)
	log.Debug("enrich_queue_size=%d", cfg.EnrichQueueSize)
	log.Debug("maintenance_hour=%d", cfg.MaintenanceHour)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Repositories
	settingsRepo := sqlite.NewSettingsRepository(database)
	vocabularyRepo := sqlite.NewVocabularyRepository(database)
	progressRepo := sqlite.NewProgressRepository(database)
	activityRepo := sqlite.NewActivityRepository(database)
	grammarRepo := sqlite.NewGrammarRepository(database)
	streakRepo := sqlite.NewStreakRepository(database)
	gamificationRepo := sqlite.NewGamificationRepository(database)

	// AI backend client
	aiClient := ai.New(cfg.AIBaseURL, cfg.AIAPIKey, time.Duration(cfg.AITimeoutSeconds)*time.Second)

	// Background enrichment pool
	enrichPool := worker.NewPool(cfg.EnrichWorkerCount, cfg.EnrichQueueSize)

	// Services
	progressionService := services.NewProgressionService(gamificationRepo, progressRepo, vocabularyRepo, streakRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	vocabularyService := services.NewVocabularyService(vocabularyRepo, progressionService)
	sessionService := services.NewSessionService(progressRepo, activityRepo, settingsRepo, progressionService)
	grammarService := services.NewGrammarService(grammarRepo, progressionService)
	backupService := services.NewBackupService(settingsRepo, vocabularyRepo, progressRepo, activityRepo, grammarRepo, streakRepo, gamificationRepo)
	dataService := services.NewDataService(settingsRepo, vocabularyRepo, progressRepo, activityRepo, grammarRepo, streakRepo, gamificationRepo)
	generationService := services.NewGenerationService(aiClient, activityRepo)

	srv := &api.Server{
		DB:             database,
		Settings:       settingsService,
		Vocabulary:     vocabularyService,
		Sessions:       sessionService,
		Grammar:        grammarService,
		Progression:    progressionService,
		Backup:         backupService,
		Data:           dataService,
		Generation:     generationService,
		AIService:      aiClient,
		VocabularyRepo: vocabularyRepo,
		EnrichPool:     enrichPool,
	}

	ctx, cancel := context.WithCancel(context.Background())
	enrichPool.Start(ctx)

	// Daily maintenance
	maintenance := scheduler.New(database, streakRepo, cfg.MaintenanceHour)
	maintenance.Start()

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping scheduler")
	maintenance.Stop()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping enrichment pool")
	enrichPool.Stop()

	log.Info("===========================================")
	log.Info("LexGym Server Stopped")
	log.Info("===========================================")
}
