package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mcamargo/lexgym/internal/ai"
	"github.com/mcamargo/lexgym/internal/repository"
	"github.com/mcamargo/lexgym/internal/services"
	"github.com/mcamargo/lexgym/internal/worker"
)

type Server struct {
	DB             *sql.DB
	Settings       services.SettingsService
	Vocabulary     services.VocabularyService
	Sessions       services.SessionService
	Grammar        services.GrammarService
	Progression    services.ProgressionService
	Backup         services.BackupService
	Data           services.DataService
	Generation     services.GenerationService
	AIService      ai.Service
	VocabularyRepo repository.VocabularyRepository
	EnrichPool     *worker.Pool
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/settings", s.handleGetSettings)
		r.Patch("/settings", s.handleUpdateSettings)
		r.Delete("/settings", s.handleResetSettings)

		r.Get("/vocabulary", s.handleListWords)
		r.Post("/vocabulary", s.handleSaveWord)
		r.Get("/vocabulary/{word}", s.handleGetWord)
		r.Delete("/vocabulary/{word}", s.handleDeleteWord)
		r.Post("/vocabulary/{word}/enrich", s.handleEnrichWord)

		r.Post("/sessions", s.handleRecordSession)
		r.Get("/progress", s.handleListProgress)
		r.Get("/activity", s.handleListActivity)

		r.Get("/grammar", s.handleListRules)
		r.Post("/grammar", s.handleSaveRule)
		r.Delete("/grammar/{id}", s.handleDeleteRule)

		r.Get("/streak", s.handleGetStreak)
		r.Get("/gamification", s.handleGamification)
		r.Get("/gamification/heatmap", s.handleHeatmap)
		r.Post("/gamification/badges/{id}", s.handleAwardBadge)

		r.Get("/export", s.handleExport)
		r.Post("/import", s.handleImport)
		r.Delete("/data", s.handleEraseData)

		r.Post("/generate", s.handleGenerate)
		r.Post("/speech", s.handleSpeech)
	})

	return r
}
