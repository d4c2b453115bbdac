package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mcamargo/lexgym/internal/errors"
	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/repository"
)

// BackupService exports the whole data set as one document and restores it
// from one.
type BackupService interface {
	Export(ctx context.Context) (*models.Backup, error)
	Import(ctx context.Context, data []byte) (models.ImportResult, error)
}

type backupService struct {
	settings     repository.SettingsRepository
	vocabulary   repository.VocabularyRepository
	progress     repository.ProgressRepository
	activity     repository.ActivityRepository
	grammar      repository.GrammarRepository
	streak       repository.StreakRepository
	gamification repository.GamificationRepository
}

// NewBackupService creates a new BackupService
func NewBackupService(
	settings repository.SettingsRepository,
	vocabulary repository.VocabularyRepository,
	progress repository.ProgressRepository,
	activity repository.ActivityRepository,
	grammar repository.GrammarRepository,
	streak repository.StreakRepository,
	gamification repository.GamificationRepository,
) BackupService {
	return &backupService{
		settings:     settings,
		vocabulary:   vocabulary,
		progress:     progress,
		activity:     activity,
		grammar:      grammar,
		streak:       streak,
		gamification: gamification,
	}
}

func (s *backupService) Export(ctx context.Context) (*models.Backup, error) {
	log := logger.FromContext(ctx)
	log.Debug("exporting backup")

	settings, err := s.settings.Get(ctx)
	if err != nil {
		log.Error("failed to export settings: %v", err)
		return nil, errors.NewInternalError(err)
	}
	vocabulary, err := s.vocabulary.List(ctx, models.VocabularyFilter{})
	if err != nil {
		log.Error("failed to export vocabulary: %v", err)
		return nil, errors.NewInternalError(err)
	}
	progress, err := s.progress.List(ctx, models.ProgressFilter{})
	if err != nil {
		log.Error("failed to export progress: %v", err)
		return nil, errors.NewInternalError(err)
	}
	activity, err := s.activity.List(ctx, models.ActivityLogCap)
	if err != nil {
		log.Error("failed to export activity: %v", err)
		return nil, errors.NewInternalError(err)
	}
	rules, err := s.grammar.List(ctx)
	if err != nil {
		log.Error("failed to export grammar rules: %v", err)
		return nil, errors.NewInternalError(err)
	}
	streak, err := s.streak.Get(ctx)
	if err != nil {
		log.Error("failed to export streak: %v", err)
		return nil, errors.NewInternalError(err)
	}
	gamification, err := s.gamification.Get(ctx)
	if err != nil {
		log.Error("failed to export gamification: %v", err)
		return nil, errors.NewInternalError(err)
	}

	backup := &models.Backup{
		Version:      models.BackupVersion,
		ExportedAt:   time.Now(),
		Settings:     &settings,
		Vocabulary:   vocabulary,
		Progress:     progress,
		Activity:     activity,
		GrammarRules: rules,
		Streak:       &streak,
		Gamification: &gamification,
	}
	log.Info("backup exported: %d words, %d sessions, %d rules",
		len(vocabulary), len(progress), len(rules))
	return backup, nil
}

// importPayload is a fully parsed backup. Parsing finishes before any write
// so a malformed document never leaves the store partially overwritten.
type importPayload struct {
	settings     *models.Settings
	vocabulary   []models.VocabularyItem
	hasVocab     bool
	progress     []models.ProgressEntry
	hasProgress  bool
	activity     []models.ActivityEntry
	hasActivity  bool
	grammar      []models.GrammarRule
	hasGrammar   bool
	streak       *models.Streak
	gamification *models.Gamification
}

func (s *backupService) Import(ctx context.Context, data []byte) (models.ImportResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("importing backup: %d bytes", len(data))

	payload, result := parseBackup(data)
	if !result.Success {
		log.Warn("import rejected: %s", result.Message)
		return result, nil
	}

	families := 0
	if payload.settings != nil {
		if err := s.settings.Save(ctx, *payload.settings); err != nil {
			log.Error("failed to import settings: %v", err)
			return models.ImportResult{}, errors.NewInternalError(err)
		}
		families++
	}
	if payload.hasVocab {
		if err := s.vocabulary.Replace(ctx, payload.vocabulary); err != nil {
			log.Error("failed to import vocabulary: %v", err)
			return models.ImportResult{}, errors.NewInternalError(err)
		}
		families++
	}
	if payload.hasProgress {
		if err := s.progress.Replace(ctx, payload.progress); err != nil {
			log.Error("failed to import progress: %v", err)
			return models.ImportResult{}, errors.NewInternalError(err)
		}
		families++
	}
	if payload.hasActivity {
		if err := s.activity.Replace(ctx, payload.activity); err != nil {
			log.Error("failed to import activity: %v", err)
			return models.ImportResult{}, errors.NewInternalError(err)
		}
		families++
	}
	if payload.hasGrammar {
		if err := s.grammar.Replace(ctx, payload.grammar); err != nil {
			log.Error("failed to import grammar rules: %v", err)
			return models.ImportResult{}, errors.NewInternalError(err)
		}
		families++
	}
	if payload.streak != nil {
		if err := s.streak.Save(ctx, *payload.streak); err != nil {
			log.Error("failed to import streak: %v", err)
			return models.ImportResult{}, errors.NewInternalError(err)
		}
		families++
	}
	if payload.gamification != nil {
		if err := s.gamification.Replace(ctx, *payload.gamification); err != nil {
			log.Error("failed to import gamification: %v", err)
			return models.ImportResult{}, errors.NewInternalError(err)
		}
		families++
	}

	log.Info("backup imported: %d families restored", families)
	return models.ImportResult{
		Success: true,
		Message: fmt.Sprintf("restored %d data families", families),
	}, nil
}

// parseBackup decodes and validates the whole document. The returned result
// is Success=false with a user-facing message on any parse problem.
func parseBackup(data []byte) (importPayload, models.ImportResult) {
	var payload importPayload

	var envelope models.BackupEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return payload, models.ImportResult{Message: "file is not a valid backup document"}
	}
	if envelope.Version > models.BackupVersion {
		return payload, models.ImportResult{
			Message: fmt.Sprintf("backup version %d is newer than supported version %d", envelope.Version, models.BackupVersion),
		}
	}

	if present(envelope.Settings) {
		var v models.Settings
		if err := json.Unmarshal(envelope.Settings, &v); err != nil {
			return payload, models.ImportResult{Message: "settings section is malformed"}
		}
		payload.settings = &v
	}
	if present(envelope.Vocabulary) {
		if err := json.Unmarshal(envelope.Vocabulary, &payload.vocabulary); err != nil {
			return payload, models.ImportResult{Message: "vocabulary section is malformed"}
		}
		payload.hasVocab = true
	}
	if present(envelope.Progress) {
		if err := json.Unmarshal(envelope.Progress, &payload.progress); err != nil {
			return payload, models.ImportResult{Message: "progress section is malformed"}
		}
		payload.hasProgress = true
	}
	if present(envelope.Activity) {
		if err := json.Unmarshal(envelope.Activity, &payload.activity); err != nil {
			return payload, models.ImportResult{Message: "activity section is malformed"}
		}
		payload.hasActivity = true
	}
	if present(envelope.GrammarRules) {
		if err := json.Unmarshal(envelope.GrammarRules, &payload.grammar); err != nil {
			return payload, models.ImportResult{Message: "grammar_rules section is malformed"}
		}
		payload.hasGrammar = true
	}
	if present(envelope.Streak) {
		var v models.Streak
		if err := json.Unmarshal(envelope.Streak, &v); err != nil {
			return payload, models.ImportResult{Message: "streak section is malformed"}
		}
		payload.streak = &v
	}
	if present(envelope.Gamification) {
		var v models.Gamification
		if err := json.Unmarshal(envelope.Gamification, &v); err != nil {
			return payload, models.ImportResult{Message: "gamification section is malformed"}
		}
		payload.gamification = &v
	}

	return payload, models.ImportResult{Success: true}
}

// present treats both a missing key and an explicit null as absent.
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
