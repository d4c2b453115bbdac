package services

import (
	"context"
	"time"

	"github.com/mcamargo/lexgym/internal/errors"
	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/repository"
)

// SettingsService manages the singleton installation profile.
type SettingsService interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.Settings, error)
	ResetSettings(ctx context.Context) (models.Settings, error)
}

type settingsService struct {
	settings repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settings repository.SettingsRepository) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) GetSettings(ctx context.Context) (models.Settings, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get settings: %v", err)
		return models.Settings{}, errors.NewInternalError(err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.Settings, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating settings")

	if patch.DailyGoal != nil && *patch.DailyGoal < 0 {
		return models.Settings{}, errors.NewValidationError("daily_goal", "must not be negative")
	}
	if patch.TargetScore != nil && (*patch.TargetScore < 0 || *patch.TargetScore > 9) {
		return models.Settings{}, errors.NewValidationError("target_score", "must be between 0 and 9")
	}

	current, err := s.settings.Get(ctx)
	if err != nil {
		log.Error("failed to get settings: %v", err)
		return models.Settings{}, errors.NewInternalError(err)
	}

	merged := merge(current, patch)
	merged.UpdatedAt = time.Now()
	if err := s.settings.Save(ctx, merged); err != nil {
		log.Error("failed to save settings: %v", err)
		return models.Settings{}, errors.NewInternalError(err)
	}
	log.Info("settings updated")
	return merged, nil
}

func (s *settingsService) ResetSettings(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx)
	log.Debug("resetting settings")

	if err := s.settings.Clear(ctx); err != nil {
		log.Error("failed to clear settings: %v", err)
		return models.Settings{}, errors.NewInternalError(err)
	}
	log.Info("settings reset to defaults")
	return models.DefaultSettings(time.Now()), nil
}

func merge(s models.Settings, p models.SettingsPatch) models.Settings {
	if p.DisplayName != nil {
		s.DisplayName = *p.DisplayName
	}
	if p.Avatar != nil {
		s.Avatar = *p.Avatar
	}
	if p.NativeLanguage != nil {
		s.NativeLanguage = *p.NativeLanguage
	}
	if p.TargetScore != nil {
		s.TargetScore = *p.TargetScore
	}
	if p.DailyGoal != nil {
		s.DailyGoal = *p.DailyGoal
	}
	if p.DefaultLevel != nil {
		s.DefaultLevel = *p.DefaultLevel
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	return s
}
