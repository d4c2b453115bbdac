package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
	"github.com/mcamargo/lexgym/internal/repository"
)

type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository implementation
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")
	log.Debug("getting settings")

	var s models.Settings
	err := r.db.QueryRowContext(ctx, `
SELECT display_name, avatar, native_language, target_score, daily_goal, default_level, theme, created_at, updated_at
FROM settings
WHERE id = 1
`).Scan(&s.DisplayName, &s.Avatar, &s.NativeLanguage, &s.TargetScore, &s.DailyGoal, &s.DefaultLevel, &s.Theme, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no settings stored, returning defaults")
		return models.DefaultSettings(time.Now()), nil
	}
	if err != nil {
		log.Error("failed to get settings: %v", err)
		return models.Settings{}, err
	}
	return s, nil
}

func (r *settingsRepository) Save(ctx context.Context, s models.Settings) error {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")
	log.Debug("saving settings: display_name=%s", s.DisplayName)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO settings (id, display_name, avatar, native_language, target_score, daily_goal, default_level, theme, created_at, updated_at)
VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    display_name = excluded.display_name,
    avatar = excluded.avatar,
    native_language = excluded.native_language,
    target_score = excluded.target_score,
    daily_goal = excluded.daily_goal,
    default_level = excluded.default_level,
    theme = excluded.theme,
    updated_at = excluded.updated_at
`, s.DisplayName, s.Avatar, s.NativeLanguage, s.TargetScore, s.DailyGoal, s.DefaultLevel, s.Theme, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		log.Error("failed to save settings: %v", err)
	}
	return err
}

func (r *settingsRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")
	log.Debug("clearing settings")

	_, err := r.db.ExecContext(ctx, `DELETE FROM settings`)
	if err != nil {
		log.Error("failed to clear settings: %v", err)
	}
	return err
}
