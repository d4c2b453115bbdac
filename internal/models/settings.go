package models

import "time"

// Settings is the singleton installation profile. A default-valued record is
// returned whenever none has been stored yet.
type Settings struct {
	DisplayName    string    `json:"display_name"`
	Avatar         string    `json:"avatar"`
	NativeLanguage string    `json:"native_language"`
	TargetScore    float64   `json:"target_score"`
	DailyGoal      int       `json:"daily_goal"`
	DefaultLevel   string    `json:"default_level"`
	Theme          string    `json:"theme"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SettingsPatch carries a merge-patch update from the settings screen.
// Nil fields are left untouched.
type SettingsPatch struct {
	DisplayName    *string  `json:"display_name,omitempty"`
	Avatar         *string  `json:"avatar,omitempty"`
	NativeLanguage *string  `json:"native_language,omitempty"`
	TargetScore    *float64 `json:"target_score,omitempty"`
	DailyGoal      *int     `json:"daily_goal,omitempty"`
	DefaultLevel   *string  `json:"default_level,omitempty"`
	Theme          *string  `json:"theme,omitempty"`
}

// DefaultSettings returns the settings record created on first read.
func DefaultSettings(now time.Time) Settings {
	return Settings{
		DisplayName:    "Learner",
		NativeLanguage: "en",
		TargetScore:    7.0,
		DailyGoal:      3,
		DefaultLevel:   "intermediate",
		Theme:          "light",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
