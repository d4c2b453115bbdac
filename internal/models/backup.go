package models

import (
	"encoding/json"
	"time"
)

// BackupVersion tags the export format.
const BackupVersion = 1

// Backup is the full export document. On import, families absent from the
// document are left untouched, which is why they unmarshal via RawMessage.
type Backup struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exported_at"`

	Settings     *Settings        `json:"settings,omitempty"`
	Vocabulary   []VocabularyItem `json:"vocabulary,omitempty"`
	Progress     []ProgressEntry  `json:"progress,omitempty"`
	Activity     []ActivityEntry  `json:"activity,omitempty"`
	GrammarRules []GrammarRule    `json:"grammar_rules,omitempty"`
	Streak       *Streak          `json:"streak,omitempty"`
	Gamification *Gamification    `json:"gamification,omitempty"`
}

// BackupEnvelope mirrors Backup but defers family decoding, so an import can
// distinguish "family absent" from "family present but empty".
type BackupEnvelope struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exported_at"`

	Settings     json.RawMessage `json:"settings"`
	Vocabulary   json.RawMessage `json:"vocabulary"`
	Progress     json.RawMessage `json:"progress"`
	Activity     json.RawMessage `json:"activity"`
	GrammarRules json.RawMessage `json:"grammar_rules"`
	Streak       json.RawMessage `json:"streak"`
	Gamification json.RawMessage `json:"gamification"`
}

// ImportResult is the typed outcome of an import. Import is the only
// persistence operation that can fail without an underlying storage error.
type ImportResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
