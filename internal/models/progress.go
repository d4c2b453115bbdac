package models

import "time"

// Learning module identifiers.
const (
	ModuleReading    = "reading"
	ModuleListening  = "listening"
	ModuleGrammar    = "grammar"
	ModuleVocabulary = "vocabulary"
	ModuleWriting    = "writing"
	ModuleSpeaking   = "speaking"
)

// KnownModule reports whether s is one of the learning module identifiers.
func KnownModule(s string) bool {
	switch s {
	case ModuleReading, ModuleListening, ModuleGrammar, ModuleVocabulary, ModuleWriting, ModuleSpeaking:
		return true
	}
	return false
}

// ProgressEntry is one completed practice session. Entries are append-only
// and never mutated after creation.
type ProgressEntry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Module    string    `json:"module"`
	Score     int       `json:"score"`
	MaxScore  int       `json:"max_score"`
	Label     string    `json:"label"`
}

// ProgressFilter narrows progress listings.
type ProgressFilter struct {
	Module string
	Since  *time.Time
	Limit  int
	Offset int
}
