package models

import "time"

// GrammarRule is a user-curated reference card. Rules are unique on the
// exact rule text; saving a duplicate is a no-op.
type GrammarRule struct {
	ID      string    `json:"id"`
	Topic   string    `json:"topic"`
	Rule    string    `json:"rule"`
	Example string    `json:"example"`
	SavedAt time.Time `json:"saved_at"`
}
