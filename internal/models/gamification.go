package models

import "time"

// XPLogCap bounds the dated XP log used by the calendar heatmap.
const XPLogCap = 365

// XPLogEntry is one dated XP gain, kept for the contribution heatmap.
type XPLogEntry struct {
	Date     string `json:"date"`
	Amount   int    `json:"amount"`
	Activity string `json:"activity"`
}

// UnlockedBadge is a badge id with its unlock time. The set is append-only;
// a badge id appears at most once.
type UnlockedBadge struct {
	BadgeID    string    `json:"badge_id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// Gamification is the singleton progression record.
type Gamification struct {
	XP     int             `json:"xp"`
	Badges []UnlockedBadge `json:"badges"`
	XPLog  []XPLogEntry    `json:"xp_log"`
}
