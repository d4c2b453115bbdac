package progression

import (
	"time"

	"github.com/mcamargo/lexgym/internal/models"
)

// AdvanceStreak applies the once-per-calendar-day streak rules: a repeat call
// on the same day is a no-op, a day that follows yesterday extends the run,
// and anything else starts over at 1. Longest tracks the running maximum.
func AdvanceStreak(s models.Streak, now time.Time) models.Streak {
	today := now.Format(models.DateLayout)
	if s.LastActiveDate == today {
		return s
	}

	yesterday := now.AddDate(0, 0, -1).Format(models.DateLayout)
	if s.LastActiveDate == yesterday {
		s.Current++
	} else {
		s.Current = 1
	}
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	s.LastActiveDate = today
	return s
}

// XPByDate reduces the bounded XP log into a date to summed-amount table for
// the contribution heatmap. Read-only.
func XPByDate(log []models.XPLogEntry) map[string]int {
	totals := make(map[string]int, len(log))
	for _, e := range log {
		totals[e.Date] += e.Amount
	}
	return totals
}

// EarnResult is the outcome of one XP-earning call.
type EarnResult struct {
	Base      int     `json:"base"`
	Bonus     int     `json:"bonus"`
	NewTotal  int     `json:"new_total"`
	LeveledUp bool    `json:"leveled_up"`
	NewLevel  int     `json:"new_level"`
	NewBadges []Badge `json:"new_badges"`
}
