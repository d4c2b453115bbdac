package models

// DateLayout is the calendar-date format used by streaks and the XP log.
const DateLayout = "2006-01-02"

// Streak tracks consecutive active days. LastActiveDate is a calendar date
// string; an empty value means no activity has ever been logged.
type Streak struct {
	Current        int    `json:"current"`
	Longest        int    `json:"longest"`
	LastActiveDate string `json:"last_active_date"`
}
