package progression

// ActivityKind identifies one XP-earning activity or bonus condition.
type ActivityKind string

const (
	ActivityReadingComplete    ActivityKind = "reading_complete"
	ActivityReadingPerfect     ActivityKind = "reading_perfect"
	ActivityListeningComplete  ActivityKind = "listening_complete"
	ActivityListeningPerfect   ActivityKind = "listening_perfect"
	ActivityGrammarComplete    ActivityKind = "grammar_complete"
	ActivityVocabularyComplete ActivityKind = "vocabulary_complete"
	ActivityWritingComplete    ActivityKind = "writing_complete"
	ActivitySpeakingComplete   ActivityKind = "speaking_complete"
	ActivityWordSaved          ActivityKind = "word_saved"
	ActivityRuleSaved          ActivityKind = "rule_saved"
	ActivityPerfectScore       ActivityKind = "perfect_score"
	ActivitySpeedBonus         ActivityKind = "speed_bonus"
	ActivityDailyGoalMet       ActivityKind = "daily_goal_met"
)

// xpValues is the static point table. Rebalancing is a data edit, not a code
// change.
var xpValues = map[ActivityKind]int{
	ActivityReadingComplete:    50,
	ActivityReadingPerfect:     30,
	ActivityListeningComplete:  50,
	ActivityListeningPerfect:   30,
	ActivityGrammarComplete:    40,
	ActivityVocabularyComplete: 35,
	ActivityWritingComplete:    60,
	ActivitySpeakingComplete:   60,
	ActivityWordSaved:          10,
	ActivityRuleSaved:          5,
	ActivityPerfectScore:       30,
	ActivitySpeedBonus:         20,
	ActivityDailyGoalMet:       25,
}

// Value returns the point value for an activity kind, or 0 for unknown kinds.
func Value(kind ActivityKind) int {
	return xpValues[kind]
}

// KnownActivity reports whether kind is in the point table.
func KnownActivity(kind ActivityKind) bool {
	_, ok := xpValues[kind]
	return ok
}

// SessionActivity maps a learning module to the activity kind earned by
// completing one of its sessions.
func SessionActivity(module string) (ActivityKind, bool) {
	switch module {
	case "reading":
		return ActivityReadingComplete, true
	case "listening":
		return ActivityListeningComplete, true
	case "grammar":
		return ActivityGrammarComplete, true
	case "vocabulary":
		return ActivityVocabularyComplete, true
	case "writing":
		return ActivityWritingComplete, true
	case "speaking":
		return ActivitySpeakingComplete, true
	}
	return "", false
}
