package progression

// Badge tiers.
const (
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
)

// Badge is a static catalog entry; the catalog is configuration, never
// mutated at runtime.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Tier        string `json:"tier"`
}

// Snapshot is the read-only state badge conditions are evaluated against.
type Snapshot struct {
	TotalSessions   int
	WordCount       int
	StrongWriting   int // writing sessions scored at 80% or better
	GrammarSessions int
	StreakCurrent   int
	Level           int
}

type badgeRule struct {
	badge     Badge
	satisfied func(Snapshot) bool
}

// catalog is the fixed, ordered badge condition list. Every rule is a pure
// predicate over a Snapshot, so evaluation can run on every XP gain without
// side effects.
var catalog = []badgeRule{
	{
		badge:     Badge{ID: "first_steps", Name: "First Steps", Description: "Complete your first practice session", Icon: "👣", Tier: TierBronze},
		satisfied: func(s Snapshot) bool { return s.TotalSessions >= 1 },
	},
	{
		badge:     Badge{ID: "regular", Name: "Regular", Description: "Complete 10 practice sessions", Icon: "📅", Tier: TierBronze},
		satisfied: func(s Snapshot) bool { return s.TotalSessions >= 10 },
	},
	{
		badge:     Badge{ID: "dedicated", Name: "Dedicated", Description: "Complete 50 practice sessions", Icon: "🏋️", Tier: TierSilver},
		satisfied: func(s Snapshot) bool { return s.TotalSessions >= 50 },
	},
	{
		badge:     Badge{ID: "centurion", Name: "Centurion", Description: "Complete 100 practice sessions", Icon: "💯", Tier: TierGold},
		satisfied: func(s Snapshot) bool { return s.TotalSessions >= 100 },
	},
	{
		badge:     Badge{ID: "word_collector", Name: "Word Collector", Description: "Save 10 words", Icon: "📒", Tier: TierBronze},
		satisfied: func(s Snapshot) bool { return s.WordCount >= 10 },
	},
	{
		badge:     Badge{ID: "lexicon_builder", Name: "Lexicon Builder", Description: "Save 50 words", Icon: "📚", Tier: TierSilver},
		satisfied: func(s Snapshot) bool { return s.WordCount >= 50 },
	},
	{
		badge:     Badge{ID: "walking_dictionary", Name: "Walking Dictionary", Description: "Save 100 words", Icon: "🎓", Tier: TierGold},
		satisfied: func(s Snapshot) bool { return s.WordCount >= 100 },
	},
	{
		badge:     Badge{ID: "wordsmith", Name: "Wordsmith", Description: "Score 80% or better on 5 writing sessions", Icon: "✍️", Tier: TierSilver},
		satisfied: func(s Snapshot) bool { return s.StrongWriting >= 5 },
	},
	{
		badge:     Badge{ID: "essay_master", Name: "Essay Master", Description: "Score 80% or better on 20 writing sessions", Icon: "📝", Tier: TierGold},
		satisfied: func(s Snapshot) bool { return s.StrongWriting >= 20 },
	},
	{
		badge:     Badge{ID: "grammar_guru", Name: "Grammar Guru", Description: "Complete 10 grammar sessions", Icon: "🧩", Tier: TierSilver},
		satisfied: func(s Snapshot) bool { return s.GrammarSessions >= 10 },
	},
	{
		badge:     Badge{ID: "streak_starter", Name: "Streak Starter", Description: "Practice 3 days in a row", Icon: "🔥", Tier: TierBronze},
		satisfied: func(s Snapshot) bool { return s.StreakCurrent >= 3 },
	},
	{
		badge:     Badge{ID: "week_warrior", Name: "Week Warrior", Description: "Practice 7 days in a row", Icon: "⚔️", Tier: TierSilver},
		satisfied: func(s Snapshot) bool { return s.StreakCurrent >= 7 },
	},
	{
		badge:     Badge{ID: "unstoppable", Name: "Unstoppable", Description: "Practice 30 days in a row", Icon: "🚀", Tier: TierGold},
		satisfied: func(s Snapshot) bool { return s.StreakCurrent >= 30 },
	},
	{
		badge:     Badge{ID: "rising_star", Name: "Rising Star", Description: "Reach level 5", Icon: "⭐", Tier: TierBronze},
		satisfied: func(s Snapshot) bool { return s.Level >= 5 },
	},
	{
		badge:     Badge{ID: "scholar", Name: "Scholar", Description: "Reach level 10", Icon: "🦉", Tier: TierSilver},
		satisfied: func(s Snapshot) bool { return s.Level >= 10 },
	},
	{
		badge:     Badge{ID: "master_of_words", Name: "Master of Words", Description: "Reach level 20", Icon: "👑", Tier: TierGold},
		satisfied: func(s Snapshot) bool { return s.Level >= MaxLevel },
	},
}

// Catalog returns every badge descriptor in evaluation order.
func Catalog() []Badge {
	badges := make([]Badge, len(catalog))
	for i, rule := range catalog {
		badges[i] = rule.badge
	}
	return badges
}

// BadgeByID looks up a badge descriptor in the static catalog.
func BadgeByID(id string) (Badge, bool) {
	for _, rule := range catalog {
		if rule.badge.ID == id {
			return rule.badge, true
		}
	}
	return Badge{}, false
}

// EvaluateBadges returns the badges whose conditions the snapshot satisfies
// and that are not yet unlocked, in catalog order. Evaluation never mutates
// anything, so running it twice on unchanged state yields nothing new the
// second time.
func EvaluateBadges(snap Snapshot, unlocked map[string]bool) []Badge {
	var newly []Badge
	for _, rule := range catalog {
		if unlocked[rule.badge.ID] {
			continue
		}
		if rule.satisfied(snap) {
			newly = append(newly, rule.badge)
		}
	}
	return newly
}
