package progression

// thresholds is the cumulative XP required for each level; index 0 is level 1.
// The staircase saturates at the final entry: levels beyond it are not
// modeled.
var thresholds = []int{
	0, 100, 250, 450, 700,
	1000, 1350, 1750, 2200, 2700,
	3300, 4000, 4800, 5700, 6700,
	7800, 9000, 10300, 11700, 13200,
}

// tierNames bands five consecutive levels per tier, in ascending order.
var tierNames = []string{"Novice", "Apprentice", "Scholar", "Master"}

// MaxLevel is the highest modeled level.
const MaxLevel = 20

// LevelInfo describes the level derived from a cumulative XP total.
type LevelInfo struct {
	Level         int    `json:"level"`
	Tier          string `json:"tier"`
	Percent       int    `json:"percent"`
	NextThreshold int    `json:"next_threshold"`
}

// TierFor returns the tier name for a level.
func TierFor(level int) string {
	idx := (level - 1) / 5
	if idx < 0 {
		idx = 0
	}
	if idx >= len(tierNames) {
		idx = len(tierNames) - 1
	}
	return tierNames[idx]
}

// LevelFor computes the level reached at a cumulative XP total: the largest
// level whose threshold the total has met, never below 1.
func LevelFor(xp int) LevelInfo {
	if xp < 0 {
		xp = 0
	}

	level := 1
	for i, th := range thresholds {
		if xp < th {
			break
		}
		level = i + 1
	}

	info := LevelInfo{Level: level, Tier: TierFor(level)}
	if level >= len(thresholds) {
		// Pinned at the top of the staircase.
		info.Percent = 100
		info.NextThreshold = thresholds[len(thresholds)-1]
		return info
	}

	current := thresholds[level-1]
	next := thresholds[level]
	info.NextThreshold = next
	info.Percent = (xp - current) * 100 / (next - current)
	return info
}
