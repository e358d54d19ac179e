package service

// Levels 1 through 10 cost 100 XP each to clear; from level 11 on each
// level costs 200 XP. The cost is read off the level being cleared, so
// the step from 10 to 11 still costs 100.
const (
	baseLevelCost     = 100
	lateLevelCost     = 200
	lateLevelBoundary = 10
)

func levelCost(level int) int {
	if level <= lateLevelBoundary {
		return baseLevelCost
	}
	return lateLevelCost
}

// LevelForXP converts a cumulative XP total into a level by greedily
// consuming per-level costs. LevelForXP(0) == 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	level := 1
	total := 0
	for total+levelCost(level) <= xp {
		total += levelCost(level)
		level++
	}
	return level
}

// XPWindow reports progress within the current level band: current is
// the XP earned past the level's floor and needed is the cost of the
// level. For any xp >= 0, 0 <= current < needed.
func XPWindow(xp int) (current, needed int) {
	if xp < 0 {
		xp = 0
	}
	level := LevelForXP(xp)
	floor := 0
	for l := 1; l < level; l++ {
		floor += levelCost(l)
	}
	return xp - floor, levelCost(level)
}
