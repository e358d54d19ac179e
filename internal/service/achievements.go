package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/skalski/macroquest/internal/model"
)

// Catalog of achievements. Each definition names the progress counter
// it reads via Counter, so unlock checks never dispatch on id strings.
var achievementCatalog = []model.Achievement{
	{ID: "first_meal", Name: "First Bite", Description: "Log your first meal", Icon: "🍽️", Requirement: 1, Counter: model.CounterTotalMeals, XPReward: 25},
	{ID: "meals_10", Name: "Regular", Description: "Log 10 meals", Icon: "🥗", Requirement: 10, Counter: model.CounterTotalMeals, XPReward: 50},
	{ID: "meals_50", Name: "Dedicated", Description: "Log 50 meals", Icon: "🍱", Requirement: 50, Counter: model.CounterTotalMeals, XPReward: 100},
	{ID: "meals_100", Name: "Century Club", Description: "Log 100 meals", Icon: "💯", Requirement: 100, Counter: model.CounterTotalMeals, XPReward: 200},
	{ID: "meals_250", Name: "Macro Master", Description: "Log 250 meals", Icon: "👑", Requirement: 250, Counter: model.CounterTotalMeals, XPReward: 500},

	{ID: "streak_3", Name: "Warming Up", Description: "Keep a 3-day streak", Icon: "🔥", Requirement: 3, Counter: model.CounterStreak, XPReward: 50},
	{ID: "streak_7", Name: "One Week Strong", Description: "Keep a 7-day streak", Icon: "📅", Requirement: 7, Counter: model.CounterStreak, XPReward: 100},
	{ID: "streak_14", Name: "Fortnight Fighter", Description: "Keep a 14-day streak", Icon: "⚡", Requirement: 14, Counter: model.CounterStreak, XPReward: 200},
	{ID: "streak_30", Name: "Habit Formed", Description: "Keep a 30-day streak", Icon: "🏆", Requirement: 30, Counter: model.CounterStreak, XPReward: 500},

	{ID: "perfect_5", Name: "On Target", Description: "Finish 5 days within budget", Icon: "🎯", Requirement: 5, Counter: model.CounterPerfectDays, XPReward: 75},
	{ID: "perfect_20", Name: "Precision Eater", Description: "Finish 20 days within budget", Icon: "🏹", Requirement: 20, Counter: model.CounterPerfectDays, XPReward: 250},

	{ID: "snacks_10", Name: "Snack Attack", Description: "Log 10 snacks", Icon: "🍿", Requirement: 10, Counter: model.CounterSnacks, XPReward: 50},
	{ID: "water_50", Name: "Hydro Homie", Description: "Log 50 glasses of water", Icon: "💧", Requirement: 50, Counter: model.CounterWater, XPReward: 75},
	{ID: "goal_10", Name: "Goal Getter", Description: "Hit your calorie goal on 10 days", Icon: "⭐", Requirement: 10, Counter: model.CounterDaysAtGoal, XPReward: 100},
	{ID: "goal_30", Name: "Consistency King", Description: "Hit your calorie goal on 30 days", Icon: "🌟", Requirement: 30, Counter: model.CounterDaysAtGoal, XPReward: 300},
}

// AchievementCatalog returns the full static catalog in display order.
func AchievementCatalog() []model.Achievement {
	out := make([]model.Achievement, len(achievementCatalog))
	copy(out, achievementCatalog)
	return out
}

func counterValue(p model.UserProgress, kind model.CounterKind) int {
	switch kind {
	case model.CounterStreak:
		return p.CurrentStreak
	case model.CounterTotalMeals:
		return p.TotalMeals
	case model.CounterPerfectDays:
		return p.PerfectDays
	case model.CounterSnacks:
		return p.SnacksLogged
	case model.CounterWater:
		return p.TotalWater
	case model.CounterDaysAtGoal:
		return p.DaysAtGoal
	default:
		return 0
	}
}

// NewlyUnlocked is a pure query: it returns every catalog entry whose
// counter meets its requirement and whose id is not already unlocked.
// The caller applies the rewards.
func NewlyUnlocked(p model.UserProgress) []model.Achievement {
	unlocked := make(map[string]bool, len(p.Unlocked))
	for _, id := range p.Unlocked {
		unlocked[id] = true
	}
	var out []model.Achievement
	for _, a := range achievementCatalog {
		if unlocked[a.ID] {
			continue
		}
		if counterValue(p, a.Counter) >= a.Requirement {
			out = append(out, a)
		}
	}
	return out
}

// ListUnlocked returns unlocked achievements in unlock order, oldest
// first.
func ListUnlocked(db *sql.DB) ([]model.UnlockedAchievement, error) {
	rows, err := db.Query(`SELECT achievement_id, unlocked_at FROM unlocked_achievements ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("list unlocked achievements: %w", err)
	}
	defer rows.Close()

	out := make([]model.UnlockedAchievement, 0)
	for rows.Next() {
		var u model.UnlockedAchievement
		var raw string
		if err := rows.Scan(&u.ID, &raw); err != nil {
			return nil, fmt.Errorf("scan unlocked achievement: %w", err)
		}
		if t, err := time.Parse("2006-01-02 15:04:05", raw); err == nil {
			u.UnlockedAt = t
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unlocked achievements: %w", err)
	}
	return out, nil
}

// AchievementByID looks up a catalog entry.
func AchievementByID(id string) (model.Achievement, bool) {
	for _, a := range achievementCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return model.Achievement{}, false
}
