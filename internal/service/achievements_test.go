package service_test

import (
	"testing"

	"github.com/skalski/macroquest/internal/model"
	"github.com/skalski/macroquest/internal/service"
)

func TestNewlyUnlockedReadsDeclaredCounter(t *testing.T) {
	t.Parallel()

	p := model.UserProgress{TotalMeals: 1}
	unlocked := service.NewlyUnlocked(p)
	if len(unlocked) != 1 || unlocked[0].ID != "first_meal" {
		t.Fatalf("expected first_meal unlock, got %+v", unlocked)
	}
}

func TestNewlyUnlockedSkipsAlreadyUnlocked(t *testing.T) {
	t.Parallel()

	p := model.UserProgress{
		TotalMeals: 15,
		Unlocked:   []string{"first_meal", "meals_10"},
	}
	for _, a := range service.NewlyUnlocked(p) {
		if a.ID == "first_meal" || a.ID == "meals_10" {
			t.Fatalf("achievement %s returned again despite being unlocked", a.ID)
		}
	}
}

func TestNewlyUnlockedMultipleCounters(t *testing.T) {
	t.Parallel()

	p := model.UserProgress{
		TotalMeals:    10,
		CurrentStreak: 7,
		TotalWater:    50,
		SnacksLogged:  10,
		DaysAtGoal:    10,
		PerfectDays:   5,
	}
	got := map[string]bool{}
	for _, a := range service.NewlyUnlocked(p) {
		got[a.ID] = true
	}
	for _, want := range []string{"first_meal", "meals_10", "streak_3", "streak_7",
		"perfect_5", "snacks_10", "water_50", "goal_10"} {
		if !got[want] {
			t.Fatalf("expected %s to unlock, got %v", want, got)
		}
	}
	if got["meals_50"] || got["streak_14"] || got["goal_30"] {
		t.Fatalf("unexpected unlocks present: %v", got)
	}
}

func TestPerfectAchievementsReadPerfectDays(t *testing.T) {
	t.Parallel()

	// perfect_* entries require days actually finished within budget,
	// not a long streak of merely logged days.
	streakOnly := model.UserProgress{CurrentStreak: 5}
	for _, a := range service.NewlyUnlocked(streakOnly) {
		if a.ID == "perfect_5" {
			t.Fatal("perfect_5 unlocked from streak alone")
		}
	}

	onBudget := model.UserProgress{PerfectDays: 5}
	found := false
	for _, a := range service.NewlyUnlocked(onBudget) {
		if a.ID == "perfect_5" {
			found = true
		}
	}
	if !found {
		t.Fatal("perfect_5 did not unlock at 5 perfect days")
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, a := range service.AchievementCatalog() {
		if seen[a.ID] {
			t.Fatalf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Requirement <= 0 {
			t.Fatalf("achievement %q has non-positive requirement", a.ID)
		}
		if a.XPReward <= 0 {
			t.Fatalf("achievement %q has non-positive reward", a.ID)
		}
	}
}
