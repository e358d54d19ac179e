package service_test

import (
	"testing"

	"github.com/skalski/macroquest/internal/service"
)

func TestLogMealUpdatesCountersAndXP(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	outcome, err := service.LogMeal(db, service.MealLogInput{
		Name:     "Chicken bowl",
		Calories: 550,
		Now:      at("2024-05-01"),
	})
	if err != nil {
		t.Fatalf("log meal: %v", err)
	}
	if outcome.Day.Consumed != 550 {
		t.Fatalf("expected 550 consumed, got %d", outcome.Day.Consumed)
	}
	if outcome.Streak.Current != 1 {
		t.Fatalf("expected streak 1 after first log, got %d", outcome.Streak.Current)
	}
	// Meal XP + streak bonus + the first_meal unlock reward.
	if outcome.XPEarned != 10+5+25 {
		t.Fatalf("expected 40 xp earned, got %d", outcome.XPEarned)
	}
	if len(outcome.Unlocked) != 1 || outcome.Unlocked[0].ID != "first_meal" {
		t.Fatalf("expected first_meal unlock, got %+v", outcome.Unlocked)
	}

	p, err := service.LoadProgress(db)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if p.TotalMeals != 1 || p.XP != 40 || p.LastLogDate != "2024-05-01" {
		t.Fatalf("unexpected progress: %+v", p)
	}
}

func TestLogMealAchievementNotReAwarded(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.LogMeal(db, service.MealLogInput{Name: "a", Calories: 300, Now: at("2024-05-01")}); err != nil {
		t.Fatalf("log meal: %v", err)
	}
	second, err := service.LogMeal(db, service.MealLogInput{Name: "b", Calories: 300, Now: at("2024-05-01")})
	if err != nil {
		t.Fatalf("log meal: %v", err)
	}
	for _, a := range second.Unlocked {
		if a.ID == "first_meal" {
			t.Fatal("first_meal awarded twice")
		}
	}

	p, err := service.LoadProgress(db)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if len(p.Unlocked) != 1 {
		t.Fatalf("expected exactly one unlock recorded, got %v", p.Unlocked)
	}
}

func TestLogMealSnackCounter(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.LogMeal(db, service.MealLogInput{Name: "chips", Calories: 150, Snack: true, Now: at("2024-05-01")}); err != nil {
		t.Fatalf("log snack: %v", err)
	}
	p, err := service.LoadProgress(db)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if p.SnacksLogged != 1 || p.TotalMeals != 1 {
		t.Fatalf("expected snack counted as meal too, got %+v", p)
	}
}

func TestLogMealSettlesPreviousPerfectDay(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	// Day one lands under the default 2000 budget.
	if _, err := service.LogMeal(db, service.MealLogInput{Name: "a", Calories: 1800, Now: at("2024-05-01")}); err != nil {
		t.Fatalf("log day one: %v", err)
	}
	// First log of day two settles day one.
	if _, err := service.LogMeal(db, service.MealLogInput{Name: "b", Calories: 700, Now: at("2024-05-02")}); err != nil {
		t.Fatalf("log day two: %v", err)
	}

	p, err := service.LoadProgress(db)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if p.PerfectDays != 1 || p.DaysAtGoal != 1 {
		t.Fatalf("expected previous day settled as perfect, got %+v", p)
	}

	// Another log on day two must not settle day one again.
	if _, err := service.LogMeal(db, service.MealLogInput{Name: "c", Calories: 400, Now: at("2024-05-02")}); err != nil {
		t.Fatalf("log again: %v", err)
	}
	p, err = service.LoadProgress(db)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if p.PerfectDays != 1 {
		t.Fatalf("previous day settled twice: %+v", p)
	}
}

func TestLogMealOverBudgetDayNotPerfect(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.LogMeal(db, service.MealLogInput{Name: "a", Calories: 2600, Now: at("2024-05-01")}); err != nil {
		t.Fatalf("log day one: %v", err)
	}
	if _, err := service.LogMeal(db, service.MealLogInput{Name: "b", Calories: 500, Now: at("2024-05-02")}); err != nil {
		t.Fatalf("log day two: %v", err)
	}

	p, err := service.LoadProgress(db)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if p.PerfectDays != 0 || p.DaysAtGoal != 0 {
		t.Fatalf("over-budget day must not settle as perfect: %+v", p)
	}
}

func TestLogMealStreakAcrossDays(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	for _, day := range []string{"2024-05-01", "2024-05-02", "2024-05-03"} {
		if _, err := service.LogMeal(db, service.MealLogInput{Name: "m", Calories: 500, Now: at(day)}); err != nil {
			t.Fatalf("log %s: %v", day, err)
		}
	}
	p, err := service.LoadProgress(db)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if p.CurrentStreak != 3 || p.LongestStreak != 3 {
		t.Fatalf("expected 3-day streak, got %+v", p)
	}
}

func TestLogWaterUpdatesCounters(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	outcome, err := service.LogWater(db, 3, at("2024-05-01"))
	if err != nil {
		t.Fatalf("log water: %v", err)
	}
	if outcome.Day.Water != 3 {
		t.Fatalf("expected water=3, got %+v", outcome.Day)
	}
	// Water XP plus the streak bonus for the first log of the day.
	if outcome.XPEarned != 6+5 {
		t.Fatalf("expected 11 xp for 3 glasses, got %d", outcome.XPEarned)
	}
	p, err := service.LoadProgress(db)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if p.TotalWater != 3 {
		t.Fatalf("expected total water 3, got %+v", p)
	}
}

func TestLogWaterAdvancesStreak(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	// Water counts as a logged entry, so water-only days keep the
	// streak alive just like meals.
	for _, day := range []string{"2024-05-01", "2024-05-02", "2024-05-03"} {
		if _, err := service.LogWater(db, 1, at(day)); err != nil {
			t.Fatalf("log water %s: %v", day, err)
		}
	}
	p, err := service.LoadProgress(db)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if p.CurrentStreak != 3 || p.LongestStreak != 3 {
		t.Fatalf("expected 3-day water streak, got %+v", p)
	}
	if p.LastLogDate != "2024-05-03" {
		t.Fatalf("expected last log date stamped, got %q", p.LastLogDate)
	}
}

func TestLogWaterSettlesPreviousDay(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.LogMeal(db, service.MealLogInput{Name: "a", Calories: 1500, Now: at("2024-05-01")}); err != nil {
		t.Fatalf("log day one: %v", err)
	}
	// The first water log of day two settles day one.
	if _, err := service.LogWater(db, 2, at("2024-05-02")); err != nil {
		t.Fatalf("log water day two: %v", err)
	}

	p, err := service.LoadProgress(db)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if p.PerfectDays != 1 || p.DaysAtGoal != 1 {
		t.Fatalf("expected previous day settled by water log, got %+v", p)
	}
}

func TestStatusDerivesLevelFromXP(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.LogMeal(db, service.MealLogInput{Name: "a", Calories: 500, Now: at("2024-05-01")}); err != nil {
		t.Fatalf("log meal: %v", err)
	}
	status, err := service.Status(db)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Level != service.LevelForXP(status.XP) {
		t.Fatalf("level %d inconsistent with xp %d", status.Level, status.XP)
	}
	if status.XPIntoLevel < 0 || status.XPIntoLevel >= status.XPNeeded {
		t.Fatalf("xp window invariant violated: %+v", status)
	}
}

func TestLogMealRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.LogMeal(db, service.MealLogInput{Name: "", Calories: 100}); err == nil {
		t.Fatal("expected error for empty name")
	}
	if _, err := service.LogMeal(db, service.MealLogInput{Name: "x", Calories: 0}); err == nil {
		t.Fatal("expected error for non-positive calories")
	}
}
