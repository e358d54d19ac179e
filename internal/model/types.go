package model

import "time"

// DayLog accumulates everything logged on one local calendar day.
// Day is a YYYY-MM-DD date string; rows are created on the first log
// event of a day and only ever updated additively.
type DayLog struct {
	Day      string
	Consumed int
	Water    int
}

// UserProgress is the singleton gamification record. Level is not a
// field: it is always derived from XP.
type UserProgress struct {
	XP            int
	TotalMeals    int
	TotalWater    int
	CurrentStreak int
	LongestStreak int
	PerfectDays   int
	SnacksLogged  int
	DaysAtGoal    int
	LastLogDate   string
	// Unlocked holds achievement ids in unlock order, oldest first.
	Unlocked []string
}

// CounterKind names which UserProgress counter an achievement reads.
type CounterKind string

const (
	CounterStreak      CounterKind = "streak"
	CounterTotalMeals  CounterKind = "total_meals"
	CounterPerfectDays CounterKind = "perfect_days"
	CounterSnacks      CounterKind = "snacks"
	CounterWater       CounterKind = "water"
	CounterDaysAtGoal  CounterKind = "days_at_goal"
)

type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Requirement int
	Counter     CounterKind
	XPReward    int
}

type UnlockedAchievement struct {
	ID         string
	UnlockedAt time.Time
}

type WeightLog struct {
	Day    string
	Weight float64
	Unit   string
}

type BannedIngredient struct {
	Name     string
	Aliases  []string
	Risk     string
	EUStatus string
	Category string
}
