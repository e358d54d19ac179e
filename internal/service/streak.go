package service

import (
	"database/sql"
	"sort"
	"time"

	"github.com/skalski/macroquest/internal/model"
)

type StreakResult struct {
	Current int
	Longest int
}

// ComputeStreak walks the date-keyed history and reports the current
// and longest runs of consecutive logged days. The current streak only
// counts when the most recent logged day is today or yesterday
// relative to now; a two-day gap from now zeroes it no matter how long
// the trailing run is. The longest streak ignores that anchor.
func ComputeStreak(history map[string]model.DayLog, now time.Time) StreakResult {
	days := make([]time.Time, 0, len(history))
	for key := range history {
		d, err := parseDayUTC(key)
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	if len(days) == 0 {
		return StreakResult{}
	}
	sort.Slice(days, func(i, j int) bool { return days[j].Before(days[i]) })

	today := dayUTC(now)
	current := 0
	if days[0].Equal(today) || days[0].Equal(today.AddDate(0, 0, -1)) {
		current = 1
		for i := 1; i < len(days); i++ {
			if daysBetween(days[i], days[i-1]) != 1 {
				break
			}
			current++
		}
	}

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i], days[i-1]) == 1 {
			run++
			continue
		}
		if run > longest {
			longest = run
		}
		run = 1
	}
	if run > longest {
		longest = run
	}
	if current > longest {
		longest = current
	}
	return StreakResult{Current: current, Longest: longest}
}

// DayClass is the calendar classification of a logged day against the
// calorie budget.
type DayClass string

const (
	DayUnlogged DayClass = "unlogged"
	DayPerfect  DayClass = "perfect"
	DayGood     DayClass = "good"
	DayOver     DayClass = "over"
)

// goodBudgetFactor is the tolerance band above the budget that still
// counts as a good day.
const goodBudgetFactor = 1.2

func ClassifyDay(consumed, budget int) DayClass {
	if consumed <= 0 {
		return DayUnlogged
	}
	if consumed <= budget {
		return DayPerfect
	}
	if float64(consumed) <= goodBudgetFactor*float64(budget) {
		return DayGood
	}
	return DayOver
}

type DayStatus struct {
	Day      string
	Consumed int
	Water    int
	Class    DayClass
}

// MonthOverview classifies every day of the given month, including
// unlogged days, in ascending date order.
func MonthOverview(db *sql.DB, year int, month time.Month) ([]DayStatus, error) {
	history, err := LoadHistory(db)
	if err != nil {
		return nil, err
	}
	budget, err := CalorieBudget(db)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	out := make([]DayStatus, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		key := d.Format(dayFormat)
		entry := history[key]
		out = append(out, DayStatus{
			Day:      key,
			Consumed: entry.Consumed,
			Water:    entry.Water,
			Class:    ClassifyDay(entry.Consumed, budget),
		})
	}
	return out, nil
}
