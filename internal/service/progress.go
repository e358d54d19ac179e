package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/skalski/macroquest/internal/model"
)

// XP tuning constants. These are product knobs, not derived values.
const (
	xpMealLogged = 10
	xpWaterGlass = 2
	xpGoalHit    = 25
	xpStreakDay  = 5
)

type MealLogInput struct {
	Name     string
	Calories int
	Snack    bool
	// Now anchors the calendar day; zero means time.Now().
	Now time.Time
}

// LogOutcome reports what a log event changed, so callers can announce
// XP, level-ups, and unlocks.
type LogOutcome struct {
	Day       model.DayLog
	XPEarned  int
	LevelFrom int
	LevelTo   int
	Streak    StreakResult
	Unlocked  []model.Achievement
}

// LoadProgress reads the singleton progress row plus the unlocked
// achievement ids in unlock order.
func LoadProgress(db *sql.DB) (model.UserProgress, error) {
	var p model.UserProgress
	err := db.QueryRow(`
SELECT xp, total_meals, total_water, current_streak, longest_streak,
       perfect_days, snacks_logged, days_at_goal, last_log_date
FROM user_progress WHERE id = 1
`).Scan(&p.XP, &p.TotalMeals, &p.TotalWater, &p.CurrentStreak, &p.LongestStreak,
		&p.PerfectDays, &p.SnacksLogged, &p.DaysAtGoal, &p.LastLogDate)
	if err != nil {
		return model.UserProgress{}, fmt.Errorf("load user progress: %w", err)
	}
	unlocked, err := ListUnlocked(db)
	if err != nil {
		return model.UserProgress{}, err
	}
	for _, u := range unlocked {
		p.Unlocked = append(p.Unlocked, u.ID)
	}
	return p, nil
}

func saveProgress(db *sql.DB, p model.UserProgress) error {
	_, err := db.Exec(`
UPDATE user_progress SET
  xp = ?, total_meals = ?, total_water = ?, current_streak = ?, longest_streak = ?,
  perfect_days = ?, snacks_logged = ?, days_at_goal = ?, last_log_date = ?,
  updated_at = CURRENT_TIMESTAMP
WHERE id = 1
`, p.XP, p.TotalMeals, p.TotalWater, p.CurrentStreak, p.LongestStreak,
		p.PerfectDays, p.SnacksLogged, p.DaysAtGoal, p.LastLogDate)
	if err != nil {
		return fmt.Errorf("save user progress: %w", err)
	}
	return nil
}

// LogMeal records a meal: adds calories to today's history row, bumps
// the meal counters, awards XP, recomputes the streak, settles the
// previous day against the budget, and applies any newly unlocked
// achievements. One read-modify-write cycle over the progress row.
func LogMeal(db *sql.DB, in MealLogInput) (*LogOutcome, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("meal name is required")
	}
	if err := validatePositiveInt("calories", in.Calories); err != nil {
		return nil, err
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	day := dayKey(now)

	if err := AddConsumed(db, day, in.Calories); err != nil {
		return nil, err
	}

	p, err := LoadProgress(db)
	if err != nil {
		return nil, err
	}
	levelFrom := LevelForXP(p.XP)
	earned := xpMealLogged
	p.TotalMeals++
	if in.Snack {
		p.SnacksLogged++
	}

	streak, bonus, err := advanceStreak(db, &p, day, now)
	if err != nil {
		return nil, err
	}
	earned += bonus

	p.XP += earned

	unlocked, err := applyUnlocks(db, &p)
	if err != nil {
		return nil, err
	}
	for _, a := range unlocked {
		earned += a.XPReward
	}

	if err := saveProgress(db, p); err != nil {
		return nil, err
	}

	entry, err := DayLogFor(db, day)
	if err != nil {
		return nil, err
	}
	return &LogOutcome{
		Day:       entry,
		XPEarned:  earned,
		LevelFrom: levelFrom,
		LevelTo:   LevelForXP(p.XP),
		Streak:    streak,
		Unlocked:  unlocked,
	}, nil
}

// LogWater records glasses of water for today. Water counts as a logged
// entry, so it advances the streak the same way a meal does.
func LogWater(db *sql.DB, glasses int, now time.Time) (*LogOutcome, error) {
	if err := validatePositiveInt("glasses", glasses); err != nil {
		return nil, err
	}
	if now.IsZero() {
		now = time.Now()
	}
	day := dayKey(now)

	if err := AddWater(db, day, glasses); err != nil {
		return nil, err
	}

	p, err := LoadProgress(db)
	if err != nil {
		return nil, err
	}
	levelFrom := LevelForXP(p.XP)
	earned := xpWaterGlass * glasses
	p.TotalWater += glasses

	streak, bonus, err := advanceStreak(db, &p, day, now)
	if err != nil {
		return nil, err
	}
	earned += bonus

	p.XP += earned

	unlocked, err := applyUnlocks(db, &p)
	if err != nil {
		return nil, err
	}
	for _, a := range unlocked {
		earned += a.XPReward
	}

	if err := saveProgress(db, p); err != nil {
		return nil, err
	}

	entry, err := DayLogFor(db, day)
	if err != nil {
		return nil, err
	}
	return &LogOutcome{
		Day:       entry,
		XPEarned:  earned,
		LevelFrom: levelFrom,
		LevelTo:   LevelForXP(p.XP),
		Streak:    streak,
		Unlocked:  unlocked,
	}, nil
}

// advanceStreak runs the per-log-event day bookkeeping shared by every
// log path: settle the previously logged day against the budget,
// recompute the streak from history, and stamp the last log date. It
// returns the fresh streak and the XP earned from settlement and
// streak growth.
func advanceStreak(db *sql.DB, p *model.UserProgress, day string, now time.Time) (StreakResult, int, error) {
	earned, err := settlePreviousDay(db, p, day)
	if err != nil {
		return StreakResult{}, 0, err
	}

	history, err := LoadHistory(db)
	if err != nil {
		return StreakResult{}, 0, err
	}
	streak := ComputeStreak(history, now)
	if streak.Current > p.CurrentStreak {
		earned += xpStreakDay
	}
	p.CurrentStreak = streak.Current
	if streak.Longest > p.LongestStreak {
		p.LongestStreak = streak.Longest
	}
	p.LastLogDate = day
	return streak, earned, nil
}

// settlePreviousDay classifies the last logged day once, on the first
// log event of a later day. A perfect previous day bumps the perfect
// and at-goal counters and pays the goal bonus. Settling exactly once
// per day keeps the counters from double counting.
func settlePreviousDay(db *sql.DB, p *model.UserProgress, today string) (int, error) {
	prev := p.LastLogDate
	if prev == "" || prev == today {
		return 0, nil
	}
	entry, err := DayLogFor(db, prev)
	if err != nil {
		return 0, err
	}
	budget, err := CalorieBudget(db)
	if err != nil {
		return 0, err
	}
	if ClassifyDay(entry.Consumed, budget) != DayPerfect {
		return 0, nil
	}
	p.PerfectDays++
	p.DaysAtGoal++
	return xpGoalHit, nil
}

// applyUnlocks runs the pure achievement check against the current
// snapshot and applies the results: records the unlock rows in order
// and adds the XP rewards. A single pass; rewards from one unlock do
// not trigger another within the same event.
func applyUnlocks(db *sql.DB, p *model.UserProgress) ([]model.Achievement, error) {
	unlocked := NewlyUnlocked(*p)
	for _, a := range unlocked {
		if _, err := db.Exec(`INSERT OR IGNORE INTO unlocked_achievements(achievement_id) VALUES(?)`, a.ID); err != nil {
			return nil, fmt.Errorf("record unlocked achievement %s: %w", a.ID, err)
		}
		p.Unlocked = append(p.Unlocked, a.ID)
		p.XP += a.XPReward
	}
	return unlocked, nil
}

// ProgressStatus is the snapshot shown by the progress command.
type ProgressStatus struct {
	Level       int
	XP          int
	XPIntoLevel int
	XPNeeded    int
	Progress    model.UserProgress
}

func Status(db *sql.DB) (*ProgressStatus, error) {
	p, err := LoadProgress(db)
	if err != nil {
		return nil, err
	}
	current, needed := XPWindow(p.XP)
	return &ProgressStatus{
		Level:       LevelForXP(p.XP),
		XP:          p.XP,
		XPIntoLevel: current,
		XPNeeded:    needed,
		Progress:    p,
	}, nil
}
