package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/skalski/macroquest/internal/model"
)

func normalizeWeightUnit(unit string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "", "lb", "lbs":
		return "lbs", nil
	case "kg":
		return "kg", nil
	default:
		return "", fmt.Errorf("invalid weight unit %q (use kg or lbs)", unit)
	}
}

// LogWeight upserts today's weight entry: re-logging the same calendar
// day replaces the value rather than appending a duplicate. The first
// weight ever logged also becomes the immutable starting weight.
func LogWeight(db *sql.DB, weight float64, unit string, now time.Time) (*model.WeightLog, error) {
	if weight <= 0 {
		return nil, fmt.Errorf("weight must be > 0")
	}
	u, err := normalizeWeightUnit(unit)
	if err != nil {
		return nil, err
	}
	if now.IsZero() {
		now = time.Now()
	}
	day := dayKey(now)

	if err := SetStartingWeight(db, weight, u, now); err != nil {
		return nil, err
	}

	_, err = db.Exec(`
INSERT INTO weight_logs(day, weight, unit)
VALUES(?, ?, ?)
ON CONFLICT(day) DO UPDATE SET
  weight = excluded.weight,
  unit = excluded.unit,
  updated_at = CURRENT_TIMESTAMP
`, day, weight, u)
	if err != nil {
		return nil, fmt.Errorf("log weight for %s: %w", day, err)
	}
	return &model.WeightLog{Day: day, Weight: weight, Unit: u}, nil
}

// SetStartingWeight is a guarded first-write: it records the starting
// weight only if none exists yet and is a no-op forever after.
func SetStartingWeight(db *sql.DB, weight float64, unit string, now time.Time) error {
	if weight <= 0 {
		return fmt.Errorf("weight must be > 0")
	}
	u, err := normalizeWeightUnit(unit)
	if err != nil {
		return err
	}
	if now.IsZero() {
		now = time.Now()
	}
	_, err = db.Exec(`
INSERT OR IGNORE INTO weight_start(id, day, weight, unit)
VALUES(1, ?, ?, ?)
`, dayKey(now), weight, u)
	if err != nil {
		return fmt.Errorf("set starting weight: %w", err)
	}
	return nil
}

// StartingWeight returns the immutable starting record, or nil if no
// weight has ever been logged.
func StartingWeight(db *sql.DB) (*model.WeightLog, error) {
	var w model.WeightLog
	err := db.QueryRow(`SELECT day, weight, unit FROM weight_start WHERE id = 1`).Scan(&w.Day, &w.Weight, &w.Unit)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load starting weight: %w", err)
	}
	return &w, nil
}

// CurrentWeight returns the most recent log by date, falling back to
// the starting record when no logs exist.
func CurrentWeight(db *sql.DB) (*model.WeightLog, error) {
	var w model.WeightLog
	err := db.QueryRow(`SELECT day, weight, unit FROM weight_logs ORDER BY day DESC LIMIT 1`).Scan(&w.Day, &w.Weight, &w.Unit)
	if err == sql.ErrNoRows {
		return StartingWeight(db)
	}
	if err != nil {
		return nil, fmt.Errorf("load current weight: %w", err)
	}
	return &w, nil
}

// ListWeights returns the log ascending by date.
func ListWeights(db *sql.DB) ([]model.WeightLog, error) {
	rows, err := db.Query(`SELECT day, weight, unit FROM weight_logs ORDER BY day ASC`)
	if err != nil {
		return nil, fmt.Errorf("list weight logs: %w", err)
	}
	defer rows.Close()

	items := make([]model.WeightLog, 0)
	for rows.Next() {
		var w model.WeightLog
		if err := rows.Scan(&w.Day, &w.Weight, &w.Unit); err != nil {
			return nil, fmt.Errorf("scan weight log: %w", err)
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weight logs: %w", err)
	}
	return items, nil
}

// WeightProgress is the delta between the starting record and the most
// recent log. Units are reported as stored; UnitMismatch is set when
// the two records disagree, and no conversion is performed.
type WeightProgress struct {
	Initial      model.WeightLog
	Current      model.WeightLog
	Change       float64
	IsLoss       bool
	UnitMismatch bool
}

// WeightProgressReport returns nil when either endpoint is missing.
func WeightProgressReport(db *sql.DB) (*WeightProgress, error) {
	initial, err := StartingWeight(db)
	if err != nil {
		return nil, err
	}
	current, err := CurrentWeight(db)
	if err != nil {
		return nil, err
	}
	if initial == nil || current == nil {
		return nil, nil
	}
	return &WeightProgress{
		Initial:      *initial,
		Current:      *current,
		Change:       current.Weight - initial.Weight,
		IsLoss:       current.Weight < initial.Weight,
		UnitMismatch: current.Unit != initial.Unit,
	}, nil
}

// ToKg converts a display weight; stored values are never converted.
func ToKg(weight float64, unit string) (float64, error) {
	u, err := normalizeWeightUnit(unit)
	if err != nil {
		return 0, err
	}
	if u == "kg" {
		return weight, nil
	}
	return weight * 0.45359237, nil
}
