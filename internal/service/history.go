package service

import (
	"database/sql"
	"fmt"

	"github.com/skalski/macroquest/internal/model"
)

// AddConsumed adds kcal to the history row for day, creating the row
// on the first log event of that day. History rows are never deleted.
func AddConsumed(db *sql.DB, day string, kcal int) error {
	if _, err := parseDayUTC(day); err != nil {
		return err
	}
	if err := validatePositiveInt("calories", kcal); err != nil {
		return err
	}
	_, err := db.Exec(`
INSERT INTO history(day, consumed, water)
VALUES(?, ?, 0)
ON CONFLICT(day) DO UPDATE SET
  consumed = consumed + excluded.consumed,
  updated_at = CURRENT_TIMESTAMP
`, day, kcal)
	if err != nil {
		return fmt.Errorf("add consumed for %s: %w", day, err)
	}
	return nil
}

// AddWater adds water units to the history row for day.
func AddWater(db *sql.DB, day string, units int) error {
	if _, err := parseDayUTC(day); err != nil {
		return err
	}
	if err := validatePositiveInt("water units", units); err != nil {
		return err
	}
	_, err := db.Exec(`
INSERT INTO history(day, consumed, water)
VALUES(?, 0, ?)
ON CONFLICT(day) DO UPDATE SET
  water = water + excluded.water,
  updated_at = CURRENT_TIMESTAMP
`, day, units)
	if err != nil {
		return fmt.Errorf("add water for %s: %w", day, err)
	}
	return nil
}

// LoadHistory returns the full date-keyed log history.
func LoadHistory(db *sql.DB) (map[string]model.DayLog, error) {
	rows, err := db.Query(`SELECT day, consumed, water FROM history`)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	out := make(map[string]model.DayLog)
	for rows.Next() {
		var d model.DayLog
		if err := rows.Scan(&d.Day, &d.Consumed, &d.Water); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		out[d.Day] = d
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}

// DayLogFor returns the history row for day, or a zero-valued row if
// nothing was logged.
func DayLogFor(db *sql.DB, day string) (model.DayLog, error) {
	if _, err := parseDayUTC(day); err != nil {
		return model.DayLog{}, err
	}
	d := model.DayLog{Day: day}
	err := db.QueryRow(`SELECT consumed, water FROM history WHERE day = ?`, day).Scan(&d.Consumed, &d.Water)
	if err == sql.ErrNoRows {
		return d, nil
	}
	if err != nil {
		return model.DayLog{}, fmt.Errorf("load day log for %s: %w", day, err)
	}
	return d, nil
}
