package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

const (
	ConfigCalorieBudget = "calorie_budget"
	ConfigWeightUnit    = "weight_unit"
	ConfigOFFBaseURL    = "off_base_url"
)

const defaultCalorieBudget = 2000

func SetConfig(db *sql.DB, key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return fmt.Errorf("config key is required")
	}
	_, err := db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func GetConfig(db *sql.DB, key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, fmt.Errorf("config key is required")
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

func ListConfig(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM app_config ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate config: %w", err)
	}
	return out, nil
}

// CalorieBudget reads the configured daily budget, falling back to the
// default when unset or unparseable.
func CalorieBudget(db *sql.DB) (int, error) {
	raw, ok, err := GetConfig(db, ConfigCalorieBudget)
	if err != nil {
		return 0, err
	}
	if !ok {
		return defaultCalorieBudget, nil
	}
	budget, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || budget <= 0 {
		return defaultCalorieBudget, nil
	}
	return budget, nil
}

// PreferredWeightUnit reads the display unit preference.
func PreferredWeightUnit(db *sql.DB) (string, error) {
	raw, ok, err := GetConfig(db, ConfigWeightUnit)
	if err != nil {
		return "", err
	}
	if !ok {
		return "lbs", nil
	}
	unit, err := normalizeWeightUnit(raw)
	if err != nil {
		return "lbs", nil
	}
	return unit, nil
}
