package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS history (
  day TEXT PRIMARY KEY,
  consumed INTEGER NOT NULL DEFAULT 0 CHECK(consumed >= 0),
  water INTEGER NOT NULL DEFAULT 0 CHECK(water >= 0),
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS user_progress (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  xp INTEGER NOT NULL DEFAULT 0 CHECK(xp >= 0),
  total_meals INTEGER NOT NULL DEFAULT 0 CHECK(total_meals >= 0),
  total_water INTEGER NOT NULL DEFAULT 0 CHECK(total_water >= 0),
  current_streak INTEGER NOT NULL DEFAULT 0 CHECK(current_streak >= 0),
  longest_streak INTEGER NOT NULL DEFAULT 0 CHECK(longest_streak >= 0),
  perfect_days INTEGER NOT NULL DEFAULT 0 CHECK(perfect_days >= 0),
  snacks_logged INTEGER NOT NULL DEFAULT 0 CHECK(snacks_logged >= 0),
  days_at_goal INTEGER NOT NULL DEFAULT 0 CHECK(days_at_goal >= 0),
  last_log_date TEXT NOT NULL DEFAULT '',
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS unlocked_achievements (
  achievement_id TEXT PRIMARY KEY,
  unlocked_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
	{
		version: 2,
		name:    "weight_tracking",
		sql: `
CREATE TABLE IF NOT EXISTS weight_logs (
  day TEXT PRIMARY KEY,
  weight REAL NOT NULL CHECK(weight > 0),
  unit TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS weight_start (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  day TEXT NOT NULL,
  weight REAL NOT NULL CHECK(weight > 0),
  unit TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	if _, err := db.Exec(`INSERT OR IGNORE INTO user_progress(id) VALUES(1)`); err != nil {
		return fmt.Errorf("seed user progress row: %w", err)
	}

	return nil
}
