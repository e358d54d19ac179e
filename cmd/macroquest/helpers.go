package macroquest

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/skalski/macroquest/internal/app"
	"github.com/skalski/macroquest/internal/db"
	"github.com/skalski/macroquest/internal/logger"
	"github.com/skalski/macroquest/internal/service"
)

func withDB(run func(*sql.DB) error) error {
	log := logger.New(verbose)
	defer func() { _ = log.Sync() }()

	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	log.Debug("opening database", zap.String("path", path))
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	log.Debug("migrations applied")
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func parseDayOrNow(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

// announceOutcome prints the reward feedback for a log event.
func announceOutcome(cmd *cobra.Command, outcome *service.LogOutcome) {
	fmt.Fprintf(cmd.OutOrStdout(), "+%d XP\n", outcome.XPEarned)
	if outcome.LevelTo > outcome.LevelFrom {
		fmt.Fprintf(cmd.OutOrStdout(), "Level up! You reached level %d\n", outcome.LevelTo)
	}
	for _, a := range outcome.Unlocked {
		fmt.Fprintf(cmd.OutOrStdout(), "Achievement unlocked: %s %s: %s (+%d XP)\n", a.Icon, a.Name, a.Description, a.XPReward)
	}
	if outcome.Streak.Current > 1 {
		fmt.Fprintf(cmd.OutOrStdout(), "Streak: %d days\n", outcome.Streak.Current)
	}
}
