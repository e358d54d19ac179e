package macroquest

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skalski/macroquest/internal/service"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, water, and budget progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := parseDayOrNow(todayDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			day := now.Format("2006-01-02")
			entry, err := service.DayLogFor(sqldb, day)
			if err != nil {
				return err
			}
			budget, err := service.CalorieBudget(sqldb)
			if err != nil {
				return err
			}
			history, err := service.LoadHistory(sqldb)
			if err != nil {
				return err
			}
			streak := service.ComputeStreak(history, now)

			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", day)
			fmt.Fprintf(cmd.OutOrStdout(), "Consumed: %d / %d kcal\n", entry.Consumed, budget)
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d glass(es)\n", entry.Water)
			fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n", service.ClassifyDay(entry.Consumed, budget))
			fmt.Fprintf(cmd.OutOrStdout(), "Streak: %d day(s) (longest %d)\n", streak.Current, streak.Longest)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
