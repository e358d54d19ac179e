package macroquest

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/skalski/macroquest/internal/service"
)

var calendarMonth string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show per-day budget classification for a month",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := time.Now()
		if strings.TrimSpace(calendarMonth) != "" {
			parsed, err := time.Parse("2006-01", calendarMonth)
			if err != nil {
				return fmt.Errorf("invalid --month %q (expected YYYY-MM)", calendarMonth)
			}
			target = parsed
		}
		return withDB(func(sqldb *sql.DB) error {
			days, err := service.MonthOverview(sqldb, target.Year(), target.Month())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", target.Month(), target.Year())
			for _, d := range days {
				marker := " "
				switch d.Class {
				case service.DayPerfect:
					marker = "*"
				case service.DayGood:
					marker = "+"
				case service.DayOver:
					marker = "!"
				}
				if d.Class == service.DayUnlogged {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", d.Day, d.Class)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s %s (%d kcal)\n", d.Day, marker, d.Class, d.Consumed)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "Month YYYY-MM (default current)")
}
