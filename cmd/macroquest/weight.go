package macroquest

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skalski/macroquest/internal/service"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight",
}

var (
	weightUnit string
	weightDate string
)

var weightLogCmd = &cobra.Command{
	Use:   "log <value>",
	Short: "Log today's weight (re-logging the same day replaces it)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		now, err := parseDayOrNow(weightDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			unit := weightUnit
			if unit == "" {
				unit, err = service.PreferredWeightUnit(sqldb)
				if err != nil {
					return err
				}
			}
			entry, err := service.LogWeight(sqldb, value, unit, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1f %s on %s\n", entry.Weight, entry.Unit, entry.Day)
			return nil
		})
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weight logs, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			logs, err := service.ListWeights(sqldb)
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No weight logs yet")
				return nil
			}
			for _, w := range logs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f %s\n", w.Day, w.Weight, w.Unit)
			}
			return nil
		})
	},
}

var weightProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show change since your starting weight",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.WeightProgressReport(sqldb)
			if err != nil {
				return err
			}
			if report == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No weight logs yet")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Starting: %.1f %s (%s)\n", report.Initial.Weight, report.Initial.Unit, report.Initial.Day)
			fmt.Fprintf(cmd.OutOrStdout(), "Current: %.1f %s (%s)\n", report.Current.Weight, report.Current.Unit, report.Current.Day)
			direction := "gained"
			if report.IsLoss {
				direction = "lost"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Change: %s %.1f\n", direction, absFloat(report.Change))
			if report.UnitMismatch {
				fmt.Fprintln(cmd.OutOrStdout(), "Warning: starting and current entries use different units; values are not converted")
			}
			return nil
		})
	},
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightLogCmd)
	weightCmd.AddCommand(weightListCmd)
	weightCmd.AddCommand(weightProgressCmd)

	weightLogCmd.Flags().StringVar(&weightUnit, "unit", "", "Weight unit: kg or lbs (default from config)")
	weightLogCmd.Flags().StringVar(&weightDate, "date", "", "Date YYYY-MM-DD (default today)")
}
