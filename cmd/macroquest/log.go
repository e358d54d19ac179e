package macroquest

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skalski/macroquest/internal/service"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log meals and water",
}

var (
	mealName     string
	mealCalories int
	mealSnack    bool
	mealDate     string
)

var logMealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := parseDayOrNow(mealDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			outcome, err := service.LogMeal(sqldb, service.MealLogInput{
				Name:     mealName,
				Calories: mealCalories,
				Snack:    mealSnack,
				Now:      now,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %q (%d kcal), %d kcal today\n", mealName, mealCalories, outcome.Day.Consumed)
			announceOutcome(cmd, outcome)
			return nil
		})
	},
}

var (
	waterGlasses int
	waterDate    string
)

var logWaterCmd = &cobra.Command{
	Use:   "water",
	Short: "Log glasses of water",
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := parseDayOrNow(waterDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			outcome, err := service.LogWater(sqldb, waterGlasses, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %d glass(es), %d today\n", waterGlasses, outcome.Day.Water)
			announceOutcome(cmd, outcome)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logMealCmd)
	logCmd.AddCommand(logWaterCmd)

	logMealCmd.Flags().StringVar(&mealName, "name", "", "Meal name")
	logMealCmd.Flags().IntVar(&mealCalories, "calories", 0, "Calories")
	logMealCmd.Flags().BoolVar(&mealSnack, "snack", false, "Count this meal as a snack")
	logMealCmd.Flags().StringVar(&mealDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = logMealCmd.MarkFlagRequired("name")
	_ = logMealCmd.MarkFlagRequired("calories")

	logWaterCmd.Flags().IntVar(&waterGlasses, "glasses", 1, "Number of glasses")
	logWaterCmd.Flags().StringVar(&waterDate, "date", "", "Date YYYY-MM-DD (default today)")
}
