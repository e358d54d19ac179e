package macroquest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/skalski/macroquest/internal/provider/openfoodfacts"
	"github.com/skalski/macroquest/internal/service"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up foods in Open Food Facts",
}

var (
	lookupLimit int
	lookupLog   bool
)

var lookupSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search foods by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		return withDB(func(sqldb *sql.DB) error {
			client, err := newLookupClient(sqldb)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			foods, err := client.Search(ctx, query, lookupLimit)
			if errors.Is(err, openfoodfacts.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "No results for %q\n", query)
				return nil
			}
			if err != nil {
				return err
			}
			printFoods(cmd, foods)
			if lookupLog {
				return logFirstFood(cmd, sqldb, foods[0])
			}
			return nil
		})
	},
}

var lookupBarcodeCmd = &cobra.Command{
	Use:   "barcode <code>",
	Short: "Look up a product by barcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			client, err := newLookupClient(sqldb)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			food, err := client.LookupBarcode(ctx, args[0])
			if errors.Is(err, openfoodfacts.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "No product found for barcode %s\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}
			printFoods(cmd, []openfoodfacts.Food{food})
			if lookupLog {
				return logFirstFood(cmd, sqldb, food)
			}
			return nil
		})
	},
}

func newLookupClient(sqldb *sql.DB) (*openfoodfacts.Client, error) {
	baseURL, _, err := service.GetConfig(sqldb, service.ConfigOFFBaseURL)
	if err != nil {
		return nil, err
	}
	return &openfoodfacts.Client{BaseURL: baseURL}, nil
}

func printFoods(cmd *cobra.Command, foods []openfoodfacts.Food) {
	for _, f := range foods {
		name := f.Name
		if f.Brand != "" {
			name = fmt.Sprintf("%s (%s)", f.Name, f.Brand)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", name)
		fmt.Fprintf(cmd.OutOrStdout(), "  Serving: %s | %d kcal | P %.1fg C %.1fg F %.1fg\n",
			f.ServingSize, int(math.Round(f.Calories)), f.ProteinG, f.CarbsG, f.FatG)
	}
}

func logFirstFood(cmd *cobra.Command, sqldb *sql.DB, food openfoodfacts.Food) error {
	calories := int(math.Round(food.Calories))
	if calories <= 0 {
		return fmt.Errorf("cannot log %q: no calorie data", food.Name)
	}
	outcome, err := service.LogMeal(sqldb, service.MealLogInput{
		Name:     food.Name,
		Calories: calories,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged %q (%d kcal), %d kcal today\n", food.Name, calories, outcome.Day.Consumed)
	announceOutcome(cmd, outcome)
	return nil
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.AddCommand(lookupSearchCmd)
	lookupCmd.AddCommand(lookupBarcodeCmd)

	lookupCmd.PersistentFlags().IntVar(&lookupLimit, "limit", 5, "Maximum search results")
	lookupCmd.PersistentFlags().BoolVar(&lookupLog, "log", false, "Log the first result as a meal")
}
