package macroquest

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skalski/macroquest/internal/service"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show level, XP, streaks, and counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			status, err := service.Status(sqldb)
			if err != nil {
				return err
			}
			p := status.Progress
			fmt.Fprintf(cmd.OutOrStdout(), "Level %d (%d/%d XP, %d total)\n", status.Level, status.XPIntoLevel, status.XPNeeded, status.XP)
			fmt.Fprintf(cmd.OutOrStdout(), "Streak: %d day(s) (longest %d)\n", p.CurrentStreak, p.LongestStreak)
			fmt.Fprintf(cmd.OutOrStdout(), "Meals: %d | Snacks: %d | Water: %d\n", p.TotalMeals, p.SnacksLogged, p.TotalWater)
			fmt.Fprintf(cmd.OutOrStdout(), "Perfect days: %d | Days at goal: %d\n", p.PerfectDays, p.DaysAtGoal)
			if len(p.Unlocked) > 0 {
				recent := p.Unlocked
				if len(recent) > 3 {
					recent = recent[len(recent)-3:]
				}
				fmt.Fprint(cmd.OutOrStdout(), "Recent achievements:")
				for _, id := range recent {
					if a, ok := service.AchievementByID(id); ok {
						fmt.Fprintf(cmd.OutOrStdout(), " %s %s", a.Icon, a.Name)
					}
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		})
	},
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List all achievements and their unlock state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.LoadProgress(sqldb)
			if err != nil {
				return err
			}
			unlocked := make(map[string]bool, len(p.Unlocked))
			for _, id := range p.Unlocked {
				unlocked[id] = true
			}
			for _, a := range service.AchievementCatalog() {
				state := "locked"
				if unlocked[a.ID] {
					state = "unlocked"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s %s: %s (+%d XP)\n", state, a.Icon, a.Name, a.Description, a.XPReward)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(achievementsCmd)
}
