package macroquest

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skalski/macroquest/internal/service"
)

var scanFile string

var scanCmd = &cobra.Command{
	Use:   "scan [ingredient text]",
	Short: "Scan an ingredient list against the EU-banned ingredient reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		switch {
		case scanFile != "":
			data, err := os.ReadFile(scanFile)
			if err != nil {
				return fmt.Errorf("read ingredient file: %w", err)
			}
			text = string(data)
		case len(args) > 0:
			text = strings.Join(args, " ")
		default:
			return fmt.Errorf("provide ingredient text or --file")
		}

		report := service.AnalyzeIngredients(text)
		fmt.Fprintf(cmd.OutOrStdout(), "Safety score: %d/100\n", report.Score)
		if len(report.RedFlags) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No flagged ingredients found")
		}
		for _, f := range report.RedFlags {
			fmt.Fprintf(cmd.OutOrStdout(), "FLAG: %s (found as %q)\n", f.Name, f.FoundAs)
			fmt.Fprintf(cmd.OutOrStdout(), "  Risk: %s\n", f.Risk)
			fmt.Fprintf(cmd.OutOrStdout(), "  EU status: %s\n", f.EUStatus)
		}
		if len(report.AllIngredients) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Parsed ingredients: %s\n", strings.Join(report.AllIngredients, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanFile, "file", "", "Read ingredient text from a file")
}
