package cli

import (
	"fitviz/internal/di"
	"fitviz/internal/models"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print today's derived health metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker, cleanup, err := di.InitTracker(&flags)
		if err != nil {
			return err
		}
		defer cleanup()

		s := tracker.Summary()
		if summaryJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		}
		printSummary(cmd.OutOrStdout(), s)
		return nil
	},
}

func printSummary(out io.Writer, s models.DailySummary) {
	fmt.Fprintf(out, "Date: %s\n", s.Date)
	fmt.Fprintf(out, "BMI: %.1f (%s)\n", s.BMI, s.BMICategory)
	fmt.Fprintf(out, "Water: %.2f / %.2f L (%.0f%%), body water index %.0f\n", s.WaterToday, s.WaterTarget, s.WaterProgress, s.BodyWaterIndex)
	fmt.Fprintf(out, "Sleep: %.1f h average\n", s.AverageSleep)
	fmt.Fprintf(out, "Workouts: %d min\n", s.WorkoutMinutes)
	fmt.Fprintf(out, "Macros: P %.0fg | C %.0fg | F %.0fg (target P %.0fg | C %.0fg | F %.0fg)\n",
		s.MacrosToday.Protein, s.MacrosToday.Carbs, s.MacrosToday.Fat,
		s.MacrosTarget.Protein, s.MacrosTarget.Carbs, s.MacrosTarget.Fat)
	if len(s.LessWorkedGroups) > 0 {
		fmt.Fprintf(out, "Consider training: %v\n", s.LessWorkedGroups)
	}
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Print the summary as JSON")
}
