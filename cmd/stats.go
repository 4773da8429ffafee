package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/recallo/recallo/internal/srs"
	"github.com/recallo/recallo/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		items, err := st.Items().All(ctx)
		if err != nil {
			return fmt.Errorf("load items: %w", err)
		}

		now := time.Now()
		ov := stats.Compute(items, now)

		fmt.Printf("Cards:     %d total, %d due, %d new\n", ov.TotalItems, ov.DueCount, ov.NewCount)
		fmt.Printf("Tiers:     ")
		for _, tier := range []srs.Tier{srs.TierNew, srs.TierLearning, srs.TierYoung, srs.TierMature, srs.TierMastered} {
			fmt.Printf("%s=%d ", tier, ov.TierCounts[tier])
		}
		fmt.Println()
		if ov.TotalItems > 0 {
			fmt.Printf("Avg ease:  %.2f\n", ov.AvgEaseFactor)
		}
		if !ov.NextDue.IsZero() {
			fmt.Printf("Next due:  %s\n", ov.NextDue.Format("2006-01-02 15:04"))
		}

		days, _ := cmd.Flags().GetInt("forecast")
		if days > 0 {
			fmt.Println("\nForecast:")
			for _, day := range stats.Forecast(items, now, days) {
				fmt.Printf("  %s  %d\n", day.Date.Format("Mon 2 Jan"), day.Count)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("forecast", 0, "Also show the review forecast for the next N days")
}
