package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/recallo/recallo/internal/planner"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the suggested next session",
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
		pattern, err := st.Patterns().Get(ctx)
		if err != nil {
			return fmt.Errorf("load pattern: %w", err)
		}

		now := time.Now()
		plan := planner.BuildPlan(items, pattern, now)

		fmt.Printf("Session type: %s (%s priority)\n", plan.Type, plan.Priority)
		fmt.Printf("Cards:        %d\n", len(plan.CardIDs))
		fmt.Printf("Estimated:    %.0f min\n", plan.EstimatedMinutes)
		fmt.Printf("Target:       %.0f%% accuracy\n", plan.Goals.TargetAccuracy)
		fmt.Printf("Best time:    %s\n", planner.OptimalTime(pattern, now).Format("Mon 2 Jan 15:04"))
		return nil
	},
}
