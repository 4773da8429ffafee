package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/recallo/recallo/internal/notify"
	"github.com/recallo/recallo/internal/planner"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show current study recommendations",
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

		recs := planner.Recommend(items, pattern, time.Now())
		if len(recs) == 0 {
			fmt.Println("All caught up — nothing to recommend.")
			return nil
		}
		return notify.NewConsoleNotifier(os.Stdout).SendRecommendations(recs)
	},
}
