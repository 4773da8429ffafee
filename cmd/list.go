package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/recallo/recallo/internal/srs"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cards and their scheduling state",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		items, err := st.Items().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load items: %w", err)
		}

		now := time.Now()
		if dueOnly, _ := cmd.Flags().GetBool("due"); dueOnly {
			items = srs.Due(items, now)
		}
		if len(items) == 0 {
			fmt.Println("No cards.")
			return nil
		}

		for _, it := range items {
			marker := " "
			if it.IsDue(now) {
				marker = "*"
			}
			fmt.Printf("%s %-30s  %-8s  next %s\n",
				marker, truncate(it.Front, 30), srs.Classify(it), it.NextReview.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("due", false, "Only show cards due for review")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
