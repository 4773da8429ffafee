package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/recallo/recallo/internal/srs"
)

var addCmd = &cobra.Command{
	Use:   "add <front> <back>",
	Short: "Add a new card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		item := srs.NewItem(uuid.NewString(), args[0], args[1], time.Now())
		if err := st.Items().Save(cmd.Context(), item); err != nil {
			return fmt.Errorf("save item: %w", err)
		}

		fmt.Printf("Added %q (due immediately)\n", item.Front)
		return nil
	},
}
