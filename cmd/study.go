package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/recallo/recallo/internal/config"
	"github.com/recallo/recallo/internal/session"
	"github.com/recallo/recallo/internal/srs"
	"github.com/recallo/recallo/internal/stats"
	"github.com/recallo/recallo/internal/store"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Run a study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		items, err := st.Items().All(ctx)
		if err != nil {
			return fmt.Errorf("load items: %w", err)
		}

		maxSize := cfg.Study.MaxSessionSize
		if n, _ := cmd.Flags().GetInt("max"); n > 0 {
			maxSize = n
		}

		sess := session.Create(items, maxSize, time.Now())
		if len(sess.Items) == 0 {
			fmt.Println("Nothing to study. Add cards with `recallo add`.")
			return nil
		}

		fmt.Printf("Studying %d cards. Rate each: again / hard / good / easy (enter = good, q = stop)\n\n", len(sess.Items))

		reader := bufio.NewReader(os.Stdin)
		for _, it := range sess.Items {
			fmt.Printf("Q: %s\n", it.Front)
			fmt.Print("   [enter to reveal] ")
			if _, err := reader.ReadString('\n'); err != nil {
				break
			}
			fmt.Printf("A: %s\n", it.Back)

			fmt.Print("   rating> ")
			line, err := reader.ReadString('\n')
			if err != nil {
				break
			}
			token := strings.TrimSpace(line)
			if token == "q" {
				break
			}

			q := srs.ParseRating(token)
			next, updated, err := session.Grade(sess, it.ID, q, time.Now())
			if err != nil {
				return fmt.Errorf("grade item: %w", err)
			}
			sess = next

			if err := st.Items().Save(ctx, updated); err != nil {
				return fmt.Errorf("save item: %w", err)
			}
			if q.Passing() && updated.Repetitions == srs.GraduationReps {
				fmt.Println("   graduated!")
			}
			fmt.Printf("   next review in %dd\n\n", updated.IntervalDays)
		}

		end := time.Now()
		sess, err = session.Finish(sess, end)
		if err != nil {
			return fmt.Errorf("finish session: %w", err)
		}
		if err := st.Sessions().Save(ctx, sess); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		if err := updatePattern(ctx, st, sess, end); err != nil {
			return fmt.Errorf("update study pattern: %w", err)
		}

		summary := stats.Summarize(sess, end)
		fmt.Printf("Done: %d graded, %d correct (%.0f%%) in %s\n",
			summary.Graded, summary.Correct, summary.Accuracy, summary.Duration.Round(time.Second))
		if summary.Abandoned > 0 {
			fmt.Printf("%d cards left for next time\n", summary.Abandoned)
		}
		return nil
	},
}

func init() {
	studyCmd.Flags().Int("max", 0, "Maximum cards in this session (overrides config)")
}

// updatePattern folds the finished session into the stored study pattern:
// streak bookkeeping plus a running blend of session pace.
func updatePattern(ctx context.Context, st *store.Store, sess session.Session, now time.Time) error {
	pattern, err := st.Patterns().Get(ctx)
	if err != nil {
		return err
	}

	switch {
	case pattern.LastStudyDate.IsZero():
		pattern.StudyStreak = 1
	case sameDay(pattern.LastStudyDate, now):
		// Second session today, streak unchanged.
	case sameDay(pattern.LastStudyDate.AddDate(0, 0, 1), now):
		pattern.StudyStreak++
	default:
		pattern.StudyStreak = 1
	}
	pattern.LastStudyDate = now

	minutes := sess.Duration(now).Minutes()
	cards := float64(len(sess.CompletedItems))
	if cards > 0 && minutes > 0 {
		pattern.AvgSessionMinutes = blend(pattern.AvgSessionMinutes, minutes)
		pattern.AvgCardsPerSession = blend(pattern.AvgCardsPerSession, cards)
	}
	pattern.PreferredHour = now.Hour()

	return st.Patterns().Save(ctx, pattern)
}

// blend nudges a running average toward the latest observation.
func blend(avg, latest float64) float64 {
	if avg <= 0 {
		return latest
	}
	return avg*0.8 + latest*0.2
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
