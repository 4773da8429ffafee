package notify

import (
	"fmt"
	"io"
	"strings"

	"github.com/recallo/recallo/internal/planner"
)

// ConsoleNotifier writes recommendations to a terminal.
type ConsoleNotifier struct {
	out io.Writer
}

func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (n *ConsoleNotifier) SendRecommendations(recs []planner.Recommendation) error {
	var b strings.Builder
	for _, rec := range recs {
		fmt.Fprintf(&b, "[%s] %s: %s\n", rec.Priority, rec.Title, rec.Message)
		if !rec.SuggestedTime.IsZero() {
			fmt.Fprintf(&b, "        suggested: %s\n", rec.SuggestedTime.Format("Mon 15:04"))
		}
	}
	_, err := io.WriteString(n.out, b.String())
	return err
}
