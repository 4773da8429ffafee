package stats

import (
	"time"

	"github.com/recallo/recallo/internal/session"
)

// SessionSummary holds the data shown after a session finishes.
type SessionSummary struct {
	SessionID  string
	Duration   time.Duration
	TotalCards int
	Graded     int
	Correct    int
	Accuracy   float64
	Abandoned  int // cards in the working set that were never graded
}

// Summarize builds a summary from a session. Works for unfinished
// sessions too, measuring elapsed time against now.
func Summarize(sess session.Session, now time.Time) SessionSummary {
	return SessionSummary{
		SessionID:  sess.ID,
		Duration:   sess.Duration(now),
		TotalCards: sess.TotalCards,
		Graded:     len(sess.CompletedItems),
		Correct:    sess.CorrectAnswers,
		Accuracy:   sess.AccuracyPercent,
		Abandoned:  len(sess.Remaining()),
	}
}
