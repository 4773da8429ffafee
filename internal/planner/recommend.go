package planner

import (
	"fmt"
	"time"

	"github.com/recallo/recallo/internal/srs"
)

// RecommendationType is the kind of suggestion emitted.
type RecommendationType string

const (
	RecSchedule  RecommendationType = "schedule"
	RecReminder  RecommendationType = "reminder"
	RecBreak     RecommendationType = "break"
	RecIntensive RecommendationType = "intensive"
)

// Recommendation is a single derived study suggestion. ReasonTag
// identifies the rule that produced it.
type Recommendation struct {
	Type             RecommendationType
	Title            string
	Message          string
	Priority         Priority
	SuggestedTime    time.Time // zero if the rule suggests no time
	EstimatedMinutes int       // 0 if the rule estimates no duration
	ReasonTag        string
}

// Recommend evaluates the rule set against the current snapshot. Each
// rule contributes at most one recommendation; all are recomputed fresh
// on every call and nothing is persisted.
func Recommend(items []srs.Item, pattern StudyPattern, now time.Time) []Recommendation {
	var recs []Recommendation

	dueCount := len(srs.Due(items, now))
	idle := pattern.IdleDays(now)

	if dueCount > 0 {
		priority := PriorityLow
		switch {
		case dueCount > 10:
			priority = PriorityHigh
		case dueCount > 5:
			priority = PriorityMedium
		}
		recs = append(recs, Recommendation{
			Type:             RecReminder,
			Title:            "Cards are waiting",
			Message:          fmt.Sprintf("You have %d cards due for review.", dueCount),
			Priority:         priority,
			EstimatedMinutes: int(estimateMinutes(min(dueCount, SessionCap), pattern)),
			ReasonTag:        "due-cards",
		})
	}

	if pattern.StudyStreak > 0 && idle >= 1 {
		recs = append(recs, Recommendation{
			Type:          RecSchedule,
			Title:         "Keep your streak alive",
			Message:       fmt.Sprintf("A quick session today keeps your %d-day streak going.", pattern.StudyStreak),
			Priority:      PriorityMedium,
			SuggestedTime: OptimalTime(pattern, now),
			ReasonTag:     "streak-maintenance",
		})
	}

	if pattern.StudyStreak > 7 {
		recs = append(recs, Recommendation{
			Type:      RecBreak,
			Title:     "Consider a lighter day",
			Message:   fmt.Sprintf("%d days straight. A short session or a rest day prevents burnout.", pattern.StudyStreak),
			Priority:  PriorityLow,
			ReasonTag: "burnout-risk",
		})
	}

	if dueCount > 20 {
		recs = append(recs, Recommendation{
			Type:             RecIntensive,
			Title:            "Backlog building up",
			Message:          fmt.Sprintf("%d cards overdue. An intensive catch-up session will clear the backlog fastest.", dueCount),
			Priority:         PriorityHigh,
			EstimatedMinutes: int(estimateMinutes(SessionCap, pattern)),
			ReasonTag:        "catch-up-backlog",
		})
	}

	return recs
}
