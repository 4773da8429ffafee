package planner

import (
	"time"

	"github.com/recallo/recallo/internal/srs"
)

// BuildPlan derives a session plan from the current item collection and
// study pattern. The selection never exceeds SessionCap and never invents
// items: every returned card ID exists in the input.
func BuildPlan(items []srs.Item, pattern StudyPattern, now time.Time) Plan {
	due := srs.Due(items, now)
	fresh := srs.NewItems(items)
	dueCount := len(due)
	newCount := len(fresh)

	var typ SessionType
	switch {
	case dueCount > 15:
		typ = TypeCatchUp
	case dueCount > 5 && newCount > 0:
		typ = TypeMixed
	case dueCount > 0:
		typ = TypeReview
	default:
		typ = TypeNewCards
	}

	idle := pattern.IdleDays(now)
	var priority Priority
	switch {
	case dueCount > 10 || idle > 3:
		priority = PriorityHigh
	case dueCount > 5 || idle > 1:
		priority = PriorityMedium
	default:
		priority = PriorityLow
	}

	cardIDs := selectCards(typ, due, fresh)

	estimated := estimateMinutes(len(cardIDs), pattern)

	target := 70 + 0.5*float64(pattern.StudyStreak)
	if pattern.Frequency == FrequencyDaily {
		target += 5
	}
	if target > 95 {
		target = 95
	}

	return Plan{
		Type:             typ,
		Priority:         priority,
		CardIDs:          cardIDs,
		EstimatedMinutes: estimated,
		Goals: Goals{
			TargetCards:    len(cardIDs),
			TargetAccuracy: target,
			TargetMinutes:  estimated,
		},
	}
}

// selectCards picks the card subset for the plan type. Mixed sessions
// reserve ~70% of the cap for due cards and fill the remainder with new
// ones; both halves are bounded by what actually exists.
func selectCards(typ SessionType, due, fresh []srs.Item) []string {
	var ids []string
	seen := make(map[string]bool, SessionCap)

	take := func(items []srs.Item, limit int) {
		for _, it := range items {
			if len(ids) >= limit || len(ids) >= SessionCap {
				return
			}
			if seen[it.ID] {
				continue
			}
			ids = append(ids, it.ID)
			seen[it.ID] = true
		}
	}

	switch typ {
	case TypeReview, TypeCatchUp:
		take(due, SessionCap)
	case TypeNewCards:
		take(fresh, SessionCap)
	case TypeMixed:
		dueSlots := int(float64(SessionCap) * mixedDueShare)
		take(due, dueSlots)
		take(fresh, SessionCap)
	}
	return ids
}

// estimateMinutes derives the expected session length from the pattern's
// historical pace. Patterns without usable averages fall back to the
// default pace rather than dividing by zero.
func estimateMinutes(cards int, pattern StudyPattern) float64 {
	if cards == 0 {
		return 0
	}
	if pattern.AvgCardsPerSession <= 0 || pattern.AvgSessionMinutes <= 0 {
		fallback := DefaultPattern()
		return float64(cards) * (fallback.AvgSessionMinutes / fallback.AvgCardsPerSession)
	}
	return float64(cards) * (pattern.AvgSessionMinutes / pattern.AvgCardsPerSession)
}
