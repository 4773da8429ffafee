package planner

import (
	"math"
	"time"
)

// Frequency describes how often the learner tends to study.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyIrregular Frequency = "irregular"
)

// StudyPattern is the advisory per-user study history. The planner only
// reads it; it never feeds the interval algorithm, and the caller updates
// it after a session completes.
type StudyPattern struct {
	// PreferredHour is the preferred time of day (0-23).
	PreferredHour int
	// PreferredWeekdays lists the days the learner usually studies.
	// Empty means any day.
	PreferredWeekdays  []time.Weekday
	AvgSessionMinutes  float64
	AvgCardsPerSession float64
	StudyStreak        int
	LastStudyDate      time.Time // zero value = never studied
	Frequency          Frequency
}

// DefaultPattern is used when no study history exists yet.
func DefaultPattern() StudyPattern {
	return StudyPattern{
		PreferredHour:      18,
		AvgSessionMinutes:  15,
		AvgCardsPerSession: 20,
		Frequency:          FrequencyIrregular,
	}
}

// IdleDays returns the days elapsed since the last study date. A pattern
// without history reports +Inf so every staleness rule fires.
func (p StudyPattern) IdleDays(now time.Time) float64 {
	if p.LastStudyDate.IsZero() {
		return math.Inf(1)
	}
	return now.Sub(p.LastStudyDate).Hours() / 24.0
}
