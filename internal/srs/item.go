package srs

import "time"

// Default scheduling parameters for a freshly created item.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// GraduationReps is the repetition count at which an item counts as graduated.
const GraduationReps = 3

// Item is a single learnable card together with its scheduling state.
// Content fields are opaque to the engine; only the scheduling fields are
// ever touched, and only by Advance, which returns a new value.
type Item struct {
	ID    string
	Front string
	Back  string

	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	Streak       int
	NextReview   time.Time
	LastReviewed time.Time // zero value = never reviewed
	LastQuality  Quality   // QualityNone until first review
	CreatedAt    time.Time
}

// NewItem creates an item with no review history. It becomes due
// immediately: NextReview is the creation time.
func NewItem(id, front, back string, now time.Time) Item {
	return Item{
		ID:          id,
		Front:       front,
		Back:        back,
		EaseFactor:  DefaultEaseFactor,
		Repetitions: 0,
		NextReview:  now,
		LastQuality: QualityNone,
		CreatedAt:   now,
	}
}

// IsDue returns true if the item's review time has arrived or passed.
func (it Item) IsDue(now time.Time) bool {
	return !it.NextReview.After(now)
}

// IsNew returns true if the item has never been successfully reviewed.
func (it Item) IsNew() bool {
	return it.Repetitions == 0
}
