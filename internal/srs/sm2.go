package srs

import (
	"math"
	"time"
)

// ReviewResult carries metadata about a single Advance call.
type ReviewResult struct {
	// WasNew is true if this was the item's first-ever review.
	WasNew bool
	// Graduated is true once the item has reached GraduationReps
	// consecutive successful repetitions.
	Graduated bool
}

// Advance applies one graded review to an item and returns the updated
// copy. The input is never mutated.
//
// The ease factor update is the SM-2 formula with its original 0-5
// coefficients applied to the 0-3 quality scale:
//
//	ef' = ef + (0.1 - (3-q)*(0.08 + (3-q)*0.02))
//
// kept verbatim for parity with the system this adapts; rescaling the
// coefficients would change every interval downstream. The floor is 1.3.
//
// Malformed scheduling state (zero or negative ease, interval, counters)
// is defensively re-initialized rather than rejected, so Advance never
// fails.
func Advance(item Item, q Quality, now time.Time) (Item, ReviewResult) {
	updated := normalized(item)
	wasNew := item.LastReviewed.IsZero()

	if q < QualityAgain {
		q = QualityAgain
	}
	if q > maxQuality {
		q = maxQuality
	}

	miss := float64(maxQuality - q)
	ef := updated.EaseFactor + (0.1 - miss*(0.08+miss*0.02))
	if ef < MinEaseFactor {
		ef = MinEaseFactor
	}
	updated.EaseFactor = ef

	if q.Passing() {
		updated.Repetitions++
		switch updated.Repetitions {
		case 1:
			updated.IntervalDays = 1
		case 2:
			updated.IntervalDays = 6
		default:
			updated.IntervalDays = int(math.Round(float64(updated.IntervalDays) * ef))
		}
		updated.Streak++
	} else {
		updated.Repetitions = 0
		updated.IntervalDays = 1
		updated.Streak = 0
	}

	updated.NextReview = now.AddDate(0, 0, updated.IntervalDays)
	updated.LastReviewed = now
	updated.LastQuality = q

	return updated, ReviewResult{
		WasNew:    wasNew,
		Graduated: updated.Repetitions >= GraduationReps,
	}
}

// normalized returns a copy of the item with scheduling fields forced into
// their valid ranges. Items without successful history (repetitions 0,
// which includes items reset by a failed review) restart from the
// canonical defaults before the update is applied.
func normalized(item Item) Item {
	if item.Repetitions <= 0 {
		item.Repetitions = 0
		item.EaseFactor = DefaultEaseFactor
		item.IntervalDays = 1
	}
	if item.EaseFactor < MinEaseFactor || math.IsNaN(item.EaseFactor) {
		item.EaseFactor = DefaultEaseFactor
	}
	if item.IntervalDays < 1 {
		item.IntervalDays = 1
	}
	if item.Streak < 0 {
		item.Streak = 0
	}
	return item
}
