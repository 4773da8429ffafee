package srs

// Tier classifies how established an item is, from first sight to
// long-interval retention.
type Tier string

const (
	TierNew      Tier = "new"
	TierLearning Tier = "learning"
	TierYoung    Tier = "young"
	TierMature   Tier = "mature"
	TierMastered Tier = "mastered"
)

// Classify returns the maturity tier for an item. Purely derived from the
// current scheduling state; never mutates.
func Classify(item Item) Tier {
	switch {
	case item.LastReviewed.IsZero():
		return TierNew
	case item.Repetitions < GraduationReps:
		return TierLearning
	case item.IntervalDays < 7:
		return TierYoung
	case item.IntervalDays < 30:
		return TierMature
	default:
		return TierMastered
	}
}
