package srs

// Rating is the learner's qualitative self-assessment of a single review.
type Rating string

const (
	RatingAgain Rating = "again"
	RatingHard  Rating = "hard"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// Quality is the numeric grade derived from a Rating.
type Quality int

const (
	// QualityNone marks an item that has never been graded.
	QualityNone Quality = -1

	QualityAgain Quality = 0
	QualityHard  Quality = 1
	QualityGood  Quality = 2
	QualityEasy  Quality = 3
)

// maxQuality is the top of the grading scale.
const maxQuality = QualityEasy

// ParseRating maps a rating token to its quality score.
//
// Unrecognized tokens map to QualityGood. This mirrors the upstream
// behavior and is a known quirk: callers that want strict validation must
// check the token against the Rating constants themselves.
func ParseRating(token string) Quality {
	switch Rating(token) {
	case RatingAgain:
		return QualityAgain
	case RatingHard:
		return QualityHard
	case RatingGood:
		return QualityGood
	case RatingEasy:
		return QualityEasy
	default:
		return QualityGood
	}
}

// Passing returns true if the quality counts as a successful recall.
func (q Quality) Passing() bool {
	return q >= QualityGood
}
