package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/recallo/recallo/internal/srs"
)

// State is the session lifecycle phase.
type State int

const (
	StateCreated State = iota
	StateInProgress
	StateCompleted
)

// DefaultMaxSize bounds a session when the caller passes no explicit cap.
const DefaultMaxSize = 20

var (
	// ErrItemNotInSession is returned when grading an item outside the
	// session's working set.
	ErrItemNotInSession = errors.New("item not in session")

	// ErrSessionCompleted is returned when grading or finishing after the
	// session reached its terminal state.
	ErrSessionCompleted = errors.New("session already completed")
)

// Session is one bounded block of graded reviews. Values are updated
// immutably: Grade and Finish return a new Session rather than mutating.
type Session struct {
	ID    string
	State State

	// Items is the bounded working set chosen at creation.
	Items []srs.Item
	// DueItems is the due subset of Items, kept for reference.
	DueItems []srs.Item
	// CompletedItems holds the post-review item states, append-only.
	CompletedItems []srs.Item

	StartTime       time.Time
	EndTime         time.Time // zero until finished
	TotalCards      int
	CorrectAnswers  int
	AccuracyPercent float64
}

// Create builds a session from the current item collection. Due items are
// taken first, earliest first; remaining capacity is filled with new items.
// The result never exceeds maxSize.
func Create(items []srs.Item, maxSize int, now time.Time) Session {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	due := srs.Due(items, now)
	fresh := srs.NewItems(items)

	included := make([]srs.Item, 0, maxSize)
	seen := make(map[string]bool, maxSize)
	for _, it := range due {
		if len(included) >= maxSize {
			break
		}
		included = append(included, it)
		seen[it.ID] = true
	}
	for _, it := range fresh {
		if len(included) >= maxSize {
			break
		}
		if seen[it.ID] {
			continue
		}
		included = append(included, it)
		seen[it.ID] = true
	}

	dueIncluded := due
	if len(dueIncluded) > maxSize {
		dueIncluded = dueIncluded[:maxSize]
	}

	return Session{
		ID:         uuid.NewString(),
		State:      StateCreated,
		Items:      included,
		DueItems:   dueIncluded,
		StartTime:  now,
		TotalCards: len(included),
	}
}

// Grade applies one graded review inside the session. It returns the
// updated session and the updated item. Grading an unknown item or a
// completed session is a hard error; the session is returned unchanged.
func Grade(sess Session, itemID string, q srs.Quality, now time.Time) (Session, srs.Item, error) {
	if sess.State == StateCompleted {
		return sess, srs.Item{}, ErrSessionCompleted
	}

	idx := -1
	for i, it := range sess.Items {
		if it.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return sess, srs.Item{}, ErrItemNotInSession
	}

	updated, _ := srs.Advance(sess.Items[idx], q, now)

	next := sess
	next.State = StateInProgress
	next.CompletedItems = append(copyItems(sess.CompletedItems), updated)
	if q.Passing() {
		next.CorrectAnswers = sess.CorrectAnswers + 1
	}
	next.AccuracyPercent = float64(next.CorrectAnswers) / float64(len(next.CompletedItems)) * 100

	return next, updated, nil
}

// Finish seals the session. Finishing twice is an error; a completed
// session never accepts further grading.
func Finish(sess Session, now time.Time) (Session, error) {
	if sess.State == StateCompleted {
		return sess, ErrSessionCompleted
	}
	next := sess
	next.State = StateCompleted
	next.EndTime = now
	return next, nil
}

// Duration returns the session length, or elapsed-so-far against now for
// an unfinished session.
func (s Session) Duration(now time.Time) time.Duration {
	if s.State == StateCompleted {
		return s.EndTime.Sub(s.StartTime)
	}
	return now.Sub(s.StartTime)
}

// Remaining returns the working-set items that have not been graded yet.
func (s Session) Remaining() []srs.Item {
	graded := make(map[string]bool, len(s.CompletedItems))
	for _, it := range s.CompletedItems {
		graded[it.ID] = true
	}
	var rest []srs.Item
	for _, it := range s.Items {
		if !graded[it.ID] {
			rest = append(rest, it)
		}
	}
	return rest
}

func copyItems(items []srs.Item) []srs.Item {
	out := make([]srs.Item, len(items))
	copy(out, items)
	return out
}
