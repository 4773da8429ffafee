package session

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/recallo/recallo/internal/srs"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func dueItem(id string, daysOverdue int) srs.Item {
	next := testNow.AddDate(0, 0, -daysOverdue)
	return srs.Item{
		ID:           id,
		EaseFactor:   srs.DefaultEaseFactor,
		IntervalDays: 6,
		Repetitions:  2,
		NextReview:   next,
		LastReviewed: next.AddDate(0, 0, -6),
	}
}

func futureItem(id string, daysAhead int) srs.Item {
	next := testNow.AddDate(0, 0, daysAhead)
	return srs.Item{
		ID:           id,
		EaseFactor:   srs.DefaultEaseFactor,
		IntervalDays: 15,
		Repetitions:  3,
		NextReview:   next,
		LastReviewed: testNow.AddDate(0, 0, -1),
	}
}

// newItem builds an unreviewed item with a future NextReview so that the
// due and new buckets stay disjoint in selection tests.
func newItem(id string) srs.Item {
	it := srs.NewItem(id, "front", "back", testNow.AddDate(0, 0, 1))
	return it
}

func TestCreate_DueItemsBeforeNewItems(t *testing.T) {
	items := []srs.Item{
		newItem("new-1"),
		dueItem("due-1", 1),
		newItem("new-2"),
		dueItem("due-2", 3),
	}

	sess := Create(items, 3, testNow)

	if sess.TotalCards != 3 {
		t.Fatalf("TotalCards = %d, want 3", sess.TotalCards)
	}
	// Due first (most overdue earliest), then new in input order.
	wantOrder := []string{"due-2", "due-1", "new-1"}
	for i, want := range wantOrder {
		if sess.Items[i].ID != want {
			t.Errorf("Items[%d] = %s, want %s", i, sess.Items[i].ID, want)
		}
	}
}

func TestCreate_NeverExceedsMaxSize(t *testing.T) {
	var items []srs.Item
	for i := 0; i < 30; i++ {
		items = append(items, dueItem(fmt.Sprintf("due-%d", i), 1))
	}

	sess := Create(items, 10, testNow)

	if len(sess.Items) != 10 {
		t.Errorf("len(Items) = %d, want 10", len(sess.Items))
	}
}

func TestCreate_BoundedByAvailability(t *testing.T) {
	// 25 items: 10 due, 5 new, 10 scheduled in the future. With a cap of
	// 20 the session holds 15, not 20.
	var items []srs.Item
	for i := 0; i < 10; i++ {
		items = append(items, dueItem(fmt.Sprintf("due-%d", i), 1))
	}
	for i := 0; i < 5; i++ {
		items = append(items, newItem(fmt.Sprintf("new-%d", i)))
	}
	for i := 0; i < 10; i++ {
		items = append(items, futureItem(fmt.Sprintf("future-%d", i), 5))
	}

	sess := Create(items, 20, testNow)

	if len(sess.Items) != 15 {
		t.Errorf("len(Items) = %d, want 15", len(sess.Items))
	}
	if len(sess.DueItems) != 10 {
		t.Errorf("len(DueItems) = %d, want 10", len(sess.DueItems))
	}
}

func TestCreate_ZeroItems(t *testing.T) {
	sess := Create(nil, 20, testNow)

	if sess.TotalCards != 0 {
		t.Errorf("TotalCards = %d, want 0", sess.TotalCards)
	}

	finished, err := Finish(sess, testNow)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if finished.AccuracyPercent != 0 {
		t.Errorf("AccuracyPercent = %v, want 0", finished.AccuracyPercent)
	}
}

func TestGrade_UpdatesAccuracy(t *testing.T) {
	items := []srs.Item{dueItem("a", 1), dueItem("b", 1), dueItem("c", 1)}
	sess := Create(items, 10, testNow)

	sess, _, err := Grade(sess, "a", srs.QualityGood, testNow)
	if err != nil {
		t.Fatalf("Grade a: %v", err)
	}
	sess, _, err = Grade(sess, "b", srs.QualityAgain, testNow)
	if err != nil {
		t.Fatalf("Grade b: %v", err)
	}
	sess, _, err = Grade(sess, "c", srs.QualityEasy, testNow)
	if err != nil {
		t.Fatalf("Grade c: %v", err)
	}

	if sess.CorrectAnswers != 2 {
		t.Errorf("CorrectAnswers = %d, want 2", sess.CorrectAnswers)
	}
	if len(sess.CompletedItems) != 3 {
		t.Errorf("len(CompletedItems) = %d, want 3", len(sess.CompletedItems))
	}
	want := 2.0 / 3.0 * 100
	if math.Abs(sess.AccuracyPercent-want) > 1e-9 {
		t.Errorf("AccuracyPercent = %v, want %v", sess.AccuracyPercent, want)
	}
	if sess.State != StateInProgress {
		t.Errorf("State = %d, want StateInProgress", sess.State)
	}
}

func TestGrade_ItemNotInSession(t *testing.T) {
	sess := Create([]srs.Item{dueItem("a", 1)}, 10, testNow)

	_, _, err := Grade(sess, "missing", srs.QualityGood, testNow)
	if !errors.Is(err, ErrItemNotInSession) {
		t.Errorf("err = %v, want ErrItemNotInSession", err)
	}
}

func TestGrade_AfterFinishFails(t *testing.T) {
	sess := Create([]srs.Item{dueItem("a", 1)}, 10, testNow)
	sess, err := Finish(sess, testNow)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	_, _, err = Grade(sess, "a", srs.QualityGood, testNow)
	if !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("err = %v, want ErrSessionCompleted", err)
	}
}

func TestFinish_IsTerminal(t *testing.T) {
	sess := Create([]srs.Item{dueItem("a", 1)}, 10, testNow)

	end := testNow.Add(10 * time.Minute)
	sess, err := Finish(sess, end)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if sess.State != StateCompleted {
		t.Errorf("State = %d, want StateCompleted", sess.State)
	}
	if !sess.EndTime.Equal(end) {
		t.Errorf("EndTime = %v, want %v", sess.EndTime, end)
	}

	if _, err := Finish(sess, end.Add(time.Minute)); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("second Finish err = %v, want ErrSessionCompleted", err)
	}
}

func TestGrade_ImmutableUpdate(t *testing.T) {
	sess := Create([]srs.Item{dueItem("a", 1), dueItem("b", 1)}, 10, testNow)

	graded, _, err := Grade(sess, "a", srs.QualityGood, testNow)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}

	if len(sess.CompletedItems) != 0 {
		t.Error("original session was mutated")
	}
	if len(graded.CompletedItems) != 1 {
		t.Errorf("len(graded.CompletedItems) = %d, want 1", len(graded.CompletedItems))
	}
}

func TestRemaining_ShrinksAsItemsAreGraded(t *testing.T) {
	sess := Create([]srs.Item{dueItem("a", 1), dueItem("b", 1)}, 10, testNow)

	sess, _, err := Grade(sess, "a", srs.QualityGood, testNow)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}

	rest := sess.Remaining()
	if len(rest) != 1 || rest[0].ID != "b" {
		t.Errorf("Remaining = %v, want [b]", rest)
	}
}
