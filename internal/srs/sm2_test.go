package srs

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestAdvance_GoodLadder(t *testing.T) {
	// Hardcoded from the literal update formula: at quality "good" the
	// ease delta is exactly zero, so ease stays 2.5 throughout and the
	// ladder is 1, 6, round(6*2.5), round(15*2.5), round(38*2.5).
	want := []int{1, 6, 15, 38, 95}

	item := NewItem("it-1", "front", "back", testNow)
	now := testNow
	for i, wantInterval := range want {
		var res ReviewResult
		item, res = Advance(item, QualityGood, now)
		if item.IntervalDays != wantInterval {
			t.Errorf("review %d: IntervalDays = %d, want %d", i+1, item.IntervalDays, wantInterval)
		}
		if item.Repetitions != i+1 {
			t.Errorf("review %d: Repetitions = %d, want %d", i+1, item.Repetitions, i+1)
		}
		if item.EaseFactor != 2.5 {
			t.Errorf("review %d: EaseFactor = %v, want 2.5", i+1, item.EaseFactor)
		}
		wantNext := now.AddDate(0, 0, wantInterval)
		if !item.NextReview.Equal(wantNext) {
			t.Errorf("review %d: NextReview = %v, want %v", i+1, item.NextReview, wantNext)
		}
		if res.Graduated != (i+1 >= GraduationReps) {
			t.Errorf("review %d: Graduated = %v", i+1, res.Graduated)
		}
		now = item.NextReview
	}
}

func TestAdvance_AgainOnFreshItem(t *testing.T) {
	item := NewItem("it-1", "front", "back", testNow)

	updated, res := Advance(item, QualityAgain, testNow)

	if updated.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", updated.Repetitions)
	}
	if updated.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", updated.IntervalDays)
	}
	if updated.Streak != 0 {
		t.Errorf("Streak = %d, want 0", updated.Streak)
	}
	// 2.5 + (0.1 - 3*(0.08 + 3*0.02)) = 2.18
	if math.Abs(updated.EaseFactor-2.18) > 1e-9 {
		t.Errorf("EaseFactor = %v, want 2.18", updated.EaseFactor)
	}
	if updated.EaseFactor >= item.EaseFactor {
		t.Error("expected ease factor to strictly decrease")
	}
	if !res.WasNew {
		t.Error("expected WasNew for first-ever review")
	}
	if res.Graduated {
		t.Error("expected not graduated")
	}
}

func TestAdvance_FailureResetsRegardlessOfPriorState(t *testing.T) {
	item := Item{
		ID:           "it-1",
		EaseFactor:   2.7,
		IntervalDays: 42,
		Repetitions:  9,
		Streak:       9,
		LastReviewed: testNow.AddDate(0, 0, -42),
		NextReview:   testNow,
	}

	for _, q := range []Quality{QualityAgain, QualityHard} {
		updated, _ := Advance(item, q, testNow)
		if updated.Repetitions != 0 {
			t.Errorf("quality %d: Repetitions = %d, want 0", q, updated.Repetitions)
		}
		if updated.IntervalDays != 1 {
			t.Errorf("quality %d: IntervalDays = %d, want 1", q, updated.IntervalDays)
		}
		if updated.Streak != 0 {
			t.Errorf("quality %d: Streak = %d, want 0", q, updated.Streak)
		}
		wantNext := testNow.AddDate(0, 0, 1)
		if !updated.NextReview.Equal(wantNext) {
			t.Errorf("quality %d: NextReview = %v, want %v", q, updated.NextReview, wantNext)
		}
	}
}

func TestAdvance_EaseFactorNeverBelowFloor(t *testing.T) {
	for _, q := range []Quality{QualityAgain, QualityHard, QualityGood, QualityEasy} {
		item := Item{
			ID:           "it-1",
			EaseFactor:   MinEaseFactor,
			IntervalDays: 3,
			Repetitions:  4,
			LastReviewed: testNow.AddDate(0, 0, -3),
		}
		// Grind the same quality repeatedly; the floor must hold.
		now := testNow
		for i := 0; i < 10; i++ {
			item, _ = Advance(item, q, now)
			if item.EaseFactor < MinEaseFactor {
				t.Fatalf("quality %d: EaseFactor = %v below floor %v", q, item.EaseFactor, MinEaseFactor)
			}
			now = item.NextReview
		}
	}
}

func TestAdvance_HardAndEasyDeltas(t *testing.T) {
	item := Item{
		ID:           "it-1",
		EaseFactor:   2.5,
		IntervalDays: 6,
		Repetitions:  2,
		LastReviewed: testNow.AddDate(0, 0, -6),
	}

	hard, _ := Advance(item, QualityHard, testNow)
	if math.Abs(hard.EaseFactor-2.36) > 1e-9 {
		t.Errorf("hard: EaseFactor = %v, want 2.36", hard.EaseFactor)
	}

	easy, _ := Advance(item, QualityEasy, testNow)
	if math.Abs(easy.EaseFactor-2.6) > 1e-9 {
		t.Errorf("easy: EaseFactor = %v, want 2.6", easy.EaseFactor)
	}
	if easy.Repetitions != 3 {
		t.Errorf("easy: Repetitions = %d, want 3", easy.Repetitions)
	}
	// round(6 * 2.6) = 16
	if easy.IntervalDays != 16 {
		t.Errorf("easy: IntervalDays = %d, want 16", easy.IntervalDays)
	}
}

func TestAdvance_InputNotMutated(t *testing.T) {
	item := NewItem("it-1", "front", "back", testNow)
	before := item

	Advance(item, QualityEasy, testNow)

	if item != before {
		t.Error("Advance mutated its input")
	}
}

func TestAdvance_MalformedStateIsDefaulted(t *testing.T) {
	item := Item{
		ID:           "it-1",
		EaseFactor:   math.NaN(),
		IntervalDays: -5,
		Repetitions:  2,
		Streak:       -1,
		LastReviewed: testNow.AddDate(0, 0, -1),
	}

	updated, _ := Advance(item, QualityGood, testNow)

	if math.IsNaN(updated.EaseFactor) || updated.EaseFactor < MinEaseFactor {
		t.Errorf("EaseFactor = %v, want defaulted", updated.EaseFactor)
	}
	if updated.IntervalDays < 1 {
		t.Errorf("IntervalDays = %d, want >= 1", updated.IntervalDays)
	}
	if updated.Streak != 1 {
		t.Errorf("Streak = %d, want 1", updated.Streak)
	}
}

func TestAdvance_StreakGrowsOnSuccessResetsOnFailure(t *testing.T) {
	item := NewItem("it-1", "front", "back", testNow)
	now := testNow
	for i := 0; i < 3; i++ {
		item, _ = Advance(item, QualityGood, now)
		now = item.NextReview
	}
	if item.Streak != 3 {
		t.Fatalf("Streak = %d, want 3", item.Streak)
	}

	item, _ = Advance(item, QualityAgain, now)
	if item.Streak != 0 {
		t.Errorf("Streak = %d, want 0 after failure", item.Streak)
	}
}

func TestAdvance_WasNewOnlyOnFirstReview(t *testing.T) {
	item := NewItem("it-1", "front", "back", testNow)

	item, res := Advance(item, QualityAgain, testNow)
	if !res.WasNew {
		t.Error("first review: expected WasNew")
	}

	// A failure resets repetitions to 0, but the item is no longer new.
	_, res = Advance(item, QualityGood, item.NextReview)
	if res.WasNew {
		t.Error("second review: expected WasNew false")
	}
}

func TestAdvance_RecordsLastQualityAndReviewTime(t *testing.T) {
	item := NewItem("it-1", "front", "back", testNow)

	updated, _ := Advance(item, QualityHard, testNow)

	if updated.LastQuality != QualityHard {
		t.Errorf("LastQuality = %d, want %d", updated.LastQuality, QualityHard)
	}
	if !updated.LastReviewed.Equal(testNow) {
		t.Errorf("LastReviewed = %v, want %v", updated.LastReviewed, testNow)
	}
}
