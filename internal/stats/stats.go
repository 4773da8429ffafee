package stats

import (
	"time"

	"github.com/recallo/recallo/internal/srs"
)

// Overview aggregates the current state of an item collection.
type Overview struct {
	TotalItems    int
	TierCounts    map[srs.Tier]int
	DueCount      int
	NewCount      int
	AvgEaseFactor float64
	// NextDue is the earliest upcoming review, zero if the collection is
	// empty.
	NextDue time.Time
}

// Compute builds an overview snapshot. Purely derived; nothing is cached
// or persisted.
func Compute(items []srs.Item, now time.Time) Overview {
	ov := Overview{
		TierCounts: make(map[srs.Tier]int),
		TotalItems: len(items),
		DueCount:   len(srs.Due(items, now)),
		NewCount:   len(srs.NewItems(items)),
	}

	var easeSum float64
	for _, it := range items {
		ov.TierCounts[srs.Classify(it)]++
		ease := it.EaseFactor
		if ease <= 0 {
			ease = srs.DefaultEaseFactor
		}
		easeSum += ease
		if ov.NextDue.IsZero() || it.NextReview.Before(ov.NextDue) {
			ov.NextDue = it.NextReview
		}
	}
	if len(items) > 0 {
		ov.AvgEaseFactor = easeSum / float64(len(items))
	}
	return ov
}

// DayForecast is the review load expected on a single day.
type DayForecast struct {
	Date  time.Time
	Count int
}

// Forecast returns the upcoming review counts for the next `days` days.
// Day 0 covers everything due up to the end of today, including backlog;
// later days count reviews scheduled within that calendar day.
func Forecast(items []srs.Item, now time.Time, days int) []DayForecast {
	if days <= 0 {
		return nil
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out := make([]DayForecast, days)
	for i := range out {
		out[i].Date = startOfDay.AddDate(0, 0, i)
	}

	for _, it := range items {
		endOfToday := startOfDay.AddDate(0, 0, 1)
		if it.NextReview.Before(endOfToday) {
			out[0].Count++
			continue
		}
		offset := int(it.NextReview.Sub(startOfDay).Hours() / 24)
		if offset >= 0 && offset < days {
			out[offset].Count++
		}
	}
	return out
}
