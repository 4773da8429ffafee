package srs

import (
	"sort"
	"time"
)

// Due returns the items whose review time has arrived, earliest first.
// Items sharing the same NextReview timestamp keep their input order; the
// ordering rule is deliberately stable so repeated calls over the same
// collection produce the same session contents.
func Due(items []Item, now time.Time) []Item {
	var due []Item
	for _, it := range items {
		if it.IsDue(now) {
			due = append(due, it)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].NextReview.Before(due[j].NextReview)
	})
	return due
}

// NewItems returns the items with no successful review history.
func NewItems(items []Item) []Item {
	var fresh []Item
	for _, it := range items {
		if it.IsNew() {
			fresh = append(fresh, it)
		}
	}
	return fresh
}

// ReviewItems returns the items with at least one successful repetition.
func ReviewItems(items []Item) []Item {
	var reviewed []Item
	for _, it := range items {
		if !it.IsNew() {
			reviewed = append(reviewed, it)
		}
	}
	return reviewed
}
