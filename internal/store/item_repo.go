package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/recallo/recallo/internal/srs"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ItemRepo persists items and their scheduling state.
type ItemRepo struct {
	db *sqlx.DB
}

type itemRow struct {
	ID           string  `db:"id"`
	Front        string  `db:"front"`
	Back         string  `db:"back"`
	EaseFactor   float64 `db:"ease_factor"`
	IntervalDays int     `db:"interval_days"`
	Repetitions  int     `db:"repetitions"`
	Streak       int     `db:"streak"`
	NextReview   string  `db:"next_review"`
	LastReviewed string  `db:"last_reviewed"`
	LastQuality  int     `db:"last_quality"`
	CreatedAt    string  `db:"created_at"`
}

func itemToRow(it srs.Item) itemRow {
	return itemRow{
		ID:           it.ID,
		Front:        it.Front,
		Back:         it.Back,
		EaseFactor:   it.EaseFactor,
		IntervalDays: it.IntervalDays,
		Repetitions:  it.Repetitions,
		Streak:       it.Streak,
		NextReview:   formatTime(it.NextReview),
		LastReviewed: formatTime(it.LastReviewed),
		LastQuality:  int(it.LastQuality),
		CreatedAt:    formatTime(it.CreatedAt),
	}
}

func (r itemRow) toItem() (srs.Item, error) {
	next, err := parseTime(r.NextReview)
	if err != nil {
		return srs.Item{}, fmt.Errorf("item %s: next_review: %w", r.ID, err)
	}
	last, err := parseTime(r.LastReviewed)
	if err != nil {
		return srs.Item{}, fmt.Errorf("item %s: last_reviewed: %w", r.ID, err)
	}
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return srs.Item{}, fmt.Errorf("item %s: created_at: %w", r.ID, err)
	}
	return srs.Item{
		ID:           r.ID,
		Front:        r.Front,
		Back:         r.Back,
		EaseFactor:   r.EaseFactor,
		IntervalDays: r.IntervalDays,
		Repetitions:  r.Repetitions,
		Streak:       r.Streak,
		NextReview:   next,
		LastReviewed: last,
		LastQuality:  srs.Quality(r.LastQuality),
		CreatedAt:    created,
	}, nil
}

// Save inserts the item, or replaces its stored state if it exists.
func (r *ItemRepo) Save(ctx context.Context, it srs.Item) error {
	row := itemToRow(it)
	_, err := r.db.NamedExecContext(ctx, `
		INSERT OR REPLACE INTO items
			(id, front, back, ease_factor, interval_days, repetitions,
			 streak, next_review, last_reviewed, last_quality, created_at)
		VALUES
			(:id, :front, :back, :ease_factor, :interval_days, :repetitions,
			 :streak, :next_review, :last_reviewed, :last_quality, :created_at)`,
		row)
	if err != nil {
		return fmt.Errorf("save item %s: %w", it.ID, err)
	}
	return nil
}

// SaveAll stores a batch of items in one transaction.
func (r *ItemRepo) SaveAll(ctx context.Context, items []srs.Item) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, it := range items {
		row := itemToRow(it)
		if _, err := tx.NamedExecContext(ctx, `
			INSERT OR REPLACE INTO items
				(id, front, back, ease_factor, interval_days, repetitions,
				 streak, next_review, last_reviewed, last_quality, created_at)
			VALUES
				(:id, :front, :back, :ease_factor, :interval_days, :repetitions,
				 :streak, :next_review, :last_reviewed, :last_quality, :created_at)`,
			row); err != nil {
			return fmt.Errorf("save item %s: %w", it.ID, err)
		}
	}
	return tx.Commit()
}

// Get returns a single item by ID.
func (r *ItemRepo) Get(ctx context.Context, id string) (srs.Item, error) {
	var row itemRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM items WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return srs.Item{}, ErrNotFound
	}
	if err != nil {
		return srs.Item{}, fmt.Errorf("get item %s: %w", id, err)
	}
	return row.toItem()
}

// All returns every item, ordered by creation time then ID so that due
// tie-breaking stays deterministic across calls.
func (r *ItemRepo) All(ctx context.Context) ([]srs.Item, error) {
	var rows []itemRow
	err := r.db.SelectContext(ctx, &rows, `SELECT * FROM items ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	items := make([]srs.Item, 0, len(rows))
	for _, row := range rows {
		it, err := row.toItem()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// Delete removes an item by ID.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
