package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/recallo/recallo/internal/session"
)

// SessionRepo persists finished session records. Only the outcome is
// stored; the working set lives in memory for the session's lifetime.
type SessionRepo struct {
	db *sqlx.DB
}

// SessionRecord is the durable shape of a completed session.
type SessionRecord struct {
	ID             string  `db:"id"`
	StartTime      string  `db:"start_time"`
	EndTime        string  `db:"end_time"`
	TotalCards     int     `db:"total_cards"`
	CorrectAnswers int     `db:"correct_answers"`
	Accuracy       float64 `db:"accuracy"`
	CompletedIDs   string  `db:"completed_ids"`
}

// Save stores the session outcome.
func (r *SessionRepo) Save(ctx context.Context, sess session.Session) error {
	ids := make([]string, 0, len(sess.CompletedItems))
	for _, it := range sess.CompletedItems {
		ids = append(ids, it.ID)
	}
	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal completed ids: %w", err)
	}

	rec := SessionRecord{
		ID:             sess.ID,
		StartTime:      formatTime(sess.StartTime),
		EndTime:        formatTime(sess.EndTime),
		TotalCards:     sess.TotalCards,
		CorrectAnswers: sess.CorrectAnswers,
		Accuracy:       sess.AccuracyPercent,
		CompletedIDs:   string(idsJSON),
	}
	_, err = r.db.NamedExecContext(ctx, `
		INSERT OR REPLACE INTO sessions
			(id, start_time, end_time, total_cards, correct_answers, accuracy, completed_ids)
		VALUES
			(:id, :start_time, :end_time, :total_cards, :correct_answers, :accuracy, :completed_ids)`,
		rec)
	if err != nil {
		return fmt.Errorf("save session %s: %w", sess.ID, err)
	}
	return nil
}

// Get returns a stored session record by ID.
func (r *SessionRepo) Get(ctx context.Context, id string) (SessionRecord, error) {
	var rec SessionRecord
	err := r.db.GetContext(ctx, &rec, `SELECT * FROM sessions WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionRecord{}, ErrNotFound
	}
	if err != nil {
		return SessionRecord{}, fmt.Errorf("get session %s: %w", id, err)
	}
	return rec, nil
}

// Recent returns the most recently started sessions, newest first.
func (r *SessionRepo) Recent(ctx context.Context, limit int) ([]SessionRecord, error) {
	var recs []SessionRecord
	err := r.db.SelectContext(ctx, &recs,
		`SELECT * FROM sessions ORDER BY start_time DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return recs, nil
}
