package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/recallo/recallo/internal/planner"
)

// PatternRepo persists the single per-user study pattern. The engine only
// reads patterns; the CLI updates the stored one after each session.
type PatternRepo struct {
	db *sqlx.DB
}

type patternRow struct {
	ID                 int     `db:"id"`
	PreferredHour      int     `db:"preferred_hour"`
	PreferredWeekdays  string  `db:"preferred_weekdays"`
	AvgSessionMinutes  float64 `db:"avg_session_minutes"`
	AvgCardsPerSession float64 `db:"avg_cards_per_session"`
	StudyStreak        int     `db:"study_streak"`
	LastStudyDate      string  `db:"last_study_date"`
	Frequency          string  `db:"frequency"`
}

// Save stores the pattern, replacing any previous one.
func (r *PatternRepo) Save(ctx context.Context, p planner.StudyPattern) error {
	days := make([]int, 0, len(p.PreferredWeekdays))
	for _, d := range p.PreferredWeekdays {
		days = append(days, int(d))
	}
	daysJSON, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("marshal weekdays: %w", err)
	}

	row := patternRow{
		ID:                 1,
		PreferredHour:      p.PreferredHour,
		PreferredWeekdays:  string(daysJSON),
		AvgSessionMinutes:  p.AvgSessionMinutes,
		AvgCardsPerSession: p.AvgCardsPerSession,
		StudyStreak:        p.StudyStreak,
		LastStudyDate:      formatTime(p.LastStudyDate),
		Frequency:          string(p.Frequency),
	}
	_, err = r.db.NamedExecContext(ctx, `
		INSERT OR REPLACE INTO study_pattern
			(id, preferred_hour, preferred_weekdays, avg_session_minutes,
			 avg_cards_per_session, study_streak, last_study_date, frequency)
		VALUES
			(:id, :preferred_hour, :preferred_weekdays, :avg_session_minutes,
			 :avg_cards_per_session, :study_streak, :last_study_date, :frequency)`,
		row)
	if err != nil {
		return fmt.Errorf("save pattern: %w", err)
	}
	return nil
}

// Get returns the stored pattern, or the default pattern if none has been
// saved yet.
func (r *PatternRepo) Get(ctx context.Context) (planner.StudyPattern, error) {
	var row patternRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM study_pattern WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return planner.DefaultPattern(), nil
	}
	if err != nil {
		return planner.StudyPattern{}, fmt.Errorf("get pattern: %w", err)
	}

	var dayInts []int
	if err := json.Unmarshal([]byte(row.PreferredWeekdays), &dayInts); err != nil {
		return planner.StudyPattern{}, fmt.Errorf("unmarshal weekdays: %w", err)
	}
	days := make([]time.Weekday, 0, len(dayInts))
	for _, d := range dayInts {
		days = append(days, time.Weekday(d))
	}

	last, err := parseTime(row.LastStudyDate)
	if err != nil {
		return planner.StudyPattern{}, fmt.Errorf("last_study_date: %w", err)
	}

	return planner.StudyPattern{
		PreferredHour:      row.PreferredHour,
		PreferredWeekdays:  days,
		AvgSessionMinutes:  row.AvgSessionMinutes,
		AvgCardsPerSession: row.AvgCardsPerSession,
		StudyStreak:        row.StudyStreak,
		LastStudyDate:      last,
		Frequency:          planner.Frequency(row.Frequency),
	}, nil
}
