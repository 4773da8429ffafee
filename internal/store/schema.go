package store

import "github.com/jmoiron/sqlx"

// Timestamps are stored as RFC3339 strings; empty string means unset.
const schema = `
CREATE TABLE IF NOT EXISTS items (
	id            TEXT PRIMARY KEY,
	front         TEXT NOT NULL,
	back          TEXT NOT NULL,
	ease_factor   REAL NOT NULL,
	interval_days INTEGER NOT NULL,
	repetitions   INTEGER NOT NULL,
	streak        INTEGER NOT NULL,
	next_review   TEXT NOT NULL,
	last_reviewed TEXT NOT NULL DEFAULT '',
	last_quality  INTEGER NOT NULL DEFAULT -1,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_next_review ON items (next_review);

CREATE TABLE IF NOT EXISTS sessions (
	id              TEXT PRIMARY KEY,
	start_time      TEXT NOT NULL,
	end_time        TEXT NOT NULL DEFAULT '',
	total_cards     INTEGER NOT NULL,
	correct_answers INTEGER NOT NULL,
	accuracy        REAL NOT NULL,
	completed_ids   TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_sessions_start_time ON sessions (start_time);

CREATE TABLE IF NOT EXISTS study_pattern (
	id                    INTEGER PRIMARY KEY CHECK (id = 1),
	preferred_hour        INTEGER NOT NULL,
	preferred_weekdays    TEXT NOT NULL DEFAULT '[]',
	avg_session_minutes   REAL NOT NULL,
	avg_cards_per_session REAL NOT NULL,
	study_streak          INTEGER NOT NULL,
	last_study_date       TEXT NOT NULL DEFAULT '',
	frequency             TEXT NOT NULL
);
`

func migrate(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
