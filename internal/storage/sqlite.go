// Package storage keeps the attempts of the running process in an in-memory
// SQLite database. Nothing is written to disk; the ledger is gone when the
// process exits.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Ledger records finished attempts for the current session.
type Ledger struct {
	db *sql.DB
}

// Attempt is a single finished attempt.
type Attempt struct {
	ID        int64
	Score     int
	Level     int
	Ticks     int
	CreatedAt time.Time
}

// OpenSession creates an empty in-memory ledger.
func OpenSession() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is its own database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return l, nil
}

// migrate creates the schema.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_top ON attempts(score DESC);
	`

	_, err := l.db.Exec(schema)
	return err
}

// Close releases the database. The recorded attempts are discarded.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// RecordAttempt stores a finished attempt.
func (l *Ledger) RecordAttempt(score, level, ticks int) error {
	_, err := l.db.Exec(
		"INSERT INTO attempts (score, level, ticks) VALUES (?, ?, ?)",
		score, level, ticks,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record attempt: %w", err)
	}
	return nil
}

// BestScore returns the highest recorded score, or 0 when nothing has been
// recorded yet.
func (l *Ledger) BestScore() (int, error) {
	var score sql.NullInt64
	err := l.db.QueryRow("SELECT MAX(score) FROM attempts").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Count returns the number of recorded attempts.
func (l *Ledger) Count() (int, error) {
	var n int
	if err := l.db.QueryRow("SELECT COUNT(*) FROM attempts").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count attempts: %w", err)
	}
	return n, nil
}

// Attempts returns every recorded attempt in the order it was played.
func (l *Ledger) Attempts() ([]Attempt, error) {
	return l.query(
		`SELECT id, score, level, ticks, created_at
		 FROM attempts
		 ORDER BY id ASC`,
	)
}

// TopAttempts returns the best n attempts, highest score first. Ties go to
// the earlier attempt.
func (l *Ledger) TopAttempts(limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 10
	}
	return l.query(
		`SELECT id, score, level, ticks, created_at
		 FROM attempts
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

func (l *Ledger) query(q string, args ...any) ([]Attempt, error) {
	rows, err := l.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt any
		if err := rows.Scan(&a.ID, &a.Score, &a.Level, &a.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// The driver may hand back either form
		switch v := createdAt.(type) {
		case time.Time:
			a.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				a.CreatedAt = parsed
			}
		}
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return attempts, nil
}
