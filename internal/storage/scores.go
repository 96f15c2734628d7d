package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/candlelight/internal/levels"
	"github.com/vovakirdan/candlelight/internal/modes"
)

// DailyEntry is the best result for one calendar day.
type DailyEntry struct {
	DateKey     string
	Score       int
	CompletedAt time.Time
}

// DailyBest returns the best score for a date key, or nil if the day was
// never completed.
func (s *Store) DailyBest(dateKey string) (*int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT alchemizations FROM daily_scores WHERE date_key = ?",
		dateKey,
	).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query daily best: %w", err)
	}
	return &score, nil
}

// SaveDailyScore records a completed daily challenge. The row is only
// written when it beats the stored best; saved reports whether it did.
func (s *Store) SaveDailyScore(dateKey string, score int) (saved bool, err error) {
	best, err := s.DailyBest(dateKey)
	if err != nil {
		return false, err
	}
	if !modes.IsNewBest(score, best) {
		return false, nil
	}

	_, err = s.db.Exec(
		`INSERT INTO daily_scores (date_key, alchemizations, completed_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(date_key) DO UPDATE SET
		   alchemizations = excluded.alchemizations,
		   completed_at = excluded.completed_at`,
		dateKey, score,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save daily score: %w", err)
	}
	return true, nil
}

// RecentDaily retrieves the most recent daily results, newest day first.
func (s *Store) RecentDaily(limit int) ([]DailyEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT date_key, alchemizations, completed_at
		 FROM daily_scores
		 ORDER BY date_key DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query daily scores: %w", err)
	}
	defer rows.Close()

	var entries []DailyEntry
	for rows.Next() {
		var e DailyEntry
		var completedAt any
		if err := rows.Scan(&e.DateKey, &e.Score, &completedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CompletedAt = parseTime(completedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// LoadProgress returns the stored puzzle progress. A fresh database gives
// levels.NewProgress().
func (s *Store) LoadProgress() (levels.Progress, error) {
	p := levels.NewProgress()

	err := s.db.QueryRow(
		"SELECT max_world, max_level FROM puzzle_progress WHERE id = 1",
	).Scan(&p.MaxWorld, &p.MaxLevel)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return p, fmt.Errorf("storage: cannot query progress: %w", err)
	}

	rows, err := s.db.Query("SELECT puzzle_id, alchemizations FROM puzzle_scores")
	if err != nil {
		return p, fmt.Errorf("storage: cannot query puzzle scores: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var score int
		if err := rows.Scan(&id, &score); err != nil {
			return p, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.BestScores[id] = score
	}
	if err := rows.Err(); err != nil {
		return p, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return p, nil
}

// SaveProgress replaces the stored puzzle progress.
func (s *Store) SaveProgress(p levels.Progress) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO puzzle_progress (id, max_world, max_level) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET max_world = excluded.max_world, max_level = excluded.max_level`,
		p.MaxWorld, p.MaxLevel,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}

	for id, score := range p.BestScores {
		_, err = tx.Exec(
			`INSERT INTO puzzle_scores (puzzle_id, alchemizations) VALUES (?, ?)
			 ON CONFLICT(puzzle_id) DO UPDATE SET alchemizations = excluded.alchemizations`,
			id, score,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save puzzle score %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit progress: %w", err)
	}
	return nil
}

// CompletePuzzle folds a finished level into the stored progress and
// returns the updated value.
func (s *Store) CompletePuzzle(c *levels.Catalog, world, level, score int) (levels.Progress, error) {
	p, err := s.LoadProgress()
	if err != nil {
		return p, err
	}
	p = p.UpdateAfterComplete(c, world, level, score)
	if err := s.SaveProgress(p); err != nil {
		return p, err
	}
	return p, nil
}
