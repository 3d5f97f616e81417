package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Answer is one recorded (day, part) answer.
type Answer struct {
	Day        int
	Part       int
	Answer     string
	RecordedAt time.Time
}

// RecordAnswer stores the answer for a (day, part) if none exists yet.
// Uses ON CONFLICT DO NOTHING so an already-recorded answer is never
// overwritten; returns whether a new row was inserted.
func (s *Store) RecordAnswer(ctx context.Context, day, part int, answer string, at time.Time) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO answers (day, part, answer, recorded_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(day, part) DO NOTHING
	`, day, part, answer, at.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return false, fmt.Errorf("record answer: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("record answer: %w", err)
	}
	return n > 0, nil
}

// LookupAnswer returns the recorded answer for a (day, part), and
// whether one exists.
func (s *Store) LookupAnswer(ctx context.Context, day, part int) (string, bool, error) {
	var answer string
	err := s.db.QueryRowContext(ctx, `
		SELECT answer FROM answers WHERE day = ? AND part = ?
	`, day, part).Scan(&answer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("lookup answer: %w", err)
	}
	return answer, true, nil
}

// ListAnswers returns every recorded answer ordered by day then part.
func (s *Store) ListAnswers(ctx context.Context) ([]Answer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, part, answer, recorded_at
		FROM answers
		ORDER BY day ASC, part ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	var answers []Answer
	for rows.Next() {
		var a Answer
		var recordedAt string
		if err := rows.Scan(&a.Day, &a.Part, &a.Answer, &recordedAt); err != nil {
			return nil, fmt.Errorf("list answers: %w", err)
		}
		a.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("list answers: bad recorded_at %q: %w", recordedAt, err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	return answers, nil
}

// ImportAnswers upserts a batch of answers in one transaction.
// Unlike RecordAnswer this overwrites: import restores an exported
// store and the imported file wins.
func (s *Store) ImportAnswers(ctx context.Context, answers []Answer) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("import answers: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	for _, a := range answers {
		if a.Day < 1 || a.Day > 25 || (a.Part != 1 && a.Part != 2) {
			return fmt.Errorf("import answers: invalid day %d part %d", a.Day, a.Part)
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO answers (day, part, answer, recorded_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(day, part) DO UPDATE SET
				answer = excluded.answer,
				recorded_at = excluded.recorded_at
		`, a.Day, a.Part, a.Answer, a.RecordedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("import answers: day %d part %d: %w", a.Day, a.Part, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import answers: commit: %w", err)
	}
	return nil
}
