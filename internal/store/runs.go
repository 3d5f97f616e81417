package store

import (
	"context"
	"fmt"
	"time"
)

// Run is one executed day with its stage timings.
type Run struct {
	ID        string
	Day       int
	Parse     time.Duration
	Part1     time.Duration
	Part2     time.Duration
	StartedAt time.Time
}

// RecordRun appends a run to the history.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate run IDs
// are silently ignored.
func (s *Store) RecordRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, day, parse_ns, part1_ns, part2_ns, started_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Day,
		run.Parse.Nanoseconds(),
		run.Part1.Nanoseconds(),
		run.Part2.Nanoseconds(),
		run.StartedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// RunsForDay returns the run history for a day, oldest first.
func (s *Store) RunsForDay(ctx context.Context, day int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, day, parse_ns, part1_ns, part2_ns, started_at
		FROM runs
		WHERE day = ?
		ORDER BY started_at ASC, id ASC
	`, day)
	if err != nil {
		return nil, fmt.Errorf("runs for day: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var parseNS, part1NS, part2NS int64
		var startedAt string
		if err := rows.Scan(&r.ID, &r.Day, &parseNS, &part1NS, &part2NS, &startedAt); err != nil {
			return nil, fmt.Errorf("runs for day: %w", err)
		}
		r.Parse = time.Duration(parseNS)
		r.Part1 = time.Duration(part1NS)
		r.Part2 = time.Duration(part2NS)
		r.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("runs for day: bad started_at %q: %w", startedAt, err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("runs for day: %w", err)
	}
	return runs, nil
}
