// Package runner executes day solvers against puzzle inputs and
// compares the answers with the recorded ones.
//
// The runner is independent of the CLI layer: it takes solutions,
// returns DayResults, and leaves exit-code policy to the caller. Each
// executed day gets a time-sortable UUIDv7 run id so timing history
// stays ordered.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/advent2024/internal/solver"
	"github.com/roach88/advent2024/internal/store"
)

// Status classifies a part's answer against the recorded one.
type Status string

const (
	// StatusUnchecked means no answer store was consulted.
	StatusUnchecked Status = "unchecked"
	// StatusNew means no answer was recorded for this part yet.
	StatusNew Status = "new"
	// StatusMatch means the answer equals the recorded one.
	StatusMatch Status = "match"
	// StatusMismatch means the answer differs from the recorded one.
	StatusMismatch Status = "mismatch"
)

// PartResult holds one part's answer, timing and comparison outcome.
type PartResult struct {
	Answer   string        `json:"answer"`
	Duration time.Duration `json:"duration_ns"`
	Status   Status        `json:"status"`
	Recorded string        `json:"recorded,omitempty"` // set on mismatch
}

// DayResult is the outcome of running one day.
// Error is set when the input could not be loaded or parsed; the part
// fields are zero in that case.
type DayResult struct {
	Day   int           `json:"day"`
	RunID string        `json:"run_id,omitempty"`
	Error string        `json:"error,omitempty"`
	Parse time.Duration `json:"parse_ns"`
	Part1 PartResult    `json:"part1"`
	Part2 PartResult    `json:"part2"`
}

// Failed reports whether the day never produced answers.
func (r DayResult) Failed() bool {
	return r.Error != ""
}

// AnswerStore is the subset of the store the runner needs.
// A nil store disables comparison and run history.
type AnswerStore interface {
	LookupAnswer(ctx context.Context, day, part int) (string, bool, error)
	RecordAnswer(ctx context.Context, day, part int, answer string, at time.Time) (bool, error)
	RecordRun(ctx context.Context, run store.Run) error
}

// RunIDGenerator produces run ids.
// Implemented by UUIDv7Generator (production) and fixed generators in
// tests.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run ids.
type UUIDv7Generator struct{}

// Generate returns a new UUIDv7 string.
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Runner executes solutions against inputs in InputDir.
type Runner struct {
	InputDir string
	Store    AnswerStore
	Record   bool // record first-seen answers
	RunIDs   RunIDGenerator
	Log      *slog.Logger
}

// New returns a Runner with production defaults: UUIDv7 run ids, the
// default slog logger, and answer recording enabled.
func New(inputDir string, st AnswerStore) *Runner {
	return &Runner{
		InputDir: inputDir,
		Store:    st,
		Record:   true,
		RunIDs:   UUIDv7Generator{},
		Log:      slog.Default(),
	}
}

// InputPath returns the conventional input location for a day,
// <dir>/day<N>.txt.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%d.txt", day))
}

// LoadInput reads a day's input file.
func LoadInput(dir string, day int) (string, error) {
	data, err := os.ReadFile(InputPath(dir, day))
	if err != nil {
		return "", fmt.Errorf("read input for day %d: %w", day, err)
	}
	return string(data), nil
}

// RunDays executes the given solutions in order.
// A day that fails to load or parse is reported in its result and the
// remaining days still run.
func (r *Runner) RunDays(ctx context.Context, solutions []solver.Solution) []DayResult {
	results := make([]DayResult, 0, len(solutions))
	for _, sol := range solutions {
		results = append(results, r.RunDay(ctx, sol))
	}
	return results
}

// RunDay loads one day's input, runs parse and both parts with
// wall-clock timing, compares the answers, and appends the run to the
// history.
func (r *Runner) RunDay(ctx context.Context, sol solver.Solution) DayResult {
	result := DayResult{Day: sol.Day}
	startedAt := time.Now()

	input, err := LoadInput(r.InputDir, sol.Day)
	if err != nil {
		result.Error = err.Error()
		r.log().Error("input not available", "day", sol.Day, "error", err)
		return result
	}

	start := time.Now()
	parsed, err := sol.Parse(input)
	result.Parse = time.Since(start)
	if err != nil {
		result.Error = fmt.Sprintf("parse day %d: %v", sol.Day, err)
		r.log().Error("parse failed", "day", sol.Day, "error", err)
		return result
	}

	result.Part1 = r.runPart(ctx, sol.Day, 1, sol.Part1, parsed)
	result.Part2 = r.runPart(ctx, sol.Day, 2, sol.Part2, parsed)

	result.RunID = r.runIDs().Generate()
	if r.Store != nil {
		err := r.Store.RecordRun(ctx, store.Run{
			ID:        result.RunID,
			Day:       sol.Day,
			Parse:     result.Parse,
			Part1:     result.Part1.Duration,
			Part2:     result.Part2.Duration,
			StartedAt: startedAt,
		})
		if err != nil {
			r.log().Warn("run history not recorded", "day", sol.Day, "error", err)
		}
	}

	return result
}

// runPart times one part and classifies its answer against the store.
func (r *Runner) runPart(ctx context.Context, day, part int, fn func(any) string, parsed any) PartResult {
	start := time.Now()
	answer := fn(parsed)
	result := PartResult{
		Answer:   answer,
		Duration: time.Since(start),
		Status:   StatusUnchecked,
	}
	if r.Store == nil {
		return result
	}

	recorded, found, err := r.Store.LookupAnswer(ctx, day, part)
	if err != nil {
		r.log().Warn("answer lookup failed", "day", day, "part", part, "error", err)
		return result
	}

	switch {
	case !found:
		result.Status = StatusNew
		if r.Record {
			if _, err := r.Store.RecordAnswer(ctx, day, part, answer, time.Now()); err != nil {
				r.log().Warn("answer not recorded", "day", day, "part", part, "error", err)
			}
		}
	case recorded == answer:
		result.Status = StatusMatch
	default:
		result.Status = StatusMismatch
		result.Recorded = recorded
		r.log().Warn("answer mismatch",
			"day", day, "part", part, "answer", answer, "recorded", recorded)
	}

	return result
}

// AnyFailed reports whether any day failed to load or parse.
func AnyFailed(results []DayResult) bool {
	for _, res := range results {
		if res.Failed() {
			return true
		}
	}
	return false
}

// AnyMismatch reports whether any part disagreed with its recorded
// answer.
func AnyMismatch(results []DayResult) bool {
	for _, res := range results {
		if res.Part1.Status == StatusMismatch || res.Part2.Status == StatusMismatch {
			return true
		}
	}
	return false
}

func (r *Runner) log() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.Default()
}

func (r *Runner) runIDs() RunIDGenerator {
	if r.RunIDs != nil {
		return r.RunIDs
	}
	return UUIDv7Generator{}
}
