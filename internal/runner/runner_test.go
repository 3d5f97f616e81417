package runner

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advent2024/internal/solver"
	"github.com/roach88/advent2024/internal/store"
)

// fakeStore implements AnswerStore in memory.
type fakeStore struct {
	answers  map[[2]int]string
	recorded map[[2]int]string
	runs     []store.Run
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		answers:  make(map[[2]int]string),
		recorded: make(map[[2]int]string),
	}
}

func (f *fakeStore) LookupAnswer(_ context.Context, day, part int) (string, bool, error) {
	answer, ok := f.answers[[2]int{day, part}]
	return answer, ok, nil
}

func (f *fakeStore) RecordAnswer(_ context.Context, day, part int, answer string, _ time.Time) (bool, error) {
	key := [2]int{day, part}
	if _, ok := f.answers[key]; ok {
		return false, nil
	}
	f.answers[key] = answer
	f.recorded[key] = answer
	return true, nil
}

func (f *fakeStore) RecordRun(_ context.Context, run store.Run) error {
	f.runs = append(f.runs, run)
	return nil
}

// fixedIDs hands out sequential run ids for deterministic assertions.
type fixedIDs struct {
	next int
}

func (g *fixedIDs) Generate() string {
	g.next++
	return strings.Repeat("0", 35) + string(rune('0'+g.next))
}

// echoSolution parses by trimming and answers with suffixed input.
func echoSolution(day int) solver.Solution {
	return solver.New(day,
		func(input string) (string, error) { return strings.TrimSpace(input), nil },
		func(s string) string { return s + "-1" },
		func(s string) string { return s + "-2" },
	)
}

func quietRunner(dir string, st AnswerStore) *Runner {
	r := New(dir, st)
	r.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	r.RunIDs = &fixedIDs{}
	return r
}

func writeInput(t *testing.T, dir string, day int, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(InputPath(dir, day), []byte(content), 0o644))
}

func TestInputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("input", "day7.txt"), InputPath("input", 7))
	assert.Equal(t, filepath.Join("data", "day21.txt"), InputPath("data", 21))
}

func TestRunDay_RecordsNewAnswers(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 4, "abc\n")
	st := newFakeStore()

	res := quietRunner(dir, st).RunDay(context.Background(), echoSolution(4))

	require.False(t, res.Failed())
	assert.Equal(t, "abc-1", res.Part1.Answer)
	assert.Equal(t, "abc-2", res.Part2.Answer)
	assert.Equal(t, StatusNew, res.Part1.Status)
	assert.Equal(t, StatusNew, res.Part2.Status)
	assert.Equal(t, "abc-1", st.recorded[[2]int{4, 1}])
	assert.Equal(t, "abc-2", st.recorded[[2]int{4, 2}])
}

func TestRunDay_MatchAndMismatch(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 6, "xyz")
	st := newFakeStore()
	st.answers[[2]int{6, 1}] = "xyz-1"
	st.answers[[2]int{6, 2}] = "different"

	res := quietRunner(dir, st).RunDay(context.Background(), echoSolution(6))

	require.False(t, res.Failed())
	assert.Equal(t, StatusMatch, res.Part1.Status)
	assert.Equal(t, StatusMismatch, res.Part2.Status)
	assert.Equal(t, "different", res.Part2.Recorded)
	// A mismatch never overwrites the recorded answer.
	assert.Equal(t, "different", st.answers[[2]int{6, 2}])
}

func TestRunDay_NoRecord(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 2, "q")
	st := newFakeStore()

	r := quietRunner(dir, st)
	r.Record = false
	res := r.RunDay(context.Background(), echoSolution(2))

	assert.Equal(t, StatusNew, res.Part1.Status)
	assert.Empty(t, st.recorded)
}

func TestRunDay_NoStore(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 5, "q")

	res := quietRunner(dir, nil).RunDay(context.Background(), echoSolution(5))

	assert.Equal(t, StatusUnchecked, res.Part1.Status)
	assert.Equal(t, StatusUnchecked, res.Part2.Status)
}

func TestRunDay_MissingInput(t *testing.T) {
	res := quietRunner(t.TempDir(), nil).RunDay(context.Background(), echoSolution(3))

	assert.True(t, res.Failed())
	assert.Contains(t, res.Error, "day 3")
	assert.Empty(t, res.Part1.Answer)
}

func TestRunDay_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 8, "junk")
	sol := solver.New(8,
		func(string) (int, error) { return 0, assert.AnError },
		func(int) string { return "" },
		func(int) string { return "" },
	)

	res := quietRunner(dir, nil).RunDay(context.Background(), sol)

	assert.True(t, res.Failed())
	assert.Contains(t, res.Error, "parse day 8")
}

func TestRunDay_RecordsRunHistory(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 9, "w")
	st := newFakeStore()

	res := quietRunner(dir, st).RunDay(context.Background(), echoSolution(9))

	require.Len(t, st.runs, 1)
	assert.Equal(t, res.RunID, st.runs[0].ID)
	assert.Equal(t, 9, st.runs[0].Day)
	assert.False(t, st.runs[0].StartedAt.IsZero())
}

func TestRunDays_ContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 1, "a")
	writeInput(t, dir, 3, "c")
	// day 2 input is missing on purpose

	results := quietRunner(dir, nil).RunDays(context.Background(),
		[]solver.Solution{echoSolution(1), echoSolution(2), echoSolution(3)})

	require.Len(t, results, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{results[0].Day, results[1].Day, results[2].Day})
	assert.False(t, results[0].Failed())
	assert.True(t, results[1].Failed())
	assert.False(t, results[2].Failed())
	assert.True(t, AnyFailed(results))
	assert.False(t, AnyMismatch(results))
}

func TestAnyMismatch(t *testing.T) {
	results := []DayResult{
		{Day: 1, Part1: PartResult{Status: StatusMatch}, Part2: PartResult{Status: StatusMatch}},
		{Day: 2, Part1: PartResult{Status: StatusMatch}, Part2: PartResult{Status: StatusMismatch}},
	}
	assert.True(t, AnyMismatch(results))
	assert.False(t, AnyMismatch(results[:1]))
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}

	id, err := uuid.Parse(gen.Generate())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := gen.Generate()
		assert.False(t, seen[token], "duplicate run id %s", token)
		seen[token] = true
	}
}
