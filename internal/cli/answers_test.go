package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advent2024/internal/store"
)

func seedAnswers(t *testing.T, db string, answers []store.Answer) {
	t.Helper()
	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	for _, a := range answers {
		_, err := st.RecordAnswer(context.Background(), a.Day, a.Part, a.Answer, time.Now())
		require.NoError(t, err)
	}
}

func TestAnswersList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "advent.db")
	seedAnswers(t, db, []store.Answer{
		{Day: 1, Part: 1, Answer: "11"},
		{Day: 1, Part: 2, Answer: "31"},
		{Day: 13, Part: 1, Answer: "480"},
	})

	out, err := executeCommand("answers", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "day  1 part 1  11")
	assert.Contains(t, out, "day  1 part 2  31")
	assert.Contains(t, out, "day 13 part 1  480")
}

func TestAnswersExportImportRoundTrip(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src.db")
	seedAnswers(t, src, []store.Answer{
		{Day: 2, Part: 1, Answer: "2"},
		{Day: 2, Part: 2, Answer: "4"},
	})

	exported := filepath.Join(t.TempDir(), "answers.yaml")
	_, err := executeCommand("answers", "export", "--db", src, "--out", exported)
	require.NoError(t, err)

	dst := filepath.Join(t.TempDir(), "dst.db")
	out, err := executeCommand("answers", "import", exported, "--db", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 answers")

	st, err := store.Open(dst)
	require.NoError(t, err)
	defer st.Close()
	answer, found, err := st.LookupAnswer(context.Background(), 2, 2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "4", answer)
}

func TestAnswersExport_Stdout(t *testing.T) {
	db := filepath.Join(t.TempDir(), "advent.db")
	seedAnswers(t, db, []store.Answer{{Day: 7, Part: 1, Answer: "3749"}})

	out, err := executeCommand("answers", "export", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "answers:")
	assert.Contains(t, out, "day: 7")
	assert.Contains(t, out, `answer: "3749"`)
}

func TestAnswersImport_RejectsUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("answers:\n  - day: 1\n    part: 1\n    anwser: oops\n"), 0o644))

	_, err := executeCommand("answers", "import", path, "--db", filepath.Join(t.TempDir(), "x.db"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestAnswersImport_JSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("answers:\n  - day: 3\n    part: 1\n    answer: \"161\"\n"), 0o644))

	out, err := executeCommand("--format", "json", "answers", "import", path, "--db", filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, map[string]interface{}{"imported": float64(1)}, resp.Data)
}

func TestAnswersImport_JSONFormatRejection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("answers:\n  - day: 99\n    part: 1\n    answer: x\n"), 0o644))

	out, err := executeCommand("--format", "json", "answers", "import", path, "--db", filepath.Join(t.TempDir(), "x.db"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeImport, resp.Error.Code)
}

func TestAnswersImport_RejectsInvalidDay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("answers:\n  - day: 99\n    part: 1\n    answer: x\n"), 0o644))

	_, err := executeCommand("answers", "import", path, "--db", filepath.Join(t.TempDir(), "x.db"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
