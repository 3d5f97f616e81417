package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/advent2024/internal/store"
)

// AnswersOptions holds flags shared by the answers subcommands.
type AnswersOptions struct {
	*RootOptions
	Database string
}

// answersFile is the YAML round-trip format for the answer store.
type answersFile struct {
	Answers []answerEntry `yaml:"answers"`
}

type answerEntry struct {
	Day        int       `yaml:"day"`
	Part       int       `yaml:"part"`
	Answer     string    `yaml:"answer"`
	RecordedAt time.Time `yaml:"recorded_at"`
}

// NewAnswersCommand creates the answers command group.
func NewAnswersCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnswersOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "answers",
		Short: "Inspect and round-trip the recorded answer store",
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", DefaultDatabase, "path to SQLite answer store")

	cmd.AddCommand(newAnswersListCommand(opts))
	cmd.AddCommand(newAnswersExportCommand(opts))
	cmd.AddCommand(newAnswersImportCommand(opts))

	return cmd
}

func newAnswersListCommand(opts *AnswersOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List recorded answers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := loadAnswers(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if opts.Format == "json" {
				formatter := &OutputFormatter{Writer: cmd.OutOrStdout()}
				return formatter.Success(toEntries(answers))
			}
			for _, a := range answers {
				fmt.Fprintf(cmd.OutOrStdout(), "day %2d part %d  %s\n", a.Day, a.Part, a.Answer)
			}
			return nil
		},
	}
}

func newAnswersExportCommand(opts *AnswersOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:           "export",
		Short:         "Export recorded answers as YAML",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := loadAnswers(cmd.Context(), opts)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(answersFile{Answers: toEntries(answers)})
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to encode answers", err)
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return WrapExitError(ExitCommandError, "failed to write export", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write to file instead of stdout")

	return cmd
}

func newAnswersImportCommand(opts *AnswersOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "import <file>",
		Short:         "Import answers from a YAML export",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			imported, err := readAnswersFile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read answers file", err)
			}

			st, err := store.Open(opts.Database)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to open database", err)
			}
			defer st.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if err := st.ImportAnswers(ctx, fromEntries(imported.Answers)); err != nil {
				if opts.Format == "json" {
					formatter := &OutputFormatter{Writer: cmd.OutOrStdout()}
					_ = formatter.Error(ErrCodeImport, "import failed", err.Error())
				}
				return WrapExitError(ExitFailure, "import failed", err)
			}

			if opts.Format == "json" {
				formatter := &OutputFormatter{Writer: cmd.OutOrStdout()}
				return formatter.Success(map[string]int{"imported": len(imported.Answers)})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d answers\n", len(imported.Answers))
			return nil
		},
	}
}

func loadAnswers(ctx context.Context, opts *AnswersOptions) ([]store.Answer, error) {
	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	answers, err := st.ListAnswers(ctx)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to list answers", err)
	}
	return answers, nil
}

// readAnswersFile parses a YAML export with strict field validation
// (catches typos like "anwser:").
func readAnswersFile(path string) (*answersFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}

	var parsed answersFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &parsed, nil
}

func toEntries(answers []store.Answer) []answerEntry {
	entries := make([]answerEntry, len(answers))
	for i, a := range answers {
		entries[i] = answerEntry{
			Day:        a.Day,
			Part:       a.Part,
			Answer:     a.Answer,
			RecordedAt: a.RecordedAt,
		}
	}
	return entries
}

func fromEntries(entries []answerEntry) []store.Answer {
	answers := make([]store.Answer, len(entries))
	for i, e := range entries {
		answers[i] = store.Answer{
			Day:        e.Day,
			Part:       e.Part,
			Answer:     e.Answer,
			RecordedAt: e.RecordedAt,
		}
	}
	return answers
}
