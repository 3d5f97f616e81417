package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/advent2024/internal/runner"
	"github.com/roach88/advent2024/internal/solver"
	"github.com/roach88/advent2024/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	InputDir  string
	Database  string
	CheckOnly bool
	NoRecord  bool

	// RunIDs allows overriding the run id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs runner.RunIDGenerator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions, solutions []solver.Solution) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Run day solvers against their inputs",
		Long: `Run one or more day solvers against their puzzle inputs.

With no arguments every implemented day runs in order. Inputs are
read from <input-dir>/day<N>.txt. Answers are compared against the
store; the first answer seen for a part is recorded, a later
different answer is reported as a mismatch.

Example:
  advent run
  advent run 6 11 --input-dir ./input
  advent run --check-only --db ci.db`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDays(opts, solutions, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.InputDir, "input-dir", DefaultInputDir, "directory containing day<N>.txt inputs")
	cmd.Flags().StringVar(&opts.Database, "db", DefaultDatabase, "path to SQLite answer store (empty disables)")
	cmd.Flags().BoolVar(&opts.CheckOnly, "check-only", false, "treat answer mismatches as failures (exit 1)")
	cmd.Flags().BoolVar(&opts.NoRecord, "no-record", false, "don't record first-seen answers")

	return cmd
}

func runDays(opts *RunOptions, solutions []solver.Solution, args []string, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	cfg, err := loadConfigFor(opts.RootOptions)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	// Flags beat config, config beats defaults.
	if !cmd.Flags().Changed("input-dir") && cfg.InputDir != "" {
		opts.InputDir = cfg.InputDir
	}
	if !cmd.Flags().Changed("db") && cfg.Database != "" {
		opts.Database = cfg.Database
	}

	selected, err := selectDays(solutions, args)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid day selection", err)
	}

	var answerStore runner.AnswerStore
	if opts.Database != "" {
		slog.Debug("opening answer store", "path", opts.Database)
		st, err := store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
		answerStore = st
	}

	r := runner.New(opts.InputDir, answerStore)
	r.Record = !opts.NoRecord
	if opts.RunIDs != nil {
		r.RunIDs = opts.RunIDs
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	slog.Debug("running days", "days", solver.Days(selected), "input_dir", opts.InputDir)
	results := r.RunDays(ctx, selected)

	failed := runner.AnyFailed(results)
	regressed := opts.CheckOnly && runner.AnyMismatch(results)

	if opts.Format == "json" {
		formatter := &OutputFormatter{Writer: cmd.OutOrStdout()}
		var encodeErr error
		switch {
		case failed:
			encodeErr = formatter.Error(ErrCodeRunFailed, "one or more days failed to run", results)
		case regressed:
			encodeErr = formatter.Error(ErrCodeMismatch, "recorded answer mismatch", results)
		default:
			encodeErr = formatter.Success(results)
		}
		if encodeErr != nil {
			return WrapExitError(ExitCommandError, "failed to encode results", encodeErr)
		}
	} else {
		runner.WriteReport(cmd.OutOrStdout(), results)
	}

	if failed {
		return NewExitError(ExitCommandError, "one or more days failed to run")
	}
	if regressed {
		return NewExitError(ExitFailure, "recorded answer mismatch")
	}
	return nil
}

// selectDays resolves day-number arguments against the registry.
// No arguments selects every registered day in registry order.
func selectDays(solutions []solver.Solution, args []string) ([]solver.Solution, error) {
	if len(args) == 0 {
		return solutions, nil
	}
	selected := make([]solver.Solution, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("day %q is not a number", arg)
		}
		if day < 1 || day > solver.MaxDay {
			return nil, fmt.Errorf("day %d out of range 1-%d", day, solver.MaxDay)
		}
		sol, err := solver.ByDay(solutions, day)
		if err != nil {
			return nil, err
		}
		selected = append(selected, sol)
	}
	return selected, nil
}
