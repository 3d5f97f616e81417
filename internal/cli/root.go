// Package cli wires the cobra command tree for the advent binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/advent2024/internal/solver"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the advent CLI.
// The solutions slice is the day registry the subcommands dispatch
// over.
func NewRootCommand(solutions []solver.Solution) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "advent",
		Short: "Advent of Code 2024 puzzle runner",
		Long: `Run Advent of Code 2024 solvers against puzzle inputs.

Answers are compared with a SQLite store of previously recorded
answers, so a refactor that changes an answer shows up as a warning.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file (default advent.yaml if present)")

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts, solutions))
	cmd.AddCommand(NewAnswersCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
