// Command advent runs Advent of Code 2024 day solvers and tracks
// their answers in a SQLite store.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/advent2024/internal/cli"
	"github.com/roach88/advent2024/internal/days"
)

func main() {
	cmd := cli.NewRootCommand(days.All())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
