// Command hdllint is the CLI driver built around the core lint-execution
// framework: it owns file I/O and argument parsing (spec §1's explicit
// "command-line driver" exclusion), wiring cobra subcommands onto the
// registry/aggregator/driver exposed by pkg/hdllint.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hdllint/corelint/internal/interfaces/cli/commands"
	"github.com/hdllint/corelint/pkg/hdllint"
)

var (
	commit = "none"
	date   = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "hdllint",
		Short:   "Lint Verilog/SystemVerilog HDL source files",
		Long:    `hdllint is a rule-based static analyzer for hardware description language source files.`,
		Version: fmt.Sprintf("%s (commit: %s, date: %s)", hdllint.GetVersion(), commit, date),
	}

	rootCmd.AddCommand(
		commands.NewLintCommand(),
		commands.NewFixCommand(),
		commands.NewRulesCommand(),
		commands.NewWatchCommand(),
		commands.NewVersionCommand(commit, date),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}
