package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hdllint/corelint/internal/app/service/parser"
	"github.com/hdllint/corelint/internal/domain/value"
	"github.com/hdllint/corelint/internal/interfaces/cli/output"
	"github.com/hdllint/corelint/pkg/hdllint"
)

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [files...]",
		Short: "Lint HDL source files",
		Long: `Lint one or more HDL (Verilog/SystemVerilog) files against the bundled rules.

Examples:
  hdllint lint top.sv
  hdllint lint rtl/*.sv
  hdllint lint --format json --output results.json rtl/`,
		Args: cobra.ArbitraryArgs,
		RunE: runLint,
	}

	cmd.Flags().StringSlice("ignore", nil, "Ignore files matching these patterns")
	cmd.Flags().Bool("dot", false, "Include hidden files and directories")
	cmd.Flags().StringToString("config", nil, "Per-rule configuration, rule=option:value;...")
	cmd.Flags().StringSlice("disable", nil, "Disable these rules")
	cmd.Flags().StringSlice("enable", nil, "Enable these rules even if disabled by default")
	cmd.Flags().String("format", "text", "Output format: text or json")
	cmd.Flags().String("output", "", "Write diagnostics to this file instead of stdout")
	cmd.Flags().Bool("color", true, "Colorize text output")
	cmd.Flags().Bool("quiet", false, "Suppress progress messages")
	cmd.Flags().Int("concurrency", 0, "Number of files to lint concurrently (0 = auto)")

	return cmd
}

func runLint(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ignore, _ := cmd.Flags().GetStringSlice("ignore")
	includeDot, _ := cmd.Flags().GetBool("dot")
	ruleConfig, _ := cmd.Flags().GetStringToString("config")
	disabled, _ := cmd.Flags().GetStringSlice("disable")
	enabled, _ := cmd.Flags().GetStringSlice("enable")
	format, _ := cmd.Flags().GetString("format")
	outputFile, _ := cmd.Flags().GetString("output")
	color, _ := cmd.Flags().GetBool("color")
	quiet, _ := cmd.Flags().GetBool("quiet")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	files, err := collectFiles(args, ignore, includeDot)
	if err != nil {
		return fmt.Errorf("collect files: %w", err)
	}
	if len(files) == 0 {
		if !quiet {
			fmt.Fprintln(os.Stderr, "no HDL files found")
		}
		return nil
	}

	themed := output.NewThemedOutput().WithColors(color)
	if !quiet {
		themed.Info("linting %d file(s)...", len(files))
	}

	result, err := hdllint.Lint(ctx, hdllint.LintOptions{
		Files:         files,
		RuleConfig:    ruleConfig,
		DisabledRules: disabled,
		EnabledRules:  enabled,
		Concurrency:   concurrency,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	diags, err := renderDiagnostics(ctx, result, files)
	if err != nil {
		return err
	}

	dest := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("open output file: %w", err)
		}
		defer f.Close()
		dest = f
	}
	themedOut := output.NewThemedOutput().WithWriter(dest).WithColors(color && outputFile == "")

	if format == "json" {
		if err := themedOut.PrintJSON(diags); err != nil {
			return fmt.Errorf("write json output: %w", err)
		}
	} else {
		themedOut.PrintText(diags)
	}

	if !quiet {
		if len(diags) == 0 {
			themed.Success("no violations found")
		} else {
			themed.Info("%d violation(s) found", len(diags))
		}
	}

	if len(diags) > 0 {
		os.Exit(1)
	}
	return nil
}

// renderDiagnostics re-parses each linted file with the built-in parser
// collaborator to recover the line table each report's byte-offset
// anchors need resolving against (spec §6: diagnostics carry 1-based
// line/column derived from the line table, which LintReport itself does
// not retain once the pipeline has run).
func renderDiagnostics(_ context.Context, result *hdllint.LintResult, files []string) ([]output.Diagnostic, error) {
	p := parser.NewHDLParser()
	var diags []output.Diagnostic
	for _, filename := range files {
		report, ok := result.Reports[filename]
		if !ok {
			continue
		}
		content, err := os.ReadFile(filename)
		if err != nil {
			diags = append(diags, output.Diagnostic{File: filename, Severity: value.SeverityError, Message: err.Error()})
			continue
		}
		view, err := p.Parse(string(content), filename)
		if err != nil {
			diags = append(diags, output.Diagnostic{File: filename, Severity: value.SeverityError, Message: err.Error()})
			continue
		}
		diags = append(diags, output.DiagnosticsFromReport(report, view)...)
	}
	return diags, nil
}
