package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hdllint/corelint/internal/app/service"
	"github.com/hdllint/corelint/internal/interfaces/cli/output"
	"github.com/hdllint/corelint/pkg/hdllint"
)

// NewFixCommand creates the fix command for auto-fixing violations.
func NewFixCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [files...]",
		Short: "Automatically fix HDL lint violations",
		Long: `Automatically apply each violation's first AutoFix alternative where one exists.

Safety features, mirroring the core's FixEngine (spec §4.7):
- Creates backup files before making changes
- Validates fixed files after writing
- Rolls back to backup if validation or the write itself fails

Examples:
  hdllint fix top.sv
  hdllint fix --dry-run rtl/*.sv
  hdllint fix --no-backup --concurrency 8 rtl/`,
		Args: cobra.ArbitraryArgs,
		RunE: runFix,
	}

	cmd.Flags().Bool("dry-run", false, "Show what would be fixed without making changes")
	cmd.Flags().Bool("no-backup", false, "Skip creating backup files")
	cmd.Flags().Bool("no-validate", false, "Skip validation after fixing")
	cmd.Flags().Bool("stop-on-error", false, "Stop processing on first error")
	cmd.Flags().Int("concurrency", 0, "Number of files to process concurrently (0 = auto)")
	cmd.Flags().StringSlice("ignore", nil, "Ignore files matching these patterns")
	cmd.Flags().Bool("dot", false, "Include hidden files and directories")
	cmd.Flags().Bool("quiet", false, "Suppress progress messages")
	cmd.Flags().Bool("color", true, "Colorize messages")

	return cmd
}

func runFix(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noBackup, _ := cmd.Flags().GetBool("no-backup")
	noValidate, _ := cmd.Flags().GetBool("no-validate")
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	ignore, _ := cmd.Flags().GetStringSlice("ignore")
	includeDot, _ := cmd.Flags().GetBool("dot")
	quiet, _ := cmd.Flags().GetBool("quiet")
	color, _ := cmd.Flags().GetBool("color")

	themed := output.NewThemedOutput().WithColors(color)
	start := time.Now()

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

	if !quiet {
		if dryRun {
			themed.Info("analyzing %d file(s) for potential fixes...", len(files))
		} else {
			themed.Info("fixing %d file(s)...", len(files))
		}
	}

	engineOpts := service.NewFixOptions()
	engineOpts.DryRun = dryRun
	engineOpts.CreateBackups = !noBackup
	engineOpts.ValidateAfterFix = !noValidate
	engineOpts.StopOnError = stopOnError
	engineOpts.MaxConcurrency = concurrency

	result, err := hdllint.Fix(ctx, hdllint.FixOptions{
		LintOptions: hdllint.LintOptions{Files: files, Concurrency: concurrency},
		Engine:      engineOpts,
	})
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}

	if !quiet {
		duration := time.Since(start)
		if dryRun {
			themed.Info("would fix %d violation(s) across %d file(s) (%v)", result.ViolationsFixed, result.FilesFixed, duration)
		} else if result.ViolationsFixed > 0 {
			themed.Success("fixed %d violation(s) across %d file(s) (%v)", result.ViolationsFixed, result.FilesFixed, duration)
		} else {
			themed.Info("no violations could be automatically fixed")
		}
		if result.FilesErrored > 0 {
			fmt.Fprintf(os.Stderr, "%d file(s) had errors during fixing\n", result.FilesErrored)
		}
	}

	if result.FilesErrored > 0 {
		os.Exit(1)
	}
	return nil
}
