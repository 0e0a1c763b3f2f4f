package hdllint_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdllint/corelint/pkg/hdllint"
)

func TestLintSource_FlagsModuleFilenameMismatch(t *testing.T) {
	report, err := hdllint.LintSource(context.Background(), "module adder(input a);\nendmodule\n", "counter.sv", hdllint.LintOptions{})
	require.NoError(t, err)
	require.Len(t, report.Violations, 1)
	assert.Contains(t, report.Violations[0].Message, "adder")
}

func TestLintSource_NoViolationsWhenNameMatches(t *testing.T) {
	report, err := hdllint.LintSource(context.Background(), "module counter(input clk);\nendmodule\n", "counter.sv", hdllint.LintOptions{})
	require.NoError(t, err)
	assert.Empty(t, report.Violations)
}

func TestLintSource_RespectsDisabledRules(t *testing.T) {
	opts := hdllint.LintOptions{DisabledRules: []string{"module-filename"}}
	report, err := hdllint.LintSource(context.Background(), "module adder(input a);\nendmodule\n", "counter.sv", opts)
	require.NoError(t, err)
	assert.Empty(t, report.Violations)
}

func TestLintSource_EnabledRulesTurnsOnADisabledByDefaultRule(t *testing.T) {
	report, err := hdllint.LintSource(context.Background(), "module stub;\nendmodule\n", "stub.sv", hdllint.LintOptions{})
	require.NoError(t, err)
	assert.Empty(t, report.Violations)

	opts := hdllint.LintOptions{EnabledRules: []string{"empty-module-body"}}
	report, err = hdllint.LintSource(context.Background(), "module stub;\nendmodule\n", "stub.sv", opts)
	require.NoError(t, err)
	require.Len(t, report.Violations, 1)
	assert.Contains(t, report.Violations[0].Message, "stub")
}

func TestLint_MultipleFilesOnDisk(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "counter.sv")
	bad := filepath.Join(dir, "counter2.sv")
	require.NoError(t, os.WriteFile(good, []byte("module counter(input clk);\nendmodule\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("module adder(input a);\nendmodule\n"), 0o644))

	result, err := hdllint.Lint(context.Background(), hdllint.LintOptions{Files: []string{good, bad}})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalFiles)
	assert.Equal(t, 1, result.TotalViolations)
}

func TestFix_RenamesModuleToMatchFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "counter.sv")
	require.NoError(t, os.WriteFile(path, []byte("module adder(input a);\nendmodule\n"), 0o644))

	engine := hdllint.FixOptions{LintOptions: hdllint.LintOptions{Files: []string{path}}}
	result, err := hdllint.Fix(context.Background(), engine)
	require.NoError(t, err)
	assert.Equal(t, 1, result.FilesFixed)

	fixed, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(fixed), "module counter")
}
