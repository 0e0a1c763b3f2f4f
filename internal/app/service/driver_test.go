package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdllint/corelint/internal/app/service/parser"
)

func TestDriver_LintSource_NoRulesRegistered(t *testing.T) {
	driver := NewDriver(NewAggregator(NewRegistry()), parser.NewHDLParser(), 2)

	report, err := driver.LintSource("module m;\nendmodule\n", "m.sv")
	require.NoError(t, err)
	assert.Empty(t, report.Violations)
}

func TestDriver_LintFiles_ConcurrentAcrossDocuments(t *testing.T) {
	dir := t.TempDir()
	files := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, "m.sv")
		path = filepath.Join(dir, "mod"+string(rune('a'+i))+".sv")
		require.NoError(t, os.WriteFile(path, []byte("module m;\nendmodule\n"), 0o644))
		files = append(files, path)
	}

	driver := NewDriver(NewAggregator(NewRegistry()), parser.NewHDLParser(), 3)
	reports, err := driver.LintFiles(context.Background(), files)
	require.NoError(t, err)
	assert.Len(t, reports, 5)
}

func TestDriver_LintFiles_MissingFileDoesNotAbortBatch(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.sv")
	require.NoError(t, os.WriteFile(good, []byte("module m;\nendmodule\n"), 0o644))
	missing := filepath.Join(dir, "missing.sv")

	driver := NewDriver(NewAggregator(NewRegistry()), parser.NewHDLParser(), 2)
	reports, err := driver.LintFiles(context.Background(), []string{good, missing})
	require.NoError(t, err)
	assert.Len(t, reports, 2)
}
