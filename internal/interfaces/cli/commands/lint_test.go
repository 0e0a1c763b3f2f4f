package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempHDL(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCollectFiles_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	sv := writeTempHDL(t, dir, "top.sv", "module top; endmodule\n")
	writeTempHDL(t, dir, "notes.txt", "not HDL\n")

	files, err := collectFiles([]string{dir}, nil, false)
	require.NoError(t, err)
	assert.Equal(t, []string{sv}, files)
}

func TestCollectFiles_HonorsIgnore(t *testing.T) {
	dir := t.TempDir()
	writeTempHDL(t, dir, "keep.sv", "module keep; endmodule\n")
	writeTempHDL(t, dir, "skip.sv", "module skip; endmodule\n")

	files, err := collectFiles([]string{dir}, []string{"skip.sv"}, false)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "keep.sv", filepath.Base(files[0]))
}

func TestCollectFiles_SkipsDotfilesUnlessRequested(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".hidden"), 0o755))
	writeTempHDL(t, dir, filepath.Join(".hidden", "x.sv"), "module x; endmodule\n")
	writeTempHDL(t, dir, "visible.sv", "module visible; endmodule\n")

	files, err := collectFiles([]string{dir}, nil, false)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "visible.sv", filepath.Base(files[0]))

	filesWithDot, err := collectFiles([]string{dir}, nil, true)
	require.NoError(t, err)
	assert.Len(t, filesWithDot, 2)
}

func TestNewLintCommand_RunsOverTempFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTempHDL(t, dir, "m.sv", "module m; endmodule\n")

	cmd := NewLintCommand()
	cmd.SetArgs([]string{"--quiet", path})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.Execute()
	require.NoError(t, err)
}
