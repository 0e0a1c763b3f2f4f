// Package helpers provides fixture-project scaffolding shared by this
// module's integration tests.
package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFile is one file to materialize under a TestProject's base directory.
type TestFile struct {
	Path    string
	Content string
	Mode    os.FileMode
}

// TestProject is a complete temporary project tree.
type TestProject struct {
	Name  string
	Files []TestFile
}

// CreateTestProject writes project's files under a fresh temp directory
// and returns that directory's path.
func CreateTestProject(t testing.TB, project TestProject) string {
	t.Helper()

	baseDir := t.TempDir()
	for _, file := range project.Files {
		fullPath := filepath.Join(baseDir, file.Path)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))

		mode := file.Mode
		if mode == 0 {
			mode = 0o644
		}
		require.NoError(t, os.WriteFile(fullPath, []byte(file.Content), mode))
	}
	return baseDir
}

// HDLSources provides common HDL file bodies for fixture projects.
var HDLSources = struct {
	Valid                   string
	WrongFilename           string
	LongLine                string
	MacroTokenPasteInString string
	EmptyModuleBody         string
}{
	Valid: "module top;\nendmodule\n",

	WrongFilename: "module alpha;\nendmodule : alpha\n",

	LongLine: "module longline;\n  // " + repeatString("x", 110) + "\nendmodule\n",

	MacroTokenPasteInString: "`define GREETING \"hello``world\"\nmodule m;\nendmodule\n",

	EmptyModuleBody: "module stub;\nendmodule\n",
}

func repeatString(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

// WithTempDir runs fn inside a freshly created temp directory, restoring
// the previous working directory afterward.
func WithTempDir(t testing.TB, fn func(tempDir string)) {
	t.Helper()

	tempDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)

	require.NoError(t, os.Chdir(tempDir))
	defer os.Chdir(originalDir)

	fn(tempDir)
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
