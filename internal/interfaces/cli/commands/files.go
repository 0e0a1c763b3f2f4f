package commands

import (
	"os"
	"path/filepath"
	"strings"
)

// hdlExtensions are the file suffixes collectFiles treats as lintable HDL
// source.
var hdlExtensions = []string{".v", ".sv", ".svh"}

func isHDLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range hdlExtensions {
		if ext == want {
			return true
		}
	}
	return false
}

// collectFiles expands args (files or directories) into a flat list of
// HDL source files, skipping anything matching an ignore glob and,
// unless includeDot is set, any dotfile/dot-directory found while
// walking a directory. Arguments keep the order given; files inside a
// directory come in filepath.Walk's lexical order. The list as a whole
// is not sorted.
func collectFiles(args []string, ignore []string, includeDot bool) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	matchesIgnore := func(path string) bool {
		for _, pattern := range ignore {
			if ok, _ := filepath.Match(pattern, path); ok {
				return true
			}
			if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
				return true
			}
		}
		return false
	}

	walk := func(root string) error {
		return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			base := filepath.Base(path)
			if !includeDot && strings.HasPrefix(base, ".") && path != root {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if info.IsDir() {
				return nil
			}
			if !isHDLFile(path) || matchesIgnore(path) {
				return nil
			}
			add(path)
			return nil
		})
	}

	if len(args) == 0 {
		if err := walk("."); err != nil {
			return nil, err
		}
		return files, nil
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			if err := walk(arg); err != nil {
				return nil, err
			}
			continue
		}
		if !matchesIgnore(arg) {
			add(arg)
		}
	}
	return files, nil
}
