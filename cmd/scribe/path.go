package main

import (
	"path/filepath"
	"strings"
)

// displayPath rewrites an absolute note path relative to wd for display.
// Paths under wd get a "./" prefix, paths elsewhere a "../" chain.
// The absolute form is kept when wd is unknown or the file sits
// directly under the filesystem root.
func displayPath(path, wd string) string {
	if wd == "" {
		return path
	}

	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		if filepath.Dir(path) == string(filepath.Separator) {
			return path
		}
		return rel
	}

	return "./" + rel
}
