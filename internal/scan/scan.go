// Package scan lists the game asset files present in a mod folder.
package scan

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/danieljhkim/stagereslot/internal/stagepath"
)

// Files walks root and returns the relative, slash-separated paths of every
// regular file whose extension the base game knows. Other files are ignored.
// The result is sorted so later passes see a stable order.
func Files(ctx context.Context, root string) ([]string, error) {
	root = filepath.Clean(root)

	files := make([]string, 0, 128)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !stagepath.IsAllowed(rel) {
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// Rebase rewrites stage-scoped paths from one stage name to another.
// Paths outside stage/<from>/ are kept as they are.
func Rebase(files []string, from, to string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = stagepath.Substitute(f, from, to)
	}
	return out
}
