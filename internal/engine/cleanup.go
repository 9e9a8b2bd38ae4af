package engine

import (
	"fmt"
	"path/filepath"
)

// RemoveEmptyDirs removes every empty directory below root and returns how
// many were removed. Root itself is kept.
//
// Removal is retried in passes until a pass removes nothing, so a directory
// that only held empty directories goes once its children are gone.
func (e *Engine) RemoveEmptyDirs(root string) (int, error) {
	dirs, err := e.listDirs(root)
	if err != nil {
		return 0, err
	}

	removed := 0
	for {
		progress := false
		for _, d := range dirs {
			if err := e.fs.Remove(d); err == nil {
				removed++
				progress = true
			}
		}
		if !progress {
			return removed, nil
		}
	}
}

// listDirs returns every directory below root, parents before children.
func (e *Engine) listDirs(root string) ([]string, error) {
	entries, err := e.fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		p := filepath.Join(root, entry.Name())
		dirs = append(dirs, p)
		sub, err := e.listDirs(p)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, sub...)
	}
	return dirs, nil
}
