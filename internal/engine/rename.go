package engine

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/stagereslot/internal/stagepath"
)

// RenameStage renames a stage's files on disk from one stage name to another.
//
// Every rename is attempted: a missing source or an existing destination
// skips that step, and a failing rename is recorded without stopping the
// remaining ones. Re-running after a partial run only moves what is left.
func (e *Engine) RenameStage(root, from, to string) *RenameResult {
	result := &RenameResult{Steps: []RenameStep{}}
	for _, pair := range stagepath.RenamePairs(from, to) {
		step := RenameStep{
			From: filepath.Join(root, filepath.FromSlash(pair.Base)),
			To:   filepath.Join(root, filepath.FromSlash(pair.Current)),
		}

		done, err := e.safeRename(step.From, step.To)
		switch {
		case err != nil:
			step.Outcome = RenameFailed
			step.Err = err
		case done:
			step.Outcome = RenameDone
			result.Done++
		default:
			step.Outcome = RenameSkipped
		}
		result.Steps = append(result.Steps, step)
	}
	return result
}

// safeRename moves src to dst unless src is missing or dst already exists.
func (e *Engine) safeRename(src, dst string) (bool, error) {
	exists, err := e.fs.Exists(src)
	if err != nil {
		return false, fmt.Errorf("failed to check source: %w", err)
	}
	if !exists {
		return false, nil
	}

	exists, err = e.fs.Exists(dst)
	if err != nil {
		return false, fmt.Errorf("failed to check destination: %w", err)
	}
	if exists {
		return false, nil
	}

	if err := e.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return false, fmt.Errorf("failed to create parent directory: %w", err)
	}
	if err := e.fs.Rename(src, dst); err != nil {
		return false, fmt.Errorf("failed to rename: %w", err)
	}
	return true, nil
}
