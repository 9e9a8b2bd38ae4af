// Package engine provides the orchestration for stagereslot runs.
//
// The engine package sits between the CLI and the lower-level packages. It
// discovers the stage being reslotted, asks the operator for stage names,
// builds the redirection plan and writes the mod's config, then renames the
// stage's files and cleans up directories the rename left empty.
//
// Key components:
//   - Engine: Main orchestrator that coordinates a run
//   - Operator: Prompts and progress output, implemented by the CLI
//   - RenameStage: Best-effort rename of a stage's files on disk
//   - RemoveEmptyDirs: Fixed-point removal of empty directories
package engine

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/stagereslot/internal/fsops"
	"github.com/danieljhkim/stagereslot/internal/stagepath"
)

// Engine orchestrates all stagereslot operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs fsops.FS
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS) *Engine {
	return &Engine{fs: fs}
}

// FindStage returns the name of the single stage directory under root/stage.
//
// Reslotting several stages at once is not supported, and shared folders
// cannot be redirected yet, so exactly one stage directory must be present.
func (e *Engine) FindStage(root string) (string, error) {
	stageDir := filepath.Join(root, stagepath.StageRoot)

	exists, err := e.fs.Exists(stageDir)
	if err != nil {
		return "", fmt.Errorf("failed to check stage folder: %w", err)
	}
	if !exists {
		return "", ErrNoStageFolder
	}

	entries, err := e.fs.ReadDir(stageDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoStageFolder, err)
	}

	var stages []string
	for _, entry := range entries {
		if entry.IsDir() {
			stages = append(stages, entry.Name())
		}
	}
	if len(stages) != 1 {
		return "", fmt.Errorf("%w (found %d)", ErrMultipleStages, len(stages))
	}
	return stages[0], nil
}
