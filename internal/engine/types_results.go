package engine

import "github.com/danieljhkim/stagereslot/internal/planner"

// RenameOutcome describes what happened to one rename pair.
type RenameOutcome string

const (
	RenameDone    RenameOutcome = "renamed"
	RenameSkipped RenameOutcome = "skipped"
	RenameFailed  RenameOutcome = "failed"
)

// RenameStep is one attempted rename.
type RenameStep struct {
	From    string
	To      string
	Outcome RenameOutcome

	// Err is set when Outcome is RenameFailed
	Err error
}

// RenameResult represents the result of renaming a stage's files.
type RenameResult struct {
	// Steps holds every pair in the order it was attempted
	Steps []RenameStep

	// Done is the number of pairs actually renamed
	Done int
}

// Failed returns the steps whose rename failed.
func (r *RenameResult) Failed() []RenameStep {
	var failed []RenameStep
	for _, s := range r.Steps {
		if s.Outcome == RenameFailed {
			failed = append(failed, s)
		}
	}
	return failed
}

// RunResult represents the result of a reslot run.
type RunResult struct {
	// BaseStage is the vanilla stage being replaced
	BaseStage string

	// CurrentStage is the mod's new stage name
	CurrentStage string

	// AlreadyRenamed is true when the mod's files already used CurrentStage
	AlreadyRenamed bool

	// Plan is the redirection plan written to config.json
	Plan *planner.RedirectionPlan

	// ConfigPath is where config.json was written
	ConfigPath string

	// Renames is nil when the files were already renamed
	Renames *RenameResult

	// RemovedDirs is the number of empty directories removed
	RemovedDirs int

	// XMSBTPath is empty unless a stage name file was written
	XMSBTPath string

	// DatabasePath is empty unless a database file was written
	DatabasePath string
}
