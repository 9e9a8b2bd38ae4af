package engine

import "errors"

var (
	// ErrNoStageFolder indicates the mod root has no stage/ directory.
	ErrNoStageFolder = errors.New("the selected folder does not have any stages to redirect")

	// ErrMultipleStages indicates stage/ does not hold exactly one stage directory.
	ErrMultipleStages = errors.New("only a single folder is supported in the stage folder, ensure only the stage you wish to reslot is present")

	// ErrValidation indicates an operator-supplied value was rejected.
	ErrValidation = errors.New("validation failed")
)
