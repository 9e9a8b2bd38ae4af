package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/stagereslot/internal/manifest"
	"github.com/danieljhkim/stagereslot/internal/modcfg"
	"github.com/danieljhkim/stagereslot/internal/planner"
	"github.com/danieljhkim/stagereslot/internal/scan"
	"github.com/danieljhkim/stagereslot/internal/stagepath"
)

// Run reslots the single stage found under req.Root.
//
// The steps are:
//  1. Find the stage folder and ask whether it was already renamed
//  2. Ask for the other stage name and validate both
//  3. Load the manifest, scan the mod and build the redirection plan
//  4. Write config.json
//  5. Rename the stage's files unless already renamed
//  6. Remove empty directories
//  7. Optionally write the stage name xmsbt and the database json
func (e *Engine) Run(ctx context.Context, req *RunRequest, op Operator) (*RunResult, error) {
	detected, err := e.FindStage(req.Root)
	if err != nil {
		return nil, err
	}
	op.Info("Found stage folder: " + detected)

	result := &RunResult{}
	result.AlreadyRenamed, err = op.Confirm("Have you already renamed the files to the new stage name?")
	if err != nil {
		return nil, err
	}

	if result.AlreadyRenamed {
		result.CurrentStage = detected
		result.BaseStage, err = op.Ask("Enter the base stage to redirect (e.g., dk_waterfall): ",
			"No base stage provided. Please input a proper stage name.")
	} else {
		result.BaseStage = detected
		result.CurrentStage, err = op.Ask("Enter your new stage name (e.g., dk_hijinxs): ",
			"No new stage name was provided. Please input a proper stage name.")
	}
	if err != nil {
		return nil, err
	}

	if err := e.validateStages(result.BaseStage, result.CurrentStage); err != nil {
		return nil, err
	}

	m, err := manifest.Load(req.ManifestPath)
	if err != nil {
		return nil, err
	}

	scanned, err := scan.Files(ctx, req.Root)
	if err != nil {
		return nil, err
	}
	op.Info(fmt.Sprintf("Scanned %d asset files", len(scanned)))
	if !result.AlreadyRenamed {
		// the plan compares against the names the files will have once renamed
		scanned = scan.Rebase(scanned, result.BaseStage, result.CurrentStage)
	}

	result.Plan, err = planner.Build(m, scanned, result.BaseStage, result.CurrentStage)
	if err != nil {
		return nil, err
	}

	result.ConfigPath, err = modcfg.WriteConfig(e.fs, req.Root, modcfg.ConfigFromPlan(result.Plan))
	if err != nil {
		return nil, err
	}
	op.Success("Config.json updated")

	if !result.AlreadyRenamed {
		result.Renames = e.RenameStage(req.Root, result.BaseStage, result.CurrentStage)
		for _, step := range result.Renames.Failed() {
			op.Warn(fmt.Sprintf("Failed to rename %s to %s: %v. File must be manually renamed!", step.From, step.To, step.Err))
		}
		op.Success(fmt.Sprintf("Stage files renamed from %s to %s", result.BaseStage, result.CurrentStage))
	}

	result.RemovedDirs, err = e.RemoveEmptyDirs(req.Root)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := e.promptStageName(req.Root, result, op); err != nil {
		return nil, err
	}
	if err := e.promptDatabase(req.Root, result, op); err != nil {
		return nil, err
	}

	return result, nil
}

// validateStages rejects stage names that cannot be used as path segments
// and a reslot onto the same stage.
func (e *Engine) validateStages(base, current string) error {
	for _, name := range []string{base, current} {
		if err := e.fs.ValidateIdentifier(name); err != nil {
			return fmt.Errorf("%w: stage %q: %v", ErrValidation, name, err)
		}
		if err := e.fs.ValidateRelPath(stagepath.StageDir(name)); err != nil {
			return fmt.Errorf("%w: stage %q: %v", ErrValidation, name, err)
		}
	}
	if base == current {
		return fmt.Errorf("%w: %s", planner.ErrSameStage, base)
	}
	return nil
}

func (e *Engine) promptStageName(root string, result *RunResult, op Operator) error {
	ok, err := op.Confirm("Do you want to generate a xmsbt file (for the stage's in-game name)?\n" +
		"Note that this will overwrite your current msg_name.xmsbt if it's present.")
	if err != nil || !ok {
		return err
	}

	name, err := op.Ask("Enter the stage's display name: ", "No name was entered, please enter a name")
	if err != nil {
		return err
	}

	result.XMSBTPath, err = modcfg.WriteStageName(e.fs, root, result.CurrentStage, name)
	if err != nil {
		return err
	}
	op.Success("File written to " + result.XMSBTPath)
	return nil
}

func (e *Engine) promptDatabase(root string, result *RunResult, op Operator) error {
	ok, err := op.Confirm(fmt.Sprintf("Do you want to generate a database json for your stage?\n"+
		"It will be named %s.json in the database folder.", result.CurrentStage))
	if err != nil || !ok {
		return err
	}

	var opts modcfg.DatabaseOptions
	opts.BGMSetID, err = op.AskOptional("Type in the bgm name that will be used (or leave blank to use default): ")
	if err != nil {
		return err
	}
	if opts.BGMSetID != "" {
		opts.BGMSettingNo, err = op.AskNumber("Enter the playlist number to use: ",
			"Input was not a number. Please enter a valid number")
		if err != nil {
			return err
		}
	}
	opts.SeriesID, err = op.AskOptional("Type in the series name that will be used (or leave blank to use default): ")
	if err != nil {
		return err
	}

	db := modcfg.NewDatabase(result.BaseStage, result.CurrentStage, opts)
	result.DatabasePath, err = modcfg.WriteDatabase(e.fs, root, result.CurrentStage, db)
	if err != nil {
		return err
	}
	op.Success("File written to " + result.DatabasePath)
	return nil
}
