package planner

import (
	"path"

	"github.com/danieljhkim/stagereslot/internal/manifest"
	"github.com/danieljhkim/stagereslot/internal/stagepath"
)

// buildNewDirs fills NewDirs and NewDirFiles from the plan's new files.
func buildNewDirs(plan *RedirectionPlan, m *manifest.Manifest) {
	// Stage dirs mostly mirror their file locations; replicating the whole
	// base tree keeps directories that no new file references.
	for _, d := range baseDirInfos(m, plan.BaseStage, plan.CurrentStage) {
		plan.AddNewDir(d)
	}

	currentDir := stagepath.StageDir(plan.CurrentStage)
	soundNormal := currentDir + "/normal/sound"
	soundBattle := currentDir + "/battle/sound"

	for _, f := range plan.NewFiles {
		switch {
		case stagepath.IsSoundFor(plan.CurrentStage, f):
			plan.AddDirFile(soundNormal, f)
			plan.AddDirFile(soundBattle, f)
			addDirWithParents(plan, m, soundNormal)
			addDirWithParents(plan, m, soundBattle)
		case stagepath.IsUI(f):
			continue
		default:
			parent := path.Dir(f)
			if parent != "." {
				plan.AddDirFile(parent, f)
			}
			addDirWithParents(plan, m, parent)
		}
	}
}

// baseDirInfos walks the manifest tree under stage/<base> and re-roots every
// directory at stage/<current>. A base stage missing from the tree yields nothing.
func baseDirInfos(m *manifest.Manifest, base, current string) []string {
	node := m.Lookup(stagepath.StageRoot, base)
	if node == nil {
		return nil
	}
	return manifest.Walk(node, stagepath.StageDir(current))
}

// addDirWithParents registers dir and each of its ancestors, skipping any that
// is already registered or is a known manifest prefix. Ascending continues
// past skipped directories, so single-segment roots are still considered.
func addDirWithParents(plan *RedirectionPlan, m *manifest.Manifest, dir string) {
	for d := dir; d != "" && d != "." && d != "/"; d = path.Dir(d) {
		if !plan.HasNewDir(d) && !m.IsKnownPrefix(d) {
			plan.AddNewDir(d)
		}
	}
}
