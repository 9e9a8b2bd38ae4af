package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danieljhkim/stagereslot/internal/manifest"
	"github.com/danieljhkim/stagereslot/internal/stagepath"
)

var (
	// ErrSameStage indicates the base and current stage are identical.
	ErrSameStage = errors.New("base stage and current stage must differ")

	// ErrNoManifest indicates Build was called without a manifest.
	ErrNoManifest = errors.New("manifest is required")
)

// Build generates the redirection plan for moving base to current.
//
// scanned holds the asset files present in the mod folder, already named for
// the current stage (see scan.Rebase). Order matters: it decides the order of
// files that are new to the game.
func Build(m *manifest.Manifest, scanned []string, base, current string) (*RedirectionPlan, error) {
	if m == nil {
		return nil, ErrNoManifest
	}
	if base == current {
		return nil, fmt.Errorf("%w: %q", ErrSameStage, base)
	}

	present := make(map[string]struct{}, len(scanned))
	for _, f := range scanned {
		present[stagepath.Normalize(f)] = struct{}{}
	}
	isPresent := func(p string) bool {
		_, ok := present[p]
		return ok
	}

	plan := NewRedirectionPlan(base, current)
	share := func(from, to string) {
		plan.AddRedirect(from, to)
		if !m.HasFile(to) {
			plan.AddNewFile(to)
		}
	}

	// Stage-scoped files the mod does not replace
	for _, p := range baseStageFiles(m, base) {
		to := stagepath.Substitute(p, base, current)
		if isPresent(to) {
			continue
		}
		share(p, to)
	}

	// Category assets live outside stage/ so the walk above never sees them
	for _, cat := range stagepath.Categories(base, current) {
		for _, pair := range cat.Pairs {
			if isPresent(pair.Base) || isPresent(pair.Current) {
				continue
			}
			share(pair.Base, pair.Current)
		}
	}

	// Content the mod author added
	for _, f := range scanned {
		f = stagepath.Normalize(f)
		if !m.HasFile(f) {
			plan.AddNewFile(f)
		}
	}

	buildNewDirs(plan, m)
	return plan, nil
}

// baseStageFiles returns the manifest files of the base stage's battle and
// normal forms, in manifest order.
func baseStageFiles(m *manifest.Manifest, base string) []string {
	battle := stagepath.StageDir(base) + "/battle/"
	normal := stagepath.StageDir(base) + "/normal/"

	var out []string
	for _, p := range m.Files() {
		if strings.HasPrefix(p, battle) || strings.HasPrefix(p, normal) {
			out = append(out, p)
		}
	}
	return out
}
