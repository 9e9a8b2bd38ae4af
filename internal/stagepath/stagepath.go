// Package stagepath knows the game's stage file layout.
//
// It rewrites stage-scoped paths from one stage identifier to another and
// builds the fixed per-category templates (sound bank, UI thumbnails, effect)
// that live outside the stage/ tree.
//
// All paths handled here are relative and use forward slashes.
package stagepath

import (
	"fmt"
	"regexp"
	"strings"
)

// StageRoot is the first segment of every stage-scoped path.
const StageRoot = "stage"

// UIThumbnailCount is the number of indexed UI thumbnails per stage.
const UIThumbnailCount = 5

// Normalize converts backslashes to forward slashes.
func Normalize(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// Substitute rewrites stage/<from>/<rest> to stage/<to>/<rest>.
// Any other path is returned unchanged (after separator normalization).
func Substitute(p, from, to string) string {
	p = Normalize(p)
	parts := strings.Split(p, "/")
	if len(parts) >= 3 && parts[0] == StageRoot && parts[1] == from {
		parts[1] = to
		return strings.Join(parts, "/")
	}
	return p
}

// StageDir returns stage/<name>.
func StageDir(name string) string {
	return StageRoot + "/" + name
}

// SoundPaths returns the sound bank files of a stage, one per sound extension.
func SoundPaths(name string) []string {
	paths := make([]string, 0, len(soundExts))
	for _, ext := range soundExts {
		paths = append(paths, fmt.Sprintf("sound/bank/stage/se_stage_%s%s", name, ext))
	}
	return paths
}

// IsSoundFor reports whether p is one of the sound bank files of the stage.
func IsSoundFor(name, p string) bool {
	re := regexp.MustCompile(`^sound/bank/stage/se_stage_` + regexp.QuoteMeta(name) + `\.(nus3audio|nus3bank|tonelabel)$`)
	return re.MatchString(p)
}

// UIFolder returns "replace_patch" for stages whose thumbnails ship in the
// patch folder and "replace" otherwise.
func UIFolder(name string) string {
	if patchStages[name] {
		return "replace_patch"
	}
	return "replace"
}

// UIName returns the name used in the stage's thumbnail file names.
func UIName(name string) string {
	if n, ok := uiNames[name]; ok {
		return n
	}
	return name
}

// UIPath builds a thumbnail path for an explicit folder variant and file suffix.
func UIPath(folder string, index int, suffix string) string {
	return fmt.Sprintf("ui/%s/stage/stage_%d/stage_%d_%s.bntx", folder, index, index, suffix)
}

// UIPaths returns the thumbnail paths of a stage.
func UIPaths(name string) []string {
	folder := UIFolder(name)
	uiName := UIName(name)
	paths := make([]string, 0, UIThumbnailCount)
	for i := 0; i < UIThumbnailCount; i++ {
		paths = append(paths, UIPath(folder, i, uiName))
	}
	return paths
}

// IsUI reports whether p belongs to the UI asset tree.
func IsUI(p string) bool {
	return strings.HasPrefix(Normalize(p), "ui/")
}

// EffectPath returns the stage's effect file.
func EffectPath(name string) string {
	return fmt.Sprintf("effect/stage/%s/ef_%s.eff", name, name)
}

// IsEffectFor reports whether p is exactly the stage's effect file.
func IsEffectFor(name, p string) bool {
	return EffectPath(name) == p
}

// Pair is a base-stage path and its current-stage counterpart.
type Pair struct {
	Base    string
	Current string
}

// Category groups the template pairs of one asset category.
type Category struct {
	Name  string
	Pairs []Pair
}

// Category names.
const (
	CategorySound  = "sound"
	CategoryUI     = "ui"
	CategoryEffect = "effect"
)

// Categories returns the sound, UI and effect pairs for a base/current stage.
//
// UI counterparts keep the base stage's folder variant and index; only the
// file suffix switches to the current stage name.
func Categories(base, current string) []Category {
	baseSound := SoundPaths(base)
	curSound := SoundPaths(current)
	sound := Category{Name: CategorySound}
	for i := range baseSound {
		sound.Pairs = append(sound.Pairs, Pair{Base: baseSound[i], Current: curSound[i]})
	}

	folder := UIFolder(base)
	ui := Category{Name: CategoryUI}
	for i, p := range UIPaths(base) {
		ui.Pairs = append(ui.Pairs, Pair{Base: p, Current: UIPath(folder, i, current)})
	}

	effect := Category{
		Name:  CategoryEffect,
		Pairs: []Pair{{Base: EffectPath(base), Current: EffectPath(current)}},
	}

	return []Category{sound, ui, effect}
}

// RenamePairs returns every on-disk rename needed to move a stage from one
// identifier to another. The stage directory itself comes last.
func RenamePairs(from, to string) []Pair {
	pairs := []Pair{{Base: EffectPath(from), Current: EffectPath(to)}}
	oldSound := SoundPaths(from)
	newSound := SoundPaths(to)
	for i := range oldSound {
		pairs = append(pairs, Pair{Base: oldSound[i], Current: newSound[i]})
	}
	for i := 0; i < UIThumbnailCount; i++ {
		for _, folder := range []string{"replace", "replace_patch"} {
			pairs = append(pairs, Pair{Base: UIPath(folder, i, from), Current: UIPath(folder, i, to)})
		}
	}
	pairs = append(pairs, Pair{Base: StageDir(from), Current: StageDir(to)})
	return pairs
}
