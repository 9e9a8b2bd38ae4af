package planner

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/stagereslot/internal/manifest"
	"github.com/danieljhkim/stagereslot/internal/stagepath"
)

const (
	base    = "dk_waterfall"
	current = "dk_hijinxs"
)

func stageOnly(redirects []Redirect) []Redirect {
	var out []Redirect
	for _, r := range redirects {
		if strings.HasPrefix(r.From, "stage/") {
			out = append(out, r)
		}
	}
	return out
}

func TestBuild_SharesUnreplacedStageFile(t *testing.T) {
	m := manifest.New([]string{"stage/dk_waterfall/battle/a.bin"}, &manifest.DirNode{})

	plan, err := Build(m, nil, base, current)
	require.NoError(t, err)

	assert.Equal(t, []Redirect{
		{From: "stage/dk_waterfall/battle/a.bin", To: "stage/dk_hijinxs/battle/a.bin"},
	}, stageOnly(plan.Redirects))
	require.NotEmpty(t, plan.NewFiles)
	assert.Equal(t, "stage/dk_hijinxs/battle/a.bin", plan.NewFiles[0])
}

func TestBuild_FullPlanForEmptyMod(t *testing.T) {
	m := manifest.New([]string{"stage/dk_waterfall/battle/a.bin"}, &manifest.DirNode{})

	plan, err := Build(m, nil, base, current)
	require.NoError(t, err)

	sounds := stagepath.SoundPaths(current)
	wantFiles := []string{"stage/dk_hijinxs/battle/a.bin"}
	wantFiles = append(wantFiles, sounds...)
	for i := 0; i < stagepath.UIThumbnailCount; i++ {
		wantFiles = append(wantFiles, stagepath.UIPath("replace", i, current))
	}
	wantFiles = append(wantFiles, "effect/stage/dk_hijinxs/ef_dk_hijinxs.eff")
	assert.Equal(t, wantFiles, plan.NewFiles)

	assert.Len(t, plan.Redirects, 1+3+stagepath.UIThumbnailCount+1)
	assert.Equal(t, Redirect{
		From: "effect/stage/dk_waterfall/ef_dk_waterfall.eff",
		To:   "effect/stage/dk_hijinxs/ef_dk_hijinxs.eff",
	}, plan.Redirects[len(plan.Redirects)-1])

	assert.Equal(t, []string{
		"stage/dk_hijinxs/battle",
		"stage/dk_hijinxs",
		"stage/dk_hijinxs/normal/sound",
		"stage/dk_hijinxs/normal",
		"stage/dk_hijinxs/battle/sound",
		"effect/stage/dk_hijinxs",
		"effect/stage",
		"effect",
	}, plan.NewDirs)

	assert.Equal(t, []DirFiles{
		{Dir: "stage/dk_hijinxs/battle", Files: []string{"stage/dk_hijinxs/battle/a.bin"}},
		{Dir: "stage/dk_hijinxs/normal/sound", Files: sounds},
		{Dir: "stage/dk_hijinxs/battle/sound", Files: sounds},
		{Dir: "effect/stage/dk_hijinxs", Files: []string{"effect/stage/dk_hijinxs/ef_dk_hijinxs.eff"}},
	}, plan.NewDirFiles)
}

func TestBuild_ReplacedFileIsNotShared(t *testing.T) {
	m := manifest.New([]string{"stage/dk_waterfall/battle/a.bin"}, nil)

	plan, err := Build(m, []string{"stage/dk_hijinxs/battle/a.bin"}, base, current)
	require.NoError(t, err)

	assert.Empty(t, stageOnly(plan.Redirects))
	_, ok := redirectTarget(plan, "stage/dk_waterfall/battle/a.bin")
	assert.False(t, ok)
	// Supplied by the mod and unknown to the game, so it still needs registering
	assert.Contains(t, plan.NewFiles, "stage/dk_hijinxs/battle/a.bin")
}

func TestBuild_OnlyBattleAndNormalFormsAreShared(t *testing.T) {
	m := manifest.New([]string{
		"stage/dk_waterfall/battle/a.bin",
		"stage/dk_waterfall/normal/b.bin",
		"stage/dk_waterfall/end/c.bin",
		"stage/dk_waterfall_other/normal/d.bin",
		"stage/other/normal/e.bin",
	}, nil)

	plan, err := Build(m, nil, base, current)
	require.NoError(t, err)

	assert.Equal(t, []Redirect{
		{From: "stage/dk_waterfall/battle/a.bin", To: "stage/dk_hijinxs/battle/a.bin"},
		{From: "stage/dk_waterfall/normal/b.bin", To: "stage/dk_hijinxs/normal/b.bin"},
	}, stageOnly(plan.Redirects))
}

func TestBuild_TargetKnownToManifestIsNotNew(t *testing.T) {
	m := manifest.New([]string{
		"stage/dk_waterfall/normal/a.bin",
		"stage/dk_hijinxs/normal/a.bin",
	}, nil)

	plan, err := Build(m, nil, base, current)
	require.NoError(t, err)

	to, ok := redirectTarget(plan, "stage/dk_waterfall/normal/a.bin")
	require.True(t, ok)
	assert.Equal(t, "stage/dk_hijinxs/normal/a.bin", to)
	assert.NotContains(t, plan.NewFiles, "stage/dk_hijinxs/normal/a.bin")
}

func TestBuild_CategoryAssetPresentUnderEitherName(t *testing.T) {
	m := manifest.New(nil, nil)
	scanned := []string{
		// not yet renamed
		"sound/bank/stage/se_stage_dk_waterfall.nus3bank",
		// already renamed
		"ui/replace/stage/stage_2/stage_2_dk_hijinxs.bntx",
		"effect/stage/dk_hijinxs/ef_dk_hijinxs.eff",
	}

	plan, err := Build(m, scanned, base, current)
	require.NoError(t, err)

	_, ok := redirectTarget(plan, "sound/bank/stage/se_stage_dk_waterfall.nus3bank")
	assert.False(t, ok)
	_, ok = redirectTarget(plan, "sound/bank/stage/se_stage_dk_waterfall.nus3audio")
	assert.True(t, ok)

	_, ok = redirectTarget(plan, "ui/replace/stage/stage_2/stage_2_dk_waterfall.bntx")
	assert.False(t, ok)
	_, ok = redirectTarget(plan, "ui/replace/stage/stage_1/stage_1_dk_waterfall.bntx")
	assert.True(t, ok)

	_, ok = redirectTarget(plan, "effect/stage/dk_waterfall/ef_dk_waterfall.eff")
	assert.False(t, ok)
}

func TestBuild_PatchStageUIRedirect(t *testing.T) {
	m := manifest.New(nil, nil)

	plan, err := Build(m, nil, "battlefield_s", "my_field")
	require.NoError(t, err)

	to, ok := redirectTarget(plan, "ui/replace_patch/stage/stage_0/stage_0_BattleFieldS.bntx")
	require.True(t, ok)
	assert.Equal(t, "ui/replace_patch/stage/stage_0/stage_0_my_field.bntx", to)
}

func TestBuild_ModAddedFiles(t *testing.T) {
	m := manifest.New([]string{"stage/dk_waterfall/normal/model/a.numdlb"}, nil)
	scanned := []string{
		"stage/dk_hijinxs/normal/model/a.numdlb",
		"stage/dk_hijinxs/normal/model/extra/b.nutexb",
		"stage/dk_hijinxs/normal/model/extra/c.nutexb",
	}

	plan, err := Build(m, scanned, base, current)
	require.NoError(t, err)

	assert.Contains(t, plan.NewFiles, "stage/dk_hijinxs/normal/model/extra/b.nutexb")
	assert.Contains(t, plan.NewDirs, "stage/dk_hijinxs/normal/model/extra")
	assert.Contains(t, plan.NewDirFiles, DirFiles{
		Dir: "stage/dk_hijinxs/normal/model/extra",
		Files: []string{
			"stage/dk_hijinxs/normal/model/extra/b.nutexb",
			"stage/dk_hijinxs/normal/model/extra/c.nutexb",
		},
	})
}

func TestBuild_BackslashScannedPaths(t *testing.T) {
	m := manifest.New([]string{"stage/dk_waterfall/battle/a.bin"}, nil)

	plan, err := Build(m, []string{`stage\dk_hijinxs\battle\a.bin`}, base, current)
	require.NoError(t, err)
	assert.Empty(t, stageOnly(plan.Redirects))
}

func TestBuild_BaseTreeIsReplicated(t *testing.T) {
	dirs := &manifest.DirNode{Directories: map[string]*manifest.DirNode{
		"stage": {Directories: map[string]*manifest.DirNode{
			"dk_waterfall": {Directories: map[string]*manifest.DirNode{
				"normal": {Directories: map[string]*manifest.DirNode{
					"param": {},
					"model": {},
				}},
				"battle": {},
			}},
		}},
	}}
	m := manifest.New([]string{"stage/dk_waterfall/normal/param/a.prc"}, dirs)

	plan, err := Build(m, nil, base, current)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(plan.NewDirs), 5)
	assert.Equal(t, []string{
		"stage/dk_hijinxs",
		"stage/dk_hijinxs/battle",
		"stage/dk_hijinxs/normal",
		"stage/dk_hijinxs/normal/model",
		"stage/dk_hijinxs/normal/param",
	}, plan.NewDirs[:5])
}

func TestBuild_SingleSegmentDirectoryIsRegistered(t *testing.T) {
	m := manifest.New(nil, nil)

	plan, err := Build(m, []string{"newdir/x.bin", "root.bin"}, base, current)
	require.NoError(t, err)

	assert.Contains(t, plan.NewDirs, "newdir")
	assert.Contains(t, plan.NewDirFiles, DirFiles{Dir: "newdir", Files: []string{"newdir/x.bin"}})

	// Files at the mod root have no directory to register
	assert.Contains(t, plan.NewFiles, "root.bin")
	assert.NotContains(t, plan.NewDirs, ".")
	for _, g := range plan.NewDirFiles {
		assert.NotContains(t, g.Files, "root.bin")
	}
}

func TestBuild_KnownAncestorsAreSkipped(t *testing.T) {
	m := manifest.New([]string{"effect/stage/dk_waterfall/ef_dk_waterfall.eff"}, nil)

	plan, err := Build(m, nil, base, current)
	require.NoError(t, err)

	assert.Contains(t, plan.NewDirs, "effect/stage/dk_hijinxs")
	assert.NotContains(t, plan.NewDirs, "effect/stage")
	assert.NotContains(t, plan.NewDirs, "effect")
}

func TestBuild_UIFilesAreNotGrouped(t *testing.T) {
	m := manifest.New(nil, nil)

	plan, err := Build(m, nil, base, current)
	require.NoError(t, err)

	for _, d := range plan.NewDirs {
		assert.False(t, strings.HasPrefix(d, "ui"), "unexpected ui dir %q", d)
	}
	for _, g := range plan.NewDirFiles {
		assert.False(t, strings.HasPrefix(g.Dir, "ui"), "unexpected ui group %q", g.Dir)
	}
}

func TestBuild_Properties(t *testing.T) {
	files := []string{
		"stage/dk_waterfall/battle/a.bin",
		"stage/dk_waterfall/battle/model/b.numdlb",
		"stage/dk_waterfall/normal/a.bin",
		"stage/dk_waterfall/normal/param/c.prc",
		"effect/stage/dk_waterfall/ef_dk_waterfall.eff",
	}
	files = append(files, stagepath.SoundPaths(base)...)
	files = append(files, stagepath.UIPaths(base)...)
	m := manifest.New(files, nil)

	scanned := []string{
		"stage/dk_hijinxs/battle/a.bin",
		"stage/dk_hijinxs/normal/param/c.prc",
		"stage/dk_hijinxs/normal/param/new.prc",
		"sound/bank/stage/se_stage_dk_hijinxs.nus3audio",
	}
	scannedSet := map[string]bool{}
	for _, f := range scanned {
		scannedSet[f] = true
	}

	plan, err := Build(m, scanned, base, current)
	require.NoError(t, err)

	for _, r := range plan.Redirects {
		assert.True(t, m.HasFile(r.From), "redirect source %q not in manifest", r.From)
		assert.False(t, scannedSet[r.To], "redirect target %q is present on disk", r.To)
	}

	assertUnique(t, plan.NewFiles)
	assertUnique(t, plan.NewDirs)
	froms := make([]string, 0, len(plan.Redirects))
	for _, r := range plan.Redirects {
		froms = append(froms, r.From)
	}
	assertUnique(t, froms)
}

func TestBuild_Deterministic(t *testing.T) {
	dirs := &manifest.DirNode{Directories: map[string]*manifest.DirNode{
		"stage": {Directories: map[string]*manifest.DirNode{
			"dk_waterfall": {Directories: map[string]*manifest.DirNode{
				"a": {}, "b": {}, "c": {}, "d": {}, "e": {},
			}},
		}},
	}}
	m := manifest.New([]string{"stage/dk_waterfall/normal/a.bin"}, dirs)

	first, err := Build(m, []string{"x/y.bin"}, base, current)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Build(m, []string{"x/y.bin"}, base, current)
		require.NoError(t, err)
		assert.Equal(t, first.NewDirs, again.NewDirs)
		assert.Equal(t, first.Redirects, again.Redirects)
	}
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build(manifest.New(nil, nil), nil, "same", "same")
	assert.True(t, errors.Is(err, ErrSameStage))

	_, err = Build(nil, nil, base, current)
	assert.ErrorIs(t, err, ErrNoManifest)
}

func assertUnique(t *testing.T, items []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, it := range items {
		assert.False(t, seen[it], "duplicate entry %q", it)
		seen[it] = true
	}
}
