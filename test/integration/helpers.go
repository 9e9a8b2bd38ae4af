package integration

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/stagereslot/internal/engine"
	"github.com/danieljhkim/stagereslot/internal/fsops"
	"github.com/danieljhkim/stagereslot/internal/manifest"
)

// testOperator answers prompts in order and collects everything reported.
type testOperator struct {
	confirms []bool
	answers  []string
	numbers  []int
	warnings []string
}

func (o *testOperator) Confirm(question string) (bool, error) {
	if len(o.confirms) == 0 {
		return false, fmt.Errorf("unexpected question %q", question)
	}
	v := o.confirms[0]
	o.confirms = o.confirms[1:]
	return v, nil
}

func (o *testOperator) Ask(prompt, retry string) (string, error) { return o.AskOptional(prompt) }

func (o *testOperator) AskOptional(prompt string) (string, error) {
	if len(o.answers) == 0 {
		return "", fmt.Errorf("unexpected prompt %q", prompt)
	}
	v := o.answers[0]
	o.answers = o.answers[1:]
	return v, nil
}

func (o *testOperator) AskNumber(prompt, retry string) (int, error) {
	if len(o.numbers) == 0 {
		return 0, fmt.Errorf("unexpected prompt %q", prompt)
	}
	v := o.numbers[0]
	o.numbers = o.numbers[1:]
	return v, nil
}

func (o *testOperator) Info(string)     {}
func (o *testOperator) Success(string)  {}
func (o *testOperator) Warn(msg string) { o.warnings = append(o.warnings, msg) }

// vanillaFiles is a small base game with one battle stage.
var vanillaFiles = []string{
	"stage/dk_waterfall/battle/model/stc_a/model.numdlb",
	"stage/dk_waterfall/battle/model/stc_a/tex.nutexb",
	"stage/dk_waterfall/battle/param/dk_waterfall.stprm",
	"stage/dk_waterfall/normal/model/stc_a/model.numdlb",
	"stage/dk_waterfall/normal/model/stc_a/tex.nutexb",
	"stage/dk_waterfall/normal/param/dk_waterfall.stprm",
	"stage/battlefield/normal/model/bf.numdlb",
	"sound/bank/stage/se_stage_dk_waterfall.nus3audio",
	"sound/bank/stage/se_stage_dk_waterfall.nus3bank",
	"sound/bank/stage/se_stage_dk_waterfall.tonelabel",
	"effect/stage/dk_waterfall/ef_dk_waterfall.eff",
	"ui/replace/stage/stage_0/stage_0_dk_waterfall.bntx",
	"ui/replace/stage/stage_1/stage_1_dk_waterfall.bntx",
}

// writeManifest writes a manifest for files, deriving the directory tree from them.
func writeManifest(t *testing.T, files []string) string {
	t.Helper()
	tree := &manifest.DirNode{}
	for _, f := range files {
		node := tree
		for _, seg := range strings.Split(path.Dir(f), "/") {
			if node.Directories == nil {
				node.Directories = map[string]*manifest.DirNode{}
			}
			child, ok := node.Directories[seg]
			if !ok {
				child = &manifest.DirNode{}
				node.Directories[seg] = child
			}
			node = child
		}
	}

	data, err := json.Marshal(map[string]any{"file_array": files, "dirs": tree})
	require.NoError(t, err)

	p := filepath.Join(t.TempDir(), "dir_info_with_files_trimmed.json")
	require.NoError(t, os.WriteFile(p, data, 0644))
	return p
}

// buildMod creates a mod folder holding files.
func buildMod(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, rel := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(rel), 0644))
	}
	return root
}

func exists(root, rel string) bool {
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil
}

func newEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS())
}
