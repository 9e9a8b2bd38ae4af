package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/stagereslot/internal/fsops"
)

// scriptedOperator answers prompts from a fixed script and records output.
type scriptedOperator struct {
	confirms []bool
	answers  []string
	numbers  []int

	prompts   []string
	infos     []string
	successes []string
	warnings  []string
}

var errScriptExhausted = errors.New("script exhausted")

func (o *scriptedOperator) Confirm(question string) (bool, error) {
	o.prompts = append(o.prompts, question)
	if len(o.confirms) == 0 {
		return false, fmt.Errorf("%w: %q", errScriptExhausted, question)
	}
	v := o.confirms[0]
	o.confirms = o.confirms[1:]
	return v, nil
}

func (o *scriptedOperator) Ask(prompt, retry string) (string, error) {
	return o.AskOptional(prompt)
}

func (o *scriptedOperator) AskOptional(prompt string) (string, error) {
	o.prompts = append(o.prompts, prompt)
	if len(o.answers) == 0 {
		return "", fmt.Errorf("%w: %q", errScriptExhausted, prompt)
	}
	v := o.answers[0]
	o.answers = o.answers[1:]
	return v, nil
}

func (o *scriptedOperator) AskNumber(prompt, retry string) (int, error) {
	o.prompts = append(o.prompts, prompt)
	if len(o.numbers) == 0 {
		return 0, fmt.Errorf("%w: %q", errScriptExhausted, prompt)
	}
	v := o.numbers[0]
	o.numbers = o.numbers[1:]
	return v, nil
}

func (o *scriptedOperator) Info(msg string)    { o.infos = append(o.infos, msg) }
func (o *scriptedOperator) Success(msg string) { o.successes = append(o.successes, msg) }
func (o *scriptedOperator) Warn(msg string)    { o.warnings = append(o.warnings, msg) }

// failingFS fails Rename for selected destinations.
type failingFS struct {
	*fsops.RealFS
	failRename map[string]error
}

func (f *failingFS) Rename(oldpath, newpath string) error {
	if err, ok := f.failRename[newpath]; ok {
		return err
	}
	return f.RealFS.Rename(oldpath, newpath)
}

// writeFiles creates each relative path under root with placeholder content.
func writeFiles(t *testing.T, root string, rels ...string) {
	t.Helper()
	for _, rel := range rels {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(rel), 0644))
	}
}

func fileExists(t *testing.T, root, rel string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil
}
