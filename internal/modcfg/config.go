// Package modcfg writes the files a reslotted stage mod ships with:
// the redirection config, the stage display-name message file and the
// stage database record.
package modcfg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/danieljhkim/stagereslot/internal/fsops"
	"github.com/danieljhkim/stagereslot/internal/planner"
)

// ConfigFile is the redirection config's name at the mod root.
const ConfigFile = "config.json"

// Config is the mod loader's redirection config. Every mapping keeps insertion order.
type Config struct {
	// ShareToVanilla maps base-game paths to the paths that reuse them
	ShareToVanilla *orderedmap.OrderedMap[string, string] `json:"share_to_vanilla"`

	// NewDirFiles lists new files per directory
	NewDirFiles *orderedmap.OrderedMap[string, []string] `json:"new-dir-files"`

	// NewDirInfos lists new directories
	NewDirInfos []string `json:"new-dir-infos"`
}

// NewConfig creates an empty Config.
func NewConfig() *Config {
	return &Config{
		ShareToVanilla: orderedmap.New[string, string](),
		NewDirFiles:    orderedmap.New[string, []string](),
		NewDirInfos:    []string{},
	}
}

// ConfigFromPlan copies a plan into a Config.
func ConfigFromPlan(plan *planner.RedirectionPlan) *Config {
	c := NewConfig()
	for _, r := range plan.Redirects {
		c.ShareToVanilla.Set(r.From, r.To)
	}
	for _, g := range plan.NewDirFiles {
		files := append([]string{}, g.Files...)
		c.NewDirFiles.Set(g.Dir, files)
	}
	c.NewDirInfos = append(c.NewDirInfos, plan.NewDirs...)
	return c
}

// Encode renders the config as indented JSON.
func (c *Config) Encode() ([]byte, error) {
	return encodeIndented(c)
}

// WriteConfig writes config.json at the mod root, replacing any existing one.
func WriteConfig(fs fsops.FS, root string, c *Config) (string, error) {
	data, err := c.Encode()
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	path := filepath.Join(root, ConfigFile)
	if err := fs.AtomicWrite(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// encodeIndented renders v with two-space indentation and no trailing newline.
func encodeIndented(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
