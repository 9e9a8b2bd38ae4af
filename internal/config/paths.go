// Package config resolves the filesystem paths a stagereslot run works with.
//
// The manifest defaults to dir_info_with_files_trimmed.json next to the
// executable so the tool can ship as a single folder. It can be overridden
// with the --base flag or the STAGERESLOT_MANIFEST environment variable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ManifestEnv overrides the default manifest location.
	ManifestEnv = "STAGERESLOT_MANIFEST"

	// DefaultManifestName is the manifest file shipped next to the executable.
	DefaultManifestName = "dir_info_with_files_trimmed.json"
)

// Paths contains all the filesystem paths used by a run.
type Paths struct {
	// Root is the absolute path of the mod folder
	Root string

	// Manifest is the base-game manifest json
	Manifest string
}

// ResolvePaths returns the paths for the mod at root.
// Manifest precedence is:
// - manifestFlag, when non-empty
// - STAGERESLOT_MANIFEST
// - DefaultManifestName in the executable's directory
func ResolvePaths(root, manifestFlag string) (*Paths, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve mod root: %w", err)
	}

	manifest := manifestFlag
	if manifest == "" {
		manifest = os.Getenv(ManifestEnv)
	}
	if manifest == "" {
		manifest, err = DefaultManifestPath()
		if err != nil {
			return nil, err
		}
	}

	return &Paths{
		Root:     absRoot,
		Manifest: manifest,
	}, nil
}

// DefaultManifestPath returns DefaultManifestName in the executable's directory.
func DefaultManifestPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultManifestName), nil
}
