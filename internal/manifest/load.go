package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

// ErrInvalid indicates the manifest is missing a required key or is malformed.
var ErrInvalid = errors.New("invalid manifest")

// Load reads and validates the manifest at path.
// The file is memory-mapped and decoded in place; full game listings run to
// tens of megabytes.
func Load(path string) (*Manifest, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %w", path, err)
	}
	defer func() {
		_ = r.Close()
	}()

	m, err := decode(io.NewSectionReader(r, 0, int64(r.Len())))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest document. Both "file_array" and "dirs" must be present.
func Parse(data []byte) (*Manifest, error) {
	return decode(bytes.NewReader(data))
}

func decode(r io.Reader) (*Manifest, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if doc.FileArray == nil || doc.Dirs == nil {
		return nil, fmt.Errorf("%w: unable to obtain file_array or dirs, please ensure the file is valid", ErrInvalid)
	}
	return New(*doc.FileArray, doc.Dirs), nil
}
