// Package manifest loads the base game's file listing.
//
// The manifest is a JSON document with two required keys: "file_array", the
// flat list of every file path in the unmodified game, and "dirs", the same
// layout as a nested directory tree. It is loaded once per run and never
// modified.
package manifest

import (
	"path"
	"sort"
)

// DirNode is one directory of the manifest tree.
type DirNode struct {
	// Directories maps a child directory name to its node
	Directories map[string]*DirNode `json:"directories,omitempty"`
}

// document is the on-disk shape. Pointers distinguish missing keys from empty ones.
type document struct {
	FileArray *[]string `json:"file_array"`
	Dirs      *DirNode  `json:"dirs"`
}

// Manifest is the read-only view of the base game's layout.
type Manifest struct {
	files []string
	dirs  *DirNode

	fileSet  map[string]struct{}
	prefixes map[string]struct{}
}

// New builds a Manifest from a file list and directory tree.
// A nil tree is treated as empty.
func New(files []string, dirs *DirNode) *Manifest {
	if dirs == nil {
		dirs = &DirNode{}
	}
	m := &Manifest{
		files:    append([]string(nil), files...),
		dirs:     dirs,
		fileSet:  make(map[string]struct{}, len(files)),
		prefixes: make(map[string]struct{}, len(files)),
	}
	for _, f := range m.files {
		m.fileSet[f] = struct{}{}
		for p := f; p != "." && p != "/" && p != ""; p = path.Dir(p) {
			if _, seen := m.prefixes[p]; seen {
				break
			}
			m.prefixes[p] = struct{}{}
		}
	}
	return m
}

// Files returns the known file paths in manifest order.
func (m *Manifest) Files() []string {
	return m.files
}

// HasFile reports whether p is a known file.
func (m *Manifest) HasFile(p string) bool {
	_, ok := m.fileSet[p]
	return ok
}

// IsKnownPrefix reports whether p is a known file or a directory containing one.
func (m *Manifest) IsKnownPrefix(p string) bool {
	_, ok := m.prefixes[p]
	return ok
}

// Lookup returns the tree node at the given directory segments, or nil.
func (m *Manifest) Lookup(segments ...string) *DirNode {
	node := m.dirs
	for _, seg := range segments {
		if node == nil || node.Directories == nil {
			return nil
		}
		node = node.Directories[seg]
	}
	return node
}

// Walk returns every directory path of the subtree rooted at node, each
// prefixed with root, sorted. The root itself is included.
func Walk(node *DirNode, root string) []string {
	var out []string
	var walk func(n *DirNode, prefix string)
	walk = func(n *DirNode, prefix string) {
		out = append(out, prefix)
		if n == nil {
			return
		}
		for name, child := range n.Directories {
			walk(child, prefix+"/"+name)
		}
	}
	walk(node, root)
	sort.Strings(out)
	return out
}
