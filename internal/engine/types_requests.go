package engine

// RunRequest represents a request to reslot the stage of a mod.
type RunRequest struct {
	// Root is the absolute path of the mod folder
	Root string

	// ManifestPath is the base-game manifest json
	ManifestPath string
}
