package levels

import (
	"os"
)

// Loader loads a campaign from a directory of world files, for custom
// campaigns passed on the command line.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Load parses every .yaml/.yml file directly under Root into a catalog.
func (l *Loader) Load() (*Catalog, error) {
	return LoadFS(os.DirFS(l.Root), ".")
}
