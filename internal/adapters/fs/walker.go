// Package fs provides file system adapters for probing assets and inspecting artifacts.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker yields the regular files below a directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root in lexical order, skipping
// directories and VCS metadata. Yielded paths include root. Walk errors
// are surfaced as the second value and stop the iteration.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

func skipDir(name string) bool {
	return name == ".git" || name == ".jj"
}
