package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bundler/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AssetProbe = (*AssetProbe)(nil)

// AssetProbe checks for optional assets relative to a root directory.
type AssetProbe struct {
	root string
}

// NewAssetProbe creates an AssetProbe resolving relative paths against root.
// An empty root means the working directory.
func NewAssetProbe(root string) *AssetProbe {
	return &AssetProbe{root: root}
}

// Exists reports whether path exists.
func (p *AssetProbe) Exists(path string) (bool, error) {
	full := path
	if p.root != "" && !filepath.IsAbs(path) {
		full = filepath.Join(p.root, path)
	}

	_, err := os.Stat(full)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, iofs.ErrNotExist):
		return false, nil
	default:
		return false, zerr.With(zerr.Wrap(err, "failed to stat asset"), "path", full)
	}
}
