package fs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/bundler/internal/core/domain"
	"go.trai.ch/bundler/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactInspector = (*Inspector)(nil)

// Inspector stats and fingerprints build artifacts. Plain executables are
// hashed by content; application bundles are hashed over their relative file
// paths and contents.
type Inspector struct {
	walker *Walker
}

// NewInspector creates a new Inspector.
func NewInspector(walker *Walker) *Inspector {
	return &Inspector{walker: walker}
}

// Inspect returns the size and digest of the artifact at path.
func (i *Inspector) Inspect(path string) (domain.Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Artifact{}, zerr.With(
			zerr.Wrap(errors.Join(domain.ErrArtifactInspectFailed, err), "failed to stat artifact"),
			"path", path,
		)
	}

	if info.IsDir() {
		return i.inspectDir(path)
	}

	sum, err := i.ComputeFileHash(path)
	if err != nil {
		return domain.Artifact{}, err
	}

	return domain.Artifact{
		Path:      path,
		Inspected: true,
		Size:      info.Size(),
		Digest:    fmt.Sprintf("%016x", sum),
	}, nil
}

func (i *Inspector) inspectDir(root string) (domain.Artifact, error) {
	hasher := xxhash.New()
	var size int64

	for path, err := range i.walker.WalkFiles(root) {
		if err != nil {
			return domain.Artifact{}, zerr.With(
				zerr.Wrap(errors.Join(domain.ErrArtifactInspectFailed, err), "failed to walk artifact"),
				"path", root,
			)
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return domain.Artifact{}, zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}

		info, err := os.Lstat(path)
		if err != nil {
			return domain.Artifact{}, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
		}

		// Slash-separated names keep the digest stable across hosts.
		_, _ = hasher.WriteString(filepath.ToSlash(rel))
		_, _ = hasher.Write([]byte{0})

		if !info.Mode().IsRegular() {
			continue
		}
		size += info.Size()

		sum, err := i.ComputeFileHash(path)
		if err != nil {
			return domain.Artifact{}, err
		}
		if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
			return domain.Artifact{}, zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return domain.Artifact{
		Path:      root,
		Inspected: true,
		Dir:       true,
		Size:      size,
		Digest:    fmt.Sprintf("%016x", hasher.Sum64()),
	}, nil
}

// ComputeFileHash computes the XXHash of a file's content.
func (i *Inspector) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}
