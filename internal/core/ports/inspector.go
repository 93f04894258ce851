package ports

import "go.trai.ch/bundler/internal/core/domain"

// ArtifactInspector examines the artifact a successful build produced.
//
//go:generate mockgen -source=inspector.go -destination=mocks/mock_inspector.go -package=mocks
type ArtifactInspector interface {
	// Inspect stats and hashes the artifact at path.
	Inspect(path string) (domain.Artifact, error)
}
