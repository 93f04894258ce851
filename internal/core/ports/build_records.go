package ports

import "go.trai.ch/bundler/internal/core/domain"

// BuildRecordStore persists the last successful build per target.
//
//go:generate mockgen -source=build_records.go -destination=mocks/mock_build_records.go -package=mocks
type BuildRecordStore interface {
	// Get returns the record for target, or nil if none exists.
	Get(target string) (*domain.BuildRecord, error)

	// Put stores the record, replacing any previous one for its target.
	Put(record domain.BuildRecord) error
}
