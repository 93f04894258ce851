package domain

import "time"

// StateDir holds bundler state in the project directory.
const StateDir = ".bundler"

// BuildRecord remembers the artifact of the last successful build for a target.
type BuildRecord struct {
	Target    string    `json:"target,omitzero"`
	Command   []string  `json:"command,omitzero"`
	Artifact  string    `json:"artifact,omitzero"`
	Digest    string    `json:"digest,omitzero"`
	Size      int64     `json:"size,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
