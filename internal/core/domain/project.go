package domain

import (
	"path"
	"strings"
)

// ProjectFileName is the project file looked up in the working directory.
const ProjectFileName = "bundle.yaml"

// DataMapping bundles a source path into the artifact under Dest.
type DataMapping struct {
	Source string
	Dest   string
}

// Project describes the application handed to the bundling tool.
type Project struct {
	// Name is the display name, e.g. "EyeMouse".
	Name string
	// Entry is the application entry-point script.
	Entry string
	// Tool is the bundling tool executable.
	Tool string
	// DistDir is where the tool writes the artifact.
	DistDir string
	// Data lists the resources bundled with the application.
	Data []DataMapping
	// Icons holds the optional icon path per target.
	Icons map[Target]string
}

// DefaultProject returns the project bundled when no project file is present.
func DefaultProject() Project {
	return Project{
		Name:    "EyeMouse",
		Entry:   "src/eyemouse/app.py",
		Tool:    "pyinstaller",
		DistDir: "dist",
		Data: []DataMapping{
			{Source: "src", Dest: "src"},
		},
		Icons: map[Target]string{
			TargetWindows: "assets/icon.ico",
			TargetMacOS:   "assets/icon.icns",
		},
	}
}

// ArtifactName is the artifact name passed to the bundling tool for target.
// Linux binaries use the lower-cased name.
func (p Project) ArtifactName(t Target) string {
	if t == TargetLinux {
		return strings.ToLower(p.Name)
	}
	return p.Name
}

// ArtifactPath is where the bundling tool writes the artifact for target.
func (p Project) ArtifactPath(t Target) string {
	name := p.ArtifactName(t)
	switch t {
	case TargetWindows:
		name += ".exe"
	case TargetMacOS:
		name += ".app"
	}
	return path.Join(p.DistDir, name)
}

// Icon returns the configured icon for target, if the target accepts one.
func (p Project) Icon(t Target) (string, bool) {
	if !t.SupportsIcon() {
		return "", false
	}
	icon, ok := p.Icons[t]
	if !ok || icon == "" {
		return "", false
	}
	return icon, true
}

// Artifact is the output of a successful build.
type Artifact struct {
	Path string
	// Inspected is set once the artifact was found and hashed.
	Inspected bool
	Dir       bool
	Size      int64
	Digest    string
}
