// Package config provides the project file loader for bundler.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"path/filepath"
	"regexp"

	"go.trai.ch/bundler/internal/core/domain"
	"go.trai.ch/bundler/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the project file version this loader understands.
const CurrentVersion = "1"

var validProjectNameRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load reads the project file at path and merges it over the defaults.
// With an empty path, bundle.yaml in the working directory is used when it
// exists; otherwise the defaults are returned unchanged.
func (l *Loader) Load(path string) (domain.Project, error) {
	explicit := path != ""
	if !explicit {
		path = domain.ProjectFileName
	}

	if _, err := l.FS.Stat(path); err != nil {
		if !errors.Is(err, iofs.ErrNotExist) {
			return domain.Project{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
		if explicit {
			return domain.Project{}, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return domain.DefaultProject(), nil
	}

	var file Bundlefile
	if err := l.readAndUnmarshalYAML(path, &file); err != nil {
		return domain.Project{}, zerr.With(err, "path", path)
	}

	if file.Version != "" && file.Version != CurrentVersion {
		l.Logger.Warn(fmt.Sprintf("unknown version %q in %s, reading it as version %s",
			file.Version, filepath.Base(path), CurrentVersion))
	}

	project := merge(domain.DefaultProject(), &file)
	if err := validate(project); err != nil {
		return domain.Project{}, zerr.With(err, "path", path)
	}
	return project, nil
}

func (l *Loader) readAndUnmarshalYAML(path string, target *Bundlefile) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func merge(project domain.Project, file *Bundlefile) domain.Project {
	if file.Name != "" {
		project.Name = file.Name
	}
	if file.Entry != "" {
		project.Entry = filepath.ToSlash(file.Entry)
	}
	if file.Tool != "" {
		project.Tool = file.Tool
	}
	if file.Dist != "" {
		project.DistDir = filepath.ToSlash(file.Dist)
	}

	// A data key that is present replaces the defaults, even when empty.
	if file.Data != nil {
		project.Data = make([]domain.DataMapping, len(file.Data))
		for i, d := range file.Data {
			project.Data[i] = domain.DataMapping{
				Source: filepath.ToSlash(d.Source),
				Dest:   filepath.ToSlash(d.Dest),
			}
		}
	}

	if file.Icons != nil {
		if file.Icons.Windows != nil {
			project.Icons[domain.TargetWindows] = filepath.ToSlash(*file.Icons.Windows)
		}
		if file.Icons.MacOS != nil {
			project.Icons[domain.TargetMacOS] = filepath.ToSlash(*file.Icons.MacOS)
		}
	}

	return project
}

func validate(p domain.Project) error {
	if !validProjectNameRegex.MatchString(p.Name) {
		return zerr.With(domain.ErrInvalidProjectName, "name", p.Name)
	}
	if p.Entry == "" {
		return domain.ErrMissingEntryPoint
	}
	if p.Tool == "" {
		return domain.ErrMissingTool
	}
	if p.DistDir == "" {
		return domain.ErrMissingDistDir
	}
	for i, d := range p.Data {
		if d.Source == "" || d.Dest == "" {
			return zerr.With(domain.ErrInvalidDataMapping, "index", i)
		}
	}
	return nil
}
