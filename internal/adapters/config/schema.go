package config

// Bundlefile represents the structure of the bundle.yaml project file.
// Omitted fields keep their built-in defaults.
type Bundlefile struct {
	Version string    `yaml:"version"`
	Name    string    `yaml:"name"`
	Entry   string    `yaml:"entry"`
	Tool    string    `yaml:"tool"`
	Dist    string    `yaml:"dist"`
	Data    []DataDTO `yaml:"data"`
	Icons   *IconsDTO `yaml:"icons"`
}

// DataDTO represents a bundled resource in the project file.
type DataDTO struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

// IconsDTO holds the per-target icon paths. An empty string disables the
// icon for that target.
type IconsDTO struct {
	Windows *string `yaml:"windows"`
	MacOS   *string `yaml:"macos"`
}
