package ports

// Platform identifies the host operating system.
//
//go:generate mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks
type Platform interface {
	// Identifier returns the host platform name, e.g. "Linux", "Darwin" or "Windows".
	Identifier() string
}
