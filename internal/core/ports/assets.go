package ports

// AssetProbe answers whether optional build assets are available.
//
//go:generate mockgen -source=assets.go -destination=mocks/mock_assets.go -package=mocks
type AssetProbe interface {
	// Exists reports whether path exists. A missing path is not an error;
	// any other failure to check is.
	Exists(path string) (bool, error)
}
