package ports

import "github.com/0xg0nz0/pants/internal/core/domain"

// ConfigLoader loads the build configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path.
	Load(path string) (*domain.BuildConfig, error)
}

// AnalysisLoader loads a serialized package-analysis manifest produced by the
// upstream first-party package analyzer.
type AnalysisLoader interface {
	// LoadAnalysis reads the analysis manifest at path. Files the manifest
	// classifies into no known kind fail with domain.ErrConfiguration.
	LoadAnalysis(path string) (*domain.PackageAnalysis, error)
}
