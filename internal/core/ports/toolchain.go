package ports

import (
	"context"

	"github.com/0xg0nz0/pants/internal/core/domain"
)

// ToolchainLocator resolves compiler binaries on disk from the configured
// search paths and name overrides.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type ToolchainLocator interface {
	// Locate resolves every binary family the configuration names. A missing
	// C or C++ compiler is an error wrapping domain.ErrToolNotFound; a missing
	// Fortran compiler leaves ToolchainSpec.Fortran empty since most packages
	// never need it.
	Locate(ctx context.Context, cfg domain.ToolchainConfig) (*domain.ToolchainSpec, error)
}
