package app

import (
	"github.com/0xg0nz0/pants/internal/core/ports"
)

// Components contains the initialized application components the CLI layer
// needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
