// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/0xg0nz0/pants/internal/adapters/cas"
	_ "github.com/0xg0nz0/pants/internal/adapters/config"
	_ "github.com/0xg0nz0/pants/internal/adapters/fs"
	_ "github.com/0xg0nz0/pants/internal/adapters/gotool"
	_ "github.com/0xg0nz0/pants/internal/adapters/logger"
	_ "github.com/0xg0nz0/pants/internal/adapters/shell"
	_ "github.com/0xg0nz0/pants/internal/adapters/telemetry/progrock"
	_ "github.com/0xg0nz0/pants/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "github.com/0xg0nz0/pants/internal/app"
	_ "github.com/0xg0nz0/pants/internal/engine/cgo"
)
