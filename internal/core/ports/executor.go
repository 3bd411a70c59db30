// Package ports defines the core interfaces for the compile pipeline.
package ports

import (
	"context"

	"github.com/0xg0nz0/pants/internal/core/domain"
)

// ProcessExecutor runs external toolchain processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type ProcessExecutor interface {
	// Run executes the process and returns its discriminated outcome. A
	// non-zero exit code is reported through the result, not the error; the
	// error covers process-level failures only (missing binary, cancelled
	// context, I/O failure). Timeouts and cancellation are inherited from ctx.
	Run(ctx context.Context, proc domain.Process) (*domain.ProcessResult, error)
}
