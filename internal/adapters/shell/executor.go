// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/0xg0nz0/pants/internal/core/domain"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProcessExecutor = (*Executor)(nil)

// Executor implements ports.ProcessExecutor using os/exec. Stdout and stderr
// are fully captured: compile diagnostics must be surfaced verbatim on
// failure, so streaming-only output is not enough.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes the process described by proc. A non-zero exit is returned as
// data in the result; the error covers process-level failures only.
func (e *Executor) Run(ctx context.Context, proc domain.Process) (*domain.ProcessResult, error) {
	if len(proc.Argv) == 0 {
		return nil, zerr.New("empty argument vector")
	}

	//nolint:gosec // Argv is assembled by the orchestrator from located binaries
	cmd := exec.CommandContext(ctx, proc.Argv[0], proc.Argv[1:]...)
	cmd.Dir = proc.Dir
	cmd.Env = append(os.Environ(), proc.Env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Mirror captured streams to a telemetry vertex when one rides the ctx,
	// and record the exact invocation on it.
	cmdline := strings.Join(proc.Argv, " ")
	if vertex := ports.VertexFromContext(ctx); vertex != nil {
		cmd.Stdout = io.MultiWriter(&stdout, vertex.Stdout())
		cmd.Stderr = io.MultiWriter(&stderr, vertex.Stderr())
		vertex.Log(domain.LogLevelDebug, "exec: "+cmdline)
	}

	e.logger.Info("exec: " + cmdline)

	err := cmd.Run()
	res := &domain.ProcessResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}

	failure := zerr.With(zerr.Wrap(err, "process invocation failed"), "binary", proc.Argv[0])
	if proc.Description != "" {
		failure = zerr.With(failure, "description", proc.Description)
	}
	return nil, failure
}
