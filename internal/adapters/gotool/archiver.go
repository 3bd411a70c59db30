package gotool

import (
	"context"

	"github.com/0xg0nz0/pants/internal/core/domain"
	"github.com/0xg0nz0/pants/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Archiver = (*Archiver)(nil)

// Archiver implements ports.Archiver on top of `go tool pack`.
type Archiver struct {
	executor ports.ProcessExecutor
}

// NewArchiver creates a new Archiver.
func NewArchiver(executor ports.ProcessExecutor) *Archiver {
	return &Archiver{executor: executor}
}

// Archive appends spec.Objects to spec.OutPath, creating the archive when it
// does not exist yet.
func (a *Archiver) Archive(ctx context.Context, spec ports.ArchiveSpec) error {
	argv := []string{goBinary(spec.GoBinary), "tool", "pack", "r", spec.OutPath}
	argv = append(argv, spec.Objects...)

	res, err := a.executor.Run(ctx, domain.Process{
		Argv:        argv,
		Description: "pack " + spec.OutPath,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to run the pack tool")
	}
	if !res.Success() {
		failure := zerr.With(zerr.With(domain.ErrAssembly, "archive", spec.OutPath), "exit_code", res.ExitCode)
		return zerr.With(failure, "stderr", res.StderrString())
	}
	return nil
}
