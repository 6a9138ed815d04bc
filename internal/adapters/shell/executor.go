// Package shell provides the process executor adapter that launches the image builder.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/core/ports"
	"go.trai.ch/zerr"
)

const scratchPattern = "native-image-"

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger  ports.Logger
	cleaner ports.Cleaner

	// Streams handed to the child. They default to the driver's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecutor creates a new Executor that inherits the driver's standard streams.
func NewExecutor(logger ports.Logger, cleaner ports.Cleaner) *Executor {
	return &Executor{
		logger:  logger,
		cleaner: cleaner,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Execute runs the builder and waits for it without a timeout.
//
// Each run gets its own scratch directory, exported to the child as TMPDIR and
// removed once the child has exited.
func (e *Executor) Execute(ctx context.Context, d *domain.InvocationDescriptor) error {
	argv := d.Command()

	scratch, err := os.MkdirTemp("", scratchPattern)
	if err != nil {
		return zerr.Wrap(err, domain.ErrBuildLaunchFailed.Error())
	}
	defer e.cleaner.DeleteAll(scratch)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv is assembled by the planner
	cmd.Env = append(os.Environ(), "TMPDIR="+scratch)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	e.logger.Debug("builder scratch directory: " + scratch)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return zerr.With(domain.ErrBuildFailed, "exit_status", exitErr.ExitCode())
		}
		return zerr.With(zerr.Wrap(err, domain.ErrBuildLaunchFailed.Error()), "executable", argv[0])
	}

	return nil
}
