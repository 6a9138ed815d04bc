// Package app implements the application layer for native-image.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/core/ports"
	"go.trai.ch/nativeimage/internal/engine/planner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	assembler    *planner.Assembler
	executor     ports.Executor
	planWriter   ports.PlanWriter
	logger       ports.Logger
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	assembler *planner.Assembler,
	executor ports.Executor,
	planWriter ports.PlanWriter,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		assembler:    assembler,
		executor:     executor,
		planWriter:   planWriter,
		logger:       log,
		stdout:       os.Stdout,
	}
}

// WithOutput sets the writer receiving the command echo.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// Run assembles the builder invocation for args and, unless a dry run was
// requested, executes it. The returned action tells the caller whether help
// or version output was requested instead of a build.
func (a *App) Run(ctx context.Context, args []string) (domain.Action, error) {
	// 1. Resolve the environment
	cfg, err := a.configLoader.Load()
	if err != nil {
		return domain.ActionBuild, zerr.Wrap(err, "failed to load configuration")
	}
	a.logger.SetVerbose(cfg.Verbose)

	// 2. Assemble the plan
	plan, err := a.assembler.Assemble(ctx, cfg, args)
	if err != nil {
		return domain.ActionBuild, err
	}
	s := plan.Session
	if s.Action != domain.ActionBuild {
		return s.Action, nil
	}

	// 3. Report
	if s.Verbose || s.DryRun {
		_, _ = fmt.Fprintln(a.stdout, plan.Descriptor.String())
	}
	if s.PlanFile != "" {
		if err := a.planWriter.Write(s.PlanFile, plan.Descriptor); err != nil {
			return domain.ActionBuild, err
		}
		a.logger.Debug("build plan written to " + s.PlanFile)
	}
	if s.DryRun {
		return domain.ActionBuild, nil
	}

	// 4. Build
	return domain.ActionBuild, a.executor.Execute(ctx, plan.Descriptor)
}
