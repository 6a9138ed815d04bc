// Package planner assembles the image builder invocation from the driver's
// configuration and command line.
package planner

import (
	"context"

	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/core/ports"
	"go.trai.ch/nativeimage/internal/engine/options"
)

// Stage names, used as span names.
const (
	StageInit            = "init"
	StageParseTokens     = "parse-tokens"
	StageExpandMacros    = "expand-macros"
	StageConsolidateArgs = "consolidate-args"
	StageResolveIdentity = "resolve-identity"
	StageBuildClasspath  = "build-classpath"
	StageFinalize        = "finalize"
)

// Plan is the outcome of one assembly.
type Plan struct {
	Session *domain.Session
	// Descriptor is nil unless Session.Action is domain.ActionBuild.
	Descriptor *domain.InvocationDescriptor
}

// Assembler runs the assembly stages in order.
type Assembler struct {
	logger   ports.Logger
	tracer   ports.Tracer
	resolver ports.PathResolver
	registry ports.OptionRegistry
	host     ports.Host
	chain    *options.Chain
}

// NewAssembler creates an Assembler using the default option handler chain.
func NewAssembler(
	logger ports.Logger,
	tracer ports.Tracer,
	resolver ports.PathResolver,
	registry ports.OptionRegistry,
	host ports.Host,
) *Assembler {
	return &Assembler{
		logger:   logger,
		tracer:   tracer,
		resolver: resolver,
		registry: registry,
		host:     host,
		chain:    options.NewDefaultChain(resolver, registry),
	}
}

// assembly is the state of a single Assemble call.
type assembly struct {
	*Assembler

	session *domain.Session
	args    []string

	launcher   bool
	descriptor *domain.InvocationDescriptor
}

type stage struct {
	name string
	run  func() error
}

// Assemble turns args into a plan. Parsing stops early when an option asks
// for help or the version; the returned plan then carries no descriptor.
func (a *Assembler) Assemble(ctx context.Context, cfg *domain.DriverConfig, args []string) (*Plan, error) {
	ctx, span := a.tracer.Start(ctx, "assemble")
	defer span.End()

	state := &assembly{
		Assembler: a,
		session:   domain.NewSession(cfg),
		args:      args,
	}

	stages := []stage{
		{StageInit, state.seedDefaults},
		{StageParseTokens, state.parseTokens},
		{StageExpandMacros, state.expandMacros},
		{StageConsolidateArgs, state.consolidateArgs},
		{StageResolveIdentity, state.resolveIdentity},
		{StageBuildClasspath, state.buildClasspath},
		{StageFinalize, state.finalize},
	}

	for _, st := range stages {
		if err := a.runStage(ctx, st); err != nil {
			span.RecordError(err)
			return nil, err
		}
		if state.session.Action != domain.ActionBuild {
			break
		}
	}

	span.SetAttribute("action", state.session.Action.String())
	return &Plan{
		Session:    state.session,
		Descriptor: state.descriptor,
	}, nil
}

func (a *Assembler) runStage(ctx context.Context, st stage) error {
	_, span := a.tracer.Start(ctx, st.name)
	defer span.End()

	if err := st.run(); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (a *assembly) parseTokens() error {
	cfg := a.session.Config
	tokens := make([]string, 0, len(cfg.DefaultArgs)+len(a.args))
	tokens = append(tokens, cfg.DefaultArgs...)
	tokens = append(tokens, a.args...)

	if err := a.chain.Run(a.session, tokens); err != nil {
		return err
	}

	if a.session.Verbose || a.session.DryRun {
		a.logger.SetVerbose(true)
	}
	return nil
}
