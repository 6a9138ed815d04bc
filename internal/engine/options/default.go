package options

import (
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultHandler handles the driver's own options.
type DefaultHandler struct {
	resolver ports.PathResolver
	registry ports.OptionRegistry
}

// NewDefaultHandler creates a DefaultHandler.
func NewDefaultHandler(resolver ports.PathResolver, registry ports.OptionRegistry) *DefaultHandler {
	return &DefaultHandler{
		resolver: resolver,
		registry: registry,
	}
}

// Consume implements Handler.
func (h *DefaultHandler) Consume(s *domain.Session, args []string) ([]string, bool, error) {
	head := args[0]
	store := s.Store

	switch head {
	case "--help", "-help", "-?":
		s.Action = domain.ActionHelp
		return args[1:], true, nil
	case "--version":
		s.Action = domain.ActionVersion
		return args[1:], true, nil
	case "--verbose":
		s.Verbose = true
		return args[1:], true, nil
	case "--dry-run":
		s.DryRun = true
		return args[1:], true, nil
	case "-cp", "-classpath", "--class-path":
		value, err := optionValue(args)
		if err != nil {
			return nil, false, err
		}
		for _, entry := range filepath.SplitList(value) {
			if entry == "" {
				continue
			}
			resolved, err := h.resolver.Canonicalize(s.Config.WorkDir, entry)
			if err != nil {
				return nil, false, err
			}
			store.AddCustomImageClasspath(resolved)
		}
		return args[2:], true, nil
	case "--configurations-path":
		value, err := optionValue(args)
		if err != nil {
			return nil, false, err
		}
		dir, err := h.resolver.Canonicalize(s.Config.WorkDir, value)
		if err != nil {
			return nil, false, err
		}
		h.registry.AddRoot(dir)
		return args[2:], true, nil
	case "-g":
		store.AddCustomBuilderArg(domain.OptionDebug + "2")
		return args[1:], true, nil
	case "-ea":
		store.AddCustomBuilderArg(domain.OptionRuntimeAssertions)
		return args[1:], true, nil
	}

	switch {
	case strings.HasPrefix(head, "--plan-file="):
		path := strings.TrimPrefix(head, "--plan-file=")
		if path == "" {
			return nil, false, zerr.With(domain.ErrMissingOptionValue, "option", "--plan-file")
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.Config.WorkDir, path)
		}
		s.PlanFile = filepath.Clean(path)
	case strings.HasPrefix(head, "-J"):
		arg := strings.TrimPrefix(head, "-J")
		if arg == "" {
			return nil, false, domain.ErrEmptyJavaArgument
		}
		store.AddCustomJavaArg(arg)
	case strings.HasPrefix(head, "-D"):
		store.AddCustomJavaArg(head)
	case strings.HasPrefix(head, domain.BuilderOptionPrefix), strings.HasPrefix(head, domain.RuntimeOptionPrefix):
		store.AddCustomBuilderArg(head)
	case strings.HasPrefix(head, "-O") && len(head) > 2:
		level := head[2:]
		if _, err := strconv.Atoi(level); err != nil {
			return nil, false, zerr.With(domain.ErrInvalidNumber, "option", head)
		}
		store.AddCustomBuilderArg(domain.OptionOptimize + level)
	default:
		return args, false, nil
	}
	return args[1:], true, nil
}

func optionValue(args []string) (string, error) {
	if len(args) < 2 {
		return "", zerr.With(domain.ErrMissingOptionValue, "option", args[0])
	}
	return args[1], nil
}
