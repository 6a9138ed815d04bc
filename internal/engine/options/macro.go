package options

import (
	"strings"

	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/core/ports"
	"go.trai.ch/zerr"
)

var macroKinds = []domain.OptionKind{domain.KindLanguage, domain.KindTool, domain.KindBuiltin}

// MacroHandler enables option bundles selected with --language:, --tool: and --macro:.
type MacroHandler struct {
	registry ports.OptionRegistry
}

// NewMacroHandler creates a MacroHandler.
func NewMacroHandler(registry ports.OptionRegistry) *MacroHandler {
	return &MacroHandler{registry: registry}
}

// Consume implements Handler.
func (h *MacroHandler) Consume(s *domain.Session, args []string) ([]string, bool, error) {
	for _, kind := range macroKinds {
		name, ok := strings.CutPrefix(args[0], kind.Flag())
		if !ok {
			continue
		}
		if err := h.enable(s, kind, name); err != nil {
			return nil, false, err
		}
		return args[1:], true, nil
	}
	return args, false, nil
}

// enable activates the bundle and, after it, everything it requires.
func (h *MacroHandler) enable(s *domain.Session, kind domain.OptionKind, name string) error {
	if s.IsEnabled(kind.Flag() + name) {
		return nil
	}
	b, err := h.registry.Lookup(kind, name)
	if err != nil {
		return err
	}
	s.Enable(b)

	requires, ok := b.Property(domain.PropertyRequires)
	if !ok {
		return nil
	}
	for _, req := range strings.Fields(requires) {
		reqKind, reqName, ok := parseRequirement(req)
		if !ok {
			return zerr.With(zerr.With(domain.ErrUnknownMacroOption, "requirement", req), "bundle", b.Flag())
		}
		if err := h.enable(s, reqKind, reqName); err != nil {
			return zerr.With(err, "required_by", b.Flag())
		}
	}
	return nil
}

// parseRequirement splits "kind:name" with kind one of language, tool or macro.
func parseRequirement(req string) (domain.OptionKind, string, bool) {
	kind, name, ok := strings.Cut(req, ":")
	if !ok || name == "" {
		return "", "", false
	}
	for _, k := range macroKinds {
		if string(k) == kind {
			return k, name, true
		}
	}
	return "", "", false
}
