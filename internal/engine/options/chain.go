// Package options implements the command line option handler chain.
package options

import (
	"strings"

	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/core/ports"
	"go.trai.ch/zerr"
)

// Handler claims tokens from the head of the remaining arguments.
type Handler interface {
	// Consume inspects args[0] and, when it claims it, returns the arguments
	// left after the claimed tokens with ok set.
	Consume(s *domain.Session, args []string) (rest []string, ok bool, err error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(s *domain.Session, args []string) ([]string, bool, error)

// Consume calls f.
func (f HandlerFunc) Consume(s *domain.Session, args []string) ([]string, bool, error) {
	return f(s, args)
}

// Chain dispatches tokens to handlers. Handlers registered later take priority.
type Chain struct {
	registry ports.OptionRegistry
	handlers []Handler
}

// NewChain creates a chain over the given handlers in registration order.
func NewChain(registry ports.OptionRegistry, handlers ...Handler) *Chain {
	return &Chain{
		registry: registry,
		handlers: handlers,
	}
}

// Run feeds tokens through the handlers. Unclaimed non-flag tokens are
// recorded as positionals on s, unclaimed flags fail the run.
func (c *Chain) Run(s *domain.Session, tokens []string) error {
	rest, err := c.expand(tokens)
	if err != nil {
		return err
	}

	var leftovers []string
	for len(rest) > 0 && s.Action == domain.ActionBuild {
		next, claimed, err := c.dispatch(s, rest)
		if err != nil {
			return err
		}
		if !claimed {
			leftovers = append(leftovers, rest[0])
			next = rest[1:]
		}
		rest = next
	}

	// Help and version win over anything else on the command line.
	if s.Action != domain.ActionBuild {
		return nil
	}

	var unrecognized []string
	for _, tok := range leftovers {
		if strings.HasPrefix(tok, "-") {
			unrecognized = append(unrecognized, tok)
			continue
		}
		s.Positionals = append(s.Positionals, tok)
	}
	if len(unrecognized) > 0 {
		return UnrecognizedError(unrecognized)
	}
	return nil
}

func (c *Chain) dispatch(s *domain.Session, args []string) ([]string, bool, error) {
	for i := len(c.handlers) - 1; i >= 0; i-- {
		rest, ok, err := c.handlers[i].Consume(s, args)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}
		if len(rest) >= len(args) {
			return nil, false, zerr.With(domain.ErrHandlerDidNotConsume, "token", args[0])
		}
		return rest, true, nil
	}
	return args, false, nil
}

// expand replaces --language:all and --tool:all with one token per available bundle.
func (c *Chain) expand(tokens []string) ([]string, error) {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		kind, ok := allKind(tok)
		if !ok {
			out = append(out, tok)
			continue
		}
		bundles, err := c.registry.Available(kind)
		if err != nil {
			return nil, err
		}
		for _, b := range bundles {
			out = append(out, b.Flag())
		}
	}
	return out, nil
}

func allKind(tok string) (domain.OptionKind, bool) {
	for _, kind := range []domain.OptionKind{domain.KindLanguage, domain.KindTool} {
		if tok == kind.AllFlag() {
			return kind, true
		}
	}
	return "", false
}

// UnrecognizedError reports every unclaimed flag at once.
func UnrecognizedError(tokens []string) error {
	key := "option"
	if len(tokens) > 1 {
		key = "options"
	}
	return zerr.With(domain.ErrUnrecognizedOptions, key, strings.Join(tokens, ", "))
}

// NewDefaultChain creates the standard chain: driver options, then user facing
// API options, then option bundles, with the bundle handler consulted first.
func NewDefaultChain(resolver ports.PathResolver, registry ports.OptionRegistry) *Chain {
	return NewChain(registry,
		NewDefaultHandler(resolver, registry),
		NewAPIHandler(),
		NewMacroHandler(registry),
	)
}
