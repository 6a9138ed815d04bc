package domain

import "slices"

// Action is what the driver does once all arguments are parsed.
type Action int

const (
	// ActionBuild assembles and runs the image builder.
	ActionBuild Action = iota
	// ActionHelp prints the usage text.
	ActionHelp
	// ActionVersion prints the driver version.
	ActionVersion
)

func (a Action) String() string {
	switch a {
	case ActionBuild:
		return "build"
	case ActionHelp:
		return "help"
	case ActionVersion:
		return "version"
	default:
		return "unknown"
	}
}

// Session is the mutable state of one driver run. It is owned by a single
// control path and discarded once the invocation descriptor is built.
type Session struct {
	Config *DriverConfig
	Store  *ArgumentStore

	Action  Action
	Verbose bool
	DryRun  bool

	// PlanFile is where the resolved build plan is written, if set.
	PlanFile string

	// Positionals are the non-flag tokens no handler claimed, in order.
	Positionals []string

	enabled    []*OptionBundle
	enabledIDs OrderedSet[string]
}

// NewSession creates a session for the given configuration.
func NewSession(cfg *DriverConfig) *Session {
	if cfg == nil {
		cfg = &DriverConfig{}
	}
	return &Session{
		Config:  cfg,
		Store:   NewArgumentStore(),
		Verbose: cfg.Verbose,
	}
}

// Enable adds b to the enabled bundles. It reports false when b was already enabled.
func (s *Session) Enable(b *OptionBundle) bool {
	if !s.enabledIDs.Add(b.Flag()) {
		return false
	}
	s.enabled = append(s.enabled, b)
	return true
}

// IsEnabled reports whether the bundle selected by flag is enabled.
func (s *Session) IsEnabled(flag string) bool {
	return s.enabledIDs.Contains(flag)
}

// EnabledBundles returns the enabled bundles in activation order. With kinds
// given, only bundles of those kinds are returned.
func (s *Session) EnabledBundles(kinds ...OptionKind) []*OptionBundle {
	out := make([]*OptionBundle, 0, len(s.enabled))
	for _, b := range s.enabled {
		if len(kinds) == 0 || slices.Contains(kinds, b.Kind) {
			out = append(out, b)
		}
	}
	return out
}
