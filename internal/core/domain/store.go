package domain

import "strings"

// ArgumentStore holds the pending collections of a single driver run.
// Builder-owned collections are filled by defaults and option bundles, the
// custom collections record what the user supplied explicitly.
type ArgumentStore struct {
	BuilderArgs            *OrderedSet[string]
	BuilderJavaArgs        *OrderedSet[string]
	BuilderClasspath       *OrderedSet[string]
	BuilderBootClasspath   *OrderedSet[string]
	ImageClasspath         *OrderedSet[string]
	ImageProvidedClasspath *OrderedSet[string]

	CustomJavaArgs       *OrderedSet[string]
	CustomBuilderArgs    *OrderedSet[string]
	CustomImageClasspath *OrderedSet[string]

	// TargetArgs are passed through verbatim after the builder arguments.
	TargetArgs []string
}

// NewArgumentStore creates a store with empty collections.
func NewArgumentStore() *ArgumentStore {
	return &ArgumentStore{
		BuilderArgs:            NewOrderedSet[string](),
		BuilderJavaArgs:        NewOrderedSet[string](),
		BuilderClasspath:       NewOrderedSet[string](),
		BuilderBootClasspath:   NewOrderedSet[string](),
		ImageClasspath:         NewOrderedSet[string](),
		ImageProvidedClasspath: NewOrderedSet[string](),
		CustomJavaArgs:         NewOrderedSet[string](),
		CustomBuilderArgs:      NewOrderedSet[string](),
		CustomImageClasspath:   NewOrderedSet[string](),
	}
}

// AddBuilderArg appends a builder argument. Re-adding an existing argument
// moves it to the end so that the last explicitly added value wins.
func (s *ArgumentStore) AddBuilderArg(arg string) {
	s.BuilderArgs.MoveToBack(arg)
}

// AddCustomBuilderArg records a user supplied builder argument.
func (s *ArgumentStore) AddCustomBuilderArg(arg string) {
	s.AddBuilderArg(arg)
	s.CustomBuilderArgs.MoveToBack(arg)
}

// AddCustomJavaArg records a user supplied argument for the builder JVM.
// Repeating an argument moves it to the end.
func (s *ArgumentStore) AddCustomJavaArg(arg string) {
	s.CustomJavaArgs.MoveToBack(arg)
}

// AddCustomImageClasspath records a user supplied image class path entry.
func (s *ArgumentStore) AddCustomImageClasspath(entry string) {
	s.CustomImageClasspath.Add(entry)
}

// AddTargetArgs appends program arguments passed through verbatim.
func (s *ArgumentStore) AddTargetArgs(args ...string) {
	s.TargetArgs = append(s.TargetArgs, args...)
}

// HasCustomBuilderArg reports whether the user supplied a builder argument with the given prefix.
func (s *ArgumentStore) HasCustomBuilderArg(prefix string) bool {
	return hasPrefix(s.CustomBuilderArgs.Items(), prefix)
}

// LastBuilderArg returns the value of the last builder argument with the given prefix.
func (s *ArgumentStore) LastBuilderArg(prefix string) (string, bool) {
	items := s.BuilderArgs.Items()
	for i := len(items) - 1; i >= 0; i-- {
		if strings.HasPrefix(items[i], prefix) {
			return strings.TrimPrefix(items[i], prefix), true
		}
	}
	return "", false
}

func hasPrefix(items []string, prefix string) bool {
	for _, item := range items {
		if strings.HasPrefix(item, prefix) {
			return true
		}
	}
	return false
}
