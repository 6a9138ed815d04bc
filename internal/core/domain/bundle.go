package domain

import "strings"

// OptionKind classifies option bundles.
type OptionKind string

const (
	// KindLanguage bundles add a guest language to the image.
	KindLanguage OptionKind = "language"
	// KindTool bundles add a tool to the image.
	KindTool OptionKind = "tool"
	// KindBuiltin bundles are shipped with the image builder.
	KindBuiltin OptionKind = "macro"
)

// Flag returns the command line prefix selecting bundles of this kind.
func (k OptionKind) Flag() string {
	return "--" + string(k) + ":"
}

// AllFlag returns the token enabling every bundle of this kind.
func (k OptionKind) AllFlag() string {
	return k.Flag() + "all"
}

// Option bundle property keys.
const (
	PropertyLauncherClass         = "LauncherClass"
	PropertyLauncherClassPath     = "LauncherClassPath"
	PropertyRequires              = "Requires"
	PropertyArgs                  = "Args"
	PropertyJavaArgs              = "JavaArgs"
	PropertyImageBuilderClasspath = "ImageBuilderClasspath"
	PropertyImageClasspath        = "ImageClasspath"
)

// OptionBundle is a named set of options loaded from a bundle definition file.
type OptionBundle struct {
	Name       string
	Kind       OptionKind
	Dir        string
	Properties map[string]string
}

// Property returns the value stored under key.
func (b *OptionBundle) Property(key string) (string, bool) {
	v, ok := b.Properties[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// Flag returns the command line token enabling this bundle.
func (b *OptionBundle) Flag() string {
	return b.Kind.Flag() + b.Name
}

// SplitPathList splits a colon or semicolon delimited list of relative paths.
func SplitPathList(v string) []string {
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ':' || r == ';' })
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
