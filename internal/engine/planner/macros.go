package planner

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/engine/consolidate"
)

// expandMacros folds the enabled bundles into the store in activation order.
func (a *assembly) expandMacros() error {
	store := a.session.Store

	for _, b := range a.session.EnabledBundles() {
		if v, ok := b.Property(domain.PropertyArgs); ok {
			for _, arg := range strings.Fields(v) {
				store.AddBuilderArg(arg)
			}
		}
		if v, ok := b.Property(domain.PropertyJavaArgs); ok {
			store.BuilderJavaArgs.Add(strings.Fields(v)...)
		}
		if err := a.addBundlePaths(b, domain.PropertyImageBuilderClasspath, store.BuilderClasspath); err != nil {
			return err
		}
		if err := a.addBundlePaths(b, domain.PropertyImageClasspath, store.ImageClasspath); err != nil {
			return err
		}
	}

	if len(a.launcherClasses(domain.KindLanguage, domain.KindTool)) > 1 {
		if !store.HasCustomBuilderArg(domain.OptionName) {
			consolidate.Replace(store.BuilderArgs, domain.OptionName, domain.PolyglotImageName)
		}
		if !store.HasCustomBuilderArg(domain.OptionClass) {
			consolidate.Replace(store.BuilderArgs, domain.OptionClass, domain.PolyglotLauncherClass)
		}
	}

	if n := len(a.languages()); n > 1 {
		xmx := polyglotBaseXmx + int64(n-1)*perLanguageXmx
		store.BuilderJavaArgs.Add(domain.JavaOptionXmx + domain.FormatSize(xmx))
	}

	_, err := consolidate.Set(store.BuilderJavaArgs, domain.JavaOptionPreinitContexts, consolidate.ListUnion(domain.ListSeparator, nil))
	return err
}

// addBundlePaths adds the entries of the path list property key, resolved
// against the bundle directory. Entries that are not regular files are dropped.
func (a *assembly) addBundlePaths(b *domain.OptionBundle, key string, dst *domain.OrderedSet[string]) error {
	v, ok := b.Property(key)
	if !ok {
		return nil
	}
	for _, entry := range domain.SplitPathList(v) {
		p := filepath.FromSlash(entry)
		if !filepath.IsAbs(p) {
			p = filepath.Join(b.Dir, p)
		}
		if !a.resolver.IsRegularFile(p) {
			a.logger.Warn("Ignoring '" + p + "' from " + key + " of " + b.Flag() + ": it does not exist or is not a regular file")
			continue
		}
		resolved, err := a.resolver.Canonicalize(b.Dir, p)
		if err != nil {
			return err
		}
		dst.Add(resolved)
	}
	return nil
}

// languages returns the enabled language bundles plus any other enabled
// bundle that declares a launcher class.
func (a *assembly) languages() []*domain.OptionBundle {
	var out []*domain.OptionBundle
	for _, b := range a.session.EnabledBundles() {
		if _, ok := b.Property(domain.PropertyLauncherClass); ok || b.Kind == domain.KindLanguage {
			out = append(out, b)
		}
	}
	return out
}

// launcherClasses returns the distinct launcher classes of the enabled bundles of the given kinds.
func (a *assembly) launcherClasses(kinds ...domain.OptionKind) []string {
	var out []string
	for _, b := range a.session.EnabledBundles(kinds...) {
		if c, ok := b.Property(domain.PropertyLauncherClass); ok && !slices.Contains(out, strings.TrimSpace(c)) {
			out = append(out, strings.TrimSpace(c))
		}
	}
	return out
}
