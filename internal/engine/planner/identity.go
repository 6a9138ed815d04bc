package planner

import (
	"slices"
	"strings"

	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/engine/consolidate"
	"go.trai.ch/nativeimage/internal/engine/options"
)

// resolveIdentity settles the main class and the image name, and decides
// whether the image is a launcher.
func (a *assembly) resolveIdentity() error {
	store := a.session.Store
	positionals := a.session.Positionals

	mainClass, _ := store.LastBuilderArg(domain.OptionClass)
	kind, _ := store.LastBuilderArg(domain.OptionImageKind)

	if kind == domain.KindSharedLibrary || a.printFlags() {
		if len(positionals) > 0 {
			return options.UnrecognizedError(positionals)
		}
	} else {
		explicit := store.HasCustomBuilderArg(domain.OptionClass)
		if len(positionals) > 0 {
			mainClass, explicit = positionals[0], true
			consolidate.Replace(store.BuilderArgs, domain.OptionClass, mainClass)
			store.AddTargetArgs(positionals[1:]...)
		}
		if mainClass == "" {
			return domain.ErrMissingMainClass
		}

		if !store.HasCustomBuilderArg(domain.OptionName) {
			if explicit {
				consolidate.Replace(store.BuilderArgs, domain.OptionName, strings.ToLower(mainClass))
			} else if _, ok := store.LastBuilderArg(domain.OptionName); !ok {
				return domain.ErrMissingImageName
			}
		}
	}

	if mainClass == domain.PolyglotLauncherClass && !hasPrefix(store.BuilderJavaArgs, domain.JavaOptionLauncherClasses) {
		classes := a.launcherClasses(domain.KindLanguage)
		store.BuilderJavaArgs.Add(domain.JavaOptionLauncherClasses + strings.Join(classes, domain.ListSeparator))
		a.launcher = true
	}
	if !a.launcher && mainClass != "" {
		a.launcher = slices.Contains(a.launcherClasses(domain.KindLanguage, domain.KindTool), mainClass)
	}
	return nil
}

// printFlags reports whether a builder argument asks to print the option catalogue.
func (a *assembly) printFlags() bool {
	return slices.ContainsFunc(a.session.Store.BuilderArgs.Items(), func(arg string) bool {
		return strings.Contains(arg, domain.PrintFlagsMarker)
	})
}

func hasPrefix(set *domain.OrderedSet[string], prefix string) bool {
	return slices.ContainsFunc(set.Items(), func(item string) bool {
		return strings.HasPrefix(item, prefix)
	})
}
