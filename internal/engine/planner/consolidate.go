package planner

import (
	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/engine/consolidate"
)

// consolidateArgs reduces every repeated option family to a single entry.
func (a *assembly) consolidateArgs() error {
	store := a.session.Store

	// The builder heap is the largest requested size and the initial heap
	// never exceeds it. User supplied -J values are applied afterwards and win.
	if _, err := consolidate.Set(store.BuilderJavaArgs, domain.JavaOptionXmx, consolidate.MaxSize(0)); err != nil {
		return err
	}
	xms, err := domain.ParseSize(defaultXms)
	if err != nil {
		return err
	}
	if _, err := consolidate.Set(store.BuilderJavaArgs, domain.JavaOptionXms, consolidate.MaxSize(xms)); err != nil {
		return err
	}
	if _, err := consolidate.ClampMinToMax(store.BuilderJavaArgs, domain.JavaOptionXms, domain.JavaOptionXmx); err != nil {
		return err
	}
	for _, arg := range store.CustomJavaArgs.Items() {
		store.BuilderJavaArgs.MoveToBack(arg)
	}
	if _, err := consolidate.ClampMinToMax(store.BuilderJavaArgs, domain.JavaOptionXms, domain.JavaOptionXmx); err != nil {
		return err
	}

	if _, err := consolidate.Set(store.BuilderArgs, domain.OptionMaxRuntimeCompileMethods, consolidate.Sum()); err != nil {
		return err
	}

	for _, opt := range domain.ListOptions {
		if opt.Paths {
			if err := consolidate.MapList(store.BuilderArgs, opt.Prefix, domain.ListSeparator, a.canonicalize); err != nil {
				return err
			}
		}
		if _, err := consolidate.Set(store.BuilderArgs, opt.Prefix, consolidate.ListUnion(domain.ListSeparator, nil)); err != nil {
			return err
		}
	}

	path, err := consolidate.Set(store.BuilderArgs, domain.OptionPath, consolidate.LastWins())
	if err != nil {
		return err
	}
	if path.Found() {
		resolved, err := a.canonicalize(path.Value)
		if err != nil {
			return err
		}
		consolidate.Replace(store.BuilderArgs, domain.OptionPath, resolved)
	}

	for _, prefix := range []string{domain.OptionName, domain.OptionClass, domain.OptionImageKind} {
		if _, err := consolidate.Set(store.BuilderArgs, prefix, consolidate.LastWins()); err != nil {
			return err
		}
	}
	return nil
}

// canonicalize resolves p against the work directory.
func (a *assembly) canonicalize(p string) (string, error) {
	return a.resolver.Canonicalize(a.session.Config.WorkDir, p)
}
