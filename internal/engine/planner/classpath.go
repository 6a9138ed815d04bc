package planner

import (
	"path/filepath"
	"strings"

	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/zerr"
)

// buildClasspath completes the image class path and, for launcher images,
// the class path the launcher uses at run time.
func (a *assembly) buildClasspath() error {
	store := a.session.Store
	root := a.session.Config.RootDir

	if store.CustomImageClasspath.Len() == 0 {
		wd, err := a.canonicalize(".")
		if err != nil {
			return err
		}
		store.ImageProvidedClasspath.Add(wd)
	} else {
		store.ImageClasspath.Add(store.CustomImageClasspath.Items()...)
	}

	if !a.launcher {
		return nil
	}

	a.logger.Debug("Automatically appending LauncherClassPath")
	var entries []string
	for _, b := range a.session.EnabledBundles(domain.KindLanguage, domain.KindTool) {
		if v, ok := b.Property(domain.PropertyLauncherClassPath); ok {
			entries = append(entries, domain.SplitPathList(v)...)
		}
	}
	entries = append(entries, domain.LauncherCommonJar)

	for _, entry := range entries {
		p := filepath.Join(root, filepath.FromSlash(entry))
		if !a.resolver.IsRegularFile(p) {
			a.logger.Warn("Ignoring '" + p + "' from " + domain.PropertyLauncherClassPath + ": it does not exist or is not a regular file")
			continue
		}
		resolved, err := a.resolver.Canonicalize(root, p)
		if err != nil {
			return err
		}
		store.ImageClasspath.Add(resolved)
	}

	if hasPrefix(store.BuilderJavaArgs, domain.JavaOptionLauncherClasspath) {
		return nil
	}
	var launcherClasspath []string
	for _, p := range store.ImageClasspath.Items() {
		rel, ok := within(root, p)
		if !ok {
			a.logger.Warn("Ignoring '" + p + "' while building launcher classpath: it does not live under the root (" + root + ")")
			continue
		}
		launcherClasspath = append(launcherClasspath, filepath.Join(domain.LauncherJREPrefix, rel))
	}
	store.BuilderJavaArgs.Add(domain.JavaOptionLauncherClasspath + strings.Join(launcherClasspath, domain.PathListSeparator))
	return nil
}

// within returns p relative to root when p lies below root.
func within(root, p string) (string, bool) {
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", false
	}
	return rel, true
}

// finalize freezes the store into the invocation descriptor.
func (a *assembly) finalize() error {
	javaHome, err := a.javaHome()
	if err != nil {
		return err
	}

	store := a.session.Store
	imageClasspath := domain.NewOrderedSet(store.BuilderBootClasspath.Items()...)
	imageClasspath.Add(store.BuilderClasspath.Items()...)
	imageClasspath.Add(store.ImageProvidedClasspath.Items()...)
	imageClasspath.Add(store.ImageClasspath.Items()...)

	imageArgs := append(store.BuilderArgs.Items(), store.TargetArgs...)

	a.descriptor = domain.NewInvocationDescriptor(domain.InvocationParts{
		JavaExecutable:   domain.JavaExecutable(javaHome),
		BootClasspath:    store.BuilderBootClasspath.Items(),
		BuilderClasspath: store.BuilderClasspath.Items(),
		JavaArgs:         store.BuilderJavaArgs.Items(),
		ImageClasspath:   imageClasspath.Items(),
		ImageArgs:        imageArgs,
	})
	return nil
}

// javaHome prefers the JDK the installation lives in over JAVA_HOME.
func (a *assembly) javaHome() (string, error) {
	cfg := a.session.Config

	if bundled := filepath.Dir(cfg.RootDir); a.resolver.IsExecutable(domain.JavaExecutable(bundled)) {
		return bundled, nil
	}
	if cfg.JavaHome == "" {
		return "", domain.ErrJavaHomeNotSet
	}
	if !a.resolver.IsExecutable(domain.JavaExecutable(cfg.JavaHome)) {
		return "", zerr.With(domain.ErrJavaHomeInvalid, "java_home", cfg.JavaHome)
	}
	return cfg.JavaHome, nil
}
