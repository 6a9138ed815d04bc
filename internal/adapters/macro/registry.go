// Package macro implements the option bundle registry backed by
// native-image.properties files.
package macro

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/nativeimage/internal/adapters/config"
	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OptionRegistry = (*Registry)(nil)

// dirPlaceholder in property values expands to the bundle directory.
const dirPlaceholder = "${.}"

type source struct {
	dir  string
	kind domain.OptionKind
}

// Registry discovers bundles below a set of root directories. Bundles are
// loaded on first use and cached until a root is added. The first bundle
// found for a name wins.
type Registry struct {
	sources []source
	bundles map[domain.OptionKind][]*domain.OptionBundle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddRoot registers a bundle root. Builtin bundles are found below
// lib/svm/macros or macros, languages and tools below their namesake directories.
func (r *Registry) AddRoot(dir string) {
	r.sources = append(r.sources,
		source{dir: filepath.Join(dir, domain.MacrosDir), kind: domain.KindBuiltin},
		source{dir: filepath.Join(dir, "macros"), kind: domain.KindBuiltin},
		source{dir: filepath.Join(dir, domain.LanguagesDir), kind: domain.KindLanguage},
		source{dir: filepath.Join(dir, domain.ToolsDir), kind: domain.KindTool},
	)
	r.bundles = nil
}

// Available returns the bundles of kind in discovery order.
func (r *Registry) Available(kind domain.OptionKind) ([]*domain.OptionBundle, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	out := make([]*domain.OptionBundle, len(r.bundles[kind]))
	copy(out, r.bundles[kind])
	return out, nil
}

// Lookup returns the named bundle of kind.
func (r *Registry) Lookup(kind domain.OptionKind, name string) (*domain.OptionBundle, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(r.bundles[kind]))
	for _, b := range r.bundles[kind] {
		if b.Name == name {
			return b, nil
		}
		names = append(names, b.Name)
	}
	err := zerr.With(domain.ErrUnknownMacroOption, "option", kind.Flag()+name)
	return nil, zerr.With(err, "available", strings.Join(names, ", "))
}

func (r *Registry) load() error {
	if r.bundles != nil {
		return nil
	}

	bundles := make(map[domain.OptionKind][]*domain.OptionBundle)
	seen := domain.NewOrderedSet[string]()
	for _, src := range r.sources {
		entries, err := os.ReadDir(src.dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return zerr.With(zerr.Wrap(err, domain.ErrMacroLoadFailed.Error()), "dir", src.dir)
		}

		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			dir := filepath.Join(src.dir, e.Name())
			b, err := loadBundle(dir, src.kind)
			if err != nil {
				return err
			}
			if b == nil || !seen.Add(b.Flag()) {
				continue
			}
			bundles[src.kind] = append(bundles[src.kind], b)
		}
	}

	r.bundles = bundles
	return nil
}

// loadBundle reads dir/native-image.properties. A directory without the file is not a bundle.
func loadBundle(dir string, kind domain.OptionKind) (*domain.OptionBundle, error) {
	path := filepath.Join(dir, domain.BundleFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	props, err := config.LoadProperties(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMacroLoadFailed.Error()), "path", path)
	}
	for k, v := range props {
		props[k] = strings.ReplaceAll(v, dirPlaceholder, dir)
	}

	return &domain.OptionBundle{
		Name:       filepath.Base(dir),
		Kind:       kind,
		Dir:        dir,
		Properties: props,
	}, nil
}
