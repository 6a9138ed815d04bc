// Package fs implements the filesystem adapters of the driver.
package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// wildcard is the class path entry suffix selecting every jar of a directory.
const wildcard = "*"

// Resolver implements ports.PathResolver on the local filesystem.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Canonicalize resolves path against base. Symbolic links in parent
// directories are resolved, the final element is kept as is.
func (r *Resolver) Canonicalize(base, path string) (string, error) {
	p := path
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	p = filepath.Clean(p)

	wild := filepath.Base(p) == wildcard
	if wild {
		p = filepath.Dir(p)
		if !r.IsDir(p) {
			return "", zerr.With(domain.ErrPathNotDirectory, "path", path)
		}
	}

	resolved, err := realPath(p)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidPath.Error()), "path", path)
	}

	f, err := os.Open(resolved) //nolint:gosec // paths come from the command line
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPathNotReadable.Error()), "path", path)
	}
	_ = f.Close()

	if wild {
		return filepath.Join(resolved, wildcard), nil
	}
	return resolved, nil
}

func realPath(p string) (string, error) {
	dir, name := filepath.Split(p)
	if name == "" {
		return filepath.EvalSymlinks(p)
	}
	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return "", err
	}
	resolved := filepath.Join(realDir, name)
	if _, err := os.Lstat(resolved); err != nil {
		return "", err
	}
	return resolved, nil
}

// Jars lists the jar files directly inside dir.
func (r *Resolver) Jars(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrJarDiscoveryFailed.Error()), "dir", dir)
	}

	var jars []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), domain.JarExt) {
			continue
		}
		jars = append(jars, filepath.Join(dir, e.Name()))
	}
	return jars, nil
}

// IsRegularFile reports whether path is a regular file, following symbolic links.
func (r *Resolver) IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path is a directory, following symbolic links.
func (r *Resolver) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsExecutable reports whether path is a regular file with any execute bit set.
func (r *Resolver) IsExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
