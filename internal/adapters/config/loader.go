// Package config resolves the driver environment and user configuration.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/magiconair/properties"
	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader from the process environment.
type Loader struct {
	Logger ports.Logger

	// Getenv, Executable and Getwd default to the os package functions.
	Getenv     func(string) string
	Executable func() (string, error)
	Getwd      func() (string, error)
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:     logger,
		Getenv:     os.Getenv,
		Executable: os.Executable,
		Getwd:      os.Getwd,
	}
}

// Load reads the environment and the optional user configuration file.
func (l *Loader) Load() (*domain.DriverConfig, error) {
	workDir, err := l.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}

	rootDir, err := l.rootDir()
	if err != nil {
		return nil, err
	}

	cfg := &domain.DriverConfig{
		RootDir:    rootDir,
		WorkDir:    workDir,
		JavaHome:   l.Getenv(domain.EnvJavaHome),
		ConfigFile: l.Getenv(domain.EnvConfigFile),
		Verbose:    isTrue(l.Getenv(domain.EnvVerbose)),
	}

	if cfg.ConfigFile == "" {
		return cfg, nil
	}

	props, err := LoadProperties(cfg.ConfigFile)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfigFile.Error()), "path", cfg.ConfigFile)
	}
	cfg.Properties = props
	cfg.DefaultArgs = strings.Fields(props[domain.ConfigKeyDefaultArgs])
	l.Logger.Debug("using configuration file " + cfg.ConfigFile)

	return cfg, nil
}

// rootDir prefers NATIVE_IMAGE_ROOT and otherwise derives the installation
// root from the location of the running binary.
func (l *Loader) rootDir() (string, error) {
	if dir := l.Getenv(domain.EnvRootDir); dir != "" {
		return filepath.Abs(dir)
	}

	exe, err := l.Executable()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrRootDirNotFound.Error())
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return RootFromExecutable(exe), nil
}

// RootFromExecutable maps <root>/bin/native-image and
// <root>/lib/svm/bin/native-image to <root>.
func RootFromExecutable(exe string) string {
	binDir := filepath.Dir(exe)
	parent := filepath.Dir(binDir)
	if filepath.Base(parent) == "svm" && filepath.Base(filepath.Dir(parent)) == "lib" {
		return filepath.Dir(filepath.Dir(parent))
	}
	return parent
}

// LoadProperties reads a Java properties file without expanding ${...} references.
func LoadProperties(path string) (map[string]string, error) {
	loader := &properties.Loader{Encoding: properties.ISO_8859_1, DisableExpansion: true}
	p, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Map(), nil
}

func isTrue(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}
