// Package planfile exports resolved build plans as YAML documents.
package planfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.PlanWriter = (*Writer)(nil)

// Plan is the on-disk form of an invocation descriptor.
type Plan struct {
	Fingerprint      string   `yaml:"fingerprint"`
	JavaExecutable   string   `yaml:"java"`
	BootClasspath    []string `yaml:"bootClasspath,omitempty"`
	BuilderClasspath []string `yaml:"builderClasspath"`
	JavaArgs         []string `yaml:"javaArgs"`
	ImageClasspath   []string `yaml:"imageClasspath"`
	ImageArgs        []string `yaml:"imageArgs"`
	Command          []string `yaml:"command"`
}

// NewPlan captures d together with the fingerprint of its command line.
func NewPlan(d *domain.InvocationDescriptor) *Plan {
	argv := d.Command()
	return &Plan{
		Fingerprint:      Fingerprint(argv),
		JavaExecutable:   d.JavaExecutable(),
		BootClasspath:    d.BootClasspath(),
		BuilderClasspath: d.BuilderClasspath(),
		JavaArgs:         d.JavaArgs(),
		ImageClasspath:   d.ImageClasspath(),
		ImageArgs:        d.ImageArgs(),
		Command:          argv,
	}
}

// Fingerprint digests argv so that two plans with the same command line compare equal.
func Fingerprint(argv []string) string {
	sum := xxhash.Sum64String(strings.Join(argv, "\x00"))
	return strconv.FormatUint(sum, 16)
}

// Writer implements ports.PlanWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write marshals d to path, creating missing parent directories.
func (w *Writer) Write(path string, d *domain.InvocationDescriptor) error {
	data, err := yaml.Marshal(NewPlan(d))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPlanWriteFailed.Error()), "path", path)
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPlanWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is cleaned and provided by the user
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPlanWriteFailed.Error()), "path", path)
	}

	return nil
}

// Load reads a plan previously stored by Write. A missing file yields nil.
func Load(path string) (*Plan, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read build plan")
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal build plan")
	}
	return &plan, nil
}
