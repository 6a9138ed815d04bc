package domain

import (
	"os"
	"slices"
	"strings"
)

// PathListSeparator joins class path entries.
const PathListSeparator = string(os.PathListSeparator)

// InvocationParts lists the inputs of an InvocationDescriptor.
type InvocationParts struct {
	JavaExecutable   string
	BootClasspath    []string
	BuilderClasspath []string
	JavaArgs         []string
	ImageClasspath   []string
	ImageArgs        []string
}

// InvocationDescriptor is the frozen command line of the image builder.
// It is built once per run and never modified afterwards.
type InvocationDescriptor struct {
	javaExecutable   string
	bootClasspath    []string
	builderClasspath []string
	javaArgs         []string
	imageClasspath   []string
	imageArgs        []string
}

// NewInvocationDescriptor copies parts into an immutable descriptor.
func NewInvocationDescriptor(parts InvocationParts) *InvocationDescriptor {
	return &InvocationDescriptor{
		javaExecutable:   parts.JavaExecutable,
		bootClasspath:    slices.Clone(parts.BootClasspath),
		builderClasspath: slices.Clone(parts.BuilderClasspath),
		javaArgs:         slices.Clone(parts.JavaArgs),
		imageClasspath:   slices.Clone(parts.ImageClasspath),
		imageArgs:        slices.Clone(parts.ImageArgs),
	}
}

// JavaExecutable returns the launcher of the builder JVM.
func (d *InvocationDescriptor) JavaExecutable() string { return d.javaExecutable }

// BootClasspath returns the entries appended to the boot class path.
func (d *InvocationDescriptor) BootClasspath() []string { return slices.Clone(d.bootClasspath) }

// BuilderClasspath returns the class path of the builder JVM.
func (d *InvocationDescriptor) BuilderClasspath() []string { return slices.Clone(d.builderClasspath) }

// JavaArgs returns the arguments of the builder JVM.
func (d *InvocationDescriptor) JavaArgs() []string { return slices.Clone(d.javaArgs) }

// ImageClasspath returns the class path analyzed for the image.
func (d *InvocationDescriptor) ImageClasspath() []string { return slices.Clone(d.imageClasspath) }

// ImageArgs returns the image builder arguments.
func (d *InvocationDescriptor) ImageArgs() []string { return slices.Clone(d.imageArgs) }

// Command returns the full argv of the image builder process.
func (d *InvocationDescriptor) Command() []string {
	argv := []string{d.javaExecutable}
	if len(d.bootClasspath) > 0 {
		argv = append(argv, "-Xbootclasspath/a:"+strings.Join(d.bootClasspath, PathListSeparator))
	}
	argv = append(argv, "-cp", strings.Join(d.builderClasspath, PathListSeparator))
	argv = append(argv, d.javaArgs...)
	argv = append(argv, GeneratorRunnerClass)
	argv = append(argv, "-imagecp", strings.Join(d.imageClasspath, PathListSeparator))
	argv = append(argv, d.imageArgs...)
	return argv
}

// String renders the command the way it is echoed in verbose mode.
func (d *InvocationDescriptor) String() string {
	return "Executing [\n" + strings.Join(d.Command(), " \\\n") + "\n]"
}
