package domain

import "go.trai.ch/zerr"

var (
	// ErrUnrecognizedOptions is returned when flag-shaped tokens remain after the handler chain ran.
	ErrUnrecognizedOptions = zerr.New("unrecognized options")

	// ErrHandlerDidNotConsume is returned when a handler claims a token but leaves the token list unchanged.
	ErrHandlerDidNotConsume = zerr.New("option handler claimed arguments without consuming them")

	// ErrMissingOptionValue is returned when an option that takes a value is the last token.
	ErrMissingOptionValue = zerr.New("option requires a value")

	// ErrEmptyJavaArgument is returned for a bare -J token.
	ErrEmptyJavaArgument = zerr.New("empty -J option")

	// ErrMissingMainClass is returned when an executable image has no entry point class.
	ErrMissingMainClass = zerr.New("Please specify class containing the main entry point method. (see --help)")

	// ErrMissingImageName is returned when no image name can be derived.
	ErrMissingImageName = zerr.New("Missing image-name. Use -H:Name=<imagename> to provide one.")

	// ErrInvalidPath is returned when a path entry cannot be canonicalized.
	ErrInvalidPath = zerr.New("invalid path entry")

	// ErrPathNotDirectory is returned when a wildcard path entry does not refer to a directory.
	ErrPathNotDirectory = zerr.New("path entry is not a directory")

	// ErrPathNotReadable is returned when a path entry exists but cannot be read.
	ErrPathNotReadable = zerr.New("path entry is not readable")

	// ErrInvalidSize is returned when a memory size value is malformed.
	ErrInvalidSize = zerr.New("invalid size value")

	// ErrInvalidNumber is returned when a numeric option value is malformed.
	ErrInvalidNumber = zerr.New("invalid numeric value")

	// ErrUnknownMacroOption is returned when a --language:, --tool: or --macro: name is not available.
	ErrUnknownMacroOption = zerr.New("unknown option bundle")

	// ErrMacroLoadFailed is returned when an option bundle definition cannot be read.
	ErrMacroLoadFailed = zerr.New("failed to load option bundle")

	// ErrInvalidConfigFile is returned when the user configuration file cannot be loaded.
	ErrInvalidConfigFile = zerr.New("invalid configuration file")

	// ErrRootDirNotFound is returned when the installation root directory cannot be determined.
	ErrRootDirNotFound = zerr.New("unable to determine installation root directory")

	// ErrJavaHomeNotSet is returned when no java executable is bundled and JAVA_HOME is unset.
	ErrJavaHomeNotSet = zerr.New("Environment variable JAVA_HOME is not set")

	// ErrJavaHomeInvalid is returned when JAVA_HOME does not contain an executable bin/java.
	ErrJavaHomeInvalid = zerr.New("Environment variable JAVA_HOME does not refer to a directory with a bin/java executable")

	// ErrJarDiscoveryFailed is returned when a library directory cannot be listed.
	ErrJarDiscoveryFailed = zerr.New("failed to list jar files")

	// ErrBuildLaunchFailed is returned when the image builder process cannot be started.
	ErrBuildLaunchFailed = zerr.New("failed to launch image builder")

	// ErrBuildFailed is returned when the image builder exits with a non-zero status.
	ErrBuildFailed = zerr.New("Image building failed")

	// ErrPlanWriteFailed is returned when the build plan cannot be written to disk.
	ErrPlanWriteFailed = zerr.New("failed to write build plan")
)
