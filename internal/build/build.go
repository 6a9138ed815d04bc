// Package build holds build-time information.
package build

var (
	// Version is the driver version.
	// It defaults to "dev" and can be overwritten by linker flags.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build date.
	Date = "unknown"

	// GraalVMVersion is the platform version propagated to the image builder.
	GraalVMVersion = "1.0.0-dev"
)
