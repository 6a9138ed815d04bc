package domain

// Environment variables read by the driver.
const (
	EnvVerbose    = "VERBOSE_GRAALVM_LAUNCHERS"
	EnvConfigFile = "NATIVE_IMAGE_CONFIG_FILE"
	EnvJavaHome   = "JAVA_HOME"
	EnvRootDir    = "NATIVE_IMAGE_ROOT"
)

// ConfigKeyDefaultArgs is the user configuration key holding default driver arguments.
const ConfigKeyDefaultArgs = "NativeImageArgs"

// DriverConfig is the resolved environment of a driver run.
type DriverConfig struct {
	// RootDir is the installation root holding lib/, languages/ and tools/.
	RootDir string
	// WorkDir is the directory relative paths are resolved against.
	WorkDir string
	// JavaHome is the value of JAVA_HOME, if set.
	JavaHome string
	// ConfigFile is the user configuration file, if set.
	ConfigFile string
	// Verbose enables command echo and debug logging.
	Verbose bool
	// DefaultArgs are prepended to the command line arguments.
	DefaultArgs []string
	// Properties holds the raw user configuration.
	Properties map[string]string
}
