package domain

// Image builder option prefixes.
const (
	OptionClass                    = "-H:Class="
	OptionName                     = "-H:Name="
	OptionPath                     = "-H:Path="
	OptionImageKind                = "-H:Kind="
	OptionCLibraryPath             = "-H:CLibraryPath="
	OptionOptimize                 = "-H:Optimize="
	OptionDebug                    = "-H:Debug="
	OptionFeatures                 = "-H:Features="
	OptionMaxRuntimeCompileMethods = "-H:MaxRuntimeCompileMethods="
	OptionInspectServerContentPath = "-H:InspectServerContentPath="
	OptionRuntimeAssertions        = "-H:+RuntimeAssertions"

	// PrintFlagsMarker enables print-flags mode when found anywhere in a builder argument.
	PrintFlagsMarker = "PrintFlags="

	BuilderOptionPrefix = "-H:"
	RuntimeOptionPrefix = "-R:"
)

// Builder JVM option prefixes.
const (
	JavaOptionXmx                  = "-Xmx"
	JavaOptionXms                  = "-Xms"
	JavaOptionPreinitContexts      = "-Dpolyglot.engine.PreinitializeContexts="
	JavaOptionLauncherClasses      = "-Dcom.oracle.graalvm.launcher.launcherclasses="
	JavaOptionLauncherClasspath    = "-Dorg.graalvm.launcher.classpath="
	JavaOptionJVMCIClasspathAppend = "-Djvmci.class.path.append="
)

// Image kinds.
const (
	KindExecutable    = "EXECUTABLE"
	KindSharedLibrary = "SHARED_LIBRARY"
)

// Multi-target launcher identity.
const (
	PolyglotImageName     = "polyglot"
	PolyglotLauncherClass = "org.graalvm.launcher.PolyglotLauncher"
)

// GeneratorRunnerClass is the entry point of the image builder JVM.
const GeneratorRunnerClass = "com.oracle.svm.hosted.NativeImageGeneratorRunner"

// ListOption describes a builder option whose value is a comma separated list.
type ListOption struct {
	Prefix string
	// Paths marks list entries that are filesystem paths to canonicalize.
	Paths bool
}

// ListOptions are unioned across all occurrences.
var ListOptions = []ListOption{
	{Prefix: OptionFeatures},
	{Prefix: "-H:SubstitutionFiles=", Paths: true},
	{Prefix: "-H:SubstitutionResources="},
	{Prefix: "-H:IncludeResourceBundles="},
	{Prefix: "-H:ReflectionConfigurationFiles=", Paths: true},
	{Prefix: "-H:ReflectionConfigurationResources="},
	{Prefix: "-H:JNIConfigurationFiles=", Paths: true},
	{Prefix: "-H:JNIConfigurationResources="},
	{Prefix: "-H:InterfacesForJNR="},
	{Prefix: OptionCLibraryPath, Paths: true},
}

// ListSeparator joins list option values.
const ListSeparator = ","
