package domain

import "path/filepath"

// Installation layout, relative to the root directory.
const (
	// SVMLibDir holds the jars provided to every image.
	SVMLibDir = "lib/svm"

	// BuilderLibDir holds the jars of the image generator itself.
	BuilderLibDir = "lib/svm/builder"

	// CLibrariesDir holds the per-platform static libraries linked into images.
	CLibrariesDir = "lib/svm/clibraries"

	// InspectDir holds the optional inspect server content.
	InspectDir = "lib/svm/inspect"

	// MacrosDir holds the builtin option bundles.
	MacrosDir = "lib/svm/macros"

	// JVMCILibDir holds the compiler jars appended to the JVMCI class path.
	JVMCILibDir = "lib/jvmci"

	// BootLibDir holds the jars appended to the boot class path.
	BootLibDir = "lib/boot"

	// LanguagesDir holds language option bundles.
	LanguagesDir = "languages"

	// ToolsDir holds tool option bundles.
	ToolsDir = "tools"

	// LauncherCommonJar is added to the image class path of launcher images.
	LauncherCommonJar = "lib/graalvm/launcher-common.jar"

	// LauncherJREPrefix is prepended to launcher class path entries seen by the launcher at run time.
	LauncherJREPrefix = "jre"

	// BundleFileName is the name of an option bundle definition file.
	BundleFileName = "native-image.properties"

	// JarExt is the extension of class path archives.
	JarExt = ".jar"

	// JVMCICompilerJarSuffix marks compiler jars appended to the JVMCI class path.
	JVMCICompilerJarSuffix = "graal.jar"

	// DeletedSuffix is appended to directories scheduled for removal.
	DeletedSuffix = ".deleted"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// CLibraryPath returns the static library directory for the given platform.
func CLibraryPath(root, platform string) string {
	return filepath.Join(root, CLibrariesDir, platform)
}

// JavaExecutable returns the java launcher inside a java home.
func JavaExecutable(javaHome string) string {
	return filepath.Join(javaHome, "bin", "java")
}
