package planner

import (
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/nativeimage/internal/build"
	"go.trai.ch/nativeimage/internal/core/domain"
)

const (
	// defaultXms is the initial heap of the builder JVM.
	defaultXms = "1g"
	// smallHostCPUs is the processor count up to which fewer JIT threads are used.
	smallHostCPUs = 4
)

var (
	// maxDefaultXmx caps the heap derived from physical memory.
	maxDefaultXmx = domain.GiB(14)
	// polyglotBaseXmx and perLanguageXmx size the heap of images with several languages.
	polyglotBaseXmx = domain.GiB(4)
	perLanguageXmx  = domain.GiB(1)
)

// seedDefaults seeds the store with the builder defaults and the installation jars.
func (a *assembly) seedDefaults() error {
	cfg := a.session.Config
	store := a.session.Store
	root := cfg.RootDir

	store.BuilderJavaArgs.Add(a.defaultJavaArgs()...)
	store.AddBuilderArg(domain.OptionPath + cfg.WorkDir)

	a.registry.AddRoot(root)

	if err := a.addJars(filepath.Join(root, domain.BuilderLibDir), store.BuilderClasspath.Add); err != nil {
		return err
	}
	if err := a.addJars(filepath.Join(root, domain.SVMLibDir), store.ImageProvidedClasspath.Add); err != nil {
		return err
	}

	store.AddBuilderArg(domain.OptionCLibraryPath + domain.CLibraryPath(root, a.host.Platform()))
	if inspect := filepath.Join(root, domain.InspectDir); a.resolver.IsDir(inspect) {
		store.AddBuilderArg(domain.OptionInspectServerContentPath + inspect)
	}

	var compilerJars []string
	err := a.addJars(filepath.Join(root, domain.JVMCILibDir), func(jars ...string) bool {
		for _, jar := range jars {
			store.BuilderClasspath.Add(jar)
			if strings.HasSuffix(strings.ToLower(jar), domain.JVMCICompilerJarSuffix) {
				compilerJars = append(compilerJars, jar)
			}
		}
		return true
	})
	if err != nil {
		return err
	}
	if len(compilerJars) > 0 {
		store.BuilderJavaArgs.Add(domain.JavaOptionJVMCIClasspathAppend + strings.Join(compilerJars, domain.PathListSeparator))
	}

	return a.addJars(filepath.Join(root, domain.BootLibDir), store.BuilderBootClasspath.Add)
}

// addJars canonicalizes every jar in dir and hands them to add in lexical order.
func (a *assembly) addJars(dir string, add func(...string) bool) error {
	jars, err := a.resolver.Jars(dir)
	if err != nil {
		return err
	}
	for _, jar := range jars {
		resolved, err := a.resolver.Canonicalize(dir, jar)
		if err != nil {
			return err
		}
		add(resolved)
	}
	return nil
}

func (a *assembly) defaultJavaArgs() []string {
	ciCompilerCount := 4
	if a.host.NumCPU() <= smallHostCPUs {
		ciCompilerCount = 2
	}

	return []string{
		"-server", "-d64", "-noverify",
		"-XX:+UnlockExperimentalVMOptions", "-XX:+EnableJVMCI",
		"-XX:-UseJVMCIClassLoader", "-XX:+UseJVMCICompiler",
		"-Dgraal.CompileGraalWithC1Only=false",
		"-XX:CICompilerCount=" + strconv.Itoa(ciCompilerCount),
		"-Dgraal.VerifyGraalGraphs=false",
		"-Dgraal.VerifyGraalGraphEdges=false",
		"-Dgraal.VerifyGraalPhasesSize=false",
		"-Dgraal.VerifyPhases=false",
		"-Dgraal.EagerSnippets=true",
		"-Xss10m",
		domain.JavaOptionXms + defaultXms,
		domain.JavaOptionXmx + a.defaultXmx(),
		"-Duser.country=US", "-Duser.language=en",
		"-Dsubstratevm.version=" + build.Version,
		"-Dgraalvm.version=" + build.GraalVMVersion,
		"-Dorg.graalvm.version=" + build.GraalVMVersion,
		"-Dcom.oracle.graalvm.isaot=true",
	}
}

// defaultXmx is 80% of the physical memory, capped at 14g.
func (a *assembly) defaultXmx() string {
	mem, err := a.host.PhysicalMemory()
	if err != nil {
		a.logger.Debug("unable to query physical memory, using " + domain.FormatSize(maxDefaultXmx) + ": " + err.Error())
		return domain.FormatSize(maxDefaultXmx)
	}
	return domain.FormatSize(min(mem/10*8, maxDefaultXmx))
}
