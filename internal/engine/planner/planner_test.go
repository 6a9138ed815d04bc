package planner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/nativeimage/internal/adapters/fs"
	"go.trai.ch/nativeimage/internal/adapters/macro"
	"go.trai.ch/nativeimage/internal/adapters/telemetry"
	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/core/ports/mocks"
	"go.trai.ch/nativeimage/internal/engine/planner"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const platform = "linux-amd64"

// installation is a fake root directory laid out like a real one.
type installation struct {
	tmp  string
	root string
	work string
}

func touch(t *testing.T, path string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), mode))
}

func newInstallation(t *testing.T) *installation {
	t.Helper()

	tmp := t.TempDir()
	inst := &installation{
		tmp:  tmp,
		root: filepath.Join(tmp, "jre"),
		work: filepath.Join(tmp, "work"),
	}

	touch(t, filepath.Join(tmp, "bin", "java"), 0o700)
	touch(t, filepath.Join(inst.root, "lib", "svm", "builder", "svm.jar"), 0o600)
	touch(t, filepath.Join(inst.root, "lib", "svm", "library-support.jar"), 0o600)
	touch(t, filepath.Join(inst.root, "lib", "jvmci", "graal.jar"), 0o600)
	touch(t, filepath.Join(inst.root, "lib", "boot", "graal-sdk.jar"), 0o600)
	touch(t, filepath.Join(inst.root, "lib", "graalvm", "launcher-common.jar"), 0o600)
	touch(t, filepath.Join(inst.root, "lib", "graalvm", "js-launcher.jar"), 0o600)
	require.NoError(t, os.MkdirAll(filepath.Join(inst.root, "lib", "svm", "clibraries", platform), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(inst.work, "classes"), 0o750))

	inst.bundle(t, "languages", "js",
		"LauncherClass = com.example.JSLauncher\n"+
			"LauncherClassPath = lib/graalvm/js-launcher.jar\n"+
			"Args = -H:MaxRuntimeCompileMethods=100\n"+
			"JavaArgs = -Xmx3g\n")
	inst.bundle(t, "languages", "python",
		"LauncherClass = com.example.PyLauncher\n"+
			"LauncherClassPath = lib/graalvm/missing.jar\n"+
			"Args = -H:MaxRuntimeCompileMethods=200\n")
	inst.bundle(t, "tools", "profiler",
		"Args = -H:+Profiler\n")

	return inst
}

func (i *installation) bundle(t *testing.T, kindDir, name, content string) {
	t.Helper()
	path := filepath.Join(i.root, kindDir, name, domain.BundleFileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func (i *installation) config() *domain.DriverConfig {
	return &domain.DriverConfig{
		RootDir: i.root,
		WorkDir: i.work,
	}
}

// harness wires an Assembler with real filesystem adapters and mocked host facts.
type harness struct {
	assembler *planner.Assembler
	recorder  *tracetest.SpanRecorder
	warnings  []string
}

func newHarness(t *testing.T, memory int64) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{recorder: tracetest.NewSpanRecorder()}

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().SetVerbose(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		h.warnings = append(h.warnings, msg)
	}).AnyTimes()

	mockHost := mocks.NewMockHost(ctrl)
	mockHost.EXPECT().NumCPU().Return(8).AnyTimes()
	mockHost.EXPECT().PhysicalMemory().Return(memory, nil).AnyTimes()
	mockHost.EXPECT().Platform().Return(platform).AnyTimes()

	h.assembler = planner.NewAssembler(
		mockLogger,
		telemetry.NewOTelTracer("test", h.recorder),
		fs.NewResolver(),
		macro.NewRegistry(),
		mockHost,
	)
	return h
}

func (h *harness) assemble(t *testing.T, cfg *domain.DriverConfig, args ...string) (*planner.Plan, error) {
	t.Helper()
	return h.assembler.Assemble(context.Background(), cfg, args)
}

func count(items []string, prefix string) int {
	n := 0
	for _, item := range items {
		if strings.HasPrefix(item, prefix) {
			n++
		}
	}
	return n
}

func TestAssemble_ExecutableImage(t *testing.T) {
	inst := newInstallation(t)
	h := newHarness(t, domain.GiB(10))

	plan, err := h.assemble(t, inst.config(), "-cp", "classes", "com.example.Hello", "arg1")
	require.NoError(t, err)
	require.NotNil(t, plan.Descriptor)

	out := strings.ReplaceAll(plan.Descriptor.String(), inst.tmp, "$TMP")
	g := goldie.New(t)
	g.Assert(t, "executable_image", []byte(out))
}

func TestAssemble_StagesAreTraced(t *testing.T) {
	inst := newInstallation(t)
	h := newHarness(t, domain.GiB(10))

	_, err := h.assemble(t, inst.config(), "com.example.Hello")
	require.NoError(t, err)

	var names []string
	for _, s := range h.recorder.Ended() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		planner.StageInit,
		planner.StageParseTokens,
		planner.StageExpandMacros,
		planner.StageConsolidateArgs,
		planner.StageResolveIdentity,
		planner.StageBuildClasspath,
		planner.StageFinalize,
		"assemble",
	}, names)
}

func TestAssemble_FailedStageStopsPipeline(t *testing.T) {
	inst := newInstallation(t)
	h := newHarness(t, domain.GiB(10))

	_, err := h.assemble(t, inst.config(), "--verbose")
	require.ErrorIs(t, err, domain.ErrMissingMainClass)

	ended := h.recorder.Ended()
	require.NotEmpty(t, ended)
	last := ended[len(ended)-2]
	assert.Equal(t, planner.StageResolveIdentity, last.Name())
}

func TestAssemble_HelpStopsEarly(t *testing.T) {
	inst := newInstallation(t)
	h := newHarness(t, domain.GiB(10))

	plan, err := h.assemble(t, inst.config(), "--help", "--bogus")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionHelp, plan.Session.Action)
	assert.Nil(t, plan.Descriptor)
}

func TestAssemble_UserHeapWins(t *testing.T) {
	inst := newInstallation(t)
	h := newHarness(t, domain.GiB(10))

	plan, err := h.assemble(t, inst.config(), "-J-Xms4g", "-J-Xmx2g", "com.example.Hello")
	require.NoError(t, err)

	javaArgs := plan.Descriptor.JavaArgs()
	assert.Equal(t, 1, count(javaArgs, domain.JavaOptionXmx))
	assert.Equal(t, 1, count(javaArgs, domain.JavaOptionXms))
	assert.Contains(t, javaArgs, "-Xmx2g")
	assert.Contains(t, javaArgs, "-Xms2g")
}

func TestAssemble_RepeatedUserHeapLastWins(t *testing.T) {
	inst := newInstallation(t)

	t.Run("repeated value", func(t *testing.T) {
		h := newHarness(t, domain.GiB(10))
		plan, err := h.assemble(t, inst.config(), "-J-Xmx2g", "-J-Xmx4g", "-J-Xmx2g", "com.example.Hello")
		require.NoError(t, err)

		javaArgs := plan.Descriptor.JavaArgs()
		assert.Equal(t, 1, count(javaArgs, domain.JavaOptionXmx))
		assert.Contains(t, javaArgs, "-Xmx2g")
	})

	t.Run("value equal to the default", func(t *testing.T) {
		// 80% of 10g is 8g.
		h := newHarness(t, domain.GiB(10))
		plan, err := h.assemble(t, inst.config(), "-J-Xmx2g", "-J-Xmx8g", "com.example.Hello")
		require.NoError(t, err)

		javaArgs := plan.Descriptor.JavaArgs()
		assert.Equal(t, 1, count(javaArgs, domain.JavaOptionXmx))
		assert.Contains(t, javaArgs, "-Xmx8g")
	})
}

func TestAssemble_HeapCappedAt14g(t *testing.T) {
	inst := newInstallation(t)
	h := newHarness(t, domain.GiB(64))

	plan, err := h.assemble(t, inst.config(), "com.example.Hello")
	require.NoError(t, err)
	assert.Contains(t, plan.Descriptor.JavaArgs(), "-Xmx14g")
}

func TestAssemble_PolyglotImage(t *testing.T) {
	inst := newInstallation(t)
	// 80% of 5g is 4g, below the polyglot requirement of 5g for two languages.
	h := newHarness(t, domain.GiB(5))

	plan, err := h.assemble(t, inst.config(), "--language:js", "--language:python")
	require.NoError(t, err)

	d := plan.Descriptor
	imageArgs := d.ImageArgs()
	assert.Contains(t, imageArgs, "-H:Name=polyglot")
	assert.Contains(t, imageArgs, "-H:Class="+domain.PolyglotLauncherClass)
	assert.Contains(t, imageArgs, "-H:MaxRuntimeCompileMethods=300")
	assert.Equal(t, 1, count(imageArgs, domain.OptionMaxRuntimeCompileMethods))

	javaArgs := d.JavaArgs()
	assert.Contains(t, javaArgs, "-Xmx5g")
	assert.Equal(t, 1, count(javaArgs, domain.JavaOptionXmx))
	assert.Contains(t, javaArgs, domain.JavaOptionLauncherClasses+"com.example.JSLauncher,com.example.PyLauncher")
	assert.Contains(t, javaArgs, domain.JavaOptionLauncherClasspath+
		filepath.Join("jre", "lib", "graalvm", "js-launcher.jar")+domain.PathListSeparator+
		filepath.Join("jre", "lib", "graalvm", "launcher-common.jar"))

	cp := d.ImageClasspath()
	assert.Contains(t, cp, filepath.Join(inst.root, "lib", "graalvm", "js-launcher.jar"))
	assert.Contains(t, cp, filepath.Join(inst.root, "lib", "graalvm", "launcher-common.jar"))
	assert.Contains(t, cp, inst.work)
	assert.NotContains(t, cp, filepath.Join(inst.root, "lib", "graalvm", "missing.jar"))

	require.Len(t, h.warnings, 1)
	assert.Contains(t, h.warnings[0], "missing.jar")
}

func TestAssemble_PolyglotKeepsExplicitName(t *testing.T) {
	inst := newInstallation(t)
	h := newHarness(t, domain.GiB(10))

	plan, err := h.assemble(t, inst.config(), "--language:js", "--language:python", "--name=mytool")
	require.NoError(t, err)

	imageArgs := plan.Descriptor.ImageArgs()
	assert.Contains(t, imageArgs, "-H:Name=mytool")
	assert.NotContains(t, imageArgs, "-H:Name=polyglot")
	assert.Contains(t, imageArgs, "-H:Class="+domain.PolyglotLauncherClass)
}

func TestAssemble_AllOfKindWithMainClass(t *testing.T) {
	inst := newInstallation(t)
	h := newHarness(t, domain.GiB(10))

	plan, err := h.assemble(t, inst.config(), "--language:all", "--tool:all", "Foo")
	require.NoError(t, err)

	var enabled []string
	for _, b := range plan.Session.EnabledBundles() {
		enabled = append(enabled, b.Flag())
	}
	assert.Equal(t, []string{"--language:js", "--language:python", "--tool:profiler"}, enabled)

	imageArgs := plan.Descriptor.ImageArgs()
	assert.Contains(t, imageArgs, "-H:+Profiler")
	assert.Contains(t, imageArgs, "-H:Class=Foo")
	assert.Contains(t, imageArgs, "-H:Name=foo")
	assert.Equal(t, 1, count(imageArgs, domain.OptionClass))
	assert.Equal(t, 1, count(imageArgs, domain.OptionName))
	assert.Equal(t, 0, count(plan.Descriptor.JavaArgs(), domain.JavaOptionLauncherClasspath))
}

func TestAssemble_LauncherOutsideRootWarns(t *testing.T) {
	inst := newInstallation(t)
	h := newHarness(t, domain.GiB(10))

	plan, err := h.assemble(t, inst.config(), "--language:js", "-cp", "classes", "com.example.JSLauncher")
	require.NoError(t, err)

	assert.Contains(t, plan.Descriptor.JavaArgs(), domain.JavaOptionLauncherClasspath+
		filepath.Join("jre", "lib", "graalvm", "js-launcher.jar")+domain.PathListSeparator+
		filepath.Join("jre", "lib", "graalvm", "launcher-common.jar"))

	require.Len(t, h.warnings, 1)
	assert.Contains(t, h.warnings[0], filepath.Join(inst.work, "classes"))
	assert.Contains(t, h.warnings[0], "launcher classpath")
}

func TestAssemble_SharedLibrary(t *testing.T) {
	inst := newInstallation(t)
	h := newHarness(t, domain.GiB(10))

	plan, err := h.assemble(t, inst.config(), "--shared", "--name=libdemo")
	require.NoError(t, err)
	imageArgs := plan.Descriptor.ImageArgs()
	assert.Contains(t, imageArgs, "-H:Kind="+domain.KindSharedLibrary)
	assert.Equal(t, 0, count(imageArgs, domain.OptionClass))
}

func TestAssemble_SharedLibraryRejectsPositionals(t *testing.T) {
	inst := newInstallation(t)
	h := newHarness(t, domain.GiB(10))

	_, err := h.assemble(t, inst.config(), "--shared", "extra")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUnrecognizedOptions.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error")
	assert.Equal(t, "extra", zErr.Metadata()["option"])
}

func TestAssemble_PrintFlagsNeedsNoMainClass(t *testing.T) {
	inst := newInstallation(t)
	h := newHarness(t, domain.GiB(10))

	plan, err := h.assemble(t, inst.config(), "-H:PrintFlags=+")
	require.NoError(t, err)
	assert.Equal(t, 0, count(plan.Descriptor.ImageArgs(), domain.OptionClass))
}

func TestAssemble_MissingImageName(t *testing.T) {
	inst := newInstallation(t)
	inst.bundle(t, "languages", "ruby", "Args = -H:Class=org.example.Ruby\n")
	h := newHarness(t, domain.GiB(10))

	_, err := h.assemble(t, inst.config(), "--language:ruby")
	require.ErrorIs(t, err, domain.ErrMissingImageName)
}

func TestAssemble_DefaultArgsArePrepended(t *testing.T) {
	inst := newInstallation(t)
	h := newHarness(t, domain.GiB(10))
	cfg := inst.config()
	cfg.DefaultArgs = []string{"-H:Name=fromconfig", "-H:Features=a.A"}

	plan, err := h.assemble(t, cfg, "-H:Features=b.B,a.A", "com.example.Hello")
	require.NoError(t, err)

	imageArgs := plan.Descriptor.ImageArgs()
	assert.Contains(t, imageArgs, "-H:Name=fromconfig")
	assert.Contains(t, imageArgs, "-H:Features=a.A,b.B")
	assert.Equal(t, 1, count(imageArgs, domain.OptionFeatures))
}

func TestAssemble_JavaHome(t *testing.T) {
	t.Run("not set", func(t *testing.T) {
		inst := newInstallation(t)
		require.NoError(t, os.Remove(filepath.Join(inst.tmp, "bin", "java")))
		h := newHarness(t, domain.GiB(10))

		_, err := h.assemble(t, inst.config(), "com.example.Hello")
		require.ErrorIs(t, err, domain.ErrJavaHomeNotSet)
	})

	t.Run("invalid", func(t *testing.T) {
		inst := newInstallation(t)
		require.NoError(t, os.Remove(filepath.Join(inst.tmp, "bin", "java")))
		h := newHarness(t, domain.GiB(10))
		cfg := inst.config()
		cfg.JavaHome = t.TempDir()

		_, err := h.assemble(t, cfg, "com.example.Hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrJavaHomeInvalid.Error())
	})

	t.Run("fallback", func(t *testing.T) {
		inst := newInstallation(t)
		require.NoError(t, os.Remove(filepath.Join(inst.tmp, "bin", "java")))
		h := newHarness(t, domain.GiB(10))
		javaHome := t.TempDir()
		touch(t, domain.JavaExecutable(javaHome), 0o700)
		cfg := inst.config()
		cfg.JavaHome = javaHome

		plan, err := h.assemble(t, cfg, "com.example.Hello")
		require.NoError(t, err)
		assert.Equal(t, domain.JavaExecutable(javaHome), plan.Descriptor.JavaExecutable())
	})
}

func TestAssemble_InvalidClasspathEntry(t *testing.T) {
	inst := newInstallation(t)
	h := newHarness(t, domain.GiB(10))

	_, err := h.assemble(t, inst.config(), "-cp", "does-not-exist", "com.example.Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidPath.Error())
}
