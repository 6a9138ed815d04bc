package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nativeimage/cmd/native-image/commands"
	"go.trai.ch/nativeimage/internal/build"
	"go.trai.ch/nativeimage/internal/core/domain"
)

type mockApp struct {
	runFunc func(ctx context.Context, args []string) (domain.Action, error)
}

func (m *mockApp) Run(ctx context.Context, args []string) (domain.Action, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, args)
	}
	return domain.ActionBuild, nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	if args == nil {
		args = []string{}
	}
	cli.SetArgs(args)
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Run(t *testing.T) {
	t.Run("passes arguments through unparsed", func(t *testing.T) {
		var captured []string
		mock := &mockApp{
			runFunc: func(_ context.Context, args []string) (domain.Action, error) {
				captured = args
				return domain.ActionBuild, nil
			},
		}

		out, err := execute(t, mock, "-cp", "a.jar", "-H:Name=x", "--verbose", "com.example.Main", "-x")
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Equal(t, []string{"-cp", "a.jar", "-H:Name=x", "--verbose", "com.example.Main", "-x"}, captured)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string) (domain.Action, error) {
				return domain.ActionBuild, errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "Hello")
		require.Error(t, err)
		assert.Equal(t, "simulated error", err.Error())
	})

	t.Run("prints usage without arguments", func(t *testing.T) {
		called := false
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string) (domain.Action, error) {
				called = true
				return domain.ActionBuild, nil
			},
		}

		out, err := execute(t, mock)
		require.NoError(t, err)
		assert.False(t, called)
		assert.Contains(t, out, "Usage: native-image [options] class [args...]")
		assert.Contains(t, out, "A "+string(os.PathListSeparator)+" separated list")
		assert.NotContains(t, out, "%pathsep%")
	})

	t.Run("prints usage on help", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string) (domain.Action, error) {
				return domain.ActionHelp, nil
			},
		}

		out, err := execute(t, mock, "--help")
		require.NoError(t, err)
		assert.Equal(t, commands.Usage(), out)
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{
		runFunc: func(_ context.Context, _ []string) (domain.Action, error) {
			return domain.ActionVersion, nil
		},
	}

	out, err := execute(t, mock, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "native-image "+build.Version)
	assert.Contains(t, out, "GraalVM "+build.GraalVMVersion)
}
