package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/nativeimage/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("building image")
	lg.Warn("Ignoring 'lib/missing.jar' from LauncherClassPath")
	lg.Debug("hidden")

	g := goldie.New(t)
	g.Assert(t, "levels", buf.Bytes())
}

func TestLogger_Verbose(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetVerbose(true)
	lg.Debug("shown")
	lg.SetVerbose(false)
	lg.Debug("hidden")

	assert.Equal(t, "~ shown\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.Wrap(errors.New("exit status 3"), "Image building failed")
	lg.Error(err)

	g := goldie.New(t)
	g.Assert(t, "error_chain", buf.Bytes())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, nil)

	lg := slog.New(h.WithGroup("plan").WithAttrs([]slog.Attr{slog.String("stage", "init")}))
	lg.Info("done", "elapsed", "1ms")

	assert.Equal(t, "done plan.stage=init plan.elapsed=1ms\n", buf.String())
}

func TestPrettyHandler_NestedGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, nil)

	lg := slog.New(h.WithAttrs([]slog.Attr{slog.String("run", "1")}).WithGroup("plan").WithGroup("stage"))
	lg.Info("done", slog.Group("time", slog.String("elapsed", "1ms")), slog.Attr{})

	assert.Equal(t, "done run=1 plan.stage.time.elapsed=1ms\n", buf.String())
}

func TestPrettyHandler_MultilineWarning(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Warn("first line\nsecond line")

	assert.Equal(t, logger.WarningPrefix+"first line\n         second line\n", buf.String())
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name: "cause chain",
			entries: []logger.ErrorEntry{
				{Message: "first"},
				{Message: "second"},
				{Message: "third"},
			},
			want: "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{
				{Message: "unrecognized options", Metadata: map[string]any{"options": "-x, -y", "count": 2}},
			},
			want: "Error: unrecognized options\n       count: 2\n       options: -x, -y",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"path": "/x"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      path: /x",
		},
		{
			name:    "multiline",
			entries: []logger.ErrorEntry{{Message: "line1\nline2"}},
			want:    "Error: line1\n       line2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}

func TestCollectErrorEntries(t *testing.T) {
	err := zerr.With(zerr.Wrap(zerr.With(zerr.New("inner"), "inner_key", "v"), "outer"), "outer_key", 1)

	entries := logger.CollectErrorEntries(err)

	assert.Len(t, entries, 2)
	assert.Equal(t, "outer", entries[0].Message)
	assert.Equal(t, map[string]any{"outer_key": 1}, entries[0].Metadata)
	assert.Equal(t, "inner", entries[1].Message)
	assert.Equal(t, map[string]any{"inner_key": "v"}, entries[1].Metadata)

	plain := logger.CollectErrorEntries(errors.New("plain"))
	assert.Equal(t, []logger.ErrorEntry{{Message: "plain"}}, plain)
}
