package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/nativeimage/internal/ui/output"
	"go.trai.ch/nativeimage/internal/ui/style"
)

// WarningPrefix starts every warning line, as the image builder does.
const WarningPrefix = "Warning: "

// levelStyle is the decoration applied to a record of a given level.
type levelStyle struct {
	prefix string
	color  lipgloss.Color
}

func styleFor(level slog.Level) levelStyle {
	switch {
	case level >= slog.LevelError:
		return levelStyle{prefix: style.Cross + " ", color: style.Red}
	case level >= slog.LevelWarn:
		return levelStyle{prefix: WarningPrefix, color: style.Yellow}
	case level < slog.LevelInfo:
		return levelStyle{prefix: style.Tilde + " ", color: style.Iris}
	default:
		return levelStyle{color: style.Slate}
	}
}

// PrettyHandler is a slog.Handler writing one colored line per record.
// Continuation lines of multi-line messages are indented under the prefix.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// bound holds attributes added through WithAttrs, already rendered.
	bound []string
	// group is the dotted key prefix for attributes added from now on.
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
// A LevelVar passed in opts stays live, so later level changes apply.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	ls := styleFor(r.Level)

	parts := append([]string(nil), h.bound...)
	r.Attrs(func(attr slog.Attr) bool {
		if s, ok := renderAttr(h.group, attr); ok {
			parts = append(parts, s)
		}
		return true
	})

	lines := strings.Split(r.Message, "\n")
	if len(parts) > 0 {
		lines[len(lines)-1] += " " + strings.Join(parts, " ")
	}
	indent := strings.Repeat(" ", len([]rune(ls.prefix)))

	var b strings.Builder
	for i, line := range lines {
		if i == 0 {
			line = ls.prefix + line
		} else if line != "" {
			line = indent + line
		}
		b.WriteString(h.out.String(line).Foreground(termenv.RGBColor(string(ls.color))).String())
		b.WriteByte('\n')
	}

	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes bound under the current group.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.bound = append(append([]string(nil), h.bound...), renderAttrs(h.group, attrs)...)
	return &next
}

// WithGroup returns a new Handler nesting subsequent attributes under name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = qualify(h.group, name)
	return &next
}

func renderAttrs(group string, attrs []slog.Attr) []string {
	out := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		if s, ok := renderAttr(group, attr); ok {
			out = append(out, s)
		}
	}
	return out
}

// renderAttr renders attr as key=value. Group values are flattened into
// dotted keys and empty attributes are dropped.
func renderAttr(group string, attr slog.Attr) (string, bool) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return "", false
	}
	if attr.Value.Kind() == slog.KindGroup {
		nested := renderAttrs(qualify(group, attr.Key), attr.Value.Group())
		return strings.Join(nested, " "), len(nested) > 0
	}
	return qualify(group, attr.Key) + "=" + attr.Value.String(), true
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}
	if key == "" {
		return group
	}
	return group + "." + key
}
