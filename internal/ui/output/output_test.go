package output_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/nativeimage/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.Equal(t, termenv.Ascii, output.ColorProfile(os.Stderr))
}

func TestColorProfile_NotATerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	assert.Equal(t, termenv.Ascii, output.ColorProfile(&bytes.Buffer{}))
	assert.False(t, output.IsTerminal(&bytes.Buffer{}))
}

func TestNew_PlainOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	out := output.New(buf)

	_, err := out.WriteString(out.String("hello").Bold().String())

	assert.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
}
