// Package commands implements the CLI commands for the native-image driver.
package commands

import (
	"context"
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/ui/output"
	"go.trai.ch/nativeimage/internal/ui/style"
)

//go:embed usage.txt
var usageText string

// CLI represents the command line interface for native-image.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, args []string) (domain.Action, error)
}

// New creates a new CLI instance with the given app.
//
// The driver grammar is not POSIX style, so cobra hands every argument
// through unparsed.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:                "native-image [options] class [args...]",
		Short:              "Build a native image from Java classes",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	rootCmd.RunE = c.run

	return c
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return printUsage(out)
	}

	action, err := c.app.Run(cmd.Context(), args)
	if err != nil {
		return err
	}

	switch action {
	case domain.ActionHelp:
		return printUsage(out)
	case domain.ActionVersion:
		return printVersion(out)
	default:
		return nil
	}
}

// Usage returns the help text with the platform path list separator filled in.
func Usage() string {
	return strings.ReplaceAll(usageText, "%pathsep%", string(os.PathListSeparator))
}

func printUsage(w io.Writer) error {
	text := Usage()
	if output.IsTerminal(w) && os.Getenv("NO_COLOR") == "" {
		head, rest, _ := strings.Cut(text, "\n")
		text = style.Banner(head) + "\n" + rest
	}
	_, err := io.WriteString(w, text)
	return err
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
