package commands

import (
	"fmt"
	"io"

	"go.trai.ch/nativeimage/internal/build"
)

func printVersion(w io.Writer) error {
	_, err := fmt.Fprintf(w, "native-image %s (GraalVM %s, commit: %s, date: %s)\n",
		build.Version,
		build.GraalVMVersion,
		build.Commit,
		build.Date,
	)
	return err
}
