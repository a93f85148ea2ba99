package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/oxhq/dearbind/internal/errs"
)

// PrintFatal reports a top-level conversion error in the format §10.3
// requests: a one-line message to stderr, or a JSON-encoded errs.CLIError
// when cfg.JSON was set.
func PrintFatal(err error, jsonOut bool) {
	if jsonOut {
		fmt.Println(errs.AsCLIError(err).JSON())
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

// PrintUsage writes the flag set's usage text to stderr, in the shape
// the teacher's own PrintUsage does.
func PrintUsage(fs *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, "\nUsage: dearbind [flags] <header.h>\n")
	fmt.Fprintf(os.Stderr, "\nFlags:\n")
	fs.PrintDefaults()
}
