package dom

import (
	"fmt"
	"io"
	"strings"
)

// ParseContext carries lexical state during parsing. It is currently a thin
// placeholder (mirroring the original implementation's equally thin
// ParseContext) but exists as an explicit seam so future macro-conditional
// tracking doesn't have to be threaded through every parse function's
// signature after the fact.
type ParseContext struct {
	// Filename is the logical name of the header file being parsed, used to
	// stamp Position values on synthesized nodes.
	Filename string
}

// WriteContext carries output-mode flags during emission (spec §2.4, §6.3).
type WriteContext struct {
	// ForC selects C89+stdbool output (used by the C header writer).
	ForC bool
	// ForImplementation selects C++ thunk output, where fully-qualified
	// names and original_class call-throughs are used instead of the
	// flattened C names.
	ForImplementation bool
}

// IndentString is the unit of indentation written per level.
const IndentString = "    "

// writeCLine writes one line, applying indent*IndentString as a prefix.
// Grounded on the original's write_c_line helper.
func writeCLine(w io.Writer, indent int, line string) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(IndentString, indent), line)
}

// writeRaw writes text with no trailing newline of its own, after an indent
// prefix; used for declarations that append their own terminator.
func writeRaw(w io.Writer, indent int, text string) {
	fmt.Fprintf(w, "%s%s", strings.Repeat(IndentString, indent), text)
}
