// Package cheader drives the DOM's own WriteToC method with a
// ForC write context, producing the C89+stdbool header output described
// in SPEC_FULL.md §6.3 ("C header writer"). All emission logic lives on
// the DOM elements themselves (internal/dom); this package only owns the
// write context and the output destination.
package cheader

import (
	"io"
	"os"

	"github.com/oxhq/dearbind/internal/dom"
)

// Write renders root to w using the C header write context.
func Write(w io.Writer, root *dom.HeaderFileSet) error {
	root.WriteToC(w, 0, &dom.WriteContext{ForC: true})
	return nil
}

// WriteFile renders root to a new file at path, truncating any existing
// content (mirrors the `-o <path>.h` output named in SPEC_FULL.md §6.1).
func WriteFile(path string, root *dom.HeaderFileSet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, root)
}
