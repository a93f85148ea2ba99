// Package modifier implements the tree-rewriting passes that transform a
// parsed DOM (internal/dom) into its C-compatible form (spec §4.4, §4.5).
// A modifier here is nothing more than a Go function taking a
// *dom.HeaderFileSet plus whatever parameters it needs and returning an
// error — the same "small focused free function over a shared value"
// convention the teacher uses for its provider pipeline stages, rather
// than a stateful visitor object. Ordering is not encoded here; the
// internal/pipeline package is the one place that decides what runs when.
package modifier

import "github.com/oxhq/dearbind/internal/dom"

// detach removes n from whatever container or conditional branch
// currently holds it. Containers (HeaderFile, Namespace, ClassStructUnion)
// expose RemoveDecl directly; a PreprocessorConditional owns two
// independent lists instead of implementing dom.Container (see that
// interface's doc comment), so it needs its own removal path.
func detach(n dom.Node) {
	switch p := n.Parent().(type) {
	case dom.Container:
		p.RemoveDecl(n)
	case *dom.PreprocessorConditional:
		p.RemoveThen(n)
		p.RemoveElse(n)
	}
}

// replaceWithMany substitutes old, wherever it currently lives, with many,
// in order, preserving old's position. Mirrors detach's parent-type
// dispatch.
func replaceWithMany(old dom.Node, many []dom.Node) {
	switch p := old.Parent().(type) {
	case dom.Container:
		p.ReplaceDeclWithMany(old, many)
	case *dom.PreprocessorConditional:
		if containsNode(p.Then, old) {
			p.ReplaceThenWithMany(old, many)
		} else {
			p.ReplaceElseWithMany(old, many)
		}
	}
}

func containsNode(list []dom.Node, n dom.Node) bool {
	for _, c := range list {
		if c == n {
			return true
		}
	}
	return false
}
