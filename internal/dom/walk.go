package dom

// Walk visits root and every descendant, depth-first pre-order, in the
// order each node's ChildLists reports. visit returning false prunes that
// node's subtree (its children are not visited) but walking continues
// with its siblings.
func Walk(root Node, visit func(Node) bool) {
	if root == nil {
		return
	}
	if !visit(root) {
		return
	}
	for _, list := range root.ChildLists() {
		for _, child := range list {
			Walk(child, visit)
		}
	}
}

// ListAllChildrenOfType returns every descendant of root assignable to T,
// in Walk order, including root itself if it matches. Go's type parameters
// give this a reflection-free, exhaustive implementation — the kind of
// generic tree walk the teacher's tree-sitter-backed,
// untyped node representation couldn't express directly.
func ListAllChildrenOfType[T Node](root Node) []T {
	var out []T
	Walk(root, func(n Node) bool {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}
