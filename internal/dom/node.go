// Package dom implements the Document Object Model over C++ declarations
// described in SPEC_FULL.md §3 — a typed, mutable, hierarchical
// representation of a parsed header, plus the primitives (child-list
// access, cloning, validation, C emission) every variant must provide
// (§4.3). The tree-rewriting passes that transform this DOM live in the
// sibling internal/modifier package.
package dom

import "io"

// Node is the interface every DOM element variant implements. It mirrors
// the original implementation's DOMElement base class: a parent
// back-reference, child-list access for generic traversal/validation,
// deep cloning, and C emission.
type Node interface {
	// Parent returns the node's parent, or nil for the root.
	Parent() Node
	// SetParent rebinds the node's parent back-reference. It does not, by
	// itself, add the node to the new parent's child list — callers doing
	// tree surgery should go through a Container's AddDecl/InsertDecl*/
	// ReplaceDecl* methods, which call SetParent as part of maintaining
	// both directions of the link (invariant 1, spec §3.2).
	SetParent(Node)

	// ChildLists returns every child list this node owns (structural and
	// semantic, per spec §3.1), in a fixed, documented-per-variant order.
	// Used by ValidateHierarchy and by the generic Walk/
	// ListAllChildrenOfType helpers. Comment slots (PrecedingComments,
	// AttachedComment) are intentionally excluded — they are written out
	// specially, not walked as structural children.
	ChildLists() [][]Node

	// Clone performs a deep copy, except for explicitly shallow fields
	// (FunctionDeclaration.OriginalClass — invariant 4, spec §3.2).
	Clone() Node

	// WriteToC renders this node as C (or, with ctx.ForImplementation, as
	// the C++ thunk-layer form) at the given indent level.
	WriteToC(w io.Writer, indent int, ctx *WriteContext)

	// TypeName identifies the concrete variant, e.g. "FunctionDeclaration".
	// Used for diagnostics. ValidateHierarchy checks parent links only; it
	// does not check which variants a child list may hold.
	TypeName() string
}

// Commented is implemented by every element that carries comment slots
// (which, per spec §3.1, is every element).
type Commented interface {
	PrecedingComments() []*Comment
	SetPrecedingComments([]*Comment)
	AttachedComment() *Comment
	SetAttachedComment(*Comment)
}

// Base holds the fields shared by every DOM element variant: the parent
// back-reference and the two comment slots. Concrete variants embed Base
// and get Parent/SetParent/*Comment* for free; they still implement
// ChildLists/Clone/WriteToC/TypeName themselves, since those genuinely
// differ per variant.
type Base struct {
	parent            Node
	precedingComments []*Comment
	attachedComment   *Comment
}

func (b *Base) Parent() Node { return b.parent }

func (b *Base) SetParent(p Node) { b.parent = p }

func (b *Base) PrecedingComments() []*Comment { return b.precedingComments }

func (b *Base) SetPrecedingComments(cs []*Comment) { b.precedingComments = cs }

func (b *Base) AttachedComment() *Comment { return b.attachedComment }

func (b *Base) SetAttachedComment(c *Comment) { b.attachedComment = c }

func (b *Base) cloneBase() Base {
	clone := Base{}
	if len(b.precedingComments) > 0 {
		clone.precedingComments = make([]*Comment, len(b.precedingComments))
		for i, c := range b.precedingComments {
			clone.precedingComments[i] = c.Clone().(*Comment)
		}
	}
	if b.attachedComment != nil {
		clone.attachedComment = b.attachedComment.Clone().(*Comment)
	}
	return clone
}

// Container is implemented by every DOM element that owns an ordered list
// of top-level declarations a modifier might insert into, remove from, or
// splice: HeaderFile, Namespace, and ClassStructUnion (members).
// HeaderFileSet, the tree root, owns a list of *HeaderFile instead of a
// generic decl list and exposes AddFile for it. PreprocessorConditional
// has its own Then/Else accessors instead, since it owns two independent
// lists rather than one.
type Container interface {
	Node
	Decls() []Node
	AddDecl(n Node)
	RemoveDecl(n Node)
	InsertDeclBefore(mark, n Node)
	InsertDeclAfter(mark, n Node)
	ReplaceDecl(old, n Node)
	// ReplaceDeclWithMany substitutes old with many, in order, preserving
	// old's position. Used by the flattening passes (namespaces, nested
	// classes, conditionals) to hoist a scope's children into its parent.
	ReplaceDeclWithMany(old Node, many []Node)
}

// declList is a small reusable implementation of the ordered-list
// bookkeeping shared by every Container; each container type embeds one
// and forwards Decls/AddDecl/etc. to it, supplying itself as the `self`
// argument so children's parent pointers point at the container, not at
// the declList helper.
type declList struct {
	items []Node
}

func (d *declList) decls() []Node { return d.items }

func (d *declList) addDecl(self Node, n Node) {
	n.SetParent(self)
	d.items = append(d.items, n)
}

func (d *declList) removeDecl(n Node) {
	for i, c := range d.items {
		if c == n {
			d.items = append(d.items[:i], d.items[i+1:]...)
			n.SetParent(nil)
			return
		}
	}
}

func (d *declList) insertDeclBefore(self Node, mark, n Node) {
	d.insertAt(self, mark, n, 0)
}

func (d *declList) insertDeclAfter(self Node, mark, n Node) {
	d.insertAt(self, mark, n, 1)
}

func (d *declList) insertAt(self Node, mark, n Node, offset int) {
	for i, c := range d.items {
		if c == mark {
			idx := i + offset
			n.SetParent(self)
			d.items = append(d.items[:idx], append([]Node{n}, d.items[idx:]...)...)
			return
		}
	}
	// Mark not found: fall back to appending, so callers never silently
	// drop a node.
	d.addDecl(self, n)
}

func (d *declList) replaceDecl(self Node, old, n Node) {
	for i, c := range d.items {
		if c == old {
			old.SetParent(nil)
			n.SetParent(self)
			d.items[i] = n
			return
		}
	}
}

func (d *declList) replaceDeclWithMany(self Node, old Node, many []Node) {
	for i, c := range d.items {
		if c == old {
			old.SetParent(nil)
			for _, n := range many {
				n.SetParent(self)
			}
			tail := append([]Node{}, d.items[i+1:]...)
			d.items = append(d.items[:i], many...)
			d.items = append(d.items, tail...)
			return
		}
	}
}

func (d *declList) cloneItems() []Node {
	out := make([]Node, len(d.items))
	for i, c := range d.items {
		out[i] = c.Clone()
	}
	return out
}
