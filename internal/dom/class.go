package dom

import "io"

// ClassKind distinguishes the three C++ aggregate kinds the DOM tracks
// under one variant (spec §3.1) — a class and a struct differ only in
// default accessibility, and a union shares the same member-list shape.
type ClassKind string

const (
	ClassKindClass  ClassKind = "class"
	ClassKindStruct ClassKind = "struct"
	ClassKindUnion  ClassKind = "union"
)

// ClassStructUnion is a class, struct, or union declaration, and a
// Container over its member declarations (spec §3.1, §3.2).
type ClassStructUnion struct {
	Base
	declList

	Kind ClassKind
	Name string

	// TemplateParams lists the names bound by a preceding
	// "template<typename T, ...>" clause, in declaration order. Empty
	// for a non-template aggregate. flatten_templates substitutes each
	// name for the corresponding argument of a concrete instantiation
	// (spec §4.5).
	TemplateParams []string

	// BaseClasses lists the direct base class names in declaration order
	// (accessibility of inheritance is not tracked; only the names are
	// kept).
	BaseClasses []string

	IsForwardDeclaration bool
	// IsByValue marks a struct intended to be passed/returned by value
	// rather than through a pointer handle, mirrored onto constructors
	// generated for it (spec §4.5, IsByValueConstructor).
	IsByValue bool
}

func (c *ClassStructUnion) TypeName() string { return "ClassStructUnion" }

func (c *ClassStructUnion) ChildLists() [][]Node { return [][]Node{c.decls()} }

func (c *ClassStructUnion) Decls() []Node { return c.decls() }

func (c *ClassStructUnion) AddDecl(n Node) { c.addDecl(c, n) }

func (c *ClassStructUnion) RemoveDecl(n Node) { c.removeDecl(n) }

func (c *ClassStructUnion) InsertDeclBefore(mark, n Node) { c.insertDeclBefore(c, mark, n) }

func (c *ClassStructUnion) InsertDeclAfter(mark, n Node) { c.insertDeclAfter(c, mark, n) }

func (c *ClassStructUnion) ReplaceDecl(old, n Node) { c.replaceDecl(c, old, n) }

func (c *ClassStructUnion) ReplaceDeclWithMany(old Node, many []Node) {
	c.replaceDeclWithMany(c, old, many)
}

func (c *ClassStructUnion) Clone() Node {
	clone := &ClassStructUnion{
		Base:                 c.cloneBase(),
		Kind:                 c.Kind,
		Name:                 c.Name,
		TemplateParams:       append([]string(nil), c.TemplateParams...),
		BaseClasses:          append([]string(nil), c.BaseClasses...),
		IsForwardDeclaration: c.IsForwardDeclaration,
		IsByValue:            c.IsByValue,
	}
	clone.declList = declList{items: c.cloneItems()}
	for _, m := range clone.declList.items {
		m.SetParent(clone)
	}
	return clone
}

func (c *ClassStructUnion) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	writePrecedingComments(w, indent, ctx, c)

	if c.IsForwardDeclaration {
		writeCLine(w, indent, addAttachedCommentSuffix(string(c.Kind)+" "+c.Name+";", c))
		return
	}

	writeCLine(w, indent, string(c.Kind)+" "+c.Name)
	writeCLine(w, indent, "{")
	for _, member := range c.decls() {
		member.WriteToC(w, indent+1, ctx)
	}
	writeCLine(w, indent, addAttachedCommentSuffix("};", c))
}
