package dom

import (
	"io"
	"strings"
)

// Type is a composite describing qualifiers, storage modifiers, the
// primary type name, template arguments, and array dimensions (spec
// §3.1). Per design note §9, Type is deliberately stringly-typed: its
// canonical form is whatever ToCString prints, and two Types are
// considered equal iff their printed forms are equal.
type Type struct {
	Base

	Const    bool
	Volatile bool

	// PointerDepth is the number of '*' applied to the primary type
	// (e.g. 2 for "char**").
	PointerDepth int
	// Reference is true for a "T&" type; convert_references_to_pointers
	// clears this and increments PointerDepth instead.
	Reference bool

	PrimaryTypeName string

	// TemplateArgs holds the recursive template argument list for a
	// templated type reference, e.g. ImVector<ImWchar> -> ["ImWchar"].
	// Empty for non-template types.
	TemplateArgs []*Type

	// ArrayDims holds one raw size expression per array dimension
	// (stringly-typed per the design note above), e.g. Type "float[4]"
	// has ArrayDims = ["4"].
	ArrayDims []string

	// RawOverride, when non-empty, is printed verbatim by ToCString in
	// place of every other field — the mechanism flatten_templates'
	// custom_type_fudges uses to force a printed form a structural
	// composition of qualifiers/pointer-depth would otherwise get wrong
	// (spec §4.5, e.g. "const ImFont**" -> "ImFont* const*").
	RawOverride string
}

func (t *Type) TypeName() string { return "Type" }

func (t *Type) ChildLists() [][]Node {
	if len(t.TemplateArgs) == 0 {
		return nil
	}
	args := make([]Node, len(t.TemplateArgs))
	for i, a := range t.TemplateArgs {
		args[i] = a
	}
	return [][]Node{args}
}

func (t *Type) Clone() Node {
	clone := &Type{
		Base:            t.cloneBase(),
		Const:           t.Const,
		Volatile:        t.Volatile,
		PointerDepth:    t.PointerDepth,
		Reference:       t.Reference,
		PrimaryTypeName: t.PrimaryTypeName,
		ArrayDims:       append([]string(nil), t.ArrayDims...),
		RawOverride:     t.RawOverride,
	}
	if len(t.TemplateArgs) > 0 {
		clone.TemplateArgs = make([]*Type, len(t.TemplateArgs))
		for i, a := range t.TemplateArgs {
			c := a.Clone().(*Type)
			c.SetParent(clone)
			clone.TemplateArgs[i] = c
		}
	}
	return clone
}

// IsConst reports whether this type is const-qualified.
func (t *Type) IsConst() bool { return t.Const }

// IsReference reports whether this is a reference type ("T&").
func (t *Type) IsReference() bool { return t.Reference }

// IsPointer reports whether this type has at least one level of pointer
// indirection.
func (t *Type) IsPointer() bool { return t.PointerDepth > 0 }

// GetPrimaryTypeName returns the bare type name, with no qualifiers,
// pointer/reference decoration, template arguments, or array dimensions.
// Used by the disambiguation algorithm (spec §4.6 step 3) as the fallback
// suffix source.
func (t *Type) GetPrimaryTypeName() string { return t.PrimaryTypeName }

// ToCString renders this type's canonical printed form (spec §9: the
// canonical, equality-defining form of a Type).
func (t *Type) ToCString(ctx *WriteContext) string {
	if t.RawOverride != "" {
		return t.RawOverride
	}
	var b strings.Builder
	if t.Const {
		b.WriteString("const ")
	}
	if t.Volatile {
		b.WriteString("volatile ")
	}
	b.WriteString(t.PrimaryTypeName)
	if len(t.TemplateArgs) > 0 {
		b.WriteString("<")
		for i, a := range t.TemplateArgs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.ToCString(ctx))
		}
		b.WriteString(">")
	}
	if t.PointerDepth > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Repeat("*", t.PointerDepth))
	}
	if t.Reference {
		b.WriteString(" &")
	}
	for _, dim := range t.ArrayDims {
		b.WriteString("[")
		b.WriteString(dim)
		b.WriteString("]")
	}
	return b.String()
}

func (t *Type) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	writeRaw(w, 0, t.ToCString(ctx))
}
