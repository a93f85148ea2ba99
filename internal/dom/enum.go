package dom

import "io"

// EnumElement is one enumerator of an EnumDeclaration (spec §3.1).
type EnumElement struct {
	Base

	Name string
	// Value holds the raw initializer expression text ("1 << 2"), if any.
	Value    string
	HasValue bool
}

func (e *EnumElement) TypeName() string { return "EnumElement" }

func (e *EnumElement) ChildLists() [][]Node { return nil }

func (e *EnumElement) Clone() Node {
	return &EnumElement{Base: e.cloneBase(), Name: e.Name, Value: e.Value, HasValue: e.HasValue}
}

func (e *EnumElement) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	writePrecedingComments(w, indent, ctx, e)
	line := e.Name
	if e.HasValue {
		line += " = " + e.Value
	}
	writeCLine(w, indent, addAttachedCommentSuffix(line+",", e))
}

// EnumDeclaration is an (optionally scoped) enum declaration and its
// elements (spec §3.1). This variant owns its elements; no modifier pass
// hoists them out.
type EnumDeclaration struct {
	Base

	Name     string
	IsScoped bool // "enum class"/"enum struct"
	// UnderlyingType holds the raw underlying-type text ("int"), if given.
	UnderlyingType string
	Elements       []*EnumElement
}

func (e *EnumDeclaration) TypeName() string { return "EnumDeclaration" }

func (e *EnumDeclaration) ChildLists() [][]Node {
	elems := make([]Node, len(e.Elements))
	for i, el := range e.Elements {
		elems[i] = el
	}
	return [][]Node{elems}
}

func (e *EnumDeclaration) AddElement(el *EnumElement) {
	el.SetParent(e)
	e.Elements = append(e.Elements, el)
}

func (e *EnumDeclaration) Clone() Node {
	clone := &EnumDeclaration{
		Base:           e.cloneBase(),
		Name:           e.Name,
		IsScoped:       e.IsScoped,
		UnderlyingType: e.UnderlyingType,
	}
	if len(e.Elements) > 0 {
		clone.Elements = make([]*EnumElement, len(e.Elements))
		for i, el := range e.Elements {
			c := el.Clone().(*EnumElement)
			c.SetParent(clone)
			clone.Elements[i] = c
		}
	}
	return clone
}

func (e *EnumDeclaration) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	writePrecedingComments(w, indent, ctx, e)
	writeCLine(w, indent, "typedef enum "+e.Name)
	writeCLine(w, indent, "{")
	for _, el := range e.Elements {
		el.WriteToC(w, indent+1, ctx)
	}
	writeCLine(w, indent, "} "+e.Name+";")
}
