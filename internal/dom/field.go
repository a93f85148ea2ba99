package dom

import "io"

// FieldDeclaration is a class/struct/union data member declaration
// (spec §3.1).
type FieldDeclaration struct {
	Base

	Name     string
	FieldType *Type

	IsStatic   bool
	IsConst    bool
	IsConstexpr bool

	// IsInternal is set by mark_internal_members when a preceding comment
	// carries an "internal" marker; metadata emission filters on it.
	IsInternal bool

	// BitfieldWidth holds the raw bitfield width text without the colon
	// ("4"), if present.
	BitfieldWidth string
	HasBitfield   bool
}

func (f *FieldDeclaration) TypeName() string { return "FieldDeclaration" }

func (f *FieldDeclaration) ChildLists() [][]Node {
	if f.FieldType == nil {
		return nil
	}
	return [][]Node{{f.FieldType}}
}

func (f *FieldDeclaration) Clone() Node {
	clone := &FieldDeclaration{
		Base:          f.cloneBase(),
		Name:          f.Name,
		IsStatic:      f.IsStatic,
		IsConst:       f.IsConst,
		IsConstexpr:   f.IsConstexpr,
		BitfieldWidth: f.BitfieldWidth,
		HasBitfield:   f.HasBitfield,
		IsInternal:    f.IsInternal,
	}
	if f.FieldType != nil {
		clone.FieldType = f.FieldType.Clone().(*Type)
		clone.FieldType.SetParent(clone)
	}
	return clone
}

func (f *FieldDeclaration) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	writePrecedingComments(w, indent, ctx, f)
	var line string
	if f.IsStatic {
		line += "static "
	}
	if f.IsConstexpr {
		line += "constexpr "
	} else if f.IsConst {
		line += "const "
	}
	if f.FieldType != nil {
		line += f.FieldType.ToCString(ctx)
	}
	line += " " + f.Name
	if f.HasBitfield {
		line += " : " + f.BitfieldWidth
	}
	writeCLine(w, indent, addAttachedCommentSuffix(line+";", f))
}

// Typedef is a `typedef Type Name;` declaration (spec §3.1).
type Typedef struct {
	Base

	Name       string
	Underlying *Type
}

func (t *Typedef) TypeName() string { return "Typedef" }

func (t *Typedef) ChildLists() [][]Node {
	if t.Underlying == nil {
		return nil
	}
	return [][]Node{{t.Underlying}}
}

func (t *Typedef) Clone() Node {
	clone := &Typedef{Base: t.cloneBase(), Name: t.Name}
	if t.Underlying != nil {
		clone.Underlying = t.Underlying.Clone().(*Type)
		clone.Underlying.SetParent(clone)
	}
	return clone
}

func (t *Typedef) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	writePrecedingComments(w, indent, ctx, t)
	underlying := ""
	if t.Underlying != nil {
		underlying = t.Underlying.ToCString(ctx)
	}
	writeCLine(w, indent, addAttachedCommentSuffix("typedef "+underlying+" "+t.Name+";", t))
}
