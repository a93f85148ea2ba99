package modifier

import (
	"testing"

	"github.com/oxhq/dearbind/internal/dom"
)

func TestConvertReferencesToPointers(t *testing.T) {
	fn := &dom.FunctionDeclaration{
		Name:       "PushClipRect",
		ReturnType: &dom.Type{PrimaryTypeName: "void"},
		Arguments: []*dom.FunctionArgument{
			{Name: "rect", ArgType: &dom.Type{PrimaryTypeName: "ImVec4", Reference: true}},
		},
	}
	hf := &dom.HeaderFile{}
	hf.AddDecl(fn)
	set := newSet(hf)

	if err := ConvertReferencesToPointers(set); err != nil {
		t.Fatal(err)
	}
	at := fn.Arguments[0].ArgType
	if at.Reference {
		t.Errorf("expected Reference cleared")
	}
	if at.PointerDepth != 1 {
		t.Errorf("expected PointerDepth 1, got %d", at.PointerDepth)
	}
}

func TestMarkByValueStructs(t *testing.T) {
	cl := &dom.ClassStructUnion{Kind: dom.ClassKindStruct, Name: "ImVec2"}
	other := &dom.ClassStructUnion{Kind: dom.ClassKindStruct, Name: "ImDrawList"}
	hf := &dom.HeaderFile{}
	hf.AddDecl(cl)
	hf.AddDecl(other)
	set := newSet(hf)

	if err := MarkByValueStructs(set, []string{"ImVec2"}); err != nil {
		t.Fatal(err)
	}
	if !cl.IsByValue {
		t.Errorf("expected ImVec2.IsByValue set")
	}
	if other.IsByValue {
		t.Errorf("expected ImDrawList.IsByValue unset")
	}
}

func TestMarkInternalMembers(t *testing.T) {
	cl := &dom.ClassStructUnion{Kind: dom.ClassKindStruct, Name: "ImGuiContext"}
	f := &dom.FieldDeclaration{Name: "Hook", FieldType: &dom.Type{PrimaryTypeName: "int"}}
	f.SetPrecedingComments([]*dom.Comment{{Text: "// [Internal] do not use"}})
	plain := &dom.FieldDeclaration{Name: "Visible", FieldType: &dom.Type{PrimaryTypeName: "bool"}}
	cl.AddDecl(f)
	cl.AddDecl(plain)
	hf := &dom.HeaderFile{}
	hf.AddDecl(cl)
	set := newSet(hf)

	if err := MarkInternalMembers(set); err != nil {
		t.Fatal(err)
	}
	if !f.IsInternal {
		t.Errorf("expected Hook marked internal")
	}
	if plain.IsInternal {
		t.Errorf("expected Visible left alone")
	}
}
