package modifier

import (
	"testing"

	"github.com/oxhq/dearbind/internal/dom"
)

func newSet(hf *dom.HeaderFile) *dom.HeaderFileSet {
	set := &dom.HeaderFileSet{}
	set.AddFile(hf)
	return set
}

func TestRemoveFunctionBodies(t *testing.T) {
	hf := &dom.HeaderFile{}
	fn := &dom.FunctionDeclaration{Name: "Foo", ReturnType: &dom.Type{PrimaryTypeName: "void"}, Body: &dom.CodeBlock{}}
	hf.AddDecl(fn)
	set := newSet(hf)

	if err := RemoveFunctionBodies(set); err != nil {
		t.Fatal(err)
	}
	if fn.Body != nil {
		t.Errorf("expected Body cleared, got %+v", fn.Body)
	}
}

func TestRemoveStructs(t *testing.T) {
	hf := &dom.HeaderFile{}
	keep := &dom.ClassStructUnion{Kind: dom.ClassKindStruct, Name: "Keep"}
	drop := &dom.ClassStructUnion{Kind: dom.ClassKindStruct, Name: "Drop"}
	hf.AddDecl(keep)
	hf.AddDecl(drop)
	set := newSet(hf)

	if err := RemoveStructs(set, []string{"Drop"}); err != nil {
		t.Fatal(err)
	}
	names := map[string]bool{}
	for _, d := range hf.Decls() {
		if c, ok := d.(*dom.ClassStructUnion); ok {
			names[c.Name] = true
		}
	}
	if names["Drop"] || !names["Keep"] {
		t.Fatalf("unexpected decls after RemoveStructs: %v", names)
	}
	if err := dom.ValidateHierarchy(set); err != nil {
		t.Fatal(err)
	}
}

func TestRemoveOperators(t *testing.T) {
	hf := &dom.HeaderFile{}
	op := &dom.FunctionDeclaration{Name: "operator==", ReturnType: &dom.Type{PrimaryTypeName: "bool"}, IsOperator: true}
	normal := &dom.FunctionDeclaration{Name: "Foo", ReturnType: &dom.Type{PrimaryTypeName: "void"}}
	hf.AddDecl(op)
	hf.AddDecl(normal)
	set := newSet(hf)

	if err := RemoveOperators(set); err != nil {
		t.Fatal(err)
	}
	if len(hf.Decls()) != 1 {
		t.Fatalf("expected 1 decl left, got %d", len(hf.Decls()))
	}
}

func TestRemoveHeapConstructorsAndDestructorsKeepsByValue(t *testing.T) {
	hf := &dom.HeaderFile{}
	byValue := &dom.ClassStructUnion{Kind: dom.ClassKindStruct, Name: "ImVec2", IsByValue: true}
	ctor := &dom.FunctionDeclaration{Name: "ImVec2", IsConstructor: true}
	byValue.AddDecl(ctor)
	hf.AddDecl(byValue)

	heap := &dom.ClassStructUnion{Kind: dom.ClassKindStruct, Name: "ImDrawList"}
	dtor := &dom.FunctionDeclaration{Name: "~ImDrawList", IsDestructor: true}
	heap.AddDecl(dtor)
	hf.AddDecl(heap)

	set := newSet(hf)
	if err := RemoveHeapConstructorsAndDestructors(set); err != nil {
		t.Fatal(err)
	}
	if len(byValue.Decls()) != 1 {
		t.Errorf("expected by-value constructor kept, got %d decls", len(byValue.Decls()))
	}
	if len(heap.Decls()) != 0 {
		t.Errorf("expected heap destructor removed, got %d decls", len(heap.Decls()))
	}
}

func TestRemoveStaticFields(t *testing.T) {
	cl := &dom.ClassStructUnion{Kind: dom.ClassKindStruct, Name: "S"}
	cl.AddDecl(&dom.FieldDeclaration{Name: "a", FieldType: &dom.Type{PrimaryTypeName: "int"}, IsStatic: true})
	cl.AddDecl(&dom.FieldDeclaration{Name: "b", FieldType: &dom.Type{PrimaryTypeName: "int"}})
	hf := &dom.HeaderFile{}
	hf.AddDecl(cl)
	set := newSet(hf)

	if err := RemoveStaticFields(set); err != nil {
		t.Fatal(err)
	}
	if len(cl.Decls()) != 1 {
		t.Fatalf("expected 1 field left, got %d", len(cl.Decls()))
	}
}

func TestRemoveEmptyConditionalsCascades(t *testing.T) {
	inner := &dom.PreprocessorConditional{Keyword: "ifdef", Condition: "FOO"}
	outer := &dom.PreprocessorConditional{Keyword: "ifdef", Condition: "BAR"}
	outer.AddThen(inner)
	hf := &dom.HeaderFile{}
	hf.AddDecl(outer)
	set := newSet(hf)

	if err := RemoveEmptyConditionals(set); err != nil {
		t.Fatal(err)
	}
	if len(hf.Decls()) != 0 {
		t.Fatalf("expected both conditionals pruned, got %d decls", len(hf.Decls()))
	}
}

func TestMergeBlankLines(t *testing.T) {
	hf := &dom.HeaderFile{}
	hf.AddDecl(&dom.BlankLines{Count: 1})
	hf.AddDecl(&dom.BlankLines{Count: 2})
	hf.AddDecl(&dom.FunctionDeclaration{Name: "Foo", ReturnType: &dom.Type{PrimaryTypeName: "void"}})
	set := newSet(hf)

	if err := MergeBlankLines(set); err != nil {
		t.Fatal(err)
	}
	bl, ok := hf.Decls()[0].(*dom.BlankLines)
	if !ok || bl.Count != 3 {
		t.Fatalf("expected merged BlankLines{Count:3}, got %+v", hf.Decls()[0])
	}
	if len(hf.Decls()) != 2 {
		t.Fatalf("expected 2 decls after merge, got %d", len(hf.Decls()))
	}
}

func TestAddIncludesSkipsExisting(t *testing.T) {
	hf := &dom.HeaderFile{}
	hf.AddInclude(&dom.Include{Literal: "<stdbool.h>"})
	set := newSet(hf)

	if err := AddIncludes(set, []string{"<stdbool.h>", "<stdint.h>"}); err != nil {
		t.Fatal(err)
	}
	if len(hf.Includes) != 2 {
		t.Fatalf("expected 2 includes, got %d", len(hf.Includes))
	}
}
