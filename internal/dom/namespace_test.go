package dom

import (
	"bytes"
	"testing"
)

func TestNamespaceWriteToC(t *testing.T) {
	ns := &Namespace{Name: "ImGui"}
	ns.AddDecl(&FunctionDeclaration{Name: "NewFrame", ReturnType: &Type{PrimaryTypeName: "void"}})

	var buf bytes.Buffer
	ns.WriteToC(&buf, 0, &WriteContext{ForC: true})
	want := "namespace ImGui\n{\n    void NewFrame(void);\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteToC() = %q, want %q", got, want)
	}
}

func TestHeaderFileWritesPragmaOnceAndIncludesBeforeDecls(t *testing.T) {
	hf := &HeaderFile{Filename: "imgui.h", HasPragmaOnce: true}
	hf.AddInclude(&Include{Literal: "<stdbool.h>"})
	hf.AddDecl(&Typedef{Name: "MyInt", Underlying: &Type{PrimaryTypeName: "int"}})

	var buf bytes.Buffer
	hf.WriteToC(&buf, 0, &WriteContext{ForC: true})
	want := "#pragma once\n#include <stdbool.h>\ntypedef int MyInt;\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteToC() = %q, want %q", got, want)
	}
}

func TestHeaderFileSetAddFileSetsParent(t *testing.T) {
	set := &HeaderFileSet{}
	hf := &HeaderFile{Filename: "a.h"}
	set.AddFile(hf)

	if hf.Parent() != set {
		t.Fatalf("expected file's parent to be the set")
	}
	if len(set.Files) != 1 {
		t.Fatalf("expected 1 file in the set")
	}
}

func TestHeaderFileSetSaveUnmodifiedCloneIsIndependent(t *testing.T) {
	set := &HeaderFileSet{}
	hf := &HeaderFile{Filename: "a.h"}
	fn := &FunctionDeclaration{Name: "Foo", ReturnType: &Type{PrimaryTypeName: "void"}}
	hf.AddDecl(fn)
	set.AddFile(hf)

	set.SaveUnmodifiedClone()

	// Mutate the live tree after the snapshot was taken.
	hf.RemoveDecl(fn)

	clone := set.UnmodifiedClone()
	if len(clone.Files[0].Decls()) != 1 {
		t.Fatalf("expected the unmodified clone to still contain the removed function")
	}
	if len(hf.Decls()) != 0 {
		t.Fatalf("expected the live tree to reflect the removal")
	}
}
