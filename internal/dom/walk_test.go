package dom

import "testing"

func buildSampleHeaderFileSet() *HeaderFileSet {
	set := &HeaderFileSet{}
	hf := &HeaderFile{Filename: "imgui.h"}
	set.AddFile(hf)

	ns := &Namespace{Name: "ImGui"}
	hf.AddDecl(ns)

	fn := &FunctionDeclaration{Name: "Button", ReturnType: &Type{PrimaryTypeName: "bool"}}
	fn.ReturnType.SetParent(fn)
	arg := &FunctionArgument{Name: "label", ArgType: &Type{PrimaryTypeName: "char", PointerDepth: 1}}
	arg.ArgType.SetParent(arg)
	fn.AddArgument(arg)
	ns.AddDecl(fn)

	class := &ClassStructUnion{Kind: ClassKindStruct, Name: "ImVec2"}
	for _, name := range []string{"x", "y"} {
		field := &FieldDeclaration{Name: name, FieldType: &Type{PrimaryTypeName: "float"}}
		field.FieldType.SetParent(field)
		class.AddDecl(field)
	}
	hf.AddDecl(class)

	return set
}

func TestWalkVisitsEveryNode(t *testing.T) {
	set := buildSampleHeaderFileSet()
	var visited []string
	Walk(set, func(n Node) bool {
		visited = append(visited, n.TypeName())
		return true
	})

	want := []string{
		"HeaderFileSet", "HeaderFile", "Namespace", "FunctionDeclaration",
		"FunctionArgument", "Type", "Type", "ClassStructUnion",
		"FieldDeclaration", "Type", "FieldDeclaration", "Type",
	}
	if len(visited) != len(want) {
		t.Fatalf("visited %d nodes, want %d: %v", len(visited), len(want), visited)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %s, want %s", i, visited[i], want[i])
		}
	}
}

func TestWalkPruneStopsDescent(t *testing.T) {
	set := buildSampleHeaderFileSet()
	var visited []string
	Walk(set, func(n Node) bool {
		visited = append(visited, n.TypeName())
		return n.TypeName() != "Namespace"
	})
	for _, name := range visited {
		if name == "FunctionDeclaration" {
			t.Fatalf("expected pruning Namespace to skip its FunctionDeclaration child")
		}
	}
}

func TestListAllChildrenOfType(t *testing.T) {
	set := buildSampleHeaderFileSet()

	fields := ListAllChildrenOfType[*FieldDeclaration](set)
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	fns := ListAllChildrenOfType[*FunctionDeclaration](set)
	if len(fns) != 1 || fns[0].Name != "Button" {
		t.Fatalf("expected exactly the Button function, got %+v", fns)
	}

	classes := ListAllChildrenOfType[*ClassStructUnion](set)
	if len(classes) != 1 || classes[0].Name != "ImVec2" {
		t.Fatalf("expected exactly the ImVec2 class, got %+v", classes)
	}
}

func TestValidateHierarchyAcceptsWellFormedTree(t *testing.T) {
	set := buildSampleHeaderFileSet()
	if err := ValidateHierarchy(set); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateHierarchyDetectsDanglingParent(t *testing.T) {
	set := buildSampleHeaderFileSet()
	fns := ListAllChildrenOfType[*FunctionDeclaration](set)
	fns[0].SetParent(nil) // corrupt the back-reference directly

	if err := ValidateHierarchy(set); err == nil {
		t.Fatalf("expected ValidateHierarchy to detect the corrupted parent link")
	}
}

func TestValidateHierarchySurvivesCloneRoundTrip(t *testing.T) {
	set := buildSampleHeaderFileSet()
	set.SaveUnmodifiedClone()
	clone := set.UnmodifiedClone()
	if clone == nil {
		t.Fatalf("expected SaveUnmodifiedClone to populate UnmodifiedClone")
	}
	if err := ValidateHierarchy(clone); err != nil {
		t.Fatalf("expected cloned tree to validate, got %v", err)
	}
}
