package dom

import (
	"bytes"
	"testing"
)

func TestFunctionDeclarationWriteToCDeclaration(t *testing.T) {
	fn := &FunctionDeclaration{
		Name:       "igButton",
		ReturnType: &Type{PrimaryTypeName: "bool"},
		Arguments: []*FunctionArgument{
			{Name: "label", ArgType: &Type{PrimaryTypeName: "char", Const: true, PointerDepth: 1}},
		},
	}
	var buf bytes.Buffer
	fn.WriteToC(&buf, 0, &WriteContext{ForC: true})
	want := "bool igButton(const char * label);\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteToC() = %q, want %q", got, want)
	}
}

func TestFunctionDeclarationNoArgsWritesVoidForC(t *testing.T) {
	fn := &FunctionDeclaration{Name: "igNewFrame", ReturnType: &Type{PrimaryTypeName: "void"}}
	var buf bytes.Buffer
	fn.WriteToC(&buf, 0, &WriteContext{ForC: true})
	if got := buf.String(); got != "void igNewFrame(void);\n" {
		t.Errorf("WriteToC() = %q", got)
	}
}

func TestFunctionDeclarationSkipsImplicitDefaultArguments(t *testing.T) {
	fn := &FunctionDeclaration{
		Name:       "igText",
		ReturnType: &Type{PrimaryTypeName: "void"},
		Arguments: []*FunctionArgument{
			{Name: "fmt", ArgType: &Type{PrimaryTypeName: "char", Const: true, PointerDepth: 1}},
			{Name: "extra", ArgType: &Type{PrimaryTypeName: "int"}, IsImplicitDefault: true},
		},
	}
	var buf bytes.Buffer
	fn.WriteToC(&buf, 0, &WriteContext{ForC: true})
	want := "void igText(const char * fmt);\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteToC() = %q, want %q", got, want)
	}
}

func TestFunctionDeclarationVarargsArgument(t *testing.T) {
	arg := &FunctionArgument{IsVarargs: true}
	if got := arg.ToCString(&WriteContext{}); got != "..." {
		t.Errorf("ToCString() = %q, want ...", got)
	}
}

func TestFunctionDeclarationAddRemoveArgument(t *testing.T) {
	fn := &FunctionDeclaration{Name: "f"}
	arg := &FunctionArgument{Name: "x", ArgType: &Type{PrimaryTypeName: "int"}}
	fn.AddArgument(arg)
	if len(fn.Arguments) != 1 || arg.Parent() != fn {
		t.Fatalf("AddArgument did not attach argument")
	}
	fn.RemoveArgument(arg)
	if len(fn.Arguments) != 0 || arg.Parent() != nil {
		t.Fatalf("RemoveArgument did not detach argument")
	}
}

func TestFunctionDeclarationCloneKeepsOriginalClassShallow(t *testing.T) {
	class := &ClassStructUnion{Kind: ClassKindStruct, Name: "ImDrawList"}
	fn := &FunctionDeclaration{
		Name:          "PushClipRect",
		ReturnType:    &Type{PrimaryTypeName: "void"},
		OriginalClass: class,
	}
	clone := fn.Clone().(*FunctionDeclaration)
	if clone.OriginalClass != class {
		t.Fatalf("expected OriginalClass to remain a shallow reference to the same instance")
	}
	if clone.ReturnType == fn.ReturnType {
		t.Fatalf("expected ReturnType to be deep-cloned")
	}
}

func TestFunctionDeclarationFullyQualifiedNameOfFreeFunction(t *testing.T) {
	ns := &Namespace{Name: "ImGui"}
	fn := &FunctionDeclaration{Name: "Button", ReturnType: &Type{PrimaryTypeName: "bool"}}
	ns.AddDecl(fn)

	if got := fn.FullyQualifiedName("", false, false); got != "ImGui::Button" {
		t.Errorf("FullyQualifiedName() = %q, want ImGui::Button", got)
	}
}

func TestFunctionDeclarationMemberFunctionStaysLeafUnlessForced(t *testing.T) {
	class := &ClassStructUnion{Kind: ClassKindStruct, Name: "ImDrawList"}
	fn := &FunctionDeclaration{Name: "PushClipRect", ReturnType: &Type{PrimaryTypeName: "void"}}
	class.AddDecl(fn)

	if got := fn.FullyQualifiedName("", false, false); got != "PushClipRect" {
		t.Errorf("FullyQualifiedName() = %q, want leaf name for member function", got)
	}
	if got := fn.FullyQualifiedName("", false, true); got != "ImDrawList::PushClipRect" {
		t.Errorf("FullyQualifiedName(forced) = %q, want ImDrawList::PushClipRect", got)
	}
}

func TestFunctionDeclarationStaticMemberIsFullyQualified(t *testing.T) {
	class := &ClassStructUnion{Kind: ClassKindStruct, Name: "ImGui"}
	fn := &FunctionDeclaration{Name: "GetVersion", ReturnType: &Type{PrimaryTypeName: "char", PointerDepth: 1}, IsStatic: true}
	class.AddDecl(fn)

	if got := fn.FullyQualifiedName("", false, false); got != "ImGui::GetVersion" {
		t.Errorf("FullyQualifiedName() = %q, want ImGui::GetVersion", got)
	}
}

func TestFunctionDeclarationWithBody(t *testing.T) {
	fn := &FunctionDeclaration{
		Name:       "igGetVersion",
		ReturnType: &Type{PrimaryTypeName: "int"},
		Body:       &CodeBlock{RawText: "return 1;"},
	}
	var buf bytes.Buffer
	fn.WriteToC(&buf, 0, &WriteContext{ForC: true})
	want := "int igGetVersion(void)\n{\n    return 1;\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteToC() = %q, want %q", got, want)
	}
}
