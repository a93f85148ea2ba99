package dom

import (
	"bytes"
	"testing"
)

func TestFieldDeclarationStaticConstBitfield(t *testing.T) {
	f := &FieldDeclaration{
		Name:          "Flags",
		FieldType:     &Type{PrimaryTypeName: "unsigned int"},
		IsStatic:      true,
		IsConst:       true,
		HasBitfield:   true,
		BitfieldWidth: "4",
	}
	var buf bytes.Buffer
	f.WriteToC(&buf, 0, &WriteContext{})
	want := "static const unsigned int Flags : 4;\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteToC() = %q, want %q", got, want)
	}
}

func TestFieldDeclarationConstexprPrevailsOverConst(t *testing.T) {
	f := &FieldDeclaration{
		Name:        "kMax",
		FieldType:   &Type{PrimaryTypeName: "int"},
		IsConst:     true,
		IsConstexpr: true,
	}
	var buf bytes.Buffer
	f.WriteToC(&buf, 0, &WriteContext{})
	if got := buf.String(); got != "constexpr int kMax;\n" {
		t.Errorf("WriteToC() = %q", got)
	}
}

func TestTypedefWriteToC(t *testing.T) {
	td := &Typedef{Name: "ImGuiID", Underlying: &Type{PrimaryTypeName: "unsigned int"}}
	var buf bytes.Buffer
	td.WriteToC(&buf, 0, &WriteContext{})
	if got := buf.String(); got != "typedef unsigned int ImGuiID;\n" {
		t.Errorf("WriteToC() = %q", got)
	}
}
