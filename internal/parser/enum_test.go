package parser

import (
	"testing"

	"github.com/oxhq/dearbind/internal/dom"
	"github.com/oxhq/dearbind/internal/token"
)

func TestParseEnumDeclaration(t *testing.T) {
	// enum ImGuiCol_ { ImGuiCol_Text, ImGuiCol_TextDisabled = 1 << 2 };
	s := token.New([]token.Token{
		thing("enum"), thing("ImGuiCol_"), punct(token.KindLBrace),
		thing("ImGuiCol_Text"), comma(),
		thing("ImGuiCol_TextDisabled"), op("="), {Kind: token.KindNumber, Literal: "1"}, op("<<"), {Kind: token.KindNumber, Literal: "2"},
		punct(token.KindRBrace), semi(),
	})
	e, ok := ParseEnumDeclaration(&dom.ParseContext{}, s)
	if !ok {
		t.Fatal("expected a match")
	}
	if e.Name != "ImGuiCol_" || len(e.Elements) != 2 {
		t.Fatalf("got %+v", e)
	}
	if e.Elements[1].Value != "1 << 2" {
		t.Errorf("Elements[1].Value = %q, want \"1 << 2\"", e.Elements[1].Value)
	}
}

func TestParseEnumDeclarationScoped(t *testing.T) {
	// enum class Kind { A };
	s := token.New([]token.Token{
		thing("enum"), thing("class"), thing("Kind"), punct(token.KindLBrace),
		thing("A"),
		punct(token.KindRBrace), semi(),
	})
	e, ok := ParseEnumDeclaration(&dom.ParseContext{}, s)
	if !ok {
		t.Fatal("expected a match")
	}
	if !e.IsScoped {
		t.Errorf("expected IsScoped true")
	}
}
