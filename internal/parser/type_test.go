package parser

import (
	"testing"

	"github.com/oxhq/dearbind/internal/dom"
	"github.com/oxhq/dearbind/internal/token"
)

func thing(lit string) token.Token  { return token.Token{Kind: token.KindThing, Literal: lit} }
func op(lit string) token.Token     { return token.Token{Kind: token.KindOperatorPunct, Literal: lit} }
func punct(k token.Kind) token.Token { return token.Token{Kind: k} }

func TestParseTypeSimple(t *testing.T) {
	s := token.New([]token.Token{thing("int")})
	typ, ok := ParseType(&dom.ParseContext{}, s)
	if !ok {
		t.Fatal("expected a match")
	}
	if typ.PrimaryTypeName != "int" {
		t.Errorf("PrimaryTypeName = %q, want int", typ.PrimaryTypeName)
	}
}

func TestParseTypeMultiWordPrimitive(t *testing.T) {
	s := token.New([]token.Token{thing("unsigned"), thing("int")})
	typ, ok := ParseType(&dom.ParseContext{}, s)
	if !ok {
		t.Fatal("expected a match")
	}
	if typ.PrimaryTypeName != "unsigned int" {
		t.Errorf("PrimaryTypeName = %q, want \"unsigned int\"", typ.PrimaryTypeName)
	}
}

func TestParseTypeConstPointer(t *testing.T) {
	s := token.New([]token.Token{
		{Kind: token.KindConst}, thing("char"), op("*"),
	})
	typ, ok := ParseType(&dom.ParseContext{}, s)
	if !ok {
		t.Fatal("expected a match")
	}
	if !typ.Const || typ.PointerDepth != 1 || typ.PrimaryTypeName != "char" {
		t.Errorf("got %+v", typ)
	}
}

func TestParseTypeTemplate(t *testing.T) {
	s := token.New([]token.Token{
		thing("ImVector"), op("<"), thing("ImWchar"), op(">"),
	})
	typ, ok := ParseType(&dom.ParseContext{}, s)
	if !ok {
		t.Fatal("expected a match")
	}
	if typ.PrimaryTypeName != "ImVector" || len(typ.TemplateArgs) != 1 || typ.TemplateArgs[0].PrimaryTypeName != "ImWchar" {
		t.Errorf("got %+v", typ)
	}
	if typ.TemplateArgs[0].Parent() != typ {
		t.Errorf("expected template arg parented to the outer type")
	}
}

func TestParseTypeReference(t *testing.T) {
	s := token.New([]token.Token{thing("ImVec2"), op("&")})
	typ, ok := ParseType(&dom.ParseContext{}, s)
	if !ok || !typ.Reference {
		t.Fatalf("expected a reference type, got %+v ok=%v", typ, ok)
	}
}

func TestParseTypeArray(t *testing.T) {
	s := token.New([]token.Token{
		thing("float"), punct(token.KindLBracket), {Kind: token.KindNumber, Literal: "4"}, punct(token.KindRBracket),
	})
	typ, ok := ParseType(&dom.ParseContext{}, s)
	if !ok {
		t.Fatal("expected a match")
	}
	if len(typ.ArrayDims) != 1 || typ.ArrayDims[0] != "4" {
		t.Errorf("got %+v", typ)
	}
}

func TestParseTypeNoMatchLeavesStreamUntouched(t *testing.T) {
	s := token.New([]token.Token{punct(token.KindLParen)})
	_, ok := ParseType(&dom.ParseContext{}, s)
	if ok {
		t.Fatal("expected no match")
	}
	if s.Checkpoint() != 0 {
		t.Fatalf("expected stream position unchanged on failure")
	}
}
