package token

import "testing"

func toks(kinds ...Kind) []Token {
	out := make([]Token, len(kinds))
	for i, k := range kinds {
		out[i] = Token{Kind: k, Literal: string(k)}
	}
	return out
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := New(toks(KindThing, KindLParen))

	tok, ok := s.Peek()
	if !ok || tok.Kind != KindThing {
		t.Fatalf("Peek() = %v, %v", tok, ok)
	}
	tok, ok = s.Peek()
	if !ok || tok.Kind != KindThing {
		t.Fatalf("second Peek() = %v, %v; want same token", tok, ok)
	}
}

func TestGetConsumesInOrder(t *testing.T) {
	s := New(toks(KindThing, KindLParen, KindRParen))

	for _, want := range []Kind{KindThing, KindLParen, KindRParen} {
		tok, ok := s.Get()
		if !ok || tok.Kind != want {
			t.Fatalf("Get() = %v, %v; want %s", tok, ok, want)
		}
	}
	if _, ok := s.Get(); ok {
		t.Fatalf("Get() on exhausted stream returned ok=true")
	}
}

func TestPeekKindFiltersByKind(t *testing.T) {
	s := New(toks(KindLParen))

	if _, ok := s.PeekKind(KindThing, KindRParen); ok {
		t.Fatalf("PeekKind matched an excluded kind")
	}
	tok, ok := s.PeekKind(KindLParen)
	if !ok || tok.Kind != KindLParen {
		t.Fatalf("PeekKind() = %v, %v; want LPAREN", tok, ok)
	}
	// Still not consumed.
	if _, ok := s.PeekKind(KindLParen); !ok {
		t.Fatalf("PeekKind should not consume")
	}
}

func TestGetKindRejectsWithoutConsuming(t *testing.T) {
	s := New(toks(KindThing, KindLParen))

	if _, ok := s.GetKind(KindLParen); ok {
		t.Fatalf("GetKind matched wrong kind")
	}
	// Should still be positioned at KindThing.
	tok, ok := s.GetKind(KindThing)
	if !ok || tok.Kind != KindThing {
		t.Fatalf("GetKind() = %v, %v; want THING", tok, ok)
	}
}

func TestCheckpointRewind(t *testing.T) {
	s := New(toks(KindThing, KindLParen, KindRParen))

	s.Get() // consume THING
	cp := s.Checkpoint()
	s.Get() // consume LPAREN
	s.Get() // consume RPAREN

	s.Rewind(cp)
	tok, ok := s.Get()
	if !ok || tok.Kind != KindLParen {
		t.Fatalf("after rewind, Get() = %v, %v; want LPAREN", tok, ok)
	}
}

func TestRewindOne(t *testing.T) {
	s := New(toks(KindThing, KindLParen))
	s.Get()
	s.Get()
	s.RewindOne()
	tok, ok := s.Get()
	if !ok || tok.Kind != KindLParen {
		t.Fatalf("after RewindOne, Get() = %v, %v; want LPAREN", tok, ok)
	}
}

func TestRewindOneAtStartIsNoop(t *testing.T) {
	s := New(toks(KindThing))
	s.RewindOne()
	tok, ok := s.Get()
	if !ok || tok.Kind != KindThing {
		t.Fatalf("Get() = %v, %v; want THING", tok, ok)
	}
}

func TestAtEnd(t *testing.T) {
	s := New(toks(KindThing))
	if s.AtEnd() {
		t.Fatalf("AtEnd() = true before consuming any tokens")
	}
	s.Get()
	if !s.AtEnd() {
		t.Fatalf("AtEnd() = false after consuming all tokens")
	}
}
