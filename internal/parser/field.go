package parser

import (
	"github.com/oxhq/dearbind/internal/dom"
	"github.com/oxhq/dearbind/internal/token"
)

// ParseFieldDeclaration parses a data member declaration: an optional
// static/constexpr prefix, a type, a name, an optional bitfield width,
// and a terminating semicolon.
func ParseFieldDeclaration(ctx *dom.ParseContext, s *token.Stream) (*dom.FieldDeclaration, bool) {
	cp := s.Checkpoint()
	f := &dom.FieldDeclaration{}

	for {
		if tok, ok := s.PeekKind(token.KindThing); ok && tok.Literal == "static" {
			s.Get()
			f.IsStatic = true
			continue
		}
		if _, ok := s.GetKind(token.KindConstexpr); ok {
			f.IsConstexpr = true
			continue
		}
		if _, ok := s.GetKind(token.KindConst); ok {
			f.IsConst = true
			continue
		}
		break
	}

	fieldType, ok := ParseType(ctx, s)
	if !ok {
		s.Rewind(cp)
		return nil, false
	}
	fieldType.SetParent(f)
	f.FieldType = fieldType

	nameTok, ok := s.GetKind(token.KindThing)
	if !ok {
		s.Rewind(cp)
		return nil, false
	}
	f.Name = nameTok.Literal

	if _, ok := s.GetKind(token.KindColon); ok {
		widthTok, ok := s.GetKind(token.KindNumber)
		if !ok {
			s.Rewind(cp)
			return nil, false
		}
		f.HasBitfield = true
		f.BitfieldWidth = widthTok.Literal
	}

	if _, ok := s.GetKind(token.KindSemicolon); !ok {
		s.Rewind(cp)
		return nil, false
	}

	return f, true
}

// ParseTypedef parses `typedef Type Name;`.
func ParseTypedef(ctx *dom.ParseContext, s *token.Stream) (*dom.Typedef, bool) {
	cp := s.Checkpoint()

	if tok, ok := s.PeekKind(token.KindThing); !ok || tok.Literal != "typedef" {
		return nil, false
	}
	s.Get()

	underlying, ok := ParseType(ctx, s)
	if !ok {
		s.Rewind(cp)
		return nil, false
	}

	nameTok, ok := s.GetKind(token.KindThing)
	if !ok {
		s.Rewind(cp)
		return nil, false
	}

	if _, ok := s.GetKind(token.KindSemicolon); !ok {
		s.Rewind(cp)
		return nil, false
	}

	td := &dom.Typedef{Name: nameTok.Literal, Underlying: underlying}
	underlying.SetParent(td)
	return td, true
}
