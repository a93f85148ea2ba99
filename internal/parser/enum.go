package parser

import (
	"strings"

	"github.com/oxhq/dearbind/internal/dom"
	"github.com/oxhq/dearbind/internal/token"
)

// ParseEnumDeclaration parses `enum [class|struct] Name [: Underlying]
// { Element [= Value], ... };`.
func ParseEnumDeclaration(ctx *dom.ParseContext, s *token.Stream) (*dom.EnumDeclaration, bool) {
	cp := s.Checkpoint()

	if tok, ok := s.PeekKind(token.KindThing); !ok || tok.Literal != "enum" {
		return nil, false
	}
	s.Get()

	e := &dom.EnumDeclaration{}
	if tok, ok := s.PeekKind(token.KindThing); ok && (tok.Literal == "class" || tok.Literal == "struct") {
		s.Get()
		e.IsScoped = true
	}

	nameTok, ok := s.GetKind(token.KindThing)
	if !ok {
		s.Rewind(cp)
		return nil, false
	}
	e.Name = nameTok.Literal

	if _, ok := s.GetKind(token.KindColon); ok {
		underlyingTok, ok := s.GetKind(token.KindThing)
		if !ok {
			s.Rewind(cp)
			return nil, false
		}
		e.UnderlyingType = underlyingTok.Literal
	}

	if _, ok := s.GetKind(token.KindLBrace); !ok {
		s.Rewind(cp)
		return nil, false
	}

	for {
		if _, ok := s.GetKind(token.KindRBrace); ok {
			break
		}
		el, ok := parseEnumElement(s)
		if !ok {
			s.Rewind(cp)
			return nil, false
		}
		e.AddElement(el)
		s.GetKind(token.KindComma)
	}

	if _, ok := s.GetKind(token.KindSemicolon); !ok {
		s.Rewind(cp)
		return nil, false
	}

	return e, true
}

func parseEnumElement(s *token.Stream) (*dom.EnumElement, bool) {
	nameTok, ok := s.GetKind(token.KindThing)
	if !ok {
		return nil, false
	}
	el := &dom.EnumElement{Name: nameTok.Literal}

	if tok, ok := s.Peek(); ok && tok.Kind == token.KindOperatorPunct && tok.Literal == "=" {
		s.Get()
		var b strings.Builder
		for {
			tok, ok := s.Peek()
			if !ok || tok.Kind == token.KindComma || tok.Kind == token.KindRBrace {
				break
			}
			s.Get()
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString(tok.Literal)
		}
		el.HasValue = true
		el.Value = b.String()
	}
	return el, true
}
