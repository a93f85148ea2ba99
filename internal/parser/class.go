package parser

import (
	"github.com/oxhq/dearbind/internal/dom"
	"github.com/oxhq/dearbind/internal/token"
)

// ParseClassStructUnion parses a class/struct/union declaration or
// forward declaration, including its base class list and member
// declarations (spec §3.1, §3.2).
func ParseClassStructUnion(ctx *dom.ParseContext, s *token.Stream) (*dom.ClassStructUnion, bool) {
	cp := s.Checkpoint()

	var templateParams []string
	if tok, ok := s.PeekKind(token.KindThing); ok && tok.Literal == "template" {
		params, ok := parseTemplateParamList(s)
		if !ok {
			s.Rewind(cp)
			return nil, false
		}
		templateParams = params
	}

	kindTok, ok := s.PeekKind(token.KindThing)
	if !ok {
		return nil, false
	}
	var kind dom.ClassKind
	switch kindTok.Literal {
	case "class":
		kind = dom.ClassKindClass
	case "struct":
		kind = dom.ClassKindStruct
	case "union":
		kind = dom.ClassKindUnion
	default:
		return nil, false
	}
	s.Get()

	nameTok, ok := s.GetKind(token.KindThing)
	if !ok {
		s.Rewind(cp)
		return nil, false
	}

	c := &dom.ClassStructUnion{Kind: kind, Name: nameTok.Literal, TemplateParams: templateParams}

	if _, ok := s.GetKind(token.KindColon); ok {
		for {
			// Skip access-specifier keywords in the inheritance list
			// ("public"/"private"/"protected" Base) — only the base
			// class name itself is retained.
			if tok, ok := s.PeekKind(token.KindThing); ok {
				switch tok.Literal {
				case "public", "private", "protected", "virtual":
					s.Get()
					continue
				}
			}
			baseTok, ok := s.GetKind(token.KindThing)
			if !ok {
				s.Rewind(cp)
				return nil, false
			}
			c.BaseClasses = append(c.BaseClasses, baseTok.Literal)
			if _, ok := s.GetKind(token.KindComma); ok {
				continue
			}
			break
		}
	}

	if _, ok := s.GetKind(token.KindSemicolon); ok {
		c.IsForwardDeclaration = true
		return c, true
	}

	if _, ok := s.GetKind(token.KindLBrace); !ok {
		s.Rewind(cp)
		return nil, false
	}

	currentAccess := "private"
	if kind == dom.ClassKindStruct || kind == dom.ClassKindUnion {
		currentAccess = "public"
	}

	for {
		if _, ok := s.GetKind(token.KindRBrace); ok {
			break
		}

		if tok, ok := s.PeekKind(token.KindThing); ok {
			switch tok.Literal {
			case "public", "private", "protected":
				cpInner := s.Checkpoint()
				s.Get()
				if _, ok := s.GetKind(token.KindColon); ok {
					currentAccess = tok.Literal
					continue
				}
				s.Rewind(cpInner)
			}
		}

		member, ok := ParseDeclaration(ctx, s)
		if !ok {
			s.Rewind(cp)
			return nil, false
		}
		if fn, ok := member.(*dom.FunctionDeclaration); ok {
			fn.Accessibility = currentAccess
		}
		c.AddDecl(member)
	}

	s.GetKind(token.KindSemicolon)
	return c, true
}

// parseTemplateParamList consumes a leading "template" "<" ("typename"|
// "class") Name ("," ...)* ">" clause (the only templated declaration
// shape the corpus headers use — a single-level class/struct template
// with no non-type or default template arguments) and returns the bound
// parameter names in declaration order. The caller has already peeked
// the "template" keyword.
func parseTemplateParamList(s *token.Stream) ([]string, bool) {
	cp := s.Checkpoint()
	s.Get() // "template"

	open, ok := s.Peek()
	if !ok || open.Kind != token.KindOperatorPunct || open.Literal != "<" {
		s.Rewind(cp)
		return nil, false
	}
	s.Get()

	var params []string
	for {
		kw, ok := s.GetKind(token.KindThing)
		if !ok || (kw.Literal != "typename" && kw.Literal != "class") {
			s.Rewind(cp)
			return nil, false
		}
		name, ok := s.GetKind(token.KindThing)
		if !ok {
			s.Rewind(cp)
			return nil, false
		}
		params = append(params, name.Literal)

		if tok, ok := s.Peek(); ok && tok.Kind == token.KindOperatorPunct && tok.Literal == "," {
			s.Get()
			continue
		}
		break
	}

	closeTok, ok := s.Peek()
	if !ok || closeTok.Kind != token.KindOperatorPunct || closeTok.Literal != ">" {
		s.Rewind(cp)
		return nil, false
	}
	s.Get()

	return params, true
}
