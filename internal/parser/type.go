// Package parser implements speculative recursive-descent parsing of a
// token.Stream into a dom.Node tree (SPEC_FULL.md §4.1-4.2). Every
// ParseX function follows the same contract: take a checkpoint, try to
// consume a match, and on failure rewind to the checkpoint and return
// (nil, false) rather than raising an error, so that the top-level
// dispatcher in parser.go can try the next candidate variant cleanly.
package parser

import (
	"strings"

	"github.com/oxhq/dearbind/internal/dom"
	"github.com/oxhq/dearbind/internal/token"
)

// multiWordTypeKeywords lists the primitive words that can combine into a
// single primary type name ("unsigned int", "long long", "signed char").
// A type whose first word isn't in this set is assumed to be a
// user-defined type name and is taken as a single word (or a
// "::"-qualified chain of them).
var multiWordTypeKeywords = map[string]bool{
	"unsigned": true, "signed": true, "short": true, "long": true,
	"int": true, "char": true, "float": true, "double": true,
	"bool": true, "void": true,
}

// ParseType parses a qualified, possibly templated, possibly
// pointer/reference/array type (spec §3.1 Type). It returns (nil, false)
// without consuming anything if the next tokens don't look like a type at
// all.
func ParseType(ctx *dom.ParseContext, s *token.Stream) (*dom.Type, bool) {
	cp := s.Checkpoint()
	t := &dom.Type{}

	for {
		if _, ok := s.GetKind(token.KindConst); ok {
			t.Const = true
			continue
		}
		if tok, ok := s.PeekKind(token.KindThing); ok && tok.Literal == "volatile" {
			s.Get()
			t.Volatile = true
			continue
		}
		break
	}

	name, ok := parsePrimaryTypeName(s)
	if !ok {
		s.Rewind(cp)
		return nil, false
	}
	t.PrimaryTypeName = name

	if _, ok := s.PeekKind(token.KindOperatorPunct); ok {
		if tok, _ := s.Peek(); tok.Literal == "<" {
			s.Get()
			for {
				arg, ok := ParseType(ctx, s)
				if !ok {
					s.Rewind(cp)
					return nil, false
				}
				arg.SetParent(t)
				t.TemplateArgs = append(t.TemplateArgs, arg)
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
		}
	}

	for {
		if tok, ok := s.Peek(); ok && tok.Kind == token.KindOperatorPunct && tok.Literal == "*" {
			s.Get()
			t.PointerDepth++
			continue
		}
		break
	}

	// Trailing "const" ("char * const") is accepted but folded into the
	// same qualifier flag as a leading const, matching the design note
	// that Type equality is defined purely by printed form.
	if _, ok := s.GetKind(token.KindConst); ok {
		t.Const = true
	}

	if tok, ok := s.Peek(); ok && tok.Kind == token.KindOperatorPunct && tok.Literal == "&" {
		s.Get()
		t.Reference = true
	}

	for {
		if _, ok := s.GetKind(token.KindLBracket); !ok {
			break
		}
		var dim strings.Builder
		for {
			tok, ok := s.Peek()
			if !ok {
				s.Rewind(cp)
				return nil, false
			}
			if tok.Kind == token.KindRBracket {
				s.Get()
				break
			}
			s.Get()
			if dim.Len() > 0 {
				dim.WriteString(" ")
			}
			dim.WriteString(tok.Literal)
		}
		t.ArrayDims = append(t.ArrayDims, dim.String())
	}

	return t, true
}

// parsePrimaryTypeName consumes the bare type name: either a run of
// known primitive keywords ("unsigned int"), or a single possibly
// "::"-qualified identifier.
func parsePrimaryTypeName(s *token.Stream) (string, bool) {
	first, ok := s.GetKind(token.KindThing)
	if !ok {
		return "", false
	}

	if multiWordTypeKeywords[first.Literal] {
		words := []string{first.Literal}
		for {
			tok, ok := s.PeekKind(token.KindThing)
			if !ok || !multiWordTypeKeywords[tok.Literal] {
				break
			}
			s.Get()
			words = append(words, tok.Literal)
		}
		return strings.Join(words, " "), true
	}

	name := first.Literal
	for {
		if _, ok := s.GetKind(token.KindDoubleColon); !ok {
			break
		}
		next, ok := s.GetKind(token.KindThing)
		if !ok {
			return "", false
		}
		name += "::" + next.Literal
	}
	return name, true
}
