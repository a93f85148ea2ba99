package parser

import (
	"strings"

	"github.com/oxhq/dearbind/internal/dom"
	"github.com/oxhq/dearbind/internal/token"
)

// ParseInclude parses a `#include <...>` / `#include "..."` directive.
// The lexer is expected to have already classified the directive keyword
// as PP_INCLUDE and captured the remainder of the line as one literal.
func ParseInclude(ctx *dom.ParseContext, s *token.Stream) (*dom.Include, bool) {
	if _, ok := s.GetKind(token.KindPPInclude); !ok {
		return nil, false
	}
	tok, ok := s.GetKind(token.KindString, token.KindThing)
	if !ok {
		return nil, false
	}
	return &dom.Include{Literal: tok.Literal}, true
}

// ParsePragmaOnce parses a `#pragma once` directive.
func ParsePragmaOnce(ctx *dom.ParseContext, s *token.Stream) (*dom.PragmaOnce, bool) {
	cp := s.Checkpoint()
	if _, ok := s.GetKind(token.KindPPPragma); !ok {
		return nil, false
	}
	if tok, ok := s.PeekKind(token.KindThing); !ok || tok.Literal != "once" {
		s.Rewind(cp)
		return nil, false
	}
	s.Get()
	return &dom.PragmaOnce{}, true
}

// ParseDefine parses a `#define NAME [(params)] [value]` directive. The
// lexer is expected to tokenize the macro name and, for function-like
// macros, an immediately-following parenthesized parameter list with no
// intervening whitespace token; everything after is collapsed as the
// replacement value.
func ParseDefine(ctx *dom.ParseContext, s *token.Stream) (*dom.Define, bool) {
	cp := s.Checkpoint()
	if _, ok := s.GetKind(token.KindPPDefine); !ok {
		return nil, false
	}
	nameTok, ok := s.GetKind(token.KindThing)
	if !ok {
		s.Rewind(cp)
		return nil, false
	}
	d := &dom.Define{Name: nameTok.Literal}
	line := nameTok.Pos.Line

	if _, ok := s.GetKind(token.KindLParen); ok {
		d.Params = []string{}
		for {
			if _, ok := s.GetKind(token.KindRParen); ok {
				break
			}
			paramTok, ok := s.GetKind(token.KindThing, token.KindEllipsis)
			if !ok {
				s.Rewind(cp)
				return nil, false
			}
			d.Params = append(d.Params, paramTok.Literal)
			s.GetKind(token.KindComma)
		}
	}

	var b strings.Builder
	for {
		tok, ok := s.Peek()
		if !ok || tok.Kind == token.KindBlankLine || isDirectiveBoundary(tok.Kind) || onDifferentLine(tok, line) {
			break
		}
		s.Get()
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(tok.Literal)
	}
	if b.Len() > 0 {
		d.HasValue = true
		d.Value = b.String()
	}

	return d, true
}

// isDirectiveBoundary reports whether kind starts a new preprocessor
// directive. The token model has no line-break token, so besides a line
// change (onDifferentLine) a directive keyword is the signal that a
// single-line construct (a #define's value, a #if's condition) has ended.
func isDirectiveBoundary(k token.Kind) bool {
	switch k {
	case token.KindPPIf, token.KindPPIfdef, token.KindPPIfndef,
		token.KindPPElse, token.KindPPElif, token.KindPPEndif,
		token.KindPPDefine, token.KindPPInclude, token.KindPPPragma:
		return true
	default:
		return false
	}
}

// onDifferentLine reports whether tok was lexed on a different source
// line than line, the primary signal that a single-line directive
// construct (a #define's value, a #if's condition) has ended. Hand-built
// token slices in tests leave Pos zero-valued on every token, so this
// never fires for them — isDirectiveBoundary and the blank-line check
// above remain the operative signal there.
func onDifferentLine(tok token.Token, line int) bool {
	return line != 0 && tok.Pos.Line != 0 && tok.Pos.Line != line
}

// ParsePreprocessorConditional parses an `#if`/`#ifdef`/`#ifndef` block
// through to its matching `#endif`, including an optional `#else` branch.
// flatten_conditionals later collapses it into whichever branch survives
// when its condition involves a symbol that pass is given (spec §4.5).
func ParsePreprocessorConditional(ctx *dom.ParseContext, s *token.Stream) (*dom.PreprocessorConditional, bool) {
	cp := s.Checkpoint()

	openTok, ok := s.GetKind(token.KindPPIf, token.KindPPIfdef, token.KindPPIfndef)
	if !ok {
		return nil, false
	}
	pc := &dom.PreprocessorConditional{Keyword: conditionalKeyword(openTok.Kind)}
	line := openTok.Pos.Line

	var cond strings.Builder
	for {
		tok, ok := s.Peek()
		if !ok || tok.Kind == token.KindBlankLine || isDirectiveBoundary(tok.Kind) || onDifferentLine(tok, line) {
			break
		}
		s.Get()
		if cond.Len() > 0 {
			cond.WriteString(" ")
		}
		cond.WriteString(tok.Literal)
	}
	pc.Condition = cond.String()

	inElse := false
	for {
		if _, ok := s.GetKind(token.KindPPEndif); ok {
			break
		}
		if _, ok := s.GetKind(token.KindPPElse); ok {
			inElse = true
			continue
		}
		if _, ok := s.GetKind(token.KindPPElif); ok {
			// #elif is not supported: a conditional containing one does
			// not match, and the stream is rewound to its start.
			s.Rewind(cp)
			return nil, false
		}

		decl, ok := ParseDeclaration(ctx, s)
		if !ok {
			s.Rewind(cp)
			return nil, false
		}
		if inElse {
			pc.AddElse(decl)
		} else {
			pc.AddThen(decl)
		}
	}

	return pc, true
}

func conditionalKeyword(k token.Kind) string {
	switch k {
	case token.KindPPIfdef:
		return "ifdef"
	case token.KindPPIfndef:
		return "ifndef"
	default:
		return "if"
	}
}
