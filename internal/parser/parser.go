package parser

import (
	"github.com/oxhq/dearbind/internal/dom"
	"github.com/oxhq/dearbind/internal/token"
)

// declarationParsers is the fixed, priority-ordered list of candidate
// variant parsers tried by ParseDeclaration (spec §4.2 "fixed priority
// order"). Each entry either fully consumes a matching declaration and
// returns it, or rewinds to its entry checkpoint and returns (nil,
// false) — so trying the next candidate after a failure is always safe.
// Preprocessor directives and aggregate/enum/namespace openers are tried
// first since their leading keyword is unambiguous; FunctionDeclaration
// is tried before FieldDeclaration since a field is, structurally, a
// function declaration's type+name prefix with no argument list.
var declarationParsers []func(*dom.ParseContext, *token.Stream) (dom.Node, bool)

func init() {
	declarationParsers = []func(*dom.ParseContext, *token.Stream) (dom.Node, bool){
		wrap(ParsePreprocessorConditional),
		wrap(ParseInclude),
		wrap(ParsePragmaOnce),
		wrap(ParseDefine),
		wrap(ParseEnumDeclaration),
		wrap(ParseTypedef),
		wrap(ParseNamespace),
		wrap(ParseClassStructUnion),
		wrap(ParseFunctionDeclaration),
		wrap(ParseFieldDeclaration),
	}
}

// wrap adapts a typed ParseX(ctx, stream) (*T, bool) function to the
// common dom.Node-returning shape declarationParsers needs, without
// resorting to reflection.
func wrap[T dom.Node](fn func(*dom.ParseContext, *token.Stream) (T, bool)) func(*dom.ParseContext, *token.Stream) (dom.Node, bool) {
	return func(ctx *dom.ParseContext, s *token.Stream) (dom.Node, bool) {
		v, ok := fn(ctx, s)
		if !ok {
			var zero T
			return zero, false
		}
		return v, true
	}
}

// ParseDeclaration parses one top-level declaration, attaching any
// immediately preceding comments (and merging consecutive blank lines
// first, as their own sibling node). Returns (nil, false) only when
// nothing in declarationParsers matches and no comments were collected.
func ParseDeclaration(ctx *dom.ParseContext, s *token.Stream) (dom.Node, bool) {
	if bl, ok := ParseBlankLines(ctx, s); ok {
		return bl, true
	}

	comments := ParsePrecedingComments(ctx, s)

	for _, try := range declarationParsers {
		if node, ok := try(ctx, s); ok {
			if cn, ok := node.(dom.Commented); ok && len(comments) > 0 {
				cn.SetPrecedingComments(comments)
				for _, c := range comments {
					c.SetParent(node)
				}
			}
			return node, true
		}
	}

	if len(comments) > 0 {
		// No declaration followed; these are trailing/standalone
		// comments (e.g. at end of file or end of a scope) — keep them
		// as their own sibling nodes rather than dropping them.
		first := comments[0]
		if len(comments) > 1 {
			first.SetPrecedingComments(comments[1:])
		}
		return first, true
	}

	return nil, false
}

// ParseHeaderFile parses a full translation unit: an optional leading
// `#pragma once`, a run of `#include`s, then declarations until the
// stream is exhausted.
func ParseHeaderFile(ctx *dom.ParseContext, s *token.Stream) *dom.HeaderFile {
	hf := &dom.HeaderFile{Filename: ctx.Filename}

	if _, ok := ParsePragmaOnce(ctx, s); ok {
		hf.HasPragmaOnce = true
	}

	for {
		if inc, ok := ParseInclude(ctx, s); ok {
			hf.AddInclude(inc)
			continue
		}
		break
	}

	for !s.AtEnd() {
		decl, ok := ParseDeclaration(ctx, s)
		if !ok {
			// Unparseable trailing input: stop rather than loop forever:
			// the next stage (ValidateHierarchy / review) will surface
			// whatever tokens remain as a clear failure.
			break
		}
		hf.AddDecl(decl)
	}

	return hf
}
