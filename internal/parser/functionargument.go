package parser

import (
	"strings"

	"github.com/oxhq/dearbind/internal/dom"
	"github.com/oxhq/dearbind/internal/token"
)

// ParseFunctionArgument parses one parameter of a function's argument
// list: a varargs "...", or a type followed by an optional name, optional
// "[]", and optional "= default".
func ParseFunctionArgument(ctx *dom.ParseContext, s *token.Stream) (*dom.FunctionArgument, bool) {
	cp := s.Checkpoint()

	if _, ok := s.GetKind(token.KindEllipsis); ok {
		return &dom.FunctionArgument{IsVarargs: true}, true
	}

	argType, ok := ParseType(ctx, s)
	if !ok {
		s.Rewind(cp)
		return nil, false
	}
	arg := &dom.FunctionArgument{ArgType: argType}
	argType.SetParent(arg)

	if name, ok := s.GetKind(token.KindThing); ok {
		arg.Name = name.Literal
	}

	if _, ok := s.GetKind(token.KindLBracket); ok {
		arg.IsArray = true
		if _, ok := s.GetKind(token.KindRBracket); !ok {
			s.Rewind(cp)
			return nil, false
		}
	}

	if tok, ok := s.Peek(); ok && tok.Kind == token.KindOperatorPunct && tok.Literal == "=" {
		s.Get()
		var b strings.Builder
		for {
			next, ok := s.Peek()
			if !ok {
				break
			}
			if next.Kind == token.KindComma || next.Kind == token.KindRParen {
				break
			}
			s.Get()
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString(next.Literal)
		}
		arg.HasDefault = true
		arg.DefaultValue = b.String()
	}

	return arg, true
}
