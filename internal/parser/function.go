package parser

import (
	"strconv"
	"strings"

	"github.com/oxhq/dearbind/internal/dom"
	"github.com/oxhq/dearbind/internal/token"
)

// ParseFunctionDeclaration parses a function, method, constructor,
// destructor, or operator declaration. Grounded line-for-line on
// functiondeclaration.py's DOMFunctionDeclaration.parse: prefix loop,
// leading-'~' destructor detection, lookahead-for-'(' to recognize a
// constructor (no return type), operator multi-token name assembly,
// argument list, trailing const, IM_FMTARGS/IM_FMTLIST, attached
// comment, initializer list, and body-or-semicolon.
func ParseFunctionDeclaration(ctx *dom.ParseContext, s *token.Stream) (*dom.FunctionDeclaration, bool) {
	cp := s.Checkpoint()
	fn := &dom.FunctionDeclaration{}

prefixLoop:
	for {
		tok, ok := s.PeekKind(token.KindThing, token.KindConstexpr)
		if !ok {
			break
		}
		switch {
		case tok.Kind == token.KindConstexpr:
			s.Get()
			fn.IsConstexpr = true
		case tok.Literal == "IMGUI_API":
			s.Get()
			fn.IsImguiAPI = true
		case tok.Literal == "inline":
			s.Get()
			fn.IsInline = true
		case tok.Literal == "static":
			s.Get()
			fn.IsStatic = true
		case tok.Literal == "operator":
			s.Get()
			fn.IsOperator = true
		default:
			break prefixLoop
		}
	}

	namePrefix := ""
	if _, ok := s.GetKind(token.KindTilde); ok {
		namePrefix = "~"
		fn.IsDestructor = true
	}

	hasNoReturnType := false
	if nameTok, ok := s.PeekKind(token.KindThing); ok {
		s.Get()
		if _, ok := s.PeekKind(token.KindLParen); ok {
			hasNoReturnType = true
		}
		_ = nameTok
		s.RewindOne()
	}

	if hasNoReturnType && !fn.IsDestructor {
		fn.IsConstructor = true
	}

	if !hasNoReturnType {
		retType, ok := ParseType(ctx, s)
		if !ok {
			s.Rewind(cp)
			return nil, false
		}
		retType.SetParent(fn)
		fn.ReturnType = retType
	}

	nameTok, ok := s.GetKind(token.KindThing)
	if !ok {
		s.Rewind(cp)
		return nil, false
	}

	if nameTok.Literal == "operator" {
		var opTokens []string
		for {
			next, ok := s.Get()
			if !ok {
				s.Rewind(cp)
				return nil, false
			}
			if next.Kind == token.KindLParen {
				s.RewindOne()
				break
			}
			opTokens = append(opTokens, next.Literal)
		}
		fn.IsOperator = true
		fn.Name = "operator " + namePrefix + strings.Join(opTokens, "")
	} else {
		fn.Name = namePrefix + nameTok.Literal
	}

	if _, ok := s.GetKind(token.KindLParen); !ok {
		s.Rewind(cp)
		return nil, false
	}

	for {
		if _, ok := s.GetKind(token.KindRParen); ok {
			break
		}
		arg, ok := ParseFunctionArgument(ctx, s)
		if !ok {
			s.Rewind(cp)
			return nil, false
		}
		fn.AddArgument(arg)
		s.GetKind(token.KindComma)
	}

	if _, ok := s.GetKind(token.KindConst); ok {
		fn.IsConst = true
	}

	if tok, ok := s.Peek(); ok && tok.Literal == "IM_FMTARGS" {
		s.Get()
		if _, ok := s.GetKind(token.KindLParen); !ok {
			s.Rewind(cp)
			return nil, false
		}
		idxTok, ok := s.Get()
		if !ok {
			s.Rewind(cp)
			return nil, false
		}
		idx, err := strconv.Atoi(idxTok.Literal)
		if err != nil {
			s.Rewind(cp)
			return nil, false
		}
		fn.ImFmtArgs = &idx
		if _, ok := s.GetKind(token.KindRParen); !ok {
			s.Rewind(cp)
			return nil, false
		}
	}

	if tok, ok := s.Peek(); ok && tok.Literal == "IM_FMTLIST" {
		s.Get()
		if _, ok := s.GetKind(token.KindLParen); !ok {
			s.Rewind(cp)
			return nil, false
		}
		idxTok, ok := s.Get()
		if !ok {
			s.Rewind(cp)
			return nil, false
		}
		idx, err := strconv.Atoi(idxTok.Literal)
		if err != nil {
			s.Rewind(cp)
			return nil, false
		}
		fn.ImFmtList = &idx
		if _, ok := s.GetKind(token.KindRParen); !ok {
			s.Rewind(cp)
			return nil, false
		}
	}

	if _, ok := s.PeekKind(token.KindLineComment, token.KindBlockComment); ok {
		comment, _ := ParseComment(ctx, s)
		comment.IsAttached = true
		comment.SetParent(fn)
		fn.SetAttachedComment(comment)
	}

	if _, ok := s.GetKind(token.KindColon); ok {
		var b strings.Builder
		b.WriteString(":")
		for {
			tok, ok := s.Peek()
			if !ok {
				s.Rewind(cp)
				return nil, false
			}
			if tok.Kind == token.KindLBrace || tok.Kind == token.KindSemicolon {
				break
			}
			s.Get()
			b.WriteString(" ")
			b.WriteString(tok.Literal)
		}
		fn.HasInitializerList = true
		fn.InitializerListTokens = b.String()
	}

	bodyOpener, ok := s.PeekKind(token.KindLBrace, token.KindSemicolon)
	if !ok {
		s.Rewind(cp)
		return nil, false
	}
	if bodyOpener.Kind == token.KindLBrace {
		body, ok := ParseCodeBlock(ctx, s)
		if !ok {
			s.Rewind(cp)
			return nil, false
		}
		body.SetParent(fn)
		fn.Body = body
	} else {
		s.Get()
	}

	return fn, true
}
