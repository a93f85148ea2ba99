package parser

import (
	"strings"

	"github.com/oxhq/dearbind/internal/dom"
	"github.com/oxhq/dearbind/internal/token"
)

// ParseCodeBlock consumes a brace-delimited function body as an opaque
// token run, tracking nested brace depth so inner blocks don't terminate
// it early. The collapsed text is kept only until remove_function_bodies
// runs (spec §4.5); nothing downstream inspects it structurally.
func ParseCodeBlock(ctx *dom.ParseContext, s *token.Stream) (*dom.CodeBlock, bool) {
	cp := s.Checkpoint()
	if _, ok := s.GetKind(token.KindLBrace); !ok {
		return nil, false
	}

	depth := 1
	var b strings.Builder
	for depth > 0 {
		tok, ok := s.Get()
		if !ok {
			s.Rewind(cp)
			return nil, false
		}
		switch tok.Kind {
		case token.KindLBrace:
			depth++
		case token.KindRBrace:
			depth--
			if depth == 0 {
				continue
			}
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(tok.Literal)
	}

	return &dom.CodeBlock{RawText: b.String()}, true
}
