package parser

import (
	"github.com/oxhq/dearbind/internal/dom"
	"github.com/oxhq/dearbind/internal/token"
)

// ParseNamespace parses `namespace [Name] { decl* }` (no trailing
// semicolon). flatten_namespaces eventually removes every Namespace,
// hoisting its decls into the parent (invariant 3, spec §3.2).
func ParseNamespace(ctx *dom.ParseContext, s *token.Stream) (*dom.Namespace, bool) {
	cp := s.Checkpoint()

	if tok, ok := s.PeekKind(token.KindThing); !ok || tok.Literal != "namespace" {
		return nil, false
	}
	s.Get()

	ns := &dom.Namespace{}
	if nameTok, ok := s.PeekKind(token.KindThing); ok {
		s.Get()
		ns.Name = nameTok.Literal
	}

	if _, ok := s.GetKind(token.KindLBrace); !ok {
		s.Rewind(cp)
		return nil, false
	}

	for {
		if _, ok := s.GetKind(token.KindRBrace); ok {
			break
		}
		decl, ok := ParseDeclaration(ctx, s)
		if !ok {
			s.Rewind(cp)
			return nil, false
		}
		ns.AddDecl(decl)
	}

	return ns, true
}
