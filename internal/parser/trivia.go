package parser

import (
	"github.com/oxhq/dearbind/internal/dom"
	"github.com/oxhq/dearbind/internal/token"
)

// ParseComment parses a single line or block comment token into a
// *dom.Comment.
func ParseComment(ctx *dom.ParseContext, s *token.Stream) (*dom.Comment, bool) {
	tok, ok := s.GetKind(token.KindLineComment, token.KindBlockComment)
	if !ok {
		return nil, false
	}
	return &dom.Comment{
		Text:          tok.Literal,
		IsLineComment: tok.Kind == token.KindLineComment,
	}, true
}

// ParseBlankLines collapses one or more consecutive BLANK_LINE tokens into
// a single *dom.BlankLines, matching merge_blank_lines' eventual job of
// normalizing runs of blank source lines (spec §4.5).
func ParseBlankLines(ctx *dom.ParseContext, s *token.Stream) (*dom.BlankLines, bool) {
	if _, ok := s.GetKind(token.KindBlankLine); !ok {
		return nil, false
	}
	count := 1
	for {
		if _, ok := s.GetKind(token.KindBlankLine); !ok {
			break
		}
		count++
	}
	return &dom.BlankLines{Count: count}, true
}

// ParsePrecedingComments consumes the run of comments immediately
// preceding the next real declaration and returns them for the caller to
// attach. It stops at the first non-comment token, blank lines included;
// blank lines are their own declarations (ParseBlankLines).
func ParsePrecedingComments(ctx *dom.ParseContext, s *token.Stream) []*dom.Comment {
	var comments []*dom.Comment
	for {
		if c, ok := ParseComment(ctx, s); ok {
			comments = append(comments, c)
			continue
		}
		break
	}
	return comments
}
