package dom

import "io"

// Comment is a single line or block comment (spec §3.1).
type Comment struct {
	Base
	Text           string // comment text including its // or /* */ delimiters
	IsLineComment  bool
	IsAttached     bool // true if this is an element's attached_comment
	AlignColumn    int  // computed by align_comments
}

func (c *Comment) TypeName() string { return "Comment" }

func (c *Comment) ChildLists() [][]Node { return nil }

func (c *Comment) Clone() Node {
	clone := &Comment{
		Base:          c.cloneBase(),
		Text:          c.Text,
		IsLineComment: c.IsLineComment,
		IsAttached:    c.IsAttached,
		AlignColumn:   c.AlignColumn,
	}
	return clone
}

func (c *Comment) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	writeCLine(w, indent, c.Text)
}

// BlankLines represents one or more consecutive blank source lines,
// collapsed or removed by merge_blank_lines/remove_blank_lines (spec §4.5).
type BlankLines struct {
	Base
	Count int
}

func (b *BlankLines) TypeName() string { return "BlankLines" }

func (b *BlankLines) ChildLists() [][]Node { return nil }

func (b *BlankLines) Clone() Node {
	return &BlankLines{Base: b.cloneBase(), Count: b.Count}
}

func (b *BlankLines) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	for range max(b.Count, 1) {
		io.WriteString(w, "\n")
	}
}

// CodeBlock is an opaque token sequence representing a function body. It
// is retained only until remove_function_bodies runs (spec §3.1, §4.5).
type CodeBlock struct {
	Base
	RawText string // collapsed textual form of the body's tokens
}

func (c *CodeBlock) TypeName() string { return "CodeBlock" }

func (c *CodeBlock) ChildLists() [][]Node { return nil }

func (c *CodeBlock) Clone() Node {
	return &CodeBlock{Base: c.cloneBase(), RawText: c.RawText}
}

func (c *CodeBlock) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	writeCLine(w, indent, "{")
	if c.RawText != "" {
		writeCLine(w, indent+1, c.RawText)
	}
	writeCLine(w, indent, "}")
}

// Include is a `#include` directive (spec §3.1).
type Include struct {
	Base
	Literal string // e.g. "<stdbool.h>" or "\"my_header.h\"", including delimiters
}

func (i *Include) TypeName() string { return "Include" }

func (i *Include) ChildLists() [][]Node { return nil }

func (i *Include) Clone() Node {
	return &Include{Base: i.cloneBase(), Literal: i.Literal}
}

func (i *Include) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	i.writePrecedingComments(w, indent, ctx)
	writeCLine(w, indent, "#include "+i.Literal)
}

func (i *Include) writePrecedingComments(w io.Writer, indent int, ctx *WriteContext) {
	writePrecedingComments(w, indent, ctx, i)
}

// PragmaOnce is a `#pragma once` directive (spec §3.1).
type PragmaOnce struct {
	Base
}

func (p *PragmaOnce) TypeName() string { return "PragmaOnce" }

func (p *PragmaOnce) ChildLists() [][]Node { return nil }

func (p *PragmaOnce) Clone() Node { return &PragmaOnce{Base: p.cloneBase()} }

func (p *PragmaOnce) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	writeCLine(w, indent, "#pragma once")
}

// writePrecedingComments is the shared write_preceding_comments helper used
// by every element's WriteToC, grounded on functiondeclaration.py's
// write_preceding_comments/add_attached_comment_to_line conventions.
func writePrecedingComments(w io.Writer, indent int, ctx *WriteContext, n Commented) {
	for _, c := range n.PrecedingComments() {
		c.WriteToC(w, indent, ctx)
	}
}

// addAttachedCommentSuffix appends " " + attached comment text to a line,
// if one is set, mirroring add_attached_comment_to_line.
func addAttachedCommentSuffix(line string, n Commented) string {
	if n.AttachedComment() == nil {
		return line
	}
	return line + " " + n.AttachedComment().Text
}
