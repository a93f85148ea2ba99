package dom

import "io"

// Define is a `#define NAME [VALUE]` or function-like macro directive
// (spec §3.1). Parameter lists and replacement text are kept as raw
// collapsed text; no modifier inspects macro bodies.
type Define struct {
	Base

	Name string
	// Params is non-nil for a function-like macro (possibly empty for
	// "NAME()"), nil for an object-like macro.
	Params   []string
	HasValue bool
	Value    string

	// ExcludedFromMetadata is set by exclude_defines_from_metadata; the
	// metadata emitter omits any Define with this set.
	ExcludedFromMetadata bool
}

func (d *Define) TypeName() string { return "Define" }

func (d *Define) ChildLists() [][]Node { return nil }

func (d *Define) Clone() Node {
	return &Define{
		Base:     d.cloneBase(),
		Name:     d.Name,
		Params:               append([]string(nil), d.Params...),
		HasValue:             d.HasValue,
		Value:                d.Value,
		ExcludedFromMetadata: d.ExcludedFromMetadata,
	}
}

func (d *Define) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	writePrecedingComments(w, indent, ctx, d)
	line := "#define " + d.Name
	if d.Params != nil {
		line += "("
		for i, p := range d.Params {
			if i > 0 {
				line += ", "
			}
			line += p
		}
		line += ")"
	}
	if d.HasValue {
		line += " " + d.Value
	}
	writeCLine(w, indent, line)
}

// PreprocessorConditional is an `#if`/`#ifdef`/`#ifndef` ... `#else` ...
// `#endif` block (spec §3.1). It owns two independent declaration lists
// rather than one, so it does not implement Container; flatten_conditionals
// replaces it outright with whichever branch survives (spec §4.5).
type PreprocessorConditional struct {
	Base

	// Condition is the raw condition text following the opening directive
	// keyword, e.g. "defined(IMGUI_DISABLE_OBSOLETE_FUNCTIONS)".
	Condition string
	// Keyword is "if", "ifdef", or "ifndef".
	Keyword string

	Then []Node
	Else []Node
}

func (p *PreprocessorConditional) TypeName() string { return "PreprocessorConditional" }

func (p *PreprocessorConditional) ChildLists() [][]Node {
	return [][]Node{p.Then, p.Else}
}

func (p *PreprocessorConditional) AddThen(n Node) {
	n.SetParent(p)
	p.Then = append(p.Then, n)
}

func (p *PreprocessorConditional) AddElse(n Node) {
	n.SetParent(p)
	p.Else = append(p.Else, n)
}

// RemoveThen removes n from the then-branch, if present, clearing its
// parent link. A no-op if n is not in Then.
func (p *PreprocessorConditional) RemoveThen(n Node) {
	p.Then = removeFrom(p.Then, n)
}

// RemoveElse mirrors RemoveThen for the else-branch.
func (p *PreprocessorConditional) RemoveElse(n Node) {
	p.Else = removeFrom(p.Else, n)
}

// ReplaceThenWithMany substitutes old in the then-branch with many, in
// order, preserving old's position. Used by the flattening passes when a
// flattened scope (namespace, nested class) sits directly inside a
// conditional rather than a plain Container.
func (p *PreprocessorConditional) ReplaceThenWithMany(old Node, many []Node) {
	p.Then = replaceWithMany(p.Then, p, old, many)
}

// ReplaceElseWithMany mirrors ReplaceThenWithMany for the else-branch.
func (p *PreprocessorConditional) ReplaceElseWithMany(old Node, many []Node) {
	p.Else = replaceWithMany(p.Else, p, old, many)
}

func removeFrom(list []Node, n Node) []Node {
	for i, c := range list {
		if c == n {
			n.SetParent(nil)
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func replaceWithMany(list []Node, self Node, old Node, many []Node) []Node {
	for i, c := range list {
		if c == old {
			old.SetParent(nil)
			for _, n := range many {
				n.SetParent(self)
			}
			tail := append([]Node{}, list[i+1:]...)
			out := append(list[:i], many...)
			return append(out, tail...)
		}
	}
	return list
}

func (p *PreprocessorConditional) Clone() Node {
	clone := &PreprocessorConditional{
		Base:      p.cloneBase(),
		Condition: p.Condition,
		Keyword:   p.Keyword,
	}
	if len(p.Then) > 0 {
		clone.Then = make([]Node, len(p.Then))
		for i, n := range p.Then {
			c := n.Clone()
			c.SetParent(clone)
			clone.Then[i] = c
		}
	}
	if len(p.Else) > 0 {
		clone.Else = make([]Node, len(p.Else))
		for i, n := range p.Else {
			c := n.Clone()
			c.SetParent(clone)
			clone.Else[i] = c
		}
	}
	return clone
}

func (p *PreprocessorConditional) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	writeCLine(w, indent, "#"+p.Keyword+" "+p.Condition)
	for _, n := range p.Then {
		n.WriteToC(w, indent, ctx)
	}
	if len(p.Else) > 0 {
		writeCLine(w, indent, "#else")
		for _, n := range p.Else {
			n.WriteToC(w, indent, ctx)
		}
	}
	writeCLine(w, indent, "#endif")
}
