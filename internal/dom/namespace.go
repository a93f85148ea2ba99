package dom

import "io"

// Namespace is a named (or anonymous) namespace and a Container over its
// declarations (spec §3.1). flatten_namespaces eventually replaces every
// Namespace with its own decls spliced into its parent (invariant 3).
type Namespace struct {
	Base
	declList

	Name string // "" for an anonymous namespace
}

func (n *Namespace) TypeName() string { return "Namespace" }

func (n *Namespace) ChildLists() [][]Node { return [][]Node{n.decls()} }

func (n *Namespace) Decls() []Node { return n.decls() }

func (n *Namespace) AddDecl(decl Node) { n.addDecl(n, decl) }

func (n *Namespace) RemoveDecl(decl Node) { n.removeDecl(decl) }

func (n *Namespace) InsertDeclBefore(mark, decl Node) { n.insertDeclBefore(n, mark, decl) }

func (n *Namespace) InsertDeclAfter(mark, decl Node) { n.insertDeclAfter(n, mark, decl) }

func (n *Namespace) ReplaceDecl(old, decl Node) { n.replaceDecl(n, old, decl) }

func (n *Namespace) ReplaceDeclWithMany(old Node, many []Node) { n.replaceDeclWithMany(n, old, many) }

func (n *Namespace) Clone() Node {
	clone := &Namespace{Base: n.cloneBase(), Name: n.Name}
	clone.declList = declList{items: n.cloneItems()}
	for _, d := range clone.declList.items {
		d.SetParent(clone)
	}
	return clone
}

func (n *Namespace) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	writePrecedingComments(w, indent, ctx, n)
	header := "namespace"
	if n.Name != "" {
		header += " " + n.Name
	}
	writeCLine(w, indent, header)
	writeCLine(w, indent, "{")
	for _, decl := range n.decls() {
		decl.WriteToC(w, indent+1, ctx)
	}
	writeCLine(w, indent, "}")
}

// HeaderFile is a single parsed translation unit: an ordered top-level
// declaration list plus its includes (spec §3.1).
type HeaderFile struct {
	Base
	declList

	Filename string
	Includes []*Include
	HasPragmaOnce bool
}

func (h *HeaderFile) TypeName() string { return "HeaderFile" }

func (h *HeaderFile) ChildLists() [][]Node {
	incs := make([]Node, len(h.Includes))
	for i, inc := range h.Includes {
		incs[i] = inc
	}
	return [][]Node{incs, h.decls()}
}

func (h *HeaderFile) Decls() []Node { return h.decls() }

func (h *HeaderFile) AddDecl(decl Node) { h.addDecl(h, decl) }

func (h *HeaderFile) RemoveDecl(decl Node) { h.removeDecl(decl) }

func (h *HeaderFile) InsertDeclBefore(mark, decl Node) { h.insertDeclBefore(h, mark, decl) }

func (h *HeaderFile) InsertDeclAfter(mark, decl Node) { h.insertDeclAfter(h, mark, decl) }

func (h *HeaderFile) ReplaceDecl(old, decl Node) { h.replaceDecl(h, old, decl) }

func (h *HeaderFile) ReplaceDeclWithMany(old Node, many []Node) { h.replaceDeclWithMany(h, old, many) }

func (h *HeaderFile) AddInclude(inc *Include) {
	inc.SetParent(h)
	h.Includes = append(h.Includes, inc)
}

func (h *HeaderFile) Clone() Node {
	clone := &HeaderFile{
		Base:          h.cloneBase(),
		Filename:      h.Filename,
		HasPragmaOnce: h.HasPragmaOnce,
	}
	if len(h.Includes) > 0 {
		clone.Includes = make([]*Include, len(h.Includes))
		for i, inc := range h.Includes {
			c := inc.Clone().(*Include)
			c.SetParent(clone)
			clone.Includes[i] = c
		}
	}
	clone.declList = declList{items: h.cloneItems()}
	for _, d := range clone.declList.items {
		d.SetParent(clone)
	}
	return clone
}

func (h *HeaderFile) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	if h.HasPragmaOnce {
		writeCLine(w, indent, "#pragma once")
	}
	for _, inc := range h.Includes {
		inc.WriteToC(w, indent, ctx)
	}
	for _, decl := range h.decls() {
		decl.WriteToC(w, indent, ctx)
	}
}

// HeaderFileSet is the root of the DOM: the set of header files handed to
// one conversion run, plus the unmodified clone preserved for property
// testing (invariant 6, spec §3.2, §8).
type HeaderFileSet struct {
	Base

	Files []*HeaderFile

	// unmodifiedClone is a deep copy taken at parse time, before any
	// modifier runs, so tests can assert a clone-of-the-original still
	// validates and prints identically (spec §8, property "clone
	// validity").
	unmodifiedClone *HeaderFileSet
}

func (s *HeaderFileSet) TypeName() string { return "HeaderFileSet" }

func (s *HeaderFileSet) ChildLists() [][]Node {
	files := make([]Node, len(s.Files))
	for i, f := range s.Files {
		files[i] = f
	}
	return [][]Node{files}
}

func (s *HeaderFileSet) AddFile(f *HeaderFile) {
	f.SetParent(s)
	s.Files = append(s.Files, f)
}

func (s *HeaderFileSet) Clone() Node {
	clone := &HeaderFileSet{Base: s.cloneBase()}
	if len(s.Files) > 0 {
		clone.Files = make([]*HeaderFile, len(s.Files))
		for i, f := range s.Files {
			c := f.Clone().(*HeaderFile)
			c.SetParent(clone)
			clone.Files[i] = c
		}
	}
	return clone
}

// SaveUnmodifiedClone takes and stores a deep copy of the current tree,
// exactly once per run, before the modifier pipeline starts (invariant 6).
func (s *HeaderFileSet) SaveUnmodifiedClone() {
	s.unmodifiedClone = s.Clone().(*HeaderFileSet)
}

// UnmodifiedClone returns the snapshot taken by SaveUnmodifiedClone, or nil
// if it was never called.
func (s *HeaderFileSet) UnmodifiedClone() *HeaderFileSet { return s.unmodifiedClone }

func (s *HeaderFileSet) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	for _, f := range s.Files {
		f.WriteToC(w, indent, ctx)
	}
}
