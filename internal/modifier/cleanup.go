package modifier

import "github.com/oxhq/dearbind/internal/dom"

// RemoveFunctionBodies discards every function body and initializer-list
// token sequence (spec §4.5). Run early so every later pass that walks
// functions never has to skip over opaque CodeBlock children.
func RemoveFunctionBodies(root *dom.HeaderFileSet) error {
	for _, fn := range dom.ListAllChildrenOfType[*dom.FunctionDeclaration](root) {
		fn.Body = nil
		fn.HasInitializerList = false
		fn.InitializerListTokens = ""
	}
	return nil
}

// AttachPrecedingComments folds any standalone Comment node sitting next
// to (with no intervening BlankLines) a following declaration, within the
// same container, into that declaration's PrecedingComments. The parser
// already performs this grouping for the common case (ParseDeclaration
// only collects comments immediately ahead of a match, since a blank line
// in between forces a separate top-level call); this pass exists for
// structural reasons — it mops up standalone comments that end up
// adjacent to a new neighbor after an earlier pass reshapes a container
// (e.g. flatten_namespaces hoisting declarations up next to a trailing
// namespace comment).
func AttachPrecedingComments(root *dom.HeaderFileSet) error {
	dom.Walk(root, func(n dom.Node) bool {
		if c, ok := n.(dom.Container); ok {
			attachPrecedingCommentsIn(c)
		}
		return true
	})
	return nil
}

func attachPrecedingCommentsIn(c dom.Container) {
	var pending []*dom.Comment
	for _, d := range c.Decls() {
		switch v := d.(type) {
		case *dom.Comment:
			pending = append(pending, v)
		case *dom.BlankLines:
			pending = nil
		default:
			if len(pending) == 0 {
				continue
			}
			if target, ok := d.(dom.Commented); ok {
				target.SetPrecedingComments(append(append([]*dom.Comment{}, pending...), target.PrecedingComments()...))
				for _, p := range pending {
					c.RemoveDecl(p)
				}
			}
			pending = nil
		}
	}
}

// RemoveStructs deletes every ClassStructUnion whose name is in names,
// along with its descendants (spec §4.5).
func RemoveStructs(root *dom.HeaderFileSet, names []string) error {
	wanted := toSet(names)
	for _, cl := range dom.ListAllChildrenOfType[*dom.ClassStructUnion](root) {
		if wanted[cl.Name] {
			detach(cl)
		}
	}
	return nil
}

// RemoveFunctions deletes every FunctionDeclaration whose fully-qualified
// name (forced, so member functions qualify too) is in qualifiedNames.
func RemoveFunctions(root *dom.HeaderFileSet, qualifiedNames []string) error {
	wanted := toSet(qualifiedNames)
	for _, fn := range dom.ListAllChildrenOfType[*dom.FunctionDeclaration](root) {
		if wanted[fn.FullyQualifiedName("", false, true)] {
			detach(fn)
		}
	}
	return nil
}

// RemoveOperators deletes every function with IsOperator set (spec §4.5).
func RemoveOperators(root *dom.HeaderFileSet) error {
	for _, fn := range dom.ListAllChildrenOfType[*dom.FunctionDeclaration](root) {
		if fn.IsOperator {
			detach(fn)
		}
	}
	return nil
}

// RemoveHeapConstructorsAndDestructors deletes constructors/destructors of
// classes not marked by-value — they have no new/delete analogue once
// flattened to C (spec §4.5).
func RemoveHeapConstructorsAndDestructors(root *dom.HeaderFileSet) error {
	for _, fn := range dom.ListAllChildrenOfType[*dom.FunctionDeclaration](root) {
		if !fn.IsConstructor && !fn.IsDestructor {
			continue
		}
		cl, ok := fn.Parent().(*dom.ClassStructUnion)
		if ok && cl.IsByValue {
			continue
		}
		detach(fn)
	}
	return nil
}

// RemoveAllFunctionsFromClasses strips every member function from the
// listed classes (spec §4.5) — used for container types like ImVector
// whose generic methods aren't useful to expose.
func RemoveAllFunctionsFromClasses(root *dom.HeaderFileSet, names []string) error {
	wanted := toSet(names)
	for _, cl := range dom.ListAllChildrenOfType[*dom.ClassStructUnion](root) {
		if !wanted[cl.Name] {
			continue
		}
		for _, fn := range dom.ListAllChildrenOfType[*dom.FunctionDeclaration](cl) {
			detach(fn)
		}
	}
	return nil
}

// RemoveStaticFields deletes every FieldDeclaration with IsStatic set —
// C has no equivalent storage-class member, and static data members are
// typically exposed (if at all) as free functions instead (spec §4.5).
func RemoveStaticFields(root *dom.HeaderFileSet) error {
	for _, f := range dom.ListAllChildrenOfType[*dom.FieldDeclaration](root) {
		if f.IsStatic {
			detach(f)
		}
	}
	return nil
}

// RemoveNestedTypedefs deletes every Typedef declared inside a
// ClassStructUnion (spec §4.5) — C typedefs have no notion of class scope.
func RemoveNestedTypedefs(root *dom.HeaderFileSet) error {
	for _, td := range dom.ListAllChildrenOfType[*dom.Typedef](root) {
		if _, ok := td.Parent().(*dom.ClassStructUnion); ok {
			detach(td)
		}
	}
	return nil
}

// RemovePragmaOnce strips the `#pragma once` directive from every header
// file, for configurations that prefer a traditional include guard
// instead (spec §4.5; left disabled by default in the orchestrator).
func RemovePragmaOnce(root *dom.HeaderFileSet) error {
	for _, hf := range dom.ListAllChildrenOfType[*dom.HeaderFile](root) {
		hf.HasPragmaOnce = false
	}
	return nil
}

// RemoveIncludes strips any #include directive whose literal is in list
// (spec §4.5).
func RemoveIncludes(root *dom.HeaderFileSet, list []string) error {
	wanted := toSet(list)
	for _, hf := range dom.ListAllChildrenOfType[*dom.HeaderFile](root) {
		var kept []*dom.Include
		for _, inc := range hf.Includes {
			if wanted[inc.Literal] {
				inc.SetParent(nil)
				continue
			}
			kept = append(kept, inc)
		}
		hf.Includes = kept
	}
	return nil
}

// AddIncludes appends one #include directive per literal in list to every
// header file (spec §4.5), skipping any already present.
func AddIncludes(root *dom.HeaderFileSet, list []string) error {
	for _, hf := range dom.ListAllChildrenOfType[*dom.HeaderFile](root) {
		have := map[string]bool{}
		for _, inc := range hf.Includes {
			have[inc.Literal] = true
		}
		for _, lit := range list {
			if have[lit] {
				continue
			}
			hf.AddInclude(&dom.Include{Literal: lit})
		}
	}
	return nil
}

// RemoveEmptyConditionals prunes any PreprocessorConditional whose
// then/else branches are both empty after earlier passes ran (spec §4.5).
// Run this after the structural removal passes, before merge_blank_lines.
func RemoveEmptyConditionals(root *dom.HeaderFileSet) error {
	// Walk() visits parents before children; process back-to-front instead
	// so a conditional nested inside another is checked (and possibly
	// detached) before its now-empty ancestor is, letting emptiness
	// cascade upward in one pass.
	all := dom.ListAllChildrenOfType[*dom.PreprocessorConditional](root)
	for i := len(all) - 1; i >= 0; i-- {
		pc := all[i]
		if len(pc.Then) == 0 && len(pc.Else) == 0 {
			detach(pc)
		}
	}
	return nil
}

// MergeBlankLines collapses every run of consecutive BlankLines siblings
// within a container into a single BlankLines node summing their counts
// (spec §4.5).
func MergeBlankLines(root *dom.HeaderFileSet) error {
	dom.Walk(root, func(n dom.Node) bool {
		if c, ok := n.(dom.Container); ok {
			mergeBlankLinesIn(c)
		}
		return true
	})
	return nil
}

func mergeBlankLinesIn(c dom.Container) {
	var run *dom.BlankLines
	for _, d := range c.Decls() {
		bl, ok := d.(*dom.BlankLines)
		if !ok {
			run = nil
			continue
		}
		if run == nil {
			run = bl
			continue
		}
		run.Count += bl.Count
		c.RemoveDecl(bl)
	}
}

// RemoveBlankLines deletes every BlankLines node in the tree (spec §4.5).
func RemoveBlankLines(root *dom.HeaderFileSet) error {
	for _, bl := range dom.ListAllChildrenOfType[*dom.BlankLines](root) {
		detach(bl)
	}
	return nil
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
