package modifier

import (
	"strings"

	"github.com/oxhq/dearbind/internal/dom"
)

// FlattenConditionals statically evaluates every PreprocessorConditional
// whose condition text mentions symbol, given that symbol is (or is not)
// defined, and replaces the conditional with whichever branch survives
// (spec §4.5). Conditionals that don't mention symbol are left untouched.
func FlattenConditionals(root *dom.HeaderFileSet, symbol string, defined bool) error {
	for _, pc := range dom.ListAllChildrenOfType[*dom.PreprocessorConditional](root) {
		if !strings.Contains(pc.Condition, symbol) {
			continue
		}
		truth := conditionalTruth(pc, symbol, defined)
		var survivors []dom.Node
		if truth {
			survivors = pc.Then
		} else {
			survivors = pc.Else
		}
		replaceWithMany(pc, survivors)
	}
	return nil
}

// conditionalTruth evaluates a single-symbol condition under the given
// definedness. `#ifdef SYMBOL` / `defined(SYMBOL)` is true iff defined;
// `#ifndef SYMBOL` / `!defined(SYMBOL)` is true iff not defined.
func conditionalTruth(pc *dom.PreprocessorConditional, symbol string, defined bool) bool {
	negated := pc.Keyword == "ifndef" || strings.Contains(pc.Condition, "!defined("+symbol+")")
	if negated {
		return !defined
	}
	return defined
}

// FlattenNamespaces moves the children of every Namespace whose name is a
// key in rename up into the namespace's parent, prefixing each moved
// declaration's name with rename[name] (spec §4.5). Processed in reverse
// Walk order so a nested namespace flattens before its enclosing one
// (outside-in, per the spec's own description — the innermost rename is
// applied to the name first, and hoisting a child before its parent keeps
// the child's already-renamed declarations simple top-level children by
// the time the parent itself is hoisted).
func FlattenNamespaces(root *dom.HeaderFileSet, rename map[string]string) error {
	all := dom.ListAllChildrenOfType[*dom.Namespace](root)
	for i := len(all) - 1; i >= 0; i-- {
		ns := all[i]
		prefix, ok := rename[ns.Name]
		if !ok {
			continue
		}
		for _, d := range ns.Decls() {
			applyNamePrefix(d, prefix)
		}
		replaceWithMany(ns, ns.Decls())
	}
	return nil
}

// applyNamePrefix prepends prefix to the declaration's own name field, for
// every variant that carries one. Nested containers (a namespace inside a
// namespace being flattened) are not recursed into here — FlattenNamespaces
// already visits every Namespace independently via ListAllChildrenOfType.
func applyNamePrefix(n dom.Node, prefix string) {
	switch v := n.(type) {
	case *dom.FunctionDeclaration:
		v.Name = prefix + v.Name
	case *dom.ClassStructUnion:
		v.Name = prefix + v.Name
	case *dom.EnumDeclaration:
		v.Name = prefix + v.Name
	case *dom.Typedef:
		v.Name = prefix + v.Name
	case *dom.FieldDeclaration:
		v.Name = prefix + v.Name
	}
}

// FlattenNestedClasses moves every class/struct/union declared inside
// another up to the enclosing scope, prefixing its name with
// "Outer_" (spec §4.5). Processed innermost-first so a class nested three
// deep accumulates the full prefix chain.
func FlattenNestedClasses(root *dom.HeaderFileSet) error {
	for {
		moved := false
		all := dom.ListAllChildrenOfType[*dom.ClassStructUnion](root)
		for i := len(all) - 1; i >= 0; i-- {
			cl := all[i]
			outer, ok := cl.Parent().(*dom.ClassStructUnion)
			if !ok {
				continue
			}
			cl.Name = outer.Name + "_" + cl.Name
			outer.RemoveDecl(cl)
			insertAfterInParent(outer, cl)
			moved = true
		}
		if !moved {
			break
		}
	}
	return nil
}

// insertAfterInParent re-homes n as a new sibling immediately after mark
// in mark's own parent container (used when hoisting a nested class out
// of the class it was declared in).
func insertAfterInParent(mark dom.Node, n dom.Node) {
	parent := mark.Parent()
	switch p := parent.(type) {
	case dom.Container:
		p.InsertDeclAfter(mark, n)
	case *dom.PreprocessorConditional:
		if containsNode(p.Then, mark) {
			n.SetParent(p)
			p.Then = insertAfter(p.Then, mark, n)
		} else {
			n.SetParent(p)
			p.Else = insertAfter(p.Else, mark, n)
		}
	}
}

func insertAfter(list []dom.Node, mark, n dom.Node) []dom.Node {
	for i, c := range list {
		if c == mark {
			out := append([]dom.Node{}, list[:i+1]...)
			out = append(out, n)
			return append(out, list[i+1:]...)
		}
	}
	return append(list, n)
}

// FlattenClassFunctions lifts every member function to the scope
// enclosing its class, prefixing its name with "Class_" and, for
// non-static members, inserting a leading self parameter — pointer-to-
// class normally, or by-value if the class is marked IsByValue and the
// function is its constructor (spec §4.5).
func FlattenClassFunctions(root *dom.HeaderFileSet) error {
	for _, cl := range dom.ListAllChildrenOfType[*dom.ClassStructUnion](root) {
		fns := dom.ListAllChildrenOfType[*dom.FunctionDeclaration](cl)
		for _, fn := range fns {
			fn.OriginalClass = cl
			fn.OriginalName = fn.Name
			fn.Name = cl.Name + "_" + fn.Name
			if !fn.IsStatic {
				injectSelfParameter(fn, cl)
			}
			cl.RemoveDecl(fn)
			insertAfterInParent(cl, fn)
		}
	}
	return nil
}

func injectSelfParameter(fn *dom.FunctionDeclaration, cl *dom.ClassStructUnion) {
	selfType := &dom.Type{PrimaryTypeName: cl.Name}
	if cl.IsByValue && fn.IsConstructor {
		fn.IsByValueConstructor = true
	} else {
		selfType.PointerDepth = 1
		if fn.IsConst {
			selfType.Const = true
		}
	}
	self := &dom.FunctionArgument{Name: "self", ArgType: selfType}
	selfType.SetParent(self)
	fn.Arguments = append([]*dom.FunctionArgument{self}, fn.Arguments...)
	self.SetParent(fn)
}

// FlattenTemplates replaces every template instantiation referenced
// anywhere in the tree with a concrete, uniquely-named class carrying the
// substituted types (spec §4.5). customTypeFudges maps a printed type
// form to the form to force in the resulting C signature, working around
// substitutions that would otherwise print incorrectly (e.g.
// "const ImFont **" -> "ImFont* const*", the configured entry in
// internal/pipeline). Keys must match Type.ToCString's canonical printed
// form exactly, spaces included. A fudge can match anywhere in
// the tree a type with that exact printed form occurs — not only inside a
// freshly substituted template body — since custom_type_fudges is a
// plain string-match override, not something scoped to instantiation.
//
// Synthesized instantiations are named Primary_Arg1_Arg2 (sanitized), one
// per distinct argument combination observed; a Type node referencing the
// template is rewritten in place to reference the new concrete name
// instead, with its TemplateArgs cleared.
func FlattenTemplates(root *dom.HeaderFileSet, customTypeFudges map[string]string) error {
	templates := map[string]*dom.ClassStructUnion{}
	refs := dom.ListAllChildrenOfType[*dom.Type](root)
	for _, t := range refs {
		if fudge, ok := customTypeFudges[t.ToCString(&dom.WriteContext{ForC: true})]; ok {
			t.RawOverride = fudge
			continue
		}
		if len(t.TemplateArgs) == 0 {
			continue
		}
		concreteName := instantiationName(t)
		if _, ok := templates[concreteName]; !ok {
			decl, ok := findTemplateDecl(root, t.PrimaryTypeName)
			if ok {
				inst := instantiateTemplate(decl, concreteName, t.TemplateArgs)
				applyCustomTypeFudges(inst, customTypeFudges)
				insertAfterInParent(decl, inst)
				templates[concreteName] = inst
			}
		}
		t.PrimaryTypeName = concreteName
		t.TemplateArgs = nil
	}
	return nil
}

// applyCustomTypeFudges forces the printed form of every type within inst
// (typically a template's freshly substituted member fields) that matches
// a customTypeFudges key — the case the spec names: a substitution whose
// structural composition prints correctly by the ordinary rules but isn't
// the form the real C API needs.
func applyCustomTypeFudges(inst *dom.ClassStructUnion, customTypeFudges map[string]string) {
	for _, t := range dom.ListAllChildrenOfType[*dom.Type](inst) {
		if fudge, ok := customTypeFudges[t.ToCString(&dom.WriteContext{ForC: true})]; ok {
			t.RawOverride = fudge
		}
	}
}

func instantiationName(t *dom.Type) string {
	name := t.PrimaryTypeName
	for _, a := range t.TemplateArgs {
		name += "_" + sanitizeForIdentifier(capitalize(a.GetPrimaryTypeName()))
	}
	return name
}

func findTemplateDecl(root *dom.HeaderFileSet, name string) (*dom.ClassStructUnion, bool) {
	for _, cl := range dom.ListAllChildrenOfType[*dom.ClassStructUnion](root) {
		if cl.Name == name {
			return cl, true
		}
	}
	return nil, false
}

// instantiateTemplate clones decl under a new name and substitutes each of
// decl.TemplateParams, in order, for the corresponding entry of args
// throughout every field/argument/return type in the clone (spec §4.5
// "carrying the type substitutions applied"). Parameters beyond len(args),
// or when decl carries no TemplateParams at all (a template clause the
// parser didn't recognize), are left as a bare rename with no
// substitution — the clone is still inserted, just not fully concrete.
func instantiateTemplate(decl *dom.ClassStructUnion, concreteName string, args []*dom.Type) *dom.ClassStructUnion {
	inst := decl.Clone().(*dom.ClassStructUnion)
	inst.Name = concreteName

	for i, param := range decl.TemplateParams {
		if i >= len(args) {
			break
		}
		arg := args[i]
		for _, t := range dom.ListAllChildrenOfType[*dom.Type](inst) {
			substituteTemplateParam(t, param, arg)
		}
	}

	return inst
}

// substituteTemplateParam rewrites t in place, replacing every reference
// to paramName (a bare use of the template parameter as a primary type
// name, e.g. "T" or "T*") with arg, composing t's own qualifiers and
// pointer depth on top of arg's rather than discarding them — so "T*"
// substituted with argument "ImFont" becomes "ImFont*", and "T*"
// substituted with argument "ImFont*" becomes "ImFont**". Nested template
// arguments (e.g. a field typed "OtherTemplate<T>") are substituted
// recursively.
func substituteTemplateParam(t *dom.Type, paramName string, arg *dom.Type) {
	if t == nil {
		return
	}
	if t.PrimaryTypeName == paramName && len(t.TemplateArgs) == 0 {
		pointerDepth, arrayDims, reference := t.PointerDepth, t.ArrayDims, t.Reference
		constOuter, volatileOuter := t.Const, t.Volatile

		t.PrimaryTypeName = arg.PrimaryTypeName
		t.PointerDepth = arg.PointerDepth + pointerDepth
		t.Const = arg.Const || constOuter
		t.Volatile = arg.Volatile || volatileOuter
		t.Reference = arg.Reference || reference
		t.ArrayDims = append(append([]string(nil), arg.ArrayDims...), arrayDims...)

		t.TemplateArgs = nil
		for _, a := range arg.TemplateArgs {
			c := a.Clone().(*dom.Type)
			c.SetParent(t)
			t.TemplateArgs = append(t.TemplateArgs, c)
		}
		return
	}
	for _, inner := range t.TemplateArgs {
		substituteTemplateParam(inner, paramName, arg)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
