package modifier

import (
	"fmt"
	"strings"

	"github.com/oxhq/dearbind/internal/dom"
	"github.com/oxhq/dearbind/internal/lexer"
	"github.com/oxhq/dearbind/internal/parser"
)

// AddManualHelperFunctions parses each entry of signatures as a standalone
// function declaration (a trailing "// comment" on the same line becomes
// its attached comment) and inserts it at the start of the first header
// file, flagged IsManualHelper (spec §4.5). These back hand-written
// implementations the thunk layer's template supplies directly — they
// have no C++ counterpart to thunk to.
func AddManualHelperFunctions(root *dom.HeaderFileSet, signatures []string) error {
	if len(root.Files) == 0 {
		return fmt.Errorf("add_manual_helper_functions: no header file to insert into")
	}
	hf := root.Files[0]
	for _, sig := range signatures {
		stream := lexer.Tokenize("<manual-helper>", sig)
		fn, ok := parser.ParseFunctionDeclaration(&dom.ParseContext{}, stream)
		if !ok {
			return fmt.Errorf("add_manual_helper_functions: could not parse signature %q", sig)
		}
		fn.IsManualHelper = true
		insertAtFront(hf, fn)
	}
	return nil
}

func insertAtFront(hf *dom.HeaderFile, fn *dom.FunctionDeclaration) {
	decls := hf.Decls()
	if len(decls) == 0 {
		hf.AddDecl(fn)
		return
	}
	hf.InsertDeclBefore(decls[0], fn)
}

// AddFunctionComment appends text to the attached comment of the function
// identified by qualifiedName (its forced fully-qualified name), creating
// one if it doesn't yet have an attached comment (spec §4.5).
func AddFunctionComment(root *dom.HeaderFileSet, qualifiedName, text string) error {
	for _, fn := range dom.ListAllChildrenOfType[*dom.FunctionDeclaration](root) {
		if fn.FullyQualifiedName("", false, true) != qualifiedName {
			continue
		}
		if existing := fn.AttachedComment(); existing != nil {
			existing.Text = strings.TrimRight(existing.Text, " ") + " " + text
			return nil
		}
		fn.SetAttachedComment(&dom.Comment{Text: "// " + text, IsLineComment: true, IsAttached: true})
		return nil
	}
	return fmt.Errorf("add_function_comment: no function named %q", qualifiedName)
}

// ForwardDeclareStructs prepends a forward declaration for every struct
// referenced by a pointer/reference Type anywhere in the tree but not
// lexically declared before its first such reference, at the top of the
// first header file (spec §4.5) — C requires the declaration (even an
// incomplete one) before any pointer-to-it can be named.
func ForwardDeclareStructs(root *dom.HeaderFileSet) error {
	if len(root.Files) == 0 {
		return nil
	}
	hf := root.Files[0]

	known := map[string]bool{}
	for _, cl := range dom.ListAllChildrenOfType[*dom.ClassStructUnion](root) {
		known[cl.Name] = true
	}

	var needed []string
	seen := map[string]bool{}
	declaredBefore := map[string]bool{}
	dom.Walk(root, func(n dom.Node) bool {
		if cl, ok := n.(*dom.ClassStructUnion); ok {
			declaredBefore[cl.Name] = true
		}
		if t, ok := n.(*dom.Type); ok && t.IsPointer() && known[t.PrimaryTypeName] && !declaredBefore[t.PrimaryTypeName] {
			if !seen[t.PrimaryTypeName] {
				seen[t.PrimaryTypeName] = true
				needed = append(needed, t.PrimaryTypeName)
			}
		}
		return true
	})

	decls := hf.Decls()
	var before dom.Node
	if len(decls) > 0 {
		before = decls[0]
	}
	for i := len(needed) - 1; i >= 0; i-- {
		fwd := &dom.ClassStructUnion{Kind: dom.ClassKindStruct, Name: needed[i], IsForwardDeclaration: true}
		if before != nil {
			hf.InsertDeclBefore(before, fwd)
		} else {
			hf.AddDecl(fwd)
		}
		before = fwd
	}
	return nil
}

// WrapWithExternC surrounds every header file's top-level declarations
// with a `#ifdef __cplusplus` / `extern "C" {` opener and matching closer,
// so the generated C header also links correctly when included from C++
// (spec §4.5). The guard itself is emitted as a pair of standalone
// comments rather than modeled as C++ syntax the DOM would otherwise have
// no node for; WriteToC passes comment text through verbatim.
func WrapWithExternC(root *dom.HeaderFileSet) error {
	for _, hf := range dom.ListAllChildrenOfType[*dom.HeaderFile](root) {
		if len(hf.Decls()) == 0 {
			continue
		}
		opener := []dom.Node{
			&dom.Comment{Text: "#ifdef __cplusplus", IsLineComment: true},
			&dom.Comment{Text: `extern "C" {`, IsLineComment: true},
			&dom.Comment{Text: "#endif", IsLineComment: true},
		}
		first := hf.Decls()[0]
		hf.ReplaceDeclWithMany(first, append(opener, first))

		closer := []dom.Node{
			&dom.Comment{Text: "#ifdef __cplusplus", IsLineComment: true},
			&dom.Comment{Text: "}", IsLineComment: true},
			&dom.Comment{Text: "#endif", IsLineComment: true},
		}
		for _, n := range closer {
			hf.AddDecl(n)
		}
	}
	return nil
}

// AlignComments computes, per contiguous run of sibling declarations
// carrying an attached comment within the same container, the column at
// which those comments should start (the widest declaration's printed
// prefix-plus-name-plus-args length, plus one space), and stores it on
// each FunctionDeclaration's AlignColumn (spec §4.5). Only
// FunctionDeclaration currently renders AlignColumn (function.go's
// WriteToC); other variants with attached comments print them flush
// after their own terminator instead.
func AlignComments(root *dom.HeaderFileSet) error {
	dom.Walk(root, func(n dom.Node) bool {
		if c, ok := n.(dom.Container); ok {
			alignCommentsIn(c)
		}
		return true
	})
	return nil
}

func alignCommentsIn(c dom.Container) {
	var run []*dom.FunctionDeclaration
	flush := func() {
		if len(run) < 2 {
			for _, fn := range run {
				fn.AlignColumn = 0
			}
			run = nil
			return
		}
		widest := 0
		ctx := &dom.WriteContext{ForC: true}
		for _, fn := range run {
			w := len(fn.GetPrefixesAndReturnType(ctx)) + len(fn.Name)
			if w > widest {
				widest = w
			}
		}
		for _, fn := range run {
			fn.AlignColumn = widest + 1
		}
		run = nil
	}
	for _, d := range c.Decls() {
		fn, ok := d.(*dom.FunctionDeclaration)
		if !ok || fn.AttachedComment() == nil {
			flush()
			continue
		}
		run = append(run, fn)
	}
	flush()
}

// ExcludeDefinesFromMetadata marks every #define whose name is in names so
// the metadata emitter omits it (spec §4.5) — used for macros that exist
// purely as implementation details (IMGUI_IMPL_API) or color-constant
// conveniences downstream consumers don't need reflected separately.
func ExcludeDefinesFromMetadata(root *dom.HeaderFileSet, names []string) error {
	wanted := toSet(names)
	for _, d := range dom.ListAllChildrenOfType[*dom.Define](root) {
		if wanted[d.Name] {
			d.ExcludedFromMetadata = true
		}
	}
	return nil
}
