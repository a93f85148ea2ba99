// Package thunk drives the DOM to produce the C++ implementation file
// described in SPEC_FULL.md §6.3 ("C++ thunk writer"): one function body
// per flattened member function, forwarding the call into the original
// C++ method via the pre-flattening OriginalClass/OriginalName that
// flatten_class_functions preserves (internal/modifier/flatten.go).
package thunk

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oxhq/dearbind/internal/dom"
)

// Write renders root's implementation file to w. Functions that were
// never class members (OriginalClass == nil — loose ImGui:: functions,
// manual helpers) have no thunk to generate here: their declaration in
// the header is their only form, since the original dear_bindings-style
// pipeline never rewrites the body of a free function.
func Write(w io.Writer, root *dom.HeaderFileSet) error {
	ctx := &dom.WriteContext{ForImplementation: true}
	for _, fn := range dom.ListAllChildrenOfType[*dom.FunctionDeclaration](root) {
		if fn.OriginalClass == nil {
			continue
		}
		writeThunk(w, fn, ctx)
	}
	return nil
}

// WriteFile mirrors cheader.WriteFile for the `-o <path>.cpp` output.
func WriteFile(path string, root *dom.HeaderFileSet) error {
	return WriteFileWithTemplate(path, root, "")
}

// WriteFileWithTemplate is WriteFile, but when templatePath is non-empty
// its contents (the hand-written "<basename>-header.cpp" the --templatedir
// flag locates) are copied in first, verbatim, ahead of the generated
// thunks — the same split the original tool's own hand-maintained
// per-binding template files follow, hand-written helpers and includes
// above, generated forwarding code below.
func WriteFileWithTemplate(path string, root *dom.HeaderFileSet, templatePath string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if templatePath != "" {
		tmpl, err := os.ReadFile(templatePath)
		if err != nil {
			return err
		}
		if _, err := f.Write(tmpl); err != nil {
			return err
		}
		io.WriteString(f, "\n\n")
	}

	return Write(f, root)
}

func writeThunk(w io.Writer, fn *dom.FunctionDeclaration, ctx *dom.WriteContext) {
	fn.WriteToC(w, 0, ctx)
	io.WriteString(w, "{\n    ")
	io.WriteString(w, callExpr(fn))
	io.WriteString(w, "\n}\n\n")
}

// callExpr builds the single forwarding statement in a thunk's body. The
// receiver argument flatten_class_functions prepends ("self") is never
// itself forwarded — it is either the receiver of the "->" call, the
// placement-new target, or (for a by-value constructor) discarded
// entirely in favor of a plain value return.
func callExpr(fn *dom.FunctionDeclaration) string {
	name := fn.OriginalName
	if name == "" {
		name = fn.Name
	}
	args := strings.Join(forwardedArgs(fn), ", ")

	switch {
	case fn.IsDestructor:
		return fmt.Sprintf("self->~%s();", fn.OriginalClass.Name)
	case fn.IsConstructor && fn.IsByValueConstructor:
		return fmt.Sprintf("return %s(%s);", fn.OriginalClass.Name, args)
	case fn.IsConstructor:
		return fmt.Sprintf("new(self) %s(%s);", fn.OriginalClass.Name, args)
	default:
		call := fmt.Sprintf("self->%s(%s)", name, args)
		if fn.ReturnType != nil && fn.ReturnType.PrimaryTypeName != "void" {
			return "return " + call + ";"
		}
		return call + ";"
	}
}

// forwardedArgs lists the argument names to pass to the original method,
// dropping the injected self receiver (present on every non-static member
// thunk) and any implicit-default argument a generated overload omits.
// A trailing varargs parameter cannot be re-forwarded without a va_list
// thunk the original tool generates through a separate unformatted-helper
// pass (mod_generate_default_argument_functions's sibling for format
// strings); it is dropped here rather than miscompiled.
func forwardedArgs(fn *dom.FunctionDeclaration) []string {
	args := fn.Arguments
	if !fn.IsStatic && len(args) > 0 {
		args = args[1:]
	}
	var out []string
	for _, a := range args {
		if a.IsImplicitDefault || a.IsVarargs {
			continue
		}
		out = append(out, a.Name)
	}
	return out
}
