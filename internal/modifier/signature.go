package modifier

import (
	"strings"

	"github.com/oxhq/dearbind/internal/dom"
)

// ConvertReferencesToPointers turns every "T&" argument or return type
// into "T*" (spec §4.5). The C++ thunk layer (internal/emit/thunk) takes
// the address of the caller's value when forwarding to the original
// reference-typed parameter.
func ConvertReferencesToPointers(root *dom.HeaderFileSet) error {
	for _, t := range dom.ListAllChildrenOfType[*dom.Type](root) {
		if !t.Reference {
			continue
		}
		t.Reference = false
		t.PointerDepth++
	}
	return nil
}

// MarkByValueStructs sets IsByValue on every listed ClassStructUnion;
// downstream passes (flatten_class_functions, the thunk emitter) treat
// these as pass-by-value rather than pass-by-pointer in the C API (spec
// §4.5).
func MarkByValueStructs(root *dom.HeaderFileSet, names []string) error {
	wanted := toSet(names)
	for _, cl := range dom.ListAllChildrenOfType[*dom.ClassStructUnion](root) {
		if wanted[cl.Name] {
			cl.IsByValue = true
		}
	}
	return nil
}

// internalMarker is the preceding-comment substring that flags a field as
// implementation-internal (conventionally "[Internal]" in the Dear ImGui
// dialect this targets).
const internalMarker = "[Internal]"

// MarkInternalMembers sets IsInternal on every FieldDeclaration whose
// preceding comment contains internalMarker, for metadata filtering (spec
// §4.5, §3.1).
func MarkInternalMembers(root *dom.HeaderFileSet) error {
	for _, f := range dom.ListAllChildrenOfType[*dom.FieldDeclaration](root) {
		for _, c := range f.PrecedingComments() {
			if strings.Contains(c.Text, internalMarker) {
				f.IsInternal = true
				break
			}
		}
	}
	return nil
}
