package dom

import "strings"

// FullyQualifiedName walks up from n's parent chain, prefixing leaf with
// each enclosing Namespace/ClassStructUnion's name joined by "::" (spec
// §4.3's get_fully_qualified_name). It is the package-level half of the
// algorithm; FunctionDeclaration.FullyQualifiedName is the entry point
// that decides whether a member function should qualify at all.
func FullyQualifiedName(n Node, leaf string, includeLeadingColons, returnFQNEvenForMemberFunctions bool) string {
	var parts []string
	cur := n
	for cur != nil {
		switch v := cur.(type) {
		case *Namespace:
			if v.Name != "" {
				parts = append(parts, v.Name)
			}
		case *ClassStructUnion:
			parts = append(parts, v.Name)
		}
		cur = cur.Parent()
	}
	// parts was built innermost-first; reverse to outermost-first.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	parts = append(parts, leaf)
	fqn := strings.Join(parts, "::")
	if includeLeadingColons {
		fqn = "::" + fqn
	}
	return fqn
}

// parentClass returns the nearest enclosing ClassStructUnion, or nil if n
// is not (transitively) a class/struct/union member.
func parentClass(n Node) *ClassStructUnion {
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		if c, ok := cur.(*ClassStructUnion); ok {
			return c
		}
	}
	return nil
}
