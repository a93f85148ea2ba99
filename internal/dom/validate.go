package dom

import "fmt"

// ValidateHierarchy walks the tree rooted at root and checks invariant 1
// (spec §3.2): every child's Parent() must point back at the node that
// lists it. It returns the first violation found, or nil if the tree is
// consistent. Modifiers are expected to leave the tree in a state that
// passes this after every pipeline stage (spec §8).
func ValidateHierarchy(root Node) error {
	var err error
	Walk(root, func(n Node) bool {
		if err != nil {
			return false
		}
		for _, list := range n.ChildLists() {
			for _, child := range list {
				if child.Parent() != n {
					err = fmt.Errorf("dom: %s has child %s whose parent is not it", n.TypeName(), child.TypeName())
					return false
				}
			}
		}
		if cn, ok := n.(Commented); ok {
			for _, c := range cn.PrecedingComments() {
				if c.Parent() != nil && c.Parent() != n {
					err = fmt.Errorf("dom: %s has a preceding comment parented elsewhere", n.TypeName())
					return false
				}
			}
		}
		return true
	})
	return err
}
