package modifier

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/oxhq/dearbind/internal/dom"
)

// AddPrefixToLooseFunctions prepends prefix to every function declared at
// file or namespace scope (not a class member) — spec §4.5. Run after
// namespace flattening so former namespace members, already hoisted to
// file scope, are treated the same as originally-loose ones.
func AddPrefixToLooseFunctions(root *dom.HeaderFileSet, prefix string) error {
	for _, fn := range dom.ListAllChildrenOfType[*dom.FunctionDeclaration](root) {
		if _, isMember := fn.Parent().(*dom.ClassStructUnion); isMember {
			continue
		}
		fn.Name = prefix + fn.Name
	}
	return nil
}

// MakeAllFunctionsUseImguiAPI sets IsImguiAPI on every remaining function
// (spec §4.5), so every exported symbol carries the linkage macro.
func MakeAllFunctionsUseImguiAPI(root *dom.HeaderFileSet) error {
	for _, fn := range dom.ListAllChildrenOfType[*dom.FunctionDeclaration](root) {
		fn.IsImguiAPI = true
	}
	return nil
}

// RenameDefines renames every #define macro whose name is a key in rename,
// and rewrites every occurrence of the old name in any Type's printed
// primary name or a FunctionArgument's default-value text (spec §4.5) —
// the two places a macro name can otherwise leak into emitted C.
func RenameDefines(root *dom.HeaderFileSet, rename map[string]string) error {
	for _, d := range dom.ListAllChildrenOfType[*dom.Define](root) {
		if to, ok := rename[d.Name]; ok {
			d.Name = to
		}
	}
	for old, to := range rename {
		for _, t := range dom.ListAllChildrenOfType[*dom.Type](root) {
			if t.PrimaryTypeName == old {
				t.PrimaryTypeName = to
			}
		}
		for _, a := range dom.ListAllChildrenOfType[*dom.FunctionArgument](root) {
			if a.HasDefault {
				a.DefaultValue = strings.ReplaceAll(a.DefaultValue, old, to)
			}
		}
	}
	return nil
}

// GenerateDefaultArgumentFunctions emits, for every function with k>=1
// trailing default arguments, k additional overloads. The function itself
// is kept unmodified with every argument; the first overload omits the
// last defaulted argument and each subsequent one omits one more, marking
// the omitted arguments IsImplicitDefault. Every generated overload is flagged
// IsDefaultArgumentHelper. Run before disambiguate_functions so it sees
// these as ordinary overloads (spec §4.5).
func GenerateDefaultArgumentFunctions(root *dom.HeaderFileSet) error {
	for _, fn := range dom.ListAllChildrenOfType[*dom.FunctionDeclaration](root) {
		firstDefault := -1
		for i, a := range fn.Arguments {
			if a.HasDefault {
				firstDefault = i
				break
			}
		}
		if firstDefault < 0 {
			continue
		}
		for cut := len(fn.Arguments) - 1; cut >= firstDefault; cut-- {
			overload := fn.Clone().(*dom.FunctionDeclaration)
			overload.IsDefaultArgumentHelper = true
			for i, a := range overload.Arguments {
				if i >= cut {
					a.IsImplicitDefault = true
				}
			}
			insertAfterInParent(fn, overload)
		}
	}
	return nil
}

// DisambiguateFunctions resolves name collisions between overloaded
// functions that share a (post-flattening) name, per the algorithm in
// spec §4.6: compute the common-argument-prefix arity, exempt the
// shortest-arity overload, suffix every other overload from its first
// non-common argument (consulting suffixRemaps, falling back to a
// capitalized primary type name with a "Ptr" suffix for pointers), apply
// the two-way const-return tiebreak, then verify no group still collides
// (names in ignoreList are permitted to survive as documented false
// positives that only differ across preprocessor configurations this
// pass can't see).
func DisambiguateFunctions(root *dom.HeaderFileSet, suffixRemaps map[string]string, ignoreList []string) error {
	ignored := toSet(ignoreList)

	byName := map[string][]*dom.FunctionDeclaration{}
	var order []string
	for _, fn := range dom.ListAllChildrenOfType[*dom.FunctionDeclaration](root) {
		if _, ok := byName[fn.Name]; !ok {
			order = append(order, fn.Name)
		}
		byName[fn.Name] = append(byName[fn.Name], fn)
	}

	for _, name := range order {
		group := byName[name]
		if len(group) < 2 {
			continue
		}
		disambiguateGroup(group, suffixRemaps)
		if err := checkGroupCollisions(group, ignored); err != nil {
			return err
		}
	}
	return nil
}

// effectiveArgs returns fn's arguments that actually appear in its printed
// C signature — generate_default_argument_functions leaves
// IsImplicitDefault arguments in place on the Arguments slice (WriteToC
// skips them at render time) rather than truncating it, so arity-sensitive
// logic here must filter them out to see the same arity the emitted C
// signature has.
func effectiveArgs(fn *dom.FunctionDeclaration) []*dom.FunctionArgument {
	var out []*dom.FunctionArgument
	for _, a := range fn.Arguments {
		if !a.IsImplicitDefault {
			out = append(out, a)
		}
	}
	return out
}

func disambiguateGroup(group []*dom.FunctionDeclaration, suffixRemaps map[string]string) {
	commonArity := commonPrefixArity(group)
	shortest := shortestArityFunction(group)

	for _, fn := range group {
		if fn == shortest {
			continue
		}
		args := effectiveArgs(fn)
		var suffix strings.Builder
		for i := commonArity; i < len(args); i++ {
			arg := args[i]
			if arg.IsVarargs {
				continue
			}
			suffix.WriteString(argSuffixToken(arg, suffixRemaps))
		}
		fn.Name += suffix.String()
	}

	if len(group) == 2 && group[0].Name == group[1].Name {
		a, b := group[0], group[1]
		if a.ReturnType != nil && b.ReturnType != nil && a.ReturnType.IsConst() != b.ReturnType.IsConst() {
			if a.ReturnType.IsConst() {
				a.Name += "_Const"
			} else {
				b.Name += "_Const"
			}
		}
	}
}

func commonPrefixArity(group []*dom.FunctionDeclaration) int {
	reference := effectiveArgs(group[0])
	n := 0
	for n < len(reference) {
		if reference[n].IsVarargs {
			break
		}
		refType := typeString(reference[n].ArgType)
		ok := true
		for _, fn := range group {
			args := effectiveArgs(fn)
			if n >= len(args) || args[n].IsVarargs {
				ok = false
				break
			}
			if typeString(args[n].ArgType) != refType {
				ok = false
				break
			}
		}
		if !ok {
			break
		}
		n++
	}
	return n
}

func shortestArityFunction(group []*dom.FunctionDeclaration) *dom.FunctionDeclaration {
	shortest := group[0]
	shortestLen := len(effectiveArgs(shortest))
	for _, fn := range group[1:] {
		if n := len(effectiveArgs(fn)); n < shortestLen {
			shortest = fn
			shortestLen = n
		}
	}
	return shortest
}

func argSuffixToken(arg *dom.FunctionArgument, suffixRemaps map[string]string) string {
	full := typeString(arg.ArgType)
	var name string
	if remapped, ok := suffixRemaps[full]; ok {
		name = remapped
	} else {
		primary := ""
		if arg.ArgType != nil {
			primary = arg.ArgType.GetPrimaryTypeName()
		}
		name = capitalize(primary)
		if strings.HasSuffix(full, "*") {
			name += "Ptr"
		}
	}
	return sanitizeForIdentifier(name)
}

func typeString(t *dom.Type) string {
	if t == nil {
		return ""
	}
	return t.ToCString(&dom.WriteContext{ForC: true})
}

func checkGroupCollisions(group []*dom.FunctionDeclaration, ignored map[string]bool) error {
	seen := map[string]*dom.FunctionDeclaration{}
	for _, fn := range group {
		if ignored[fn.Name] {
			continue
		}
		if _, dup := seen[fn.Name]; dup {
			var names []string
			for _, f := range group {
				names = append(names, f.Name)
			}
			return fmt.Errorf("unresolved function name collision in group %v: %q", names, fn.Name)
		}
		seen[fn.Name] = fn
	}
	return nil
}

var nonIdentifierRun = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// sanitizeForIdentifier strips characters invalid in a C identifier,
// collapses runs of them, and prepends an underscore if the result would
// otherwise start with a digit (spec §4.6 step 3).
func sanitizeForIdentifier(s string) string {
	s = nonIdentifierRun.ReplaceAllString(s, "")
	if s != "" && unicode.IsDigit(rune(s[0])) {
		s = "_" + s
	}
	return s
}
