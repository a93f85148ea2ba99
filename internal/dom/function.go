package dom

import (
	"fmt"
	"io"
	"strings"
)

// FunctionArgument is one parameter of a FunctionDeclaration (spec §3.1).
type FunctionArgument struct {
	Base

	Name    string
	ArgType *Type

	// DefaultValue holds the raw, collapsed default-value text without the
	// "=" (e.g. "1") if this argument has a default, "" otherwise.
	DefaultValue string
	HasDefault   bool

	IsVarargs bool
	// IsImplicitDefault is set when a defaulted argument is omitted in a
	// generated overload (see generate_default_argument_functions, spec
	// §4.5 "Name synthesis").
	IsImplicitDefault bool
	IsArray           bool
}

func (a *FunctionArgument) TypeName() string { return "FunctionArgument" }

func (a *FunctionArgument) ChildLists() [][]Node {
	if a.ArgType == nil {
		return nil
	}
	return [][]Node{{a.ArgType}}
}

func (a *FunctionArgument) Clone() Node {
	clone := &FunctionArgument{
		Base:              a.cloneBase(),
		Name:              a.Name,
		DefaultValue:      a.DefaultValue,
		HasDefault:        a.HasDefault,
		IsVarargs:         a.IsVarargs,
		IsImplicitDefault: a.IsImplicitDefault,
		IsArray:           a.IsArray,
	}
	if a.ArgType != nil {
		clone.ArgType = a.ArgType.Clone().(*Type)
		clone.ArgType.SetParent(clone)
	}
	return clone
}

// ToCString renders "Type name" (or "..." for a varargs argument, or
// "Type name[]" for an array argument). Default values are never emitted
// here — C has no default arguments, so generate_default_argument_functions
// is expected to have already expanded them into explicit overloads by the
// time this is called for C output.
func (a *FunctionArgument) ToCString(ctx *WriteContext) string {
	if a.IsVarargs {
		return "..."
	}
	typeStr := ""
	if a.ArgType != nil {
		typeStr = a.ArgType.ToCString(ctx)
	}
	if a.IsArray {
		return fmt.Sprintf("%s %s[]", typeStr, a.Name)
	}
	if a.Name == "" {
		return typeStr
	}
	return fmt.Sprintf("%s %s", typeStr, a.Name)
}

func (a *FunctionArgument) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	writeRaw(w, 0, a.ToCString(ctx))
}

// FunctionDeclaration is a function, method, constructor, destructor, or
// operator declaration (spec §3.1).
type FunctionDeclaration struct {
	Base

	Name       string
	ReturnType *Type // nil for constructors/destructors
	Arguments  []*FunctionArgument

	IsConst              bool
	IsConstexpr          bool
	IsStatic             bool
	IsInline             bool
	IsOperator           bool
	IsConstructor        bool
	IsByValueConstructor bool
	IsDestructor         bool
	IsImguiAPI           bool

	// ImFmtArgs/ImFmtList hold the 1-based argument index named by
	// IM_FMTARGS(n)/IM_FMTLIST(n), or nil if absent.
	ImFmtArgs *int
	ImFmtList *int

	// Accessibility is "public", "protected", "private", or "" (unset,
	// meaning this isn't a class member or accessibility wasn't tracked).
	Accessibility string

	// OriginalClass is a shallow reference to the class this function
	// belonged to before flatten_class_functions ran (invariant 4, spec
	// §3.2). It is deliberately not deep-cloned by Clone.
	OriginalClass *ClassStructUnion

	// OriginalName holds the unqualified member name this function had
	// before flatten_class_functions rewrote Name to "Class_Member" — the
	// C++ thunk writer needs it to call back into OriginalClass's own
	// method. Empty for a function that was never a class member.
	OriginalName string

	IsDefaultArgumentHelper bool
	IsManualHelper          bool
	IsUnformattedHelper     bool
	IsImstrHelper           bool
	HasImstrHelper          bool

	// InitializerListTokens holds the collapsed raw text of a constructor
	// initializer list (": a(1), b(2)"), if present.
	InitializerListTokens string
	HasInitializerList    bool

	Body *CodeBlock

	// AlignColumn is the column computed by align_comments/align-style
	// passes to line up attached comments and/or function names.
	AlignColumn int
}

func (f *FunctionDeclaration) TypeName() string { return "FunctionDeclaration" }

func (f *FunctionDeclaration) ChildLists() [][]Node {
	args := make([]Node, len(f.Arguments))
	for i, a := range f.Arguments {
		args[i] = a
	}
	lists := [][]Node{args}
	if f.ReturnType != nil {
		lists = append(lists, []Node{f.ReturnType})
	}
	if f.Body != nil {
		lists = append(lists, []Node{f.Body})
	}
	return lists
}

// AddArgument appends a new argument, maintaining the parent link.
func (f *FunctionDeclaration) AddArgument(arg *FunctionArgument) {
	arg.SetParent(f)
	f.Arguments = append(f.Arguments, arg)
}

// RemoveArgument removes arg from this function's argument list.
func (f *FunctionDeclaration) RemoveArgument(arg *FunctionArgument) {
	for i, a := range f.Arguments {
		if a == arg {
			f.Arguments = append(f.Arguments[:i], f.Arguments[i+1:]...)
			arg.SetParent(nil)
			return
		}
	}
}

// Clone deep-copies the function, except OriginalClass, which is kept as
// a shallow reference (invariant 4, spec §3.2).
func (f *FunctionDeclaration) Clone() Node {
	clone := &FunctionDeclaration{
		Base:                    f.cloneBase(),
		Name:                    f.Name,
		IsConst:                 f.IsConst,
		IsConstexpr:             f.IsConstexpr,
		IsStatic:                f.IsStatic,
		IsInline:                f.IsInline,
		IsOperator:              f.IsOperator,
		IsConstructor:           f.IsConstructor,
		IsByValueConstructor:    f.IsByValueConstructor,
		IsDestructor:            f.IsDestructor,
		IsImguiAPI:              f.IsImguiAPI,
		Accessibility:           f.Accessibility,
		OriginalClass:           f.OriginalClass, // shallow, intentionally
		OriginalName:            f.OriginalName,
		IsDefaultArgumentHelper: f.IsDefaultArgumentHelper,
		IsManualHelper:          f.IsManualHelper,
		IsUnformattedHelper:     f.IsUnformattedHelper,
		IsImstrHelper:           f.IsImstrHelper,
		HasImstrHelper:          f.HasImstrHelper,
		InitializerListTokens:   f.InitializerListTokens,
		HasInitializerList:      f.HasInitializerList,
		AlignColumn:             f.AlignColumn,
	}
	if f.ImFmtArgs != nil {
		v := *f.ImFmtArgs
		clone.ImFmtArgs = &v
	}
	if f.ImFmtList != nil {
		v := *f.ImFmtList
		clone.ImFmtList = &v
	}
	if f.ReturnType != nil {
		clone.ReturnType = f.ReturnType.Clone().(*Type)
		clone.ReturnType.SetParent(clone)
	}
	for _, a := range f.Arguments {
		ac := a.Clone().(*FunctionArgument)
		ac.SetParent(clone)
		clone.Arguments = append(clone.Arguments, ac)
	}
	if f.Body != nil {
		clone.Body = f.Body.Clone().(*CodeBlock)
		clone.Body.SetParent(clone)
	}
	return clone
}

// FullyQualifiedName implements spec §4.3's
// get_fully_qualified_name(leaf, include_leading_colons,
// return_fqn_even_for_member_functions). Non-static member functions
// return their leaf name (the instance supplies the class), unless
// returnFQNEvenForMemberFunctions forces full qualification.
func (f *FunctionDeclaration) FullyQualifiedName(leaf string, includeLeadingColons, returnFQNEvenForMemberFunctions bool) string {
	if leaf == "" {
		leaf = f.Name
	}
	if f.Parent() == nil {
		return leaf
	}
	if parentClass(f) != nil && !f.IsStatic && !returnFQNEvenForMemberFunctions {
		return leaf
	}
	return FullyQualifiedName(f.Parent(), leaf, includeLeadingColons, returnFQNEvenForMemberFunctions)
}

// GetPrefixesAndReturnType renders the storage-class/linkage prefixes and
// return type, exactly mirroring the original's
// get_prefixes_and_return_type (kept separate from WriteToC because the
// alignment modifier needs the un-padded length too).
func (f *FunctionDeclaration) GetPrefixesAndReturnType(ctx *WriteContext) string {
	var b strings.Builder
	if f.IsImguiAPI {
		if ctx.ForC {
			b.WriteString("CIMGUI_API ")
		} else {
			b.WriteString("IMGUI_API ")
		}
	}
	if f.IsStatic && !ctx.ForImplementation {
		b.WriteString("static ")
	}
	if f.IsInline && !ctx.ForImplementation {
		if ctx.ForC {
			b.WriteString("static inline ")
		} else {
			b.WriteString("inline ")
		}
	}
	if f.ReturnType != nil {
		b.WriteString(f.ReturnType.ToCString(ctx))
		b.WriteString(" ")
	}
	return b.String()
}

func (f *FunctionDeclaration) WriteToC(w io.Writer, indent int, ctx *WriteContext) {
	writePrecedingComments(w, indent, ctx, f)

	declaration := f.GetPrefixesAndReturnType(ctx)
	if len(declaration) < f.AlignColumn {
		declaration += strings.Repeat(" ", f.AlignColumn-len(declaration))
	}

	if ctx.ForImplementation {
		declaration += f.FullyQualifiedName("", false, false) + "("
	} else {
		declaration += f.Name + "("
	}

	var args []string
	for _, arg := range f.Arguments {
		if arg.IsImplicitDefault {
			continue
		}
		args = append(args, arg.ToCString(ctx))
	}
	argStr := strings.Join(args, ", ")
	if ctx.ForC && argStr == "" {
		argStr = "void"
	}
	declaration += argStr + ")"

	if f.IsConst {
		declaration += " const"
	}
	if f.IsConstexpr {
		declaration += " constexpr"
	}
	if !ctx.ForImplementation {
		if f.ImFmtArgs != nil {
			declaration += fmt.Sprintf(" IM_FMTARGS(%d)", *f.ImFmtArgs)
		}
		if f.ImFmtList != nil {
			declaration += fmt.Sprintf(" IM_FMTLIST(%d)", *f.ImFmtList)
		}
	}

	if ctx.ForImplementation {
		writeCLine(w, indent, declaration)
		return
	}

	if f.Body != nil {
		writeCLine(w, indent, addAttachedCommentSuffix(declaration, f))
		if f.HasInitializerList {
			writeCLine(w, indent, f.InitializerListTokens)
		}
		f.Body.WriteToC(w, indent, ctx)
		return
	}
	writeCLine(w, indent, addAttachedCommentSuffix(declaration+";", f))
}
