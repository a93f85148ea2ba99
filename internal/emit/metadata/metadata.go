// Package metadata drives the DOM to produce the JSON side-channel
// document described in SPEC_FULL.md §6.3 ("Metadata writer"): one
// top-level array per declaration kind, omitting anything flagged for
// exclusion.
package metadata

import (
	"encoding/json"
	"io"
	"os"

	"github.com/oxhq/dearbind/internal/dom"
)

// Document is the top-level JSON shape. RunID is populated by the caller
// from the per-invocation UUID (§10.6); it is omitted entirely for
// callers (tests, library use) that don't set one.
type Document struct {
	RunID     string     `json:"run_id,omitempty"`
	Defines   []Define   `json:"defines"`
	Enums     []Enum     `json:"enums"`
	Typedefs  []Typedef  `json:"typedefs"`
	Structs   []Struct   `json:"structs"`
	Functions []Function `json:"functions"`
}

type Define struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

type EnumValue struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

type Enum struct {
	Name   string      `json:"name"`
	Values []EnumValue `json:"values"`
}

type Typedef struct {
	Name       string `json:"name"`
	Underlying string `json:"underlying_type"`
}

type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type Struct struct {
	Name    string  `json:"name"`
	Kind    string  `json:"kind"`
	ByValue bool    `json:"by_value,omitempty"`
	Fields  []Field `json:"fields"`
}

type Argument struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Default string `json:"default_value,omitempty"`
}

type Function struct {
	Name                    string     `json:"name"`
	ReturnType              string     `json:"return_type,omitempty"`
	Arguments               []Argument `json:"arguments"`
	IsDefaultArgumentHelper bool       `json:"is_default_argument_helper,omitempty"`
	IsManualHelper          bool       `json:"is_manual_helper,omitempty"`
}

var cTypeCtx = &dom.WriteContext{ForC: true}

// Build walks root — the modified tree, after the full pipeline has run —
// into a Document. The unmodified clone root.UnmodifiedClone() saved
// before the pipeline started exists for the round-trip validity property
// (spec §8 property #3, exercised by internal/dom's own tests); the
// metadata document itself describes the final, post-pipeline
// declarations, so Build does not need to read the clone.
func Build(root *dom.HeaderFileSet) *Document {
	doc := &Document{}

	for _, d := range dom.ListAllChildrenOfType[*dom.Define](root) {
		if d.ExcludedFromMetadata {
			continue
		}
		entry := Define{Name: d.Name}
		if d.HasValue {
			entry.Value = d.Value
		}
		doc.Defines = append(doc.Defines, entry)
	}

	for _, e := range dom.ListAllChildrenOfType[*dom.EnumDeclaration](root) {
		enum := Enum{Name: e.Name}
		for _, el := range e.Elements {
			v := EnumValue{Name: el.Name}
			if el.HasValue {
				v.Value = el.Value
			}
			enum.Values = append(enum.Values, v)
		}
		doc.Enums = append(doc.Enums, enum)
	}

	for _, t := range dom.ListAllChildrenOfType[*dom.Typedef](root) {
		underlying := ""
		if t.Underlying != nil {
			underlying = t.Underlying.ToCString(cTypeCtx)
		}
		doc.Typedefs = append(doc.Typedefs, Typedef{Name: t.Name, Underlying: underlying})
	}

	for _, cl := range dom.ListAllChildrenOfType[*dom.ClassStructUnion](root) {
		if cl.IsForwardDeclaration {
			continue
		}
		s := Struct{Name: cl.Name, Kind: string(cl.Kind), ByValue: cl.IsByValue}
		for _, decl := range cl.Decls() {
			f, ok := decl.(*dom.FieldDeclaration)
			if !ok || f.IsInternal {
				continue
			}
			typeStr := ""
			if f.FieldType != nil {
				typeStr = f.FieldType.ToCString(cTypeCtx)
			}
			s.Fields = append(s.Fields, Field{Name: f.Name, Type: typeStr})
		}
		doc.Structs = append(doc.Structs, s)
	}

	for _, fn := range dom.ListAllChildrenOfType[*dom.FunctionDeclaration](root) {
		if _, isMember := fn.Parent().(*dom.ClassStructUnion); isMember {
			continue
		}
		f := Function{
			Name:                    fn.Name,
			IsDefaultArgumentHelper: fn.IsDefaultArgumentHelper,
			IsManualHelper:          fn.IsManualHelper,
		}
		if fn.ReturnType != nil {
			f.ReturnType = fn.ReturnType.ToCString(cTypeCtx)
		}
		for _, a := range fn.Arguments {
			if a.IsImplicitDefault {
				continue
			}
			arg := Argument{Name: a.Name}
			if a.IsVarargs {
				arg.Type = "..."
			} else if a.ArgType != nil {
				arg.Type = a.ArgType.ToCString(cTypeCtx)
			}
			if a.HasDefault {
				arg.Default = a.DefaultValue
			}
			f.Arguments = append(f.Arguments, arg)
		}
		doc.Functions = append(doc.Functions, f)
	}

	return doc
}

// Write marshals doc to w as indented JSON.
func Write(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteFile mirrors cheader.WriteFile for the `-o <path>.json` output.
func WriteFile(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, doc)
}
