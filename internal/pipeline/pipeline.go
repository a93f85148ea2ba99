// Package pipeline exposes the ordered list of modifier passes that turns
// a parsed DOM into its C-compatible form as data, not as a hard-coded
// call sequence (spec §4.4 design note "expose the list as data"), so a
// caller can inspect, truncate, or substitute it without editing this
// package.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oxhq/dearbind/internal/dom"
	"github.com/oxhq/dearbind/internal/modifier"
)

// Step is one named pass over the tree.
type Step struct {
	Name string
	Run  func(*dom.HeaderFileSet) error
}

// Options configures the handful of pass parameters a caller may
// reasonably want to override; everything else in Default's step list is
// a fixed literal, mirroring how the original conversion tool hard-codes
// its own call-site arguments.
type Options struct {
	// ManualHelperSignatures is inserted at the start of the first header
	// file via add_manual_helper_functions.
	// Defaults to the ImVector construct/destruct pair every cimgui-style
	// conversion needs for out_ranges-style arguments.
	ManualHelperSignatures []string
	// FunctionComments, keyed by qualified name, is applied after the
	// manual helpers are added.
	FunctionComments map[string]string
}

// DefaultOptions returns the literal parameters the original conversion
// tool's convert_header function used at its own call sites.
func DefaultOptions() Options {
	return Options{
		ManualHelperSignatures: []string{
			"void ImVector_Construct(void* vector); // Construct a zero-size ImVector<> (of any type). This is primarily useful when calling ImFontGlyphRangesBuilder_BuildRanges()",
			"void ImVector_Destruct(void* vector); // Destruct an ImVector<> (of any type). Important: Frees the vector memory but does not call destructors on contained objects (if they have them)",
		},
		FunctionComments: map[string]string{
			"ImFontGlyphRangesBuilder::BuildRanges": "(ImVector_Construct()/ImVector_Destruct() can be used to safely construct out_ranges)",
		},
	}
}

// Default builds the fixed, ordered pass list. Grounded line-for-line on
// convert_header's own modifier call sequence: include hygiene, comment
// attachment, body removal, struct/function removal, loose-function
// prefixing, manual helpers and their comment, operator and heap-ctor/dtor
// removal, reference
// conversion, conditional/namespace/nested-class/template flattening,
// by-value and internal-member marking, class-function flattening,
// nested-typedef/static-field removal, default-argument generation,
// disambiguation, API-macro/define renaming, forward declarations, extern
// "C" wrapping, empty-conditional/blank-line cleanup, comment alignment,
// and metadata exclusions.
func Default(opts Options) []Step {
	return []Step{
		{"add_includes", func(r *dom.HeaderFileSet) error {
			return modifier.AddIncludes(r, []string{"<stdbool.h>"})
		}},
		{"remove_includes", func(r *dom.HeaderFileSet) error {
			return modifier.RemoveIncludes(r, []string{"<float.h>", "<stdarg.h>", "<stddef.h>", "<string.h>"})
		}},
		{"attach_preceding_comments", modifier.AttachPrecedingComments},
		{"remove_function_bodies", modifier.RemoveFunctionBodies},
		{"remove_structs", func(r *dom.HeaderFileSet) error {
			return modifier.RemoveStructs(r, []string{
				"ImGuiOnceUponAFrame",
				"ImNewDummy",
				"ImNewWrapper",
				"ImBitArray",
				"ImBitVector",
				"ImSpan",
				"ImSpanAllocator",
				"ImPool",
				"ImChunkStream",
			})
		}},
		{"remove_all_functions_from_classes", func(r *dom.HeaderFileSet) error {
			return modifier.RemoveAllFunctionsFromClasses(r, []string{"ImVector"})
		}},
		{"remove_functions:Value", func(r *dom.HeaderFileSet) error {
			return modifier.RemoveFunctions(r, []string{"ImGui::Value"})
		}},
		{"remove_functions:templated_internal", func(r *dom.HeaderFileSet) error {
			return modifier.RemoveFunctions(r, []string{
				"ImGui::ScaleRatioFromValueT",
				"ImGui::ScaleValueFromRatioT",
				"ImGui::DragBehaviorT",
				"ImGui::SliderBehaviorT",
				"ImGui::RoundScalarWithFormatT",
				"ImGui::CheckboxFlagsT",
			})
		}},
		{"add_prefix_to_loose_functions", func(r *dom.HeaderFileSet) error {
			return modifier.AddPrefixToLooseFunctions(r, "c")
		}},
		{"add_manual_helper_functions", func(r *dom.HeaderFileSet) error {
			return modifier.AddManualHelperFunctions(r, opts.ManualHelperSignatures)
		}},
		{"add_function_comment", func(r *dom.HeaderFileSet) error {
			for name, text := range opts.FunctionComments {
				if err := modifier.AddFunctionComment(r, name, text); err != nil {
					return err
				}
			}
			return nil
		}},
		{"remove_operators", modifier.RemoveOperators},
		{"remove_heap_constructors_and_destructors", modifier.RemoveHeapConstructorsAndDestructors},
		{"convert_references_to_pointers", modifier.ConvertReferencesToPointers},
		{"flatten_conditionals:IM_VEC2_CLASS_EXTRA", func(r *dom.HeaderFileSet) error {
			return modifier.FlattenConditionals(r, "IM_VEC2_CLASS_EXTRA", false)
		}},
		{"flatten_conditionals:IM_VEC4_CLASS_EXTRA", func(r *dom.HeaderFileSet) error {
			return modifier.FlattenConditionals(r, "IM_VEC4_CLASS_EXTRA", false)
		}},
		{"flatten_namespaces", func(r *dom.HeaderFileSet) error {
			return modifier.FlattenNamespaces(r, map[string]string{"ImGui": "ImGui_"})
		}},
		{"flatten_nested_classes", modifier.FlattenNestedClasses},
		{"flatten_templates", func(r *dom.HeaderFileSet) error {
			// Key matches Type.ToCString's canonical printed form exactly
			// (a space always precedes pointer stars) — spec.md's prose
			// "const ImFont**" is cosmetic, not the literal match string.
			return modifier.FlattenTemplates(r, map[string]string{"const ImFont **": "ImFont* const*"})
		}},
		{"mark_by_value_structs", func(r *dom.HeaderFileSet) error {
			return modifier.MarkByValueStructs(r, []string{"ImVec2", "ImVec4", "ImColor"})
		}},
		{"mark_internal_members", modifier.MarkInternalMembers},
		{"flatten_class_functions", modifier.FlattenClassFunctions},
		{"remove_nested_typedefs", modifier.RemoveNestedTypedefs},
		{"remove_static_fields", modifier.RemoveStaticFields},
		{"generate_default_argument_functions", modifier.GenerateDefaultArgumentFunctions},
		{"disambiguate_functions", func(r *dom.HeaderFileSet) error {
			return modifier.DisambiguateFunctions(r,
				map[string]string{
					"const char*":  "Str",
					"char*":        "Str",
					"unsigned int": "Uint",
					"ImGuiID":      "ID",
				},
				[]string{
					"cImFileOpen",
					"cImFileClose",
					"cImFileGetSize",
					"cImFileRead",
					"cImFileWrite",
				},
			)
		}},
		{"make_all_functions_use_imgui_api", modifier.MakeAllFunctionsUseImguiAPI},
		{"rename_defines", func(r *dom.HeaderFileSet) error {
			return modifier.RenameDefines(r, map[string]string{"IMGUI_API": "CIMGUI_API"})
		}},
		{"forward_declare_structs", modifier.ForwardDeclareStructs},
		{"wrap_with_extern_c", modifier.WrapWithExternC},
		{"remove_empty_conditionals", modifier.RemoveEmptyConditionals},
		{"merge_blank_lines", modifier.MergeBlankLines},
		{"remove_blank_lines", modifier.RemoveBlankLines},
		{"align_comments", modifier.AlignComments},
		{"exclude_defines_from_metadata", func(r *dom.HeaderFileSet) error {
			return modifier.ExcludeDefinesFromMetadata(r, []string{
				"IMGUI_IMPL_API",
				"IM_COL32_WHITE",
				"IM_COL32_BLACK",
				"IM_COL32_BLACK_TRANS",
				"ImDrawCallback_ResetRenderState",
			})
		}},
	}
}

// Run executes steps in order against root, logging each stage at debug
// level and stopping (wrapping the error with the failing step's name) on
// the first failure.
func Run(ctx context.Context, logger *slog.Logger, root *dom.HeaderFileSet, steps []Step) error {
	for _, step := range steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		logger.Debug("running modifier", "step", step.Name)
		if err := step.Run(root); err != nil {
			return fmt.Errorf("step %q: %w", step.Name, err)
		}
	}
	return nil
}
