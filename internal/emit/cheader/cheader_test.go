package cheader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/oxhq/dearbind/internal/dom"
)

func TestWriteRendersPragmaIncludesAndDecls(t *testing.T) {
	hf := &dom.HeaderFile{HasPragmaOnce: true}
	hf.AddInclude(&dom.Include{Literal: "<stdbool.h>"})
	fn := &dom.FunctionDeclaration{Name: "ImDrawList_AddLine", ReturnType: &dom.Type{PrimaryTypeName: "void"}}
	hf.AddDecl(fn)

	root := &dom.HeaderFileSet{}
	root.AddFile(hf)

	var buf bytes.Buffer
	if err := Write(&buf, root); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "#pragma once") {
		t.Errorf("expected pragma once, got %q", out)
	}
	if !strings.Contains(out, "#include <stdbool.h>") {
		t.Errorf("expected include line, got %q", out)
	}
	if !strings.Contains(out, "void ImDrawList_AddLine(void);") {
		t.Errorf("expected function declaration, got %q", out)
	}
}
