package erase

import (
	"testing"

	"github.com/zfben/ts-blank-space/internal/ast"
	"github.com/zfben/ts-blank-space/internal/blank"
	"github.com/zfben/ts-blank-space/internal/logger"
	"github.com/zfben/ts-blank-space/internal/tsparser"
)

func runErase(t *testing.T, src string) (string, []ast.Kind) {
	t.Helper()
	source := logger.Source{FileName: "<test>", Contents: src}
	root, err := tsparser.Parse(source)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	out := blank.New(src)
	var errs []ast.Kind
	ctx := New(source, out, func(n *ast.Node) { errs = append(errs, n.Kind) })
	ctx.Run(root)
	return out.String(), errs
}

func expectPrinted(t *testing.T, src string, want string) {
	t.Helper()
	got, _ := runErase(t, src)
	if got != want {
		t.Fatalf("erase(%q):\n got:  %q\n want: %q", src, got, want)
	}
	if len(got) != len(src) {
		t.Fatalf("erase(%q): length changed, got %d want %d", src, len(got), len(src))
	}
}

func TestEraseTypeAlias(t *testing.T) {
	expectPrinted(t, "type T = number", "               ")
}

func TestEraseVariableType(t *testing.T) {
	expectPrinted(t, "let a: T", "let a   ")
}

func TestErasePropertySignatureInInterface(t *testing.T) {
	expectPrinted(t, "interface I { a: T }", "                    ")
}

func TestEraseGenericTypeArgsOnCall(t *testing.T) {
	expectPrinted(t, "f<T>()", "f   ()")
}

func TestNonNullAssertionIsSingleByte(t *testing.T) {
	got, _ := runErase(t, "a!.b")
	if got != "a .b" {
		t.Fatalf("got %q", got)
	}
}

func TestOnErrorFiresForNamespaceDeclaration(t *testing.T) {
	_, errs := runErase(t, "namespace N { let a = 1 }")
	if len(errs) != 1 || errs[0] != ast.KindModuleDeclaration {
		t.Fatalf("got %v, want one KindModuleDeclaration error", errs)
	}
}

func TestDeclareNamespaceIsErasedSilently(t *testing.T) {
	got, errs := runErase(t, "declare namespace N {}")
	if len(errs) != 0 {
		t.Fatalf("got errors %v, want none", errs)
	}
	for _, c := range got {
		if c != ' ' {
			t.Fatalf("got %q, want all-blank", got)
		}
	}
}

func TestExportTypeOnlyStatementIsBlanked(t *testing.T) {
	got, _ := runErase(t, "export type T = number")
	for _, c := range got {
		if c != ' ' {
			t.Fatalf("got %q, want all-blank", got)
		}
	}
}

func TestBareLiteralStatementCountsAsEmittedJS(t *testing.T) {
	for _, src := range []string{"1", `"use strict"`, "true", "null", "`x`"} {
		got, errs := runErase(t, src)
		if got != src {
			t.Fatalf("erase(%q) = %q, want unchanged", src, got)
		}
		if len(errs) != 0 {
			t.Fatalf("erase(%q): unexpected errors %v", src, errs)
		}
	}
}

func TestBareLiteralStatementTriggersASIGuard(t *testing.T) {
	// A bare numeric-literal statement followed by a fully-erased
	// statement on the next line must still get the semicolon-preserving
	// blank form, the same as a VariableStatement would.
	got, _ := runErase(t, "1\ntype T = number")
	if got[2] != ';' {
		t.Fatalf("erase(%q) = %q, want ';' at byte 2", "1\ntype T = number", got)
	}
}
