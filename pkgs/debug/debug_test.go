package debug

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/romainaugier/venom/pkgs/ast"
	"github.com/romainaugier/venom/pkgs/lexer"
	"github.com/romainaugier/venom/pkgs/parser"
)

func mustParse(t *testing.T, src string) *ast.Source {
	t.Helper()
	tokens, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("lex(%q): unexpected error: %v", src, err)
	}
	result := parser.Parse(tokens, src)
	if result.Error != "" {
		t.Fatalf("parse(%q): unexpected error: %s", src, result.Error)
	}
	return result.Root
}

func TestJSONRendersFieldsGetCanQuery(t *testing.T) {
	root := mustParse(t, "x = 1\n")
	doc, err := JSON(root)
	if err != nil {
		t.Fatalf("JSON: unexpected error: %v", err)
	}
	if got := Get(doc, "decls.0.type").String(); got != "Assignment" {
		t.Errorf(`decls.0.type = %q, want "Assignment"`, got)
	}
	if got := Get(doc, "decls.0.target.type").String(); got != "Symbol" {
		t.Errorf(`decls.0.target.type = %q, want "Symbol"`, got)
	}
	if got := Get(doc, "decls.0.value.value").String(); got != "1" {
		t.Errorf(`decls.0.value.value = %q, want "1"`, got)
	}
}

func TestJSONNilNodeRendersNull(t *testing.T) {
	doc, err := JSON(nil)
	if err != nil {
		t.Fatalf("JSON(nil): unexpected error: %v", err)
	}
	if string(doc) != "null" {
		t.Errorf("JSON(nil) = %q, want \"null\"", doc)
	}
}

func TestTreeSnapshotForAFunctionDeclaration(t *testing.T) {
	root := mustParse(t, "def f(a: int, b: int = 2) -> int:\n    return a + b\n")
	var buf bytes.Buffer
	Tree(&buf, root)
	snaps.MatchSnapshot(t, buf.String())
}

func TestTreeSnapshotForClassRebucketing(t *testing.T) {
	root := mustParse(t, "class A(B):\n    n: int = 0\n    def m(self):\n        pass\n")
	var buf bytes.Buffer
	Tree(&buf, root)
	snaps.MatchSnapshot(t, buf.String())
}
