// Package debug renders tokens, AST nodes, and symbol-table scopes
// for developer inspection: a human-readable indented tree (grounded
// on the v_lexer_token_debug/v_symtable_debug family in
// original_source/src/symtable.c) and a JSON document built
// incrementally with tidwall/sjson, read back with tidwall/gjson in
// this package's own tests.
package debug

import (
	"fmt"
	"io"
	"strings"

	"github.com/romainaugier/venom/pkgs/ast"
	"github.com/romainaugier/venom/pkgs/symtable"
	"github.com/romainaugier/venom/pkgs/token"
)

// Tokens writes one line per token, in order, the shape
// `venom lex` reports to a user.
func Tokens(w io.Writer, tokens []token.Token) {
	for _, t := range tokens {
		fmt.Fprintln(w, t.String())
	}
}

// Tree writes an indented, human-readable dump of an AST node and
// its children.
func Tree(w io.Writer, n ast.Node) {
	writeTree(w, n, 0)
}

func indent(w io.Writer, depth int) {
	fmt.Fprint(w, strings.Repeat("  ", depth))
}

func writeTree(w io.Writer, n ast.Node, depth int) {
	if n == nil {
		indent(w, depth)
		fmt.Fprintln(w, "<nil>")
		return
	}
	indent(w, depth)
	switch v := n.(type) {
	case *ast.Source:
		fmt.Fprintln(w, "Source")
		for _, d := range v.Decls {
			writeTree(w, d, depth+1)
		}
	case *ast.Import:
		fmt.Fprintf(w, "Import name=%q alias=%q symbols=%d\n", v.Name, v.Alias, len(v.Symbols))
	case *ast.Class:
		fmt.Fprintf(w, "Class name=%q bases=%d attrs=%d funcs=%d\n", v.Name, len(v.Bases), len(v.Attributes), len(v.Functions))
		for _, a := range v.Attributes {
			writeTree(w, a, depth+1)
		}
		for _, f := range v.Functions {
			writeTree(w, f, depth+1)
		}
	case *ast.Function:
		fmt.Fprintf(w, "Function name=%q params=%d returns=%s\n", v.Name, len(v.Params), v.ReturnType)
		writeTree(w, v.Body, depth+1)
	case *ast.Body:
		fmt.Fprintln(w, "Body")
		for _, s := range v.Stmts {
			writeTree(w, s, depth+1)
		}
	case *ast.For:
		if v.IsWhile {
			fmt.Fprintln(w, "While")
			writeTree(w, v.Cond, depth+1)
		} else {
			fmt.Fprintln(w, "For")
			writeTree(w, v.Target, depth+1)
			writeTree(w, v.Cond, depth+1)
		}
		writeTree(w, v.Body, depth+1)
	case *ast.If:
		fmt.Fprintln(w, "If")
		writeTree(w, v.Cond, depth+1)
		writeTree(w, v.Body, depth+1)
		if v.ElseNode != nil {
			writeTree(w, v.ElseNode, depth+1)
		}
	case *ast.Return:
		fmt.Fprintln(w, "Return")
		if v.Value != nil {
			writeTree(w, v.Value, depth+1)
		}
	case *ast.Assignment:
		fmt.Fprintf(w, "Assignment op=%s type=%s\n", v.Op, v.Type)
		writeTree(w, v.Target, depth+1)
		writeTree(w, v.Value, depth+1)
	case *ast.UnOp:
		fmt.Fprintf(w, "UnOp op=%s\n", v.Op)
		writeTree(w, v.Operand, depth+1)
	case *ast.BinOp:
		fmt.Fprintf(w, "BinOp op=%s\n", v.Op)
		writeTree(w, v.Left, depth+1)
		writeTree(w, v.Right, depth+1)
	case *ast.TernOp:
		fmt.Fprintln(w, "TernOp")
		writeTree(w, v.Cond, depth+1)
		writeTree(w, v.Then, depth+1)
		writeTree(w, v.Else, depth+1)
	case *ast.Decorator:
		fmt.Fprintf(w, "Decorator name=%q\n", v.Name)
	case *ast.Attribute:
		fmt.Fprintf(w, "Attribute name=%q type=%s\n", v.Name, v.Type)
		if v.Value != nil {
			writeTree(w, v.Value, depth+1)
		}
	case *ast.Symbol:
		fmt.Fprintf(w, "Symbol name=%q\n", v.Name)
	case *ast.Parameter:
		fmt.Fprintf(w, "Parameter name=%q type=%s\n", v.Name, v.Type)
		if v.Default != nil {
			writeTree(w, v.Default, depth+1)
		}
	case *ast.Literal:
		fmt.Fprintf(w, "Literal type=%s kind=%s value=%q\n", v.Type, v.LiteralKind, v.Value)
		for _, e := range v.Elements {
			writeTree(w, e, depth+1)
		}
		for i := range v.Keys {
			writeTree(w, v.Keys[i], depth+1)
			writeTree(w, v.Values[i], depth+1)
		}
	case *ast.FCall:
		fmt.Fprintln(w, "FCall")
		writeTree(w, v.Callable, depth+1)
		for _, a := range v.Args {
			writeTree(w, a, depth+1)
		}
		for i, name := range v.Kwargs.Names {
			indent(w, depth+1)
			fmt.Fprintf(w, "kwarg %s=\n", name)
			writeTree(w, v.Kwargs.Values[i], depth+2)
		}
	case *ast.AttributeAccess:
		fmt.Fprintf(w, "AttributeAccess name=%q\n", v.Name)
		writeTree(w, v.Object, depth+1)
	case *ast.Subscript:
		fmt.Fprintln(w, "Subscript")
		writeTree(w, v.Object, depth+1)
		writeTree(w, v.Index, depth+1)
	case *ast.Slice:
		fmt.Fprintln(w, "Slice")
		if v.Start != nil {
			writeTree(w, v.Start, depth+1)
		}
		if v.Stop != nil {
			writeTree(w, v.Stop, depth+1)
		}
		if v.Step != nil {
			writeTree(w, v.Step, depth+1)
		}
	case *ast.Pass:
		fmt.Fprintln(w, "Pass")
	case *ast.Break:
		fmt.Fprintln(w, "Break")
	case *ast.Continue:
		fmt.Fprintln(w, "Continue")
	default:
		fmt.Fprintf(w, "%T\n", v)
	}
}

// ScopeTree writes an indented dump of a symbol-table scope and its
// children, for use once pkgs/symtable.Collect/Resolve are implemented.
func ScopeTree(w io.Writer, s *symtable.Scope) {
	writeScopeTree(w, s, 0)
}

func writeScopeTree(w io.Writer, s *symtable.Scope, depth int) {
	if s == nil {
		return
	}
	indent(w, depth)
	fmt.Fprintf(w, "Scope(%s) symbols=%d\n", s.Kind, len(s.Symbols))
	for name, sym := range s.Symbols {
		indent(w, depth+1)
		fmt.Fprintf(w, "%s: %s\n", name, sym.Kind)
	}
	for _, child := range s.Children {
		writeScopeTree(w, child, depth+1)
	}
}
