package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/romainaugier/venom/pkgs/ast"
	"github.com/romainaugier/venom/pkgs/lexer"
	"github.com/romainaugier/venom/pkgs/token"
	"github.com/romainaugier/venom/pkgs/types"
)

// shapeOpts ignores source position on every node: the concrete
// scenarios below assert tree shape, not where in the source each
// node started.
var shapeOpts = cmp.Options{
	cmpopts.IgnoreFields(ast.Base{}, "Pos"),
}

func mustParse(t *testing.T, src string) *ast.Source {
	t.Helper()
	tokens, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("lex(%q): unexpected error: %v", src, err)
	}
	result := Parse(tokens, src)
	if result.Error != "" {
		t.Fatalf("parse(%q): unexpected error: %s", src, result.Error)
	}
	return result.Root
}

func mustFailParse(t *testing.T, src string) string {
	t.Helper()
	tokens, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("lex(%q): unexpected error: %v", src, err)
	}
	result := Parse(tokens, src)
	if result.Error == "" {
		t.Fatalf("parse(%q): expected an error, got a clean tree", src)
	}
	return result.Error
}

// Scenario 1: x = 1
func TestConcreteScenarioSimpleAssignment(t *testing.T) {
	got := mustParse(t, "x = 1\n")
	want := &ast.Source{
		Decls: []ast.Node{
			&ast.Assignment{
				Target: &ast.Symbol{Name: "x"},
				Op:     token.Assign,
				Type:   types.Unknown,
				Value:  &ast.Literal{Type: types.Int, LiteralKind: token.LiteralInteger, Value: "1"},
			},
		},
	}
	if diff := cmp.Diff(want, got, shapeOpts); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// Scenario 2: a function with a typed parameter list and return type.
func TestConcreteScenarioFunctionDeclaration(t *testing.T) {
	src := "def f(a: int, b: int = 2) -> int:\n    return a + b\n"
	got := mustParse(t, src)
	want := &ast.Source{
		Decls: []ast.Node{
			&ast.Function{
				Name:       "f",
				ReturnType: types.Int,
				Params: []*ast.Parameter{
					{Name: "a", Type: types.Int},
					{Name: "b", Type: types.Int, Default: &ast.Literal{Type: types.Int, LiteralKind: token.LiteralInteger, Value: "2"}},
				},
				Body: &ast.Body{
					Stmts: []ast.Node{
						&ast.Return{
							Value: &ast.BinOp{
								Op:    token.Addition,
								Left:  &ast.Symbol{Name: "a"},
								Right: &ast.Symbol{Name: "b"},
							},
						},
					},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got, shapeOpts); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// Scenario 3: right-associativity of **.
func TestConcreteScenarioPowerIsRightAssociative(t *testing.T) {
	got := mustParse(t, "x = 2 ** 3 ** 2\n")
	assign, ok := got.Decls[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("decl[0] is %T, want *ast.Assignment", got.Decls[0])
	}
	want := &ast.BinOp{
		Op:   token.Exponentiation,
		Left: &ast.Literal{Type: types.Int, LiteralKind: token.LiteralInteger, Value: "2"},
		Right: &ast.BinOp{
			Op:    token.Exponentiation,
			Left:  &ast.Literal{Type: types.Int, LiteralKind: token.LiteralInteger, Value: "3"},
			Right: &ast.Literal{Type: types.Int, LiteralKind: token.LiteralInteger, Value: "2"},
		},
	}
	if diff := cmp.Diff(want, assign.Value, shapeOpts); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// Scenario 4: class-body re-bucketing into attributes and functions.
func TestConcreteScenarioClassBodyRebucketing(t *testing.T) {
	src := "class A(B):\n    n: int = 0\n    def m(self):\n        pass\n"
	got := mustParse(t, src)
	want := &ast.Source{
		Decls: []ast.Node{
			&ast.Class{
				Name:  "A",
				Bases: []ast.Node{&ast.Symbol{Name: "B"}},
				Attributes: []ast.Node{
					&ast.Attribute{Name: "n", Type: types.Int, Value: &ast.Literal{Type: types.Int, LiteralKind: token.LiteralInteger, Value: "0"}},
				},
				Functions: []*ast.Function{
					{
						Name:       "m",
						ReturnType: types.Unknown,
						Params:     []*ast.Parameter{{Name: "self", Type: types.Unknown}},
						Body:       &ast.Body{Stmts: []ast.Node{&ast.Pass{}}},
					},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got, shapeOpts); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// Scenario 5: positional and keyword call arguments.
func TestConcreteScenarioCallWithKwargs(t *testing.T) {
	got := mustParse(t, "f(1, x=2)\n")
	want := &ast.Source{
		Decls: []ast.Node{
			&ast.FCall{
				Callable: &ast.Symbol{Name: "f"},
				Args:     []ast.Node{&ast.Literal{Type: types.Int, LiteralKind: token.LiteralInteger, Value: "1"}},
				Kwargs: ast.Kwargs{
					Names:  []string{"x"},
					Values: []ast.Node{&ast.Literal{Type: types.Int, LiteralKind: token.LiteralInteger, Value: "2"}},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got, shapeOpts); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// Scenario 6: chained comparisons are rejected with a named error.
func TestConcreteScenarioChainedComparisonRejected(t *testing.T) {
	msg := mustFailParse(t, "1 < 2 < 3\n")
	if !strings.Contains(msg, "chained comparisons") && !strings.Contains(strings.ToLower(msg), "chained comparisons") {
		t.Errorf("error %q does not mention chained comparisons", msg)
	}
}

// Scenario 7 (bad indentation) belongs to the lexer and is covered in
// pkgs/lexer; lexing fails before this package ever sees a token.

func TestIfElifElseLowersToRightLeaningChain(t *testing.T) {
	src := "if a:\n    pass\nelif b:\n    pass\nelse:\n    pass\n"
	got := mustParse(t, src)
	want := &ast.Source{
		Decls: []ast.Node{
			&ast.If{
				Cond: &ast.Symbol{Name: "a"},
				Body: &ast.Body{Stmts: []ast.Node{&ast.Pass{}}},
				ElseNode: &ast.If{
					Cond:     &ast.Symbol{Name: "b"},
					Body:     &ast.Body{Stmts: []ast.Node{&ast.Pass{}}},
					ElseNode: &ast.Body{Stmts: []ast.Node{&ast.Pass{}}},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got, shapeOpts); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDictVsSetVsEmptyDict(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *ast.Literal
	}{
		{
			name: "empty braces is an empty dict",
			src:  "x = {}\n",
			want: &ast.Literal{Type: types.Dict},
		},
		{
			name: "single element with no colon is a set",
			src:  "x = {1}\n",
			want: &ast.Literal{Type: types.Set, Elements: []ast.Node{
				&ast.Literal{Type: types.Int, LiteralKind: token.LiteralInteger, Value: "1"},
			}},
		},
		{
			name: "colon after the first element is a dict",
			src:  "x = {1: 2}\n",
			want: &ast.Literal{
				Type: types.Dict,
				Keys: []ast.Node{&ast.Literal{Type: types.Int, LiteralKind: token.LiteralInteger, Value: "1"}},
				Values: []ast.Node{
					&ast.Literal{Type: types.Int, LiteralKind: token.LiteralInteger, Value: "2"},
				},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mustParse(t, tc.src)
			assign := got.Decls[0].(*ast.Assignment)
			if diff := cmp.Diff(tc.want, assign.Value, shapeOpts); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOperatorPrecedenceLadder(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *ast.BinOp
	}{
		{
			// Multiplicative binds tighter than additive.
			name: "A + B * C parses as A + (B * C)",
			src:  "x = a + b * c\n",
			want: &ast.BinOp{
				Op:   token.Addition,
				Left: &ast.Symbol{Name: "a"},
				Right: &ast.BinOp{
					Op:    token.Multiplication,
					Left:  &ast.Symbol{Name: "b"},
					Right: &ast.Symbol{Name: "c"},
				},
			},
		},
		{
			// Comparison binds looser than bitwise-or.
			name: "A | B < C | D parses as (A | B) < (C | D)",
			src:  "x = a | b < c | d\n",
			want: &ast.BinOp{
				Op:   token.ComparatorLessThan,
				Left: &ast.BinOp{Op: token.BitwiseOr, Left: &ast.Symbol{Name: "a"}, Right: &ast.Symbol{Name: "b"}},
				Right: &ast.BinOp{
					Op: token.BitwiseOr, Left: &ast.Symbol{Name: "c"}, Right: &ast.Symbol{Name: "d"},
				},
			},
		},
		{
			// Left-associativity of additive.
			name: "1 - 2 - 3 parses as (1 - 2) - 3",
			src:  "x = 1 - 2 - 3\n",
			want: &ast.BinOp{
				Op: token.Subtraction,
				Left: &ast.BinOp{
					Op:    token.Subtraction,
					Left:  &ast.Literal{Type: types.Int, LiteralKind: token.LiteralInteger, Value: "1"},
					Right: &ast.Literal{Type: types.Int, LiteralKind: token.LiteralInteger, Value: "2"},
				},
				Right: &ast.Literal{Type: types.Int, LiteralKind: token.LiteralInteger, Value: "3"},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mustParse(t, tc.src)
			assign := got.Decls[0].(*ast.Assignment)
			if diff := cmp.Diff(tc.want, assign.Value, shapeOpts); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTupleVsParenthesizedExpression(t *testing.T) {
	got := mustParse(t, "x = (1)\n")
	assign := got.Decls[0].(*ast.Assignment)
	if _, isTuple := assign.Value.(*ast.Literal); !isTuple || assign.Value.(*ast.Literal).Type != types.Int {
		t.Fatalf("(1) should unwrap to the bare literal, got %#v", assign.Value)
	}

	got = mustParse(t, "x = (1,)\n")
	assign = got.Decls[0].(*ast.Assignment)
	lit, ok := assign.Value.(*ast.Literal)
	if !ok || lit.Type != types.Tuple || len(lit.Elements) != 1 {
		t.Fatalf("(1,) should build a one-element tuple, got %#v", assign.Value)
	}

	got = mustParse(t, "x = ()\n")
	assign = got.Decls[0].(*ast.Assignment)
	lit, ok = assign.Value.(*ast.Literal)
	if !ok || lit.Type != types.Tuple || len(lit.Elements) != 0 {
		t.Fatalf("() should build the empty tuple, got %#v", assign.Value)
	}
}

func TestSliceVsSubscriptExpression(t *testing.T) {
	got := mustParse(t, "x = a[1]\n")
	assign := got.Decls[0].(*ast.Assignment)
	sub, ok := assign.Value.(*ast.Subscript)
	if !ok {
		t.Fatalf("a[1] should build a Subscript, got %#v", assign.Value)
	}
	if _, isSlice := sub.Index.(*ast.Slice); isSlice {
		t.Fatalf("a[1] should not build a Slice index")
	}

	got = mustParse(t, "x = a[1:2:3]\n")
	assign = got.Decls[0].(*ast.Assignment)
	sub, ok = assign.Value.(*ast.Subscript)
	if !ok {
		t.Fatalf("a[1:2:3] should build a Subscript, got %#v", assign.Value)
	}
	slice, ok := sub.Index.(*ast.Slice)
	if !ok || slice.Start == nil || slice.Stop == nil || slice.Step == nil {
		t.Fatalf("a[1:2:3] should build a fully populated Slice, got %#v", sub.Index)
	}
}

func TestKeywordArgumentOrderingEnforced(t *testing.T) {
	msg := mustFailParse(t, "f(x=1, 2)\n")
	if !strings.Contains(msg, "positional argument cannot follow a keyword argument") {
		t.Errorf("error %q does not mention positional-after-keyword", msg)
	}
}

func TestNonDefaultParameterAfterDefaultRejected(t *testing.T) {
	msg := mustFailParse(t, "def f(a=1, b):\n    pass\n")
	if !strings.Contains(msg, "non-default parameter cannot follow a default parameter") {
		t.Errorf("error %q does not mention the non-default-after-default rule", msg)
	}
}

func TestNonGoalsProduceNamedErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"with statement", "with a:\n    pass\n", "'with' statements"},
		{"try statement", "try:\n    pass\n", "'try' statements"},
		{"lambda expression", "x = lambda: 1\n", "lambda expressions"},
		{"star import", "from a import *\n", "star imports"},
		{"variadic parameters", "def f(*args):\n    pass\n", "variadic parameters"},
		{"statement separator", "x = 1; y = 2\n", "multiple statements on one line"},
		{"generic annotation", "def f(a: list[int]):\n    pass\n", "generic type annotations"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := mustFailParse(t, tc.src)
			if !strings.Contains(msg, tc.want) {
				t.Errorf("error %q does not mention %q", msg, tc.want)
			}
		})
	}
}
