// Package ast defines the abstract syntax tree produced by pkgs/parser
// for the venom front-end, grounded on include/venom/ast.h in the
// original source.
//
// The source encodes the tree as a common VAST_Node header struct plus
// per-variant structs with a runtime type tag and VAST_CAST downcasting
// macros. This is re-architected as a closed Go sum type: a Node
// interface implemented by exactly the 24 variant structs below, with
// type switches standing in for the macro casts, the same split the
// Go standard library itself uses between go/ast's node interface and
// go/parser's constructors, which this package and pkgs/parser mirror.
package ast

import (
	"github.com/romainaugier/venom/pkgs/token"
	"github.com/romainaugier/venom/pkgs/types"
)

// Position locates a node in the source for diagnostics and debug
// printing; it is not itself part of the tree's ownership structure.
type Position struct {
	Line   int
	Column int
}

// Node is implemented by every AST variant. Ownership is
// structural: a Go value reachable only through its parent's fields is
// exclusively owned by that parent, and Go's garbage collector retires
// the "destroy walks the tree" contract the source implements by hand
// (see DESIGN.md, "Ownership & destruction").
type Node interface {
	astNode()
	At() Position
}

type Base struct{ Pos Position }

func (Base) astNode()       {}
func (b Base) At() Position { return b.Pos }

// Source is the AST root: the sequence of top-level declarations
// (Import, Class, Function, or any statement form) in source order.
type Source struct {
	Base
	Decls []Node
}

// Import models both import forms from the design
//   - `import NAME [as ALIAS]`            → Alias set or empty, Symbols nil.
//   - `from NAME import S [as A], ...`    → Symbols populated, Alias empty.
type Import struct {
	Base
	Name    string
	Alias   string
	Symbols []ImportSymbol
}

// ImportSymbol is one `S [as A]` entry of a `from NAME import ...`.
type ImportSymbol struct {
	Name  string
	Alias string
}

// Class is a `class NAME [(BASES)]: BODY` declaration. Attributes and
// Functions are populated by re-bucketing the parsed Body's statements;
// the intermediate Body is not retained. Attributes holds *Attribute
// nodes (from bare or annotated assignments to a plain name) and
// nested *Class declarations; Pass statements and bare-string
// docstrings are discarded during re-bucketing rather than kept.
type Class struct {
	Base
	Name       string
	Bases      []Node
	Decorators []*Decorator
	Attributes []Node
	Functions  []*Function
}

// Function is a `def NAME(PARAMS) [-> TYPE]: BODY` declaration.
// ReturnType is types.Unknown iff no `-> TYPE` annotation was given
// (the design invariant).
type Function struct {
	Base
	Name       string
	Decorators []*Decorator
	Params     []*Parameter
	ReturnType types.Type
	Body       *Body
}

// Body is the suite of statements following a colon-introduced block.
// Every composite statement's body is represented this way, never as a
// bare slice, so later passes can attach annotations uniformly
// (the design invariant).
type Body struct {
	Base
	Stmts []Node
}

// For represents both `for TARGET in ITER: BODY` (IsWhile=false) and
// `while COND: BODY` (IsWhile=true, Target=nil)
type For struct {
	Base
	IsWhile bool
	Target  Node // nil when IsWhile
	Cond    Node
	Body    *Body
}

// If represents `if COND: BODY`, with the elif/else chain lowered into
// ElseNode: absent (nil), another *If (an elif), or a *Body (the final
// else), right-leaning so a long elif chain nests rather than fans out.
type If struct {
	Base
	Cond     Node
	Body     *Body
	ElseNode Node // nil, *If, or *Body
}

// Return is `return [EXPR]`; Value is nil for a bare `return`.
type Return struct {
	Base
	Value Node
}

// Assignment covers both plain/augmented assignment and annotated
// assignment. Type is types.Unknown unless the statement was
// annotated (`x: T = ...`), in which case Op is always token.Assign
// (the design invariant: annotated assignments forbid augmented ops).
type Assignment struct {
	Base
	Target Node // Symbol, AttributeAccess, or Subscript
	Op     token.Operator
	Type   types.Type
	Value  Node
}

// UnOp is a unary prefix expression: `+ - ~ not` applied to Operand.
type UnOp struct {
	Base
	Op      token.Operator
	Operand Node
}

// BinOp is a binary expression at any precedence level (arithmetic,
// bitwise, shift, comparison, or logical and/or once lowered from the
// parser's boolop handling).
type BinOp struct {
	Base
	Op    token.Operator
	Left  Node
	Right Node
}

// TernOp is `Then if Cond else Else` (right-associative, the design).
type TernOp struct {
	Base
	Cond Node
	Then Node
	Else Node
}

// Decorator is a `@name` line; decorator arguments are an explicit
// non-goal and are rejected by the parser before a
// Decorator node is ever built.
type Decorator struct {
	Base
	Name string
}

// Attribute is a class-level field produced by re-bucketing a class
// body's bare/annotated assignments to a plain name
type Attribute struct {
	Base
	Name  string
	Type  types.Type
	Value Node // nil if the attribute has no initializer
}

// Symbol is a name reference (a bare identifier used as an
// expression); Type is always types.Unknown at parse time, refined
// only by the later (unimplemented) symbol-table pass.
type Symbol struct {
	Base
	Name string
	Type types.Type
}

// Parameter is one entry of a function's parameter list.
type Parameter struct {
	Base
	Name    string
	Type    types.Type
	Default Node // nil if no default
}

// Literal is every literal atom: numbers, strings, True/False/None,
// and the bracketed container literals. Which of Elements/Keys/Values
// is populated depends on Type:
//   - List, Tuple, Set: Elements.
//   - Dict: Keys and Values, parallel and equal length.
//   - Int, Float, String, Bool, NoneType: Value holds the literal text
//     (for Int/Float, the exact source digits; for String, the text
//     between the quotes, with escape sequences left as written) and
//     Elements/Keys/Values are nil.
type Literal struct {
	Base
	Type        types.Type
	LiteralKind token.LiteralKind
	Value       string
	Elements    []Node
	Keys        []Node
	Values      []Node
}

// Kwargs holds a call's keyword arguments as two parallel sequences;
// `Names` and `Values` are always equal length.
type Kwargs struct {
	Names  []string
	Values []Node
}

// FCall is `CALLABLE(ARGS)`, postfix on any primary expression.
type FCall struct {
	Base
	Callable Node
	Args     []Node
	Kwargs   Kwargs
}

// AttributeAccess is `OBJECT.NAME`, postfix on any primary expression.
type AttributeAccess struct {
	Base
	Object Node
	Name   string
}

// Subscript is `OBJECT[INDEX]`; INDEX is either a plain expression or
// a *Slice (the slice-vs-expression disambiguation).
type Subscript struct {
	Base
	Object Node
	Index  Node
}

// Slice is `start:stop:step` inside a subscript; any part may be nil.
type Slice struct {
	Base
	Start Node
	Stop  Node
	Step  Node
}

// Pass, Break, and Continue carry no payload beyond their position.
type Pass struct{ Base }
type Break struct{ Base }
type Continue struct{ Base }

// New constructs an empty AST container, corresponding to the
// original source's ast_new(). pkgs/parser.Parse returns one with
// Root or Error filled in.
func New() *AST { return &AST{} }

// AST is the top-level result of parsing: either Root is populated, or
// Error holds the single "first error wins" diagnostic
type AST struct {
	Root  *Source
	Error string
}

// Destroy is a documented no-op: the source's ast_destroy walks the
// tree freeing every owned allocation by hand, a responsibility Go's
// garbage collector already discharges once an AST value becomes
// unreachable. Kept as a named call so call sites mirror the original
// lifecycle (`ast_new` / `ast_from_tokens` / `ast_destroy`) even though
// there is nothing left for it to do.
func (a *AST) Destroy() {}

// SourceEntryPoint returns the first top-level declaration that is
// neither a *Class nor a *Function — conventionally the first
// "runnable" statement in a script — or nil if every top-level
// declaration is a class or function.
func SourceEntryPoint(src *Source) Node {
	if src == nil {
		return nil
	}
	for _, decl := range src.Decls {
		switch decl.(type) {
		case *Class, *Function:
			continue
		default:
			return decl
		}
	}
	return nil
}
