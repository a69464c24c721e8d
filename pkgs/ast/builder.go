package ast

import (
	"github.com/romainaugier/venom/pkgs/token"
	"github.com/romainaugier/venom/pkgs/types"
)

// The constructors below are thin, position-carrying node builders:
// small enough that pkgs/parser and tests can build literal trees
// without repeating the Base{Pos} boilerplate at every call site.

func at(line, col int) Base { return Base{Pos: Position{Line: line, Column: col}} }

// NewSymbol builds a Symbol reference node.
func NewSymbol(name string, line, col int) *Symbol {
	return &Symbol{Base: at(line, col), Name: name, Type: types.Unknown}
}

// NewIntLiteral builds an Integer literal from its exact source digits.
func NewIntLiteral(digits string, line, col int) *Literal {
	return &Literal{Base: at(line, col), Type: types.Int, LiteralKind: token.LiteralInteger, Value: digits}
}

// NewFloatLiteral builds a Float literal from its exact source digits.
func NewFloatLiteral(digits string, line, col int) *Literal {
	return &Literal{Base: at(line, col), Type: types.Float, LiteralKind: token.LiteralFloat, Value: digits}
}

// NewStringLiteral builds a String-family literal, kind selected by
// whichever prefix the lexer consumed.
func NewStringLiteral(value string, kind token.LiteralKind, line, col int) *Literal {
	typ := types.String
	if kind == token.LiteralBytes {
		typ = types.Bytes
	}
	return &Literal{Base: at(line, col), Type: typ, LiteralKind: kind, Value: value}
}

// NewBoolLiteral builds a True/False literal.
func NewBoolLiteral(value bool, line, col int) *Literal {
	v := "False"
	if value {
		v = "True"
	}
	return &Literal{Base: at(line, col), Type: types.Bool, Value: v}
}

// NewNoneLiteral builds the `None` literal.
func NewNoneLiteral(line, col int) *Literal {
	return &Literal{Base: at(line, col), Type: types.NoneType, Value: "None"}
}

// NewListLiteral builds a `[...]` container literal.
func NewListLiteral(elements []Node, line, col int) *Literal {
	return &Literal{Base: at(line, col), Type: types.List, Elements: elements}
}

// NewTupleLiteral builds a `(...)` container literal.
func NewTupleLiteral(elements []Node, line, col int) *Literal {
	return &Literal{Base: at(line, col), Type: types.Tuple, Elements: elements}
}

// NewSetLiteral builds a `{...}` set literal (non-empty, no colon seen).
func NewSetLiteral(elements []Node, line, col int) *Literal {
	return &Literal{Base: at(line, col), Type: types.Set, Elements: elements}
}

// NewDictLiteral builds a `{k: v, ...}` dict literal; len(keys) must
// equal len(values), enforced by the parser.
func NewDictLiteral(keys, values []Node, line, col int) *Literal {
	return &Literal{Base: at(line, col), Type: types.Dict, Keys: keys, Values: values}
}

// NewBinOp builds a binary expression node.
func NewBinOp(op token.Operator, left, right Node, line, col int) *BinOp {
	return &BinOp{Base: at(line, col), Op: op, Left: left, Right: right}
}

// NewUnOp builds a unary prefix expression node.
func NewUnOp(op token.Operator, operand Node, line, col int) *UnOp {
	return &UnOp{Base: at(line, col), Op: op, Operand: operand}
}

// NewTernOp builds a `then if cond else els` conditional expression.
func NewTernOp(cond, then, els Node, line, col int) *TernOp {
	return &TernOp{Base: at(line, col), Cond: cond, Then: then, Else: els}
}

// NewDecorator builds a `@name` decorator node.
func NewDecorator(name string, line, col int) *Decorator {
	return &Decorator{Base: at(line, col), Name: name}
}

// NewFCall builds a `callable(args, kwargs)` call node.
func NewFCall(callable Node, args []Node, kwargs Kwargs, line, col int) *FCall {
	return &FCall{Base: at(line, col), Callable: callable, Args: args, Kwargs: kwargs}
}

// NewAttributeAccess builds an `object.name` access node.
func NewAttributeAccess(object Node, name string, line, col int) *AttributeAccess {
	return &AttributeAccess{Base: at(line, col), Object: object, Name: name}
}

// NewSubscript builds an `object[index]` node; index may be a *Slice.
func NewSubscript(object, index Node, line, col int) *Subscript {
	return &Subscript{Base: at(line, col), Object: object, Index: index}
}

// NewSlice builds a `start:stop:step` slice; any part may be nil.
func NewSlice(start, stop, step Node, line, col int) *Slice {
	return &Slice{Base: at(line, col), Start: start, Stop: stop, Step: step}
}

// NewAssignment builds a plain, augmented, or annotated assignment.
func NewAssignment(target Node, op token.Operator, typ types.Type, value Node, line, col int) *Assignment {
	return &Assignment{Base: at(line, col), Target: target, Op: op, Type: typ, Value: value}
}

// NewIf builds an `if cond: body` node; ElseNode is attached by the caller.
func NewIf(cond Node, body *Body, line, col int) *If {
	return &If{Base: at(line, col), Cond: cond, Body: body}
}

// NewFor builds either a `for target in cond: body` (isWhile=false,
// target non-nil) or a `while cond: body` (isWhile=true, target nil).
func NewFor(isWhile bool, target, cond Node, body *Body, line, col int) *For {
	return &For{Base: at(line, col), IsWhile: isWhile, Target: target, Cond: cond, Body: body}
}

// NewReturn builds a `return [value]` node; value is nil for a bare return.
func NewReturn(value Node, line, col int) *Return {
	return &Return{Base: at(line, col), Value: value}
}

// NewPass, NewBreak, NewContinue build the three payload-free statements.
func NewPass(line, col int) *Pass         { return &Pass{Base: at(line, col)} }
func NewBreak(line, col int) *Break       { return &Break{Base: at(line, col)} }
func NewContinue(line, col int) *Continue { return &Continue{Base: at(line, col)} }

// NewBody builds an (initially empty) statement suite at a position.
func NewBody(line, col int) *Body { return &Body{Base: at(line, col)} }

// NewAttribute builds a class-level field produced by re-bucketing.
func NewAttribute(name string, typ types.Type, value Node, line, col int) *Attribute {
	return &Attribute{Base: at(line, col), Name: name, Type: typ, Value: value}
}

// NewParameter builds one function parameter-list entry.
func NewParameter(name string, typ types.Type, def Node, line, col int) *Parameter {
	return &Parameter{Base: at(line, col), Name: name, Type: typ, Default: def}
}

// NewClass builds an (initially empty) class declaration at a position.
func NewClass(name string, decorators []*Decorator, line, col int) *Class {
	return &Class{Base: at(line, col), Name: name, Decorators: decorators}
}

// NewFunction builds a function declaration with its parameter list;
// ReturnType defaults to types.Unknown (no `-> TYPE` given) and Body
// is attached by the caller once parsed.
func NewFunction(name string, decorators []*Decorator, params []*Parameter, line, col int) *Function {
	return &Function{Base: at(line, col), Name: name, Decorators: decorators, Params: params, ReturnType: types.Unknown}
}

// NewImport builds an `import NAME [as ALIAS]` node.
func NewImport(name string, line, col int) *Import {
	return &Import{Base: at(line, col), Name: name}
}
