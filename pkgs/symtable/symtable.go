// Package symtable implements a symbol-table skeleton grounded on
// include/venom/symtable.h and src/symtable.c in the original source.
// Construction and the debug printers are real; Collect, Resolve, and
// Find are declared but deliberately left unimplemented, matching
// VENOM_NOT_IMPLEMENTED in src/symtable.c: the traversal algorithm
// that would populate scopes from an AST is not specified anywhere
// the original exposes, so it is not guessed at here.
package symtable

import "github.com/romainaugier/venom/pkgs/ast"

// ScopeKind is the kind of lexical region a Scope represents.
type ScopeKind int

const (
	GlobalScope ScopeKind = iota
	ModuleScope
	ClassScope
	FunctionScope
	ComprehensionScope
	LambdaScope
)

var scopeKindNames = [...]string{
	"Global", "Module", "Class", "Function", "Comprehension", "Lambda",
}

func (k ScopeKind) String() string {
	if k < 0 || int(k) >= len(scopeKindNames) {
		return "Unknown"
	}
	return scopeKindNames[k]
}

// Scope is one node of the symbol-table tree: a lexical region with
// its own name→Symbol map and an ordered list of nested scopes.
type Scope struct {
	Kind     ScopeKind
	Parent   *Scope   // nil for the root Module scope
	ASTNode  ast.Node // non-owning: the declaration this scope belongs to
	Symbols  map[string]Symbol
	Children []*Scope
}

func newScope(kind ScopeKind, parent *Scope, node ast.Node) *Scope {
	return &Scope{
		Kind:    kind,
		Parent:  parent,
		ASTNode: node,
		Symbols: make(map[string]Symbol, 8),
	}
}

// AddSymbol records sym under name in scope, per v_symscope_add_symbol.
func (s *Scope) AddSymbol(name string, sym Symbol) {
	s.Symbols[name] = sym
}

// SymbolKind distinguishes the four forms of Symbol, per VSymType.
type SymbolKind int

const (
	ModuleSymbol SymbolKind = iota
	ClassSymbol
	FunctionSymbol
	VariableSymbol
)

// Symbol is one named entry of a Scope's symbol map. Only the fields
// meaningful for Kind == VariableSymbol are populated for variables;
// the others are left at their zero value.
//
// The original VSym_Variable types FirstScope/LastScope as AST nodes
// even though they represent AST use-sites of the variable — almost
// certainly a field-naming leftover rather than an intended "variable
// spans two scopes" design. This port names the fields for what they
// actually hold: the first and last AST expression nodes where the
// variable is referenced.
type Symbol struct {
	Kind         SymbolKind
	Name         string
	ScopeKind    ScopeKind // meaningful for VariableSymbol: the kind of scope it was declared in
	InitialValue ast.Node  // the initializing expression, if any
	FirstUse     ast.Node  // first AST reference site
	LastUse      ast.Node  // most recent AST reference site
}

// Table is the symbol-table root: a single Module scope and (once
// Collect/Resolve are implemented) the full nested scope tree beneath
// it.
type Table struct {
	Module *Scope
}

// New constructs a Table with its root Module scope initialized, per
// v_symtable_new.
func New() *Table {
	return &Table{Module: newScope(ModuleScope, nil, nil)}
}

// Collect is declared but unimplemented: the source's v_symtable_collect
// is a bare VENOM_NOT_IMPLEMENTED stub and its traversal algorithm is
// not recoverable from anything the original exposes. Callers must
// not rely on it populating anything yet.
func (t *Table) Collect(root *ast.Source) error {
	return errNotImplemented
}

// Resolve is declared but unimplemented; see Collect.
func (t *Table) Resolve(root *ast.Source) error {
	return errNotImplemented
}

// Find is declared but unimplemented; see Collect.
func (t *Table) Find(scope *Scope, name string) (Symbol, bool) {
	return Symbol{}, false
}

var errNotImplemented = notImplementedError{}

type notImplementedError struct{}

func (notImplementedError) Error() string {
	return "symtable: not implemented (traversal algorithm unspecified in source)"
}
