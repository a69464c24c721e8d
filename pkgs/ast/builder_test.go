package ast

import (
	"testing"

	"github.com/romainaugier/venom/pkgs/token"
	"github.com/romainaugier/venom/pkgs/types"
)

func TestNewSymbolCarriesPositionAndUnknownType(t *testing.T) {
	sym := NewSymbol("x", 3, 7)
	if sym.Name != "x" || sym.Type != types.Unknown {
		t.Fatalf("NewSymbol = %+v, want Name=x Type=Unknown", sym)
	}
	if sym.At() != (Position{Line: 3, Column: 7}) {
		t.Errorf("At() = %+v, want {3 7}", sym.At())
	}
}

func TestNewStringLiteralPicksBytesTypeForBytesKind(t *testing.T) {
	str := NewStringLiteral("hi", token.LiteralString, 1, 1)
	if str.Type != types.String {
		t.Errorf("plain string literal Type = %v, want String", str.Type)
	}
	bts := NewStringLiteral("hi", token.LiteralBytes, 1, 1)
	if bts.Type != types.Bytes {
		t.Errorf("bytes literal Type = %v, want Bytes", bts.Type)
	}
}

func TestNewBoolLiteralValueText(t *testing.T) {
	if NewBoolLiteral(true, 1, 1).Value != "True" {
		t.Error(`NewBoolLiteral(true, ...).Value should be "True"`)
	}
	if NewBoolLiteral(false, 1, 1).Value != "False" {
		t.Error(`NewBoolLiteral(false, ...).Value should be "False"`)
	}
}

func TestContainerLiteralsCarryTheRightElements(t *testing.T) {
	elems := []Node{NewIntLiteral("1", 1, 1), NewIntLiteral("2", 1, 1)}

	list := NewListLiteral(elems, 1, 1)
	if list.Type != types.List || len(list.Elements) != 2 {
		t.Errorf("NewListLiteral = %+v", list)
	}

	dict := NewDictLiteral([]Node{NewIntLiteral("1", 1, 1)}, []Node{NewIntLiteral("2", 1, 1)}, 1, 1)
	if dict.Type != types.Dict || len(dict.Keys) != 1 || len(dict.Values) != 1 {
		t.Errorf("NewDictLiteral = %+v", dict)
	}
}

func TestSourceEntryPointSkipsClassesAndFunctions(t *testing.T) {
	src := &Source{Decls: []Node{
		NewClass("A", nil, 1, 1),
		NewFunction("f", nil, nil, 2, 1),
		NewSymbol("main_stmt", 3, 1),
	}}
	entry := SourceEntryPoint(src)
	sym, ok := entry.(*Symbol)
	if !ok || sym.Name != "main_stmt" {
		t.Fatalf("SourceEntryPoint = %#v, want the Symbol main_stmt", entry)
	}
}

func TestSourceEntryPointNilWhenOnlyDeclarations(t *testing.T) {
	src := &Source{Decls: []Node{NewClass("A", nil, 1, 1)}}
	if got := SourceEntryPoint(src); got != nil {
		t.Errorf("SourceEntryPoint = %#v, want nil", got)
	}
}
