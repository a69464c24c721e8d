// Package types implements the fixed annotation-type enumeration used
// by the AST, grounded on include/venom/type.h and
// src/type.c in the original source.
package types

import (
	"fmt"
	"strings"
)

// Type is the closed enumeration of annotation types.
type Type int

const (
	Unknown Type = iota
	NoneType
	Int
	Float
	Bool
	String
	Bytes
	List
	Tuple
	Dict
	Set
	UserClass
	Object
)

var typeNames = [...]string{
	"Unknown", "None", "Int", "Float", "Bool", "String", "Bytes",
	"List", "Tuple", "Dict", "Set", "UserClass", "Object",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

var builtinNameToType = map[string]Type{
	"int": Int, "float": Float, "str": String, "bool": Bool,
	"List": List, "Tuple": Tuple, "Dict": Dict, "Set": Set,
}

// FromAnnotationName resolves a bare annotation identifier to a Type,
// stripping a leading "typing." prefix first.
//
// The original v_string_to_type (src/type.c) reads:
//
//	if(strcmp(start, "int")) return VType_Int;
//
// i.e. every branch is guarded by strcmp *succeeding* (non-zero means
// "not equal" in C), so as literally written every annotation whose
// name differs from "int" would return Int first, almost certainly a
// missing `!`. This implements the evidently intended behavior
// instead: equality selects the matching type, and a name that
// matches none of the built-ins (and was not already resolved to
// UserClass by the symbol table, see pkgs/symtable) resolves to
// Object, never Unknown, once the caller is in annotation position at
// all (an absent annotation is a separate Unknown, handled by the
// caller's Function.ReturnType/Assignment.Type rules).
func FromAnnotationName(name string) Type {
	name = strings.TrimPrefix(name, "typing.")
	if t, ok := builtinNameToType[name]; ok {
		return t
	}
	return Object
}
