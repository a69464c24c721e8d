package token

import "sync"

// The three lookup tables are built once and never mutated again,
// mirroring the original source's v_lexer_maps_init/v_lexer_maps_release
// pair (include/venom/lexer.h), re-architected as Go maps behind
// sync.Once rather than mutable globals with explicit init/teardown
// calls, since a Go process has no symmetric teardown hook and
// concurrent readers of a never-mutated map are already safe.
var (
	tablesOnce     sync.Once
	keywordTable   map[string]Keyword
	delimiterTable map[string]Delimiter
	operatorTable  map[string]Operator
)

func initTables() {
	keywordTable = map[string]Keyword{
		"False": False, "await": Await, "else": Else, "import": Import,
		"pass": Pass, "None": None, "break": Break, "except": Except,
		"in": In, "raise": Raise, "True": True, "class": Class,
		"finally": Finally, "is": Is, "return": Return, "and": And,
		"continue": Continue, "for": For, "lambda": Lambda, "try": Try,
		"as": As, "def": Def, "from": From, "nonlocal": Nonlocal,
		"while": While, "assert": Assert, "del": Del, "global": Global,
		"not": Not, "with": With, "async": Async, "elif": Elif,
		"if": If, "or": Or, "yield": Yield,
	}

	delimiterTable = map[string]Delimiter{
		"(": LParen, ")": RParen, "[": LBracket, "]": RBracket,
		"{": LBrace, "}": RBrace, ",": Comma, ":": Colon, ".": Dot,
		";": SemiColon, "@": At, "->": RightArrow,
	}

	// Textual operators ("and", "or", "not", "is", "in", and the
	// multi-word "is not"/"not in") are present for the parser's
	// benefit even though the lexer's scan loop never looks them up
	// here directly — it classifies them as Keyword tokens first.
	operatorTable = map[string]Operator{
		"+": Addition, "-": Subtraction, "*": Multiplication,
		"/": Division, "%": Modulus, "**": Exponentiation,
		"//": FloorDivision,
		"=": Assign, "+=": AdditionAssign, "-=": SubtractionAssign,
		"*=": MultiplicationAssign, "/=": DivisionAssign,
		"%=": ModulusAssign, "//=": FloorDivisionAssign,
		"**=": ExponentiationAssign,
		"&=": BitwiseAndAssign, "|=": BitwiseOrAssign,
		"^=": BitwiseXorAssign, "<<=": BitwiseLShiftAssign,
		">>=": BitwiseRShiftAssign,
		"&": BitwiseAnd, "|": BitwiseOr, "^": BitwiseXor, "~": BitwiseNot,
		"<<": BitwiseLShift, ">>": BitwiseRShift,
		"==": ComparatorEquals, "!=": ComparatorNotEquals,
		">": ComparatorGreaterThan, "<": ComparatorLessThan,
		">=": ComparatorGreaterEqualsThan, "<=": ComparatorLessEqualsThan,
		"and": LogicalAnd, "or": LogicalOr, "not": LogicalNot,
		"is": IdentityIs, "is not": IdentityIsNot,
		"in": MembershipIn, "not in": MembershipNotIn,
	}
}

func tables() (map[string]Keyword, map[string]Delimiter, map[string]Operator) {
	tablesOnce.Do(initTables)
	return keywordTable, delimiterTable, operatorTable
}

// LookupKeyword returns the keyword code for word, and whether word is
// a reserved word at all.
func LookupKeyword(word string) (Keyword, bool) {
	kw, _, _ := tables()
	k, ok := kw[word]
	return k, ok
}

// LookupDelimiter returns the delimiter code for text.
func LookupDelimiter(text string) (Delimiter, bool) {
	_, dl, _ := tables()
	d, ok := dl[text]
	return d, ok
}

// LookupOperator returns the operator code for text.
func LookupOperator(text string) (Operator, bool) {
	_, _, op := tables()
	o, ok := op[text]
	return o, ok
}

// builtinTypeNames is the name set bare type annotations resolve
// against; lives alongside the other lookup tables since it is built
// the same way (process-wide, read-only).
var builtinTypeNames = map[string]bool{
	"int": true, "float": true, "str": true, "bool": true,
	"List": true, "Tuple": true, "Dict": true, "Set": true,
}

// IsBuiltinTypeName reports whether name (after any `typing.` prefix
// has already been stripped by the caller) names one of the bare
// built-in type annotations recognized here.
func IsBuiltinTypeName(name string) bool {
	return builtinTypeNames[name]
}
