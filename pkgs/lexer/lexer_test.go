package lexer

import (
	"strings"
	"testing"

	"github.com/romainaugier/venom/pkgs/token"
)

func mustLex(t *testing.T, src string) []token.Token {
	t.Helper()
	tokens, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex(%q): unexpected error: %v", src, err)
	}
	return tokens
}

// Round-trip invariant: an ASCII identifier's or a number's Lexeme is
// exactly the bytes the lexer consumed for it, independent of any
// semantic reinterpretation. (A string literal's Lexeme excludes its
// prefix and quotes; a non-ASCII identifier's is NFKC-normalized.)
func TestRoundTripPreservesIdentifierAndNumberBytes(t *testing.T) {
	src := "count_1 = 42\n"
	tokens := mustLex(t, src)

	if tokens[0].Kind != token.Identifier || tokens[0].Lexeme != "count_1" {
		t.Fatalf("tokens[0] = %+v, want Identifier(count_1)", tokens[0])
	}
	numTok := tokens[2]
	if numTok.Kind != token.Literal || numTok.LiteralKind != token.LiteralInteger || numTok.Lexeme != "42" {
		t.Fatalf("tokens[2] = %+v, want Literal(Integer 42)", numTok)
	}
}

// Indent/Dedent balance: every Indent has a matching Dedent before EOF.
func TestIndentDedentBalance(t *testing.T) {
	src := "if a:\n    if b:\n        pass\n    pass\n"
	tokens := mustLex(t, src)
	var depth int
	for _, tok := range tokens {
		switch tok.Kind {
		case token.Indent:
			depth++
		case token.Dedent:
			depth--
		}
	}
	if depth != 0 {
		t.Fatalf("unbalanced Indent/Dedent, final depth %d", depth)
	}
	if tokens[len(tokens)-1].Kind != token.EOF {
		t.Fatalf("last token is %v, want EOF", tokens[len(tokens)-1].Kind)
	}
}

// EOF implicitly closes every open block: no Dedent is required before
// the final EOF token when input ends mid-indentation.
func TestEOFImplicitlyClosesOpenBlocks(t *testing.T) {
	src := "if a:\n    pass"
	tokens := mustLex(t, src)
	last := tokens[len(tokens)-1]
	if last.Kind != token.EOF {
		t.Fatalf("last token is %v, want EOF", last.Kind)
	}
}

// Scenario 7: inconsistent dedent is a lex failure naming the mismatch.
func TestInconsistentDedentFails(t *testing.T) {
	src := "if a:\n        pass\n    pass\n"
	_, err := Lex(src)
	if err == nil {
		t.Fatalf("expected a lex error for an inconsistent dedent, got none")
	}
	if !strings.Contains(err.Error(), "Unindent does not match any outer indentation level") {
		t.Errorf("error %q does not name the unindent mismatch", err.Error())
	}
}

func TestStringLiteralPrefixesClassifyCorrectly(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want token.LiteralKind
	}{
		{"plain string", `"hi"`, token.LiteralString},
		{"raw string", `r"hi"`, token.LiteralRawString},
		{"formatted string", `f"hi"`, token.LiteralFormattedString},
		{"unicode string", `u"hi"`, token.LiteralUnicodeString},
		{"bytes literal", `b"hi"`, token.LiteralBytes},
		{"uppercase bytes prefix", `B"hi"`, token.LiteralBytes},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens := mustLex(t, tc.src+"\n")
			if tokens[0].Kind != token.Literal || tokens[0].LiteralKind != tc.want {
				t.Fatalf("got %+v, want LiteralKind %v", tokens[0], tc.want)
			}
		})
	}
}

func TestBlankAndCommentOnlyLinesDoNotAffectIndentStack(t *testing.T) {
	src := "if a:\n    pass\n\n    # a comment\n    pass\n"
	tokens := mustLex(t, src)
	var indents, dedents int
	for _, tok := range tokens {
		if tok.Kind == token.Indent {
			indents++
		}
		if tok.Kind == token.Dedent {
			dedents++
		}
	}
	if indents != 1 || dedents != 1 {
		t.Fatalf("got %d Indent and %d Dedent, want exactly one of each", indents, dedents)
	}
}

func TestNonASCIIIdentifierIsNormalized(t *testing.T) {
	// U+00C5 (LATIN CAPITAL LETTER A WITH RING ABOVE, precomposed) and
	// "A" + U+030A (COMBINING RING ABOVE) are NFKC-equivalent.
	precomposed := "\u00c5 = 1\n"
	decomposed := "A\u030a = 1\n"

	precomposedTokens := mustLex(t, precomposed)
	decomposedTokens := mustLex(t, decomposed)

	if precomposedTokens[0].Lexeme != decomposedTokens[0].Lexeme {
		t.Errorf("NFKC normalization did not unify the two spellings: %q vs %q",
			precomposedTokens[0].Lexeme, decomposedTokens[0].Lexeme)
	}
}

func TestMaxIndentDepthExceeded(t *testing.T) {
	var b strings.Builder
	b.WriteString("if a:\n")
	for i := 1; i <= maxIndentDepth+1; i++ {
		b.WriteString(strings.Repeat("    ", i))
		b.WriteString("if a:\n")
	}
	b.WriteString(strings.Repeat("    ", maxIndentDepth+2))
	b.WriteString("pass\n")

	_, err := Lex(b.String())
	if err == nil {
		t.Fatalf("expected an error once indentation depth exceeds %d levels", maxIndentDepth)
	}
}
