package parser

import (
	"fmt"
	"strings"

	"github.com/romainaugier/venom/pkgs/token"
)

// ParseError is the single diagnostic a failed parse produces: the
// parser stops at the first error and never tries to recover or
// resynchronize. Rendering follows a Rust/Clang-style snippet (`-->`
// pointer, source line, caret).
type ParseError struct {
	Message string
	Token   token.Token
	Input   string

	// TabWidth is the display width of a tab for caret alignment; the
	// zero value renders a tab as a single column, same as the
	// token's raw column count.
	TabWidth int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parsing error at line %d: %s\n%s", e.Token.Start.Line, e.Message, e.snippet())
}

func (e *ParseError) snippet() string {
	if e.Input == "" || e.Token.Start.Line <= 0 {
		return ""
	}
	lines := strings.Split(e.Input, "\n")
	if e.Token.Start.Line > len(lines) {
		return ""
	}
	lineContent := lines[e.Token.Start.Line-1]
	displayLine, caretCol := expandTabs(lineContent, e.Token.Start.Column, e.TabWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "  --> %d:%d\n", e.Token.Start.Line, e.Token.Start.Column)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "%2d | %s\n", e.Token.Start.Line, displayLine)
	b.WriteString("   | ")
	if caretCol > 0 && caretCol <= len(displayLine)+1 {
		b.WriteString(strings.Repeat(" ", caretCol-1) + "^")
	}
	return b.String()
}

// expandTabs replaces each tab in line with spaces out to the next
// tabWidth stop, returning the expanded line alongside col (a raw
// rune count into the original line) remapped to the expanded line's
// columns, so a caret still lands under the right character.
func expandTabs(line string, col, tabWidth int) (string, int) {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	var b strings.Builder
	caretCol := col
	visual, runeIdx := 0, 0
	for _, r := range line {
		runeIdx++
		if runeIdx == col {
			caretCol = visual + 1
		}
		if r == '\t' {
			pad := tabWidth - (visual % tabWidth)
			b.WriteString(strings.Repeat(" ", pad))
			visual += pad
		} else {
			b.WriteRune(r)
			visual++
		}
	}
	if col > runeIdx {
		caretCol = visual + (col - runeIdx)
	}
	return b.String(), caretCol
}

// setError latches the first error only; subsequent calls are no-ops.
func (p *Parser) setError(message string) {
	if p.err != nil {
		return
	}
	p.err = &ParseError{Message: message, Token: p.current(), Input: p.input, TabWidth: p.tabWidth}
}

// unexpected latches an "expected X, got Y" diagnostic.
func (p *Parser) unexpected(expected string) {
	got := p.current()
	p.setError(fmt.Sprintf("expected %s, got %s", expected, describe(got)))
}

func describe(t token.Token) string {
	switch t.Kind {
	case token.EOF:
		return "end of input"
	case token.Keyword:
		return fmt.Sprintf("keyword %q", t.Keyword.String())
	case token.Delimiter:
		return fmt.Sprintf("%q", t.Delimiter.String())
	case token.Operator:
		return fmt.Sprintf("operator %q", t.Operator.String())
	case token.Identifier:
		return fmt.Sprintf("identifier %q", t.Lexeme)
	case token.Newline:
		return "newline"
	case token.Indent:
		return "indent"
	case token.Dedent:
		return "dedent"
	default:
		return t.Kind.String()
	}
}
