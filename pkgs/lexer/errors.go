package lexer

import (
	"fmt"
	"strings"
)

// Error is a lexical failure: invalid operator spelling, indent-depth
// overflow, or an unindent that matches no outer level. Rendering
// follows the same Rust/Clang-style snippet (`-->` + source line +
// caret) as parser.ParseError, since both point at one line:column in
// the source.
type Error struct {
	Message string
	Line    int
	Column  int
	Input   string

	// TabWidth is the display width of a tab for caret alignment; the
	// zero value renders a tab as a single column, same as Column's
	// raw count.
	TabWidth int
}

func (e *Error) Error() string {
	return fmt.Sprintf("Lexing error at line %d: %s\n%s", e.Line, e.Message, e.snippet())
}

func (e *Error) snippet() string {
	if e.Input == "" || e.Line <= 0 {
		return ""
	}
	lines := strings.Split(e.Input, "\n")
	if e.Line > len(lines) {
		return ""
	}
	lineContent := lines[e.Line-1]
	displayLine, caretCol := expandTabs(lineContent, e.Column, e.TabWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "  --> %d:%d\n", e.Line, e.Column)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "%2d | %s\n", e.Line, displayLine)
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
