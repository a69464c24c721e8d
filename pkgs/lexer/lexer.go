// Package lexer implements a layout-sensitive scanner: byte-offset/
// line/column tracking via readChar/peekAt, ASCII fast-path
// classification tables, and position-stamped Token construction.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/romainaugier/venom/pkgs/token"
)

const maxIndentDepth = 128

// ASCII classification tables — a fast path for the overwhelmingly
// common ASCII source byte, falling back to unicode.IsLetter (start)
// and unicode.IsLetter/IsDigit/IsMark (continuation) for the rest of
// PEP 3131's identifier grammar.
var (
	isIdentStartASCII [128]bool
	isIdentPartASCII  [128]bool
	isDigitASCII      [128]bool
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		letter := ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
		digit := '0' <= ch && ch <= '9'
		isDigitASCII[i] = digit
		isIdentStartASCII[i] = letter
		isIdentPartASCII[i] = letter || digit
	}
}

// Lexer tokenizes venom source text with byte-offset/line/column
// tracking.
type Lexer struct {
	input   string
	pos     int // byte offset of ch
	readPos int // byte offset of the next rune to read
	ch      rune
	line    int
	column  int

	indentStack []int
	queue       []token.Token

	tabWidth int
	err      *Error
}

func newLexer(input string, tabWidth int) *Lexer {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	l := &Lexer{
		input:       input,
		line:        1,
		column:      0,
		indentStack: []int{0},
		tabWidth:    tabWidth,
	}
	l.readChar()
	return l
}

// Lex scans input into a complete token slice whose final entry has
// Kind=EOF's contract, or returns the first lexical
// error encountered (first-error-wins, same discipline as the parser).
// Diagnostic snippets are rendered assuming a tab stops every column;
// use LexWithTabWidth to line up carets against real tab-expanded text.
func Lex(input string) ([]token.Token, error) {
	return LexWithTabWidth(input, 1)
}

// LexWithTabWidth is Lex, but diagnostic snippets expand tabs to
// tabWidth columns before placing the caret, matching how the source
// actually renders in an editor or terminal.
func LexWithTabWidth(input string, tabWidth int) ([]token.Token, error) {
	l := newLexer(input, tabWidth)
	var tokens []token.Token

	for {
		for len(l.queue) > 0 {
			tokens = append(tokens, l.queue[0])
			l.queue = l.queue[1:]
		}

		tok := l.scan()
		if l.err != nil {
			return nil, l.err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return tokens, nil
}

func (l *Lexer) fail(message string) token.Token {
	l.err = &Error{Message: message, Line: l.line, Column: l.column, Input: l.input, TabWidth: l.tabWidth}
	return token.Token{Kind: token.Unknown}
}

// scan performs one iteration of the scan loop
func (l *Lexer) scan() token.Token {
	l.skipInlineWhitespace()

	startLine, startCol, startOff := l.line, l.column, l.pos

	switch {
	case l.ch == 0:
		return l.simple(token.EOF, "", startLine, startCol, startOff)
	case l.ch == '\n':
		return l.scanNewlineAndIndent()
	case l.ch == '#':
		l.skipComment()
		return l.scan()
	case l.stringPrefixLen() >= 0:
		return l.scanString(startLine, startCol, startOff)
	case l.ch < 128 && isDigitASCII[l.ch]:
		return l.scanNumber(startLine, startCol, startOff)
	case l.isIdentStart():
		return l.scanIdentifierOrKeyword(startLine, startCol, startOff)
	case l.isDelimiterLead():
		return l.scanDelimiter(startLine, startCol, startOff)
	default:
		return l.scanOperator(startLine, startCol, startOff)
	}
}

// --- Newline / indent handling ---------------------------------------

// scanNewlineAndIndent implements scan-loop step 6: emit one Newline
// per physical line break (including blank and comment-only lines),
// then measure the indentation of the next line with real content and
// push/pop the indent stack accordingly.
func (l *Lexer) scanNewlineAndIndent() token.Token {
	first := l.emitNewline()

	for {
		lineStart := l.pos
		indent := l.countLeadingSpaces()

		switch {
		case l.ch == '\n':
			// Blank line: its own newline is emitted, stack untouched.
			l.queue = append(l.queue, l.emitNewline())
			continue
		case l.ch == '#':
			l.skipComment()
			if l.ch == '\n' {
				l.queue = append(l.queue, l.emitNewline())
				continue
			}
			// Comment runs to EOF with no trailing newline: like any
			// other end of input, close every open block.
			l.adjustIndent(0, lineStart)
			return first
		case l.ch == 0:
			// End of input closes every open block with one Dedent per
			// level, so Indent and Dedent tokens balance.
			l.adjustIndent(0, lineStart)
			return first
		default:
			l.adjustIndent(indent, lineStart)
			return first
		}
	}
}

func (l *Lexer) emitNewline() token.Token {
	startLine, startCol, startOff := l.line, l.column, l.pos
	l.readChar() // consume '\n'
	return token.Token{
		Kind:  token.Newline,
		Start: token.Position{Line: startLine, Column: startCol, Offset: startOff},
		End:   token.Position{Line: l.line, Column: l.column, Offset: l.pos},
	}
}

// countLeadingSpaces consumes leading ' '/'\t' on the current line and
// returns the column count reached.
func (l *Lexer) countLeadingSpaces() int {
	col := 0
	for l.ch == ' ' || l.ch == '\t' {
		col++
		l.readChar()
	}
	return col
}

// adjustIndent pushes or pops the indent stack to match indent,
// queuing one Indent or one-or-more Dedent tokens as needed.
func (l *Lexer) adjustIndent(indent, offset int) {
	top := l.indentStack[len(l.indentStack)-1]

	switch {
	case indent > top:
		if len(l.indentStack) >= maxIndentDepth {
			l.err = &Error{
				Message: "indentation depth exceeds the maximum of 128 levels",
				Line:    l.line, Column: l.column, Input: l.input, TabWidth: l.tabWidth,
			}
			return
		}
		l.indentStack = append(l.indentStack, indent)
		l.queue = append(l.queue, l.markerToken(token.Indent, offset))

	case indent < top:
		for len(l.indentStack) > 1 && l.indentStack[len(l.indentStack)-1] > indent {
			l.indentStack = l.indentStack[:len(l.indentStack)-1]
			l.queue = append(l.queue, l.markerToken(token.Dedent, offset))
		}
		if l.indentStack[len(l.indentStack)-1] != indent {
			l.err = &Error{
				Message: "Unindent does not match any outer indentation level",
				Line:    l.line, Column: l.column, Input: l.input, TabWidth: l.tabWidth,
			}
		}

	default:
		// Equal: no token.
	}
}

func (l *Lexer) markerToken(kind token.Kind, offset int) token.Token {
	pos := token.Position{Line: l.line, Column: l.column, Offset: offset}
	return token.Token{Kind: kind, Start: pos, End: pos}
}

// --- String literals ---------------------------------------------------

// stringPrefixLen reports the length (0, 1, or 2) of a valid string
// prefix starting at the current position, or -1 if the current
// position does not begin a string literal at all. Recognizes any
// case-insensitive combination of r/u/f/b up to two characters
// followed immediately by a quote — including the b/B Bytes prefix the
// original source's is_string_literal_prefix omitted
func (l *Lexer) stringPrefixLen() int {
	if l.ch == '"' || l.ch == '\'' {
		return 0
	}
	if !isPrefixLetter(l.ch) {
		return -1
	}
	c1 := l.peekAt(1)
	if c1 == '"' || c1 == '\'' {
		return 1
	}
	if isPrefixLetter(c1) {
		c2 := l.peekAt(2)
		if c2 == '"' || c2 == '\'' {
			return 2
		}
	}
	return -1
}

func isPrefixLetter(ch rune) bool {
	switch ch {
	case 'r', 'R', 'u', 'U', 'f', 'F', 'b', 'B':
		return true
	}
	return false
}

// classifyPrefix maps the consumed prefix letters (lowercased, order
// preserved) to the literal subkind the design requires distinguishing.
func classifyPrefix(prefix string) token.LiteralKind {
	lower := strings.ToLower(prefix)
	switch {
	case strings.Contains(lower, "b"):
		return token.LiteralBytes
	case strings.Contains(lower, "f"):
		return token.LiteralFormattedString
	case strings.Contains(lower, "r"):
		return token.LiteralRawString
	case strings.Contains(lower, "u"):
		return token.LiteralUnicodeString
	default:
		return token.LiteralString
	}
}

func (l *Lexer) scanString(startLine, startCol, startOff int) token.Token {
	prefixLen := l.stringPrefixLen()
	prefixStart := l.pos
	for i := 0; i < prefixLen; i++ {
		l.readChar()
	}
	prefix := l.input[prefixStart:l.pos]

	quote := l.ch
	l.readChar() // consume opening quote
	valueStart := l.pos

	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				break
			}
		}
		l.readChar()
	}
	value := l.input[valueStart:l.pos]

	if l.ch == quote {
		l.readChar() // consume closing quote
	}

	return token.Token{
		Kind:        token.Literal,
		LiteralKind: classifyPrefix(prefix),
		Lexeme:      value,
		Start:       token.Position{Line: startLine, Column: startCol, Offset: startOff},
		End:         token.Position{Line: l.line, Column: l.column, Offset: l.pos},
	}
}

// --- Numeric literals ----------------------------------------------------

// scanNumber implements scan-loop step 2: try a float (digit run,
// ".", digit run) first; fall back to a bare integer digit run.
// Concretely, no hex/octal/binary/underscore/scientific-notation
// support is added — the original doesn't specify it and neither does
// this port.
func (l *Lexer) scanNumber(startLine, startCol, startOff int) token.Token {
	l.consumeDigits()

	isFloat := false
	if l.ch == '.' {
		isFloat = true
		l.readChar()
		l.consumeDigits()
	}

	lexeme := l.input[startOff:l.pos]
	kind := token.LiteralInteger
	if isFloat {
		kind = token.LiteralFloat
	}

	return token.Token{
		Kind:        token.Literal,
		LiteralKind: kind,
		Lexeme:      lexeme,
		Start:       token.Position{Line: startLine, Column: startCol, Offset: startOff},
		End:         token.Position{Line: l.line, Column: l.column, Offset: l.pos},
	}
}

func (l *Lexer) consumeDigits() {
	for l.ch < 128 && isDigitASCII[l.ch] {
		l.readChar()
	}
}

// --- Identifiers & keywords ----------------------------------------------

func (l *Lexer) isIdentStart() bool {
	if l.ch < 128 {
		return isIdentStartASCII[l.ch]
	}
	return unicode.IsLetter(l.ch)
}

func (l *Lexer) isIdentPart() bool {
	if l.ch < 128 {
		return isIdentPartASCII[l.ch]
	}
	return unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) || unicode.IsMark(l.ch)
}

// scanIdentifierOrKeyword implements scan-loop step 3: read the
// identifier run, then look it up as a keyword, then as an operator,
// defaulting to a plain Identifier. Non-ASCII identifiers are
// normalized through NFKC (PEP 3131) before being interned; the ASCII
// common case skips that work.
func (l *Lexer) scanIdentifierOrKeyword(startLine, startCol, startOff int) token.Token {
	hasNonASCII := false
	for l.isIdentPart() {
		if l.ch >= 128 {
			hasNonASCII = true
		}
		l.readChar()
	}

	name := l.input[startOff:l.pos]
	if hasNonASCII {
		name = norm.NFKC.String(name)
	}

	pos := token.Position{Line: startLine, Column: startCol, Offset: startOff}
	end := token.Position{Line: l.line, Column: l.column, Offset: l.pos}

	if kw, ok := token.LookupKeyword(name); ok {
		return token.Token{Kind: token.Keyword, Keyword: kw, Lexeme: name, Start: pos, End: end}
	}
	if op, ok := token.LookupOperator(name); ok {
		return token.Token{Kind: token.Operator, Operator: op, Lexeme: name, Start: pos, End: end}
	}
	return token.Token{Kind: token.Identifier, Lexeme: name, Start: pos, End: end}
}

// --- Delimiters & operators ----------------------------------------------

func (l *Lexer) isDelimiterLead() bool {
	switch l.ch {
	case '(', ')', '[', ']', '{', '}', ',', ':', '.', ';', '@', '-':
		return true
	}
	return false
}

// scanDelimiter implements scan-loop step 4. '-' is special-cased so
// that "->" is recognized as a two-char delimiter; if it isn't
// followed by '>' it is not a delimiter at all and control falls back
// to the operator scanner
func (l *Lexer) scanDelimiter(startLine, startCol, startOff int) token.Token {
	if l.ch == '-' {
		if l.peekAt(1) == '>' {
			l.readChar()
			l.readChar()
			return l.simpleDelimiter(token.RightArrow, "->", startLine, startCol, startOff)
		}
		return l.scanOperator(startLine, startCol, startOff)
	}

	ch := l.ch
	l.readChar()
	lexeme := string(ch)
	d, _ := token.LookupDelimiter(lexeme)
	return l.simpleDelimiter(d, lexeme, startLine, startCol, startOff)
}

func (l *Lexer) simpleDelimiter(d token.Delimiter, lexeme string, startLine, startCol, startOff int) token.Token {
	return token.Token{
		Kind: token.Delimiter, Delimiter: d, Lexeme: lexeme,
		Start: token.Position{Line: startLine, Column: startCol, Offset: startOff},
		End:   token.Position{Line: l.line, Column: l.column, Offset: l.pos},
	}
}

// scanOperator implements scan-loop step 5: a greedy longest-match
// over the symbolic operator lead characters.
func (l *Lexer) scanOperator(startLine, startCol, startOff int) token.Token {
	for length := 3; length >= 1; length-- {
		end := startOff + length
		if end > len(l.input) {
			continue
		}
		candidate := l.input[startOff:end]
		if op, ok := token.LookupOperator(candidate); ok {
			for i := 0; i < length; i++ {
				l.readChar()
			}
			return token.Token{
				Kind: token.Operator, Operator: op, Lexeme: candidate,
				Start: token.Position{Line: startLine, Column: startCol, Offset: startOff},
				End:   token.Position{Line: l.line, Column: l.column, Offset: l.pos},
			}
		}
	}
	return l.fail("invalid operator spelling")
}

func (l *Lexer) simple(kind token.Kind, lexeme string, startLine, startCol, startOff int) token.Token {
	return token.Token{
		Kind: kind, Lexeme: lexeme,
		Start: token.Position{Line: startLine, Column: startCol, Offset: startOff},
		End:   token.Position{Line: l.line, Column: l.column, Offset: l.pos},
	}
}

// --- Comments & whitespace ------------------------------------------------

func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

func (l *Lexer) skipInlineWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\f' {
		l.readChar()
	}
}

// --- Character I/O ---------------------------------------------------

func (l *Lexer) readChar() {
	// Move to the next line only when stepping past a '\n', so the
	// newline character itself keeps its own line and column.
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
		l.pos = l.readPos
	} else if b := l.input[l.readPos]; b < 0x80 {
		l.ch = rune(b)
		l.pos = l.readPos
		l.readPos++
	} else {
		r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
		l.ch = r
		l.pos = l.readPos
		l.readPos += size
	}

	l.column++
}

// peekAt returns the rune n bytes-worth of characters ahead without
// consuming, used only for the short fixed lookaheads the grammar
// needs (string prefixes, "->").
func (l *Lexer) peekAt(n int) rune {
	pos := l.readPos
	var r rune
	for i := 0; i < n; i++ {
		if pos >= len(l.input) {
			return 0
		}
		if b := l.input[pos]; b < 0x80 {
			r = rune(b)
			pos++
		} else {
			var size int
			r, size = utf8.DecodeRuneInString(l.input[pos:])
			pos += size
		}
	}
	if n == 0 {
		return l.ch
	}
	return r
}
