// Package parser implements a recursive-descent parser over the
// token stream produced by pkgs/lexer, building the tree of node
// types defined in pkgs/ast. The driver shape (a flat token slice, a
// cursor, peek/advance/check/match/consume helpers) is a common
// recursive-descent pattern, but error handling here is deliberately
// simpler than a multi-error-collecting parser: this parser stops at
// the very first error and returns, never attempting recovery or
// synchronization. Parse methods check p.err (at entry or right after
// each sub-parse) and return as soon as it is set, so a latched error
// unwinds the whole call stack without doing further, possibly
// misleading, work.
package parser

import (
	"github.com/romainaugier/venom/pkgs/ast"
	"github.com/romainaugier/venom/pkgs/token"
)

// Parser walks a fixed token slice with a single cursor; nothing here
// needs to be safe for concurrent use.
type Parser struct {
	tokens   []token.Token
	pos      int
	input    string
	tabWidth int
	err      *ParseError
}

// Parse builds an AST from tok (as produced by lexer.Lex) and the
// original input text (used only to render error snippets). It never
// returns a Go error value; failure is reported through the returned
// AST's Error field. Diagnostic snippets are rendered assuming a tab
// stops every column; use ParseWithTabWidth to line up carets against
// real tab-expanded text.
func Parse(tok []token.Token, input string) *ast.AST {
	return ParseWithTabWidth(tok, input, 1)
}

// ParseWithTabWidth is Parse, but diagnostic snippets expand tabs to
// tabWidth columns before placing the caret.
func ParseWithTabWidth(tok []token.Token, input string, tabWidth int) *ast.AST {
	p := &Parser{tokens: tok, input: input, tabWidth: tabWidth}
	root := p.parseSource()

	result := ast.New()
	if p.err != nil {
		result.Error = p.err.Error()
		return result
	}
	result.Root = root
	return result
}

// --- cursor helpers -------------------------------------------------

func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF sentinel
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx < 0 || idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) isAtEnd() bool { return p.current().Kind == token.EOF }

func (p *Parser) checkKind(k token.Kind) bool { return p.current().Kind == k }

func (p *Parser) checkKeyword(kw token.Keyword) bool {
	t := p.current()
	return t.Kind == token.Keyword && t.Keyword == kw
}

func (p *Parser) checkDelimiter(d token.Delimiter) bool {
	t := p.current()
	return t.Kind == token.Delimiter && t.Delimiter == d
}

func (p *Parser) checkOperator(op token.Operator) bool {
	t := p.current()
	return t.Kind == token.Operator && t.Operator == op
}

func (p *Parser) matchKeyword(kw token.Keyword) bool {
	if p.checkKeyword(kw) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchDelimiter(d token.Delimiter) bool {
	if p.checkDelimiter(d) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchOperator(op token.Operator) bool {
	if p.checkOperator(op) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchKind(k token.Kind) bool {
	if p.checkKind(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consumeKeyword(kw token.Keyword, expected string) (token.Token, bool) {
	if p.checkKeyword(kw) {
		return p.advance(), true
	}
	p.unexpected(expected)
	return token.Token{}, false
}

func (p *Parser) consumeDelimiter(d token.Delimiter, expected string) (token.Token, bool) {
	if p.checkDelimiter(d) {
		return p.advance(), true
	}
	p.unexpected(expected)
	return token.Token{}, false
}

func (p *Parser) consumeIdentifier(expected string) (token.Token, bool) {
	if p.checkKind(token.Identifier) {
		return p.advance(), true
	}
	p.unexpected(expected)
	return token.Token{}, false
}

func (p *Parser) failed() bool { return p.err != nil }
