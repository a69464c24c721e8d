package parser

import (
	"github.com/romainaugier/venom/pkgs/ast"
	"github.com/romainaugier/venom/pkgs/token"
)

// parseExpression is the ladder's entry point: ternary is the lowest
// (loosest-binding) level. Each level below calls straight into the
// next without an explicit precedence table, the direct-recursive-
// descent style the grammar's 13 levels were designed for.
func (p *Parser) parseExpression() ast.Node {
	return p.parseTernary()
}

// parseTernary handles `THEN if COND else ELSE`, right-associative:
// the else-branch recurses back into parseTernary so a chain of
// conditionals nests on the right.
func (p *Parser) parseTernary() ast.Node {
	if p.failed() {
		return nil
	}
	then := p.parseLogicalOr()
	if p.failed() {
		return nil
	}
	if !p.checkKeyword(token.If) {
		return then
	}
	tok := p.advance()
	cond := p.parseLogicalOr()
	if p.failed() {
		return nil
	}
	if _, ok := p.consumeKeyword(token.Else, "'else' to complete the conditional expression"); !ok {
		return nil
	}
	els := p.parseTernary()
	if p.failed() {
		return nil
	}
	return ast.NewTernOp(cond, then, els, tok.Start.Line, tok.Start.Column)
}

func (p *Parser) parseLogicalOr() ast.Node {
	left := p.parseLogicalAnd()
	for !p.failed() && p.checkKeyword(token.Or) {
		tok := p.advance()
		right := p.parseLogicalAnd()
		if p.failed() {
			return nil
		}
		left = ast.NewBinOp(token.LogicalOr, left, right, tok.Start.Line, tok.Start.Column)
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Node {
	left := p.parseComparison()
	for !p.failed() && p.checkKeyword(token.And) {
		tok := p.advance()
		right := p.parseComparison()
		if p.failed() {
			return nil
		}
		left = ast.NewBinOp(token.LogicalAnd, left, right, tok.Start.Line, tok.Start.Column)
	}
	return left
}

// parseComparison implements a single, non-chained comparison: once
// one comparison has been built, a second comparison operator
// immediately following is an explicit error rather than silently
// chaining (`a < b < c` is rejected, matching real Python's chained
// comparisons never being modeled here).
func (p *Parser) parseComparison() ast.Node {
	left := p.parseBitwiseOr()
	if p.failed() {
		return nil
	}
	op, tok, ok := p.matchComparisonOperator()
	if !ok {
		return left
	}
	right := p.parseBitwiseOr()
	if p.failed() {
		return nil
	}
	node := ast.NewBinOp(op, left, right, tok.Start.Line, tok.Start.Column)
	if p.startsComparison() {
		p.setError("chained comparisons not fully supported (e.g. 'a < b < c')")
		return nil
	}
	return node
}

func (p *Parser) matchComparisonOperator() (token.Operator, token.Token, bool) {
	if p.checkKind(token.Operator) {
		switch p.current().Operator {
		case token.ComparatorEquals, token.ComparatorNotEquals,
			token.ComparatorGreaterThan, token.ComparatorLessThan,
			token.ComparatorGreaterEqualsThan, token.ComparatorLessEqualsThan:
			op := p.current().Operator
			tok := p.advance()
			return op, tok, true
		}
	}
	if p.checkKeyword(token.Is) {
		tok := p.advance()
		if p.matchKeyword(token.Not) {
			return token.IdentityIsNot, tok, true
		}
		return token.IdentityIs, tok, true
	}
	if p.checkKeyword(token.In) {
		tok := p.advance()
		return token.MembershipIn, tok, true
	}
	if p.checkKeyword(token.Not) && p.peekAt(1).Kind == token.Keyword && p.peekAt(1).Keyword == token.In {
		tok := p.advance()
		p.advance()
		return token.MembershipNotIn, tok, true
	}
	return 0, token.Token{}, false
}

func (p *Parser) startsComparison() bool {
	if p.checkKind(token.Operator) {
		switch p.current().Operator {
		case token.ComparatorEquals, token.ComparatorNotEquals,
			token.ComparatorGreaterThan, token.ComparatorLessThan,
			token.ComparatorGreaterEqualsThan, token.ComparatorLessEqualsThan:
			return true
		}
	}
	if p.checkKeyword(token.Is) || p.checkKeyword(token.In) {
		return true
	}
	if p.checkKeyword(token.Not) && p.peekAt(1).Kind == token.Keyword && p.peekAt(1).Keyword == token.In {
		return true
	}
	return false
}

func (p *Parser) parseBitwiseOr() ast.Node {
	left := p.parseBitwiseXor()
	for !p.failed() && p.checkOperator(token.BitwiseOr) {
		tok := p.advance()
		right := p.parseBitwiseXor()
		if p.failed() {
			return nil
		}
		left = ast.NewBinOp(token.BitwiseOr, left, right, tok.Start.Line, tok.Start.Column)
	}
	return left
}

func (p *Parser) parseBitwiseXor() ast.Node {
	left := p.parseBitwiseAnd()
	for !p.failed() && p.checkOperator(token.BitwiseXor) {
		tok := p.advance()
		right := p.parseBitwiseAnd()
		if p.failed() {
			return nil
		}
		left = ast.NewBinOp(token.BitwiseXor, left, right, tok.Start.Line, tok.Start.Column)
	}
	return left
}

func (p *Parser) parseBitwiseAnd() ast.Node {
	left := p.parseShift()
	for !p.failed() && p.checkOperator(token.BitwiseAnd) {
		tok := p.advance()
		right := p.parseShift()
		if p.failed() {
			return nil
		}
		left = ast.NewBinOp(token.BitwiseAnd, left, right, tok.Start.Line, tok.Start.Column)
	}
	return left
}

func (p *Parser) parseShift() ast.Node {
	left := p.parseAdditive()
	for !p.failed() && (p.checkOperator(token.BitwiseLShift) || p.checkOperator(token.BitwiseRShift)) {
		op := p.current().Operator
		tok := p.advance()
		right := p.parseAdditive()
		if p.failed() {
			return nil
		}
		left = ast.NewBinOp(op, left, right, tok.Start.Line, tok.Start.Column)
	}
	return left
}

func (p *Parser) parseAdditive() ast.Node {
	left := p.parseMultiplicative()
	for !p.failed() && (p.checkOperator(token.Addition) || p.checkOperator(token.Subtraction)) {
		op := p.current().Operator
		tok := p.advance()
		right := p.parseMultiplicative()
		if p.failed() {
			return nil
		}
		left = ast.NewBinOp(op, left, right, tok.Start.Line, tok.Start.Column)
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Node {
	left := p.parseUnary()
	for !p.failed() && (p.checkOperator(token.Multiplication) || p.checkOperator(token.Division) ||
		p.checkOperator(token.Modulus) || p.checkOperator(token.FloorDivision)) {
		op := p.current().Operator
		tok := p.advance()
		right := p.parseUnary()
		if p.failed() {
			return nil
		}
		left = ast.NewBinOp(op, left, right, tok.Start.Line, tok.Start.Column)
	}
	return left
}

// parseUnary is right-recursive (`- - x` parses as `-(-x)`) and also
// handles logical `not`, which this grammar binds at unary strength
// rather than Python's true (much looser) `not` precedence.
func (p *Parser) parseUnary() ast.Node {
	if p.failed() {
		return nil
	}
	if p.checkOperator(token.Addition) || p.checkOperator(token.Subtraction) || p.checkOperator(token.BitwiseNot) {
		op := p.current().Operator
		tok := p.advance()
		operand := p.parseUnary()
		if p.failed() {
			return nil
		}
		return ast.NewUnOp(op, operand, tok.Start.Line, tok.Start.Column)
	}
	if p.checkKeyword(token.Not) {
		tok := p.advance()
		operand := p.parseUnary()
		if p.failed() {
			return nil
		}
		return ast.NewUnOp(token.LogicalNot, operand, tok.Start.Line, tok.Start.Column)
	}
	return p.parsePower()
}

// parsePower is right-associative: the exponent re-enters at the
// unary level so `2 ** -3 ** 2` parses as `2 ** (-(3 ** 2))`.
func (p *Parser) parsePower() ast.Node {
	base := p.parsePrimary()
	if p.failed() {
		return nil
	}
	if !p.checkOperator(token.Exponentiation) {
		return base
	}
	tok := p.advance()
	exponent := p.parseUnary()
	if p.failed() {
		return nil
	}
	return ast.NewBinOp(token.Exponentiation, base, exponent, tok.Start.Line, tok.Start.Column)
}

// parsePrimary parses one atom, then a postfix chain of calls,
// attribute accesses, and subscripts in any order and any number.
func (p *Parser) parsePrimary() ast.Node {
	atom := p.parseAtom()
	if p.failed() {
		return nil
	}
	for {
		switch {
		case p.checkDelimiter(token.LParen):
			tok := p.advance()
			args, kwargs, ok := p.parseArguments()
			if !ok {
				return nil
			}
			if _, ok := p.consumeDelimiter(token.RParen, "')' to end the call"); !ok {
				return nil
			}
			atom = ast.NewFCall(atom, args, kwargs, tok.Start.Line, tok.Start.Column)
		case p.checkDelimiter(token.Dot):
			tok := p.advance()
			nameTok, ok := p.consumeIdentifier("a name after '.'")
			if !ok {
				return nil
			}
			atom = ast.NewAttributeAccess(atom, nameTok.Lexeme, tok.Start.Line, tok.Start.Column)
		case p.checkDelimiter(token.LBracket):
			tok := p.advance()
			index := p.parseSubscriptContent()
			if p.failed() {
				return nil
			}
			if _, ok := p.consumeDelimiter(token.RBracket, "']' to end the subscript"); !ok {
				return nil
			}
			atom = ast.NewSubscript(atom, index, tok.Start.Line, tok.Start.Column)
		default:
			return atom
		}
	}
}

// parseArguments parses a call's argument list: positional arguments,
// then keyword arguments (`name=value`), with every positional
// argument required to precede any keyword argument.
func (p *Parser) parseArguments() ([]ast.Node, ast.Kwargs, bool) {
	var args []ast.Node
	kwargs := ast.Kwargs{}
	if p.checkDelimiter(token.RParen) {
		return args, kwargs, true
	}
	seenKwarg := false
	for {
		if p.checkKind(token.Identifier) && p.peekAt(1).Kind == token.Operator && p.peekAt(1).Operator == token.Assign {
			nameTok := p.advance()
			p.advance() // '='
			value := p.parseExpression()
			if p.failed() {
				return nil, ast.Kwargs{}, false
			}
			kwargs.Names = append(kwargs.Names, nameTok.Lexeme)
			kwargs.Values = append(kwargs.Values, value)
			seenKwarg = true
		} else {
			if seenKwarg {
				p.setError("positional argument cannot follow a keyword argument")
				return nil, ast.Kwargs{}, false
			}
			value := p.parseExpression()
			if p.failed() {
				return nil, ast.Kwargs{}, false
			}
			args = append(args, value)
		}
		if !p.matchDelimiter(token.Comma) {
			break
		}
		if p.checkDelimiter(token.RParen) {
			break
		}
	}
	return args, kwargs, true
}

// parseSubscriptContent disambiguates `obj[expr]` from `obj[a:b:c]`:
// the first component is always parsed as a plain expression, and a
// colon immediately following it promotes the whole thing to a Slice.
func (p *Parser) parseSubscriptContent() ast.Node {
	tok := p.current()
	var start ast.Node
	if !p.checkDelimiter(token.Colon) && !p.checkDelimiter(token.RBracket) {
		start = p.parseExpression()
		if p.failed() {
			return nil
		}
	}
	if !p.checkDelimiter(token.Colon) {
		return start
	}
	p.advance()
	var stop ast.Node
	if !p.checkDelimiter(token.Colon) && !p.checkDelimiter(token.RBracket) {
		stop = p.parseExpression()
		if p.failed() {
			return nil
		}
	}
	var step ast.Node
	if p.matchDelimiter(token.Colon) {
		if !p.checkDelimiter(token.RBracket) {
			step = p.parseExpression()
			if p.failed() {
				return nil
			}
		}
	}
	return ast.NewSlice(start, stop, step, tok.Start.Line, tok.Start.Column)
}

// parseAtom parses one literal, name, or bracketed/parenthesized form.
func (p *Parser) parseAtom() ast.Node {
	tok := p.current()
	switch {
	case tok.Kind == token.Literal && tok.LiteralKind == token.LiteralInteger:
		p.advance()
		return ast.NewIntLiteral(tok.Lexeme, tok.Start.Line, tok.Start.Column)
	case tok.Kind == token.Literal && tok.LiteralKind == token.LiteralFloat:
		p.advance()
		return ast.NewFloatLiteral(tok.Lexeme, tok.Start.Line, tok.Start.Column)
	case tok.Kind == token.Literal:
		p.advance()
		return ast.NewStringLiteral(tok.Lexeme, tok.LiteralKind, tok.Start.Line, tok.Start.Column)
	case tok.Kind == token.Keyword && tok.Keyword == token.True:
		p.advance()
		return ast.NewBoolLiteral(true, tok.Start.Line, tok.Start.Column)
	case tok.Kind == token.Keyword && tok.Keyword == token.False:
		p.advance()
		return ast.NewBoolLiteral(false, tok.Start.Line, tok.Start.Column)
	case tok.Kind == token.Keyword && tok.Keyword == token.None:
		p.advance()
		return ast.NewNoneLiteral(tok.Start.Line, tok.Start.Column)
	case tok.Kind == token.Identifier:
		p.advance()
		return ast.NewSymbol(tok.Lexeme, tok.Start.Line, tok.Start.Column)
	case tok.Kind == token.Delimiter && tok.Delimiter == token.LBracket:
		return p.parseListLiteral()
	case tok.Kind == token.Delimiter && tok.Delimiter == token.LBrace:
		return p.parseBraceLiteral()
	case tok.Kind == token.Delimiter && tok.Delimiter == token.LParen:
		return p.parseParenForm()
	case tok.Kind == token.Keyword && tok.Keyword == token.Lambda:
		p.setError("lambda expressions are not supported yet")
		return nil
	default:
		p.unexpected("an expression")
		return nil
	}
}

func (p *Parser) parseListLiteral() ast.Node {
	tok := p.advance() // '['
	var elements []ast.Node
	if !p.checkDelimiter(token.RBracket) {
		for {
			el := p.parseExpression()
			if p.failed() {
				return nil
			}
			elements = append(elements, el)
			if !p.matchDelimiter(token.Comma) {
				break
			}
			if p.checkDelimiter(token.RBracket) {
				break
			}
		}
	}
	if _, ok := p.consumeDelimiter(token.RBracket, "']' to end the list literal"); !ok {
		return nil
	}
	return ast.NewListLiteral(elements, tok.Start.Line, tok.Start.Column)
}

// parseBraceLiteral disambiguates `{}`/`{k: v, ...}` (dict) from
// `{a, b, ...}` (set): the first element decides, since a colon right
// after it is the only thing that distinguishes the two forms.
func (p *Parser) parseBraceLiteral() ast.Node {
	tok := p.advance() // '{'
	if p.checkDelimiter(token.RBrace) {
		p.advance()
		return ast.NewDictLiteral(nil, nil, tok.Start.Line, tok.Start.Column)
	}

	first := p.parseExpression()
	if p.failed() {
		return nil
	}

	if p.matchDelimiter(token.Colon) {
		firstValue := p.parseExpression()
		if p.failed() {
			return nil
		}
		keys := []ast.Node{first}
		values := []ast.Node{firstValue}
		for p.matchDelimiter(token.Comma) {
			if p.checkDelimiter(token.RBrace) {
				break
			}
			k := p.parseExpression()
			if p.failed() {
				return nil
			}
			if _, ok := p.consumeDelimiter(token.Colon, "':' between a dict key and its value"); !ok {
				return nil
			}
			v := p.parseExpression()
			if p.failed() {
				return nil
			}
			keys = append(keys, k)
			values = append(values, v)
		}
		if _, ok := p.consumeDelimiter(token.RBrace, "'}' to end the dict literal"); !ok {
			return nil
		}
		return ast.NewDictLiteral(keys, values, tok.Start.Line, tok.Start.Column)
	}

	elements := []ast.Node{first}
	for p.matchDelimiter(token.Comma) {
		if p.checkDelimiter(token.RBrace) {
			break
		}
		el := p.parseExpression()
		if p.failed() {
			return nil
		}
		elements = append(elements, el)
	}
	if _, ok := p.consumeDelimiter(token.RBrace, "'}' to end the set literal"); !ok {
		return nil
	}
	return ast.NewSetLiteral(elements, tok.Start.Line, tok.Start.Column)
}

// parseParenForm disambiguates a parenthesized expression from a
// tuple literal: a trailing comma (or any comma at all) makes it a
// tuple; an empty `()` is the empty tuple.
func (p *Parser) parseParenForm() ast.Node {
	tok := p.advance() // '('
	if p.checkDelimiter(token.RParen) {
		p.advance()
		return ast.NewTupleLiteral(nil, tok.Start.Line, tok.Start.Column)
	}

	first := p.parseExpression()
	if p.failed() {
		return nil
	}

	if !p.checkDelimiter(token.Comma) {
		if _, ok := p.consumeDelimiter(token.RParen, "')' to close the parenthesized expression"); !ok {
			return nil
		}
		return first
	}

	elements := []ast.Node{first}
	for p.matchDelimiter(token.Comma) {
		if p.checkDelimiter(token.RParen) {
			break
		}
		el := p.parseExpression()
		if p.failed() {
			return nil
		}
		elements = append(elements, el)
	}
	if _, ok := p.consumeDelimiter(token.RParen, "')' to close the tuple literal"); !ok {
		return nil
	}
	return ast.NewTupleLiteral(elements, tok.Start.Line, tok.Start.Column)
}
