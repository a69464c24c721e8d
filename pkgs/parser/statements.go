package parser

import (
	"github.com/romainaugier/venom/pkgs/ast"
	"github.com/romainaugier/venom/pkgs/token"
	"github.com/romainaugier/venom/pkgs/types"
)

// consumeStatementEnd closes a simple statement: a Newline is
// consumed if present, Dedent/EOF are left for the caller, and a
// stray ';' is rejected since chaining statements on one line is an
// explicit non-goal.
func (p *Parser) consumeStatementEnd() {
	if p.failed() {
		return
	}
	if p.checkDelimiter(token.SemiColon) {
		p.setError("multiple statements on one line (using ';') are not supported yet")
		return
	}
	switch {
	case p.checkKind(token.Newline):
		p.advance()
	case p.checkKind(token.Dedent), p.isAtEnd():
		// left for the block/source loop to consume
	default:
		p.unexpected("a newline to end the statement")
	}
}

// parseIf builds the elif/else chain as a right-leaning list of *If
// nodes: each elif becomes the ElseNode of the previous one, and a
// trailing else's Body becomes the ElseNode of the last link.
func (p *Parser) parseIf() ast.Node {
	startTok := p.advance() // 'if'
	cond := p.parseExpression()
	if p.failed() {
		return nil
	}
	if _, ok := p.consumeDelimiter(token.Colon, "':' to start the if body"); !ok {
		return nil
	}
	body := p.parseBody()
	if p.failed() {
		return nil
	}

	root := ast.NewIf(cond, body, startTok.Start.Line, startTok.Start.Column)
	tail := root
	for p.checkKeyword(token.Elif) {
		elifTok := p.advance()
		econd := p.parseExpression()
		if p.failed() {
			return nil
		}
		if _, ok := p.consumeDelimiter(token.Colon, "':' to start the elif body"); !ok {
			return nil
		}
		ebody := p.parseBody()
		if p.failed() {
			return nil
		}
		next := ast.NewIf(econd, ebody, elifTok.Start.Line, elifTok.Start.Column)
		tail.ElseNode = next
		tail = next
	}
	if p.matchKeyword(token.Else) {
		if _, ok := p.consumeDelimiter(token.Colon, "':' to start the else body"); !ok {
			return nil
		}
		ebody := p.parseBody()
		if p.failed() {
			return nil
		}
		tail.ElseNode = ebody
	}
	return root
}

func (p *Parser) parseFor() ast.Node {
	startTok := p.advance() // 'for'
	target := p.parseExpression()
	if p.failed() {
		return nil
	}
	if _, ok := p.consumeKeyword(token.In, "'in'"); !ok {
		return nil
	}
	iter := p.parseExpression()
	if p.failed() {
		return nil
	}
	if _, ok := p.consumeDelimiter(token.Colon, "':' to start the for body"); !ok {
		return nil
	}
	body := p.parseBody()
	if p.failed() {
		return nil
	}
	return ast.NewFor(false, target, iter, body, startTok.Start.Line, startTok.Start.Column)
}

func (p *Parser) parseWhile() ast.Node {
	startTok := p.advance() // 'while'
	cond := p.parseExpression()
	if p.failed() {
		return nil
	}
	if _, ok := p.consumeDelimiter(token.Colon, "':' to start the while body"); !ok {
		return nil
	}
	body := p.parseBody()
	if p.failed() {
		return nil
	}
	return ast.NewFor(true, nil, cond, body, startTok.Start.Line, startTok.Start.Column)
}

func (p *Parser) parseReturn() ast.Node {
	startTok := p.advance() // 'return'
	var value ast.Node
	if !p.atStatementEnd() {
		value = p.parseExpression()
		if p.failed() {
			return nil
		}
	}
	n := ast.NewReturn(value, startTok.Start.Line, startTok.Start.Column)
	p.consumeStatementEnd()
	if p.failed() {
		return nil
	}
	return n
}

func (p *Parser) atStatementEnd() bool {
	return p.checkKind(token.Newline) || p.checkKind(token.Dedent) ||
		p.checkDelimiter(token.SemiColon) || p.isAtEnd()
}

// parseExpressionStatement parses a bare expression, then checks
// whether it continues as a plain/augmented assignment or an
// annotated assignment (`target: TYPE = value`).
func (p *Parser) parseExpressionStatement() ast.Node {
	expr := p.parseExpression()
	if p.failed() {
		return nil
	}

	if p.checkDelimiter(token.Colon) {
		p.advance()
		if !isValidAssignTarget(expr) {
			p.setError("annotated-assignment target must be a name, attribute, or subscript")
			return nil
		}
		typ, ok := p.parseTypeAnnotation()
		if !ok {
			return nil
		}
		if _, ok := p.consumeOperator(token.Assign, "'=' (annotated declarations without a value are not supported yet)"); !ok {
			return nil
		}
		value := p.parseExpression()
		if p.failed() {
			return nil
		}
		node := ast.NewAssignment(expr, token.Assign, typ, value, expr.At().Line, expr.At().Column)
		p.consumeStatementEnd()
		if p.failed() {
			return nil
		}
		return node
	}

	if op, ok := p.matchAssignOperator(); ok {
		if !isValidAssignTarget(expr) {
			p.setError("assignment target must be a name, attribute, or subscript")
			return nil
		}
		value := p.parseExpression()
		if p.failed() {
			return nil
		}
		node := ast.NewAssignment(expr, op, types.Unknown, value, expr.At().Line, expr.At().Column)
		p.consumeStatementEnd()
		if p.failed() {
			return nil
		}
		return node
	}

	p.consumeStatementEnd()
	if p.failed() {
		return nil
	}
	return expr
}

func isValidAssignTarget(n ast.Node) bool {
	switch n.(type) {
	case *ast.Symbol, *ast.AttributeAccess, *ast.Subscript:
		return true
	default:
		return false
	}
}

var assignOperators = []token.Operator{
	token.Assign, token.AdditionAssign, token.SubtractionAssign,
	token.MultiplicationAssign, token.DivisionAssign, token.ModulusAssign,
	token.FloorDivisionAssign, token.ExponentiationAssign,
	token.BitwiseAndAssign, token.BitwiseOrAssign, token.BitwiseXorAssign,
	token.BitwiseLShiftAssign, token.BitwiseRShiftAssign,
}

func (p *Parser) matchAssignOperator() (token.Operator, bool) {
	if !p.checkKind(token.Operator) {
		return 0, false
	}
	cur := p.current().Operator
	for _, op := range assignOperators {
		if cur == op {
			p.advance()
			return op, true
		}
	}
	return 0, false
}

func (p *Parser) consumeOperator(op token.Operator, expected string) (token.Token, bool) {
	if p.checkOperator(op) {
		return p.advance(), true
	}
	p.unexpected(expected)
	return token.Token{}, false
}
