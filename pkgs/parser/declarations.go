package parser

import (
	"github.com/romainaugier/venom/pkgs/ast"
	"github.com/romainaugier/venom/pkgs/token"
	"github.com/romainaugier/venom/pkgs/types"
)

// parseSource is the top-level driver: a flat sequence of statements
// and declarations until end of input. Leading/trailing blank lines
// produce Newline tokens that are simply skipped between entries.
func (p *Parser) parseSource() *ast.Source {
	src := &ast.Source{}
	p.skipBlankLines()
	for !p.isAtEnd() && !p.failed() {
		decl := p.parseStatement()
		if p.failed() {
			return nil
		}
		if decl != nil {
			src.Decls = append(src.Decls, decl)
		}
		p.skipBlankLines()
	}
	if p.failed() {
		return nil
	}
	return src
}

func (p *Parser) skipBlankLines() {
	for p.checkKind(token.Newline) {
		p.advance()
	}
}

// parseBody consumes a colon-introduced suite: NEWLINE INDENT
// stmt+ (DEDENT | EOF). EOF closing an open block implicitly (without
// a synthetic Dedent) is accepted here exactly as the lexer allows it.
func (p *Parser) parseBody() *ast.Body {
	if p.failed() {
		return nil
	}
	startTok := p.current()
	if !p.matchKind(token.Newline) {
		p.unexpected("a newline after ':'")
		return nil
	}
	if !p.matchKind(token.Indent) {
		p.unexpected("an indented block")
		return nil
	}

	body := ast.NewBody(startTok.Start.Line, startTok.Start.Column)
	for {
		p.skipBlankLines()
		if p.checkKind(token.Dedent) {
			p.advance()
			break
		}
		if p.isAtEnd() {
			break
		}
		stmt := p.parseStatement()
		if p.failed() {
			return nil
		}
		if stmt != nil {
			body.Stmts = append(body.Stmts, stmt)
		}
	}
	return body
}

// parseStatement dispatches on the current token and covers every
// declaration and statement form in one place: decorators attach to
// whichever class/function follows them regardless of nesting depth.
func (p *Parser) parseStatement() ast.Node {
	if p.failed() {
		return nil
	}

	if p.checkDelimiter(token.At) {
		return p.parseDecorated()
	}

	switch {
	case p.checkKeyword(token.Import), p.checkKeyword(token.From):
		return p.parseImport()
	case p.checkKeyword(token.Class):
		return p.parseClass(nil)
	case p.checkKeyword(token.Def):
		return p.parseFunction(nil)
	case p.checkKeyword(token.If):
		return p.parseIf()
	case p.checkKeyword(token.For):
		return p.parseFor()
	case p.checkKeyword(token.While):
		return p.parseWhile()
	case p.checkKeyword(token.Return):
		return p.parseReturn()
	case p.checkKeyword(token.Pass):
		tok := p.advance()
		n := ast.NewPass(tok.Start.Line, tok.Start.Column)
		p.consumeStatementEnd()
		return n
	case p.checkKeyword(token.Break):
		tok := p.advance()
		n := ast.NewBreak(tok.Start.Line, tok.Start.Column)
		p.consumeStatementEnd()
		return n
	case p.checkKeyword(token.Continue):
		tok := p.advance()
		n := ast.NewContinue(tok.Start.Line, tok.Start.Column)
		p.consumeStatementEnd()
		return n
	case p.checkKeyword(token.With):
		p.setError("'with' statements are not supported yet")
		return nil
	case p.checkKeyword(token.Try):
		p.setError("'try' statements are not supported yet")
		return nil
	case p.checkKeyword(token.Lambda):
		p.setError("lambda expressions are not supported yet")
		return nil
	case p.checkKeyword(token.Del):
		p.setError("'del' statements are not supported yet")
		return nil
	case p.checkKeyword(token.Global):
		p.setError("'global' statements are not supported yet")
		return nil
	case p.checkKeyword(token.Nonlocal):
		p.setError("'nonlocal' statements are not supported yet")
		return nil
	case p.checkKeyword(token.Raise):
		p.setError("'raise' statements are not supported yet")
		return nil
	case p.checkKeyword(token.Assert):
		p.setError("'assert' statements are not supported yet")
		return nil
	case p.checkKeyword(token.Yield):
		p.setError("'yield' expressions are not supported yet")
		return nil
	case p.checkKeyword(token.Async):
		p.setError("'async' declarations are not supported yet")
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

// parseDecorated consumes one or more `@name` lines and attaches them
// to the class or function declaration that must follow.
func (p *Parser) parseDecorated() ast.Node {
	var decorators []*ast.Decorator
	for p.checkDelimiter(token.At) {
		p.advance()
		nameTok, ok := p.consumeIdentifier("a decorator name")
		if !ok {
			return nil
		}
		if p.checkDelimiter(token.LParen) {
			p.setError("decorator arguments are not supported yet")
			return nil
		}
		decorators = append(decorators, ast.NewDecorator(nameTok.Lexeme, nameTok.Start.Line, nameTok.Start.Column))
		if !p.matchKind(token.Newline) {
			p.unexpected("a newline after a decorator")
			return nil
		}
		p.skipBlankLines()
	}

	switch {
	case p.checkKeyword(token.Class):
		return p.parseClass(decorators)
	case p.checkKeyword(token.Def):
		return p.parseFunction(decorators)
	default:
		p.setError("decorators can only be applied to a class or function declaration")
		return nil
	}
}

// parseImport covers both `import NAME [as ALIAS]` and
// `from NAME import SYM [as ALIAS], ...`.
func (p *Parser) parseImport() ast.Node {
	startTok := p.current()
	if p.matchKeyword(token.Import) {
		name, ok := p.parseDottedName()
		if !ok {
			return nil
		}
		imp := ast.NewImport(name, startTok.Start.Line, startTok.Start.Column)
		if p.matchKeyword(token.As) {
			alias, ok := p.consumeIdentifier("an alias name")
			if !ok {
				return nil
			}
			imp.Alias = alias.Lexeme
		}
		p.consumeStatementEnd()
		if p.failed() {
			return nil
		}
		return imp
	}

	if _, ok := p.consumeKeyword(token.From, "'from'"); !ok {
		return nil
	}
	name, ok := p.parseDottedName()
	if !ok {
		return nil
	}
	if _, ok := p.consumeKeyword(token.Import, "'import'"); !ok {
		return nil
	}
	if p.checkOperator(token.Multiplication) {
		p.setError("star imports ('from X import *') are not supported yet")
		return nil
	}

	imp := ast.NewImport(name, startTok.Start.Line, startTok.Start.Column)
	for {
		symTok, ok := p.consumeIdentifier("an imported symbol name")
		if !ok {
			return nil
		}
		sym := ast.ImportSymbol{Name: symTok.Lexeme}
		if p.matchKeyword(token.As) {
			aliasTok, ok := p.consumeIdentifier("an alias name")
			if !ok {
				return nil
			}
			sym.Alias = aliasTok.Lexeme
		}
		imp.Symbols = append(imp.Symbols, sym)
		if !p.matchDelimiter(token.Comma) {
			break
		}
	}
	p.consumeStatementEnd()
	if p.failed() {
		return nil
	}
	return imp
}

func (p *Parser) parseDottedName() (string, bool) {
	first, ok := p.consumeIdentifier("a module name")
	if !ok {
		return "", false
	}
	name := first.Lexeme
	for p.checkDelimiter(token.Dot) {
		p.advance()
		part, ok := p.consumeIdentifier("a name after '.'")
		if !ok {
			return "", false
		}
		name += "." + part.Lexeme
	}
	return name, true
}

// parseClass builds a class declaration, then re-buckets its parsed
// body into Attributes and Functions: Function statements become
// methods, assignments to a bare name become Attributes, nested Class
// declarations join Attributes too, Pass and bare-string docstring
// expression statements are discarded, and anything else is an error.
func (p *Parser) parseClass(decorators []*ast.Decorator) ast.Node {
	p.advance() // 'class'
	nameTok, ok := p.consumeIdentifier("a class name")
	if !ok {
		return nil
	}

	class := ast.NewClass(nameTok.Lexeme, decorators, nameTok.Start.Line, nameTok.Start.Column)

	if p.matchDelimiter(token.LParen) {
		if !p.checkDelimiter(token.RParen) {
			for {
				base := p.parseExpression()
				if p.failed() {
					return nil
				}
				class.Bases = append(class.Bases, base)
				if !p.matchDelimiter(token.Comma) {
					break
				}
				if p.checkDelimiter(token.RParen) {
					break
				}
			}
		}
		if _, ok := p.consumeDelimiter(token.RParen, "')' to close the base-class list"); !ok {
			return nil
		}
	}

	if _, ok := p.consumeDelimiter(token.Colon, "':' to start the class body"); !ok {
		return nil
	}
	body := p.parseBody()
	if p.failed() {
		return nil
	}

	for _, stmt := range body.Stmts {
		switch n := stmt.(type) {
		case *ast.Function:
			class.Functions = append(class.Functions, n)
		case *ast.Class:
			class.Attributes = append(class.Attributes, n)
		case *ast.Assignment:
			sym, ok := n.Target.(*ast.Symbol)
			if !ok {
				p.setError("only assignment to a plain name is allowed directly in a class body")
				return nil
			}
			class.Attributes = append(class.Attributes, ast.NewAttribute(
				sym.Name, n.Type, n.Value, sym.At().Line, sym.At().Column,
			))
		case *ast.Pass:
			// discarded
		case *ast.Literal:
			if n.LiteralKind != token.LiteralString && n.LiteralKind != token.LiteralUnicodeString {
				p.setError("statement is not allowed directly in a class body")
				return nil
			}
			// bare docstring, discarded
		default:
			p.setError("statement is not allowed directly in a class body")
			return nil
		}
	}
	return class
}

// parseFunction builds a function declaration: name, parameter list,
// optional return-type annotation, and body.
func (p *Parser) parseFunction(decorators []*ast.Decorator) ast.Node {
	p.advance() // 'def'
	nameTok, ok := p.consumeIdentifier("a function name")
	if !ok {
		return nil
	}
	if _, ok := p.consumeDelimiter(token.LParen, "'(' to start the parameter list"); !ok {
		return nil
	}
	params, ok := p.parseParameterList()
	if !ok {
		return nil
	}
	if _, ok := p.consumeDelimiter(token.RParen, "')' to end the parameter list"); !ok {
		return nil
	}

	fn := ast.NewFunction(nameTok.Lexeme, decorators, params, nameTok.Start.Line, nameTok.Start.Column)
	if p.matchDelimiter(token.RightArrow) {
		rt, ok := p.parseTypeAnnotation()
		if !ok {
			return nil
		}
		fn.ReturnType = rt
	}

	if _, ok := p.consumeDelimiter(token.Colon, "':' to start the function body"); !ok {
		return nil
	}
	fn.Body = p.parseBody()
	if p.failed() {
		return nil
	}
	return fn
}

// parseParameterList enforces that once a parameter has a default
// value, every parameter after it must also have one, and rejects
// *args/**kwargs as an explicit non-goal.
func (p *Parser) parseParameterList() ([]*ast.Parameter, bool) {
	var params []*ast.Parameter
	seenDefault := false
	for !p.checkDelimiter(token.RParen) {
		if p.checkOperator(token.Multiplication) || p.checkOperator(token.Exponentiation) {
			p.setError("variadic parameters ('*args'/'**kwargs') are not supported yet")
			return nil, false
		}
		nameTok, ok := p.consumeIdentifier("a parameter name")
		if !ok {
			return nil, false
		}
		param := ast.NewParameter(nameTok.Lexeme, types.Unknown, nil, nameTok.Start.Line, nameTok.Start.Column)
		if p.matchDelimiter(token.Colon) {
			t, ok := p.parseTypeAnnotation()
			if !ok {
				return nil, false
			}
			param.Type = t
		}
		if p.matchOperator(token.Assign) {
			def := p.parseExpression()
			if p.failed() {
				return nil, false
			}
			param.Default = def
			seenDefault = true
		} else if seenDefault {
			p.setError("a non-default parameter cannot follow a default parameter")
			return nil, false
		}
		params = append(params, param)
		if !p.matchDelimiter(token.Comma) {
			break
		}
	}
	return params, true
}

// parseTypeAnnotation resolves a bare or dotted annotation name to a
// types.Type, stripping a "typing." prefix and rejecting the two
// forms this front-end does not model: string forward references and
// subscripted generics.
func (p *Parser) parseTypeAnnotation() (types.Type, bool) {
	if p.checkKind(token.Literal) {
		lk := p.current().LiteralKind
		if lk == token.LiteralString || lk == token.LiteralUnicodeString || lk == token.LiteralRawString {
			p.setError("string-literal type hints (forward references) are not supported yet")
			return types.Unknown, false
		}
	}
	name, ok := p.parseDottedName()
	if !ok {
		return types.Unknown, false
	}
	if p.checkDelimiter(token.LBracket) {
		p.setError("generic type annotations (e.g. list[int]) are not supported yet")
		return types.Unknown, false
	}
	return types.FromAnnotationName(name), true
}
