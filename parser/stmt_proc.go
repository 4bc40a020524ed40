package parser

import (
	"vb6syntax/diag"
	"vb6syntax/syntax"
)

// parseProcedure parses Sub, Function, and Property blocks, with any
// leading visibility and Static modifiers. The header is followed by a
// StatementList body and the matching End closer.
func (p *Parser) parseProcedure() {
	kw, closer, kind := p.procShape()
	p.b.StartNode(kind)
	p.bumpModifiers()
	p.expect(kw, diag.SynExpectKeyword, "expected a procedure keyword")
	if kw == syntax.KwProperty {
		if p.atAny(syntax.KwGet, syntax.KwLet, syntax.KwSet) {
			p.bump()
		} else {
			p.err(diag.SynExpectKeyword, "expected Get, Let, or Set after Property")
		}
	}
	p.expectName("expected a procedure name")
	if p.at(syntax.LParen) {
		p.parseParameterList()
	}
	if p.at(syntax.KwAs) {
		p.parseAsClause()
	}

	p.b.StartNode(syntax.StatementList)
	p.parseStatements(stopSet{endWith: []syntax.Kind{closer}})
	p.b.FinishNode()

	if p.at(syntax.KwEnd) && p.peekN(1).Kind == closer {
		p.bump()
		p.bump()
	} else {
		p.errWithNote(diag.SynUnterminatedBlock, "procedure is not closed",
			"closed at end of file")
	}
	p.b.FinishNode()
}

// procShape finds which procedure keyword follows the modifiers and
// picks the node kind and closer for it.
func (p *Parser) procShape() (kw, closer, kind syntax.Kind) {
	n := 0
	for {
		switch p.peekN(n).Kind {
		case syntax.KwPublic, syntax.KwPrivate, syntax.KwGlobal, syntax.KwFriend, syntax.KwStatic:
			n++
			continue
		case syntax.KwFunction:
			return syntax.KwFunction, syntax.KwFunction, syntax.FunctionStatement
		case syntax.KwProperty:
			return syntax.KwProperty, syntax.KwProperty, syntax.PropertyStatement
		default:
			return syntax.KwSub, syntax.KwSub, syntax.SubStatement
		}
	}
}

// parseParameterList parses a parenthesized formal parameter list.
func (p *Parser) parseParameterList() {
	p.b.StartNode(syntax.ParameterList)
	p.bump() // (
	for {
		switch {
		case p.at(syntax.RParen):
			p.bump()
			p.b.FinishNode()
			return
		case p.atAny(syntax.Newline, syntax.EOF):
			p.err(diag.SynUnclosedParen, "parameter list is not closed before end of line")
			p.b.FinishNode()
			return
		case p.at(syntax.Comma):
			p.bump()
		default:
			p.parseParameter()
		}
	}
}

// parseParameter parses one formal:
// [Optional] [ByVal|ByRef] [ParamArray] name[()] [As type] [= default].
func (p *Parser) parseParameter() {
	p.b.StartNode(syntax.Parameter)
	for p.atAny(syntax.KwOptional, syntax.KwByVal, syntax.KwByRef, syntax.KwParamArray) {
		p.bump()
	}
	if !p.atIdentLike() {
		p.err(diag.SynExpectIdentifier, "expected a parameter name")
		p.bumpUnknown()
		p.b.FinishNode()
		return
	}
	p.bump()
	if p.at(syntax.LParen) {
		p.bump()
		p.expect(syntax.RParen, diag.SynUnclosedParen, "expected ) after array parameter")
	}
	if p.at(syntax.KwAs) {
		p.parseAsClause()
	}
	if p.at(syntax.Eq) {
		p.bump()
		if !p.parseExpression() {
			p.err(diag.SynExpectExpression, "expected a default value after =")
		}
	}
	p.b.FinishNode()
}
