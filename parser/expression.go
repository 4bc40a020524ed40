package parser

import (
	"vb6syntax/diag"
	"vb6syntax/syntax"
)

// parseExpression parses one expression at the lowest precedence.
// Reports and returns false without consuming anything when no
// expression can start here.
func (p *Parser) parseExpression() bool {
	return p.parseBinary(precImp)
}

// parseBinary is the precedence climbing loop. Finished operands are
// wrapped into BinaryExpression nodes via checkpoints, so the tree is
// built left to right without backtracking.
func (p *Parser) parseBinary(minPrec int) bool {
	cp := p.b.Checkpoint()
	if !p.parseUnary() {
		return false
	}
	for {
		prec, rightAssoc := binaryPrec(p.peek().Kind)
		if prec < minPrec {
			return true
		}
		p.b.StartNodeAt(cp, syntax.BinaryExpression)
		p.bump()
		next := prec + 1
		if rightAssoc {
			next = prec
		}
		if !p.parseBinary(next) {
			p.err(diag.SynExpectOperand, "operator needs a right-hand operand")
		}
		p.b.FinishNode()
	}
}

func (p *Parser) parseUnary() bool {
	switch p.peek().Kind {
	case syntax.Minus, syntax.Plus:
		p.b.StartNode(syntax.UnaryExpression)
		p.bump()
		if !p.parseBinary(precPower) {
			p.err(diag.SynExpectOperand, "unary operator needs an operand")
		}
		p.b.FinishNode()
		return true
	case syntax.KwNot:
		p.b.StartNode(syntax.UnaryExpression)
		p.bump()
		// Not binds looser than comparisons: Not a = b negates a = b.
		if !p.parseBinary(precComparison) {
			p.err(diag.SynExpectOperand, "Not needs an operand")
		}
		p.b.FinishNode()
		return true
	case syntax.KwNew:
		p.b.StartNode(syntax.NewExpression)
		p.bump()
		p.parseTypeRef()
		p.b.FinishNode()
		return true
	case syntax.KwTypeOf:
		p.b.StartNode(syntax.TypeOfExpression)
		p.bump()
		if !p.parseBinary(precConcat) {
			p.err(diag.SynExpectExpression, "TypeOf needs an object expression")
		}
		p.expect(syntax.KwIs, diag.SynExpectKeyword, "expected Is after TypeOf expression")
		p.parseTypeRef()
		p.b.FinishNode()
		return true
	case syntax.KwAddressOf:
		p.b.StartNode(syntax.AddressOfExpression)
		p.bump()
		p.parsePostfix()
		p.b.FinishNode()
		return true
	default:
		return p.parsePostfix()
	}
}

// parsePostfix parses a primary followed by any chain of member
// accesses (., !) and call argument lists.
func (p *Parser) parsePostfix() bool {
	cp := p.b.Checkpoint()
	if !p.parsePrimary() {
		return false
	}
	for {
		switch p.peek().Kind {
		case syntax.Dot, syntax.Bang:
			p.b.StartNodeAt(cp, syntax.MemberAccessExpression)
			p.bump()
			p.expectName("expected a member name")
			p.b.FinishNode()
		case syntax.LParen:
			p.b.StartNodeAt(cp, syntax.CallExpression)
			p.parseParenArguments()
			p.b.FinishNode()
		default:
			return true
		}
	}
}

func (p *Parser) parsePrimary() bool {
	tok := p.peek()
	switch {
	case tok.Kind == syntax.NumberLit, tok.Kind == syntax.StringLit, tok.Kind == syntax.DateLit,
		tok.Kind == syntax.KwTrue, tok.Kind == syntax.KwFalse,
		tok.Kind == syntax.KwNothing, tok.Kind == syntax.KwNull, tok.Kind == syntax.KwEmpty:
		p.b.StartNode(syntax.LiteralExpression)
		p.bump()
		p.b.FinishNode()
		return true
	case tok.Kind == syntax.KwMe:
		p.b.StartNode(syntax.IdentifierExpression)
		p.bump()
		p.b.FinishNode()
		return true
	case tok.IsIdentLike():
		p.b.StartNode(syntax.IdentifierExpression)
		p.bump()
		p.b.FinishNode()
		return true
	case tok.Kind == syntax.LParen:
		p.b.StartNode(syntax.ParenthesizedExpression)
		p.bump()
		if !p.parseExpression() {
			p.err(diag.SynExpectExpression, "expected an expression after (")
		}
		p.expect(syntax.RParen, diag.SynUnclosedParen, "expected )")
		p.b.FinishNode()
		return true
	case tok.Kind == syntax.Dot, tok.Kind == syntax.Bang:
		// With-relative member: .Name or !Key inside a With block.
		p.b.StartNode(syntax.MemberAccessExpression)
		p.bump()
		p.expectName("expected a member name")
		p.b.FinishNode()
		return true
	default:
		return false
	}
}

// parseTypeRef parses a type reference: a builtin type keyword or a
// dotted name (Lib.Class).
func (p *Parser) parseTypeRef() {
	if p.atBuiltinType() {
		p.b.StartNode(syntax.IdentifierExpression)
		p.bump()
		p.b.FinishNode()
		return
	}
	if !p.atIdentLike() {
		p.err(diag.SynExpectIdentifier, "expected a type name")
		return
	}
	cp := p.b.Checkpoint()
	p.b.StartNode(syntax.IdentifierExpression)
	p.bump()
	p.b.FinishNode()
	for p.at(syntax.Dot) {
		p.b.StartNodeAt(cp, syntax.MemberAccessExpression)
		p.bump()
		p.expectName("expected a type name after .")
		p.b.FinishNode()
	}
}

func (p *Parser) atBuiltinType() bool {
	switch p.peek().Kind {
	case syntax.KwBoolean, syntax.KwByte, syntax.KwCurrency, syntax.KwDate,
		syntax.KwDecimal, syntax.KwDouble, syntax.KwInteger, syntax.KwLong,
		syntax.KwObject, syntax.KwSingle, syntax.KwString, syntax.KwVariant,
		syntax.KwAny:
		return true
	}
	return false
}

// parseParenArguments parses ( arg, arg, ... ) including empty slots,
// named arguments (name:=expr), and #file-number arguments.
func (p *Parser) parseParenArguments() {
	p.b.StartNode(syntax.ArgumentList)
	p.bump() // (
	for {
		switch {
		case p.at(syntax.RParen):
			p.bump()
			p.b.FinishNode()
			return
		case p.atAny(syntax.Newline, syntax.EOF):
			p.err(diag.SynUnclosedParen, "argument list is not closed before end of line")
			p.b.FinishNode()
			return
		case p.at(syntax.Comma):
			p.bump()
		default:
			if !p.parseArgument() {
				p.bumpUnknown()
			}
		}
	}
}

// parseBareArguments parses the unparenthesized argument list of an
// implicit call statement: MsgBox "hi", vbOKOnly. Print-style separators
// (;) and file numbers (#1) are accepted. stopAtElse keeps single-line
// If bodies intact.
func (p *Parser) parseBareArguments(stopAtElse bool) {
	p.b.StartNode(syntax.ArgumentList)
	for {
		if p.atLineEnd() || (stopAtElse && p.at(syntax.KwElse)) {
			p.b.FinishNode()
			return
		}
		if p.atAny(syntax.Comma, syntax.Semicolon) {
			p.bump()
			continue
		}
		// Command statements thread hard keywords between their
		// arguments: Open "f" For Input As #1, Line Input #1, s.
		// Those connectives stay as plain leaves of the list.
		if k := p.peek().Kind; k.IsKeyword() && !startsExpression(p.peek()) {
			p.bump()
			continue
		}
		if !p.parseArgument() {
			p.err(diag.SynExpectExpression, "expected an argument")
			p.bumpUnknown()
		}
	}
}

// startsExpression reports whether a token can begin an expression.
func startsExpression(tok syntax.Token) bool {
	switch tok.Kind {
	case syntax.NumberLit, syntax.StringLit, syntax.DateLit,
		syntax.KwTrue, syntax.KwFalse, syntax.KwNothing, syntax.KwNull, syntax.KwEmpty,
		syntax.KwMe, syntax.KwNot, syntax.KwNew, syntax.KwTypeOf, syntax.KwAddressOf,
		syntax.LParen, syntax.Minus, syntax.Plus, syntax.Dot, syntax.Bang:
		return true
	}
	return tok.IsIdentLike()
}

// parseArgument parses one argument: [#]expr or name:=expr.
func (p *Parser) parseArgument() bool {
	if p.at(syntax.Hash) {
		// File number: Print #1, Open ... As #1.
		p.b.StartNode(syntax.Argument)
		p.bump()
		if !p.parseExpression() {
			p.err(diag.SynExpectExpression, "expected a file number after #")
		}
		p.b.FinishNode()
		return true
	}
	if p.atIdentLike() && p.peekN(1).Kind == syntax.Colon && p.peekN(2).Kind == syntax.Eq {
		p.b.StartNode(syntax.Argument)
		p.bump() // name
		p.bump() // :
		p.bump() // =
		if !p.parseExpression() {
			p.err(diag.SynExpectExpression, "expected a value after :=")
		}
		p.b.FinishNode()
		return true
	}
	cp := p.b.Checkpoint()
	if !p.parseExpression() {
		return false
	}
	p.b.StartNodeAt(cp, syntax.Argument)
	p.b.FinishNode()
	return true
}
