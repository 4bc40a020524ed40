package parser

import (
	"vb6syntax/diag"
	"vb6syntax/syntax"
)

// parseKeywordAssignment parses Set/Let/LSet/RSet target = value.
func (p *Parser) parseKeywordAssignment(kind syntax.Kind) {
	p.b.StartNode(kind)
	p.bump() // the leading keyword
	if !p.parsePostfix() {
		p.err(diag.SynExpectIdentifier, "expected an assignment target")
	}
	p.expect(syntax.Eq, diag.SynExpectEq, "expected =")
	if !p.parseExpression() {
		p.err(diag.SynExpectExpression, "expected a value after =")
		p.skipToLineEnd()
	}
	p.b.FinishNode()
}

// parseCallStatement parses Call name(args) and RaiseEvent name(args).
func (p *Parser) parseCallStatement() {
	p.b.StartNode(syntax.CallStatement)
	p.bump() // Call or RaiseEvent
	if !p.parsePostfix() {
		p.err(diag.SynExpectIdentifier, "expected a procedure to call")
	}
	p.b.FinishNode()
}
