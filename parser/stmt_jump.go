package parser

import (
	"vb6syntax/diag"
	"vb6syntax/syntax"
)

// parseOnStatement splits On Error handlers from computed On ... GoTo.
func (p *Parser) parseOnStatement() {
	if p.peekN(1).Kind == syntax.KwError {
		p.parseOnErrorStatement()
		return
	}
	p.b.StartNode(syntax.OnGoToStatement)
	p.bump() // On
	if !p.parseExpression() {
		p.err(diag.SynExpectExpression, "expected an index expression after On")
	}
	if p.atAny(syntax.KwGoTo, syntax.KwGoSub) {
		p.bump()
	} else {
		p.err(diag.SynExpectKeyword, "expected GoTo or GoSub")
	}
	for {
		p.parseJumpTarget()
		if !p.at(syntax.Comma) {
			break
		}
		p.bump()
	}
	p.b.FinishNode()
}

// parseOnErrorStatement parses On Error GoTo label|0|-1 and
// On Error Resume Next.
func (p *Parser) parseOnErrorStatement() {
	p.b.StartNode(syntax.OnErrorStatement)
	p.bump() // On
	p.bump() // Error
	switch p.peek().Kind {
	case syntax.KwGoTo:
		p.bump()
		p.parseJumpTarget()
	case syntax.KwResume:
		p.bump()
		p.expect(syntax.KwNext, diag.SynExpectKeyword, "expected Next after On Error Resume")
	default:
		p.err(diag.SynExpectKeyword, "expected GoTo or Resume Next after On Error")
	}
	p.b.FinishNode()
}

// parseResumeStatement parses Resume, Resume Next, and Resume label.
func (p *Parser) parseResumeStatement() {
	p.b.StartNode(syntax.ResumeStatement)
	p.bump() // Resume
	switch {
	case p.at(syntax.KwNext):
		p.bump()
	case p.atLineEnd():
	default:
		p.parseJumpTarget()
	}
	p.b.FinishNode()
}

func (p *Parser) parseJumpStatement(kind syntax.Kind) {
	p.b.StartNode(kind)
	p.bump() // GoTo or GoSub
	p.parseJumpTarget()
	p.b.FinishNode()
}

// parseJumpTarget accepts a label name, a line number, or the signed
// numbers of the error modes (0, -1).
func (p *Parser) parseJumpTarget() {
	switch {
	case p.atIdentLike(), p.at(syntax.NumberLit):
		p.bump()
	case p.at(syntax.Minus):
		p.bump()
		p.expect(syntax.NumberLit, diag.SynExpectIdentifier, "expected a line number")
	default:
		p.err(diag.SynExpectIdentifier, "expected a label or line number")
	}
}

// parseExitStatement parses Exit Sub|Function|Property|For|Do.
func (p *Parser) parseExitStatement() {
	p.b.StartNode(syntax.ExitStatement)
	p.bump() // Exit
	if p.atAny(syntax.KwSub, syntax.KwFunction, syntax.KwProperty, syntax.KwFor, syntax.KwDo) {
		p.bump()
	} else {
		p.err(diag.SynExpectKeyword, "expected Sub, Function, Property, For, or Do after Exit")
	}
	p.b.FinishNode()
}

// parseEndStatement handles the bare End statement. An End paired with
// a block closer that no enclosing construct claimed is reported and
// wrapped as Unknown.
func (p *Parser) parseEndStatement() {
	switch p.peekN(1).Kind {
	case syntax.KwIf, syntax.KwSelect, syntax.KwSub, syntax.KwFunction,
		syntax.KwProperty, syntax.KwType, syntax.KwEnum, syntax.KwWith:
		p.errWithNote(diag.SynDanglingEnd, "End "+p.peekN(1).Text+" closes nothing here",
			"wrapped the stray closer")
		p.b.StartNode(syntax.Unknown)
		p.bump()
		p.bump()
		p.b.FinishNode()
		return
	}
	p.b.StartNode(syntax.EndStatement)
	p.bump()
	p.b.FinishNode()
}
