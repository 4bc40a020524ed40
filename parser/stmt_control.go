package parser

import (
	"vb6syntax/diag"
	"vb6syntax/syntax"
)

// parseIfStatement handles both forms: the block If ... End If and the
// single-line If cond Then stmt [Else stmt].
func (p *Parser) parseIfStatement() {
	p.b.StartNode(syntax.IfStatement)
	p.bump() // If
	if !p.parseExpression() {
		p.err(diag.SynExpectExpression, "expected a condition after If")
	}
	p.expect(syntax.KwThen, diag.SynExpectThen, "expected Then")

	if !p.atLineEnd() {
		// Single-line form: the whole statement lives on this line.
		// An immediate Else means the then-arm is empty.
		p.parseSingleLineBody()
		if p.at(syntax.KwElse) {
			p.b.StartNode(syntax.ElseClause)
			p.bump()
			p.parseSingleLineBody()
			p.b.FinishNode()
		}
		p.b.FinishNode()
		return
	}

	branchStops := stopSet{
		kinds:   []syntax.Kind{syntax.KwElseIf, syntax.KwElse},
		endWith: []syntax.Kind{syntax.KwIf},
	}
	p.b.StartNode(syntax.StatementList)
	p.parseStatements(branchStops)
	p.b.FinishNode()

	for p.at(syntax.KwElseIf) {
		p.b.StartNode(syntax.ElseIfClause)
		p.bump()
		if !p.parseExpression() {
			p.err(diag.SynExpectExpression, "expected a condition after ElseIf")
		}
		p.expect(syntax.KwThen, diag.SynExpectThen, "expected Then")
		p.b.StartNode(syntax.StatementList)
		p.parseStatements(branchStops)
		p.b.FinishNode()
		p.b.FinishNode()
	}
	if p.at(syntax.KwElse) {
		p.b.StartNode(syntax.ElseClause)
		p.bump()
		p.b.StartNode(syntax.StatementList)
		p.parseStatements(stopSet{endWith: []syntax.Kind{syntax.KwIf}})
		p.b.FinishNode()
		p.b.FinishNode()
	}
	if p.at(syntax.KwEnd) && p.peekN(1).Kind == syntax.KwIf {
		p.bump()
		p.bump()
	} else {
		p.errWithNote(diag.SynUnterminatedBlock, "If block is not closed",
			"closed at end of file")
	}
	p.b.FinishNode()
}

// parseSingleLineBody parses colon-separated statements confined to
// the current line, stopping at Else for the single-line If split.
func (p *Parser) parseSingleLineBody() {
	p.b.StartNode(syntax.StatementList)
	prev := p.inSingleLineIf
	p.inSingleLineIf = true
	p.lineStart = false
	for {
		if p.atAny(syntax.Newline, syntax.EOF, syntax.KwElse) {
			break
		}
		if p.at(syntax.Colon) {
			p.bump()
			continue
		}
		p.parseStatement()
	}
	p.inSingleLineIf = prev
	p.b.FinishNode()
}

// parseSelectStatement parses Select Case expr with its Case clauses.
func (p *Parser) parseSelectStatement() {
	p.b.StartNode(syntax.SelectCaseStatement)
	p.bump() // Select
	p.expect(syntax.KwCase, diag.SynExpectCase, "expected Case after Select")
	if !p.parseExpression() {
		p.err(diag.SynExpectExpression, "expected a test expression")
	}
	caseStops := stopSet{
		kinds:   []syntax.Kind{syntax.KwCase},
		endWith: []syntax.Kind{syntax.KwSelect},
	}
	for {
		p.eatSeparators()
		if p.at(syntax.EOF) {
			p.errWithNote(diag.SynUnterminatedBlock, "Select Case block is not closed",
				"closed at end of file")
			break
		}
		if p.at(syntax.KwEnd) && p.peekN(1).Kind == syntax.KwSelect {
			p.bump()
			p.bump()
			break
		}
		if !p.at(syntax.KwCase) {
			p.errWithNote(diag.SynExpectCase, "expected a Case clause",
				"skipped to end of line")
			p.skipToLineEnd()
			continue
		}
		if p.peekN(1).Kind == syntax.KwElse {
			p.b.StartNode(syntax.CaseElseClause)
			p.bump()
			p.bump()
			p.b.StartNode(syntax.StatementList)
			p.parseStatements(caseStops)
			p.b.FinishNode()
			p.b.FinishNode()
			continue
		}
		p.b.StartNode(syntax.CaseClause)
		p.bump()
		p.parseCaseGuards()
		p.b.StartNode(syntax.StatementList)
		p.parseStatements(caseStops)
		p.b.FinishNode()
		p.b.FinishNode()
	}
	p.b.FinishNode()
}

// parseCaseGuards parses the comma list of guards after Case:
// expr, expr To expr, Is <comparison> expr.
func (p *Parser) parseCaseGuards() {
	for {
		if p.at(syntax.KwIs) {
			p.bump()
			if p.atAny(syntax.Eq, syntax.Neq, syntax.Lt, syntax.LtEq, syntax.Gt, syntax.GtEq) {
				p.bump()
			} else {
				p.err(diag.SynExpectOperand, "expected a comparison operator after Is")
			}
			if !p.parseExpression() {
				p.err(diag.SynExpectExpression, "expected a value after Is comparison")
			}
		} else {
			if !p.parseExpression() {
				p.err(diag.SynExpectExpression, "expected a Case guard")
				p.skipToLineEnd()
				return
			}
			if p.at(syntax.KwTo) {
				p.bump()
				if !p.parseExpression() {
					p.err(diag.SynExpectExpression, "expected an upper value after To")
				}
			}
		}
		if !p.at(syntax.Comma) {
			return
		}
		p.bump()
	}
}

// parseForStatement parses both For i = a To b [Step s] and
// For Each x In coll, closed by Next [var].
func (p *Parser) parseForStatement() {
	kind := syntax.ForStatement
	if p.peekN(1).Kind == syntax.KwEach {
		kind = syntax.ForEachStatement
	}
	p.b.StartNode(kind)
	p.bump() // For
	if kind == syntax.ForEachStatement {
		p.bump() // Each
		if !p.parsePostfix() {
			p.err(diag.SynExpectIdentifier, "expected a loop variable after Each")
		}
		p.expect(syntax.KwIn, diag.SynExpectKeyword, "expected In")
		if !p.parseExpression() {
			p.err(diag.SynExpectExpression, "expected a collection after In")
		}
	} else {
		if !p.parsePostfix() {
			p.err(diag.SynExpectIdentifier, "expected a loop counter after For")
		}
		p.expect(syntax.Eq, diag.SynExpectEq, "expected = after the loop counter")
		if !p.parseExpression() {
			p.err(diag.SynExpectExpression, "expected a start value")
		}
		p.expect(syntax.KwTo, diag.SynExpectTo, "expected To")
		if !p.parseExpression() {
			p.err(diag.SynExpectExpression, "expected an end value")
		}
		if p.at(syntax.KwStep) {
			p.bump()
			if !p.parseExpression() {
				p.err(diag.SynExpectExpression, "expected a step value")
			}
		}
	}

	p.b.StartNode(syntax.StatementList)
	p.parseStatements(stopSet{kinds: []syntax.Kind{syntax.KwNext}})
	p.b.FinishNode()

	if p.at(syntax.KwNext) {
		p.bump()
		if !p.atLineEnd() && startsExpression(p.peek()) {
			p.parsePostfix()
		}
	} else {
		p.errWithNote(diag.SynUnterminatedBlock, "For block is not closed",
			"closed at end of file")
	}
	p.b.FinishNode()
}

// parseDoStatement parses Do [While|Until cond] ... Loop [While|Until cond].
func (p *Parser) parseDoStatement() {
	p.b.StartNode(syntax.DoStatement)
	p.bump() // Do
	if p.atAny(syntax.KwWhile, syntax.KwUntil) {
		p.bump()
		if !p.parseExpression() {
			p.err(diag.SynExpectExpression, "expected a loop condition")
		}
	}

	p.b.StartNode(syntax.StatementList)
	p.parseStatements(stopSet{kinds: []syntax.Kind{syntax.KwLoop}})
	p.b.FinishNode()

	if p.at(syntax.KwLoop) {
		p.bump()
		if p.atAny(syntax.KwWhile, syntax.KwUntil) {
			p.bump()
			if !p.parseExpression() {
				p.err(diag.SynExpectExpression, "expected a loop condition")
			}
		}
	} else {
		p.errWithNote(diag.SynExpectLoopTail, "Do block is not closed by Loop",
			"closed at end of file")
	}
	p.b.FinishNode()
}

// parseWhileStatement parses While cond ... Wend.
func (p *Parser) parseWhileStatement() {
	p.b.StartNode(syntax.WhileStatement)
	p.bump() // While
	if !p.parseExpression() {
		p.err(diag.SynExpectExpression, "expected a condition after While")
	}

	p.b.StartNode(syntax.StatementList)
	p.parseStatements(stopSet{kinds: []syntax.Kind{syntax.KwWend}})
	p.b.FinishNode()

	if p.at(syntax.KwWend) {
		p.bump()
	} else {
		p.errWithNote(diag.SynUnterminatedBlock, "While block is not closed by Wend",
			"closed at end of file")
	}
	p.b.FinishNode()
}

// parseWithStatement parses With receiver ... End With. Leading-dot
// member expressions inside the body resolve against the receiver.
func (p *Parser) parseWithStatement() {
	p.b.StartNode(syntax.WithStatement)
	p.bump() // With
	if !p.parseExpression() {
		p.err(diag.SynExpectExpression, "expected an object after With")
	}

	p.b.StartNode(syntax.StatementList)
	p.parseStatements(stopSet{endWith: []syntax.Kind{syntax.KwWith}})
	p.b.FinishNode()

	if p.at(syntax.KwEnd) && p.peekN(1).Kind == syntax.KwWith {
		p.bump()
		p.bump()
	} else {
		p.errWithNote(diag.SynUnterminatedBlock, "With block is not closed",
			"closed at end of file")
	}
	p.b.FinishNode()
}
