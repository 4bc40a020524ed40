package parser

import (
	"vb6syntax/diag"
	"vb6syntax/syntax"
)

// parseStatement dispatches on the leading token. Soft keywords that
// can open library statements (Open, Print, Get, ...) fall through to
// the expression-statement path, where they are reinterpreted as names.
func (p *Parser) parseStatement() {
	switch p.peek().Kind {
	case syntax.KwOption:
		p.parseOptionStatement()
	case syntax.KwAttribute:
		p.parseAttributeStatement()
	case syntax.KwDim:
		p.parseVarStatement()
	case syntax.KwConst:
		p.parseConstStatement()
	case syntax.KwStatic:
		if p.procKeywordAt(1) {
			p.parseProcedure()
			return
		}
		p.parseVarStatement()
	case syntax.KwPublic, syntax.KwPrivate, syntax.KwGlobal, syntax.KwFriend:
		p.parseVisibilityLed()
	case syntax.KwSub, syntax.KwFunction:
		p.parseProcedure()
	case syntax.KwProperty:
		if p.propertyAccessorAt(1) {
			p.parseProcedure()
			return
		}
		p.parseExprStatement()
	case syntax.KwDeclare:
		p.parseDeclareStatement()
	case syntax.KwType:
		p.parseTypeStatement()
	case syntax.KwEnum:
		p.parseEnumStatement()
	case syntax.KwImplements:
		p.parseImplementsStatement()
	case syntax.KwEvent:
		p.parseEventStatement()
	case syntax.KwReDim:
		p.parseReDimStatement()
	case syntax.KwErase:
		p.parseEraseStatement()
	case syntax.KwDefBool, syntax.KwDefByte, syntax.KwDefCur, syntax.KwDefDate,
		syntax.KwDefDbl, syntax.KwDefDec, syntax.KwDefInt, syntax.KwDefLng,
		syntax.KwDefObj, syntax.KwDefSng, syntax.KwDefStr, syntax.KwDefVar:
		p.parseDefTypeStatement()
	case syntax.KwIf:
		p.parseIfStatement()
	case syntax.KwSelect:
		p.parseSelectStatement()
	case syntax.KwFor:
		p.parseForStatement()
	case syntax.KwDo:
		p.parseDoStatement()
	case syntax.KwWhile:
		p.parseWhileStatement()
	case syntax.KwWith:
		p.parseWithStatement()
	case syntax.KwOn:
		p.parseOnStatement()
	case syntax.KwResume:
		p.parseResumeStatement()
	case syntax.KwGoTo:
		p.parseJumpStatement(syntax.GotoStatement)
	case syntax.KwGoSub:
		p.parseJumpStatement(syntax.GoSubStatement)
	case syntax.KwReturn:
		p.parseBareStatement(syntax.ReturnStatement)
	case syntax.KwExit:
		p.parseExitStatement()
	case syntax.KwStop:
		p.parseBareStatement(syntax.StopStatement)
	case syntax.KwEnd:
		p.parseEndStatement()
	case syntax.KwSet:
		p.parseKeywordAssignment(syntax.SetStatement)
	case syntax.KwLet:
		p.parseKeywordAssignment(syntax.LetStatement)
	case syntax.KwLSet:
		p.parseKeywordAssignment(syntax.LSetStatement)
	case syntax.KwRSet:
		p.parseKeywordAssignment(syntax.RSetStatement)
	case syntax.KwCall, syntax.KwRaiseEvent:
		p.parseCallStatement()
	default:
		p.parseExprStatement()
	}
}

func (p *Parser) procKeywordAt(n int) bool {
	switch p.peekN(n).Kind {
	case syntax.KwSub, syntax.KwFunction:
		return true
	case syntax.KwProperty:
		return p.propertyAccessorAt(n + 1)
	}
	return false
}

func (p *Parser) propertyAccessorAt(n int) bool {
	switch p.peekN(n).Kind {
	case syntax.KwGet, syntax.KwLet, syntax.KwSet:
		return true
	}
	return false
}

// parseVisibilityLed routes Public/Private/Global/Friend statements by
// the construct that follows the modifiers.
func (p *Parser) parseVisibilityLed() {
	switch p.peekN(1).Kind {
	case syntax.KwSub, syntax.KwFunction:
		p.parseProcedure()
	case syntax.KwProperty:
		if p.propertyAccessorAt(2) {
			p.parseProcedure()
			return
		}
		p.parseVarStatement()
	case syntax.KwStatic:
		if p.procKeywordAt(2) {
			p.parseProcedure()
			return
		}
		p.parseVarStatement()
	case syntax.KwDeclare:
		p.parseDeclareStatement()
	case syntax.KwConst:
		p.parseConstStatement()
	case syntax.KwType:
		p.parseTypeStatement()
	case syntax.KwEnum:
		p.parseEnumStatement()
	case syntax.KwEvent:
		p.parseEventStatement()
	default:
		p.parseVarStatement()
	}
}

// bumpModifiers consumes any run of visibility and lifetime modifiers.
func (p *Parser) bumpModifiers() {
	for p.atAny(syntax.KwPublic, syntax.KwPrivate, syntax.KwGlobal, syntax.KwFriend, syntax.KwStatic) {
		p.bump()
	}
}

// parseExprStatement handles everything that starts like an expression:
// labels, assignments, and implicit calls.
func (p *Parser) parseExprStatement() {
	if p.lineStart && p.atIdentLike() && p.peekN(1).Kind == syntax.Colon {
		p.parseLabelStatement()
		return
	}
	if p.lineStart && p.at(syntax.NumberLit) {
		p.parseLabelStatement()
		return
	}
	if !startsExpression(p.peek()) {
		p.errWithNote(diag.SynUnexpectedToken, "statement cannot start here",
			"skipped to end of line")
		p.skipToLineEnd()
		return
	}
	cp := p.b.Checkpoint()
	if !p.parsePostfix() {
		p.err(diag.SynExpectExpression, "expected a statement")
		p.bumpUnknown()
		return
	}
	if p.at(syntax.Eq) {
		p.b.StartNodeAt(cp, syntax.AssignmentStatement)
		p.bump()
		if !p.parseExpression() {
			p.err(diag.SynExpectExpression, "expected a value after =")
			p.skipToLineEnd()
		}
		p.b.FinishNode()
		return
	}
	p.b.StartNodeAt(cp, syntax.ImplicitCallStatement)
	p.parseBareArguments(p.inSingleLineIf)
	p.b.FinishNode()
}

// parseLabelStatement parses `Name:` or a leading line number.
func (p *Parser) parseLabelStatement() {
	p.b.StartNode(syntax.LabelStatement)
	p.bump()
	if p.at(syntax.Colon) {
		p.bump()
	}
	p.b.FinishNode()
}

// parseBareStatement wraps a single keyword statement (Stop, Return).
func (p *Parser) parseBareStatement(kind syntax.Kind) {
	p.b.StartNode(kind)
	p.bump()
	p.b.FinishNode()
}
