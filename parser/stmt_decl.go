package parser

import (
	"vb6syntax/diag"
	"vb6syntax/syntax"
)

// parseOptionStatement parses Option Explicit, Option Base 0|1,
// Option Compare Text|Binary|Database, and Option Private Module.
func (p *Parser) parseOptionStatement() {
	p.b.StartNode(syntax.OptionStatement)
	p.bump() // Option
	switch p.peek().Kind {
	case syntax.KwExplicit:
		p.bump()
	case syntax.KwBase:
		p.bump()
		p.expect(syntax.NumberLit, diag.SynBadOptionStatement, "Option Base needs 0 or 1")
	case syntax.KwCompare:
		p.bump()
		if p.atAny(syntax.KwText, syntax.KwBinary, syntax.KwDatabase) {
			p.bump()
		} else {
			p.err(diag.SynBadOptionStatement, "Option Compare needs Text, Binary, or Database")
		}
	case syntax.KwPrivate:
		p.bump()
		p.expect(syntax.KwModule, diag.SynBadOptionStatement, "expected Module after Option Private")
	default:
		p.errWithNote(diag.SynBadOptionStatement, "unknown Option statement",
			"skipped to end of line")
		p.skipToLineEnd()
	}
	p.b.FinishNode()
}

// parseAttributeStatement parses Attribute name = value[, value].
// The name may be qualified (member.VB_VarHelpID).
func (p *Parser) parseAttributeStatement() {
	p.b.StartNode(syntax.AttributeStatement)
	p.bump() // Attribute
	if !p.parsePostfix() {
		p.err(diag.SynExpectIdentifier, "expected an attribute name")
	}
	p.expect(syntax.Eq, diag.SynExpectEq, "expected = in attribute")
	if !p.parseExpression() {
		p.err(diag.SynExpectExpression, "expected an attribute value")
	}
	for p.at(syntax.Comma) {
		p.bump()
		if !p.parseExpression() {
			p.err(diag.SynExpectExpression, "expected an attribute value")
			break
		}
	}
	p.b.FinishNode()
}

// parseVarStatement parses variable declarations in all their leading
// forms: Dim, Static, Public, Private, Global, Friend.
func (p *Parser) parseVarStatement() {
	p.b.StartNode(syntax.DimStatement)
	p.bumpModifiers()
	if p.at(syntax.KwDim) {
		p.bump()
	}
	p.parseDeclaratorList()
	p.b.FinishNode()
}

func (p *Parser) parseConstStatement() {
	p.b.StartNode(syntax.ConstStatement)
	p.bumpModifiers()
	p.expect(syntax.KwConst, diag.SynExpectKeyword, "expected Const")
	p.parseDeclaratorList()
	p.b.FinishNode()
}

func (p *Parser) parseReDimStatement() {
	p.b.StartNode(syntax.ReDimStatement)
	p.bump() // ReDim
	if p.at(syntax.KwPreserve) {
		p.bump()
	}
	p.parseDeclaratorList()
	p.b.FinishNode()
}

func (p *Parser) parseEraseStatement() {
	p.b.StartNode(syntax.EraseStatement)
	p.bump() // Erase
	for {
		if !p.parsePostfix() {
			p.err(diag.SynExpectIdentifier, "expected an array name")
			break
		}
		if !p.at(syntax.Comma) {
			break
		}
		p.bump()
	}
	p.b.FinishNode()
}

// parseDefTypeStatement parses the DefInt A-Z letter-range family.
func (p *Parser) parseDefTypeStatement() {
	p.b.StartNode(syntax.DefTypeStatement)
	p.bump() // DefXxx
	for !p.atLineEnd() && p.atAny(syntax.Ident, syntax.Minus, syntax.Comma) {
		p.bump()
	}
	p.b.FinishNode()
}

func (p *Parser) parseDeclaratorList() {
	for {
		if !p.atIdentLike() && !p.at(syntax.KwWithEvents) {
			p.err(diag.SynExpectIdentifier, "expected a name to declare")
			break
		}
		p.parseDeclarator()
		if !p.at(syntax.Comma) {
			break
		}
		p.bump()
	}
}

// parseDeclarator parses one declared unit:
// [WithEvents] name[(bounds)] [As [New] type [* size]] [= value].
// The value tail serves Const declarations and Enum members.
func (p *Parser) parseDeclarator() {
	p.b.StartNode(syntax.Declarator)
	if p.at(syntax.KwWithEvents) {
		p.bump()
	}
	p.expectName("expected a name to declare")
	if p.at(syntax.LParen) {
		p.parseArrayBounds()
	}
	if p.at(syntax.KwAs) {
		p.parseAsClause()
	}
	if p.at(syntax.Eq) {
		p.bump()
		if !p.parseExpression() {
			p.err(diag.SynExpectExpression, "expected a value after =")
		}
	}
	p.b.FinishNode()
}

// parseArrayBounds parses (lower To upper, ...) or empty () for a
// dynamic array.
func (p *Parser) parseArrayBounds() {
	p.b.StartNode(syntax.ArrayBounds)
	p.bump() // (
	for {
		switch {
		case p.at(syntax.RParen):
			p.bump()
			p.b.FinishNode()
			return
		case p.atAny(syntax.Newline, syntax.EOF):
			p.err(diag.SynUnclosedParen, "array bounds are not closed before end of line")
			p.b.FinishNode()
			return
		case p.at(syntax.Comma):
			p.bump()
		default:
			if !p.parseExpression() {
				p.err(diag.SynExpectExpression, "expected an array bound")
				p.bumpUnknown()
				continue
			}
			if p.at(syntax.KwTo) {
				p.bump()
				if !p.parseExpression() {
					p.err(diag.SynExpectExpression, "expected an upper bound after To")
				}
			}
		}
	}
}

// parseAsClause parses As [New] type, with the fixed-length string
// tail As String * n.
func (p *Parser) parseAsClause() {
	p.b.StartNode(syntax.AsClause)
	p.bump() // As
	if p.at(syntax.KwNew) {
		p.bump()
	}
	p.parseTypeRef()
	if p.at(syntax.Star) {
		p.bump()
		if !p.parseExpression() {
			p.err(diag.SynExpectExpression, "expected a length after String *")
		}
	}
	p.b.FinishNode()
}

// parseTypeStatement parses a Type ... End Type record block. Members
// are declarator lines.
func (p *Parser) parseTypeStatement() {
	p.b.StartNode(syntax.TypeStatement)
	p.bumpModifiers()
	p.bump() // Type
	p.expectName("expected a type name")
	for {
		p.eatSeparators()
		if p.at(syntax.EOF) {
			p.errWithNote(diag.SynUnterminatedBlock, "Type block is not closed",
				"closed at end of file")
			break
		}
		if p.at(syntax.KwEnd) && p.peekN(1).Kind == syntax.KwType {
			p.bump()
			p.bump()
			break
		}
		if p.atIdentLike() || p.at(syntax.KwWithEvents) {
			p.parseDeclarator()
			continue
		}
		p.errWithNote(diag.SynExpectIdentifier, "expected a Type member",
			"skipped to end of line")
		p.skipToLineEnd()
	}
	p.b.FinishNode()
}

// parseEnumStatement parses an Enum ... End Enum block. Members are
// name [= value] lines.
func (p *Parser) parseEnumStatement() {
	p.b.StartNode(syntax.EnumStatement)
	p.bumpModifiers()
	p.bump() // Enum
	p.expectName("expected an enum name")
	for {
		p.eatSeparators()
		if p.at(syntax.EOF) {
			p.errWithNote(diag.SynUnterminatedBlock, "Enum block is not closed",
				"closed at end of file")
			break
		}
		if p.at(syntax.KwEnd) && p.peekN(1).Kind == syntax.KwEnum {
			p.bump()
			p.bump()
			break
		}
		if p.atIdentLike() {
			p.parseDeclarator()
			continue
		}
		p.errWithNote(diag.SynExpectIdentifier, "expected an enum member",
			"skipped to end of line")
		p.skipToLineEnd()
	}
	p.b.FinishNode()
}

// parseDeclareStatement parses an external procedure declaration:
// [vis] Declare Sub|Function name Lib "lib" [Alias "name"] [(params)] [As type].
func (p *Parser) parseDeclareStatement() {
	p.b.StartNode(syntax.DeclareStatement)
	p.bumpModifiers()
	p.bump() // Declare
	if p.atAny(syntax.KwSub, syntax.KwFunction) {
		p.bump()
	} else {
		p.err(diag.SynBadDeclareStatement, "expected Sub or Function after Declare")
	}
	p.expectName("expected a procedure name")
	p.expect(syntax.KwLib, diag.SynBadDeclareStatement, "expected Lib in Declare")
	p.expect(syntax.StringLit, diag.SynBadDeclareStatement, "expected a library name string")
	if p.at(syntax.KwAlias) {
		p.bump()
		p.expect(syntax.StringLit, diag.SynBadDeclareStatement, "expected an alias string")
	}
	if p.at(syntax.LParen) {
		p.parseParameterList()
	}
	if p.at(syntax.KwAs) {
		p.parseAsClause()
	}
	p.b.FinishNode()
}

func (p *Parser) parseImplementsStatement() {
	p.b.StartNode(syntax.ImplementsStatement)
	p.bump() // Implements
	p.parseTypeRef()
	p.b.FinishNode()
}

// parseEventStatement parses [vis] Event name [(params)].
func (p *Parser) parseEventStatement() {
	p.b.StartNode(syntax.EventStatement)
	p.bumpModifiers()
	p.bump() // Event
	p.expectName("expected an event name")
	if p.at(syntax.LParen) {
		p.parseParameterList()
	}
	p.b.FinishNode()
}
