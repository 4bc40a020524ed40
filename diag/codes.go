package diag

import "fmt"

// Code identifies a diagnostic kind. Lexical codes live in the 1000
// range, syntactic codes in the 2000 range.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical. The tokenizer itself never fails; these exist for tools
	// that want to surface Unknown tokens as diagnostics.
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntactic.
	SynInfo                Code = 2000
	SynUnexpectedToken     Code = 2001
	SynExpectExpression    Code = 2002
	SynExpectIdentifier    Code = 2003
	SynExpectNewline       Code = 2004
	SynUnclosedParen       Code = 2005
	SynExpectThen          Code = 2006
	SynExpectKeyword       Code = 2007
	SynUnterminatedBlock   Code = 2008
	SynDanglingEnd         Code = 2009
	SynExpectOperand       Code = 2010
	SynExpectEq            Code = 2011
	SynExpectTo            Code = 2012
	SynBadOptionStatement  Code = 2013
	SynBadDeclareStatement Code = 2014
	SynExpectCase          Code = 2015
	SynExpectLoopTail      Code = 2016
)

func (c Code) String() string {
	return fmt.Sprintf("VB%04d", uint16(c))
}
