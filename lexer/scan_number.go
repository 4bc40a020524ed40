package lexer

import "vb6syntax/syntax"

// scanNumber reads a decimal literal: digits, an optional fraction, an
// optional E/D exponent, and an optional type sigil. The D exponent is
// the Double spelling (1.5D3). An exponent marker with no digits after
// it is left for the next token.
func (lx *lexer) scanNumber() {
	m := lx.cursor.Mark()
	for isDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' && isDigit(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		for isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	lx.scanExponent()
	if isTypeSigil(lx.cursor.Peek()) && lx.cursor.Peek() != '$' {
		lx.cursor.Bump()
	}
	lx.emit(syntax.NumberLit, m)
}

func (lx *lexer) scanExponent() {
	b := lx.cursor.Peek()
	if b != 'e' && b != 'E' && b != 'd' && b != 'D' {
		return
	}
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	if p := lx.cursor.Peek(); p == '+' || p == '-' {
		lx.cursor.Bump()
	}
	if !isDigit(lx.cursor.Peek()) {
		lx.cursor.Reset(m)
		return
	}
	for isDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// scanAmp handles the three faces of '&': a hex literal (&HFF), an
// octal literal (&O17 or the bare &17 form), or the concatenation
// operator.
func (lx *lexer) scanAmp() {
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	switch b := lx.cursor.Peek(); {
	case (b == 'h' || b == 'H') && isHexDigit(lx.cursor.PeekAt(1)):
		lx.cursor.Bump()
		for isHexDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	case (b == 'o' || b == 'O') && isOctalDigit(lx.cursor.PeekAt(1)):
		lx.cursor.Bump()
		for isOctalDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	case isOctalDigit(b):
		for isOctalDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	default:
		lx.emit(syntax.Amp, m)
		return
	}
	// &HFF& is a Long literal; % marks an Integer.
	if p := lx.cursor.Peek(); p == '&' || p == '%' {
		lx.cursor.Bump()
	}
	lx.emit(syntax.NumberLit, m)
}

func isHexDigit(b byte) bool {
	return isDigit(b) || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func isOctalDigit(b byte) bool { return b >= '0' && b <= '7' }
