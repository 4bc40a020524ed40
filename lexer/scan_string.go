package lexer

import "vb6syntax/syntax"

// scanString reads a double-quoted literal. A doubled quote is the
// escape for one quote character. A terminator or EOF before the
// closing quote makes the partial text an Unknown token; the stream
// stays gap-free and the parser reports it there.
func (lx *lexer) scanString() {
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	for {
		b := lx.cursor.Peek()
		if b == '\r' || b == '\n' || lx.cursor.EOF() {
			lx.emit(syntax.Unknown, m)
			return
		}
		if b == '"' {
			lx.cursor.Bump()
			if lx.cursor.Peek() == '"' {
				lx.cursor.Bump()
				continue
			}
			lx.emit(syntax.StringLit, m)
			return
		}
		lx.cursor.Bump()
	}
}

// scanHash tries a date literal first: #...# confined to one line, as
// in #1/15/1998# or #12:30 PM#. Without a closing hash on the line the
// byte is the plain # token (file numbers, Print #1).
func (lx *lexer) scanHash() {
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	for {
		b := lx.cursor.Peek()
		if b == '\r' || b == '\n' || lx.cursor.EOF() {
			lx.cursor.Reset(m)
			lx.cursor.Bump()
			lx.emit(syntax.Hash, m)
			return
		}
		if b == '#' {
			lx.cursor.Bump()
			lx.emit(syntax.DateLit, m)
			return
		}
		lx.cursor.Bump()
	}
}
