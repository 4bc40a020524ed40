package lexer

import "vb6syntax/syntax"

// scanNewline emits one Newline token per line terminator. \r\n counts
// as a single token; a lone \r or \n also terminates a line.
func (lx *lexer) scanNewline() {
	m := lx.cursor.Mark()
	if lx.cursor.Eat('\r') {
		lx.cursor.Eat('\n')
	} else {
		lx.cursor.Eat('\n')
	}
	lx.emit(syntax.Newline, m)
}

// scanWhitespace coalesces a run of blanks and tabs into one token.
func (lx *lexer) scanWhitespace() {
	m := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			break
		}
		lx.cursor.Bump()
	}
	lx.emit(syntax.Whitespace, m)
}

// scanComment consumes from m to the end of the line, excluding the
// terminator. Used for both ' comments and Rem comments, so m may be
// behind the cursor when the Rem word was already read.
func (lx *lexer) scanComment(m Mark) {
	for {
		b := lx.cursor.Peek()
		if b == '\r' || b == '\n' || lx.cursor.EOF() {
			break
		}
		lx.cursor.Bump()
	}
	lx.emit(syntax.Comment, m)
}

// scanUnderscore handles the line continuation marker: an underscore,
// optional blanks, then a line terminator, all absorbed into a single
// LineContinuation token. The parser never sees a Newline inside a
// continued logical line. A stray underscore becomes Unknown.
func (lx *lexer) scanUnderscore() {
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			break
		}
		lx.cursor.Bump()
	}
	b := lx.cursor.Peek()
	if b == '\r' || b == '\n' {
		if lx.cursor.Eat('\r') {
			lx.cursor.Eat('\n')
		} else {
			lx.cursor.Eat('\n')
		}
		lx.emit(syntax.LineContinuation, m)
		return
	}
	if lx.cursor.EOF() {
		// Continuation at EOF: nothing follows, keep it as trivia.
		lx.emit(syntax.LineContinuation, m)
		return
	}
	lx.cursor.Reset(m)
	lx.cursor.Bump()
	lx.emit(syntax.Unknown, m)
}
