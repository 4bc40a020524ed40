package lexer

import "vb6syntax/syntax"

// singlePunct maps one-byte operators and delimiters. '&' and '#' are
// dispatched earlier because they can start literals.
var singlePunct = map[byte]syntax.Kind{
	'=':  syntax.Eq,
	'+':  syntax.Plus,
	'-':  syntax.Minus,
	'*':  syntax.Star,
	'/':  syntax.Slash,
	'\\': syntax.Backslash,
	'^':  syntax.Caret,
	'.':  syntax.Dot,
	',':  syntax.Comma,
	':':  syntax.Colon,
	';':  syntax.Semicolon,
	'!':  syntax.Bang,
	'@':  syntax.At,
	'$':  syntax.Dollar,
	'%':  syntax.Percent,
	'(':  syntax.LParen,
	')':  syntax.RParen,
	'[':  syntax.LBracket,
	']':  syntax.RBracket,
	'{':  syntax.LBrace,
	'}':  syntax.RBrace,
}

// scanPunctOrUnknown reads operators with maximal munch (<=, >=, <>),
// then single-byte punctuation. Bytes that start nothing at all are
// coalesced into one Unknown token per run.
func (lx *lexer) scanPunctOrUnknown() {
	m := lx.cursor.Mark()
	switch lx.cursor.Peek() {
	case '<':
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case '=':
			lx.cursor.Bump()
			lx.emit(syntax.LtEq, m)
		case '>':
			lx.cursor.Bump()
			lx.emit(syntax.Neq, m)
		default:
			lx.emit(syntax.Lt, m)
		}
		return
	case '>':
		lx.cursor.Bump()
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			lx.emit(syntax.GtEq, m)
			return
		}
		lx.emit(syntax.Gt, m)
		return
	}

	if kind, ok := singlePunct[lx.cursor.Peek()]; ok {
		lx.cursor.Bump()
		lx.emit(kind, m)
		return
	}

	for !lx.cursor.EOF() && !startsToken(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	lx.emit(syntax.Unknown, m)
}

// startsToken reports whether a byte begins any recognized token.
func startsToken(b byte) bool {
	switch b {
	case '\r', '\n', ' ', '\t', '\'', '_', '"', '&', '#', '<', '>':
		return true
	}
	if isIdentStart(b) || isDigit(b) {
		return true
	}
	_, ok := singlePunct[b]
	return ok
}
