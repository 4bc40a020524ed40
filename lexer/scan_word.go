package lexer

import "vb6syntax/syntax"

// scanWord reads an identifier-shaped run and classifies it. A type
// sigil glued to the end (Count%, Name$, Mid$) is folded into the token
// and forces the Ident kind, even when the base spelling is a keyword.
// The Rem spelling turns the rest of the line into a Comment token.
func (lx *lexer) scanWord() {
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	span := lx.cursor.SpanFrom(m)
	word := string(lx.cursor.File.Content[span.Start:span.End])

	if syntax.IsRemSpelling(word) {
		b := lx.cursor.Peek()
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' || lx.cursor.EOF() {
			lx.scanComment(m)
			return
		}
	}

	if isTypeSigil(lx.cursor.Peek()) {
		lx.cursor.Bump()
		lx.emit(syntax.Ident, m)
		return
	}

	if kind, ok := syntax.LookupKeyword(word); ok {
		lx.emit(kind, m)
		return
	}
	lx.emit(syntax.Ident, m)
}
