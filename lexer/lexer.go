// Package lexer turns VB6 source bytes into a gap-free token stream.
//
// Tokenization never fails: anything unrecognized becomes an Unknown
// token, and an unterminated string becomes one Unknown token holding
// the partial text. Keywords are matched case-insensitively; the token
// text always keeps the source casing.
package lexer

import (
	"vb6syntax/diag"
	"vb6syntax/source"
	"vb6syntax/syntax"
)

type lexer struct {
	cursor Cursor
	tokens []syntax.Token
}

// Tokenize scans a whole file eagerly. The resulting stream covers
// [0, len(content)) without gaps or overlaps and ends with an EOF token.
func Tokenize(file *source.File) *TokenStream {
	lx := &lexer{
		cursor: NewCursor(file),
		// Rough guess: one token per four bytes of source.
		tokens: make([]syntax.Token, 0, len(file.Content)/4+8),
	}
	for !lx.cursor.EOF() {
		lx.next()
	}
	eofSpan := source.Span{File: file.ID, Start: lx.cursor.Limit, End: lx.cursor.Limit}
	lx.tokens = append(lx.tokens, syntax.Token{Kind: syntax.EOF, Span: eofSpan})
	return &TokenStream{File: file, Tokens: lx.tokens}
}

// TokenizeText is a convenience for callers holding raw text. The bag
// mirrors the parser entry point's shape; tokenization itself reports
// nothing, since lexical anomalies surface as Unknown tokens instead.
func TokenizeText(label string, src []byte) (*TokenStream, *diag.Bag) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(label, src)
	return Tokenize(fs.Get(id)), diag.NewBag(256)
}

// next scans exactly one token. Every branch consumes at least one byte.
func (lx *lexer) next() {
	b := lx.cursor.Peek()
	switch {
	case b == '\r' || b == '\n':
		lx.scanNewline()
	case b == ' ' || b == '\t':
		lx.scanWhitespace()
	case b == '\'':
		lx.scanComment(lx.cursor.Mark())
	case b == '_':
		lx.scanUnderscore()
	case isIdentStart(b):
		lx.scanWord()
	case isDigit(b):
		lx.scanNumber()
	case b == '"':
		lx.scanString()
	case b == '&':
		lx.scanAmp()
	case b == '#':
		lx.scanHash()
	default:
		lx.scanPunctOrUnknown()
	}
}

func (lx *lexer) emit(kind syntax.Kind, m Mark) {
	span := lx.cursor.SpanFrom(m)
	lx.tokens = append(lx.tokens, syntax.Token{
		Kind: kind,
		Span: span,
		Text: string(lx.cursor.File.Content[span.Start:span.End]),
	})
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= 0x80
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b) || b == '_'
}

// isTypeSigil reports whether b is a declaration type character that
// binds to a directly preceding name or number (x%, total&, s$, v#).
func isTypeSigil(b byte) bool {
	switch b {
	case '%', '&', '!', '#', '@', '$':
		return true
	}
	return false
}
