package lexer

import (
	"vb6syntax/source"
	"vb6syntax/syntax"
)

// TokenStream is the eager output of tokenization: every token of one
// file in source order, trivia included, terminated by a zero-width EOF
// token. Spans tile the file exactly: the first token starts at 0, each
// token starts where the previous ended, and the EOF token sits at the
// end of content.
type TokenStream struct {
	File   *source.File
	Tokens []syntax.Token
}

// Len returns the number of tokens, EOF included.
func (s *TokenStream) Len() int {
	return len(s.Tokens)
}

// At returns token i, clamping past-the-end reads to the EOF token.
func (s *TokenStream) At(i int) syntax.Token {
	if i >= len(s.Tokens) {
		return s.Tokens[len(s.Tokens)-1]
	}
	return s.Tokens[i]
}

// Text reconstructs the file content by concatenating token texts.
func (s *TokenStream) Text() string {
	n := 0
	for i := range s.Tokens {
		n += len(s.Tokens[i].Text)
	}
	buf := make([]byte, 0, n)
	for i := range s.Tokens {
		buf = append(buf, s.Tokens[i].Text...)
	}
	return string(buf)
}
