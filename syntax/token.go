package syntax

import (
	"vb6syntax/source"
)

// Token is a classified, positioned slice of source text. Tokens are
// produced once, in source order, and never mutated. Text is always the
// exact original bytes, casing included.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsTrivia reports whether the token is whitespace, a newline, a comment,
// or a line continuation.
func (t Token) IsTrivia() bool { return t.Kind.IsTrivia() }

// IsEOF reports whether the token marks the end of the stream.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdentLike reports whether the token may serve as an identifier at a
// reinterpretation site: either a plain Ident or a soft keyword.
func (t Token) IsIdentLike() bool { return t.Kind == Ident || IdentLike(t.Kind) }
