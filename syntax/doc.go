// Package syntax defines the closed SyntaxKind classification shared by
// tokens and tree nodes, plus the VB6 keyword tables.
// Invariants:
//   - Token.Text is exactly the original source slice (casing preserved).
//   - Token.Span matches Text (Start..End), byte-for-byte.
//   - Keyword recognition is case-insensitive; the lexer always emits the
//     keyword kind and the parser reinterprets soft keywords (IdentLike)
//     as identifiers only at defined grammatical positions.
//   - Trivia kinds (Whitespace, Newline, Comment, LineContinuation) are
//     ordinary tokens: they appear in the stream and in the tree, so leaf
//     concatenation reproduces the input.
package syntax
