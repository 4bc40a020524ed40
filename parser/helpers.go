package parser

import (
	"vb6syntax/diag"
	"vb6syntax/source"
	"vb6syntax/syntax"
)

// isInlineTrivia reports whether a kind is skipped when peeking.
// Newline is significant: it terminates statements. A line continuation
// absorbs its newline in the lexer, so skipping it here is what splices
// logical lines together.
func isInlineTrivia(k syntax.Kind) bool {
	return k == syntax.Whitespace || k == syntax.Comment || k == syntax.LineContinuation
}

// peekIdx returns the index of the next significant token.
func (p *Parser) peekIdx() int {
	i := p.pos
	for i < p.stream.Len()-1 && isInlineTrivia(p.stream.Tokens[i].Kind) {
		i++
	}
	return i
}

// peek returns the next significant token without consuming it.
func (p *Parser) peek() syntax.Token {
	return p.stream.At(p.peekIdx())
}

// peekN returns the n-th significant token ahead; peekN(0) == peek().
func (p *Parser) peekN(n int) syntax.Token {
	i := p.peekIdx()
	for n > 0 {
		if p.stream.Tokens[i].Kind == syntax.EOF {
			return p.stream.At(i)
		}
		i++
		for i < p.stream.Len()-1 && isInlineTrivia(p.stream.Tokens[i].Kind) {
			i++
		}
		n--
	}
	return p.stream.At(i)
}

func (p *Parser) at(k syntax.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atAny(kinds ...syntax.Kind) bool {
	k := p.peek().Kind
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// atIdentLike reports whether the next token can serve as a name:
// a plain identifier or a soft keyword.
func (p *Parser) atIdentLike() bool {
	return p.peek().IsIdentLike()
}

// atLineEnd reports whether the statement's line is over.
func (p *Parser) atLineEnd() bool {
	return p.atAny(syntax.Newline, syntax.Colon, syntax.EOF)
}

// flushTrivia pushes pending inline trivia into the current open node.
func (p *Parser) flushTrivia() {
	for p.pos < p.stream.Len()-1 && isInlineTrivia(p.stream.Tokens[p.pos].Kind) {
		p.b.Token(p.stream.Tokens[p.pos])
		p.pos++
	}
}

// bump consumes the next significant token into the current open node,
// with its leading trivia. At EOF it is a no-op returning the EOF token.
func (p *Parser) bump() syntax.Token {
	p.flushTrivia()
	tok := p.stream.At(p.pos)
	if tok.Kind == syntax.EOF {
		return tok
	}
	p.b.Token(tok)
	p.pos++
	p.lastSpan = tok.Span
	return tok
}

// expect bumps a token of the wanted kind or reports and leaves the
// stream untouched.
func (p *Parser) expect(k syntax.Kind, code diag.Code, msg string) bool {
	if p.at(k) {
		p.bump()
		return true
	}
	p.err(code, msg)
	return false
}

// expectName bumps an identifier-like token (plain identifier or soft
// keyword reinterpreted as a name).
func (p *Parser) expectName(msg string) bool {
	if p.atIdentLike() {
		p.bump()
		return true
	}
	p.err(diag.SynExpectIdentifier, msg)
	return false
}

// diagSpan picks the best span for a report: the next token, or a
// zero-width span after the last consumed token at EOF.
func (p *Parser) diagSpan() source.Span {
	tok := p.peek()
	if tok.Kind == syntax.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return tok.Span
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagSpan(), msg, nil)
}

func (p *Parser) errWithNote(code diag.Code, msg string, note string) {
	sp := p.diagSpan()
	p.report(code, diag.SevError, sp, msg, []diag.Note{{Span: sp, Msg: note}})
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes []diag.Note) {
	if p.opts.Reporter == nil || p.opts.Enough() {
		return
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	p.opts.Reporter.Report(code, sev, sp, msg, notes)
}
