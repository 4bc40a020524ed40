// Package parser builds a lossless concrete syntax tree from a VB6
// token stream. Parsing never stops at the first problem: failures are
// reported to a diag.Reporter, skipped tokens are wrapped in Unknown
// nodes, and the resulting tree always reproduces the input exactly.
package parser

import (
	"vb6syntax/cst"
	"vb6syntax/diag"
	"vb6syntax/lexer"
	"vb6syntax/source"
	"vb6syntax/syntax"
)

type Options struct {
	// MaxErrors caps recorded failures; 0 means no cap. Parsing always
	// continues to the end of input either way.
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the failure cap was reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Tree *cst.Tree
	Bag  *diag.Bag
}

// Parser holds the state for one file.
type Parser struct {
	stream   *lexer.TokenStream
	pos      int
	b        *cst.Builder
	opts     Options
	lastSpan source.Span
	// lineStart is true when the next statement begins a physical line,
	// which is the only place a label may appear.
	lineStart bool
	// inSingleLineIf makes Else terminate bare argument lists, so the
	// Else branch of a single-line If is not swallowed as an argument.
	inSingleLineIf bool
}

// Parse consumes a whole token stream into a tree. The tree is always
// produced; the bag in the result is non-nil only when the reporter is
// a BagReporter.
func Parse(stream *lexer.TokenStream, opts Options) Result {
	p := &Parser{
		stream: stream,
		b:      cst.NewBuilder(stream.File),
		opts:   opts,
	}
	p.parseFile()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{Tree: p.b.Finish(), Bag: bag}
}

// FromText is the convenience entry point: tokenize and parse raw text
// under the given label. The bag holds every recorded failure.
func FromText(label string, src []byte) (*cst.Tree, *diag.Bag) {
	stream, bag := lexer.TokenizeText(label, src)
	res := Parse(stream, Options{
		MaxErrors: 256,
		Reporter:  diag.BagReporter{Bag: bag},
	})
	return res.Tree, bag
}

// parseFile builds Root > StatementList covering the whole input.
func (p *Parser) parseFile() {
	p.b.StartNode(syntax.StatementList)
	p.parseStatements(stopSet{})
	p.flushTrivia()
	p.b.FinishNode()
}

// eatSeparators consumes newlines and colons between statements into
// the current statement list. Returns whether a newline was crossed.
func (p *Parser) eatSeparators() bool {
	crossed := false
	for p.at(syntax.Newline) || p.at(syntax.Colon) {
		if p.at(syntax.Newline) {
			crossed = true
		}
		p.bump()
	}
	return crossed
}

// parseStatements parses a statement sequence until EOF or a token the
// stop set claims. Separators between statements stay in the list.
func (p *Parser) parseStatements(stops stopSet) {
	p.lineStart = true
	for {
		if p.eatSeparators() {
			p.lineStart = true
		}
		if p.at(syntax.EOF) || p.stopsHere(stops) {
			return
		}
		p.parseStatement()
		p.lineStart = false
	}
}
