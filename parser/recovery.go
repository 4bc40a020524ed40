package parser

import (
	"vb6syntax/syntax"
)

// stopSet tells a statement list which tokens belong to the enclosing
// block and must not be consumed: direct closers like Else or Next, and
// End followed by one of the endWith kinds. A bare End (End-of-program
// statement) never stops a list.
type stopSet struct {
	kinds   []syntax.Kind
	endWith []syntax.Kind
}

func (p *Parser) stopsHere(stops stopSet) bool {
	k := p.peek().Kind
	for _, want := range stops.kinds {
		if k == want {
			return true
		}
	}
	if k == syntax.KwEnd {
		after := p.peekN(1).Kind
		for _, want := range stops.endWith {
			if after == want {
				return true
			}
		}
	}
	return false
}

// skipToLineEnd wraps everything up to the next statement separator in
// one Unknown node, so the bad tokens stay in the tree but inside the
// construct that failed. Inside a single-line If the wrap also stops at
// Else, which belongs to the If. Reports nothing itself; callers
// report first.
func (p *Parser) skipToLineEnd() {
	if p.atSkipStop() {
		return
	}
	p.b.StartNode(syntax.Unknown)
	for !p.atSkipStop() {
		p.bump()
	}
	p.b.FinishNode()
}

func (p *Parser) atSkipStop() bool {
	return p.atLineEnd() || p.inSingleLineIf && p.at(syntax.KwElse)
}

// bumpUnknown wraps exactly the next token in an Unknown node.
func (p *Parser) bumpUnknown() {
	p.b.StartNode(syntax.Unknown)
	p.bump()
	p.b.FinishNode()
}
