// Package testkit provides invariant checkers shared by the lexer and
// parser test suites.
package testkit

import (
	"testing"

	"vb6syntax/cst"
	"vb6syntax/lexer"
	"vb6syntax/syntax"
)

// CheckStreamInvariants verifies the structural guarantees of a token
// stream: spans tile the whole file without gaps or overlaps, each
// token text is exactly its source slice, and the stream ends with a
// zero-width EOF at end of content.
func CheckStreamInvariants(t *testing.T, s *lexer.TokenStream) {
	t.Helper()
	content := s.File.Content

	if s.Len() == 0 {
		t.Fatalf("stream has no tokens, want at least EOF")
	}
	last := s.Tokens[s.Len()-1]
	if last.Kind != syntax.EOF {
		t.Errorf("last token kind = %v, want EOF", last.Kind)
	}
	if last.Span.Start != uint32(len(content)) || last.Span.End != uint32(len(content)) {
		t.Errorf("EOF span = %v, want zero-width at %d", last.Span, len(content))
	}

	var off uint32
	for i, tok := range s.Tokens[:s.Len()-1] {
		if tok.Span.Start != off {
			t.Errorf("token %d (%v %q) starts at %d, want %d", i, tok.Kind, tok.Text, tok.Span.Start, off)
		}
		if tok.Span.End < tok.Span.Start {
			t.Errorf("token %d (%v) has inverted span %v", i, tok.Kind, tok.Span)
		}
		if tok.Span.End == tok.Span.Start {
			t.Errorf("token %d (%v) is empty; only EOF may be zero-width", i, tok.Kind)
		}
		if got := string(content[tok.Span.Start:tok.Span.End]); got != tok.Text {
			t.Errorf("token %d (%v) text = %q, want source slice %q", i, tok.Kind, tok.Text, got)
		}
		off = tok.Span.End
	}
	if off != uint32(len(content)) {
		t.Errorf("tokens cover [0,%d), want [0,%d)", off, len(content))
	}
}

// CheckTreeInvariants verifies the lossless tree guarantees: leaf
// concatenation reproduces the input byte-for-byte, child spans tile
// their parent in order, and parent links agree with child lists.
func CheckTreeInvariants(t *testing.T, tr *cst.Tree) {
	t.Helper()
	content := tr.File().Content

	if got := tr.Text(tr.Root()); got != string(content) {
		t.Errorf("leaf concatenation differs from input:\n got: %q\nwant: %q", got, string(content))
	}

	rootSpan := tr.Span(tr.Root())
	if rootSpan.Start != 0 || rootSpan.End != uint32(len(content)) {
		t.Errorf("root span = %v, want [0,%d)", rootSpan, len(content))
	}

	var walk func(id cst.NodeID)
	walk = func(id cst.NodeID) {
		n := tr.Node(id)
		if n == nil {
			t.Errorf("dangling node id %d", id)
			return
		}
		if n.IsLeaf() {
			tok, ok := tr.TokenAt(id)
			if !ok {
				t.Errorf("leaf %d has no token", id)
				return
			}
			if tok.Span != n.Span {
				t.Errorf("leaf %d span %v differs from token span %v", id, n.Span, tok.Span)
			}
			return
		}
		off := n.Span.Start
		for _, child := range n.Children {
			cn := tr.Node(child)
			if cn == nil {
				t.Errorf("node %d has dangling child %d", id, child)
				continue
			}
			if cn.Parent != id {
				t.Errorf("child %d parent = %d, want %d", child, cn.Parent, id)
			}
			if cn.Span.Start != off {
				t.Errorf("child %d (%v) starts at %d, want %d", child, cn.Kind, cn.Span.Start, off)
			}
			off = cn.Span.End
			walk(child)
		}
		if len(n.Children) > 0 && off != n.Span.End {
			t.Errorf("node %d (%v) children end at %d, span ends at %d", id, n.Kind, off, n.Span.End)
		}
	}
	walk(tr.Root())
}
