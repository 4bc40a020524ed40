// Package cst holds the lossless concrete syntax tree: an arena of
// nodes over a token slice, built strictly in source order. The
// defining property is that concatenating every leaf in depth-first
// order reproduces the input byte-for-byte, whatever the parse
// outcome was.
package cst

import (
	"strings"

	"vb6syntax/source"
	"vb6syntax/syntax"
)

// Tree is an immutable parse result for one file.
type Tree struct {
	file   *source.File
	nodes  *Arena[Node]
	tokens []syntax.Token
	root   NodeID
}

// File returns the parsed file.
func (t *Tree) File() *source.File { return t.file }

// Root returns the id of the Root node.
func (t *Tree) Root() NodeID { return t.root }

// Node resolves an id; NoNode yields nil.
func (t *Tree) Node(id NodeID) *Node { return t.nodes.Get(uint32(id)) }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() uint32 { return t.nodes.Len() }

// Tokens returns the underlying token slice in source order.
// Callers must treat it as read-only.
func (t *Tree) Tokens() []syntax.Token { return t.tokens }

// Kind returns the node's kind, or Unknown for NoNode.
func (t *Tree) Kind(id NodeID) syntax.Kind {
	if n := t.Node(id); n != nil {
		return n.Kind
	}
	return syntax.Unknown
}

// Span returns the node's source span.
func (t *Tree) Span(id NodeID) source.Span {
	if n := t.Node(id); n != nil {
		return n.Span
	}
	return source.Span{}
}

// Children returns the ordered child ids of a node.
// Callers must treat the slice as read-only.
func (t *Tree) Children(id NodeID) []NodeID {
	if n := t.Node(id); n != nil {
		return n.Children
	}
	return nil
}

// Parent returns the parent id, or NoNode for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.Node(id); n != nil {
		return n.Parent
	}
	return NoNode
}

// TokenAt returns the token a leaf node wraps.
func (t *Tree) TokenAt(id NodeID) (syntax.Token, bool) {
	n := t.Node(id)
	if n == nil || !n.IsLeaf() {
		return syntax.Token{}, false
	}
	return t.tokens[n.Token], true
}

// Text reconstructs the exact source text of a subtree by
// concatenating its leaves in depth-first order.
func (t *Tree) Text(id NodeID) string {
	var sb strings.Builder
	t.appendText(&sb, id)
	return sb.String()
}

func (t *Tree) appendText(sb *strings.Builder, id NodeID) {
	n := t.Node(id)
	if n == nil {
		return
	}
	if n.IsLeaf() {
		sb.WriteString(t.tokens[n.Token].Text)
		return
	}
	for _, child := range n.Children {
		t.appendText(sb, child)
	}
}

// FindLeafAt returns the deepest leaf whose span contains the offset,
// preferring the later leaf on exact boundaries.
func (t *Tree) FindLeafAt(off uint32) NodeID {
	id := t.root
	for {
		n := t.Node(id)
		if n == nil || n.IsLeaf() {
			return id
		}
		next := NoNode
		for _, child := range n.Children {
			sp := t.Span(child)
			if sp.Start <= off && (off < sp.End || sp.Start == sp.End && off == sp.End) {
				next = child
			}
		}
		if next == NoNode {
			return id
		}
		id = next
	}
}

// ChildOfKind returns the first direct child with the given kind.
func (t *Tree) ChildOfKind(id NodeID, kind syntax.Kind) NodeID {
	for _, child := range t.Children(id) {
		if t.Kind(child) == kind {
			return child
		}
	}
	return NoNode
}
