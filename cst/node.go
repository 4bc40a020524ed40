package cst

import (
	"vb6syntax/source"
	"vb6syntax/syntax"
)

// NodeID identifies a node inside one Tree. 0 means none.
type NodeID uint32

// NoNode is the absent-node sentinel.
const NoNode NodeID = 0

// Node is one element of the concrete syntax tree. Leaves wrap exactly
// one token; composites own an ordered child list whose spans tile the
// composite's span. Nothing is ever dropped: trivia and Unknown tokens
// are leaves like any other.
type Node struct {
	Kind syntax.Kind
	Span source.Span
	// Token indexes the tree's token slice for leaves, -1 for composites.
	Token    int32
	Parent   NodeID
	Children []NodeID
}

// IsLeaf reports whether the node wraps a single token.
func (n *Node) IsLeaf() bool {
	return n.Token >= 0
}
