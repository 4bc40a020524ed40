package cst

import (
	"fmt"

	"vb6syntax/source"
	"vb6syntax/syntax"
)

// Builder assembles a Tree strictly in source order. The parser opens
// composite nodes with StartNode, feeds every token (trivia included)
// through Token, and closes with FinishNode. Checkpoints allow wrapping
// already-built children after the fact, which is how left-recursive
// expressions are built without backtracking.
type Builder struct {
	file   *source.File
	nodes  *Arena[Node]
	tokens []syntax.Token
	stack  []openNode
	// off is the end of the last token pushed; empty nodes collapse here.
	off uint32
}

type openNode struct {
	kind     syntax.Kind
	children []NodeID
}

// NewBuilder starts a tree for one file with the Root node open.
func NewBuilder(file *source.File) *Builder {
	b := &Builder{
		file:  file,
		nodes: NewArena[Node](uint(len(file.Content)/8 + 16)),
	}
	b.stack = append(b.stack, openNode{kind: syntax.Root})
	return b
}

// StartNode opens a composite node; children go to it until FinishNode.
func (b *Builder) StartNode(kind syntax.Kind) {
	b.stack = append(b.stack, openNode{kind: kind})
}

// Token appends one token as a leaf of the current open node.
func (b *Builder) Token(tok syntax.Token) {
	idx := int32(len(b.tokens))
	b.tokens = append(b.tokens, tok)
	id := NodeID(b.nodes.Allocate(Node{
		Kind:  tok.Kind,
		Span:  tok.Span,
		Token: idx,
	}))
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, id)
	b.off = tok.Span.End
}

// FinishNode closes the current open node and attaches it to its
// parent. A node finished with no children gets a zero-width span at
// the current position.
func (b *Builder) FinishNode() {
	if len(b.stack) <= 1 {
		panic("cst: FinishNode without matching StartNode")
	}
	frame := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	id := b.seal(frame)
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, id)
}

// Checkpoint marks the current position inside the open node. A later
// StartNodeAt with this mark wraps everything built since.
type Checkpoint struct {
	depth    int
	children int
}

func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint{
		depth:    len(b.stack),
		children: len(b.stack[len(b.stack)-1].children),
	}
}

// StartNodeAt opens a node that adopts the children built since the
// checkpoint. The checkpoint must belong to the current open node.
func (b *Builder) StartNodeAt(cp Checkpoint, kind syntax.Kind) {
	if cp.depth != len(b.stack) {
		panic(fmt.Sprintf("cst: checkpoint depth %d does not match open node depth %d", cp.depth, len(b.stack)))
	}
	top := &b.stack[len(b.stack)-1]
	adopted := append([]NodeID(nil), top.children[cp.children:]...)
	top.children = top.children[:cp.children]
	b.stack = append(b.stack, openNode{kind: kind, children: adopted})
}

// Finish seals the Root node and returns the completed tree.
func (b *Builder) Finish() *Tree {
	if len(b.stack) != 1 {
		panic(fmt.Sprintf("cst: Finish with %d unclosed nodes", len(b.stack)-1))
	}
	frame := b.stack[0]
	b.stack = nil
	root := b.seal(frame)
	return &Tree{
		file:   b.file,
		nodes:  b.nodes,
		tokens: b.tokens,
		root:   root,
	}
}

func (b *Builder) seal(frame openNode) NodeID {
	span := source.Span{File: b.file.ID, Start: b.off, End: b.off}
	if len(frame.children) > 0 {
		span.Start = b.nodes.Get(uint32(frame.children[0])).Span.Start
		span.End = b.nodes.Get(uint32(frame.children[len(frame.children)-1])).Span.End
	}
	id := NodeID(b.nodes.Allocate(Node{
		Kind:     frame.kind,
		Span:     span,
		Token:    -1,
		Children: frame.children,
	}))
	for _, child := range frame.children {
		b.nodes.Get(uint32(child)).Parent = id
	}
	return id
}
