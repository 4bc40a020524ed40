package parser_test

import (
	"testing"

	"vb6syntax/cst"
	"vb6syntax/diag"
	"vb6syntax/parser"
	"vb6syntax/syntax"
	"vb6syntax/testkit"
)

// parse runs the full pipeline on src and checks the tree invariants,
// including the byte-for-byte round trip.
func parse(t *testing.T, src string) (*cst.Tree, *diag.Bag) {
	t.Helper()
	tree, bag := parser.FromText("test.bas", []byte(src))
	testkit.CheckTreeInvariants(t, tree)
	return tree, bag
}

// firstOfKind returns the first node of the given kind in depth-first
// order, or NoNode.
func firstOfKind(tree *cst.Tree, kind syntax.Kind) cst.NodeID {
	stack := []cst.NodeID{tree.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if tree.Kind(id) == kind {
			return id
		}
		kids := tree.Children(id)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return cst.NoNode
}

func countOfKind(tree *cst.Tree, kind syntax.Kind) int {
	n := 0
	stack := []cst.NodeID{tree.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if tree.Kind(id) == kind {
			n++
		}
		stack = append(stack, tree.Children(id)...)
	}
	return n
}

// compositeChildren filters a node's children down to composite nodes,
// skipping token leaves (trivia included).
func compositeChildren(tree *cst.Tree, id cst.NodeID) []cst.NodeID {
	var out []cst.NodeID
	for _, child := range tree.Children(id) {
		if n := tree.Node(child); n != nil && !n.IsLeaf() {
			out = append(out, child)
		}
	}
	return out
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func wantKind(t *testing.T, tree *cst.Tree, kind syntax.Kind) cst.NodeID {
	t.Helper()
	id := firstOfKind(tree, kind)
	if id == cst.NoNode {
		t.Fatalf("no %v node in tree:\n%s", kind, tree.Text(tree.Root()))
	}
	return id
}

func wantClean(t *testing.T, bag *diag.Bag) {
	t.Helper()
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestEmptyInput(t *testing.T) {
	tree, bag := parse(t, "")
	wantClean(t, bag)
	root := tree.Root()
	if tree.Kind(root) != syntax.Root {
		t.Fatalf("root kind = %v", tree.Kind(root))
	}
	if firstOfKind(tree, syntax.StatementList) == cst.NoNode {
		t.Errorf("file body list missing")
	}
}

func TestTriviaOnlyInput(t *testing.T) {
	_, bag := parse(t, "' just a comment\n\n  \n")
	wantClean(t, bag)
}

func TestLineContinuationJoinsLogicalLine(t *testing.T) {
	tree, bag := parse(t, "x = 1 + _\n    2\n")
	wantClean(t, bag)
	if got := countOfKind(tree, syntax.AssignmentStatement); got != 1 {
		t.Errorf("continued line split into %d statements", got)
	}
	if firstOfKind(tree, syntax.LineContinuation) == cst.NoNode {
		t.Errorf("continuation token missing from the tree")
	}
}

func TestColonSeparatedStatements(t *testing.T) {
	tree, bag := parse(t, "x = 1: y = 2\n")
	wantClean(t, bag)
	if got := countOfKind(tree, syntax.AssignmentStatement); got != 2 {
		t.Errorf("got %d assignments, want 2", got)
	}
}

func TestCommentsStayInTree(t *testing.T) {
	tree, bag := parse(t, "x = 1 ' trailing\nRem whole line\ny = 2\n")
	wantClean(t, bag)
	if got := countOfKind(tree, syntax.Comment); got != 2 {
		t.Errorf("got %d comment leaves, want 2", got)
	}
}
