package parser_test

import (
	"testing"

	"vb6syntax/cst"
	"vb6syntax/syntax"
)

// rhs returns the value expression of the first assignment in src.
func rhs(t *testing.T, src string) (*cst.Tree, cst.NodeID) {
	t.Helper()
	tree, bag := parse(t, src)
	wantClean(t, bag)
	asn := wantKind(t, tree, syntax.AssignmentStatement)
	kids := compositeChildren(tree, asn)
	if len(kids) < 2 {
		t.Fatalf("assignment has %d composite children, want target and value", len(kids))
	}
	return tree, kids[len(kids)-1]
}

func TestMulBindsTighterThanAdd(t *testing.T) {
	tree, top := rhs(t, "x = 1 + 2 * 3\n")
	if tree.Kind(top) != syntax.BinaryExpression {
		t.Fatalf("top = %v", tree.Kind(top))
	}
	if tree.ChildOfKind(top, syntax.Plus) == cst.NoNode {
		t.Errorf("top operator should be +")
	}
	inner := tree.ChildOfKind(top, syntax.BinaryExpression)
	if inner == cst.NoNode {
		t.Fatalf("2 * 3 did not nest under +")
	}
	if tree.ChildOfKind(inner, syntax.Star) == cst.NoNode {
		t.Errorf("inner operator should be *")
	}
	if got := tree.Text(inner); got != "2 * 3" {
		t.Errorf("inner text = %q", got)
	}
}

func TestParensOverridePrecedence(t *testing.T) {
	tree, top := rhs(t, "x = (1 + 2) * 3\n")
	if tree.ChildOfKind(top, syntax.Star) == cst.NoNode {
		t.Errorf("top operator should be *")
	}
	if tree.ChildOfKind(top, syntax.ParenthesizedExpression) == cst.NoNode {
		t.Errorf("grouped operand lost its parentheses node")
	}
}

func TestPowerIsRightAssociative(t *testing.T) {
	tree, top := rhs(t, "x = 2 ^ 3 ^ 2\n")
	if tree.Kind(top) != syntax.BinaryExpression {
		t.Fatalf("top = %v", tree.Kind(top))
	}
	inner := tree.ChildOfKind(top, syntax.BinaryExpression)
	if inner == cst.NoNode {
		t.Fatalf("right operand should nest")
	}
	if got := tree.Text(inner); got != "3 ^ 2" {
		t.Errorf("nested operand = %q, want 3 ^ 2", got)
	}
}

func TestUnaryMinusBindsLooserThanPower(t *testing.T) {
	// -2 ^ 2 is -(2 ^ 2).
	tree, top := rhs(t, "x = -2 ^ 2\n")
	if tree.Kind(top) != syntax.UnaryExpression {
		t.Fatalf("top = %v, want UnaryExpression", tree.Kind(top))
	}
	pow := tree.ChildOfKind(top, syntax.BinaryExpression)
	if pow == cst.NoNode || tree.ChildOfKind(pow, syntax.Caret) == cst.NoNode {
		t.Errorf("power did not nest under the negation")
	}
}

func TestNotNegatesComparison(t *testing.T) {
	// Not a = b parses as Not (a = b).
	tree, top := rhs(t, "x = Not a = b\n")
	if tree.Kind(top) != syntax.UnaryExpression {
		t.Fatalf("top = %v, want UnaryExpression", tree.Kind(top))
	}
	cmp := tree.ChildOfKind(top, syntax.BinaryExpression)
	if cmp == cst.NoNode || tree.ChildOfKind(cmp, syntax.Eq) == cst.NoNode {
		t.Errorf("comparison did not nest under Not")
	}
}

func TestComparisonBindsLooserThanConcat(t *testing.T) {
	tree, top := rhs(t, "x = a & b = c\n")
	if tree.ChildOfKind(top, syntax.Eq) == cst.NoNode {
		t.Errorf("top operator should be =")
	}
	inner := tree.ChildOfKind(top, syntax.BinaryExpression)
	if inner == cst.NoNode || tree.ChildOfKind(inner, syntax.Amp) == cst.NoNode {
		t.Errorf("concatenation did not nest under the comparison")
	}
}

func TestLogicalOperatorLadder(t *testing.T) {
	// And binds tighter than Or.
	tree, top := rhs(t, "x = a Or b And c\n")
	if tree.ChildOfKind(top, syntax.KwOr) == cst.NoNode {
		t.Errorf("top operator should be Or")
	}
	inner := tree.ChildOfKind(top, syntax.BinaryExpression)
	if inner == cst.NoNode || tree.ChildOfKind(inner, syntax.KwAnd) == cst.NoNode {
		t.Errorf("And did not nest under Or")
	}
}

func TestLikeAndIsAreComparisons(t *testing.T) {
	tree, top := rhs(t, "x = s Like \"a*\"\n")
	if tree.ChildOfKind(top, syntax.KwLike) == cst.NoNode {
		t.Errorf("Like should be the binary operator")
	}
	tree2, top2 := rhs(t, "x = a Is Nothing\n")
	if tree2.ChildOfKind(top2, syntax.KwIs) == cst.NoNode {
		t.Errorf("Is should be the binary operator")
	}
}

func TestMemberAccessChain(t *testing.T) {
	tree, bag := parse(t, "a.b.c = 1\n")
	wantClean(t, bag)
	outer := wantKind(t, tree, syntax.MemberAccessExpression)
	if tree.ChildOfKind(outer, syntax.MemberAccessExpression) == cst.NoNode {
		t.Errorf("a.b should nest inside a.b.c")
	}
	if got := tree.Text(outer); got != "a.b.c" {
		t.Errorf("chain text = %q", got)
	}
}

func TestBangMemberAccess(t *testing.T) {
	tree, bag := parse(t, "v = rs!Name\n")
	wantClean(t, bag)
	ma := wantKind(t, tree, syntax.MemberAccessExpression)
	if tree.ChildOfKind(ma, syntax.Bang) == cst.NoNode {
		t.Errorf("dictionary access should keep its ! leaf")
	}
}

func TestCallExpressionArguments(t *testing.T) {
	tree, bag := parse(t, "y = f(1, , n:=2)\n")
	wantClean(t, bag)
	call := wantKind(t, tree, syntax.CallExpression)
	args := tree.ChildOfKind(call, syntax.ArgumentList)
	if args == cst.NoNode {
		t.Fatalf("call has no argument list")
	}
	// The empty slot contributes no Argument node.
	if got := countOfKind(tree, syntax.Argument); got != 2 {
		t.Errorf("got %d arguments, want 2", got)
	}
}

func TestNewAndTypeOfAndAddressOf(t *testing.T) {
	tree, bag := parse(t, "Set o = New Scripting.Dictionary\n")
	wantClean(t, bag)
	ne := wantKind(t, tree, syntax.NewExpression)
	if tree.ChildOfKind(ne, syntax.MemberAccessExpression) == cst.NoNode {
		t.Errorf("dotted type name missing under New")
	}

	tree2, bag2 := parse(t, "ok = TypeOf o Is Collection\n")
	wantClean(t, bag2)
	wantKind(t, tree2, syntax.TypeOfExpression)

	tree3, bag3 := parse(t, "h = AddressOf Handler\n")
	wantClean(t, bag3)
	wantKind(t, tree3, syntax.AddressOfExpression)
}

func TestLiteralForms(t *testing.T) {
	srcs := []string{
		"x = 1.5E+10#\n",
		"x = &HFF&\n",
		"s = \"he said \"\"hi\"\"\"\n",
		"d = #12/31/1999#\n",
		"b = True\n",
		"v = Empty\n",
	}
	for _, src := range srcs {
		tree, bag := parse(t, src)
		wantClean(t, bag)
		if firstOfKind(tree, syntax.LiteralExpression) == cst.NoNode {
			t.Errorf("%q produced no literal node", src)
		}
	}
}

func TestSigilNamesAreIdentifiers(t *testing.T) {
	tree, bag := parse(t, "Mid$(s, 1, 2) = \"ab\"\n")
	wantClean(t, bag)
	wantKind(t, tree, syntax.AssignmentStatement)
	call := wantKind(t, tree, syntax.CallExpression)
	if got := tree.Text(call); got != "Mid$(s, 1, 2)" {
		t.Errorf("call text = %q", got)
	}
}
