package parser

import "vb6syntax/syntax"

// VB6 operator precedence, lowest first. Not sits between the logical
// connectives and the comparisons, which is why Not a = b negates the
// whole comparison. Exponentiation binds tighter than unary minus and
// is the only right-associative operator.
const (
	precImp        = 1
	precEqv        = 2
	precXor        = 3
	precOr         = 4
	precAnd        = 5
	precNot        = 6
	precComparison = 7
	precConcat     = 8
	precAdditive   = 9
	precMod        = 10
	precIntDiv     = 11
	precMul        = 12
	precUnaryMinus = 13
	precPower      = 14
)

// binaryPrec returns the precedence and right-associativity of a binary
// operator kind, or (-1, false) for non-operators.
func binaryPrec(kind syntax.Kind) (int, bool) {
	switch kind {
	case syntax.KwImp:
		return precImp, false
	case syntax.KwEqv:
		return precEqv, false
	case syntax.KwXor:
		return precXor, false
	case syntax.KwOr:
		return precOr, false
	case syntax.KwAnd:
		return precAnd, false
	case syntax.Eq, syntax.Neq, syntax.Lt, syntax.LtEq, syntax.Gt, syntax.GtEq,
		syntax.KwLike, syntax.KwIs:
		return precComparison, false
	case syntax.Amp:
		return precConcat, false
	case syntax.Plus, syntax.Minus:
		return precAdditive, false
	case syntax.KwMod:
		return precMod, false
	case syntax.Backslash:
		return precIntDiv, false
	case syntax.Star, syntax.Slash:
		return precMul, false
	case syntax.Caret:
		return precPower, true
	default:
		return -1, false
	}
}
