/*
File    : expert-system/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "github.com/akashmaji946/expert-system/ast"

// Lookup resolves the current TruthValue of a single variable. The solver
// supplies an implementation that recursively invokes Solve for any
// variable not yet memoized (spec §4.5 step 5a).
type Lookup func(v rune) TruthValue

// CompositeCheck reports whether the structural key of a composite
// conclusion expression has already been proven true (spec §4.5's
// composite-RHS reuse, §9). A nil CompositeCheck is treated as "never
// true", giving plain three-valued evaluation with no memoized composites.
type CompositeCheck func(key string) bool

// Evaluate computes the TruthValue of expr under lookup, following the
// truth tables of spec §4.4 exactly. It is pure with respect to expr: the
// same (expr, lookup) pair always yields the same result.
func Evaluate(expr ast.Expr, lookup Lookup) TruthValue {
	return EvaluateWithComposites(expr, lookup, nil)
}

// EvaluateWithComposites is Evaluate extended with composite-RHS reuse: if
// a sub-expression's structural literal matches a key isTrue reports true
// for, that sub-expression evaluates to True outright, even though its own
// variables may still be Unknown (spec §4.5, §9).
func EvaluateWithComposites(expr ast.Expr, lookup Lookup, isTrue CompositeCheck) TruthValue {
	if isTrue != nil && isTrue(expr.Literal()) {
		return True
	}

	switch n := expr.(type) {
	case *ast.Fact:
		return lookup(n.Name)

	case *ast.Unary:
		return evalNot(EvaluateWithComposites(n.Child, lookup, isTrue))

	case *ast.Binary:
		left := EvaluateWithComposites(n.Left, lookup, isTrue)
		right := EvaluateWithComposites(n.Right, lookup, isTrue)
		switch n.Op {
		case ast.OpAnd:
			return evalAnd(left, right)
		case ast.OpOr:
			return evalOr(left, right)
		case ast.OpXor:
			return evalXor(left, right)
		}
	}

	// Unreachable for well-formed trees: the parser only ever produces
	// Fact/Unary/Binary nodes with one of the four known operators.
	return Unknown
}

// evalNot: True<->False swap, Unknown fixed (spec §4.4).
func evalNot(v TruthValue) TruthValue {
	switch v {
	case True:
		return False
	case False:
		return True
	default:
		return Unknown
	}
}

// evalAnd: False dominates; otherwise Unknown dominates over True (spec §4.4).
func evalAnd(a, b TruthValue) TruthValue {
	if a == False || b == False {
		return False
	}
	if a == Unknown || b == Unknown {
		return Unknown
	}
	return True
}

// evalOr: True dominates; otherwise Unknown dominates over False (spec §4.4).
func evalOr(a, b TruthValue) TruthValue {
	if a == True || b == True {
		return True
	}
	if a == Unknown || b == Unknown {
		return Unknown
	}
	return False
}

// evalXor: Unknown in either operand yields Unknown; otherwise standard
// two-valued XOR (spec §4.4).
func evalXor(a, b TruthValue) TruthValue {
	if a == Unknown || b == Unknown {
		return Unknown
	}
	return boolToTruth(truthToBool(a) != truthToBool(b))
}

func truthToBool(v TruthValue) bool { return v == True }

func boolToTruth(b bool) TruthValue {
	if b {
		return True
	}
	return False
}
