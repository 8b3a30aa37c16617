/*
File    : expert-system/solver/polarity.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package solver

import "github.com/akashmaji946/expert-system/ast"

// assertedPolarity walks a fired rule's conclusion tree looking for what
// it asserts about target, starting from the root polarity True (spec
// §4.5 step 5c): AND distributes the current polarity across both
// children, NOT flips it, and a bare Fact matching target asserts target
// with the accumulated polarity. OR and XOR do not determine any
// individual sub-fact — reaching one reports "not determined" for that
// branch, even though target may be mentioned beneath it.
func assertedPolarity(expr ast.Expr, target rune, polarity bool) (value bool, determined bool) {
	switch n := expr.(type) {
	case *ast.Fact:
		if n.Name == target {
			return polarity, true
		}
		return false, false

	case *ast.Unary:
		if n.Op == ast.OpNot {
			return assertedPolarity(n.Child, target, !polarity)
		}
		return false, false

	case *ast.Binary:
		if n.Op == ast.OpAnd {
			if v, ok := assertedPolarity(n.Left, target, polarity); ok {
				return v, ok
			}
			return assertedPolarity(n.Right, target, polarity)
		}
		// OR/XOR: no single sub-fact is individually forced.
		return false, false
	}
	return false, false
}
