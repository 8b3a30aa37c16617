/*
File    : expert-system/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/expert-system/ast"
)

func fixedLookup(values map[rune]TruthValue) Lookup {
	return func(v rune) TruthValue {
		if tv, ok := values[v]; ok {
			return tv
		}
		return Unknown
	}
}

func TestEvaluate_Not(t *testing.T) {
	tests := []struct {
		in  TruthValue
		out TruthValue
	}{
		{True, False},
		{False, True},
		{Unknown, Unknown},
	}
	for _, tc := range tests {
		expr := &ast.Unary{Op: ast.OpNot, Child: &ast.Fact{Name: 'A'}}
		got := Evaluate(expr, fixedLookup(map[rune]TruthValue{'A': tc.in}))
		assert.Equal(t, tc.out, got)
	}
}

func TestEvaluate_AndTable(t *testing.T) {
	tests := []struct{ a, b, want TruthValue }{
		{True, True, True},
		{True, False, False},
		{False, True, False},
		{False, False, False},
		{True, Unknown, Unknown},
		{Unknown, True, Unknown},
		{False, Unknown, False},
		{Unknown, False, False},
		{Unknown, Unknown, Unknown},
	}
	for _, tc := range tests {
		expr := &ast.Binary{Op: ast.OpAnd, Left: &ast.Fact{Name: 'A'}, Right: &ast.Fact{Name: 'B'}}
		got := Evaluate(expr, fixedLookup(map[rune]TruthValue{'A': tc.a, 'B': tc.b}))
		assert.Equal(t, tc.want, got, "AND(%v,%v)", tc.a, tc.b)
	}
}

func TestEvaluate_OrTable(t *testing.T) {
	tests := []struct{ a, b, want TruthValue }{
		{True, True, True},
		{True, False, True},
		{False, True, True},
		{False, False, False},
		{True, Unknown, True},
		{Unknown, True, True},
		{False, Unknown, Unknown},
		{Unknown, False, Unknown},
		{Unknown, Unknown, Unknown},
	}
	for _, tc := range tests {
		expr := &ast.Binary{Op: ast.OpOr, Left: &ast.Fact{Name: 'A'}, Right: &ast.Fact{Name: 'B'}}
		got := Evaluate(expr, fixedLookup(map[rune]TruthValue{'A': tc.a, 'B': tc.b}))
		assert.Equal(t, tc.want, got, "OR(%v,%v)", tc.a, tc.b)
	}
}

func TestEvaluate_XorTable(t *testing.T) {
	tests := []struct{ a, b, want TruthValue }{
		{True, True, False},
		{True, False, True},
		{False, True, True},
		{False, False, False},
		{True, Unknown, Unknown},
		{Unknown, False, Unknown},
		{Unknown, Unknown, Unknown},
	}
	for _, tc := range tests {
		expr := &ast.Binary{Op: ast.OpXor, Left: &ast.Fact{Name: 'A'}, Right: &ast.Fact{Name: 'B'}}
		got := Evaluate(expr, fixedLookup(map[rune]TruthValue{'A': tc.a, 'B': tc.b}))
		assert.Equal(t, tc.want, got, "XOR(%v,%v)", tc.a, tc.b)
	}
}

func TestEvaluate_NotInvolution(t *testing.T) {
	for _, v := range []TruthValue{True, False, Unknown} {
		inner := &ast.Fact{Name: 'A'}
		doubled := &ast.Unary{Op: ast.OpNot, Child: &ast.Unary{Op: ast.OpNot, Child: inner}}
		lookup := fixedLookup(map[rune]TruthValue{'A': v})
		assert.Equal(t, Evaluate(inner, lookup), Evaluate(doubled, lookup))
	}
}

func TestEvaluateWithComposites_ReusesProvenComposite(t *testing.T) {
	// B | C, where B and C are individually Unknown, should read as True
	// once its structural key has been recorded as a proven composite.
	expr := &ast.Binary{Op: ast.OpOr, Left: &ast.Fact{Name: 'B'}, Right: &ast.Fact{Name: 'C'}}
	lookup := fixedLookup(map[rune]TruthValue{})
	isTrue := func(key string) bool { return key == expr.Literal() }

	assert.Equal(t, Unknown, Evaluate(expr, lookup))
	assert.Equal(t, True, EvaluateWithComposites(expr, lookup, isTrue))
}
