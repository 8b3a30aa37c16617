/*
File    : expert-system/kb/kb_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/expert-system/ast"
)

func TestAddRule_IndexesByEveryConclusionVariable(t *testing.T) {
	k := New()
	rule := &ast.Rule{
		Premise:    &ast.Fact{Name: 'A'},
		Conclusion: &ast.Binary{Op: ast.OpOr, Left: &ast.Fact{Name: 'B'}, Right: &ast.Fact{Name: 'C'}},
		Index:      0,
	}
	k.AddRule(rule)

	assert.Len(t, k.Rules, 1)
	assert.Equal(t, []*ast.Rule{rule}, k.ByConclusion['B'])
	assert.Equal(t, []*ast.Rule{rule}, k.ByConclusion['C'])
	assert.Nil(t, k.ByConclusion['A'])
}

func TestAddRule_PreservesSourceOrderWithinBucket(t *testing.T) {
	k := New()
	r1 := &ast.Rule{Premise: &ast.Fact{Name: 'X'}, Conclusion: &ast.Fact{Name: 'Z'}, Index: 0}
	r2 := &ast.Rule{Premise: &ast.Fact{Name: 'Y'}, Conclusion: &ast.Fact{Name: 'Z'}, Index: 1}
	k.AddRule(r1)
	k.AddRule(r2)

	assert.Equal(t, []*ast.Rule{r1, r2}, k.ByConclusion['Z'])
}

// TestAddRule_StampsIndexFromPositionNotCallerValue covers a biconditional
// expansion: two rules parsed off the same source line both arrive with
// whatever (possibly equal) Index the caller happened to set. AddRule must
// still give them distinct, position-based numbers, since diagnostics
// identify rules by Index and two rules sharing one number would make a
// contradiction between them look like self-conflict.
func TestAddRule_StampsIndexFromPositionNotCallerValue(t *testing.T) {
	k := New()
	r1 := &ast.Rule{Premise: &ast.Fact{Name: 'A'}, Conclusion: &ast.Fact{Name: 'B'}, Index: 7}
	r2 := &ast.Rule{Premise: &ast.Fact{Name: 'B'}, Conclusion: &ast.Fact{Name: 'A'}, Index: 7}
	k.AddRule(r1)
	k.AddRule(r2)

	assert.Equal(t, 0, r1.Index)
	assert.Equal(t, 1, r2.Index)
}
