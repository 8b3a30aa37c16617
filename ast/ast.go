/*
File    : expert-system/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package ast defines the expression tree used throughout the expert system:
Fact, Unary(NOT) and Binary(AND/OR/XOR) nodes (spec §3). Trees are built
once by the parser and never mutated afterward — every node here is
immutable by convention (no setters, only constructors).
*/
package ast

import (
	"fmt"

	"github.com/akashmaji946/expert-system/lexer"
)

// Op identifies a connective. NOT is unary; AND/OR/XOR are binary.
type Op string

const (
	OpNot Op = "!"
	OpAnd Op = "+"
	OpOr  Op = "|"
	OpXor Op = "^"
)

// Visitor implements the visitor pattern over the three node shapes, for
// callers that want to walk a tree without a type switch at every call
// site.
type Visitor interface {
	VisitFact(n *Fact)
	VisitUnary(n *Unary)
	VisitBinary(n *Binary)
}

// Expr is the interface implemented by every expression node.
type Expr interface {
	// Literal returns the node's canonical textual form, used both for
	// human-readable traces and as the structural key fed into the
	// solver's true_rhs set (spec §9).
	Literal() string
	Accept(v Visitor)
}

// Fact is a leaf node naming a single propositional variable.
type Fact struct {
	Name rune
}

func (f *Fact) Literal() string  { return string(f.Name) }
func (f *Fact) Accept(v Visitor) { v.VisitFact(f) }

// Unary is a NOT node wrapping a single child expression.
type Unary struct {
	Op    Op
	Child Expr
}

func (u *Unary) Literal() string  { return fmt.Sprintf("!%s", u.Child.Literal()) }
func (u *Unary) Accept(v Visitor) { v.VisitUnary(u) }

// Binary is an AND/OR/XOR node over two child expressions.
type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (b *Binary) Literal() string {
	return fmt.Sprintf("(%s%s%s)", b.Left.Literal(), string(b.Op), b.Right.Literal())
}
func (b *Binary) Accept(v Visitor) { v.VisitBinary(b) }

// Rule is a single (premise, conclusion) pair (spec §3). Index records the
// rule's 0-based position in kb.Rules, used by diagnostics that name
// "conflicting rules" (spec §4.5 step 7). It is stamped by
// KnowledgeBase.AddRule, not by the parser — one source line (a
// biconditional) can expand into two Rule values that must each get their
// own number.
type Rule struct {
	Premise    Expr
	Conclusion Expr
	Index      int
	// SourceLine is the 1-based line this rule was parsed from, kept for
	// error/trace context.
	SourceLine int
}

// String renders the rule as "rule#<index> (<premise> => <conclusion>)" for
// traces and diagnostics.
func (r *Rule) String() string {
	return fmt.Sprintf("rule#%d (%s => %s)", r.Index, r.Premise.Literal(), r.Conclusion.Literal())
}

// TokenOp maps a lexer token type to the Op it represents, used by the
// parser when materializing a Unary/Binary node off the shunting-yard
// operator stack.
func TokenOp(t lexer.TokenType) (Op, bool) {
	switch t {
	case lexer.NOT:
		return OpNot, true
	case lexer.AND:
		return OpAnd, true
	case lexer.OR:
		return OpOr, true
	case lexer.XOR:
		return OpXor, true
	default:
		return "", false
	}
}
