/*
File    : expert-system/kb/kb.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package kb holds the immutable knowledge base (spec §3): the initial facts,
the rule list in source order, and an index from conclusion variable to the
rules that can prove it. It is built once by loader.Load and never mutated
afterward — the solver only reads it.
*/
package kb

import "github.com/akashmaji946/expert-system/ast"

// KnowledgeBase is the immutable result of loading an input file.
type KnowledgeBase struct {
	// InitialTrue is the set of variables asserted axiomatically true by
	// the "=" line (spec §6).
	InitialTrue map[rune]bool
	// Rules holds every rule in source order, after biconditional
	// expansion (spec §4.3).
	Rules []*ast.Rule
	// ByConclusion indexes Rules under every variable their conclusion
	// mentions, preserving insertion (source) order within each bucket
	// (spec invariant (b)).
	ByConclusion map[rune][]*ast.Rule
	// Queries is the list of variables named by the "?" line, in source
	// order (spec §6).
	Queries []rune
}

// New builds an empty KnowledgeBase; loader.Load populates it incrementally
// while reading an input file.
func New() *KnowledgeBase {
	return &KnowledgeBase{
		InitialTrue:  make(map[rune]bool),
		ByConclusion: make(map[rune][]*ast.Rule),
	}
}

// AddRule stamps rule.Index from its position in Rules, appends it in
// source order, and indexes it under every variable its conclusion
// mentions, so the solver's by_conclusion[v] lookup (spec §4.5 step 5)
// finds it regardless of how deeply that variable is nested under
// AND/OR/XOR/NOT. Stamping the index here, rather than trusting whatever
// the parser set, guarantees each rule gets a distinct number even when a
// single source line (a biconditional) expands into two rules — the
// loader's per-line counter cannot tell those two apart, but len(k.Rules)
// always can.
func (k *KnowledgeBase) AddRule(rule *ast.Rule) {
	rule.Index = len(k.Rules)
	k.Rules = append(k.Rules, rule)
	for v := range mentionedVariables(rule.Conclusion) {
		k.ByConclusion[v] = append(k.ByConclusion[v], rule)
	}
}

// mentionedVariables collects every Fact variable reachable in expr.
func mentionedVariables(expr ast.Expr) map[rune]struct{} {
	out := make(map[rune]struct{})
	var walk func(ast.Expr)
	walk = func(e ast.Expr) {
		switch n := e.(type) {
		case *ast.Fact:
			out[n.Name] = struct{}{}
		case *ast.Unary:
			walk(n.Child)
		case *ast.Binary:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(expr)
	return out
}
