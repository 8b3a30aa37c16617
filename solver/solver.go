/*
File    : expert-system/solver/solver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package solver implements the backward-chaining engine of spec §4.5: given
a knowledge base and a queried variable, recursively attempt to prove the
rules that could conclude it, memoizing completed results and breaking
cycles among in-progress proofs.
*/
package solver

import (
	"github.com/akashmaji946/expert-system/eval"
	"github.com/akashmaji946/expert-system/kb"
)

// Session holds the mutable state of one backward-chaining run: completed
// results (memo), the currently-proving frontier (path), variables where a
// cycle was broken (cycles), and the set of composite conclusions already
// proven true (trueRHS), keyed by their canonical structural literal (spec
// §9). A Session is single-use — create a fresh one per query (spec §4.6,
// §9's Open Question on resetting true_rhs).
type Session struct {
	kb      *kb.KnowledgeBase
	memo    map[rune]eval.TruthValue
	path    map[rune]bool
	cycles  map[rune]bool
	trueRHS map[string]bool

	Trace *Trace
}

// NewSession creates a Session over k with empty memo/path/cycles/trueRHS.
func NewSession(k *kb.KnowledgeBase) *Session {
	return &Session{
		kb:      k,
		memo:    make(map[rune]eval.TruthValue),
		path:    make(map[rune]bool),
		cycles:  make(map[rune]bool),
		trueRHS: make(map[string]bool),
		Trace:   &Trace{},
	}
}

// Solve resolves the TruthValue of v, following spec §4.5's algorithm
// exactly (steps 1-8).
func (s *Session) Solve(v rune) eval.TruthValue {
	// Step 1: initial facts are axioms.
	if s.kb.InitialTrue[v] {
		s.Trace.logFired("%c is an initial fact: True", v)
		return eval.True
	}

	// Step 2: already resolved this session.
	if val, ok := s.memo[v]; ok {
		return val
	}

	// Step 3: cycle — v is already being proved further up this call
	// stack. Not treated as proof of falsity, only as a termination
	// break; the frame that started proving v will still reach its own
	// verdict below.
	if s.path[v] {
		s.cycles[v] = true
		s.Trace.recordCycle(v)
		return eval.Unknown
	}

	// Step 4.
	s.path[v] = true
	foundTrue, foundFalse, indeterminate := false, false, false
	var trueRules, falseRules []int

	lookup := func(x rune) eval.TruthValue { return s.Solve(x) }
	isComposite := func(key string) bool { return s.trueRHS[key] }

	// Step 5: walk by_conclusion[v] in source order.
	for _, rule := range s.kb.ByConclusion[v] {
		premise := eval.EvaluateWithComposites(rule.Premise, lookup, isComposite)
		if premise != eval.True {
			s.Trace.logEval("rule#%d premise %s is %s: does not fire", rule.Index, rule.Premise.Literal(), premise)
			continue
		}

		// Step 5d: record the composite conclusion whenever the rule fires.
		s.trueRHS[rule.Conclusion.Literal()] = true

		polarity, determined := assertedPolarity(rule.Conclusion, v, true)
		if !determined {
			indeterminate = true
			s.Trace.logFired("rule#%d fired but leaves %c undetermined (disjunctive conclusion %s)", rule.Index, v, rule.Conclusion.Literal())
			continue
		}
		if polarity {
			foundTrue = true
			trueRules = append(trueRules, rule.Index)
			s.Trace.logFired("rule#%d fired: %c asserted True", rule.Index, v)
		} else {
			foundFalse = true
			falseRules = append(falseRules, rule.Index)
			s.Trace.logFired("rule#%d fired: %c asserted False", rule.Index, v)
		}
	}

	// Step 6.
	delete(s.path, v)

	// Step 7.
	var verdict eval.TruthValue
	switch {
	case foundTrue && !foundFalse:
		verdict = eval.True
	case !foundTrue && foundFalse:
		verdict = eval.False
	case foundTrue && foundFalse:
		verdict = eval.Unknown
		s.Trace.recordContradiction(v, trueRules, falseRules)
	default:
		if indeterminate {
			verdict = eval.Unknown
		} else {
			verdict = eval.False
		}
	}

	// Step 8.
	s.memo[v] = verdict
	s.Trace.logFired("%c resolved to %s", v, verdict)
	return verdict
}
