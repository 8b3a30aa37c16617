/*
File    : expert-system/solver/trace.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package solver

import "fmt"

// Contradiction names a variable independently proven both True and False
// within the same session, and the rule indices responsible for each side
// (spec §4.5 step 7, §7, §8 invariant 7).
type Contradiction struct {
	Variable   rune
	TrueRules  []int
	FalseRules []int
}

func (c Contradiction) String() string {
	return fmt.Sprintf("contradiction on %c: rules %v assert True, rules %v assert False",
		c.Variable, c.TrueRules, c.FalseRules)
}

// Cycle names a variable whose proof attempt looped back on itself; the
// loop was broken by treating the revisit as Unknown (spec §4.5 step 3,
// §7).
type Cycle struct {
	Variable rune
}

func (c Cycle) String() string {
	return fmt.Sprintf("cycle detected on %c", c.Variable)
}

// Trace accumulates the human-readable narration of one Solve call, split
// into two streams so a caller can print one without the other (spec §6's
// baseline output is "which rules fired and which contradictions or
// cycles were encountered"; --verbose/-V additionally dumps every premise
// evaluation, per SPEC_FULL.md §6):
//
//   - FiredSteps: axioms resolved, rules that fired (or fired but left
//     their conclusion undetermined), and final verdicts — the baseline
//     narration.
//   - EvalSteps: premise evaluations that did NOT cause a rule to fire —
//     noise useful only in verbose mode.
//
// Contradictions and Cycles never abort a session (spec §7) — they are
// purely informational, gathered here for the trace package to render.
type Trace struct {
	FiredSteps     []string
	EvalSteps      []string
	Contradictions []Contradiction
	Cycles         []Cycle
}

func (t *Trace) logFired(format string, args ...any) {
	t.FiredSteps = append(t.FiredSteps, fmt.Sprintf(format, args...))
}

func (t *Trace) logEval(format string, args ...any) {
	t.EvalSteps = append(t.EvalSteps, fmt.Sprintf(format, args...))
}

func (t *Trace) recordContradiction(v rune, trueRules, falseRules []int) {
	t.Contradictions = append(t.Contradictions, Contradiction{Variable: v, TrueRules: trueRules, FalseRules: falseRules})
}

func (t *Trace) recordCycle(v rune) {
	t.Cycles = append(t.Cycles, Cycle{Variable: v})
}
