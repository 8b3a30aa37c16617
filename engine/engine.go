/*
File    : expert-system/engine/engine.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package engine is the thin query runner of spec §4.6: for each queried
variable, in source order, it resets per-query solver state and reports the
verdict plus trace.
*/
package engine

import (
	"github.com/akashmaji946/expert-system/eval"
	"github.com/akashmaji946/expert-system/kb"
	"github.com/akashmaji946/expert-system/solver"
)

// Result is one query's outcome: the variable asked about, its resolved
// TruthValue, and the trace of rule firings/diagnostics that produced it.
type Result struct {
	Variable rune
	Value    eval.TruthValue
	Trace    *solver.Trace
}

// RunQueries resolves every variable in queries, in order, against k. Each
// query gets a brand new solver.Session — memo/path/cycles/trueRHS never
// carry over between queries (spec §4.6, §9's Open Question resolution),
// so queries within one run are independent of each other.
func RunQueries(k *kb.KnowledgeBase, queries []rune) []Result {
	results := make([]Result, 0, len(queries))
	for _, v := range queries {
		s := solver.NewSession(k)
		value := s.Solve(v)
		results = append(results, Result{Variable: v, Value: value, Trace: s.Trace})
	}
	return results
}
