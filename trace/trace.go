/*
File    : expert-system/trace/trace.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package trace renders query results and their solver traces to an
io.Writer, using the same color-role convention as the teacher's REPL:
verdict True green, False red, Unknown yellow, diagnostics cyan,
separators blue.
*/
package trace

import (
	"io"

	"github.com/fatih/color"

	"github.com/akashmaji946/expert-system/engine"
	"github.com/akashmaji946/expert-system/eval"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// verdictColor picks the color role for a resolved TruthValue.
func verdictColor(v eval.TruthValue) *color.Color {
	switch v {
	case eval.True:
		return greenColor
	case eval.False:
		return redColor
	default:
		return yellowColor
	}
}

// PrintResults renders one line per query result to w: the verdict, then
// the baseline trace — which rules fired and which contradictions/cycles
// were encountered (spec §6) — always. verbose (the --verbose/-V flag)
// additionally dumps every premise evaluation that did NOT cause a rule to
// fire (SPEC_FULL.md §6); it adds narration, it never changes the
// underlying solve semantics.
func PrintResults(w io.Writer, results []engine.Result, verbose bool) {
	for _, r := range results {
		verdictColor(r.Value).Fprintf(w, "%c is %s\n", r.Variable, r.Value)

		for _, step := range r.Trace.FiredSteps {
			cyanColor.Fprintf(w, "    %s\n", step)
		}
		for _, c := range r.Trace.Contradictions {
			cyanColor.Fprintf(w, "    %s\n", c.String())
		}
		for _, c := range r.Trace.Cycles {
			cyanColor.Fprintf(w, "    %s\n", c.String())
		}

		if verbose {
			for _, step := range r.Trace.EvalSteps {
				cyanColor.Fprintf(w, "    %s\n", step)
			}
		}
	}
}

// PrintSeparator writes a blue separator line, matching the teacher's
// banner-formatting idiom in repl/repl.go.
func PrintSeparator(w io.Writer, line string) {
	blueColor.Fprintf(w, "%s\n", line)
}
