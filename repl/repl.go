/*
File    : expert-system/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the interactive loop of spec §6: after a file's
initial queries run, the user may add/remove initial facts and re-run
queries. The commands edit one session-wide copy of the loaded initial
facts (the loaded knowledge base itself is never changed), and every query
runs in a fresh solver session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/expert-system/engine"
	"github.com/akashmaji946/expert-system/kb"
	"github.com/akashmaji946/expert-system/trace"
)

// Color definitions for REPL output, mirroring the teacher's color-role
// convention: blue separators, green banner, yellow info, red errors, cyan
// instructions.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the interactive session. Rules never change after a file
// is loaded — only InitialTrue can be mutated by interactive commands. A
// "?" command queries the variables it names (or the file's queries when it
// names none) without changing the stored query list.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	// base carries the immutable rule set loaded from file. Start copies its
	// InitialTrue once, so the loaded file's facts are never mutated in
	// place.
	base    *kb.KnowledgeBase
	queries []rune
	verbose bool
}

// NewRepl creates a Repl bound to a loaded knowledge base and its initial
// query list.
func NewRepl(banner, version, author, line, license, prompt string, base *kb.KnowledgeBase, queries []rune, verbose bool) *Repl {
	return &Repl{
		Banner: banner, Version: version, Author: author,
		Line: line, License: license, Prompt: prompt,
		base: base, queries: queries, verbose: verbose,
	}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "+X sets X initially true, -X unsets it")
	cyanColor.Fprintf(writer, "%s\n", "?XYZ re-runs queries for X, Y, Z")
	cyanColor.Fprintf(writer, "%s\n", "/q quits")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the interactive loop. It never mutates r.base.InitialTrue
// directly — it clones it once into a separate *kb.KnowledgeBase, and the
// +X/-X commands edit that clone, so their changes accumulate across
// commands while the file's own facts stay untouched.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	live := cloneFacts(r.base)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == "/q" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, live)
	}
}

// cloneFacts copies base's rules (shared, immutable) into a fresh
// KnowledgeBase with its own InitialTrue map, so interactive mutation never
// touches the originally-loaded facts.
func cloneFacts(base *kb.KnowledgeBase) *kb.KnowledgeBase {
	clone := &kb.KnowledgeBase{
		InitialTrue:  make(map[rune]bool, len(base.InitialTrue)),
		Rules:        base.Rules,
		ByConclusion: base.ByConclusion,
	}
	for v, ok := range base.InitialTrue {
		clone.InitialTrue[v] = ok
	}
	return clone
}

// executeWithRecovery interprets one interactive command line, with panic
// recovery so a malformed line can never bring down the session (mirroring
// the teacher's per-line recovery in the GoMix REPL).
func (r *Repl) executeWithRecovery(writer io.Writer, line string, live *kb.KnowledgeBase) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	switch line[0] {
	case '+':
		for _, c := range line[1:] {
			if isVariable(c) {
				live.InitialTrue[c] = true
			}
		}
	case '-':
		for _, c := range line[1:] {
			if isVariable(c) {
				delete(live.InitialTrue, c)
			}
		}
	case '?':
		var vars []rune
		for _, c := range line[1:] {
			if isVariable(c) {
				vars = append(vars, c)
			}
		}
		if len(vars) == 0 {
			vars = r.queries
		}
		results := engine.RunQueries(live, vars)
		trace.PrintResults(writer, results, r.verbose)
	default:
		redColor.Fprintf(writer, "unrecognised command %q: use +X, -X, ?X..., or /q\n", line)
	}
}

func isVariable(c rune) bool { return c >= 'A' && c <= 'Z' }
