/*
File    : expert-system/loader/loader.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package loader reads an input file and assembles an immutable
kb.KnowledgeBase from it, per spec §6's grammar: rule lines, then exactly
one "=" facts line, then exactly one "?" queries line. This replaces the
teacher's stateful file package — the expert-system format is read once,
wholesale, never reopened or seeked, so there is no counterpart here to
fopen/fread/fwrite/fseek.
*/
package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/akashmaji946/expert-system/kb"
	"github.com/akashmaji946/expert-system/lexer"
	"github.com/akashmaji946/expert-system/parser"
)

// InputError reports a problem with the overall shape of an input file —
// missing or duplicated facts/queries lines, wrong section ordering, or a
// non-letter symbol where a variable was expected (spec §7).
type InputError struct {
	Line    int
	Message string
}

func (e *InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%d] INPUT ERROR: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("INPUT ERROR: %s", e.Message)
}

const (
	sectionRules = iota
	sectionFacts
	sectionQueries
)

// Load reads path, strips comments and blank lines, and builds a
// kb.KnowledgeBase plus the list of queried variables. It fails fast on the
// first problem found: a *lexer.LexError or *loader.InputError, a plain
// error joining the rule parser's messages for a malformed rule line, or a
// wrapped error when the file cannot be read.
func Load(path string) (*kb.KnowledgeBase, []rune, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not read file %q: %w", path, err)
	}

	base := kb.New()
	var queries []rune
	section := sectionRules
	sawFacts, sawQueries := false, false

	for i, rawLine := range strings.Split(string(raw), "\n") {
		lineNo := i + 1
		line := stripComment(rawLine)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "="):
			if sawFacts {
				return nil, nil, &InputError{Line: lineNo, Message: "more than one initial-facts line"}
			}
			if section > sectionFacts {
				return nil, nil, &InputError{Line: lineNo, Message: "initial-facts line must come before the queries line"}
			}
			facts, err := parseVariableList(line[1:], lineNo, "initial fact")
			if err != nil {
				return nil, nil, err
			}
			for _, f := range facts {
				base.InitialTrue[f] = true
			}
			sawFacts = true
			section = sectionFacts

		case strings.HasPrefix(line, "?"):
			if sawQueries {
				return nil, nil, &InputError{Line: lineNo, Message: "more than one queries line"}
			}
			if !sawFacts {
				return nil, nil, &InputError{Line: lineNo, Message: "queries line must come after the initial-facts line"}
			}
			qs, err := parseVariableList(line[1:], lineNo, "query")
			if err != nil {
				return nil, nil, err
			}
			if len(qs) == 0 {
				return nil, nil, &InputError{Line: lineNo, Message: "queries line names no variable"}
			}
			queries = qs
			base.Queries = qs
			sawQueries = true
			section = sectionQueries

		default:
			if sawFacts {
				return nil, nil, &InputError{Line: lineNo, Message: "rule line found after the initial-facts line"}
			}
			lex := lexer.NewLexer(line)
			toks, err := lex.ConsumeTokens()
			if err != nil {
				return nil, nil, annotateLine(err, lineNo)
			}
			rp := parser.NewRuleParser()
			rules := rp.ParseRule(toks, lineNo)
			if rp.HasErrors() {
				return nil, nil, fmt.Errorf("%s", strings.Join(rp.GetErrors(), "; "))
			}
			for _, r := range rules {
				base.AddRule(r)
			}
		}
	}

	if !sawFacts {
		return nil, nil, &InputError{Message: "missing initial-facts line (a line starting with '=')"}
	}
	if !sawQueries {
		return nil, nil, &InputError{Message: "missing queries line (a line starting with '?')"}
	}

	return base, queries, nil
}

// stripComment truncates line at the first '#', which terminates a line
// whether the comment starts at column 0 or mid-line (spec §6).
func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		return line[:idx]
	}
	return line
}

// parseVariableList validates that every rune in s is an uppercase letter,
// used for both the facts line and the queries line (spec §6: "zero or
// more uppercase letters" / "one or more uppercase letters").
func parseVariableList(s string, lineNo int, kind string) ([]rune, error) {
	s = strings.TrimSpace(s)
	var out []rune
	for _, c := range s {
		if c < 'A' || c > 'Z' {
			return nil, &InputError{Line: lineNo, Message: fmt.Sprintf("%s list contains non-letter symbol %q", kind, c)}
		}
		out = append(out, c)
	}
	return out, nil
}

// annotateLine wraps a *lexer.LexError with the input file's own line
// number, since the lexer itself only knows columns within a single line.
func annotateLine(err error, lineNo int) error {
	var lexErr *lexer.LexError
	if ok := asLexError(err, &lexErr); ok {
		lexErr.Line = lineNo
		return lexErr
	}
	return err
}

func asLexError(err error, target **lexer.LexError) bool {
	le, ok := err.(*lexer.LexError)
	if !ok {
		return false
	}
	*target = le
	return true
}
