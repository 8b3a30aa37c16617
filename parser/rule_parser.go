/*
File    : expert-system/parser/rule_parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/expert-system/ast"
	"github.com/akashmaji946/expert-system/lexer"
)

// RuleParser splits a tokenized rule line at its top-level implication
// connective (IMPLIES or IFF) and parses both sides as expressions (spec
// §4.3). It collects every error it finds rather than stopping at the
// first, mirroring the teacher's Errors []string idiom.
type RuleParser struct {
	errors []string
}

// NewRuleParser creates an empty RuleParser.
func NewRuleParser() *RuleParser {
	return &RuleParser{}
}

// HasErrors reports whether any ParseRule call on this parser has failed.
func (rp *RuleParser) HasErrors() bool { return len(rp.errors) > 0 }

// GetErrors returns every error message collected so far.
func (rp *RuleParser) GetErrors() []string { return rp.errors }

func (rp *RuleParser) addError(msg string) { rp.errors = append(rp.errors, msg) }

// ParseRule parses one line's worth of tokens into one or two ast.Rule
// values. "A + B => C" yields a single rule. "A <=> B" is biconditional
// sugar and expands into two rules, (A=>B) first then (B=>A) (spec §3,
// §4.3), so that KnowledgeBase.ByConclusion indexes both directions.
//
// The line must contain exactly one IMPLIES or IFF token; a rule line with
// zero or more than one such token is rejected. Parenthesis depth is not
// checked here: a connective inside parentheses leaves an unbalanced side,
// which the expression parser then rejects.
//
// Returned rules carry no Index yet — KnowledgeBase.AddRule stamps that
// from the rule's position in kb.Rules, since one source line can expand
// into two rules (the biconditional case) that must not share a number.
func (rp *RuleParser) ParseRule(tokens []lexer.Token, sourceLine int) []*ast.Rule {
	splitAt := -1
	var connective lexer.TokenType

	for i, tok := range tokens {
		if tok.Type == lexer.IMPLIES || tok.Type == lexer.IFF {
			if splitAt != -1 {
				rp.addError(fmt.Sprintf("[%d:%d] PARSE ERROR: more than one implication connective on this line", sourceLine, tok.Column))
				return nil
			}
			splitAt = i
			connective = tok.Type
		}
	}

	if splitAt == -1 {
		rp.addError(fmt.Sprintf("[%d] PARSE ERROR: rule line has no '=>' or '<=>'", sourceLine))
		return nil
	}
	if splitAt == 0 || splitAt == len(tokens)-1 {
		rp.addError(fmt.Sprintf("[%d] PARSE ERROR: implication connective needs an expression on both sides", sourceLine))
		return nil
	}

	lhsTokens := tokens[:splitAt]
	rhsTokens := tokens[splitAt+1:]

	lhs, err := NewExprParser(lhsTokens).Parse()
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Line = sourceLine
		}
		rp.addError(err.Error())
		return nil
	}
	rhs, err := NewExprParser(rhsTokens).Parse()
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Line = sourceLine
		}
		rp.addError(err.Error())
		return nil
	}

	if connective == lexer.IMPLIES {
		return []*ast.Rule{
			{Premise: lhs, Conclusion: rhs, SourceLine: sourceLine},
		}
	}

	// Biconditional: A <=> B expands to (A=>B), (B=>A).
	return []*ast.Rule{
		{Premise: lhs, Conclusion: rhs, SourceLine: sourceLine},
		{Premise: rhs, Conclusion: lhs, SourceLine: sourceLine},
	}
}
