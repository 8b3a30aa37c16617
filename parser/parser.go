/*
File    : expert-system/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements the shunting-yard expression parser and the
rule-line parser of spec §4.2-§4.3: token sequence in, immutable ast.Expr
(or ast.Rule list) out.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/expert-system/ast"
	"github.com/akashmaji946/expert-system/lexer"
)

// ParseError reports a structural problem in an expression or rule line —
// unbalanced parentheses, a missing operand, two consecutive facts, an
// unknown token in expression context, or a malformed implication (spec
// §4.2-§4.3, §7).
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%d:%d] PARSE ERROR: %s", e.Line, e.Column, e.Message)
}

// ExprParser runs the shunting-yard algorithm of spec §4.2 over a fixed
// token slice. It holds no lexer state of its own — tokens are handed to
// it pre-scanned, since both sides of a rule and a standalone query
// reference must go through the identical algorithm.
type ExprParser struct {
	tokens []lexer.Token
	// operators is the operator stack; LPAREN tokens act as sentinels.
	operators []lexer.Token
	// output is the output stack of completed sub-expressions.
	output []ast.Expr
}

// NewExprParser creates an ExprParser over the given token slice. tokens
// must contain no IMPLIES/IFF/QUERY_MARK/FACTS_MARK tokens — the rule
// parser is responsible for stripping those before delegating here (spec
// §4.2's contract).
func NewExprParser(tokens []lexer.Token) *ExprParser {
	return &ExprParser{tokens: tokens}
}

// Parse runs the shunting-yard algorithm to completion and returns the
// single root expression node, or a ParseError.
func (p *ExprParser) Parse() (ast.Expr, error) {
	if len(p.tokens) == 0 {
		return nil, &ParseError{Message: "empty expression"}
	}

	expectOperand := true

	for _, tok := range p.tokens {
		switch {
		case tok.Type == lexer.FACT:
			if !expectOperand {
				return nil, &ParseError{Line: tok.Line, Column: tok.Column,
					Message: fmt.Sprintf("unexpected fact %q: missing operator before it", tok.Literal)}
			}
			p.output = append(p.output, &ast.Fact{Name: rune(tok.Literal[0])})
			expectOperand = false

		case tok.Type == lexer.LPAREN:
			if !expectOperand {
				return nil, &ParseError{Line: tok.Line, Column: tok.Column,
					Message: "unexpected '(': missing operator before it"}
			}
			p.operators = append(p.operators, tok)
			expectOperand = true

		case tok.Type == lexer.RPAREN:
			if expectOperand {
				return nil, &ParseError{Line: tok.Line, Column: tok.Column,
					Message: "unexpected ')': missing operand before it"}
			}
			if err := p.unwindToLParen(tok); err != nil {
				return nil, err
			}
			expectOperand = false

		case isOperator(tok.Type):
			if expectOperand && !isUnary(tok.Type) {
				return nil, &ParseError{Line: tok.Line, Column: tok.Column,
					Message: fmt.Sprintf("unexpected operator %q: missing operand before it", tok.Literal)}
			}
			if !expectOperand && isUnary(tok.Type) {
				return nil, &ParseError{Line: tok.Line, Column: tok.Column,
					Message: "unexpected '!': missing operator before it"}
			}
			if err := p.pushOperator(tok); err != nil {
				return nil, err
			}
			expectOperand = true

		default:
			return nil, &ParseError{Line: tok.Line, Column: tok.Column,
				Message: fmt.Sprintf("unexpected token %q in expression", tok.Literal)}
		}
	}

	if expectOperand {
		last := p.tokens[len(p.tokens)-1]
		return nil, &ParseError{Line: last.Line, Column: last.Column,
			Message: "expression ends with a missing operand"}
	}

	// Drain any remaining operators.
	for len(p.operators) > 0 {
		top := p.operators[len(p.operators)-1]
		if top.Type == lexer.LPAREN {
			return nil, &ParseError{Line: top.Line, Column: top.Column,
				Message: "unbalanced '(': missing ')'"}
		}
		if err := p.popAndMaterialize(); err != nil {
			return nil, err
		}
	}

	if len(p.output) != 1 {
		return nil, &ParseError{Message: "expression did not reduce to a single value"}
	}

	return p.output[0], nil
}

// pushOperator implements the core shunting-yard precedence loop: while the
// operator on top of the stack binds at least as tight (left-assoc) or
// strictly tighter (right-assoc) than tok, pop and materialize it, then
// push tok.
func (p *ExprParser) pushOperator(tok lexer.Token) error {
	for len(p.operators) > 0 {
		top := p.operators[len(p.operators)-1]
		if top.Type == lexer.LPAREN {
			break
		}
		topPrec := precedence(top.Type)
		tokPrec := precedence(tok.Type)
		pop := false
		if isRightAssoc(tok.Type) {
			pop = topPrec > tokPrec
		} else {
			pop = topPrec >= tokPrec
		}
		if !pop {
			break
		}
		if err := p.popAndMaterialize(); err != nil {
			return err
		}
	}
	p.operators = append(p.operators, tok)
	return nil
}

// unwindToLParen pops and materializes operators until the matching LPAREN
// sentinel is found and discarded.
func (p *ExprParser) unwindToLParen(rparen lexer.Token) error {
	for {
		if len(p.operators) == 0 {
			return &ParseError{Line: rparen.Line, Column: rparen.Column,
				Message: "unbalanced ')': no matching '('"}
		}
		top := p.operators[len(p.operators)-1]
		if top.Type == lexer.LPAREN {
			p.operators = p.operators[:len(p.operators)-1]
			return nil
		}
		if err := p.popAndMaterialize(); err != nil {
			return err
		}
	}
}

// popAndMaterialize pops the top operator and builds the AST node it
// represents, consuming one operand (NOT) or two (AND/OR/XOR) from the
// output stack. Insufficient operands is a ParseError (spec §4.2).
func (p *ExprParser) popAndMaterialize() error {
	top := p.operators[len(p.operators)-1]
	p.operators = p.operators[:len(p.operators)-1]

	op, ok := ast.TokenOp(top.Type)
	if !ok {
		return &ParseError{Line: top.Line, Column: top.Column,
			Message: fmt.Sprintf("internal error: %q is not an operator", top.Literal)}
	}

	if isUnary(top.Type) {
		if len(p.output) < 1 {
			return &ParseError{Line: top.Line, Column: top.Column,
				Message: "'!' has no operand"}
		}
		child := p.output[len(p.output)-1]
		p.output = p.output[:len(p.output)-1]
		p.output = append(p.output, &ast.Unary{Op: op, Child: child})
		return nil
	}

	if len(p.output) < 2 {
		return &ParseError{Line: top.Line, Column: top.Column,
			Message: fmt.Sprintf("%q has insufficient operands", top.Literal)}
	}
	right := p.output[len(p.output)-1]
	left := p.output[len(p.output)-2]
	p.output = p.output[:len(p.output)-2]
	p.output = append(p.output, &ast.Binary{Op: op, Left: left, Right: right})
	return nil
}
