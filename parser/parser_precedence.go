/*
File    : expert-system/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/expert-system/lexer"

// Operator precedence table for the shunting-yard expression parser
// (spec §4.2). Higher number binds tighter.
//
// Precedence (lowest to highest):
//  1. OR   (left-assoc, binary)
//  2. XOR  (left-assoc, binary)
//  3. AND  (left-assoc, binary)
//  4. NOT  (right-assoc, unary)
const (
	OR_PRIORITY  = 1
	XOR_PRIORITY = 2
	AND_PRIORITY = 3
	NOT_PRIORITY = 4
)

// isRightAssoc reports whether token type t is right-associative. Only NOT
// is; AND/OR/XOR are all left-associative (spec §4.2).
func isRightAssoc(t lexer.TokenType) bool {
	return t == lexer.NOT
}

// isUnary reports whether token type t takes exactly one operand.
func isUnary(t lexer.TokenType) bool {
	return t == lexer.NOT
}

// precedence returns the binding strength of an operator token. The caller
// must only pass NOT/AND/OR/XOR; anything else is a programmer error.
func precedence(t lexer.TokenType) int {
	switch t {
	case lexer.NOT:
		return NOT_PRIORITY
	case lexer.AND:
		return AND_PRIORITY
	case lexer.XOR:
		return XOR_PRIORITY
	case lexer.OR:
		return OR_PRIORITY
	default:
		return -1
	}
}

// isOperator reports whether t is one of the four connectives recognised
// inside an expression.
func isOperator(t lexer.TokenType) bool {
	switch t {
	case lexer.NOT, lexer.AND, lexer.OR, lexer.XOR:
		return true
	default:
		return false
	}
}
