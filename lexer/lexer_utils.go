/*
File    : expert-system/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// isWhitespace reports whether c is an ASCII whitespace character.
func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

// isUpperLetter reports whether c is an uppercase ASCII letter A-Z — the
// only legal shape for a propositional variable (spec §3).
func isUpperLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
