// File: doc.go
// Title: Package Documentation for lexer
// Description: Documents the token rules of the declaration lexer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial documentation

// Package lexer turns declaration source text into tokens.
//
// Each call to NextToken skips leading whitespace and then applies the first
// matching rule:
//
//   - end of input: END_OF_FILE with empty text, returned again on every call
//   - one of + - * / = ; : the matching single-character operator
//   - an ASCII digit: the maximal digit run as INTEGER_LITERAL, verbatim
//   - an ASCII letter: the maximal run of ASCII letters and digits; "int" is
//     KEYWORD_INT, anything else IDENTIFIER
//   - anything else: exactly one character as UNKNOWN
//
// Whitespace is space, tab, newline, vertical tab, form feed and carriage
// return. Source text is read as UTF-8: a non-ASCII rune such as 'ö' or a
// no-break space is one UNKNOWN token, and a byte that is not valid UTF-8
// counts as one character and becomes an UNKNOWN token of its own.
//
// Basic usage:
//
//	for _, tok := range lexer.Tokenize("int result = 10 + 20;") {
//		fmt.Println(tok)
//	}
package lexer
