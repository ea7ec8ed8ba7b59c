// File: doc.go
// Title: Package Documentation for parser
// Description: Documents the grammar and error behavior of the declaration
//              parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial documentation

// Package parser builds the AST of a single declaration statement.
//
// Grammar (LL(1)):
//
//	statement           := variableDeclaration
//	variableDeclaration := KEYWORD_INT IDENTIFIER '=' expression ';'
//	expression          := term ( ('+' | '-') term )*
//	term                := INTEGER_LITERAL
//
// Operators fold to the left, so "10 + 20 - 5" parses as "(10 + 20) - 5".
// '*' and '/' are valid tokens but no rule accepts them; wherever they show
// up the enclosing rule fails.
//
// Parsing never backtracks and never recovers. The first violated
// expectation ends the parse with a *SyntaxError carrying the rule, the
// expected token kinds and the token found, wrapped in a coded error with
// code SYNTAX:
//
//	stmt, err := parser.New(lexer.Tokenize(src), parser.Options{}).Parse()
//	if se, ok := parser.AsSyntaxError(err); ok {
//		fmt.Println(se.Rule, se.Message)
//	}
//
// Tokens after the terminating ';' are ignored unless Options.RequireEOF is
// set.
package parser
