// File: errors.go
// Title: Parser Syntax Errors
// Description: Structured description of the first grammar expectation a
//              token sequence violated.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import (
	"fmt"
	"strings"

	"github.com/msto63/minidecl/foundation/decl/token"
)

// Grammar rule names reported in SyntaxError.Rule
const (
	RuleStatement   = "statement"
	RuleDeclaration = "variableDeclaration"
	RuleExpression  = "expression"
	RuleTerm        = "term"
)

// SyntaxError describes a grammar violation: the rule that detected it, the
// token kinds it would have accepted and the token actually found
type SyntaxError struct {
	Rule     string
	Expected []token.Kind
	Found    token.Token
	Message  string
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s, found %s", e.Found.Pos, e.Message, describeFound(e.Found))
}

// ExpectedNames returns the expected kinds as their listing names
func (e *SyntaxError) ExpectedNames() []string {
	names := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		names[i] = k.String()
	}
	return names
}

// Details returns the fields attached to coded errors and log entries
func (e *SyntaxError) Details() map[string]interface{} {
	return map[string]interface{}{
		"rule":     e.Rule,
		"expected": strings.Join(e.ExpectedNames(), "|"),
		"found":    e.Found.Kind.String(),
		"text":     e.Found.Text,
		"line":     e.Found.Pos.Line,
		"column":   e.Found.Pos.Column,
	}
}

func describeFound(tok token.Token) string {
	if tok.Kind == token.KindEOF {
		return tok.Kind.Describe()
	}
	return fmt.Sprintf("%s %q", tok.Kind.Describe(), tok.Text)
}
