// File: token.go
// Title: Declaration Token Vocabulary
// Description: Defines the closed set of token kinds shared by the lexer and
//              the parser, the Token value type and its source position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package token defines the lexical vocabulary of the declaration language.
package token

import (
	"fmt"
)

// Kind represents the type of a lexical token
type Kind int

const (
	// Keywords and names
	KindKeywordInt Kind = iota // int
	KindIdentifier             // result, x1

	// Literals
	KindIntegerLiteral // 10, 007

	// Operators
	KindPlus     // +
	KindMinus    // -
	KindMultiply // *
	KindDivide   // /
	KindAssign   // =

	// Punctuation
	KindSemicolon // ;

	// Special tokens
	KindEOF
	KindUnknown
)

// String returns the name used in token listings
func (k Kind) String() string {
	switch k {
	case KindKeywordInt:
		return "KEYWORD_INT"
	case KindIdentifier:
		return "IDENTIFIER"
	case KindIntegerLiteral:
		return "INTEGER_LITERAL"
	case KindPlus:
		return "OPERATOR_PLUS"
	case KindMinus:
		return "OPERATOR_MINUS"
	case KindMultiply:
		return "OPERATOR_MULTIPLY"
	case KindDivide:
		return "OPERATOR_DIVIDE"
	case KindAssign:
		return "OPERATOR_ASSIGN"
	case KindSemicolon:
		return "PUNCTUATION_SEMICOLON"
	case KindEOF:
		return "END_OF_FILE"
	case KindUnknown:
		return "UNKNOWN"
	default:
		return "ERROR"
	}
}

// Describe returns a short phrase naming the kind, for diagnostics
func (k Kind) Describe() string {
	switch k {
	case KindKeywordInt:
		return "'int'"
	case KindIdentifier:
		return "identifier"
	case KindIntegerLiteral:
		return "number"
	case KindPlus:
		return "'+'"
	case KindMinus:
		return "'-'"
	case KindMultiply:
		return "'*'"
	case KindDivide:
		return "'/'"
	case KindAssign:
		return "'='"
	case KindSemicolon:
		return "';'"
	case KindEOF:
		return "end of input"
	case KindUnknown:
		return "unknown character"
	default:
		return "invalid token"
	}
}

// IsAdditive reports whether the kind is one of the operators folded by
// expressions (plus and minus)
func (k Kind) IsAdditive() bool {
	return k == KindPlus || k == KindMinus
}

var keywords = map[string]Kind{
	"int": KindKeywordInt,
}

// Lookup returns the keyword kind for word, or KindIdentifier
func Lookup(word string) Kind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return KindIdentifier
}

// Pos is the source location of a token's first character
type Pos struct {
	Offset int // Byte offset (0-based)
	Line   int // Line number (1-based)
	Column int // Column in characters (1-based)
}

// String returns line:column
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one lexeme together with its kind and position
type Token struct {
	Kind Kind
	Text string
	Pos  Pos
}

// Same reports whether two tokens have the same kind and text. Positions are
// ignored.
func (t Token) Same(other Token) bool {
	return t.Kind == other.Kind && t.Text == other.Text
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Kind == KindEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}
