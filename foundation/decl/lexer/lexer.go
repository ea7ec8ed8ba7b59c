// File: lexer.go
// Title: Declaration Lexical Analyzer
// Description: Converts declaration source text into a stream of tokens, one
//              token per call. The lexer never fails: characters it does not
//              recognize become UNKNOWN tokens for the parser to reject.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial lexer implementation
// - 2026-10-18 v0.1.1: Letters and whitespace restricted to ASCII

package lexer

import (
	"unicode/utf8"

	"github.com/msto63/minidecl/foundation/decl/token"
)

// Lexer scans a source string left to right. It is forward-only; the only
// state besides the source is the cursor.
type Lexer struct {
	input  string // Source text
	offset int    // Byte offset of the next unread character
	line   int    // Line of the next unread character (1-based)
	column int    // Column of the next unread character (1-based)
}

// New creates a new lexer for the given source
func New(source string) *Lexer {
	l := &Lexer{}
	l.Reset(source)
	return l
}

// Reset rewinds the lexer to the start of a new source
func (l *Lexer) Reset(source string) {
	l.input = source
	l.offset = 0
	l.line = 1
	l.column = 1
}

// NextToken returns the next token. At the end of input it returns an
// END_OF_FILE token with empty text, on this and every later call.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	start := l.pos()
	if l.offset >= len(l.input) {
		return token.Token{Kind: token.KindEOF, Pos: start}
	}

	r, size := l.peekRune()

	switch r {
	case '+':
		return l.single(token.KindPlus, r, size, start)
	case '-':
		return l.single(token.KindMinus, r, size, start)
	case '*':
		return l.single(token.KindMultiply, r, size, start)
	case '/':
		return l.single(token.KindDivide, r, size, start)
	case '=':
		return l.single(token.KindAssign, r, size, start)
	case ';':
		return l.single(token.KindSemicolon, r, size, start)
	}

	switch {
	case isDigit(r):
		text := l.readWhile(isDigit)
		return token.Token{Kind: token.KindIntegerLiteral, Text: text, Pos: start}
	case isLetter(r):
		text := l.readWhile(isIdentifierChar)
		return token.Token{Kind: token.Lookup(text), Text: text, Pos: start}
	default:
		// an invalid UTF-8 byte decodes with size 1 and stays one character
		return l.single(token.KindUnknown, r, size, start)
	}
}

// Tokenize drives NextToken up to and including the first END_OF_FILE token
func (l *Lexer) Tokenize() []token.Token {
	tokens := make([]token.Token, 0, len(l.input)/2+1)

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Kind == token.KindEOF {
			return tokens
		}
	}
}

// Tokenize returns all tokens of source, terminated by END_OF_FILE
func Tokenize(source string) []token.Token {
	return New(source).Tokenize()
}

func (l *Lexer) single(kind token.Kind, r rune, size int, start token.Pos) token.Token {
	l.advance(r, size)
	return token.Token{Kind: kind, Text: l.input[start.Offset:l.offset], Pos: start}
}

// readWhile consumes the maximal run of characters matching accept, starting
// with the current one
func (l *Lexer) readWhile(accept func(rune) bool) string {
	start := l.offset
	for l.offset < len(l.input) {
		r, size := l.peekRune()
		if !accept(r) {
			break
		}
		l.advance(r, size)
	}
	return l.input[start:l.offset]
}

func (l *Lexer) skipWhitespace() {
	for l.offset < len(l.input) {
		r, size := l.peekRune()
		if !isSpace(r) {
			return
		}
		l.advance(r, size)
	}
}

func (l *Lexer) peekRune() (rune, int) {
	return utf8.DecodeRuneInString(l.input[l.offset:])
}

func (l *Lexer) advance(r rune, size int) {
	l.offset += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

func (l *Lexer) pos() token.Pos {
	return token.Pos{Offset: l.offset, Line: l.line, Column: l.column}
}

// Character classes, ASCII only. Any other rune is a character of its own
// and lexes as UNKNOWN.

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isIdentifierChar(r rune) bool {
	return isLetter(r) || isDigit(r)
}
