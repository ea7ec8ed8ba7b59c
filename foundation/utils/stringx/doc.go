// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the small set of Unicode-safe string
//              helpers shared by the parser engine, the CLI and the REPL.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package stringx provides Unicode-safe string helpers.
//
// Lengths are counted in runes, never bytes, so truncating a statement that
// contains multi-byte identifiers never splits a character:
//
//	stringx.Truncate("int größe = 1 ;", 8, "...") // "int g..."
//
// Blank checks treat any Unicode whitespace as blank, matching the lexer's
// notion of whitespace.
package stringx
