// ============================================================================
// minidecl - Declaration Lexer & Parser
// ============================================================================
//
// Package:     repl
// Description: Message types for the REPL update loop
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package repl

import (
	"github.com/msto63/minidecl/foundation/decl"
)

// Entry is one submitted statement and its rendered outcome
type Entry struct {
	Input  string
	Output string
	OK     bool
}

// Message types for tea.Cmd async operations

// parsedMsg is sent when a submitted statement has been parsed
type parsedMsg struct {
	input  string
	result *decl.Result
	err    error
}
