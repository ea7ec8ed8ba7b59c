// ============================================================================
// minidecl - Declaration Lexer & Parser
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and its tools
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version constants for all minidecl components
const (
	// Module version
	Module = "0.1.0"

	// Component versions
	Lexer  = "0.1.0"
	Parser = "0.1.0"
	CLI    = "0.1.0"
	REPL   = "0.1.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "cli":
		return CLI
	case "repl":
		return REPL
	default:
		return Module
	}
}

// Commit returns the VCS revision embedded by the Go toolchain, or "unknown"
func Commit() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			if len(setting.Value) > 12 {
				return setting.Value[:12]
			}
			return setting.Value
		}
	}
	return "unknown"
}

// Info returns a one-line build description
func Info() string {
	return fmt.Sprintf("minidecl %s (commit %s, %s, %s/%s)",
		Module, Commit(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
