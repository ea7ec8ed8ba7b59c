// Package log provides structured logging for minidecl.
//
// Package: log
// Title: minidecl Structured Logging
// Description: Structured logger with levels, persistent context fields, correlation
//              IDs, several output formats and integration with the coded errors of
//              foundation/core/error. The lexer/parser facade, the configuration
//              loader, the CLI and the REPL all log through this package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Usage:
//   import mdwlog "github.com/msto63/minidecl/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatText).
//     WithField("component", "decl-parser").
//     WithCorrelationID(runID)
//
//   logger.Debug("Parsing statement", mdwlog.Fields{"tokens": len(tokens)})
//
//   timer := logger.StartTimer("decl.parse")
//   // ... parse
//   timer.Stop()
package log
