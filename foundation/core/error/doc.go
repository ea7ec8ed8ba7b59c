// Package error provides coded, contextual errors for minidecl.
//
// Package: error
// Title: minidecl Error Handling
// Description: Structured errors carrying a code, a severity, free-form details and
//              the operation that produced them. Used by the lexer/parser facade,
//              the configuration loader and the CLI so that failures can be logged
//              and rendered uniformly.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with codes, severities and details
//
// Usage:
//   import mdwerror "github.com/msto63/minidecl/foundation/core/error"
//
//   err := mdwerror.New("input exceeds maximum length").
//     WithCode(mdwerror.CodeInvalidLength).
//     WithDetail("length", 5000).
//     WithOperation("decl.Parse")
//
//   if mdwerror.HasCode(err, mdwerror.CodeSyntax) {
//     // report a grammar violation
//   }
package error
