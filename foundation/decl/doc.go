// File: doc.go
// Title: Package Documentation for decl
// Description: Documents the declaration engine and its sub-packages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial documentation

// Package decl lexes and parses statements of the form
//
//	int NAME = NUMBER ( (+|-) NUMBER )* ;
//
// into a syntax tree.
//
// The work is split over four packages that can be used on their own:
//
//   - token:  the token kinds and the Token value
//   - lexer:  source text to tokens; never fails
//   - parser: tokens to an ast.Stmt, or a *parser.SyntaxError
//   - ast:    the Number, BinaryOp and VarDecl nodes plus printers
//
// The Engine in this package wires them together and adds an input length
// limit, timing and logging:
//
//	engine, _ := decl.New(decl.Options{})
//	result, err := engine.Parse("int result = 10 + 20;")
//	if err != nil {
//		return err
//	}
//	fmt.Print(ast.Tree(result.Root))
//
// Errors are coded errors from foundation/core/error: SYNTAX for grammar
// violations and INVALID_LENGTH for oversized input.
package decl
