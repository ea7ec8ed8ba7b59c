// File: doc.go
// Title: Package Documentation for ast
// Description: Documents the declaration syntax tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial documentation

// Package ast defines the syntax tree produced by the declaration parser.
//
// The tree has exactly three node types. Number and BinaryOp implement Expr,
// VarDecl implements Stmt. The interfaces are sealed, so a type switch over
// them or a Visitor implementation covers every case:
//
//	switch n := node.(type) {
//	case *ast.VarDecl:
//	case *ast.BinaryOp:
//	case *ast.Number:
//	}
//
// Each composite node owns its children and the tree has no back references.
// Nodes are built bottom-up by the parser and not modified afterwards.
//
// Rendering helpers:
//
//   - Tree / TreePrinter: indented debug layout
//   - ToMap: nested maps for JSON and YAML encoders
//   - Node.String: source-like form with explicit grouping, e.g.
//     "int x = ((1 + 2) - 3);"
package ast
