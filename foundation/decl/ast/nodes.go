// File: nodes.go
// Title: Declaration AST Node Definitions
// Description: Defines the three AST node variants (Number, BinaryOp,
//              VarDecl) as a closed set behind sealed interfaces, with
//              string rendering and structural validation.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST node definitions
// - 2026-10-18 v0.1.1: String renders through a shared builder

package ast

import (
	"fmt"
	"strings"

	"github.com/msto63/minidecl/foundation/decl/token"
	mdwstringx "github.com/msto63/minidecl/foundation/utils/stringx"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a source-like representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the position of the node's first token
	Position() token.Pos

	// Validate checks the structural invariants of the node and its children
	Validate() error

	node() // seals the interface to this package
}

// Expr is an expression node: *Number or *BinaryOp
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node: *VarDecl
type Stmt interface {
	Node
	stmtNode()
}

// Number is an integer literal
type Number struct {
	Token token.Token // INTEGER_LITERAL
}

// BinaryOp combines two expressions with '+' or '-'. Chains fold to the
// left: 1 + 2 - 3 is BinaryOp(-, BinaryOp(+, 1, 2), 3).
type BinaryOp struct {
	Left  Expr
	Op    token.Token // OPERATOR_PLUS or OPERATOR_MINUS
	Right Expr
}

// VarDecl declares a variable with an initializer
type VarDecl struct {
	Type  token.Token // KEYWORD_INT
	Name  token.Token // IDENTIFIER
	Value Expr
}

// Number

func (n *Number) String() string {
	return n.Token.Text
}

func (n *Number) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumber(n)
}

func (n *Number) Position() token.Pos {
	return n.Token.Pos
}

func (n *Number) Validate() error {
	if n.Token.Kind != token.KindIntegerLiteral {
		return fmt.Errorf("number holds %s token", n.Token.Kind)
	}
	if n.Token.Text == "" {
		return fmt.Errorf("number has empty text")
	}
	for _, r := range n.Token.Text {
		if r < '0' || r > '9' {
			return fmt.Errorf("number %q contains non-digit %q", n.Token.Text, r)
		}
	}
	return nil
}

func (n *Number) node()     {}
func (n *Number) exprNode() {}

// BinaryOp

func (b *BinaryOp) String() string {
	var sb strings.Builder
	writeExpr(&sb, b)
	return sb.String()
}

func (b *BinaryOp) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryOp(b)
}

func (b *BinaryOp) Position() token.Pos {
	if b.Left == nil {
		return b.Op.Pos
	}
	return b.Left.Position()
}

func (b *BinaryOp) Validate() error {
	if b.Left == nil {
		return fmt.Errorf("left operand is required")
	}
	if b.Right == nil {
		return fmt.Errorf("right operand is required")
	}
	if !b.Op.Kind.IsAdditive() {
		return fmt.Errorf("operator must be '+' or '-', got %s", b.Op.Kind)
	}

	if err := b.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := b.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}

	return nil
}

func (b *BinaryOp) node()     {}
func (b *BinaryOp) exprNode() {}

// VarDecl

func (d *VarDecl) String() string {
	var sb strings.Builder
	sb.WriteString(d.Type.Text)
	sb.WriteByte(' ')
	sb.WriteString(d.Name.Text)
	sb.WriteString(" = ")
	writeExpr(&sb, d.Value)
	sb.WriteByte(';')
	return sb.String()
}

func (d *VarDecl) Accept(visitor Visitor) interface{} {
	return visitor.VisitVarDecl(d)
}

func (d *VarDecl) Position() token.Pos {
	return d.Type.Pos
}

func (d *VarDecl) Validate() error {
	if d.Type.Kind != token.KindKeywordInt {
		return fmt.Errorf("declaration type must be 'int', got %s", d.Type.Kind)
	}
	if d.Name.Kind != token.KindIdentifier || mdwstringx.IsBlank(d.Name.Text) {
		return fmt.Errorf("declaration name must be an identifier, got %s", d.Name)
	}
	if d.Value == nil {
		return fmt.Errorf("declaration of %s has no value", d.Name.Text)
	}

	if err := d.Value.Validate(); err != nil {
		return fmt.Errorf("value of %s: %w", d.Name.Text, err)
	}

	return nil
}

func (d *VarDecl) node()     {}
func (d *VarDecl) stmtNode() {}

// writeExpr renders e into sb; operator chains share one builder so the
// cost stays linear in the size of the tree
func writeExpr(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case nil:
		sb.WriteString("<nil>")
	case *BinaryOp:
		sb.WriteByte('(')
		writeExpr(sb, n.Left)
		sb.WriteByte(' ')
		sb.WriteString(n.Op.Text)
		sb.WriteByte(' ')
		writeExpr(sb, n.Right)
		sb.WriteByte(')')
	default:
		sb.WriteString(n.String())
	}
}
