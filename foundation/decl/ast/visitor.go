// File: visitor.go
// Title: Declaration AST Visitors
// Description: Visitor interface with one method per node variant, a
//              pre-order Walk, the indented tree printer and the map
//              conversion used for JSON and YAML output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial visitor implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor handles every node variant. Adding a variant adds a method here,
// so every implementation has to deal with it.
type Visitor interface {
	VisitNumber(n *Number) interface{}
	VisitBinaryOp(b *BinaryOp) interface{}
	VisitVarDecl(d *VarDecl) interface{}
}

// Walk traverses the tree rooted at node in pre-order. Children of a node
// are skipped when fn returns false.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *VarDecl:
		if n.Value != nil {
			Walk(n.Value, fn)
		}
	case *BinaryOp:
		if n.Left != nil {
			Walk(n.Left, fn)
		}
		if n.Right != nil {
			Walk(n.Right, fn)
		}
	case *Number:
	}
}

// TreePrinter renders a tree in the indented debug layout:
//
//	VarDecl: result (int)
//	  Value:
//	    BinaryOp: +
//	      Left:
//	        Number: 10
//	      Right:
//	        Number: 20
//
// Each level of an operator chain is indented further, so the output of a
// chain of n operators grows with n squared.
type TreePrinter struct {
	buffer strings.Builder
	indent int
}

// NewTreePrinter creates a new tree printer
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// Tree returns the indented rendering of node
func Tree(node Node) string {
	if node == nil {
		return ""
	}
	p := NewTreePrinter()
	node.Accept(p)
	return p.String()
}

// String returns the output built so far
func (tp *TreePrinter) String() string {
	return tp.buffer.String()
}

// Reset clears the internal buffer
func (tp *TreePrinter) Reset() {
	tp.buffer.Reset()
	tp.indent = 0
}

func (tp *TreePrinter) line(format string, args ...interface{}) {
	for i := 0; i < tp.indent; i++ {
		tp.buffer.WriteString("  ")
	}
	fmt.Fprintf(&tp.buffer, format, args...)
	tp.buffer.WriteByte('\n')
}

// child prints a labeled child two levels deeper than its parent
func (tp *TreePrinter) child(label string, n Node) {
	tp.indent++
	tp.line("%s:", label)
	tp.indent++
	if n != nil {
		n.Accept(tp)
	}
	tp.indent -= 2
}

func (tp *TreePrinter) VisitNumber(n *Number) interface{} {
	tp.line("Number: %s", n.Token.Text)
	return nil
}

func (tp *TreePrinter) VisitBinaryOp(b *BinaryOp) interface{} {
	tp.line("BinaryOp: %s", b.Op.Text)
	tp.child("Left", b.Left)
	tp.child("Right", b.Right)
	return nil
}

func (tp *TreePrinter) VisitVarDecl(d *VarDecl) interface{} {
	tp.line("VarDecl: %s (%s)", d.Name.Text, d.Type.Text)
	tp.child("Value", d.Value)
	return nil
}

// ToMap converts a tree into nested maps suitable for JSON or YAML encoding
func ToMap(node Node) map[string]interface{} {
	if node == nil {
		return nil
	}
	m, _ := node.Accept(mapBuilder{}).(map[string]interface{})
	return m
}

type mapBuilder struct{}

func (mb mapBuilder) VisitNumber(n *Number) interface{} {
	return map[string]interface{}{
		"node":     "Number",
		"value":    n.Token.Text,
		"position": n.Token.Pos.String(),
	}
}

func (mb mapBuilder) VisitBinaryOp(b *BinaryOp) interface{} {
	return map[string]interface{}{
		"node":     "BinaryOp",
		"operator": b.Op.Text,
		"left":     ToMap(b.Left),
		"right":    ToMap(b.Right),
		"position": b.Position().String(),
	}
}

func (mb mapBuilder) VisitVarDecl(d *VarDecl) interface{} {
	return map[string]interface{}{
		"node":     "VarDecl",
		"type":     d.Type.Text,
		"name":     d.Name.Text,
		"value":    ToMap(d.Value),
		"position": d.Position().String(),
	}
}
