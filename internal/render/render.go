// ============================================================================
// minidecl - Declaration Lexer & Parser
// ============================================================================
//
// Package:     render
// Description: Text, JSON and YAML presentation of tokens, trees and errors
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/minidecl/foundation/core/error"
	"github.com/msto63/minidecl/foundation/decl"
	mdwast "github.com/msto63/minidecl/foundation/decl/ast"
	mdwparser "github.com/msto63/minidecl/foundation/decl/parser"
	"github.com/msto63/minidecl/foundation/decl/token"
	"github.com/msto63/minidecl/internal/tui"
)

// Output formats
const (
	FormatTree = "tree"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer turns engine results into printable text. With color disabled the
// output is plain and stable, which is what tests and pipes get.
type Renderer struct {
	color bool

	kindStyle  lipgloss.Style
	valueStyle lipgloss.Style
	nodeStyle  lipgloss.Style
	labelStyle lipgloss.Style
	caretStyle lipgloss.Style
	errorStyle lipgloss.Style
}

// New creates a renderer
func New(color bool) *Renderer {
	return &Renderer{
		color:      color,
		kindStyle:  lipgloss.NewStyle().Foreground(tui.ColorSecondary),
		valueStyle: lipgloss.NewStyle().Foreground(tui.ColorAccent),
		nodeStyle:  lipgloss.NewStyle().Foreground(tui.ColorPrimary).Bold(true),
		labelStyle: lipgloss.NewStyle().Foreground(tui.ColorMuted),
		caretStyle: lipgloss.NewStyle().Foreground(tui.ColorError).Bold(true),
		errorStyle: tui.ErrorMessageStyle,
	}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Tokens lists tokens one per line as "Type: KIND, Value: 'text'"
func (r *Renderer) Tokens(tokens []token.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&b, "Type: %s, Value: '%s'\n",
			r.style(r.kindStyle, tok.Kind.String()),
			r.style(r.valueStyle, tok.Text))
	}
	return b.String()
}

// Tree renders node in the indented tree layout
func (r *Renderer) Tree(node mdwast.Node) string {
	plain := mdwast.Tree(node)
	if !r.color {
		return plain
	}

	lines := strings.SplitAfter(plain, "\n")
	var b strings.Builder
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]

		label, rest, found := strings.Cut(trimmed, ":")
		if !found {
			b.WriteString(line)
			continue
		}

		switch label {
		case "VarDecl", "BinaryOp", "Number":
			label = r.style(r.nodeStyle, label)
		default:
			label = r.style(r.labelStyle, label)
		}
		b.WriteString(indent + label + ":" + rest)
	}
	return b.String()
}

// Error renders err. Syntax errors get the offending source line with a
// caret under the token that was found.
func (r *Renderer) Error(source string, err error) string {
	if err == nil {
		return ""
	}

	se, ok := mdwparser.AsSyntaxError(err)
	if !ok {
		if !r.color {
			return "Error: " + err.Error() + "\n"
		}
		return tui.RenderError(err.Error()) + "\n"
	}

	var b strings.Builder
	if line, ok := sourceLine(source, se.Found.Pos.Line); ok {
		col := se.Found.Pos.Column
		if col < 1 {
			col = 1
		}
		b.WriteString(line + "\n")
		b.WriteString(strings.Repeat(" ", col-1) + r.style(r.caretStyle, "^") + "\n")
	}

	msg := fmt.Sprintf("Error: %s at %s (rule %s, found %s)",
		se.Message, se.Found.Pos, se.Rule, foundText(se.Found))
	b.WriteString(r.style(r.errorStyle, msg) + "\n")

	return b.String()
}

// Document builds the JSON/YAML form of a result
func Document(result *decl.Result, withTokens bool) map[string]interface{} {
	doc := map[string]interface{}{
		"source": result.Source,
		"tree":   mdwast.ToMap(result.Root),
	}
	if withTokens {
		doc["tokens"] = TokenMaps(result.Tokens)
	}
	return doc
}

// ErrorDocument builds the JSON/YAML form of a failed parse
func ErrorDocument(source string, err error) map[string]interface{} {
	errDoc := map[string]interface{}{
		"message": err.Error(),
		"code":    mdwerror.GetCode(err).String(),
	}
	if se, ok := mdwparser.AsSyntaxError(err); ok {
		errDoc["rule"] = se.Rule
		errDoc["expected"] = se.ExpectedNames()
		errDoc["found"] = TokenMap(se.Found)
		errDoc["diagnostic"] = se.Message
	}
	return map[string]interface{}{
		"source": source,
		"error":  errDoc,
	}
}

// TokenMaps converts tokens for JSON/YAML encoding
func TokenMaps(tokens []token.Token) []map[string]interface{} {
	out := make([]map[string]interface{}, len(tokens))
	for i, tok := range tokens {
		out[i] = TokenMap(tok)
	}
	return out
}

// TokenMap converts one token for JSON/YAML encoding
func TokenMap(tok token.Token) map[string]interface{} {
	return map[string]interface{}{
		"type":   tok.Kind.String(),
		"value":  tok.Text,
		"offset": tok.Pos.Offset,
		"line":   tok.Pos.Line,
		"column": tok.Pos.Column,
	}
}

// Encode serializes v as indented JSON or as YAML
func Encode(v interface{}, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(v)
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported output format: %s", format)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("render.Encode").
			WithDetail("format", format)
	}
}

func sourceLine(source string, line int) (string, bool) {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[line-1], "\r"), true
}

func foundText(tok token.Token) string {
	if tok.Kind == token.KindEOF {
		return "end of input"
	}
	return fmt.Sprintf("%s '%s'", tok.Kind, tok.Text)
}
