// File: parser.go
// Title: Declaration Recursive Descent Parser
// Description: Builds the AST of one declaration statement from a token
//              sequence. Each grammar rule either returns a complete node or
//              a syntax error; nothing is recovered and no partial node is
//              ever returned.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial parser implementation

package parser

import (
	"errors"

	mdwerror "github.com/msto63/minidecl/foundation/core/error"
	mdwlog "github.com/msto63/minidecl/foundation/core/log"
	mdwast "github.com/msto63/minidecl/foundation/decl/ast"
	"github.com/msto63/minidecl/foundation/decl/token"
)

// Diagnostic messages, one per grammar expectation
const (
	MsgNoStatement        = "no valid statement"
	MsgExpectedIdentifier = "expected identifier after int"
	MsgExpectedAssign     = "expected equals sign"
	MsgExpectedNumber     = "expected a number"
	MsgExpectedOperand    = "expected a number or identifier after operator"
	MsgExpectedSemicolon  = "expected semicolon"
	MsgTrailingTokens     = "unexpected token after statement"
)

// Options configures parser behavior
type Options struct {
	// Logger receives trace output of rule entry and failures
	Logger *mdwlog.Logger

	// RequireEOF rejects tokens following the terminating ';'
	RequireEOF bool
}

// Parser implements recursive descent parsing over a token sequence
type Parser struct {
	tokens     []token.Token
	current    int
	logger     *mdwlog.Logger
	options    Options
	diagnostic string
}

// New creates a parser for tokens. The sequence is copied; an END_OF_FILE
// sentinel is appended when it does not already end with one.
func New(tokens []token.Token, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	seq := make([]token.Token, len(tokens), len(tokens)+1)
	copy(seq, tokens)
	if len(seq) == 0 || seq[len(seq)-1].Kind != token.KindEOF {
		seq = append(seq, token.Token{Kind: token.KindEOF, Pos: endPos(seq)})
	}

	return &Parser{
		tokens:  seq,
		logger:  opts.Logger.WithField("component", "decl-parser"),
		options: opts,
	}
}

// Parse parses one statement. On failure the returned error is a coded
// error with code SYNTAX that wraps a *SyntaxError.
func (p *Parser) Parse() (mdwast.Stmt, error) {
	p.current = 0
	p.diagnostic = ""

	stmt, err := p.parseStatement()
	if err != nil {
		return nil, p.fail(err)
	}

	if p.options.RequireEOF && p.peek().Kind != token.KindEOF {
		return nil, p.fail(p.syntaxError(RuleStatement, MsgTrailingTokens, token.KindEOF))
	}

	return stmt, nil
}

// Diagnostic returns the message of the most recent syntax error, or ""
func (p *Parser) Diagnostic() string {
	return p.diagnostic
}

// statement := variableDeclaration
func (p *Parser) parseStatement() (mdwast.Stmt, *SyntaxError) {
	p.trace(RuleStatement)

	if p.peek().Kind != token.KindKeywordInt {
		return nil, p.syntaxError(RuleStatement, MsgNoStatement, token.KindKeywordInt)
	}

	decl, err := p.parseVariableDeclaration()
	if err != nil {
		return nil, err
	}
	return decl, nil
}

// variableDeclaration := KEYWORD_INT IDENTIFIER '=' expression ';'
func (p *Parser) parseVariableDeclaration() (*mdwast.VarDecl, *SyntaxError) {
	p.trace(RuleDeclaration)

	typeTok := p.peek()
	p.advance() // consume 'int'

	name, ok := p.expect(token.KindIdentifier)
	if !ok {
		return nil, p.syntaxError(RuleDeclaration, MsgExpectedIdentifier, token.KindIdentifier)
	}

	if _, ok := p.expect(token.KindAssign); !ok {
		return nil, p.syntaxError(RuleDeclaration, MsgExpectedAssign, token.KindAssign)
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, ok := p.expect(token.KindSemicolon); !ok {
		return nil, p.syntaxError(RuleDeclaration, MsgExpectedSemicolon,
			token.KindSemicolon, token.KindPlus, token.KindMinus)
	}

	return &mdwast.VarDecl{Type: typeTok, Name: name, Value: value}, nil
}

// expression := term (('+' | '-') term)*
func (p *Parser) parseExpression() (mdwast.Expr, *SyntaxError) {
	p.trace(RuleExpression)

	first, ok := p.parseTerm()
	if !ok {
		return nil, p.syntaxError(RuleExpression, MsgExpectedNumber, token.KindIntegerLiteral)
	}

	var result mdwast.Expr = first
	for p.peek().Kind.IsAdditive() {
		op := p.peek()
		p.advance() // consume operator

		right, ok := p.parseTerm()
		if !ok {
			return nil, p.syntaxError(RuleExpression, MsgExpectedOperand, token.KindIntegerLiteral)
		}

		result = &mdwast.BinaryOp{Left: result, Op: op, Right: right}
	}

	return result, nil
}

// term := INTEGER_LITERAL
//
// A missing term is not reported here; the caller picks the message.
func (p *Parser) parseTerm() (*mdwast.Number, bool) {
	p.trace(RuleTerm)

	tok, ok := p.expect(token.KindIntegerLiteral)
	if !ok {
		return nil, false
	}
	return &mdwast.Number{Token: tok}, true
}

// Utility methods

// peek returns the current token. The cursor never passes the final
// END_OF_FILE token, but it is clamped all the same.
func (p *Parser) peek() token.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

// advance moves to the next token unless already at the end
func (p *Parser) advance() {
	if p.current < len(p.tokens)-1 {
		p.current++
	}
}

// expect consumes the current token if it has the given kind
func (p *Parser) expect(kind token.Kind) (token.Token, bool) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, false
	}
	p.advance()
	return tok, true
}

// syntaxError records a diagnostic at the current token
func (p *Parser) syntaxError(rule, message string, expected ...token.Kind) *SyntaxError {
	p.diagnostic = message

	err := &SyntaxError{
		Rule:     rule,
		Expected: expected,
		Found:    p.peek(),
		Message:  message,
	}

	if p.logger.IsLevelEnabled(mdwlog.LevelDebug) {
		p.logger.Debug("Grammar rule failed", mdwlog.Fields(err.Details()))
	}

	return err
}

// fail wraps a syntax error into a coded error
func (p *Parser) fail(err *SyntaxError) error {
	return mdwerror.Wrap(err, "parse failed").
		WithCode(mdwerror.CodeSyntax).
		WithOperation("parser.Parse").
		WithDetails(err.Details())
}

func (p *Parser) trace(rule string) {
	if p.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		tok := p.peek()
		p.logger.Trace("Entering rule", mdwlog.Fields{
			"rule":  rule,
			"token": tok.String(),
			"pos":   tok.Pos.String(),
		})
	}
}

// AsSyntaxError extracts the *SyntaxError from an error returned by Parse
func AsSyntaxError(err error) (*SyntaxError, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// endPos is the position just past the last token
func endPos(tokens []token.Token) token.Pos {
	if len(tokens) == 0 {
		return token.Pos{Line: 1, Column: 1}
	}
	last := tokens[len(tokens)-1]
	return token.Pos{
		Offset: last.Pos.Offset + len(last.Text),
		Line:   last.Pos.Line,
		Column: last.Pos.Column + len([]rune(last.Text)),
	}
}
