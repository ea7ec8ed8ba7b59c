// File: decl.go
// Title: Declaration Engine
// Description: High-level entry point that runs the lexer and the parser on
//              a source string, enforces the input length limit and logs
//              timing and failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial engine implementation

package decl

import (
	"fmt"
	"time"

	mdwerror "github.com/msto63/minidecl/foundation/core/error"
	mdwlog "github.com/msto63/minidecl/foundation/core/log"
	mdwast "github.com/msto63/minidecl/foundation/decl/ast"
	mdwlexer "github.com/msto63/minidecl/foundation/decl/lexer"
	mdwparser "github.com/msto63/minidecl/foundation/decl/parser"
	"github.com/msto63/minidecl/foundation/decl/token"
	mdwstringx "github.com/msto63/minidecl/foundation/utils/stringx"
)

// DefaultMaxInputLength is the input limit in bytes used when none is set
const DefaultMaxInputLength = 4096

// logged sources are cut to this many characters
const maxLoggedSource = 80

// Engine lexes and parses declaration statements. It holds no per-input
// state and may be shared between goroutines.
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int  // bytes; 0 selects DefaultMaxInputLength
	RequireEOF     bool // reject tokens after the terminating ';'

	// SlowParseThreshold logs a warning for parses taking longer; 0 disables
	SlowParseThreshold time.Duration
}

// Result is the outcome of parsing one source string
type Result struct {
	Source   string
	Tokens   []token.Token
	Root     mdwast.Stmt // nil when parsing failed
	Duration time.Duration
}

// New creates a new engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength < 0 {
		return nil, mdwerror.New(fmt.Sprintf("max input length must not be negative, got %d", opts.MaxInputLength)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("decl.New")
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	logger := opts.Logger.WithField("component", "decl-engine")

	logger.Debug("Declaration engine initialized", mdwlog.Fields{
		"maxInputLength": opts.MaxInputLength,
		"requireEOF":     opts.RequireEOF,
	})

	return &Engine{logger: logger, options: opts}, nil
}

// Tokenize returns the tokens of source, terminated by END_OF_FILE
func (e *Engine) Tokenize(source string) ([]token.Token, error) {
	if err := e.checkLength(source, "decl.Tokenize"); err != nil {
		return nil, err
	}

	tokens := mdwlexer.Tokenize(source)

	e.logger.Debug("Source tokenized", mdwlog.Fields{
		"source": mdwstringx.Truncate(source, maxLoggedSource, "..."),
		"tokens": len(tokens),
	})

	return tokens, nil
}

// Parse lexes and parses source. On a syntax error the returned Result still
// carries the tokens, with a nil Root, together with the error. Input over
// the length limit returns a nil Result.
func (e *Engine) Parse(source string) (*Result, error) {
	tokens, err := e.Tokenize(source)
	if err != nil {
		return nil, err
	}

	if mdwstringx.IsBlank(source) {
		e.logger.Debug("Parsing blank source")
	}

	timer := e.logger.StartTimer("parse").
		WithField("tokens", len(tokens))

	p := mdwparser.New(tokens, mdwparser.Options{
		Logger:     e.logger,
		RequireEOF: e.options.RequireEOF,
	})
	root, err := p.Parse()

	result := &Result{
		Source: source,
		Tokens: tokens,
		Root:   root,
	}

	if err != nil {
		result.Duration = timer.StopWithError(err)
		e.logFailure(source, err)
		return result, err
	}

	result.Duration = timer.Stop()
	if threshold := e.options.SlowParseThreshold; threshold > 0 && result.Duration > threshold {
		e.logger.Warn("Slow parse", mdwlog.Fields{
			"source":      mdwstringx.Truncate(source, maxLoggedSource, "..."),
			"duration":    result.Duration.String(),
			"threshold":   threshold.String(),
			"token_count": len(tokens),
		})
	}
	return result, nil
}

// Validate parses source and checks the structural invariants of the tree
func (e *Engine) Validate(source string) error {
	result, err := e.Parse(source)
	if err != nil {
		return err
	}

	if err := result.Root.Validate(); err != nil {
		return mdwerror.Wrap(err, "parsed tree is malformed").
			WithCode(mdwerror.CodeInternal).
			WithOperation("decl.Validate")
	}

	return nil
}

func (e *Engine) checkLength(source, operation string) error {
	if len(source) <= e.options.MaxInputLength {
		return nil
	}

	return mdwerror.New(fmt.Sprintf("input exceeds maximum length: %d > %d",
		len(source), e.options.MaxInputLength)).
		WithCode(mdwerror.CodeInvalidLength).
		WithOperation(operation).
		WithDetail("length", len(source)).
		WithDetail("max_length", e.options.MaxInputLength)
}

func (e *Engine) logFailure(source string, err error) {
	fields := mdwlog.Fields{
		"source": mdwstringx.Truncate(source, maxLoggedSource, "..."),
		"code":   mdwerror.GetCode(err).String(),
	}

	if se, ok := mdwparser.AsSyntaxError(err); ok {
		for k, v := range se.Details() {
			fields[k] = v
		}
	}

	e.logger.WarnWithErr("Declaration rejected", err, fields)
}
