// File: decl_test.go
// Title: Declaration Engine Tests
// Description: Tests for the engine facade: success, syntax failures,
//              length limits, strict mode, validation and logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package decl

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	mdwerror "github.com/msto63/minidecl/foundation/core/error"
	mdwlog "github.com/msto63/minidecl/foundation/core/log"
	mdwast "github.com/msto63/minidecl/foundation/decl/ast"
	mdwparser "github.com/msto63/minidecl/foundation/decl/parser"
	"github.com/msto63/minidecl/foundation/decl/token"
)

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = mdwlog.NewNop()
	}
	engine, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return engine
}

func TestNew(t *testing.T) {
	engine := newTestEngine(t, Options{})
	if engine.options.MaxInputLength != DefaultMaxInputLength {
		t.Errorf("MaxInputLength = %d, want default %d", engine.options.MaxInputLength, DefaultMaxInputLength)
	}

	_, err := New(Options{Logger: mdwlog.NewNop(), MaxInputLength: -1})
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("negative limit error = %v, want INVALID_CONFIG", err)
	}
}

func TestEngine_Parse(t *testing.T) {
	engine := newTestEngine(t, Options{})

	result, err := engine.Parse("int result = 10 + 20;")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(result.Tokens) != 8 || result.Tokens[7].Kind != token.KindEOF {
		t.Errorf("Tokens = %v", result.Tokens)
	}
	if result.Source != "int result = 10 + 20;" {
		t.Errorf("Source = %q", result.Source)
	}
	if result.Duration < 0 {
		t.Errorf("Duration = %v", result.Duration)
	}

	decl, ok := result.Root.(*mdwast.VarDecl)
	if !ok {
		t.Fatalf("Root is %T, want *ast.VarDecl", result.Root)
	}
	if decl.String() != "int result = (10 + 20);" {
		t.Errorf("Root = %s", decl)
	}
}

func TestEngine_ParseFailure(t *testing.T) {
	engine := newTestEngine(t, Options{})

	result, err := engine.Parse("int result = ;")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if result == nil || result.Root != nil {
		t.Fatalf("failed parse should return tokens without a root, got %+v", result)
	}
	if len(result.Tokens) != 5 {
		t.Errorf("Tokens = %v", result.Tokens)
	}
	if mdwerror.GetCode(err) != mdwerror.CodeSyntax {
		t.Errorf("code = %s, want SYNTAX", mdwerror.GetCode(err))
	}
	if se, ok := mdwparser.AsSyntaxError(err); !ok || se.Message != mdwparser.MsgExpectedNumber {
		t.Errorf("syntax error = %v", err)
	}
}

func TestEngine_MaxInputLength(t *testing.T) {
	engine := newTestEngine(t, Options{MaxInputLength: 16})

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"under limit", "int x = 1 ;", false},
		{"at limit", "int x = 1 + 22 ;", false},
		{"over limit", "int x = 1 + 222 ;", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Parse(tt.input)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Parse(%q) error = %v", tt.input, err)
				}
				return
			}
			if result != nil {
				t.Errorf("oversized input returned a result: %+v", result)
			}
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidLength) {
				t.Errorf("error = %v, want INVALID_LENGTH", err)
			}
			if _, err := engine.Tokenize(tt.input); !mdwerror.HasCode(err, mdwerror.CodeInvalidLength) {
				t.Errorf("Tokenize error = %v, want INVALID_LENGTH", err)
			}
		})
	}
}

func TestEngine_RequireEOF(t *testing.T) {
	lenient := newTestEngine(t, Options{})
	strict := newTestEngine(t, Options{RequireEOF: true})

	input := "int x = 1 ; 2"
	if _, err := lenient.Parse(input); err != nil {
		t.Errorf("lenient engine rejected trailing tokens: %v", err)
	}
	if _, err := strict.Parse(input); err == nil {
		t.Error("strict engine accepted trailing tokens")
	}
}

func TestEngine_Validate(t *testing.T) {
	engine := newTestEngine(t, Options{})

	if err := engine.Validate("int x = 1 - 2 ;"); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := engine.Validate("int x = 1 * 2 ;"); !mdwerror.HasCode(err, mdwerror.CodeSyntax) {
		t.Errorf("Validate() error = %v, want SYNTAX", err)
	}
}

func TestEngine_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelWarn,
		Format: mdwlog.FormatText,
		Output: &buf,
	})
	engine := newTestEngine(t, Options{Logger: logger})

	engine.Parse("int result 10 ;")

	out := buf.String()
	for _, want := range []string{"Declaration rejected", "code=SYNTAX", "rule=variableDeclaration", "expected=OPERATOR_ASSIGN"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestEngine_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelTrace,
		Format: mdwlog.FormatJSON,
		Output: &buf,
	})
	engine := newTestEngine(t, Options{Logger: logger})
	inputs := []string{"int a = 1 ;", "int b = 2 + 3 ;", "int c = ;", "int d = 4 - 5 - 6 ;"}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(input string) {
			defer wg.Done()
			first, err1 := engine.Parse(input)
			second, err2 := engine.Parse(input)
			if (err1 == nil) != (err2 == nil) {
				t.Errorf("inconsistent errors for %q: %v / %v", input, err1, err2)
				return
			}
			if err1 == nil && first.Root.String() != second.Root.String() {
				t.Errorf("inconsistent trees for %q", input)
			}
		}(inputs[i%len(inputs)])
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) < 40 {
		t.Fatalf("expected log output from every parse, got %d lines", len(lines))
	}
	for _, line := range lines {
		if !json.Valid([]byte(line)) {
			t.Fatalf("interleaved log line: %q", line)
		}
	}
}

func TestEngine_SlowParseWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelWarn,
		Format: mdwlog.FormatText,
		Output: &buf,
	})

	fast := newTestEngine(t, Options{Logger: logger, SlowParseThreshold: time.Hour})
	fast.Parse("int x = 1 ;")
	if strings.Contains(buf.String(), "Slow parse") {
		t.Errorf("parse under threshold was reported as slow:\n%s", buf.String())
	}

	slow := newTestEngine(t, Options{Logger: logger, SlowParseThreshold: time.Nanosecond})
	slow.Parse("int x = 1 + 2 - 3 + 4 - 5 ;")
	if !strings.Contains(buf.String(), "Slow parse") {
		t.Errorf("expected a slow parse warning:\n%s", buf.String())
	}
}
