package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/minidecl/foundation/core/error"
	mdwlog "github.com/msto63/minidecl/foundation/core/log"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"seconds", "2s", 2 * time.Second, false},
		{"complex", "1m30s", 90 * time.Second, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{250 * time.Millisecond}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "250ms" {
		t.Errorf("MarshalText() = %q, want 250ms", result)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}

	if cfg.General.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.General.LogLevel)
	}
	if cfg.LogLevel() != mdwlog.LevelWarn {
		t.Errorf("LogLevel() = %v", cfg.LogLevel())
	}
	if cfg.LogFormat() != mdwlog.FormatConsole {
		t.Errorf("LogFormat() = %v", cfg.LogFormat())
	}
	if cfg.Parser.MaxInputLength != 4096 {
		t.Errorf("MaxInputLength = %d, want 4096", cfg.Parser.MaxInputLength)
	}
	if cfg.Parser.SlowParseThreshold.Duration != 100*time.Millisecond {
		t.Errorf("SlowParseThreshold = %v", cfg.Parser.SlowParseThreshold)
	}
	if cfg.Output.Format != OutputTree || !cfg.Output.Color {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.REPL.Prompt != "decl> " || cfg.REPL.HistorySize != 100 {
		t.Errorf("REPL = %+v", cfg.REPL)
	}
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minidecl.toml")

	content := `
[general]
log_level = "debug"
log_format = "json"

[parser]
max_input_length = 256
require_eof = true
slow_parse_threshold = "5ms"

[output]
format = "JSON"
color = false

[repl]
history_size = 10
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" || cfg.General.LogFormat != "json" {
		t.Errorf("General = %+v", cfg.General)
	}
	if cfg.Parser.MaxInputLength != 256 || !cfg.Parser.RequireEOF {
		t.Errorf("Parser = %+v", cfg.Parser)
	}
	if cfg.Parser.SlowParseThreshold.Duration != 5*time.Millisecond {
		t.Errorf("SlowParseThreshold = %v", cfg.Parser.SlowParseThreshold)
	}
	if cfg.Output.Format != OutputJSON || cfg.Output.Color {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.REPL.HistorySize != 10 || cfg.REPL.Prompt != "decl> " {
		t.Errorf("REPL = %+v", cfg.REPL)
	}
}

func TestLoad_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minidecl.yml")

	content := `
general:
  log_level: trace
  log_file: ${MINIDECL_TEST_DIR}/minidecl.log
parser:
  slow_parse_threshold: 1s
output:
  format: yaml
  show_tokens: true
repl:
  prompt: "> "
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	t.Setenv("MINIDECL_TEST_DIR", tmpDir)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel() != mdwlog.LevelTrace {
		t.Errorf("LogLevel = %q", cfg.General.LogLevel)
	}
	if want := tmpDir + "/minidecl.log"; cfg.General.LogFile != want {
		t.Errorf("LogFile = %q, want %q", cfg.General.LogFile, want)
	}
	if cfg.Parser.SlowParseThreshold.Duration != time.Second {
		t.Errorf("SlowParseThreshold = %v", cfg.Parser.SlowParseThreshold)
	}
	if cfg.Output.Format != OutputYAML || !cfg.Output.ShowTokens || !cfg.Output.Color {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.REPL.Prompt != "> " {
		t.Errorf("Prompt = %q", cfg.REPL.Prompt)
	}
}

func TestLoad_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
		return path
	}

	tests := []struct {
		name     string
		path     string
		wantCode mdwerror.Code
	}{
		{"missing file", filepath.Join(tmpDir, "absent.toml"), mdwerror.CodeNotFound},
		{"broken toml", write("broken.toml", "[general\nlog_level="), mdwerror.CodeConfigError},
		{"broken yaml", write("broken.yaml", "general: [unclosed"), mdwerror.CodeConfigError},
		{"bad level", write("level.toml", "[general]\nlog_level = \"loud\""), mdwerror.CodeInvalidConfig},
		{"bad format", write("format.toml", "[output]\nformat = \"xml\""), mdwerror.CodeInvalidConfig},
		{"negative length", write("length.yaml", "parser:\n  max_input_length: -1"), mdwerror.CodeInvalidConfig},
		{"negative history", write("history.toml", "[repl]\nhistory_size = -5"), mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.path)
			if err == nil {
				t.Fatalf("Load() succeeded with %+v, want error", cfg)
			}
			if got := mdwerror.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %s, want %s (%v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "custom.toml")
	if err := os.WriteFile(configPath, []byte("[repl]\nhistory_size = 7\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv(EnvConfigPath, configPath)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.REPL.HistorySize != 7 {
		t.Errorf("HistorySize = %d, want 7", cfg.REPL.HistorySize)
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.REPL.HistorySize != 100 {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"config.toml", FormatTOML},
		{"config.yaml", FormatYAML},
		{"config.YML", FormatYAML},
		{"config", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := detectFormat(tt.path); got != tt.expected {
				t.Errorf("detectFormat(%q) = %s, want %s", tt.path, got, tt.expected)
			}
		})
	}
}
