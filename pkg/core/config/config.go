package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/minidecl/foundation/core/error"
	mdwlog "github.com/msto63/minidecl/foundation/core/log"
	mdwstringx "github.com/msto63/minidecl/foundation/utils/stringx"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "MINIDECL_CONFIG"

// Output formats for parsed trees
const (
	OutputTree = "tree"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	REPL    REPLConfig    `toml:"repl" yaml:"repl"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	LogFile   string `toml:"log_file" yaml:"log_file"` // empty logs to stderr
}

// ParserConfig holds declaration engine settings
type ParserConfig struct {
	MaxInputLength     int      `toml:"max_input_length" yaml:"max_input_length"`
	RequireEOF         bool     `toml:"require_eof" yaml:"require_eof"`
	SlowParseThreshold Duration `toml:"slow_parse_threshold" yaml:"slow_parse_threshold"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format     string `toml:"format" yaml:"format"`
	Color      bool   `toml:"color" yaml:"color"`
	ShowTokens bool   `toml:"show_tokens" yaml:"show_tokens"`
}

// REPLConfig holds interactive session settings
type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistorySize int    `toml:"history_size" yaml:"history_size"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Format is the encoding of a configuration file
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "toml"
	}
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.Output.Color = true
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", path)).
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	return Parse(content, detectFormat(path))
}

// Parse decodes configuration content, applies defaults and validates it.
// Output.Color defaults to true when the content does not set it.
func Parse(content []byte, format Format) (*Config, error) {
	cfg := Config{Output: OutputConfig{Color: true}}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Parse")
		}
	default:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Parse")
		}
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads the file named by MINIDECL_CONFIG, else the first
// default location that exists, else returns Default()
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the config locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{
		"./minidecl.toml",
		"./minidecl.yaml",
		"./minidecl.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "minidecl", "config.toml"),
			filepath.Join(home, ".config", "minidecl", "config.yaml"),
		)
	}
	return paths
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err.Error())
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err.Error())
	}
	if c.Parser.MaxInputLength < 0 {
		return invalid("parser.max_input_length", c.Parser.MaxInputLength, "must not be negative")
	}
	if c.Parser.SlowParseThreshold.Duration < 0 {
		return invalid("parser.slow_parse_threshold", c.Parser.SlowParseThreshold, "must not be negative")
	}
	switch c.Output.Format {
	case OutputTree, OutputJSON, OutputYAML:
	default:
		return invalid("output.format", c.Output.Format, "must be tree, json or yaml")
	}
	if c.REPL.HistorySize <= 0 {
		return invalid("repl.history_size", c.REPL.HistorySize, "must be positive")
	}
	return nil
}

// LogLevel returns the parsed log level; invalid values fall back to info
func (c *Config) LogLevel() mdwlog.Level {
	level, _ := mdwlog.ParseLevel(c.General.LogLevel)
	return level
}

// LogFormat returns the parsed log format; invalid values fall back to JSON
func (c *Config) LogFormat() mdwlog.Format {
	format, _ := mdwlog.ParseFormat(c.General.LogFormat)
	return format
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	c.General.LogLevel = mdwstringx.FirstNonBlank(c.General.LogLevel, "warn")
	c.General.LogFormat = mdwstringx.FirstNonBlank(c.General.LogFormat, "console")

	if c.Parser.MaxInputLength == 0 {
		c.Parser.MaxInputLength = 4096
	}
	if c.Parser.SlowParseThreshold.Duration == 0 {
		c.Parser.SlowParseThreshold.Duration = 100 * time.Millisecond
	}

	c.Output.Format = strings.ToLower(mdwstringx.FirstNonBlank(c.Output.Format, OutputTree))

	c.REPL.Prompt = mdwstringx.FirstNonBlank(c.REPL.Prompt, "decl> ")
	if c.REPL.HistorySize == 0 {
		c.REPL.HistorySize = 100
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
}

// detectFormat detects the configuration format from the file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func invalid(key string, value interface{}, reason string) error {
	return mdwerror.New(fmt.Sprintf("invalid %s %v: %s", key, value, reason)).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key)
}
