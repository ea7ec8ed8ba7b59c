package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/minidecl/foundation/core/error"
	mdwlog "github.com/msto63/minidecl/foundation/core/log"
	"github.com/msto63/minidecl/foundation/decl"
	"github.com/msto63/minidecl/internal/render"
	"github.com/msto63/minidecl/pkg/core/config"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
	noColor   bool
)

// set up by PersistentPreRunE for the running command
var (
	appConfig *config.Config
	logger    = mdwlog.NewNop()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "minidecl",
	Short: "minidecl - Declaration Lexer & Parser",
	Long: `minidecl lexes and parses single variable declarations of the form

  int <name> = <number> [(+|-) <number>]... ;

and prints the token stream, the syntax tree or a diagnostic.

Commands:
  tokenize - Print the token stream
  parse    - Print the syntax tree (tree, JSON or YAML)
  repl     - Interactive session
  version  - Version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command. Errors not already reported by a command
// are printed to stderr and logged with their code and severity.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !isReported(err) {
		color := appConfig != nil && useColor()
		fmt.Fprint(rootCmd.ErrOrStderr(), render.New(color).Error("", err))
		logger.LogError(err)
	}
	closeLog()
	return err
}

// ExitCode maps a command error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coded *mdwerror.Error
	if !errors.As(err, &coded) {
		return 1
	}
	return coded.Code().ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MINIDECL_CONFIG or ./minidecl.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json, text, console, logfmt")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func setup(cmd *cobra.Command, args []string) error {
	logger = mdwlog.NewNop()
	appConfig = nil

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := cfg.LogLevel()
	if verbose {
		level = mdwlog.LevelDebug
	}

	format := cfg.LogFormat()
	if logFormat != "" {
		if format, err = mdwlog.ParseFormat(logFormat); err != nil {
			return mdwerror.Wrap(err, "invalid --log-format").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cmd.setup").
				WithDetail("value", logFormat)
		}
	}

	var output io.Writer = cmd.ErrOrStderr()
	closeLog()
	if cfg.General.LogFile != "" {
		f, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return mdwerror.Wrap(err, "failed to open log file").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("cmd.setup").
				WithDetail("path", cfg.General.LogFile)
		}
		output = f
		logCloser = f
	}

	logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   "minidecl",
	}).WithCorrelationID(uuid.NewString())
	mdwlog.SetDefault(logger)

	appConfig = cfg

	logger.Debug("Command started", mdwlog.Fields{
		"command": cmd.Name(),
		"args":    len(args),
	})
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}

// engineOptions builds engine options from the loaded configuration
func engineOptions(strict bool) decl.Options {
	return decl.Options{
		Logger:             logger,
		MaxInputLength:     appConfig.Parser.MaxInputLength,
		RequireEOF:         appConfig.Parser.RequireEOF || strict,
		SlowParseThreshold: appConfig.Parser.SlowParseThreshold.Duration,
	}
}

func useColor() bool {
	return appConfig.Output.Color && !noColor
}

// reportedError marks a failure whose diagnostic the command already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func isReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
