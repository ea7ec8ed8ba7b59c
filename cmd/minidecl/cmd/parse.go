package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/minidecl/foundation/core/error"
	"github.com/msto63/minidecl/foundation/decl"
	"github.com/msto63/minidecl/internal/render"
)

var (
	parseOutput string
	parseStrict bool
	parseTokens bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [source|file]",
	Short: "Parse a declaration and print its syntax tree",
	Long: `Parse the input as one declaration and print the syntax tree.

On a syntax error the offending line is shown with a caret under the
token that was found, and the command exits with status 1. With
--output json or yaml the error is written as a document instead.

Examples:
  minidecl parse "int result = 10 + 20;"
  minidecl parse decl.txt --output yaml --tokens
  minidecl parse --strict "int x = 1; int y = 2;"`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "output format: tree, json, yaml (default from config)")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "reject tokens after the terminating ';'")
	parseCmd.Flags().BoolVarP(&parseTokens, "tokens", "t", false, "include the token stream")
}

func runParse(cmd *cobra.Command, args []string) error {
	format := parseOutput
	if format == "" {
		format = appConfig.Output.Format
	}
	switch format {
	case render.FormatTree, render.FormatJSON, render.FormatYAML:
	default:
		return mdwerror.New(fmt.Sprintf("unsupported output format: %s", format)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.parse").
			WithDetail("format", format)
	}

	source, err := getInputText(args)
	if err != nil {
		return err
	}

	engine, err := decl.New(engineOptions(parseStrict))
	if err != nil {
		return err
	}

	withTokens := parseTokens || appConfig.Output.ShowTokens
	result, err := engine.Parse(source)
	if result == nil {
		return err
	}

	if err != nil {
		return reportParseError(cmd, format, result, err, withTokens)
	}

	out := cmd.OutOrStdout()
	if format == render.FormatTree {
		r := render.New(useColor())
		if withTokens {
			fmt.Fprintln(out, r.Tokens(result.Tokens))
		}
		fmt.Fprint(out, r.Tree(result.Root))
		return nil
	}

	data, err := render.Encode(render.Document(result, withTokens), format)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func reportParseError(cmd *cobra.Command, format string, result *decl.Result, parseErr error, withTokens bool) error {
	if format == render.FormatTree {
		r := render.New(useColor())
		if withTokens {
			fmt.Fprintln(cmd.OutOrStdout(), r.Tokens(result.Tokens))
		}
		fmt.Fprint(cmd.ErrOrStderr(), r.Error(result.Source, parseErr))
		return &reportedError{err: parseErr}
	}

	doc := render.ErrorDocument(result.Source, parseErr)
	if withTokens {
		doc["tokens"] = render.TokenMaps(result.Tokens)
	}
	data, err := render.Encode(doc, format)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}
	return &reportedError{err: parseErr}
}
