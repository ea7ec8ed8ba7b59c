package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/minidecl/foundation/decl"
	"github.com/msto63/minidecl/internal/render"
)

var tokenizeOutput string

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [source|file]",
	Short: "Print the token stream of a declaration",
	Long: `Print the tokens of the input, one per line, ending with END_OF_FILE.

Input is read from a file argument, the arguments, or stdin.
Without input the sample "int result = 10 + 20;" is used.

Examples:
  minidecl tokenize "int x = 1 + 2;"
  minidecl tokenize decl.txt -o json
  echo "int y = 3;" | minidecl tokenize`,
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)

	tokenizeCmd.Flags().StringVarP(&tokenizeOutput, "output", "o", render.FormatTree, "output format: tree, json, yaml")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	source, err := getInputText(args)
	if err != nil {
		return err
	}

	engine, err := decl.New(engineOptions(false))
	if err != nil {
		return err
	}

	tokens, err := engine.Tokenize(source)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if tokenizeOutput == render.FormatTree {
		fmt.Fprint(out, render.New(useColor()).Tokens(tokens))
		return nil
	}

	data, err := render.Encode(render.TokenMaps(tokens), tokenizeOutput)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
