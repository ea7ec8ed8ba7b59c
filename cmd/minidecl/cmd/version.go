package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/minidecl/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.Info())
		fmt.Fprintf(out, "  Lexer:  v%s\n", version.Lexer)
		fmt.Fprintf(out, "  Parser: v%s\n", version.Parser)
		fmt.Fprintf(out, "  CLI:    v%s\n", version.CLI)
		fmt.Fprintf(out, "  REPL:   v%s\n", version.REPL)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
