package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/minidecl/internal/tui/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive declaration REPL",
	Long: `Start an interactive session. Each line entered is lexed and
parsed; its tree or diagnostic is appended to the history.

Keys:
  Enter    parse the current line
  Ctrl+T   toggle token listing
  Ctrl+L   clear history
  Esc      quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.Run(repl.Config{
			Engine:      engineOptions(false),
			Logger:      logger,
			Prompt:      appConfig.REPL.Prompt,
			HistorySize: appConfig.REPL.HistorySize,
			Color:       useColor(),
			ShowTokens:  appConfig.Output.ShowTokens,
		})
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
