package cmd

import (
	"io"
	"os"
	"strings"

	mdwerror "github.com/msto63/minidecl/foundation/core/error"
)

// SampleSource is parsed when no input is given
const SampleSource = "int result = 10 + 20;"

// stdin is read when it is a pipe or a file; nil disables it
var stdin = os.Stdin

// getInputText resolves command input from a file argument, the joined
// arguments, piped stdin, or the sample statement, in that order
func getInputText(args []string) (string, error) {
	if len(args) > 0 {
		if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return "", mdwerror.Wrap(err, "failed to read input file").
					WithCode(mdwerror.CodeInvalidInput).
					WithOperation("cmd.getInputText").
					WithDetail("path", args[0])
			}
			return string(data), nil
		}
		return strings.Join(args, " "), nil
	}

	if stdin != nil {
		if stat, err := stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return "", mdwerror.Wrap(err, "failed to read stdin").
					WithCode(mdwerror.CodeInvalidInput).
					WithOperation("cmd.getInputText")
			}
			if len(data) > 0 {
				return string(data), nil
			}
		}
	}

	return SampleSource, nil
}
