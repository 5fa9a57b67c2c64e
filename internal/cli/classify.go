package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShivamKR12/GameEngine/internal/filecreator"
)

// newClassifyCommand creates the "classify" subcommand that prints the outcome kind of a single target.
func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <path>",
		Short: "Create or truncate one file and print the outcome kind",
		Long:  "classify runs the same operation as create for a single path and prints \"ok\" or the failure kind (permission-denied, not-found, is-a-directory, invalid-path, other).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			res := filecreator.CreateEmpty(args[0])
			logResult(logger, res)

			kind := string(res.Kind)
			if res.OK() {
				kind = "ok"
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), kind)
			return err
		},
	}
}
