package cmd

import (
	"github.com/spf13/cobra"
)

// rollCmd represents the roll command
var rollCmd = &cobra.Command{
	Use:   "roll [expression]",
	Short: "Evaluate a dice expression",
	Long: `Submit a dice expression (e.g. "1d20", "2d6+3") for server-side
evaluation. The result is echoed to the transcript and, when a session
is active, the session's authoritative dice history is shown.

With no argument, rolls 1d20.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer engine.Close()

		expression := ""
		if len(args) > 0 {
			expression = args[0]
		}
		return engine.dice.Roll(expression)
	},
}

func init() {
	rootCmd.AddCommand(rollCmd)
}
