package cmd

import (
	"github.com/caprice1026-disc/AI-TRPG/internal"
	"github.com/spf13/cobra"
)

var sessionName string

// sessionCmd groups session lifecycle commands
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Create, load, or inspect game sessions",
}

var sessionCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new session and make it active",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer engine.Close()

		_, err = engine.turns.CreateSession(sessionName, internal.SafetyConfig{
			Violence: engine.cfg.Safety.Violence,
		})
		return err
	},
}

var sessionLoadCmd = &cobra.Command{
	Use:   "load <session-id>",
	Short: "Load a session by id and make it active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer engine.Close()

		_, err = engine.turns.LoadSession(args[0])
		return err
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Fetch the active session and print its state",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer engine.Close()

		session, err := engine.turns.Resume()
		if err != nil {
			return err
		}
		if session == nil {
			return internal.ErrNoActiveSession("show session")
		}
		return nil
	},
}

func init() {
	sessionCreateCmd.Flags().StringVar(&sessionName, "name", "", "Session name (default \"session\")")

	sessionCmd.AddCommand(sessionCreateCmd)
	sessionCmd.AddCommand(sessionLoadCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	rootCmd.AddCommand(sessionCmd)
}
