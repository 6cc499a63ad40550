package cmd

import (
	"fmt"

	"github.com/caprice1026-disc/AI-TRPG/internal"
	"github.com/caprice1026-disc/AI-TRPG/tui"
	"github.com/spf13/cobra"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play turns interactively",
	Long: `Open the interactive play screen. The persisted session, if any, is
resumed first; otherwise create or load one with the session commands.

Type narrative input and press enter to take a turn. When the game
master offers choices, pick one with the arrow keys, or press esc to
answer in free text instead. "/roll <expr>" rolls dice at any point.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := stateDir
		if dir == "" {
			var err error
			dir, err = internal.DefaultStateDir()
			if err != nil {
				return err
			}
		}

		cfg, err := internal.LoadConfig(dir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if serverURL != "" {
			cfg.ServerURL = serverURL
		}

		identity, err := internal.OpenIdentityStore(dir)
		if err != nil {
			return fmt.Errorf("failed to open state store: %w", err)
		}
		defer func() {
			if err := identity.Close(); err != nil {
				internal.LogWarn("Failed to close state store: %v", err)
			}
		}()

		client := internal.NewClient(cfg.ServerURL, cfg.Timeout())
		sink := tui.NewSink()
		dice := internal.NewDiceService(client, identity, sink)
		turns := internal.NewTurnController(client, identity, sink, dice)

		return tui.Run(turns, dice, sink)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
