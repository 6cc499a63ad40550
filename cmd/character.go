package cmd

import (
	"github.com/caprice1026-disc/AI-TRPG/internal"
	"github.com/spf13/cobra"
)

var (
	charName  string
	charRace  string
	charClass string
	charLevel int
	charHP    int
	charStats map[string]int
)

// characterCmd groups character commands
var characterCmd = &cobra.Command{
	Use:   "character",
	Short: "Author player characters in the active session",
}

var characterCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create or update a character in the active session",
	Long: `Create a character in the active session.

Unset fields use the service conventions: name "Hero", level 1, every
ability score at 10, and 10 HP. The server computes derived stats (max
HP, AC) and returns them on the next session fetch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer engine.Close()

		req := internal.NewCharacterRequest(engine.identity.ActiveSessionID())
		if charName != "" {
			req.Name = charName
		}
		req.Race = charRace
		req.Class = charClass
		if charLevel > 0 {
			req.Level = charLevel
		}
		if charHP > 0 {
			req.Resources.HP = charHP
			req.Resources.MaxHP = charHP
		}
		for key, value := range charStats {
			req.BaseStats[key] = value
		}

		return engine.turns.SaveCharacter(req)
	},
}

func init() {
	characterCreateCmd.Flags().StringVar(&charName, "name", "", "Character name")
	characterCreateCmd.Flags().StringVar(&charRace, "race", "", "Character race")
	characterCreateCmd.Flags().StringVar(&charClass, "class", "", "Character class")
	characterCreateCmd.Flags().IntVar(&charLevel, "level", 0, "Character level")
	characterCreateCmd.Flags().IntVar(&charHP, "hp", 0, "Hit points (also sets max HP)")
	characterCreateCmd.Flags().StringToIntVar(&charStats, "stat", nil,
		"Ability score override, e.g. --stat STR=14 --stat DEX=12")

	characterCmd.AddCommand(characterCreateCmd)
	rootCmd.AddCommand(characterCmd)
}
