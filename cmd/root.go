package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/caprice1026-disc/AI-TRPG/internal"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	serverURL string
	stateDir  string
	version   string = "dev"
	commit    string = "unknown"
	date      string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trpg",
	Short: "Play tabletop RPG sessions run by a remote game master",
	Long: `A command-line client for an AI game-master service.

The client creates or resumes sessions, authors player characters,
submits narrative turns (free text or offered choices), rolls dice, and
keeps a local view of session state in sync with the server.

Quick Start:
  trpg session create --name "The Sunken Crypt"   # Start a session
  trpg character create --name Lyra --class rogue # Author a character
  trpg play                                       # Interactive turn loop
  trpg roll 2d6+3                                 # Roll dice any time

The active session id is persisted locally, so the client resumes where
you left off after a restart.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Game-master server URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "", "Directory for client-local state")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// engine bundles the wired client components for one command run.
type engine struct {
	cfg      *internal.Config
	identity *internal.IdentityStore
	client   *internal.Client
	sink     *consoleSink
	dice     *internal.DiceService
	turns    *internal.TurnController
}

// newEngine loads config, opens local state, and wires the controller
// stack against the given output writer.
func newEngine(out io.Writer) (*engine, error) {
	dir := stateDir
	if dir == "" {
		var err error
		dir, err = internal.DefaultStateDir()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := internal.LoadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}

	identity, err := internal.OpenIdentityStore(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}

	client := internal.NewClient(cfg.ServerURL, cfg.Timeout())
	sink := newConsoleSink(out)
	dice := internal.NewDiceService(client, identity, sink)
	turns := internal.NewTurnController(client, identity, sink, dice)

	return &engine{
		cfg:      cfg,
		identity: identity,
		client:   client,
		sink:     sink,
		dice:     dice,
		turns:    turns,
	}, nil
}

// Close releases the engine's local state handle.
func (e *engine) Close() {
	if err := e.identity.Close(); err != nil {
		internal.LogWarn("Failed to close state store: %v", err)
	}
}
