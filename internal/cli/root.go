package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "rummy",
		Short: "Play Rummy 500 in the terminal",
		Long: `rummy is a terminal Rummy 500 game.

Play an interactive match against one or more bot opponents, or watch
bots play each other to completion.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().IntVarP(&cfg.Bots, "bots", "b", cfg.Bots, "Number of bot opponents (1-3)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Strategy, "strategy", "s", cfg.Strategy, "Bot strategy: greedy, random (env: RUMMY_STRATEGY)")
	rootCmd.PersistentFlags().IntVarP(&cfg.ScoreTarget, "target", "t", cfg.ScoreTarget, "Score needed to win the game")
	rootCmd.PersistentFlags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Deterministic shuffle seed, 0 for crypto randomness (env: RUMMY_SEED)")
	rootCmd.PersistentFlags().DurationVar(&cfg.StepDelay, "delay", cfg.StepDelay, "Pause between bot actions")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging")

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newDemoCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
