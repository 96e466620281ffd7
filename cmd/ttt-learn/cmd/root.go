package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ttt-learn",
	Short: "Self-taught tic-tac-toe",
	Long: "Trains two knowledge trees by playing games against each other, " +
		"then lets you play against the trained computer.",
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.ApplySeed()
		return setupLogging(config.Verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE:         runPlay,
	SilenceUsage: true,
}

// Execute runs the root command, the context interrupts the training.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	f := rootCmd.PersistentFlags()
	f.Uint32VarP(&config.Games, "games", "g", config.Games, "Number of self-play training games")
	f.IntVar(&config.Movetime, "movetime", config.Movetime, "Training time limit in ms (0 = no limit)")
	f.Int64Var(&config.Seed, "seed", config.Seed, "Random seed (0 = time based)")
	f.BoolVarP(&config.Verbose, "verbose", "v", config.Verbose, "Development logging to stderr")

	addPlayFlags(rootCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(arenaCmd)
}
