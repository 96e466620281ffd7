package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-rlttt/pkg/bench"
	"github.com/IlikeChooros/go-rlttt/pkg/learn"
)

var arenaCmd = &cobra.Command{
	Use:   "arena",
	Short: "Train, then evaluate both trained players against a random one",
	Args:  cobra.NoArgs,
	RunE:  runArena,
}

func init() {
	f := arenaCmd.Flags()
	f.UintVar(&config.ArenaGames, "arena-games", config.ArenaGames, "Games per evaluation")
	f.UintVar(&config.Workers, "workers", config.Workers, "Number of arena workers")
}

func evaluate(cmd *cobra.Command, tree *learn.KnowledgeTree) (bench.VersusSummaryInfo, error) {
	trained := bench.NewTreeAgent("trained-"+tree.Player().String(), tree)
	random := bench.NewRandomAgent(tree.Player().Opponent())

	arena, err := bench.NewVersusArena(trained, random)
	if err != nil {
		return bench.VersusSummaryInfo{}, err
	}
	arena.WithContext(cmd.Context()).WithLogger(logger.Named("bench"))
	arena.Setup(config.ArenaGames, config.Workers)
	return arena.Run(nil), nil
}

func runArena(cmd *cobra.Command, args []string) error {
	cross, circle, _, err := train(cmd.Context(), os.Stderr)
	if err != nil {
		return err
	}

	summaries := make([]bench.VersusSummaryInfo, 0, 2)
	for _, tree := range []*learn.KnowledgeTree{cross, circle} {
		summary, err := evaluate(cmd, tree)
		if err != nil {
			return fmt.Errorf("arena %s: %w", tree.Player(), err)
		}
		summaries = append(summaries, summary)
	}

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
