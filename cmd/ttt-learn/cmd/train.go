package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-rlttt/pkg/learn"
	"github.com/IlikeChooros/go-rlttt/pkg/selfplay"
	"github.com/IlikeChooros/go-rlttt/pkg/ttt"
)

const progressInterval = 100_000

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train by self-play and print the learned opening",
	Args:  cobra.NoArgs,
	RunE:  runTrain,
}

// Train both trees against each other, X moves first in every game
func train(ctx context.Context, progress io.Writer) (cross, circle *learn.KnowledgeTree, stats selfplay.Stats, err error) {
	cross = learn.NewKnowledgeTree(ttt.Cross)
	circle = learn.NewKnowledgeTree(ttt.Circle)

	listener := selfplay.NewStatsListener()
	listener.SetGameInterval(progressInterval).OnGame(func(s selfplay.Stats) {
		fmt.Fprintf(progress, "\rlearning... %d/%d games", s.Games, config.Games)
	}).OnStop(func(selfplay.Stats) {
		fmt.Fprintln(progress)
	})

	trainer, err := selfplay.NewTrainer(cross, circle,
		selfplay.WithLogger(logger.Named("selfplay")),
		selfplay.WithLimits(config.Limits()),
		selfplay.WithListener(listener),
	)
	if err != nil {
		return nil, nil, stats, fmt.Errorf("create trainer: %w", err)
	}

	stats = trainer.Train(ctx)
	logger.Debug("trained", zap.Stringer("stats", stats))
	return cross, circle, stats, nil
}

func runTrain(cmd *cobra.Command, args []string) error {
	cross, circle, stats, err := train(cmd.Context(), os.Stderr)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, stats)
	fmt.Fprintf(out, "X opening (%d nodes):\n%s\n", cross.Size(), cross.Root())
	fmt.Fprintf(out, "O nodes: %d\n", circle.Size())
	return nil
}
