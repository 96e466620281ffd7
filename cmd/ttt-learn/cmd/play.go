package cmd

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-rlttt/pkg/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Train, then play against the computer (default)",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVar(&config.ComputerFirst, "computer-first", config.ComputerFirst, "Computer plays X and moves first")
	f.BoolVar(&config.NoColor, "no-color", config.NoColor, "Suppress color output")
}

func init() {
	addPlayFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cross, circle, _, err := train(cmd.Context(), os.Stderr)
	if err != nil {
		return err
	}

	tree := circle
	if config.ComputerFirst {
		tree = cross
	}

	opts := []session.Option{session.WithLogger(logger.Named("session"))}
	if config.NoColor {
		opts = append(opts, session.WithProfile(termenv.Ascii))
	}
	s, err := session.New(tree, cmd.InOrStdin(), cmd.OutOrStdout(), opts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "enter moves as 'column row', both in range 0-2")
	return s.Run()
}
