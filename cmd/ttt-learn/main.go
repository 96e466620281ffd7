// ttt-learn trains two tic-tac-toe players by self-play, then lets you
// play against the trained computer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/IlikeChooros/go-rlttt/cmd/ttt-learn/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
