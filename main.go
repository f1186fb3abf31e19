package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spotify-alarm/setup/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		// Cobra already prints the error, so we just exit
		stop()
		os.Exit(1)
	}
}
