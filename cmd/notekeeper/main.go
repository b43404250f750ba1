package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/notekeeper/internal/cli"
	"github.com/dmitrijs2005/notekeeper/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(2)
	}

	if err := cli.Execute(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		cli.PrintError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
