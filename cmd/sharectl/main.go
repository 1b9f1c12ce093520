// Package main is the entry point for sharectl, the share-target CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return cli.Execute(ctx, cli.Options{})
}
